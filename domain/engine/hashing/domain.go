package hashing

import (
	"encoding/binary"
	"strconv"
)

// HashDomain is a versioned namespace for domain separated hashing
type HashDomain struct {
	Name    string
	Version uint8
}

// EngineHashDomain is the domain of every hash computed by the transaction engine
var EngineHashDomain = HashDomain{Name: "com.tari.dan.engine", Version: 0}

// ConfidentialOutputHashDomain is the domain of confidential output commitments
var ConfidentialOutputHashDomain = HashDomain{Name: "com.tari.dan.confidential_output", Version: 1}

// Tag returns the full domain tag for the given label, in the form
// "<name>.v<version>.<label>". An empty label yields "<name>.v<version>".
func (domain HashDomain) Tag(label string) string {
	tag := domain.Name + ".v" + strconv.FormatUint(uint64(domain.Version), 10)
	if label == "" {
		return tag
	}
	return tag + "." + label
}

// Preamble returns the bytes written to a hasher before any caller data:
// the tag length as a little endian uint64 followed by the tag itself.
func (domain HashDomain) Preamble(label string) []byte {
	tag := domain.Tag(label)
	preamble := make([]byte, 8+len(tag))
	binary.LittleEndian.PutUint64(preamble, uint64(len(tag)))
	copy(preamble[8:], tag)
	return preamble
}
