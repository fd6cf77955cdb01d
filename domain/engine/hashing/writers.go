package hashing

import (
	"hash"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// HashWriter streams already encoded bytes into a blake2b state that was
// seeded with an engine domain preamble. Obtain one through NewHashWriter32
// or NewHashWriter64.
type HashWriter struct {
	hash.Hash
}

// NewHashWriter32 returns a 32-byte HashWriter already seeded with the engine
// domain preamble of the given label.
func NewHashWriter32(label Label) HashWriter {
	blake, err := blake2b.New256(nil)
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. blake2b.New256 only fails on oversized keys"))
	}
	return newSeededWriter(blake, label)
}

// NewHashWriter64 returns a 64-byte HashWriter already seeded with the engine
// domain preamble of the given label.
func NewHashWriter64(label Label) HashWriter {
	blake, err := blake2b.New512(nil)
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. blake2b.New512 only fails on oversized keys"))
	}
	return newSeededWriter(blake, label)
}

func newSeededWriter(h hash.Hash, label Label) HashWriter {
	writer := HashWriter{h}
	writer.InfallibleWrite(EngineHashDomain.Preamble(label.AsLabel()))
	return writer
}

// InfallibleWrite writes p, panicking on the error hash.Hash never returns
func (h HashWriter) InfallibleWrite(p []byte) {
	_, err := h.Write(p)
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. hash.Hash interface promises to not return errors."))
	}
}

// Finalize returns the resulting digest, Size() bytes long
func (h HashWriter) Finalize() []byte {
	return h.Sum(make([]byte, 0, h.Size()))
}
