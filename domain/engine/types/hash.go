package types

import (
	"encoding/hex"

	"github.com/danlabs/danwallet/domain/engine/engineerrors"
)

// HashSize of array used to store hashes.
const HashSize = 32

// Hash is a 32-byte digest produced by the short-width engine hasher
type Hash [HashSize]byte

// HashFromBytes creates a Hash from the given byte slice
func HashFromBytes(hashBytes []byte) (Hash, error) {
	var hash Hash
	if len(hashBytes) != HashSize {
		return hash, engineerrors.NewErrMalformedInput("invalid hash size. Want: %d, got: %d",
			HashSize, len(hashBytes))
	}
	copy(hash[:], hashBytes)
	return hash, nil
}

// HashFromHex creates a Hash from its hexadecimal string representation.
// The string must encode exactly HashSize bytes.
func HashFromHex(hashHex string) (Hash, error) {
	var hash Hash
	err := decodeHex(hash[:], hashHex)
	return hash, err
}

// String returns the Hash as the hexadecimal string of its bytes
func (hash Hash) String() string {
	return hex.EncodeToString(hash[:])
}

// ByteSlice returns a copy of the hash bytes
func (hash Hash) ByteSlice() []byte {
	byteSlice := make([]byte, HashSize)
	copy(byteSlice, hash[:])
	return byteSlice
}

// IsZero returns true if every byte of the hash is zero
func (hash Hash) IsZero() bool {
	return hash == Hash{}
}

// MarshalText implements encoding.TextMarshaler
func (hash Hash) MarshalText() ([]byte, error) {
	return []byte(hash.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (hash *Hash) UnmarshalText(text []byte) error {
	parsed, err := HashFromHex(string(text))
	if err != nil {
		return err
	}
	*hash = parsed
	return nil
}

// decodeHex decodes src into dst, requiring src to encode exactly len(dst) bytes.
func decodeHex(dst []byte, src string) error {
	expectedSrcLength := len(dst) * 2
	if len(src) != expectedSrcLength {
		return engineerrors.NewErrMalformedInput("hex string length is %d, while it should be %d",
			len(src), expectedSrcLength)
	}
	_, err := hex.Decode(dst, []byte(src))
	if err != nil {
		return engineerrors.WrapMalformedInput(err, "couldn't decode hex")
	}
	return nil
}
