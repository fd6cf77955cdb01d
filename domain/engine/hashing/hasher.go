package hashing

import (
	"github.com/danlabs/danwallet/domain/engine/encoding"
	"github.com/danlabs/danwallet/domain/engine/types"
)

// Hasher32 is a domain separated hasher with a 32-byte digest. Values fed to
// it are canonically encoded first, so structurally equal values always hash
// identically.
//
// A Hasher32 is owned by a single goroutine and may be finalized only once.
type Hasher32 struct {
	writer    HashWriter
	finalized bool
}

// NewHasher32 returns a Hasher32 for the given engine label
func NewHasher32(label Label) *Hasher32 {
	return &Hasher32{writer: NewHashWriter32(label)}
}

// NewTemplateHasher32 returns a Hasher32 for LabelTemplate
func NewTemplateHasher32() *Hasher32 {
	return NewHasher32(LabelTemplate)
}

// Update feeds the canonical encoding of value into the hasher.
// It panics if value is not encodable.
func (h *Hasher32) Update(value interface{}) {
	h.assertNotFinalized()
	update(h.writer, value)
}

// Chain is like Update but returns the hasher to allow chaining
func (h *Hasher32) Chain(value interface{}) *Hasher32 {
	h.Update(value)
	return h
}

// Digest feeds value and returns the resulting hash
func (h *Hasher32) Digest(value interface{}) types.Hash {
	return h.Chain(value).Result()
}

// Result finalizes the hasher and returns the resulting hash
func (h *Hasher32) Result() types.Hash {
	var result types.Hash
	h.FinalizeInto((*[32]byte)(&result))
	return result
}

// FinalizeInto finalizes the hasher and writes the resulting hash into dst
func (h *Hasher32) FinalizeInto(dst *[32]byte) {
	h.assertNotFinalized()
	h.finalized = true
	copy(dst[:], h.writer.Finalize())
}

func (h *Hasher32) assertNotFinalized() {
	if h.finalized {
		panic("Hasher32 used after it was finalized")
	}
}

// Hasher64 is the 64-byte digest variant of Hasher32. It uses the 64-byte
// parameterization of blake2b and is not a prefix extension of Hasher32.
type Hasher64 struct {
	writer    HashWriter
	finalized bool
}

// NewHasher64 returns a Hasher64 for the given engine label
func NewHasher64(label Label) *Hasher64 {
	return &Hasher64{writer: NewHashWriter64(label)}
}

// NewTemplateHasher64 returns a Hasher64 for LabelTemplate
func NewTemplateHasher64() *Hasher64 {
	return NewHasher64(LabelTemplate)
}

// Update feeds the canonical encoding of value into the hasher.
// It panics if value is not encodable.
func (h *Hasher64) Update(value interface{}) {
	h.assertNotFinalized()
	update(h.writer, value)
}

// Chain is like Update but returns the hasher to allow chaining
func (h *Hasher64) Chain(value interface{}) *Hasher64 {
	h.Update(value)
	return h
}

// Digest feeds value and returns the resulting hash
func (h *Hasher64) Digest(value interface{}) [64]byte {
	return h.Chain(value).Result()
}

// Result finalizes the hasher and returns the resulting hash
func (h *Hasher64) Result() [64]byte {
	var result [64]byte
	h.FinalizeInto(&result)
	return result
}

// FinalizeInto finalizes the hasher and writes the resulting hash into dst
func (h *Hasher64) FinalizeInto(dst *[64]byte) {
	h.assertNotFinalized()
	h.finalized = true
	copy(dst[:], h.writer.Finalize())
}

func (h *Hasher64) assertNotFinalized() {
	if h.finalized {
		panic("Hasher64 used after it was finalized")
	}
}

func update(writer HashWriter, value interface{}) {
	err := encoding.Encode(writer, value)
	if err != nil {
		panic(err)
	}
}
