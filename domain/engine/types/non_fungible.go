package types

import (
	"fmt"
)

// PublicIdentityResourceAddress is the resource under which every public key
// has an implicit non-fungible token. Owner tokens of accounts live here.
var PublicIdentityResourceAddress = ResourceAddress{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
}

// NonFungibleID identifies a single token of a non-fungible resource. Exactly
// one of its fields is set.
type NonFungibleID struct {
	_struct struct{} `codec:",omitempty"`

	U256   *[32]byte `codec:"U256,omitempty"`
	String *string   `codec:"String,omitempty"`
	Uint64 *uint64   `codec:"Uint64,omitempty"`
}

// NewNonFungibleIDU256 returns a NonFungibleID holding 32 raw bytes
func NewNonFungibleIDU256(value [32]byte) NonFungibleID {
	return NonFungibleID{U256: &value}
}

// NewNonFungibleIDString returns a NonFungibleID holding a string
func NewNonFungibleIDString(value string) NonFungibleID {
	return NonFungibleID{String: &value}
}

// NewNonFungibleIDUint64 returns a NonFungibleID holding an integer
func NewNonFungibleIDUint64(value uint64) NonFungibleID {
	return NonFungibleID{Uint64: &value}
}

// Describe returns a human readable form of the id
func (id NonFungibleID) Describe() string {
	switch {
	case id.U256 != nil:
		return fmt.Sprintf("uuid:%x", id.U256[:])
	case id.String != nil:
		return "str:" + *id.String
	case id.Uint64 != nil:
		return fmt.Sprintf("u64:%d", *id.Uint64)
	default:
		return "<empty>"
	}
}

// NonFungibleAddress is the address of a single non-fungible token
type NonFungibleAddress struct {
	ResourceAddress ResourceAddress `codec:"resource_address"`
	ID              NonFungibleID   `codec:"id"`
}

// NonFungibleAddressFromPublicKey returns the public identity token of the
// given public key, used as the owner token of accounts.
func NonFungibleAddressFromPublicKey(publicKey [32]byte) NonFungibleAddress {
	return NonFungibleAddress{
		ResourceAddress: PublicIdentityResourceAddress,
		ID:              NewNonFungibleIDU256(publicKey),
	}
}

func (address NonFungibleAddress) String() string {
	return address.ResourceAddress.String() + " " + address.ID.Describe()
}
