package substate

import (
	"github.com/danlabs/danwallet/domain/engine/hashing"
	"github.com/danlabs/danwallet/domain/engine/types"
)

// Address is the address of a substate: a piece of on-network state such as
// a component, a resource or a vault. Exactly one of its fields is set.
type Address struct {
	_struct struct{} `codec:",omitempty"`

	Component   *types.ComponentAddress   `codec:"Component,omitempty"`
	Resource    *types.ResourceAddress    `codec:"Resource,omitempty"`
	Vault       *types.VaultID            `codec:"Vault,omitempty"`
	NonFungible *types.NonFungibleAddress `codec:"NonFungible,omitempty"`
}

// NewComponentAddress returns the substate address of a component
func NewComponentAddress(address types.ComponentAddress) Address {
	return Address{Component: &address}
}

// NewResourceAddress returns the substate address of a resource
func NewResourceAddress(address types.ResourceAddress) Address {
	return Address{Resource: &address}
}

// NewVaultAddress returns the substate address of a vault
func NewVaultAddress(id types.VaultID) Address {
	return Address{Vault: &id}
}

// NewNonFungibleAddress returns the substate address of a non-fungible token
func NewNonFungibleAddress(address types.NonFungibleAddress) Address {
	return Address{NonFungible: &address}
}

func (address Address) String() string {
	switch {
	case address.Component != nil:
		return address.Component.String()
	case address.Resource != nil:
		return address.Resource.String()
	case address.Vault != nil:
		return address.Vault.String()
	case address.NonFungible != nil:
		return "nft_" + address.NonFungible.String()
	default:
		return "<empty substate address>"
	}
}

// ShardID returns the shard id of the given version of this substate
func (address Address) ShardID(version uint32) types.ShardID {
	return ShardIDFromAddress(address, version)
}

// ShardIDFromAddress derives the shard id responsible for the given version
// of a substate.
func ShardIDFromAddress(address Address, version uint32) types.ShardID {
	return types.ShardID(hashing.NewHasher32(hashing.LabelShardID).
		Chain(address).
		Chain(version).
		Result())
}
