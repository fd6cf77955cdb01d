package component

import (
	"github.com/danlabs/danwallet/domain/engine/hashing"
	"github.com/danlabs/danwallet/domain/engine/types"
)

// AccountTemplateAddress is the built-in template of fungible accounts
var AccountTemplateAddress = types.TemplateAddress{}

// AccountNFTTemplateAddress is the built-in template of non-fungible accounts
var AccountNFTTemplateAddress = types.TemplateAddress{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
}

// WellKnownTemplate is a template whose address is fixed by the network
type WellKnownTemplate struct {
	Name    string
	Address types.TemplateAddress
}

// WellKnownTemplates returns the built-in templates accounts can be derived from
func WellKnownTemplates() []WellKnownTemplate {
	return []WellKnownTemplate{
		{Name: "Account", Address: AccountTemplateAddress},
		{Name: "AccountNft", Address: AccountNFTTemplateAddress},
	}
}

// NewComponentAddressFromParts derives the address of the component instance
// componentID of the given template.
func NewComponentAddressFromParts(templateAddress types.TemplateAddress, componentID types.Hash) types.ComponentAddress {
	address := hashing.NewHasher32(hashing.LabelComponentAddress).
		Chain(templateAddress).
		Chain(componentID).
		Result()
	return types.NewComponentAddress(address)
}

// AccountAddressFromPublicKey returns the account component owned by the
// given hex encoded public key.
func AccountAddressFromPublicKey(publicKeyHex string) (types.ComponentAddress, error) {
	return addressFromPublicKey(AccountTemplateAddress, publicKeyHex)
}

// AccountNFTAddressFromPublicKey returns the non-fungible account component
// owned by the given hex encoded public key.
func AccountNFTAddressFromPublicKey(publicKeyHex string) (types.ComponentAddress, error) {
	return addressFromPublicKey(AccountNFTTemplateAddress, publicKeyHex)
}

func addressFromPublicKey(templateAddress types.TemplateAddress, publicKeyHex string) (types.ComponentAddress, error) {
	componentID, err := types.HashFromHex(publicKeyHex)
	if err != nil {
		return types.ComponentAddress{}, err
	}
	return NewComponentAddressFromParts(templateAddress, componentID), nil
}
