package libdanwallet

import (
	"github.com/danlabs/danwallet/domain/engine/component"
)

// GetAccountComponentAddress returns the account component address owned
// by the hex encoded public key, in its "component_<hex>" form.
func GetAccountComponentAddress(publicKeyHex string) (string, error) {
	address, err := component.AccountAddressFromPublicKey(publicKeyHex)
	if err != nil {
		return "", err
	}
	return address.String(), nil
}

// GetAccountNFTComponentAddress returns the non-fungible account component
// address owned by the hex encoded public key.
func GetAccountNFTComponentAddress(publicKeyHex string) (string, error) {
	address, err := component.AccountNFTAddressFromPublicKey(publicKeyHex)
	if err != nil {
		return "", err
	}
	return address.String(), nil
}
