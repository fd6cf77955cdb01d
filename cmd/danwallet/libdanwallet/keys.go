package libdanwallet

import (
	"github.com/danlabs/danwallet/domain/engine/keys"
)

// CreateKeyPair generates a new secret key and returns it with its public
// key, both hex encoded.
func CreateKeyPair() (secretKeyHex string, publicKeyHex string, err error) {
	secretKey, err := keys.GenerateSecretKey()
	if err != nil {
		return "", "", err
	}
	publicKey, err := secretKey.PublicKey()
	if err != nil {
		return "", "", err
	}
	return secretKey.String(), publicKey.String(), nil
}

// BuildPublicKey returns the hex encoded public key of a hex encoded secret key
func BuildPublicKey(secretKeyHex string) (string, error) {
	secretKey, err := keys.SecretKeyFromHex(secretKeyHex)
	if err != nil {
		return "", err
	}
	publicKey, err := secretKey.PublicKey()
	if err != nil {
		return "", err
	}
	return publicKey.String(), nil
}

// SecretKeyFromMnemonic returns the hex encoded secret key of the given
// account of a mnemonic.
func SecretKeyFromMnemonic(mnemonic string, accountIndex uint32) (string, error) {
	secretKey, err := keys.SecretKeyFromMnemonic(mnemonic, accountIndex)
	if err != nil {
		return "", err
	}
	return secretKey.String(), nil
}

// CreateMnemonic returns a new BIP-39 mnemonic
func CreateMnemonic() (string, error) {
	return keys.NewMnemonic()
}
