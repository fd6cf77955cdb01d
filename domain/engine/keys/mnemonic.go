package keys

import (
	"github.com/danlabs/danwallet/domain/engine/engineerrors"
	"github.com/danlabs/danwallet/domain/engine/hashing"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

// NewMnemonic returns a new 24 word BIP-39 mnemonic
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate entropy")
	}
	return bip39.NewMnemonic(entropy)
}

// SecretKeyFromMnemonic derives the secret key of the given account index
// from a BIP-39 mnemonic.
func SecretKeyFromMnemonic(mnemonic string, accountIndex uint32) (*SecretKey, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, engineerrors.WrapMalformedInput(err, "invalid mnemonic")
	}
	secretKeyBytes := hashing.NewHasher32(hashing.LabelWalletKeyDerivation).
		Chain(seed).
		Chain(accountIndex).
		Result()
	return SecretKeyFromBytes(secretKeyBytes[:])
}
