package keys

import (
	"encoding/hex"

	"github.com/danlabs/danwallet/domain/engine/engineerrors"
	"github.com/danlabs/danwallet/domain/engine/types"
	"github.com/kaspanet/go-secp256k1"
	"github.com/pkg/errors"
)

// Serialized sizes of keys and signatures
const (
	SecretKeySize = 32
	PublicKeySize = 32
	SignatureSize = secp256k1.SerializedSchnorrSignatureSize
)

// SecretKey is a Schnorr secret key over secp256k1
type SecretKey struct {
	keyPair *secp256k1.SchnorrKeyPair
}

// GenerateSecretKey returns a new random SecretKey
func GenerateSecretKey() (*SecretKey, error) {
	keyPair, err := secp256k1.GenerateSchnorrKeyPair()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate secret key")
	}
	return &SecretKey{keyPair: keyPair}, nil
}

// SecretKeyFromBytes parses a 32-byte secret key
func SecretKeyFromBytes(secretKeyBytes []byte) (*SecretKey, error) {
	if len(secretKeyBytes) != SecretKeySize {
		return nil, engineerrors.NewErrMalformedInput("invalid secret key size. Want: %d, got: %d",
			SecretKeySize, len(secretKeyBytes))
	}
	keyPair, err := secp256k1.DeserializeSchnorrPrivateKeyFromSlice(secretKeyBytes)
	if err != nil {
		return nil, engineerrors.WrapMalformedInput(err, "invalid secret key")
	}
	return &SecretKey{keyPair: keyPair}, nil
}

// SecretKeyFromHex parses a hex encoded secret key
func SecretKeyFromHex(secretKeyHex string) (*SecretKey, error) {
	secretKeyBytes, err := hex.DecodeString(secretKeyHex)
	if err != nil {
		return nil, engineerrors.WrapMalformedInput(err, "couldn't decode secret key hex")
	}
	return SecretKeyFromBytes(secretKeyBytes)
}

// Serialize returns the 32 raw bytes of the secret key
func (key *SecretKey) Serialize() [SecretKeySize]byte {
	return *key.keyPair.SerializePrivateKey()
}

// String returns the hex encoding of the secret key
func (key *SecretKey) String() string {
	serialized := key.Serialize()
	return hex.EncodeToString(serialized[:])
}

// PublicKey returns the public key of the secret key
func (key *SecretKey) PublicKey() (PublicKey, error) {
	schnorrPublicKey, err := key.keyPair.SchnorrPublicKey()
	if err != nil {
		return PublicKey{}, errors.Wrap(err, "failed to derive public key")
	}
	serialized, err := schnorrPublicKey.Serialize()
	if err != nil {
		return PublicKey{}, errors.Wrap(err, "failed to serialize public key")
	}
	return PublicKey(*serialized), nil
}

// Sign produces a Schnorr signature over the given 32-byte challenge
func (key *SecretKey) Sign(challenge types.Hash) (Signature, error) {
	secpHash := secp256k1.Hash(challenge)
	signature, err := key.keyPair.SchnorrSign(&secpHash)
	if err != nil {
		return Signature{}, engineerrors.WrapSigningFailure(err)
	}
	return Signature(*signature.Serialize()), nil
}

// PublicKey is a 32-byte x-only Schnorr public key
type PublicKey [PublicKeySize]byte

// PublicKeyFromHex parses a hex encoded public key. The key must be a valid
// curve point.
func PublicKeyFromHex(publicKeyHex string) (PublicKey, error) {
	var publicKey PublicKey
	decoded, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return publicKey, engineerrors.WrapMalformedInput(err, "couldn't decode public key hex")
	}
	if len(decoded) != PublicKeySize {
		return publicKey, engineerrors.NewErrMalformedInput("invalid public key size. Want: %d, got: %d",
			PublicKeySize, len(decoded))
	}
	_, err = secp256k1.DeserializeSchnorrPubKey(decoded)
	if err != nil {
		return publicKey, engineerrors.WrapMalformedInput(err, "invalid public key")
	}
	copy(publicKey[:], decoded)
	return publicKey, nil
}

// Verify returns true if signature is a valid signature of challenge by
// this public key. Malformed keys or signatures never verify.
func (publicKey PublicKey) Verify(challenge types.Hash, signature Signature) bool {
	schnorrPublicKey, err := secp256k1.DeserializeSchnorrPubKey(publicKey[:])
	if err != nil {
		return false
	}
	schnorrSignature, err := secp256k1.DeserializeSchnorrSignatureFromSlice(signature[:])
	if err != nil {
		return false
	}
	secpHash := secp256k1.Hash(challenge)
	return schnorrPublicKey.SchnorrVerify(&secpHash, schnorrSignature)
}

// Bytes returns the public key as a fixed size array, the form used to build
// owner tokens.
func (publicKey PublicKey) Bytes() [PublicKeySize]byte {
	return publicKey
}

func (publicKey PublicKey) String() string {
	return hex.EncodeToString(publicKey[:])
}

// MarshalText implements encoding.TextMarshaler
func (publicKey PublicKey) MarshalText() ([]byte, error) {
	return []byte(publicKey.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (publicKey *PublicKey) UnmarshalText(text []byte) error {
	parsed, err := PublicKeyFromHex(string(text))
	if err != nil {
		return err
	}
	*publicKey = parsed
	return nil
}

// Signature is a 64-byte Schnorr signature
type Signature [SignatureSize]byte

// SignatureFromHex parses a hex encoded signature
func SignatureFromHex(signatureHex string) (Signature, error) {
	var signature Signature
	decoded, err := hex.DecodeString(signatureHex)
	if err != nil {
		return signature, engineerrors.WrapMalformedInput(err, "couldn't decode signature hex")
	}
	if len(decoded) != SignatureSize {
		return signature, engineerrors.NewErrMalformedInput("invalid signature size. Want: %d, got: %d",
			SignatureSize, len(decoded))
	}
	copy(signature[:], decoded)
	return signature, nil
}

func (signature Signature) String() string {
	return hex.EncodeToString(signature[:])
}

// MarshalText implements encoding.TextMarshaler
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(signature.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (signature *Signature) UnmarshalText(text []byte) error {
	parsed, err := SignatureFromHex(string(text))
	if err != nil {
		return err
	}
	*signature = parsed
	return nil
}
