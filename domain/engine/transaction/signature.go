package transaction

import (
	"github.com/danlabs/danwallet/domain/engine/engineerrors"
	"github.com/danlabs/danwallet/domain/engine/hashing"
	"github.com/danlabs/danwallet/domain/engine/keys"
	"github.com/danlabs/danwallet/domain/engine/types"
)

// TransactionSignature binds a public key to a signature over the
// instructions of a transaction.
type TransactionSignature struct {
	PublicKey keys.PublicKey `codec:"public_key"`
	Signature keys.Signature `codec:"signature"`
}

// Challenge returns the 32-byte message signed for the given instructions
func Challenge(instructions []Instruction) types.Hash {
	return hashing.NewHasher32(hashing.LabelInstructionSignature).
		Chain(normalizeInstructions(instructions)).
		Result()
}

// SignTransaction signs the given instructions with secretKey
func SignTransaction(secretKey *keys.SecretKey, instructions []Instruction) (TransactionSignature, error) {
	publicKey, err := secretKey.PublicKey()
	if err != nil {
		return TransactionSignature{}, engineerrors.WrapSigningFailure(err)
	}
	signature, err := secretKey.Sign(Challenge(instructions))
	if err != nil {
		return TransactionSignature{}, err
	}
	return TransactionSignature{
		PublicKey: publicKey,
		Signature: signature,
	}, nil
}

// Verify checks that the signature is valid for the given instructions
func (signature TransactionSignature) Verify(instructions []Instruction) error {
	challenge := Challenge(instructions)
	if !signature.PublicKey.Verify(challenge, signature.Signature) {
		return engineerrors.NewErrInvalidSignature("signature %s by %s is not valid for challenge %s",
			signature.Signature, signature.PublicKey, challenge)
	}
	return nil
}
