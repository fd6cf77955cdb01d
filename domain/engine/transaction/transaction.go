package transaction

import (
	"github.com/danlabs/danwallet/domain/engine/engineerrors"
	"github.com/danlabs/danwallet/domain/engine/hashing"
	"github.com/danlabs/danwallet/domain/engine/types"
)

// Transaction is a signed, immutable list of instructions together with the
// shards it reads and writes.
type Transaction struct {
	ID              types.Hash           `codec:"id"`
	FeeInstructions []Instruction        `codec:"fee_instructions"`
	Instructions    []Instruction        `codec:"instructions"`
	Signature       TransactionSignature `codec:"signature"`
	Inputs          []types.ShardID      `codec:"inputs"`
	InputRefs       []types.ShardID      `codec:"input_refs"`
	Outputs         []types.ShardID      `codec:"outputs"`
}

// CalculateID returns the id of the transaction, computed over every field
// but the id itself.
func (transaction *Transaction) CalculateID() types.Hash {
	return hashing.NewHasher32(hashing.LabelTransaction).
		Chain(transaction.Signature).
		Chain(transaction.FeeInstructions).
		Chain(transaction.Instructions).
		Chain(transaction.Inputs).
		Chain(transaction.InputRefs).
		Chain(transaction.Outputs).
		Result()
}

// SignedContent returns the instructions covered by the transaction
// signature: the fee instructions. The main instructions are bound to the
// transaction through its id.
func (transaction *Transaction) SignedContent() []Instruction {
	return normalizeInstructions(transaction.FeeInstructions)
}

// Verify checks the signature over the fee instructions, then the id over
// the whole transaction.
func (transaction *Transaction) Verify() error {
	err := transaction.Signature.Verify(transaction.SignedContent())
	if err != nil {
		return err
	}
	expectedID := transaction.CalculateID()
	if expectedID != transaction.ID {
		return engineerrors.NewErrMalformedInput("transaction id %s does not match its content, expected %s",
			transaction.ID, expectedID)
	}
	return nil
}

// Normalize replaces nil slices by empty ones, as they would be in a
// transaction produced by Builder. Decoded transactions must be normalized
// before their id is recomputed.
func (transaction *Transaction) Normalize() {
	transaction.FeeInstructions = normalizeInstructions(transaction.FeeInstructions)
	transaction.Instructions = normalizeInstructions(transaction.Instructions)
	transaction.Inputs = normalizeShardIDs(transaction.Inputs)
	transaction.InputRefs = normalizeShardIDs(transaction.InputRefs)
	transaction.Outputs = normalizeShardIDs(transaction.Outputs)
}

func normalizeShardIDs(shardIDs []types.ShardID) []types.ShardID {
	if shardIDs == nil {
		return []types.ShardID{}
	}
	return shardIDs
}
