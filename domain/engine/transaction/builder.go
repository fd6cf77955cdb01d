package transaction

import (
	"github.com/danlabs/danwallet/domain/engine/engineerrors"
	"github.com/danlabs/danwallet/domain/engine/keys"
	"github.com/danlabs/danwallet/domain/engine/types"
)

type builderState uint8

const (
	builderStateEmpty builderState = iota
	builderStateAssembling
	builderStateSigned
	builderStateBuilt
)

func (state builderState) String() string {
	switch state {
	case builderStateEmpty:
		return "empty"
	case builderStateAssembling:
		return "assembling"
	case builderStateSigned:
		return "signed"
	case builderStateBuilt:
		return "built"
	}
	return "unknown"
}

// Builder assembles, signs and builds a Transaction.
//
// Instructions and shard lists may be set in any order until Sign is called.
// After Sign the content is frozen and only Build is allowed. Calls made out
// of order are recorded as ErrBuilderMisuse and logged at the error level as
// they happen. The first error sticks and later calls become no-ops. Err
// reports it at any point, and Build returns it.
type Builder struct {
	state           builderState
	feeInstructions []Instruction
	instructions    []Instruction
	signature       TransactionSignature
	inputs          []types.ShardID
	inputRefs       []types.ShardID
	outputs         []types.ShardID
	err             error
}

// NewBuilder returns an empty Builder
func NewBuilder() *Builder {
	return &Builder{
		state:           builderStateEmpty,
		feeInstructions: []Instruction{},
		instructions:    []Instruction{},
		inputs:          []types.ShardID{},
		inputRefs:       []types.ShardID{},
		outputs:         []types.ShardID{},
	}
}

// WithFeeInstructions replaces the fee instructions
func (b *Builder) WithFeeInstructions(instructions []Instruction) *Builder {
	if b.mutate("WithFeeInstructions") {
		b.feeInstructions = normalizeInstructions(instructions)
	}
	return b
}

// AddFeeInstruction appends a fee instruction
func (b *Builder) AddFeeInstruction(instruction Instruction) *Builder {
	if b.mutate("AddFeeInstruction") {
		b.feeInstructions = append(b.feeInstructions, instruction.normalize())
	}
	return b
}

// WithInstructions replaces the main instructions
func (b *Builder) WithInstructions(instructions []Instruction) *Builder {
	if b.mutate("WithInstructions") {
		b.instructions = normalizeInstructions(instructions)
	}
	return b
}

// AddInstruction appends a main instruction
func (b *Builder) AddInstruction(instruction Instruction) *Builder {
	if b.mutate("AddInstruction") {
		b.instructions = append(b.instructions, instruction.normalize())
	}
	return b
}

// WithInputs replaces the shards the transaction consumes
func (b *Builder) WithInputs(inputs []types.ShardID) *Builder {
	if b.mutate("WithInputs") {
		b.inputs = copyShardIDs(inputs)
	}
	return b
}

// WithInputRefs replaces the shards the transaction reads without consuming
func (b *Builder) WithInputRefs(inputRefs []types.ShardID) *Builder {
	if b.mutate("WithInputRefs") {
		b.inputRefs = copyShardIDs(inputRefs)
	}
	return b
}

// WithOutputs replaces the shards the transaction creates
func (b *Builder) WithOutputs(outputs []types.ShardID) *Builder {
	if b.mutate("WithOutputs") {
		b.outputs = copyShardIDs(outputs)
	}
	return b
}

// Sign signs the accumulated fee instructions with secretKey. A Builder may
// be signed exactly once.
func (b *Builder) Sign(secretKey *keys.SecretKey) *Builder {
	if b.err != nil {
		return b
	}
	if b.state == builderStateSigned || b.state == builderStateBuilt {
		b.misuse("cannot sign a builder in state %s", b.state)
		return b
	}
	if secretKey == nil {
		b.misuse("cannot sign with a nil secret key")
		return b
	}

	signature, err := SignTransaction(secretKey, b.feeInstructions)
	if err != nil {
		b.err = err
		return b
	}
	b.signature = signature
	b.state = builderStateSigned
	return b
}

// Build returns the signed transaction. It fails with ErrBuilderMisuse if
// the builder was not signed, was already built, or was misused earlier.
func (b *Builder) Build() (*Transaction, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.state != builderStateSigned {
		b.misuse("cannot build a builder in state %s", b.state)
		return nil, b.err
	}
	b.state = builderStateBuilt

	transaction := &Transaction{
		FeeInstructions: b.feeInstructions,
		Instructions:    b.instructions,
		Signature:       b.signature,
		Inputs:          b.inputs,
		InputRefs:       b.inputRefs,
		Outputs:         b.outputs,
	}
	transaction.ID = transaction.CalculateID()
	log.Debugf("Built transaction %s with %d fee instructions and %d instructions",
		transaction.ID, len(transaction.FeeInstructions), len(transaction.Instructions))
	return transaction, nil
}

// Err returns the first misuse recorded by the builder, if any
func (b *Builder) Err() error {
	return b.err
}

// mutate reports whether the builder content may still change, recording a
// misuse otherwise.
func (b *Builder) mutate(operation string) bool {
	if b.err != nil {
		return false
	}
	if b.state != builderStateEmpty && b.state != builderStateAssembling {
		b.misuse("cannot call %s on a builder in state %s", operation, b.state)
		return false
	}
	b.state = builderStateAssembling
	return true
}

// misuse records a sequencing violation as the builder error and reports it
// right away, so that it is visible even if Build is never reached.
func (b *Builder) misuse(format string, args ...interface{}) {
	b.err = engineerrors.NewErrBuilderMisuse(format, args...)
	log.Errorf("Transaction builder misuse: %s", b.err)
}

func copyShardIDs(shardIDs []types.ShardID) []types.ShardID {
	copied := make([]types.ShardID, len(shardIDs))
	copy(copied, shardIDs)
	return copied
}
