package transaction

import (
	"reflect"
	"testing"

	"github.com/danlabs/danwallet/domain/engine/encoding"
	"github.com/danlabs/danwallet/domain/engine/engineerrors"
	"github.com/danlabs/danwallet/domain/engine/keys"
	"github.com/danlabs/danwallet/domain/engine/types"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func newSecretKey(t *testing.T) *keys.SecretKey {
	secretKey, err := keys.GenerateSecretKey()
	if err != nil {
		t.Fatalf("GenerateSecretKey: %+v", err)
	}
	return secretKey
}

func testInstructions() []Instruction {
	var sender, receiver types.ComponentAddress
	sender[0] = 1
	receiver[0] = 2
	var resource types.ResourceAddress
	resource[31] = 3

	return []Instruction{
		NewCallMethod(sender, "withdraw", Args(resource, types.Amount(10))),
		NewPutOnWorkspace("bucket"),
		NewCallMethod(receiver, "deposit", Args(WorkspaceArg("bucket"))),
		NewCallMethod(sender, "pay_fee", Args(types.Amount(1))),
	}
}

func TestInstructionEncoding(t *testing.T) {
	encoded := encoding.MustEncode(NewPutOnWorkspace("bucket"))
	expected := append([]byte{0xa1, 0x78, 0x23}, []byte("PutLastInstructionOutputOnWorkspace")...)
	expected = append(expected, 0xa1, 0x63, 'k', 'e', 'y', 0x46)
	expected = append(expected, []byte("bucket")...)
	if !reflect.DeepEqual(encoded, expected) {
		t.Fatalf("unexpected encoding\nexpected: %x\ngot:      %x", expected, encoded)
	}

	for _, instruction := range testInstructions() {
		var decoded Instruction
		err := encoding.Decode(encoding.MustEncode(instruction), &decoded)
		if err != nil {
			t.Fatalf("Decode: %+v", err)
		}
		if decoded.Kind() != instruction.Kind() {
			t.Fatalf("expected kind %s, got %s", instruction.Kind(), decoded.Kind())
		}
		if !reflect.DeepEqual(encoding.MustEncode(decoded.normalize()), encoding.MustEncode(instruction)) {
			t.Fatalf("%s changed after a round trip: %s", instruction, spew.Sdump(decoded))
		}
	}
}

func TestArgs(t *testing.T) {
	args := Args(WorkspaceArg("bucket"), types.Amount(5), "hello")
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
	if !args[0].IsWorkspace() || string(args[0].Workspace) != "bucket" {
		t.Fatalf("expected a workspace arg, got %s", args[0])
	}
	if args[1].IsWorkspace() || !reflect.DeepEqual(args[1].Literal, []byte{0x05}) {
		t.Fatalf("expected a literal 5, got %s", args[1])
	}
	if !reflect.DeepEqual(args[2].Literal, encoding.MustEncode("hello")) {
		t.Fatalf("expected a literal string, got %s", args[2])
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected LiteralArg to panic on an unencodable value")
		}
	}()
	LiteralArg(make(chan int))
}

func TestSignatureRoundTrip(t *testing.T) {
	secretKey := newSecretKey(t)
	instructions := testInstructions()

	signature, err := SignTransaction(secretKey, instructions)
	if err != nil {
		t.Fatalf("SignTransaction: %+v", err)
	}
	err = signature.Verify(instructions)
	if err != nil {
		t.Fatalf("Verify: %+v", err)
	}

	tests := []struct {
		name   string
		mutate func([]Instruction) []Instruction
	}{
		{
			name: "reordered",
			mutate: func(instructions []Instruction) []Instruction {
				instructions[0], instructions[3] = instructions[3], instructions[0]
				return instructions
			},
		},
		{
			name: "method renamed",
			mutate: func(instructions []Instruction) []Instruction {
				instructions[2] = NewCallMethod(instructions[2].CallMethod.ComponentAddress, "steal",
					instructions[2].CallMethod.Args)
				return instructions
			},
		},
		{
			name: "instruction removed",
			mutate: func(instructions []Instruction) []Instruction {
				return instructions[:3]
			},
		},
		{
			name: "instruction added",
			mutate: func(instructions []Instruction) []Instruction {
				return append(instructions, NewEmitLog(LogLevelInfo, "hi"))
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mutated := test.mutate(testInstructions())
			err := signature.Verify(mutated)
			if !errors.Is(err, engineerrors.ErrInvalidSignature) {
				t.Fatalf("expected ErrInvalidSignature, got %v", err)
			}
		})
	}

	otherPublicKey, err := newSecretKey(t).PublicKey()
	if err != nil {
		t.Fatalf("PublicKey: %+v", err)
	}
	forged := signature
	forged.PublicKey = otherPublicKey
	err = forged.Verify(instructions)
	if !errors.Is(err, engineerrors.ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature for a foreign public key, got %v", err)
	}
}

func TestChallengeIgnoresNilVersusEmpty(t *testing.T) {
	if Challenge(nil) != Challenge([]Instruction{}) {
		t.Fatalf("nil and empty instruction lists must share a challenge")
	}

	withNilArgs := Instruction{CallFunction: &CallFunction{Function: "create"}}
	withEmptyArgs := NewCallFunction(types.TemplateAddress{}, "create", nil)
	if Challenge([]Instruction{withNilArgs}) != Challenge([]Instruction{withEmptyArgs}) {
		t.Fatalf("nil and empty argument lists must share a challenge")
	}
}

func TestBuilderEndToEnd(t *testing.T) {
	secretKey := newSecretKey(t)
	instructions := testInstructions()
	var inputRef types.ShardID
	inputRef[0] = 0xcc

	transaction, err := NewBuilder().
		WithFeeInstructions(instructions).
		WithInputRefs([]types.ShardID{inputRef}).
		Sign(secretKey).
		Build()
	if err != nil {
		t.Fatalf("Build: %+v", err)
	}

	if len(transaction.FeeInstructions) != len(instructions) {
		t.Fatalf("expected %d fee instructions, got %d", len(instructions), len(transaction.FeeInstructions))
	}
	for i, instruction := range transaction.FeeInstructions {
		if instruction.String() != instructions[i].String() {
			t.Fatalf("instruction %d: expected %s, got %s", i, instructions[i], instruction)
		}
	}

	expectedChallenge := Challenge(instructions)
	if !transaction.Signature.PublicKey.Verify(expectedChallenge, transaction.Signature.Signature) {
		t.Fatalf("the embedded signature does not match the recomputed challenge")
	}
	publicKey, err := secretKey.PublicKey()
	if err != nil {
		t.Fatalf("PublicKey: %+v", err)
	}
	if transaction.Signature.PublicKey != publicKey {
		t.Fatalf("unexpected signer %s", transaction.Signature.PublicKey)
	}

	err = transaction.Verify()
	if err != nil {
		t.Fatalf("Verify: %+v", err)
	}
	if transaction.ID != transaction.CalculateID() || transaction.ID.IsZero() {
		t.Fatalf("unexpected transaction id %s", transaction.ID)
	}
	if len(transaction.InputRefs) != 1 || transaction.InputRefs[0] != inputRef {
		t.Fatalf("unexpected input refs %v", transaction.InputRefs)
	}
	if transaction.Inputs == nil || transaction.Outputs == nil || len(transaction.Inputs) != 0 {
		t.Fatalf("inputs and outputs must default to empty")
	}
}

func TestBuilderSplitsFeeAndMainInstructions(t *testing.T) {
	secretKey := newSecretKey(t)
	instructions := testInstructions()

	builder := NewBuilder()
	for _, instruction := range instructions[:2] {
		builder.AddFeeInstruction(instruction)
	}
	for _, instruction := range instructions[2:] {
		builder.AddInstruction(instruction)
	}
	transaction, err := builder.Sign(secretKey).Build()
	if err != nil {
		t.Fatalf("Build: %+v", err)
	}

	if len(transaction.FeeInstructions) != 2 || len(transaction.Instructions) != len(instructions)-2 {
		t.Fatalf("unexpected split: %d fee instructions, %d instructions",
			len(transaction.FeeInstructions), len(transaction.Instructions))
	}

	feeChallenge := Challenge(instructions[:2])
	if !transaction.Signature.PublicKey.Verify(feeChallenge, transaction.Signature.Signature) {
		t.Fatalf("the signature must cover the fee instructions only")
	}
	if transaction.Signature.PublicKey.Verify(Challenge(instructions), transaction.Signature.Signature) {
		t.Fatalf("the signature must not cover the main instructions")
	}
	err = transaction.Verify()
	if err != nil {
		t.Fatalf("Verify: %+v", err)
	}

	// Main instructions are bound through the id.
	transaction.Instructions = append(transaction.Instructions, NewEmitLog(LogLevelInfo, "injected"))
	err = transaction.Signature.Verify(transaction.SignedContent())
	if err != nil {
		t.Fatalf("the fee signature should be unaffected by main instructions: %+v", err)
	}
	err = transaction.Verify()
	if !errors.Is(err, engineerrors.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput for altered main instructions, got %v", err)
	}
}

func TestBuilderSignsFeeInstructionsOnly(t *testing.T) {
	secretKey := newSecretKey(t)
	fee := []Instruction{NewEmitLog(LogLevelInfo, "fee")}
	mainInstructions := []Instruction{NewEmitLog(LogLevelInfo, "main")}

	transaction, err := NewBuilder().
		WithFeeInstructions(fee).
		WithInstructions(mainInstructions).
		Sign(secretKey).
		Build()
	if err != nil {
		t.Fatalf("Build: %+v", err)
	}
	if !transaction.Signature.PublicKey.Verify(Challenge(fee), transaction.Signature.Signature) {
		t.Fatalf("the signature does not match the challenge of the fee instructions")
	}
}

func TestEmptyTransaction(t *testing.T) {
	transaction, err := NewBuilder().Sign(newSecretKey(t)).Build()
	if err != nil {
		t.Fatalf("Build: %+v", err)
	}
	if len(transaction.FeeInstructions) != 0 || len(transaction.Instructions) != 0 ||
		len(transaction.InputRefs) != 0 {
		t.Fatalf("expected an empty transaction, got %s", spew.Sdump(transaction))
	}
	err = transaction.Verify()
	if err != nil {
		t.Fatalf("Verify: %+v", err)
	}
}

func TestBuilderMisuse(t *testing.T) {
	secretKey := newSecretKey(t)

	tests := []struct {
		name  string
		build func() (*Transaction, error)
	}{
		{
			name: "build before sign",
			build: func() (*Transaction, error) {
				return NewBuilder().AddInstruction(NewPutOnWorkspace("x")).Build()
			},
		},
		{
			name: "sign twice",
			build: func() (*Transaction, error) {
				return NewBuilder().Sign(secretKey).Sign(secretKey).Build()
			},
		},
		{
			name: "add instruction after sign",
			build: func() (*Transaction, error) {
				return NewBuilder().Sign(secretKey).AddInstruction(NewPutOnWorkspace("x")).Build()
			},
		},
		{
			name: "set fee instructions after sign",
			build: func() (*Transaction, error) {
				return NewBuilder().Sign(secretKey).WithFeeInstructions(testInstructions()).Build()
			},
		},
		{
			name: "sign with a nil key",
			build: func() (*Transaction, error) {
				return NewBuilder().AddFeeInstruction(NewPutOnWorkspace("x")).Sign(nil).Build()
			},
		},
		{
			name: "set input refs after sign",
			build: func() (*Transaction, error) {
				return NewBuilder().Sign(secretKey).WithInputRefs([]types.ShardID{{}}).Build()
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			transaction, err := test.build()
			if !errors.Is(err, engineerrors.ErrBuilderMisuse) {
				t.Fatalf("expected ErrBuilderMisuse, got %v", err)
			}
			if transaction != nil {
				t.Fatalf("expected no transaction on misuse")
			}
		})
	}
}

func TestBuilderMisuseIsReportedImmediately(t *testing.T) {
	secretKey := newSecretKey(t)

	builder := NewBuilder().Sign(secretKey)
	if builder.Err() != nil {
		t.Fatalf("unexpected error after the first Sign: %+v", builder.Err())
	}
	builder.Sign(secretKey)
	if !errors.Is(builder.Err(), engineerrors.ErrBuilderMisuse) {
		t.Fatalf("expected ErrBuilderMisuse right after the second Sign, got %v", builder.Err())
	}

	builder = NewBuilder().Sign(nil)
	if !errors.Is(builder.Err(), engineerrors.ErrBuilderMisuse) {
		t.Fatalf("expected ErrBuilderMisuse right after Sign(nil), got %v", builder.Err())
	}
}

func TestBuilderBuildTwice(t *testing.T) {
	builder := NewBuilder().Sign(newSecretKey(t))
	_, err := builder.Build()
	if err != nil {
		t.Fatalf("Build: %+v", err)
	}
	_, err = builder.Build()
	if !errors.Is(err, engineerrors.ErrBuilderMisuse) {
		t.Fatalf("expected ErrBuilderMisuse, got %v", err)
	}
}

func TestBuilderFirstErrorSticks(t *testing.T) {
	secretKey := newSecretKey(t)
	builder := NewBuilder().Sign(secretKey)
	builder.AddInstruction(NewPutOnWorkspace("late"))
	firstErr := builder.Err()
	if !errors.Is(firstErr, engineerrors.ErrBuilderMisuse) {
		t.Fatalf("expected ErrBuilderMisuse, got %v", firstErr)
	}

	builder.Sign(secretKey)
	builder.WithOutputs(nil)
	_, err := builder.Build()
	if err != firstErr {
		t.Fatalf("expected the first error to be returned, got %v", err)
	}
}

func TestTamperedTransaction(t *testing.T) {
	transaction, err := NewBuilder().
		WithFeeInstructions(testInstructions()).
		Sign(newSecretKey(t)).
		Build()
	if err != nil {
		t.Fatalf("Build: %+v", err)
	}

	transaction.FeeInstructions = transaction.FeeInstructions[1:]
	err = transaction.Verify()
	if !errors.Is(err, engineerrors.ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestTransactionIDCoversShards(t *testing.T) {
	transaction, err := NewBuilder().Sign(newSecretKey(t)).Build()
	if err != nil {
		t.Fatalf("Build: %+v", err)
	}

	transaction.Outputs = append(transaction.Outputs, types.ShardID{1})
	err = transaction.Verify()
	if !errors.Is(err, engineerrors.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput for a stale id, got %v", err)
	}
}

func TestTransactionEncodingRoundTrip(t *testing.T) {
	transaction, err := NewBuilder().
		WithFeeInstructions(testInstructions()).
		WithInputRefs([]types.ShardID{{0xaa}}).
		Sign(newSecretKey(t)).
		Build()
	if err != nil {
		t.Fatalf("Build: %+v", err)
	}

	var decoded Transaction
	err = encoding.Decode(encoding.MustEncode(transaction), &decoded)
	if err != nil {
		t.Fatalf("Decode: %+v", err)
	}
	decoded.Normalize()
	err = decoded.Verify()
	if err != nil {
		t.Fatalf("Verify: %+v\n%s", err, spew.Sdump(decoded))
	}
	if decoded.ID != transaction.ID {
		t.Fatalf("expected id %s, got %s", transaction.ID, decoded.ID)
	}

	encodedJSON, err := encoding.EncodeJSON(transaction)
	if err != nil {
		t.Fatalf("EncodeJSON: %+v", err)
	}
	var decodedJSON Transaction
	err = encoding.DecodeJSON(encodedJSON, &decodedJSON)
	if err != nil {
		t.Fatalf("DecodeJSON: %+v", err)
	}
	decodedJSON.Normalize()
	err = decodedJSON.Verify()
	if err != nil {
		t.Fatalf("Verify: %+v\n%s", err, encodedJSON)
	}
}
