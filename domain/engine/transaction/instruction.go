package transaction

import (
	"fmt"
	"strings"

	"github.com/danlabs/danwallet/domain/engine/types"
)

// Instruction is a single step of a transaction. Exactly one of its fields is
// set, and it is encoded as a single key map named after that field.
type Instruction struct {
	_struct struct{} `codec:",omitempty"`

	CallFunction                        *CallFunction                        `codec:"CallFunction,omitempty"`
	CallMethod                          *CallMethod                          `codec:"CallMethod,omitempty"`
	PutLastInstructionOutputOnWorkspace *PutLastInstructionOutputOnWorkspace `codec:"PutLastInstructionOutputOnWorkspace,omitempty"`
	EmitLog                             *EmitLog                             `codec:"EmitLog,omitempty"`
	CreateFreeTestCoins                 *CreateFreeTestCoins                 `codec:"CreateFreeTestCoins,omitempty"`
}

// CallFunction calls a function of a template, typically a constructor
type CallFunction struct {
	TemplateAddress types.TemplateAddress `codec:"template_address"`
	Function        string                `codec:"function"`
	Args            []Arg                 `codec:"args"`
}

// CallMethod calls a method of a component
type CallMethod struct {
	ComponentAddress types.ComponentAddress `codec:"component_address"`
	Method           string                 `codec:"method"`
	Args             []Arg                  `codec:"args"`
}

// PutLastInstructionOutputOnWorkspace stores the output of the previous
// instruction in the workspace under Key
type PutLastInstructionOutputOnWorkspace struct {
	Key []byte `codec:"key"`
}

// LogLevel is the level of an EmitLog instruction
type LogLevel string

// Log levels accepted by EmitLog
const (
	LogLevelError LogLevel = "Error"
	LogLevelWarn  LogLevel = "Warn"
	LogLevelInfo  LogLevel = "Info"
	LogLevelDebug LogLevel = "Debug"
)

// EmitLog writes a message to the transaction execution log
type EmitLog struct {
	Level   LogLevel `codec:"level"`
	Message string   `codec:"message"`
}

// CreateFreeTestCoins mints test funds on networks that allow it. Output is
// reserved for a confidential output and is always nil.
type CreateFreeTestCoins struct {
	RevealedAmount types.Amount `codec:"revealed_amount"`
	Output         []byte       `codec:"output"`
}

// NewCallFunction returns a CallFunction instruction
func NewCallFunction(templateAddress types.TemplateAddress, function string, args []Arg) Instruction {
	return Instruction{CallFunction: &CallFunction{
		TemplateAddress: templateAddress,
		Function:        function,
		Args:            normalizeArgs(args),
	}}
}

// NewCallMethod returns a CallMethod instruction
func NewCallMethod(componentAddress types.ComponentAddress, method string, args []Arg) Instruction {
	return Instruction{CallMethod: &CallMethod{
		ComponentAddress: componentAddress,
		Method:           method,
		Args:             normalizeArgs(args),
	}}
}

// NewPutOnWorkspace returns a PutLastInstructionOutputOnWorkspace instruction
func NewPutOnWorkspace(key string) Instruction {
	return Instruction{PutLastInstructionOutputOnWorkspace: &PutLastInstructionOutputOnWorkspace{
		Key: []byte(key),
	}}
}

// NewEmitLog returns an EmitLog instruction
func NewEmitLog(level LogLevel, message string) Instruction {
	return Instruction{EmitLog: &EmitLog{Level: level, Message: message}}
}

// NewCreateFreeTestCoins returns a CreateFreeTestCoins instruction
func NewCreateFreeTestCoins(revealedAmount types.Amount) Instruction {
	return Instruction{CreateFreeTestCoins: &CreateFreeTestCoins{RevealedAmount: revealedAmount}}
}

// Kind returns the name of the variant held by the instruction
func (instruction Instruction) Kind() string {
	switch {
	case instruction.CallFunction != nil:
		return "CallFunction"
	case instruction.CallMethod != nil:
		return "CallMethod"
	case instruction.PutLastInstructionOutputOnWorkspace != nil:
		return "PutLastInstructionOutputOnWorkspace"
	case instruction.EmitLog != nil:
		return "EmitLog"
	case instruction.CreateFreeTestCoins != nil:
		return "CreateFreeTestCoins"
	default:
		return "Empty"
	}
}

func (instruction Instruction) String() string {
	switch {
	case instruction.CallFunction != nil:
		call := instruction.CallFunction
		return fmt.Sprintf("CallFunction %s::%s(%s)", call.TemplateAddress, call.Function, argsString(call.Args))
	case instruction.CallMethod != nil:
		call := instruction.CallMethod
		return fmt.Sprintf("CallMethod %s.%s(%s)", call.ComponentAddress, call.Method, argsString(call.Args))
	case instruction.PutLastInstructionOutputOnWorkspace != nil:
		return fmt.Sprintf("PutLastInstructionOutputOnWorkspace %s", instruction.PutLastInstructionOutputOnWorkspace.Key)
	case instruction.EmitLog != nil:
		return fmt.Sprintf("EmitLog [%s] %s", instruction.EmitLog.Level, instruction.EmitLog.Message)
	case instruction.CreateFreeTestCoins != nil:
		return fmt.Sprintf("CreateFreeTestCoins %s", instruction.CreateFreeTestCoins.RevealedAmount)
	default:
		return "Empty"
	}
}

// normalize replaces nil slices by empty ones, so that a decoded instruction
// encodes to the same bytes as the one it was decoded from.
func (instruction Instruction) normalize() Instruction {
	switch {
	case instruction.CallFunction != nil:
		call := *instruction.CallFunction
		call.Args = normalizeArgs(call.Args)
		instruction.CallFunction = &call
	case instruction.CallMethod != nil:
		call := *instruction.CallMethod
		call.Args = normalizeArgs(call.Args)
		instruction.CallMethod = &call
	case instruction.PutLastInstructionOutputOnWorkspace != nil:
		put := *instruction.PutLastInstructionOutputOnWorkspace
		if put.Key == nil {
			put.Key = []byte{}
		}
		instruction.PutLastInstructionOutputOnWorkspace = &put
	}
	return instruction
}

func normalizeArgs(args []Arg) []Arg {
	if args == nil {
		return []Arg{}
	}
	return args
}

func normalizeInstructions(instructions []Instruction) []Instruction {
	normalized := make([]Instruction, len(instructions))
	for i, instruction := range instructions {
		normalized[i] = instruction.normalize()
	}
	return normalized
}

func argsString(args []Arg) string {
	argStrings := make([]string, len(args))
	for i, arg := range args {
		argStrings[i] = arg.String()
	}
	return strings.Join(argStrings, ", ")
}
