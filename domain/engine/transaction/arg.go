package transaction

import (
	"fmt"

	"github.com/danlabs/danwallet/domain/engine/encoding"
)

// Arg is an argument of a function or method call. Exactly one of its fields
// is set: Workspace names a value stored earlier in the transaction's
// workspace, Literal holds the canonical encoding of an inline value.
type Arg struct {
	_struct struct{} `codec:",omitempty"`

	Workspace []byte `codec:"Workspace,omitempty"`
	Literal   []byte `codec:"Literal,omitempty"`
}

// WorkspaceArg returns an argument referring to the workspace entry key
func WorkspaceArg(key string) Arg {
	return Arg{Workspace: []byte(key)}
}

// LiteralArg returns an argument holding the canonical encoding of value.
// It panics if value is not encodable.
func LiteralArg(value interface{}) Arg {
	return Arg{Literal: encoding.MustEncode(value)}
}

// Args builds an argument list. Values of type Arg are kept as is, every
// other value becomes a LiteralArg.
func Args(values ...interface{}) []Arg {
	args := make([]Arg, 0, len(values))
	for _, value := range values {
		if arg, ok := value.(Arg); ok {
			args = append(args, arg)
			continue
		}
		args = append(args, LiteralArg(value))
	}
	return args
}

// IsWorkspace returns true if the argument refers to a workspace entry
func (arg Arg) IsWorkspace() bool {
	return len(arg.Workspace) > 0
}

func (arg Arg) String() string {
	if arg.IsWorkspace() {
		return fmt.Sprintf("Workspace(%s)", arg.Workspace)
	}
	return fmt.Sprintf("Literal(%x)", arg.Literal)
}
