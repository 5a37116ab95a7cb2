package ast

import (
	"fmt"

	"github.com/HicaroD/mica/internal/lexer/token"
)

type Program struct {
	Name    string
	Library bool // false means an executable build target
	Start   AtomID
	Items   []AtomID
}

func (program *Program) Kind() AtomKind { return KIND_PROGRAM }
func (program *Program) atomNode()      {}
func (program *Program) String() string {
	target := "executable"
	if program.Library {
		target = "library"
	}
	return fmt.Sprintf("PROGRAM: %s (%s) items=%v", program.Name, target, program.Items)
}

type Function struct {
	Name       string
	Args       []AtomID
	ReturnType token.Type
	Statements []AtomID
}

func (fn *Function) Kind() AtomKind { return KIND_FUNCTION }
func (fn *Function) atomNode()      {}
func (fn *Function) Arity() int     { return len(fn.Args) }
func (fn *Function) String() string {
	return fmt.Sprintf("FN: %s%v -> %s %v", fn.Name, fn.Args, fn.ReturnType.Spelling(), fn.Statements)
}

// Binding is the shape shared by arguments, variable declarations and
// resolved variable references.
type Binding struct {
	Name string
	Type token.Type
}

func (binding Binding) String() string {
	return fmt.Sprintf("%s: %s", binding.Name, binding.Type.Spelling())
}

type Arg struct{ Binding }

func (arg *Arg) Kind() AtomKind { return KIND_ARG }
func (arg *Arg) atomNode()      {}

type VariableDec struct{ Binding }

func (dec *VariableDec) Kind() AtomKind { return KIND_VARIABLE_DEC }
func (dec *VariableDec) atomNode()      {}

// VariableDef pairs a declaration with the assignment that initializes it.
// Assign's target is Dec.
type VariableDef struct {
	Dec    AtomID
	Assign AtomID
}

func (def *VariableDef) Kind() AtomKind { return KIND_VARIABLE_DEF }
func (def *VariableDef) atomNode()      {}
