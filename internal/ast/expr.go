package ast

import (
	"github.com/HicaroD/mica/internal/lexer/token"
)

type BinaryOp struct {
	Op    token.Operator
	Left  AtomID
	Right AtomID
}

func (binary *BinaryOp) Kind() AtomKind { return KIND_BINARY_OP }
func (binary *BinaryOp) atomNode()      {}

type Const struct {
	Type  token.Type
	Value int
}

func (c *Const) Kind() AtomKind { return KIND_CONST }
func (c *Const) atomNode()      {}

// Variable is a read of a previously declared Arg or VariableDec.
type Variable struct {
	Binding
	Decl AtomID
}

func (variable *Variable) Kind() AtomKind { return KIND_VARIABLE }
func (variable *Variable) atomNode()      {}

type Nil struct{}

func (n *Nil) Kind() AtomKind { return KIND_NIL }
func (n *Nil) atomNode()      {}
