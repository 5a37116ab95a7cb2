// Package ast defines the atoms (syntax tree nodes) produced by the parser.
//
// Atoms live in an Arena and refer to each other through AtomID indices, so a
// resolved reference (an assignment target, a call's callee) is just the index
// of a declaration that was allocated earlier in the same arena.
package ast

import "fmt"

type AtomID int

// NoAtom is the absent reference.
const NoAtom AtomID = -1

type AtomKind int

const (
	KIND_PROGRAM AtomKind = iota

	DECL_START // declaration atom start delimiter
	KIND_FUNCTION
	KIND_ARG
	KIND_VARIABLE_DEC
	KIND_VARIABLE_DEF
	DECL_END // declaration atom end delimiter

	STMT_START // statement atom start delimiter
	KIND_ASSIGNMENT
	KIND_RETURN

	EXPR_START // expression atom start delimiter
	KIND_FUNCTION_CALL // expression and statement
	STMT_END           // statement atom end delimiter

	KIND_BINARY_OP
	KIND_CONST
	KIND_VARIABLE
	EXPR_END // expression atom end delimiter

	KIND_NIL
)

func (kind AtomKind) String() string {
	switch kind {
	case KIND_PROGRAM:
		return "Program"
	case KIND_FUNCTION:
		return "Function"
	case KIND_ARG:
		return "Arg"
	case KIND_VARIABLE_DEC:
		return "VariableDec"
	case KIND_VARIABLE_DEF:
		return "VariableDef"
	case KIND_ASSIGNMENT:
		return "Assignment"
	case KIND_RETURN:
		return "Return"
	case KIND_FUNCTION_CALL:
		return "FunctionCall"
	case KIND_BINARY_OP:
		return "BinaryOp"
	case KIND_CONST:
		return "Const"
	case KIND_VARIABLE:
		return "Variable"
	case KIND_NIL:
		return "Nil"
	default:
		return fmt.Sprintf("Unknown Atom Kind: %d", int(kind))
	}
}

func (kind AtomKind) IsDecl() bool { return kind > DECL_START && kind < DECL_END }

func (kind AtomKind) IsStmt() bool {
	return (kind > STMT_START && kind < STMT_END) || kind == KIND_VARIABLE_DEF || kind == KIND_VARIABLE_DEC
}

func (kind AtomKind) IsExpr() bool { return kind > EXPR_START && kind < EXPR_END }

// IsVariable reports whether an atom of this kind declares something that can
// be read and assigned: a function argument or a let binding.
func (kind AtomKind) IsVariable() bool {
	return kind == KIND_ARG || kind == KIND_VARIABLE_DEC
}

// Node is the closed set of atom payloads. Only types in this package
// implement it.
type Node interface {
	Kind() AtomKind
	atomNode()
}
