package token

import (
	"fmt"
)

type Kind int

const (
	// {
	OPEN_CURLY Kind = iota
	// }
	CLOSE_CURLY
	// (
	OPEN_PAREN
	// )
	CLOSE_PAREN
	// ;
	SEMICOLON
	// :
	COLON
	// ,
	COMMA
	// ->
	ARROW

	// Payload carrying kinds
	KEYWORD
	ID
	LITERAL
	OPERATOR

	// Malformed item, lexing goes on
	UNRECOGNIZABLE
)

func (kind Kind) String() string {
	switch kind {
	case OPEN_CURLY:
		return "OpenBrace"
	case CLOSE_CURLY:
		return "CloseBrace"
	case OPEN_PAREN:
		return "OpenParanthesis"
	case CLOSE_PAREN:
		return "CloseParanthesis"
	case SEMICOLON:
		return "Semicolon"
	case COLON:
		return "Colon"
	case COMMA:
		return "Comma"
	case ARROW:
		return "Arrow"
	case KEYWORD:
		return "Keyword"
	case ID:
		return "Identifier"
	case LITERAL:
		return "Literal"
	case OPERATOR:
		return "Operator"
	case UNRECOGNIZABLE:
		return "Unrecognizable"
	}
	return fmt.Sprintf("Kind(%d)", int(kind))
}

type Keyword int

const (
	// Primitive type keyword, see Type
	TYPE Keyword = iota
	RETURN
	FN
	LET
	IF
	ELSE
	MATCH
	WHILE
	FOR
)

func (kw Keyword) String() string {
	switch kw {
	case TYPE:
		return "Type"
	case RETURN:
		return "Return"
	case FN:
		return "Fn"
	case LET:
		return "Let"
	case IF:
		return "If"
	case ELSE:
		return "Else"
	case MATCH:
		return "Match"
	case WHILE:
		return "While"
	case FOR:
		return "For"
	}
	return fmt.Sprintf("Keyword(%d)", int(kw))
}

type Type int

const (
	ISIZE Type = iota // isize
	USIZE             // usize
	I64               // i64
	U64               // u64
)

func (ty Type) String() string {
	switch ty {
	case ISIZE:
		return "Isize"
	case USIZE:
		return "Usize"
	case I64:
		return "I64"
	case U64:
		return "U64"
	}
	return fmt.Sprintf("Type(%d)", int(ty))
}

// Spelling returns the keyword used in source code for the type.
func (ty Type) Spelling() string {
	switch ty {
	case ISIZE:
		return "isize"
	case USIZE:
		return "usize"
	case I64:
		return "i64"
	case U64:
		return "u64"
	}
	return ""
}

func (ty Type) IsSigned() bool {
	return ty == ISIZE || ty == I64
}

type Operator int

const (
	// ==
	EQUAL Operator = iota
	// <
	LT
	// >
	GT
	// <=
	LE
	// >=
	GE
	// +
	ADD
	// -
	SUB
	// =
	ASSIGN
	// *
	MUL
	// /
	DIV
	// .
	DOT
	// <<
	LSHIFT
	// >>
	RSHIFT
)

func (op Operator) String() string {
	switch op {
	case EQUAL:
		return "Equal"
	case LT:
		return "LT"
	case GT:
		return "GT"
	case LE:
		return "LE"
	case GE:
		return "GE"
	case ADD:
		return "Add"
	case SUB:
		return "Sub"
	case ASSIGN:
		return "Assign"
	case MUL:
		return "Mul"
	case DIV:
		return "Div"
	case DOT:
		return "Dot"
	case LSHIFT:
		return "LShift"
	case RSHIFT:
		return "RShift"
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

func (op Operator) Spelling() string {
	switch op {
	case EQUAL:
		return "=="
	case LT:
		return "<"
	case GT:
		return ">"
	case LE:
		return "<="
	case GE:
		return ">="
	case ADD:
		return "+"
	case SUB:
		return "-"
	case ASSIGN:
		return "="
	case MUL:
		return "*"
	case DIV:
		return "/"
	case DOT:
		return "."
	case LSHIFT:
		return "<<"
	case RSHIFT:
		return ">>"
	}
	return ""
}

var EQUALITY map[Operator]bool = map[Operator]bool{
	EQUAL: true,
}

var RELATIONAL map[Operator]bool = map[Operator]bool{
	LT: true,
	GT: true,
	LE: true,
	GE: true,
}

var SHIFT map[Operator]bool = map[Operator]bool{
	LSHIFT: true,
	RSHIFT: true,
}

var ADDITIVE map[Operator]bool = map[Operator]bool{
	ADD: true,
	SUB: true,
}

var MULTIPLICATIVE map[Operator]bool = map[Operator]bool{
	MUL: true,
	DIV: true,
}

// Exact lexeme table used by the classifier. Anything not listed here is
// either an integer literal, an identifier or unrecognizable.
var LEXEMES map[string]*Token = map[string]*Token{
	"fn":     {Kind: KEYWORD, Keyword: FN},
	"return": {Kind: KEYWORD, Keyword: RETURN},
	"let":    {Kind: KEYWORD, Keyword: LET},
	"if":     {Kind: KEYWORD, Keyword: IF},
	"else":   {Kind: KEYWORD, Keyword: ELSE},
	"match":  {Kind: KEYWORD, Keyword: MATCH},
	"while":  {Kind: KEYWORD, Keyword: WHILE},
	"for":    {Kind: KEYWORD, Keyword: FOR},

	"isize": {Kind: KEYWORD, Keyword: TYPE, Type: ISIZE},
	"usize": {Kind: KEYWORD, Keyword: TYPE, Type: USIZE},
	"i64":   {Kind: KEYWORD, Keyword: TYPE, Type: I64},
	"u64":   {Kind: KEYWORD, Keyword: TYPE, Type: U64},

	"(":  {Kind: OPEN_PAREN},
	")":  {Kind: CLOSE_PAREN},
	"{":  {Kind: OPEN_CURLY},
	"}":  {Kind: CLOSE_CURLY},
	";":  {Kind: SEMICOLON},
	":":  {Kind: COLON},
	",":  {Kind: COMMA},
	"->": {Kind: ARROW},

	"==": {Kind: OPERATOR, Op: EQUAL},
	"<":  {Kind: OPERATOR, Op: LT},
	">":  {Kind: OPERATOR, Op: GT},
	"<=": {Kind: OPERATOR, Op: LE},
	">=": {Kind: OPERATOR, Op: GE},
	"+":  {Kind: OPERATOR, Op: ADD},
	"-":  {Kind: OPERATOR, Op: SUB},
	"=":  {Kind: OPERATOR, Op: ASSIGN},
	"*":  {Kind: OPERATOR, Op: MUL},
	"/":  {Kind: OPERATOR, Op: DIV},
	".":  {Kind: OPERATOR, Op: DOT},
	"<<": {Kind: OPERATOR, Op: LSHIFT},
	">>": {Kind: OPERATOR, Op: RSHIFT},
}
