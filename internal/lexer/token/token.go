package token

import (
	"fmt"
	"strconv"
)

// Token is a single lexical unit. Only the fields relevant to Kind are set:
// Keyword (and Type for type keywords), Name for identifiers, Value for
// literals and Op for operators.
type Token struct {
	Kind    Kind
	Keyword Keyword
	Type    Type
	Name    string
	Value   int
	Op      Operator

	Lexeme []byte
	Pos    Pos
}

func New(kind Kind, lexeme []byte, pos Pos) *Token {
	return &Token{Kind: kind, Lexeme: lexeme, Pos: pos}
}

func NewKeyword(kw Keyword) *Token { return &Token{Kind: KEYWORD, Keyword: kw} }

func NewType(ty Type) *Token { return &Token{Kind: KEYWORD, Keyword: TYPE, Type: ty} }

func NewId(name string) *Token { return &Token{Kind: ID, Name: name} }

func NewLiteral(value int) *Token { return &Token{Kind: LITERAL, Value: value} }

func NewOperator(op Operator) *Token { return &Token{Kind: OPERATOR, Op: op} }

func (token *Token) Is(kind Kind) bool { return token.Kind == kind }

func (token *Token) IsKeyword(kw Keyword) bool {
	return token.Kind == KEYWORD && token.Keyword == kw
}

func (token *Token) IsType() bool { return token.IsKeyword(TYPE) }

func (token *Token) IsOperator(op Operator) bool {
	return token.Kind == OPERATOR && token.Op == op
}

// Equals compares tag and payload. Lexeme and position are ignored.
func (token *Token) Equals(other *Token) bool {
	if token.Kind != other.Kind {
		return false
	}
	switch token.Kind {
	case KEYWORD:
		if token.Keyword != other.Keyword {
			return false
		}
		return token.Keyword != TYPE || token.Type == other.Type
	case ID:
		return token.Name == other.Name
	case LITERAL:
		return token.Value == other.Value
	case OPERATOR:
		return token.Op == other.Op
	default:
		return true
	}
}

func (token *Token) String() string {
	switch token.Kind {
	case KEYWORD:
		if token.Keyword == TYPE {
			return fmt.Sprintf("Keyword(Type(%s))", token.Type)
		}
		return fmt.Sprintf("Keyword(%s)", token.Keyword)
	case ID:
		return fmt.Sprintf("Identifier(%q)", token.Name)
	case LITERAL:
		return fmt.Sprintf("Literal(%d)", token.Value)
	case OPERATOR:
		return fmt.Sprintf("Operator(%s)", token.Op)
	default:
		return token.Kind.String()
	}
}

// Source returns the canonical spelling of the token, so that joining the
// spellings of a stream with spaces lexes back to the same stream.
func (token *Token) Source() string {
	switch token.Kind {
	case OPEN_CURLY:
		return "{"
	case CLOSE_CURLY:
		return "}"
	case OPEN_PAREN:
		return "("
	case CLOSE_PAREN:
		return ")"
	case SEMICOLON:
		return ";"
	case COLON:
		return ":"
	case COMMA:
		return ","
	case ARROW:
		return "->"
	case KEYWORD:
		if token.Keyword == TYPE {
			return token.Type.Spelling()
		}
		return keywordSpelling(token.Keyword)
	case ID:
		return token.Name
	case LITERAL:
		return strconv.Itoa(token.Value)
	case OPERATOR:
		return token.Op.Spelling()
	default:
		return string(token.Lexeme)
	}
}

func keywordSpelling(kw Keyword) string {
	switch kw {
	case RETURN:
		return "return"
	case FN:
		return "fn"
	case LET:
		return "let"
	case IF:
		return "if"
	case ELSE:
		return "else"
	case MATCH:
		return "match"
	case WHILE:
		return "while"
	case FOR:
		return "for"
	}
	return ""
}
