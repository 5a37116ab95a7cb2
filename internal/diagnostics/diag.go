package diagnostics

import (
	"errors"
	"fmt"

	"github.com/HicaroD/mica/internal/lexer/token"
)

var (
	ErrLexUnrecognized      = errors.New("unrecognizable token")
	ErrExpectedToken        = errors.New("unexpected token")
	ErrUnresolvedIdentifier = errors.New("unresolved identifier")
	ErrUnexpectedEOF        = errors.New("unexpected end of input")
	ErrRedeclared           = errors.New("symbol already declared")
	ErrArityMismatch        = errors.New("wrong number of arguments")
	ErrMalformedTree        = errors.New("malformed syntax tree")
)

// Diag is a single reported problem. Kind is one of the sentinel errors
// above, so callers can tell them apart with errors.Is.
type Diag struct {
	Kind    error
	Pos     token.Pos
	Message string
}

func NewDiag(kind error, pos token.Pos, format string, args ...any) *Diag {
	return &Diag{
		Kind: kind,
		Pos:  pos,
		Message: fmt.Sprintf(
			"%s:%d:%d: %s",
			pos.Filename,
			pos.Line,
			pos.Column,
			fmt.Sprintf(format, args...),
		),
	}
}

func (diag *Diag) Error() string { return diag.Message }

func (diag *Diag) Unwrap() error { return diag.Kind }
