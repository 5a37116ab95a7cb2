package token

import (
	"fmt"
	"testing"
)

func TestTokenRendering(t *testing.T) {
	tests := []struct {
		token  *Token
		debug  string
		source string
	}{
		{NewKeyword(FN), "Keyword(Fn)", "fn"},
		{NewKeyword(RETURN), "Keyword(Return)", "return"},
		{NewType(ISIZE), "Keyword(Type(Isize))", "isize"},
		{NewType(U64), "Keyword(Type(U64))", "u64"},
		{NewId("add"), `Identifier("add")`, "add"},
		{NewLiteral(42), "Literal(42)", "42"},
		{NewOperator(ADD), "Operator(Add)", "+"},
		{NewOperator(LSHIFT), "Operator(LShift)", "<<"},
		{NewOperator(EQUAL), "Operator(Equal)", "=="},
		{New(ARROW, nil, Pos{}), "Arrow", "->"},
		{New(OPEN_CURLY, nil, Pos{}), "OpenBrace", "{"},
		{New(OPEN_PAREN, nil, Pos{}), "OpenParanthesis", "("},
		{New(UNRECOGNIZABLE, []byte("=-"), Pos{}), "Unrecognizable", "=-"},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestTokenRendering('%s')", test.debug), func(t *testing.T) {
			if actual := test.token.String(); actual != test.debug {
				t.Errorf("expected %s, but got %s", test.debug, actual)
			}
			if actual := test.token.Source(); actual != test.source {
				t.Errorf("expected source %q, but got %q", test.source, actual)
			}
		})
	}
}

func TestTokenEqualsIgnoresPosition(t *testing.T) {
	a := NewId("x")
	a.Pos = NewPosition("a.mc", 1, 1)
	b := NewId("x")
	b.Pos = NewPosition("b.mc", 3, 7)

	if !a.Equals(b) {
		t.Errorf("expected %s and %s to be equal", a, b)
	}
	if a.Equals(NewId("y")) {
		t.Errorf("expected different names to differ")
	}
	if NewLiteral(1).Equals(NewId("1")) {
		t.Errorf("expected different kinds to differ")
	}
}

func TestTypeProperties(t *testing.T) {
	tests := []struct {
		ty     Type
		signed bool
	}{
		{ISIZE, true},
		{USIZE, false},
		{I64, true},
		{U64, false},
	}

	for _, test := range tests {
		t.Run(test.ty.Spelling(), func(t *testing.T) {
			if test.ty.IsSigned() != test.signed {
				t.Errorf("expected signed=%v", test.signed)
			}
		})
	}
}

func TestLineTable(t *testing.T) {
	table := NewLineTable("f.mc", []byte("ab\ncd\n\nx"))

	tests := []struct {
		offset       int
		line, column int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{4, 2, 2},
		{7, 4, 1},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("TestLineTable(%d)", test.offset), func(t *testing.T) {
			expected := NewPosition("f.mc", test.line, test.column)
			if actual := table.Position(test.offset); actual != expected {
				t.Errorf("expected %s, but got %s", expected, actual)
			}
		})
	}
}
