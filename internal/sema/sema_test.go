package sema

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/HicaroD/mica/config"
	"github.com/HicaroD/mica/internal/ast"
	"github.com/HicaroD/mica/internal/diagnostics"
	"github.com/HicaroD/mica/internal/lexer/token"
	"github.com/HicaroD/mica/internal/parser"
)

func parseAndCheck(t *testing.T, src string) (*diagnostics.Collector, error) {
	t.Helper()
	collector := diagnostics.New()

	p := parser.NewFromSource("test.mc", []byte(src), collector)
	tree, err := p.ParseProgram("test", config.EXECUTABLE)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	sema := New(collector)
	return collector, sema.Check(tree)
}

func TestCheckParsedPrograms(t *testing.T) {
	tests := []string{
		"",
		"fn add(a: isize, b: isize) -> isize { return a + b; }",
		"fn one() -> isize { return 1; } fn main() -> isize { one(); let x: isize = one() * 2; x = x << 1; return x; }",
		"fn f(a: u64) -> u64 { let b: u64; b = (a + 1) / 2; a = b; return a == b; }",
	}

	for _, src := range tests {
		t.Run(fmt.Sprintf("TestCheckParsedPrograms('%s')", src), func(t *testing.T) {
			collector, err := parseAndCheck(t, src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if collector.HasErrors() {
				t.Errorf("unexpected diagnostics: %v", collector.Diags)
			}
		})
	}
}

func TestCheckMalformedTrees(t *testing.T) {
	tests := []struct {
		name    string
		build   func(arena *ast.Arena) ast.AtomID
		message string
	}{
		{
			name: "RootIsNotProgram",
			build: func(arena *ast.Arena) ast.AtomID {
				return arena.Alloc(&ast.Const{Type: token.ISIZE, Value: 1})
			},
			message: "root is a Const",
		},
		{
			name: "DanglingReturnValue",
			build: func(arena *ast.Arena) ast.AtomID {
				ret := arena.Alloc(&ast.Return{Value: 42})
				fn := arena.Alloc(&ast.Function{Name: "f", Statements: []ast.AtomID{ret}})
				return arena.Alloc(&ast.Program{Name: "p", Start: fn, Items: []ast.AtomID{fn}})
			},
			message: "dangling reference 42",
		},
		{
			name: "ForwardReference",
			build: func(arena *ast.Arena) ast.AtomID {
				ret := arena.Alloc(&ast.Return{Value: 1})
				arena.Alloc(&ast.Const{Type: token.ISIZE, Value: 1})
				fn := arena.Alloc(&ast.Function{Name: "f", Statements: []ast.AtomID{ret}})
				return arena.Alloc(&ast.Program{Name: "p", Start: fn, Items: []ast.AtomID{fn}})
			},
			message: "forward reference to 1",
		},
		{
			name: "AssignToConst",
			build: func(arena *ast.Arena) ast.AtomID {
				target := arena.Alloc(&ast.Const{Type: token.ISIZE, Value: 1})
				value := arena.Alloc(&ast.Const{Type: token.ISIZE, Value: 2})
				assign := arena.Alloc(&ast.Assignment{Target: target, Value: value})
				fn := arena.Alloc(&ast.Function{Name: "f", Statements: []ast.AtomID{assign}})
				return arena.Alloc(&ast.Program{Name: "p", Start: fn, Items: []ast.AtomID{fn}})
			},
			message: "cannot assign to Const",
		},
		{
			name: "CallArity",
			build: func(arena *ast.Arena) ast.AtomID {
				callee := arena.Alloc(&ast.Function{Name: "g"})
				one := arena.Alloc(&ast.Const{Type: token.ISIZE, Value: 1})
				call := arena.Alloc(&ast.FunctionCall{Callee: callee, Args: []ast.AtomID{one}})
				fn := arena.Alloc(&ast.Function{Name: "f", Statements: []ast.AtomID{call}})
				return arena.Alloc(&ast.Program{Name: "p", Start: callee, Items: []ast.AtomID{callee, fn}})
			},
			message: "call to 'g' with 1 argument(s)",
		},
		{
			name: "ExpressionAsStatement",
			build: func(arena *ast.Arena) ast.AtomID {
				value := arena.Alloc(&ast.Const{Type: token.ISIZE, Value: 1})
				fn := arena.Alloc(&ast.Function{Name: "f", Statements: []ast.AtomID{value}})
				return arena.Alloc(&ast.Program{Name: "p", Start: fn, Items: []ast.AtomID{fn}})
			},
			message: "Const is not a statement",
		},
		{
			name: "StatementAsExpression",
			build: func(arena *ast.Arena) ast.AtomID {
				value := arena.Alloc(&ast.Const{Type: token.ISIZE, Value: 1})
				inner := arena.Alloc(&ast.Return{Value: value})
				ret := arena.Alloc(&ast.Return{Value: inner})
				fn := arena.Alloc(&ast.Function{Name: "f", Statements: []ast.AtomID{ret}})
				return arena.Alloc(&ast.Program{Name: "p", Start: fn, Items: []ast.AtomID{fn}})
			},
			message: "Return is not an expression",
		},
		{
			name: "NegativeUnsignedConst",
			build: func(arena *ast.Arena) ast.AtomID {
				value := arena.Alloc(&ast.Const{Type: token.U64, Value: -1})
				ret := arena.Alloc(&ast.Return{Value: value})
				fn := arena.Alloc(&ast.Function{Name: "f", Statements: []ast.AtomID{ret}})
				return arena.Alloc(&ast.Program{Name: "p", Start: fn, Items: []ast.AtomID{fn}})
			},
			message: "constant -1 does not fit u64",
		},
		{
			name: "TopLevelStatement",
			build: func(arena *ast.Arena) ast.AtomID {
				value := arena.Alloc(&ast.Const{Type: token.ISIZE, Value: 1})
				ret := arena.Alloc(&ast.Return{Value: value})
				return arena.Alloc(&ast.Program{Name: "p", Start: ret, Items: []ast.AtomID{ret}})
			},
			message: "top level Return is not a declaration",
		},
		{
			name: "WrongStart",
			build: func(arena *ast.Arena) ast.AtomID {
				fn := arena.Alloc(&ast.Function{Name: "f"})
				return arena.Alloc(&ast.Program{Name: "p", Start: ast.NoAtom, Items: []ast.AtomID{fn}})
			},
			message: "is not the first item",
		},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestCheckMalformedTrees(%s)", test.name), func(t *testing.T) {
			arena := ast.NewArena()
			root := test.build(arena)
			collector := diagnostics.New()

			err := New(collector).Check(&ast.Tree{Arena: arena, Root: root})
			if !errors.Is(err, diagnostics.ErrMalformedTree) {
				t.Fatalf("expected ErrMalformedTree, but got %v", err)
			}
			if !strings.Contains(err.Error(), test.message) {
				t.Errorf("expected %q in %q", test.message, err.Error())
			}
			if len(collector.Diags) != 1 {
				t.Errorf("expected 1 diagnostic, but got %d", len(collector.Diags))
			}
		})
	}
}
