package ast

import (
	"errors"
	"fmt"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/HicaroD/mica/internal/lexer/token"
)

func TestScopeInsertAndLookup(t *testing.T) {
	universe := NewScope(nil)
	fnScope := NewScope(universe)

	if err := universe.Insert("add", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := universe.Insert("add", 1); !errors.Is(err, ErrSymbolAlreadyDefinedOnScope) {
		t.Errorf("expected ErrSymbolAlreadyDefinedOnScope, but got %v", err)
	}
	if err := fnScope.Insert("a", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		scope   *Scope
		name    string
		across  bool
		id      AtomID
		wantErr error
	}{
		{fnScope, "a", false, 2, nil},
		{fnScope, "add", false, NoAtom, ErrSymbolNotFoundOnScope},
		{fnScope, "add", true, 0, nil},
		{universe, "a", true, NoAtom, ErrSymbolNotFoundOnScope},
		{universe, "missing", true, NoAtom, ErrSymbolNotFoundOnScope},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestScopeLookup('%s', across=%v)", test.name, test.across), func(t *testing.T) {
			var id AtomID
			var err error
			if test.across {
				id, err = test.scope.LookupAcrossScopes(test.name)
			} else {
				id, err = test.scope.LookupCurrentScope(test.name)
			}
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected error %v, but got %v", test.wantErr, err)
			}
			if id != test.id {
				t.Errorf("expected id %d, but got %d", test.id, id)
			}
		})
	}
}

func TestArenaAllocIsStable(t *testing.T) {
	arena := NewArena()

	first := arena.Alloc(&Arg{Binding{Name: "a", Type: token.ISIZE}})
	second := arena.Alloc(&Const{Type: token.ISIZE, Value: 3})

	if first != 0 || second != 1 {
		t.Fatalf("expected ids 0 and 1, but got %d and %d", first, second)
	}
	if arena.Kind(first) != KIND_ARG {
		t.Errorf("expected Arg, but got %s", arena.Kind(first))
	}
	if arena.Get(NoAtom) != nil || arena.Get(42) != nil {
		t.Errorf("expected out of range lookups to return nil")
	}
	if arena.Kind(42) != KIND_NIL {
		t.Errorf("expected out of range kind to be Nil")
	}
	if arena.Name(first) != "a" {
		t.Errorf("expected name 'a', but got %q", arena.Name(first))
	}
}

func TestAtomKindClasses(t *testing.T) {
	tests := []struct {
		kind                           AtomKind
		isDecl, isStmt, isExpr, isVar bool
	}{
		{KIND_FUNCTION, true, false, false, false},
		{KIND_ARG, true, false, false, true},
		{KIND_VARIABLE_DEC, true, true, false, true},
		{KIND_VARIABLE_DEF, true, true, false, false},
		{KIND_ASSIGNMENT, false, true, false, false},
		{KIND_RETURN, false, true, false, false},
		{KIND_FUNCTION_CALL, false, true, true, false},
		{KIND_BINARY_OP, false, false, true, false},
		{KIND_CONST, false, false, true, false},
		{KIND_VARIABLE, false, false, true, false},
		{KIND_NIL, false, false, false, false},
	}

	for _, test := range tests {
		t.Run(test.kind.String(), func(t *testing.T) {
			if test.kind.IsDecl() != test.isDecl {
				t.Errorf("IsDecl: expected %v", test.isDecl)
			}
			if test.kind.IsStmt() != test.isStmt {
				t.Errorf("IsStmt: expected %v", test.isStmt)
			}
			if test.kind.IsExpr() != test.isExpr {
				t.Errorf("IsExpr: expected %v", test.isExpr)
			}
			if test.kind.IsVariable() != test.isVar {
				t.Errorf("IsVariable: expected %v", test.isVar)
			}
		})
	}
}

func TestTreeYAMLDump(t *testing.T) {
	arena := NewArena()

	a := arena.Alloc(&Arg{Binding{Name: "a", Type: token.ISIZE}})
	read := arena.Alloc(&Variable{Binding: Binding{Name: "a", Type: token.ISIZE}, Decl: a})
	one := arena.Alloc(&Const{Type: token.ISIZE, Value: 1})
	sum := arena.Alloc(&BinaryOp{Op: token.ADD, Left: read, Right: one})
	ret := arena.Alloc(&Return{Value: sum})
	fn := arena.Alloc(&Function{
		Name:       "inc",
		Args:       []AtomID{a},
		ReturnType: token.ISIZE,
		Statements: []AtomID{ret},
	})
	root := arena.Alloc(&Program{Name: "demo", Start: fn, Items: []AtomID{fn}})

	tree := &Tree{Arena: arena, Root: root}
	out, err := yaml.Marshal(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var dumped struct {
		Kind   string
		Name   string
		Target string
		Items  []struct {
			Kind       string
			Name       string
			ReturnType string `yaml:"return_type"`
			Args       []map[string]string
			Statements []struct {
				Kind  string
				Value struct {
					Kind  string
					Op    string
					Left  map[string]string
					Right map[string]any
				}
			}
		}
	}
	if err := yaml.Unmarshal(out, &dumped); err != nil {
		t.Fatalf("dump is not valid YAML: %v\n%s", err, out)
	}

	if dumped.Kind != "Program" || dumped.Name != "demo" || dumped.Target != "executable" {
		t.Fatalf("unexpected program header in dump:\n%s", out)
	}
	if len(dumped.Items) != 1 || dumped.Items[0].Name != "inc" || dumped.Items[0].ReturnType != "isize" {
		t.Fatalf("unexpected function in dump:\n%s", out)
	}
	if len(dumped.Items[0].Args) != 1 || dumped.Items[0].Args[0]["type"] != "isize" {
		t.Errorf("unexpected args in dump:\n%s", out)
	}
	stmt := dumped.Items[0].Statements[0]
	if stmt.Kind != "Return" || stmt.Value.Kind != "BinaryOp" || stmt.Value.Op != "+" {
		t.Errorf("unexpected return statement in dump:\n%s", out)
	}
	if stmt.Value.Left["decl"] != "a#0" {
		t.Errorf("expected variable to reference 'a#0', but got %q", stmt.Value.Left["decl"])
	}
	if stmt.Value.Right["value"] != 1 {
		t.Errorf("expected constant 1, but got %v", stmt.Value.Right["value"])
	}
}

func TestTreeYAMLDumpRejectsDanglingAtoms(t *testing.T) {
	arena := NewArena()
	root := arena.Alloc(&Return{Value: 7})

	tree := &Tree{Arena: arena, Root: root}
	if _, err := yaml.Marshal(tree); err == nil {
		t.Fatal("expected an error for a dangling atom reference")
	}
}
