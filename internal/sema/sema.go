package sema

import (
	"fmt"

	"github.com/HicaroD/mica/internal/ast"
	"github.com/HicaroD/mica/internal/diagnostics"
)

// sema verifies the shape of a parsed tree: every reference points to an
// atom allocated before it and of the kind the referring atom expects.
type sema struct {
	arena     *ast.Arena
	collector *diagnostics.Collector
}

func New(collector *diagnostics.Collector) *sema {
	return &sema{nil, collector}
}

func (s *sema) Check(tree *ast.Tree) error {
	s.arena = tree.Arena

	program := tree.Program()
	if program == nil {
		return s.malformed(tree.Root, "root is a %s, not a Program", tree.Arena.Kind(tree.Root))
	}
	if len(program.Items) > 0 && program.Start != program.Items[0] {
		return s.malformed(tree.Root, "start %d is not the first item", program.Start)
	}

	for _, item := range program.Items {
		if err := s.checkRef(tree.Root, item); err != nil {
			return err
		}
		if !s.arena.Kind(item).IsDecl() {
			return s.malformed(item, "top level %s is not a declaration", s.arena.Kind(item))
		}
		fn, ok := s.arena.Get(item).(*ast.Function)
		if !ok {
			return s.malformed(item, "top level %s", s.arena.Kind(item))
		}
		if err := s.checkFnDecl(item, fn); err != nil {
			return err
		}
	}
	return nil
}

func (s *sema) checkFnDecl(id ast.AtomID, fn *ast.Function) error {
	for _, arg := range fn.Args {
		if err := s.checkRef(id, arg); err != nil {
			return err
		}
		if s.arena.Kind(arg) != ast.KIND_ARG {
			return s.malformed(arg, "parameter of '%s' is a %s", fn.Name, s.arena.Kind(arg))
		}
	}

	for _, stmt := range fn.Statements {
		if err := s.checkRef(id, stmt); err != nil {
			return err
		}
		if err := s.checkStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *sema) checkStmt(id ast.AtomID) error {
	if !s.arena.Kind(id).IsStmt() {
		return s.malformed(id, "%s is not a statement", s.arena.Kind(id))
	}

	switch stmt := s.arena.Get(id).(type) {
	case *ast.VariableDef:
		if err := s.checkRef(id, stmt.Dec); err != nil {
			return err
		}
		if err := s.checkRef(id, stmt.Assign); err != nil {
			return err
		}
		assign, ok := s.arena.Get(stmt.Assign).(*ast.Assignment)
		if !ok || assign.Target != stmt.Dec {
			return s.malformed(id, "definition of '%s' does not initialize it", s.arena.Name(stmt.Dec))
		}
		return s.checkStmt(stmt.Assign)
	case *ast.Assignment:
		if err := s.checkRef(id, stmt.Target); err != nil {
			return err
		}
		if !s.arena.Kind(stmt.Target).IsVariable() {
			return s.malformed(id, "cannot assign to %s", s.arena.Kind(stmt.Target))
		}
		return s.checkExpr(id, stmt.Value)
	case *ast.Return:
		return s.checkExpr(id, stmt.Value)
	case *ast.FunctionCall:
		return s.checkCall(id, stmt)
	}
	return nil
}

func (s *sema) checkExpr(parent, id ast.AtomID) error {
	if err := s.checkRef(parent, id); err != nil {
		return err
	}

	if !s.arena.Kind(id).IsExpr() {
		return s.malformed(id, "%s is not an expression", s.arena.Kind(id))
	}

	switch expr := s.arena.Get(id).(type) {
	case *ast.Const:
		if expr.Value < 0 && !expr.Type.IsSigned() {
			return s.malformed(id, "constant %d does not fit %s", expr.Value, expr.Type.Spelling())
		}
		return nil
	case *ast.Variable:
		if err := s.checkRef(id, expr.Decl); err != nil {
			return err
		}
		if !s.arena.Kind(expr.Decl).IsVariable() {
			return s.malformed(id, "'%s' reads a %s", expr.Name, s.arena.Kind(expr.Decl))
		}
		return nil
	case *ast.BinaryOp:
		if err := s.checkExpr(id, expr.Left); err != nil {
			return err
		}
		return s.checkExpr(id, expr.Right)
	case *ast.FunctionCall:
		return s.checkCall(id, expr)
	}
	return nil
}

func (s *sema) checkCall(id ast.AtomID, call *ast.FunctionCall) error {
	if err := s.checkRef(id, call.Callee); err != nil {
		return err
	}
	fn, ok := s.arena.Get(call.Callee).(*ast.Function)
	if !ok {
		return s.malformed(id, "cannot call %s", s.arena.Kind(call.Callee))
	}
	if len(call.Args) != fn.Arity() {
		return s.malformed(id, "call to '%s' with %d argument(s)", fn.Name, len(call.Args))
	}
	for _, arg := range call.Args {
		if err := s.checkExpr(id, arg); err != nil {
			return err
		}
	}
	return nil
}

// checkRef enforces that self only refers to atoms allocated before it.
func (s *sema) checkRef(self, ref ast.AtomID) error {
	if s.arena.Get(ref) == nil {
		return s.malformed(self, "dangling reference %d", ref)
	}
	if ref >= self {
		return s.malformed(self, "forward reference to %d", ref)
	}
	return nil
}

func (s *sema) malformed(id ast.AtomID, format string, args ...any) error {
	err := fmt.Errorf("%w: atom %d: %s", diagnostics.ErrMalformedTree, id, fmt.Sprintf(format, args...))
	s.collector.ReportAndSave(&diagnostics.Diag{Kind: diagnostics.ErrMalformedTree, Message: err.Error()})
	return err
}
