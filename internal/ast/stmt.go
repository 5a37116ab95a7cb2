package ast

// Assignment stores Value into the Arg or VariableDec atom Target.
type Assignment struct {
	Target AtomID
	Value  AtomID
}

func (assign *Assignment) Kind() AtomKind { return KIND_ASSIGNMENT }
func (assign *Assignment) atomNode()      {}

type Return struct {
	Value AtomID
}

func (ret *Return) Kind() AtomKind { return KIND_RETURN }
func (ret *Return) atomNode()      {}

type FunctionCall struct {
	Callee AtomID
	Args   []AtomID
}

func (call *FunctionCall) Kind() AtomKind { return KIND_FUNCTION_CALL }
func (call *FunctionCall) atomNode()      {}
