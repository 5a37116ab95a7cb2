package ast

import "fmt"

// Arena owns every atom of a parse session. Atoms are appended once and never
// moved, so an AtomID stays valid for the lifetime of the arena.
type Arena struct {
	atoms []Node
}

func NewArena() *Arena {
	return &Arena{atoms: nil}
}

func (arena *Arena) Alloc(node Node) AtomID {
	arena.atoms = append(arena.atoms, node)
	return AtomID(len(arena.atoms) - 1)
}

func (arena *Arena) Get(id AtomID) Node {
	if id < 0 || int(id) >= len(arena.atoms) {
		return nil
	}
	return arena.atoms[id]
}

func (arena *Arena) Kind(id AtomID) AtomKind {
	node := arena.Get(id)
	if node == nil {
		return KIND_NIL
	}
	return node.Kind()
}

func (arena *Arena) Len() int { return len(arena.atoms) }

// Name returns the identifier an atom declares or refers to, if any.
func (arena *Arena) Name(id AtomID) string {
	switch node := arena.Get(id).(type) {
	case *Program:
		return node.Name
	case *Function:
		return node.Name
	case *Arg:
		return node.Name
	case *VariableDec:
		return node.Name
	case *Variable:
		return node.Name
	case *VariableDef:
		return arena.Name(node.Dec)
	case *FunctionCall:
		return arena.Name(node.Callee)
	case *Assignment:
		return arena.Name(node.Target)
	}
	return ""
}

// Tree is a parsed program: the arena plus the root atom.
type Tree struct {
	Arena *Arena
	Root  AtomID
}

func (tree *Tree) Program() *Program {
	program, _ := tree.Arena.Get(tree.Root).(*Program)
	return program
}

// Functions returns the top level functions in declaration order.
func (tree *Tree) Functions() []*Function {
	program := tree.Program()
	if program == nil {
		return nil
	}
	var fns []*Function
	for _, id := range program.Items {
		if fn, ok := tree.Arena.Get(id).(*Function); ok {
			fns = append(fns, fn)
		}
	}
	return fns
}

func (tree *Tree) String() string {
	return fmt.Sprintf("Tree: %d atoms, root %d", tree.Arena.Len(), tree.Root)
}
