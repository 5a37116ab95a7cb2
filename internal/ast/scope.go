package ast

import "errors"

var (
	ErrSymbolAlreadyDefinedOnScope = errors.New("symbol already defined on scope")
	ErrSymbolNotFoundOnScope       = errors.New("symbol not found on scope")
)

// Scope maps names to the atoms that declare them. It only lives while
// parsing; the atoms themselves belong to the arena.
type Scope struct {
	Parent *Scope
	Nodes  map[string]AtomID
}

func NewScope(parent *Scope) *Scope {
	return &Scope{Parent: parent, Nodes: make(map[string]AtomID)}
}

func (scope *Scope) Insert(name string, id AtomID) error {
	if _, ok := scope.Nodes[name]; ok {
		return ErrSymbolAlreadyDefinedOnScope
	}
	scope.Nodes[name] = id
	return nil
}

func (scope *Scope) LookupCurrentScope(name string) (AtomID, error) {
	if id, ok := scope.Nodes[name]; ok {
		return id, nil
	}
	return NoAtom, ErrSymbolNotFoundOnScope
}

func (scope *Scope) LookupAcrossScopes(name string) (AtomID, error) {
	if id, ok := scope.Nodes[name]; ok {
		return id, nil
	}
	if scope.Parent == nil {
		return NoAtom, ErrSymbolNotFoundOnScope
	}
	return scope.Parent.LookupAcrossScopes(name)
}
