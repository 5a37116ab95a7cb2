package ast

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalYAML renders the tree as nested mappings. Owned children are
// rendered inline, references (assignment targets, callees, variable
// declarations) as "name#id".
func (tree *Tree) MarshalYAML() (any, error) {
	return tree.Arena.dump(tree.Root)
}

func (arena *Arena) dump(id AtomID) (*yaml.Node, error) {
	node := arena.Get(id)
	if node == nil {
		return nil, fmt.Errorf("atom %d does not exist", id)
	}

	out := mapping("kind", str(node.Kind().String()))

	switch n := node.(type) {
	case *Program:
		target := "executable"
		if n.Library {
			target = "library"
		}
		items, err := arena.dumpList(n.Items)
		if err != nil {
			return nil, err
		}
		out = with(out, "name", str(n.Name), "target", str(target), "items", items)
	case *Function:
		args, err := arena.dumpList(n.Args)
		if err != nil {
			return nil, err
		}
		stmts, err := arena.dumpList(n.Statements)
		if err != nil {
			return nil, err
		}
		out = with(out,
			"name", str(n.Name),
			"args", args,
			"return_type", str(n.ReturnType.Spelling()),
			"statements", stmts,
		)
	case *Arg:
		out = with(out, "name", str(n.Name), "type", str(n.Type.Spelling()))
	case *VariableDec:
		out = with(out, "name", str(n.Name), "type", str(n.Type.Spelling()))
	case *Variable:
		out = with(out, "name", str(n.Name), "type", str(n.Type.Spelling()), "decl", str(arena.ref(n.Decl)))
	case *VariableDef:
		dec, err := arena.dump(n.Dec)
		if err != nil {
			return nil, err
		}
		assign, err := arena.dump(n.Assign)
		if err != nil {
			return nil, err
		}
		out = with(out, "dec", dec, "assign", assign)
	case *Assignment:
		value, err := arena.dump(n.Value)
		if err != nil {
			return nil, err
		}
		out = with(out, "target", str(arena.ref(n.Target)), "value", value)
	case *Return:
		value, err := arena.dump(n.Value)
		if err != nil {
			return nil, err
		}
		out = with(out, "value", value)
	case *FunctionCall:
		args, err := arena.dumpList(n.Args)
		if err != nil {
			return nil, err
		}
		out = with(out, "callee", str(arena.ref(n.Callee)), "args", args)
	case *BinaryOp:
		left, err := arena.dump(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := arena.dump(n.Right)
		if err != nil {
			return nil, err
		}
		out = with(out, "op", str(n.Op.Spelling()), "left", left, "right", right)
	case *Const:
		out = with(out, "type", str(n.Type.Spelling()), "value", integer(n.Value))
	case *Nil:
	}

	return out, nil
}

func (arena *Arena) dumpList(ids []AtomID) (*yaml.Node, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, id := range ids {
		item, err := arena.dump(id)
		if err != nil {
			return nil, err
		}
		seq.Content = append(seq.Content, item)
	}
	return seq, nil
}

func (arena *Arena) ref(id AtomID) string {
	return fmt.Sprintf("%s#%d", arena.Name(id), id)
}

func mapping(key string, value *yaml.Node) *yaml.Node {
	return with(&yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}, key, value)
}

// with appends key/value pairs; pairs alternate string keys and *yaml.Node values.
func with(m *yaml.Node, pairs ...any) *yaml.Node {
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Content = append(m.Content, str(pairs[i].(string)), pairs[i+1].(*yaml.Node))
	}
	return m
}

func str(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func integer(value int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(value)}
}
