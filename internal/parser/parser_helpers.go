package parser

import (
	"github.com/HicaroD/mica/internal/ast"
	"github.com/HicaroD/mica/internal/diagnostics"
	"github.com/HicaroD/mica/internal/lexer"
)

const defaultFilename = "test.mc"

func NewFromSource(filename string, src []byte, collector *diagnostics.Collector) *Parser {
	if filename == "" {
		filename = defaultFilename
	}
	return NewFromLexer(lexer.New(filename, src, collector))
}

// DeclareForTest registers bindings as arguments of an enclosing function so
// expressions can refer to them.
func (p *Parser) DeclareForTest(bindings ...ast.Binding) []ast.AtomID {
	if p.scope == p.moduleScope {
		p.scope = ast.NewScope(p.moduleScope)
	}
	ids := make([]ast.AtomID, 0, len(bindings))
	for _, binding := range bindings {
		id := p.arena.Alloc(&ast.Arg{Binding: binding})
		p.scope.Nodes[binding.Name] = id
		ids = append(ids, id)
	}
	return ids
}

func (p *Parser) ParseExprForTest() (ast.AtomID, error) {
	return p.parseExpr()
}

func (p *Parser) ParseBlockForTest() ([]ast.AtomID, error) {
	if p.scope == p.moduleScope {
		p.scope = ast.NewScope(p.moduleScope)
	}
	return p.parseBlock()
}
