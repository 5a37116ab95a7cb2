package parser

import (
	"github.com/HicaroD/mica/internal/ast"
	"github.com/HicaroD/mica/internal/diagnostics"
	"github.com/HicaroD/mica/internal/lexer/token"
)

// Precedence levels from loosest to tightest binding. Operators on the same
// level associate to the left.
var levels = []map[token.Operator]bool{
	token.EQUALITY,
	token.RELATIONAL,
	token.SHIFT,
	token.ADDITIVE,
	token.MULTIPLICATIVE,
}

func (p *Parser) parseExpr() (ast.AtomID, error) {
	return p.parseEquality()
}

func (p *Parser) parseEquality() (ast.AtomID, error) {
	return p.parseBinary(0)
}

func (p *Parser) parseRelational() (ast.AtomID, error) {
	return p.parseBinary(1)
}

func (p *Parser) parseShift() (ast.AtomID, error) {
	return p.parseBinary(2)
}

func (p *Parser) parseAdditive() (ast.AtomID, error) {
	return p.parseBinary(3)
}

func (p *Parser) parseMultiplicative() (ast.AtomID, error) {
	return p.parseBinary(4)
}

func (p *Parser) parseOperand(level int) (ast.AtomID, error) {
	switch level + 1 {
	case 1:
		return p.parseRelational()
	case 2:
		return p.parseShift()
	case 3:
		return p.parseAdditive()
	case 4:
		return p.parseMultiplicative()
	default:
		return p.parsePrimary()
	}
}

func (p *Parser) parseBinary(level int) (ast.AtomID, error) {
	lhs, err := p.parseOperand(level)
	if err != nil {
		return ast.NoAtom, err
	}

	for {
		next := p.cursor.peek()
		if next == nil || next.Kind != token.OPERATOR || !levels[level][next.Op] {
			return lhs, nil
		}
		p.cursor.skip()

		rhs, err := p.parseOperand(level)
		if err != nil {
			return ast.NoAtom, err
		}
		lhs = p.arena.Alloc(&ast.BinaryOp{Op: next.Op, Left: lhs, Right: rhs})
	}
}

func (p *Parser) parsePrimary() (ast.AtomID, error) {
	tok := p.cursor.next()
	if tok == nil {
		return ast.NoAtom, p.unexpected(nil, "expression")
	}

	switch tok.Kind {
	case token.LITERAL:
		return p.arena.Alloc(&ast.Const{Type: token.ISIZE, Value: tok.Value}), nil
	case token.OPEN_PAREN:
		expr, err := p.parseExpr()
		if err != nil {
			return ast.NoAtom, err
		}
		closeParen, ok := p.expect(token.CLOSE_PAREN)
		if !ok {
			return ast.NoAtom, p.unexpected(closeParen, "')'")
		}
		return expr, nil
	case token.ID:
		decl, err := p.resolve(tok)
		if err != nil {
			return ast.NoAtom, err
		}

		switch node := p.arena.Get(decl).(type) {
		case *ast.Arg:
			return p.arena.Alloc(&ast.Variable{Binding: node.Binding, Decl: decl}), nil
		case *ast.VariableDec:
			return p.arena.Alloc(&ast.Variable{Binding: node.Binding, Decl: decl}), nil
		case *ast.Function:
			return p.parseFunctionCall(tok, decl)
		default:
			return ast.NoAtom, p.report(diagnostics.NewDiag(
				diagnostics.ErrExpectedToken,
				tok.Pos,
				"'%s' cannot be used as a value",
				tok.Name,
			))
		}
	default:
		return ast.NoAtom, p.unexpected(tok, "expression")
	}
}
