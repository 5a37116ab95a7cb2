package parser

import (
	"errors"
	"fmt"

	"github.com/HicaroD/mica/config"
	"github.com/HicaroD/mica/internal/ast"
	"github.com/HicaroD/mica/internal/diagnostics"
	"github.com/HicaroD/mica/internal/lexer"
	"github.com/HicaroD/mica/internal/lexer/token"
)

// Parser turns a token stream into atoms in a single forward pass. Names are
// resolved while parsing: a function or variable must be fully parsed before
// it can be referenced, so functions cannot call themselves.
type Parser struct {
	cursor    *cursor
	collector *diagnostics.Collector
	arena     *ast.Arena

	moduleScope *ast.Scope
	scope       *ast.Scope
}

func New(tokens []*token.Token, collector *diagnostics.Collector) *Parser {
	parser := new(Parser)
	parser.cursor = newCursor(tokens)
	parser.collector = collector
	parser.arena = ast.NewArena()
	parser.moduleScope = ast.NewScope(nil)
	parser.scope = parser.moduleScope
	return parser
}

func NewFromLexer(lex *lexer.Lexer) *Parser {
	return New(lex.Tokenize(), lex.Collector)
}

func (p *Parser) Arena() *ast.Arena { return p.arena }

// ParseFileAsProgram lexes and parses the file at path, naming the program
// and choosing its target from manifest.
func ParseFileAsProgram(path string, manifest *config.Manifest, collector *diagnostics.Collector) (*ast.Tree, error) {
	lex, err := lexer.NewFromFilePath(path, collector)
	if err != nil {
		return nil, err
	}
	p := NewFromLexer(lex)
	return p.ParseProgram(manifest.Package.Name, manifest.Package.Target)
}

// ParseProgram parses top level items until the tokens run out.
func (p *Parser) ParseProgram(name string, target config.Target) (*ast.Tree, error) {
	var items []ast.AtomID
	for {
		id, err := p.ParseNext()
		if err != nil {
			return nil, err
		}
		if p.arena.Kind(id) == ast.KIND_NIL {
			break
		}
		items = append(items, id)
	}

	start := ast.NoAtom
	if len(items) > 0 {
		start = items[0]
	}

	root := p.arena.Alloc(&ast.Program{
		Name:    name,
		Library: target.IsLibrary(),
		Start:   start,
		Items:   items,
	})
	return &ast.Tree{Arena: p.arena, Root: root}, nil
}

// ParseNext parses one top level item. Running out of tokens is not an
// error: a Nil atom is returned instead.
func (p *Parser) ParseNext() (ast.AtomID, error) {
	tok := p.cursor.peek()
	if tok == nil {
		return p.arena.Alloc(&ast.Nil{}), nil
	}

	if tok.IsKeyword(token.FN) {
		p.cursor.skip()
		return p.parseFunction()
	}
	return ast.NoAtom, p.unexpected(tok, "'fn'")
}

func (p *Parser) parseFunction() (ast.AtomID, error) {
	name, ok := p.expect(token.ID)
	if !ok {
		return ast.NoAtom, p.unexpected(name, "function name")
	}

	if _, err := p.moduleScope.LookupCurrentScope(name.Name); err == nil {
		return ast.NoAtom, p.report(diagnostics.NewDiag(
			diagnostics.ErrRedeclared,
			name.Pos,
			"function '%s' already declared",
			name.Name,
		))
	}

	p.scope = ast.NewScope(p.moduleScope)
	defer func() { p.scope = p.moduleScope }()

	args, err := p.parseArgs()
	if err != nil {
		return ast.NoAtom, err
	}

	arrow, ok := p.expect(token.ARROW)
	if !ok {
		return ast.NoAtom, p.unexpected(arrow, "'->'")
	}

	returnType, err := p.parseType()
	if err != nil {
		return ast.NoAtom, err
	}

	statements, err := p.parseBlock()
	if err != nil {
		return ast.NoAtom, err
	}

	id := p.arena.Alloc(&ast.Function{
		Name:       name.Name,
		Args:       args,
		ReturnType: returnType,
		Statements: statements,
	})
	// Registered only now: the body cannot see its own function
	if err := p.moduleScope.Insert(name.Name, id); err != nil {
		return ast.NoAtom, err
	}
	return id, nil
}

func (p *Parser) parseArgs() ([]ast.AtomID, error) {
	var args []ast.AtomID

	openParen, ok := p.expect(token.OPEN_PAREN)
	if !ok {
		return nil, p.unexpected(openParen, "'('")
	}

	for {
		tok := p.cursor.next()
		if tok == nil {
			return nil, p.unexpected(nil, "parameter or ')'")
		}

		switch tok.Kind {
		case token.CLOSE_PAREN:
			return args, nil
		case token.COMMA:
			continue
		case token.ID:
			colon, ok := p.expect(token.COLON)
			if !ok {
				return nil, p.unexpected(colon, "':'")
			}
			ty, err := p.parseType()
			if err != nil {
				return nil, err
			}

			id := p.arena.Alloc(&ast.Arg{Binding: ast.Binding{Name: tok.Name, Type: ty}})
			if err := p.declare(tok, id); err != nil {
				return nil, err
			}
			args = append(args, id)
		default:
			return nil, p.unexpected(tok, "parameter or ')'")
		}
	}
}

func (p *Parser) parseType() (token.Type, error) {
	tok := p.cursor.next()
	if tok == nil || !tok.IsType() {
		return 0, p.unexpected(tok, "type")
	}
	return tok.Type, nil
}

func (p *Parser) parseBlock() ([]ast.AtomID, error) {
	var statements []ast.AtomID

	openCurly, ok := p.expect(token.OPEN_CURLY)
	if !ok {
		return nil, p.unexpected(openCurly, "'{'")
	}

	for {
		tok := p.cursor.next()
		if tok == nil {
			return nil, p.unexpected(nil, "statement or '}'")
		}

		var stmt ast.AtomID
		var err error

		switch {
		case tok.Kind == token.CLOSE_CURLY:
			return statements, nil
		case tok.IsKeyword(token.LET):
			stmt, err = p.parseLet()
		case tok.IsKeyword(token.RETURN):
			stmt, err = p.parseReturn()
		case tok.Kind == token.ID:
			stmt, err = p.parseIdStmt(tok)
		default:
			return nil, p.unexpected(tok, "statement or '}'")
		}
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
}

// let IDENT : TYPE ;
// let IDENT : TYPE = expr ;
func (p *Parser) parseLet() (ast.AtomID, error) {
	name, ok := p.expect(token.ID)
	if !ok {
		return ast.NoAtom, p.unexpected(name, "variable name")
	}
	colon, ok := p.expect(token.COLON)
	if !ok {
		return ast.NoAtom, p.unexpected(colon, "':'")
	}
	ty, err := p.parseType()
	if err != nil {
		return ast.NoAtom, err
	}

	next := p.cursor.next()
	switch {
	case next != nil && next.Kind == token.SEMICOLON:
		dec := p.arena.Alloc(&ast.VariableDec{Binding: ast.Binding{Name: name.Name, Type: ty}})
		if err := p.declare(name, dec); err != nil {
			return ast.NoAtom, err
		}
		return dec, nil
	case next != nil && next.IsOperator(token.ASSIGN):
		value, err := p.parseExpr()
		if err != nil {
			return ast.NoAtom, err
		}
		if err := p.expectSemicolon(); err != nil {
			return ast.NoAtom, err
		}

		dec := p.arena.Alloc(&ast.VariableDec{Binding: ast.Binding{Name: name.Name, Type: ty}})
		assign := p.arena.Alloc(&ast.Assignment{Target: dec, Value: value})
		def := p.arena.Alloc(&ast.VariableDef{Dec: dec, Assign: assign})
		if err := p.declare(name, dec); err != nil {
			return ast.NoAtom, err
		}
		return def, nil
	default:
		return ast.NoAtom, p.unexpected(next, "'=' or ';'")
	}
}

func (p *Parser) parseReturn() (ast.AtomID, error) {
	value, err := p.parseExpr()
	if err != nil {
		return ast.NoAtom, err
	}
	if err := p.expectSemicolon(); err != nil {
		return ast.NoAtom, err
	}
	return p.arena.Alloc(&ast.Return{Value: value}), nil
}

// Statement starting with an identifier: an assignment to a variable or a
// call to a function, depending on what the name resolves to.
func (p *Parser) parseIdStmt(name *token.Token) (ast.AtomID, error) {
	decl, err := p.resolve(name)
	if err != nil {
		return ast.NoAtom, err
	}

	kind := p.arena.Kind(decl)
	switch {
	case kind.IsVariable():
		assign := p.cursor.next()
		if assign == nil || !assign.IsOperator(token.ASSIGN) {
			return ast.NoAtom, p.unexpected(assign, "'='")
		}
		value, err := p.parseExpr()
		if err != nil {
			return ast.NoAtom, err
		}
		if err := p.expectSemicolon(); err != nil {
			return ast.NoAtom, err
		}
		return p.arena.Alloc(&ast.Assignment{Target: decl, Value: value}), nil
	case kind == ast.KIND_FUNCTION:
		call, err := p.parseFunctionCall(name, decl)
		if err != nil {
			return ast.NoAtom, err
		}
		if err := p.expectSemicolon(); err != nil {
			return ast.NoAtom, err
		}
		return call, nil
	default:
		return ast.NoAtom, p.report(diagnostics.NewDiag(
			diagnostics.ErrExpectedToken,
			name.Pos,
			"'%s' is a %s, not a variable or function",
			name.Name,
			kind,
		))
	}
}

func (p *Parser) parseFunctionCall(name *token.Token, callee ast.AtomID) (ast.AtomID, error) {
	args, err := p.parseCallArgs()
	if err != nil {
		return ast.NoAtom, err
	}

	fn := p.arena.Get(callee).(*ast.Function)
	if len(args) != fn.Arity() {
		return ast.NoAtom, p.report(diagnostics.NewDiag(
			diagnostics.ErrArityMismatch,
			name.Pos,
			"function '%s' expects %d argument(s), got %d",
			fn.Name,
			fn.Arity(),
			len(args),
		))
	}

	return p.arena.Alloc(&ast.FunctionCall{Callee: callee, Args: args}), nil
}

func (p *Parser) parseCallArgs() ([]ast.AtomID, error) {
	var args []ast.AtomID

	openParen, ok := p.expect(token.OPEN_PAREN)
	if !ok {
		return nil, p.unexpected(openParen, "'('")
	}
	if p.cursor.nextIs(token.CLOSE_PAREN) {
		p.cursor.skip()
		return args, nil
	}

	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		tok := p.cursor.next()
		if tok == nil {
			return nil, p.unexpected(nil, "',' or ')'")
		}
		switch tok.Kind {
		case token.COMMA:
			continue
		case token.CLOSE_PAREN:
			return args, nil
		default:
			return nil, p.unexpected(tok, "',' or ')'")
		}
	}
}

func (p *Parser) resolve(name *token.Token) (ast.AtomID, error) {
	id, err := p.scope.LookupAcrossScopes(name.Name)
	if err != nil {
		return ast.NoAtom, p.report(diagnostics.NewDiag(
			diagnostics.ErrUnresolvedIdentifier,
			name.Pos,
			"'%s' not declared before use",
			name.Name,
		))
	}
	return id, nil
}

func (p *Parser) declare(name *token.Token, id ast.AtomID) error {
	err := p.scope.Insert(name.Name, id)
	if errors.Is(err, ast.ErrSymbolAlreadyDefinedOnScope) {
		return p.report(diagnostics.NewDiag(
			diagnostics.ErrRedeclared,
			name.Pos,
			"'%s' already declared in this function",
			name.Name,
		))
	}
	return err
}

func (p *Parser) expect(expectedKind token.Kind) (*token.Token, bool) {
	tok := p.cursor.peek()
	if tok == nil || tok.Kind != expectedKind {
		return tok, false
	}
	p.cursor.skip()
	return tok, true
}

func (p *Parser) expectSemicolon() error {
	semicolon, ok := p.expect(token.SEMICOLON)
	if !ok {
		return p.unexpected(semicolon, "';' at the end of statement")
	}
	return nil
}

// unexpected reports tok where something else was expected. A nil token
// means the input ended.
func (p *Parser) unexpected(tok *token.Token, expected string) error {
	if tok == nil {
		return p.report(diagnostics.NewDiag(
			diagnostics.ErrUnexpectedEOF,
			p.cursor.endPos(),
			"expected %s, but the input ended",
			expected,
		))
	}
	return p.report(diagnostics.NewDiag(
		diagnostics.ErrExpectedToken,
		tok.Pos,
		"expected %s, not %s",
		expected,
		describe(tok),
	))
}

func (p *Parser) report(diag *diagnostics.Diag) error {
	p.collector.ReportAndSave(diag)
	return diag
}

func describe(tok *token.Token) string {
	if tok.Kind == token.UNRECOGNIZABLE {
		return fmt.Sprintf("unrecognizable '%s'", tok.Lexeme)
	}
	return fmt.Sprintf("'%s'", tok.Source())
}
