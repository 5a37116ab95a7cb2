package testutil

import (
	"github.com/HicaroD/mica/config"
	"github.com/HicaroD/mica/internal/ast"
	"github.com/HicaroD/mica/internal/diagnostics"
	"github.com/HicaroD/mica/internal/lexer"
	"github.com/HicaroD/mica/internal/lexer/token"
	"github.com/HicaroD/mica/internal/parser"
	"github.com/HicaroD/mica/internal/sema"
)

const DefaultFilename = "test.mc"

func NewLexer(src []byte, filename string) *lexer.Lexer {
	if filename == "" {
		filename = DefaultFilename
	}
	collector := diagnostics.New()
	return lexer.New(filename, src, collector)
}

// CompileFile runs the front end over a file the same way `mica build` does,
// honoring a mica.toml placed next to it.
func CompileFile(path string) (*ast.Tree, *diagnostics.Collector, error) {
	collector := diagnostics.New()

	manifest, err := config.ManifestFor(path)
	if err != nil {
		return nil, collector, err
	}

	tree, err := parser.ParseFileAsProgram(path, manifest, collector)
	if err != nil {
		return nil, collector, err
	}
	if err := sema.New(collector).Check(tree); err != nil {
		return nil, collector, err
	}
	return tree, collector, nil
}

// Render returns the debug rendering of each token, without positions, so
// token streams can be compared.
func Render(tokens []*token.Token) []string {
	rendered := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		rendered = append(rendered, tok.String())
	}
	return rendered
}
