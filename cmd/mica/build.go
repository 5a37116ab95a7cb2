package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/HicaroD/mica/config"
	"github.com/HicaroD/mica/internal/ast"
	"github.com/HicaroD/mica/internal/diagnostics"
	"github.com/HicaroD/mica/internal/lexer"
	"github.com/HicaroD/mica/internal/parser"
	"github.com/HicaroD/mica/internal/sema"
)

type buildFlags struct {
	trace   bool
	release bool
	library bool
}

func (a *app) buildCmd() *cobra.Command {
	flags := buildFlags{}

	buildCmd := &cobra.Command{
		Use:   "build <file>",
		Short: "Lex and parse a file into a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := config.ManifestFor(args[0])
			if err != nil {
				return err
			}
			if flags.release {
				manifest.Build.Type = config.RELEASE
			}
			if flags.library {
				manifest.Package.Target = config.LIBRARY
			}

			tree, err := a.parse(cmd, args[0], manifest, flags.trace)
			if err != nil {
				return err
			}

			summary := fmt.Sprintf(
				"built %s (%s, %s): %d function(s), %d atom(s)",
				manifest.Package.Name,
				manifest.Package.Target,
				manifest.Build.Type,
				len(tree.Functions()),
				tree.Arena.Len(),
			)
			fmt.Fprintln(cmd.OutOrStdout(), a.painter.paint(SuccessStyle, summary))
			return nil
		},
	}

	buildCmd.Flags().BoolVar(&flags.trace, "trace", false, "print the token stream before parsing")
	buildCmd.Flags().BoolVar(&flags.release, "release", false, "build in release mode")
	buildCmd.Flags().BoolVar(&flags.library, "library", false, "build a library instead of an executable")
	return buildCmd
}

func (a *app) astCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ast <file>",
		Short: "Print the syntax tree of a file as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := config.ManifestFor(args[0])
			if err != nil {
				return err
			}

			tree, err := a.parse(cmd, args[0], manifest, false)
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(tree)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

// parse runs the lexer, the parser and the tree checker over path.
// Diagnostics are printed to stderr.
func (a *app) parse(cmd *cobra.Command, path string, manifest *config.Manifest, trace bool) (*ast.Tree, error) {
	collector := diagnostics.New()

	lex, err := lexer.NewFromFilePath(path, collector)
	if err != nil {
		return nil, err
	}
	tokens := lex.Tokenize()

	if a.shouldTrace(manifest, trace) {
		newTraceLogger(cmd.ErrOrStderr()).Println(a.painter.paint(TraceStyle, renderTokens(tokens)))
	}

	p := parser.New(tokens, collector)
	tree, err := p.ParseProgram(manifest.Package.Name, manifest.Package.Target)
	if err == nil {
		err = sema.New(collector).Check(tree)
	}
	a.reportDiags(cmd.ErrOrStderr(), collector, ErrorStyle)
	if err != nil {
		var diag *diagnostics.Diag
		if errors.As(err, &diag) || errors.Is(err, diagnostics.ErrMalformedTree) {
			return nil, fmt.Errorf("%s: %d error(s)", path, len(collector.Diags))
		}
		return nil, err
	}
	return tree, nil
}

// shouldTrace reports whether the token stream is printed: asked for on the
// command line, in the manifest, or through MICA_TRACE on a debug build.
func (a *app) shouldTrace(manifest *config.Manifest, flag bool) bool {
	if flag || manifest.Build.Trace {
		return true
	}
	return manifest.Build.Type == config.DEBUG && a.settings != nil && a.settings.Trace
}
