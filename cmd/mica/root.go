package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/HicaroD/mica/config"
	"github.com/HicaroD/mica/internal/diagnostics"
	"github.com/HicaroD/mica/internal/lexer"
	"github.com/HicaroD/mica/internal/lexer/token"
)

// app is the state shared by every command of one invocation.
type app struct {
	settings *config.Settings
	painter  painter
}

func newRootCmd() *cobra.Command {
	a := &app{painter: painter{color: true}}

	rootCmd := &cobra.Command{
		Use:   "mica <file>",
		Short: "mica - front end for the mica language",
		Long: `mica turns source files into tokens and syntax trees.

Commands:
  tokens  Print the token stream of a file
  build   Lex and parse a file into a program
  ast     Print the syntax tree of a file as YAML
  env     Show the resolved configuration

Running "mica <file>" prints the token stream of the file.
`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings()
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}
			a.settings = settings
			a.painter = painter{color: settings.Color}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printTokens(cmd, args[0])
		},
	}

	rootCmd.AddCommand(a.tokensCmd(), a.buildCmd(), a.astCmd(), a.envCmd())
	return rootCmd
}

func (a *app) tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printTokens(cmd, args[0])
		},
	}
}

func (a *app) printTokens(cmd *cobra.Command, path string) error {
	collector := diagnostics.New()
	lex, err := lexer.NewFromFilePath(path, collector)
	if err != nil {
		return err
	}

	tokens := lex.Tokenize()
	fmt.Fprintln(cmd.OutOrStdout(), renderTokens(tokens))

	// Unrecognizable items do not stop lexing
	a.reportDiags(cmd.ErrOrStderr(), collector, WarnStyle)
	return nil
}

func (a *app) reportDiags(w io.Writer, collector *diagnostics.Collector, style lipgloss.Style) {
	for _, diag := range collector.Diags {
		fmt.Fprintln(w, a.painter.paint(style, diag.Message))
	}
}

// newTraceLogger writes token traces with the same prefix as the other
// debugging output.
func newTraceLogger(w io.Writer) *log.Logger {
	return log.New(w, "[trace] ", 0)
}

func renderTokens(tokens []*token.Token) string {
	rendered := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		rendered = append(rendered, tok.String())
	}
	return strings.Join(rendered, " ")
}
