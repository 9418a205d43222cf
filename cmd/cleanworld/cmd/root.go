// Package cmd implements the cleanworld command line interface: staged
// access to the lexer, parser, converter, analyzer, and interpreter.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hassan/cleanworld/internal/ast"
	"github.com/hassan/cleanworld/internal/lexer"
	"github.com/hassan/cleanworld/internal/parser"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cleanworld",
	Short: "CleanWorld language toolchain",
	Long: `cleanworld compiles and runs programs in the CleanWorld language,
a small DSL for driving a cleaning agent across a 2D grid.

Stages:
  lex    - token stream
  parse  - concrete syntax tree
  ast    - abstract syntax tree
  check  - semantic diagnostics
  run    - full pipeline and grid simulation`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "run configuration file (TOML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// readSource loads the program file named by the first argument.
func readSource(args []string) (string, error) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(data), nil
}

// parseSource runs the lexer and parser, failing on any lexical or
// syntax error.
func parseSource(source string) (*parser.CSTNode, error) {
	tokens, lexErrs := lexer.New(source).Scan()
	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			fmt.Fprintln(os.Stderr, "lexical error:", e.Error())
		}
		return nil, fmt.Errorf("%d lexical error(s)", len(lexErrs))
	}
	return parser.New(tokens).ParseProgram()
}

// buildAST runs the pipeline through the converter.
func buildAST(source string, foldTails bool) (*ast.Program, error) {
	cst, err := parseSource(source)
	if err != nil {
		return nil, err
	}
	return (&ast.Converter{FoldTails: foldTails}).Convert(cst)
}
