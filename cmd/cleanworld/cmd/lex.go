package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/hassan/cleanworld/internal/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a program and print the token stream",
	Long: `Runs only the lexer and prints every token with its kind, lexeme,
and line, followed by a symbol table of identifiers and a literal table
of int and string literals. Lexical errors are reported but do not stop
scanning.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}

	tokens, lexErrs := lexer.New(source).Scan()
	writeLexerOutput(os.Stdout, tokens)

	if len(lexErrs) > 0 {
		errColor := color.New(color.FgRed)
		for _, e := range lexErrs {
			errColor.Fprintln(os.Stderr, "lexical error:", e.Error())
		}
		return fmt.Errorf("%d lexical error(s)", len(lexErrs))
	}

	fmt.Fprintf(os.Stdout, "%d tokens\n", len(tokens))
	return nil
}

// writeLexerOutput renders the token stream plus the symbol table
// (identifier lexemes) and literal table (int and string literals),
// both deduplicated and sorted.
func writeLexerOutput(w io.Writer, tokens []lexer.Token) {
	symbols := make(map[string]struct{})
	literals := make(map[string]struct{})

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Kind", "Lexeme", "Line"})
	for i, tok := range tokens {
		table.Append([]string{
			strconv.Itoa(i),
			tok.Type.String(),
			tok.Lexeme,
			strconv.Itoa(tok.Line),
		})

		switch tok.Type {
		case lexer.TokenIdentifier:
			symbols[tok.Lexeme] = struct{}{}
		case lexer.TokenIntLit, lexer.TokenStringLit:
			literals[tok.Lexeme] = struct{}{}
		}
	}
	table.Render()

	writeSummaryTable(w, "Symbol", symbols)
	writeSummaryTable(w, "Literal", literals)
}

func writeSummaryTable(w io.Writer, header string, entries map[string]struct{}) {
	sorted := make([]string, 0, len(entries))
	for entry := range entries {
		sorted = append(sorted, entry)
	}
	sort.Strings(sorted)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{header})
	for _, entry := range sorted {
		table.Append([]string{entry})
	}
	table.Render()
}
