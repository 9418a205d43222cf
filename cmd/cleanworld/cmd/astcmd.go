package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	astFoldTails bool
	astOutput    string
)

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Convert a program to its AST and print it as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runAST,
}

func init() {
	astCmd.Flags().BoolVar(&astFoldTails, "fold-tails", false,
		"fold chained same-precedence operators left-associatively")
	astCmd.Flags().StringVarP(&astOutput, "output", "o", "", "write JSON to a file instead of stdout")
	rootCmd.AddCommand(astCmd)
}

func runAST(cmd *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}

	prog, err := buildAST(source, astFoldTails)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if astOutput != "" {
		f, err := os.Create(astOutput)
		if err != nil {
			return fmt.Errorf("write ast: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(prog)
}
