package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hassan/cleanworld/internal/parser"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a program and print the concrete syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "emit the CST as JSON")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}

	cst, err := parseSource(source)
	if err != nil {
		return err
	}

	if parseJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cst)
	}

	printCST(cst, 0)
	return nil
}

func printCST(node *parser.CSTNode, depth int) {
	indent := strings.Repeat("  ", depth)
	if node.Value != "" {
		fmt.Printf("%s%s %q\n", indent, node.Type, node.Value)
	} else {
		fmt.Printf("%s%s\n", indent, node.Type)
	}
	for _, child := range node.Children {
		printCST(child, depth+1)
	}
}
