package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hassan/cleanworld/internal/semantic"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Run semantic analysis and print diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}

	prog, err := buildAST(source, false)
	if err != nil {
		return err
	}

	diags := semantic.NewAnalyzer().Analyze(prog)
	if len(diags) == 0 {
		color.New(color.FgGreen).Println("no semantic errors")
		return nil
	}

	errColor := color.New(color.FgRed, color.Bold)
	for _, d := range diags {
		errColor.Fprintf(os.Stderr, "%s", d.Code)
		fmt.Fprintf(os.Stderr, ": %s\n", d.Msg)
	}
	return fmt.Errorf("%d semantic error(s)", len(diags))
}
