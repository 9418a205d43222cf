package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hassan/cleanworld/internal/config"
	"github.com/hassan/cleanworld/internal/interp"
	"github.com/hassan/cleanworld/internal/semantic"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Compile and execute a program against a grid world",
	Long: `Runs the full pipeline: lex, parse, convert, analyze, interpret.
Semantic errors block interpretation. The grid is provisioned from the
run configuration (or the built-in 5x5 default), never from the
program's own grid(w, h) clause.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
	}

	prog, err := buildAST(source, cfg.FoldTails)
	if err != nil {
		return err
	}

	diags := semantic.NewAnalyzer().Analyze(prog)
	if len(diags) > 0 {
		errColor := color.New(color.FgRed, color.Bold)
		for _, d := range diags {
			errColor.Fprintf(os.Stderr, "%s", d.Code)
			fmt.Fprintf(os.Stderr, ": %s\n", d.Msg)
		}
		return fmt.Errorf("%d semantic error(s); not running", len(diags))
	}

	grid, err := cfg.BuildWorld()
	if err != nil {
		return err
	}

	opts := []interp.Option{interp.WithMaxIterations(cfg.MaxIterations)}
	if verbose {
		opts = append(opts, interp.WithTrace(os.Stderr))
	}

	if verbose {
		fmt.Printf("executing %s\n", prog.Name)
		fmt.Println("\n[INITIAL GRID STATE]")
		fmt.Print(grid.Render())
	}
	if err := interp.New(grid, opts...).Run(prog); err != nil {
		return fmt.Errorf("runtime error: %w", err)
	}

	fmt.Println("\n[FINAL GRID STATE]")
	fmt.Print(grid.Render())
	return nil
}
