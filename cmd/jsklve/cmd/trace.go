package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/cwbudde/jsklve"
	"github.com/cwbudde/jsklve/internal/apierrors"
	"github.com/cwbudde/jsklve/internal/config"
)

var (
	evalExpr   string
	configPath string
	dumpSteps  bool
	maxSteps   int
	maxTime    int
)

var traceCmd = &cobra.Command{
	Use:   "trace [file]",
	Short: "Trace a JavaScript file or expression",
	Long: `Instrument and run a JavaScript program, printing its step list as JSON.

Examples:
  # Trace a script file
  jsklve trace script.js

  # Trace an inline expression
  jsklve trace -e "let x = 1; x + 1;"

  # Trace with a config file supplying limits and filter options
  jsklve trace --config trace.yaml script.js`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTrace,
}

func init() {
	rootCmd.AddCommand(traceCmd)

	traceCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "trace inline source instead of reading from file")
	traceCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML or JSON config file (meta limits, filter options)")
	traceCmd.Flags().BoolVar(&dumpSteps, "dump", false, "pretty-print the step list with kr/pretty instead of JSON")
	traceCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "abort the trace after this many steps (0 = unlimited, or use --config)")
	traceCmd.Flags().IntVar(&maxTime, "max-time", 0, "abort the trace after this many milliseconds (0 = unlimited, or use --config)")
}

func runTrace(_ *cobra.Command, args []string) error {
	var source, filename string
	switch {
	case evalExpr != "":
		source, filename = evalExpr, "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		source = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline source")
	}

	rec := config.Record{}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		rec = *loaded
	}
	if maxSteps > 0 {
		rec.Meta.Max.Steps = &maxSteps
	}
	if maxTime > 0 {
		rec.Meta.Max.Time = &maxTime
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "tracing %s\n", filename)
	}

	steps, err := jsklve.Record(context.Background(), source, rec)
	if err != nil {
		if traceErr, ok := err.(*apierrors.TraceError); ok {
			traceErr.Source = source
			fmt.Fprintln(os.Stderr, traceErr.Format(true))
			return fmt.Errorf("trace failed: %s", traceErr.Kind)
		}
		return err
	}

	if dumpSteps {
		fmt.Println(pretty.Sprint(steps))
		return nil
	}

	out, err := json.MarshalIndent(steps, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding step list: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
