// Package main provides the CLI entry point for tradeplot.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/tradeplot-go/internal/config"
	"github.com/ukaji3/tradeplot-go/pkg/tradeplot"
)

var (
	outputPath   string
	runtimeMode  string
	plotlyJSPath string
	cdnURL       string
	divID        string
	jsonPath     string
	logLevel     string
	logFile      string
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tradeplot",
		Short: "Generate the interactive trade model page",
		Long: `tradeplot writes a standalone HTML page with an empty scatter plot
of countries. Points are added and removed by clicking in the browser.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return setupLogger(logLevel, logFile)
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", cfg.OutputPath, "Output file path")
	rootCmd.Flags().StringVar(&runtimeMode, "runtime", cfg.Runtime, "plotly.js inclusion: inline, cdn")
	rootCmd.Flags().StringVar(&divID, "div-id", "", "Plot element id (default: derived from the figure)")
	rootCmd.Flags().StringVar(&jsonPath, "json", "", "Also write the figure as JSON to this path")
	rootCmd.PersistentFlags().StringVar(&plotlyJSPath, "plotly-js", cfg.PlotlyJSPath, "plotly.js bundle path (default: embedded, then assets/plotly.min.js)")
	rootCmd.PersistentFlags().StringVar(&cdnURL, "cdn-url", cfg.CDNURL, "plotly.js bundle URL")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", cfg.LogFile, "Also write logs to this rotated file")

	rootCmd.AddCommand(newEquilibriumCmd(), newInspectCmd(), newFetchRuntimeCmd())
	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	mode, err := tradeplot.ParseRuntimeMode(runtimeMode)
	if err != nil {
		return err
	}

	opts := tradeplot.DefaultOptions()
	opts.Runtime = mode
	opts.PlotlyJSPath = plotlyJSPath
	opts.CDNURL = cdnURL
	opts.DivID = divID
	opts.JSONPath = jsonPath

	if err := tradeplot.Export(outputPath, opts); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	return nil
}
