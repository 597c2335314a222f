package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/tradeplot-go/pkg/tradeplot"
	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/models"
	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/output"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE.html",
		Short: "Summarize a generated page",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := output.ParseHTML(f)
	if err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}

	summary := tradeplot.Summarize(doc)
	jsonData, err := models.Encode(summary, true)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}
