package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/runtime"
)

var fetchTimeout time.Duration

func newFetchRuntimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch-runtime",
		Short: "Download the plotly.js bundle inlined into generated pages",
		Args:  cobra.NoArgs,
		RunE:  runFetchRuntime,
	}

	cmd.Flags().DurationVar(&fetchTimeout, "timeout", time.Minute, "Download timeout")
	return cmd
}

func runFetchRuntime(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), fetchTimeout)
	defer cancel()

	path := plotlyJSPath
	if path == "" {
		path = runtime.DefaultPath
	}
	n, err := runtime.Fetch(ctx, &http.Client{}, cdnURL, path)
	if err != nil {
		return fmt.Errorf("fetch runtime: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", n, path)
	return nil
}
