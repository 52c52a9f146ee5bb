package cmd

import (
	"fmt"
	"os"

	"github.com/mavila/zodico/internal/app"
	"github.com/mavila/zodico/internal/history"
	"github.com/mavila/zodico/internal/sink"
	"github.com/spf13/cobra"
)

// runApp opens the attempt log, builds the sink, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	log, err := history.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open attempt log: %w", err)
	}
	defer log.Close()

	opts := app.Options{
		Sink: buildSink(cmd),
		Log:  log,
	}
	return app.Run(opts)
}

// buildSink constructs the result sink from the --sink-url flag or the
// ZODICO_SINK_URL env var. Without either, submissions fail with a
// retryable "not configured" error instead of silently vanishing.
func buildSink(cmd *cobra.Command) sink.Sink {
	url, _ := cmd.Flags().GetString("sink-url")
	if url == "" {
		url = os.Getenv("ZODICO_SINK_URL")
	}
	if url == "" {
		fmt.Fprintln(os.Stderr, "No result database configured (ZODICO_SINK_URL); results will not be saved to the cloud.")
		return sink.Disabled{}
	}
	return sink.NewRTDBClient(url)
}
