package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/agentic-research/marquee/internal/ingest"
	"github.com/spf13/cobra"
)

func newBuildCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "build [source] [output.db]",
		Short: "Build a SQLite movie database from a JSON/YAML dataset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]
			output := args[1]

			log, err := opts.logger()
			if err != nil {
				return err
			}
			defer log.Sync()

			if _, err := os.Stat(source); err != nil {
				return fmt.Errorf("stat source: %w", err)
			}

			_ = os.Remove(output) // overwrite
			writer, err := ingest.NewSQLiteWriter(output)
			if err != nil {
				return err
			}

			engine := ingest.NewEngine(writer, log)
			if opts.selector != "" {
				engine.Selector = opts.selector
			}

			start := time.Now()
			if err := engine.Ingest(source); err != nil {
				_ = writer.Close() // ingest error wins
				return err
			}
			if err := writer.Close(); err != nil {
				return fmt.Errorf("finalize %s: %w", output, err)
			}

			log.Info("build finished", "source", source, "output", output, "movies", engine.Count())
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Built %s: %d movies in %v.\n",
				output, engine.Count(), time.Since(start).Round(time.Millisecond))
			return err
		},
	}
}
