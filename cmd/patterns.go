package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/agentic-research/marquee/internal/answer"
	"github.com/agentic-research/marquee/internal/query"
	"github.com/agentic-research/marquee/internal/store"
	"github.com/spf13/cobra"
)

func newPatternsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the active question templates in match order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := opts.patternSet()
			if err != nil {
				return err
			}

			// Compiling checks actions and arity without loading a dataset.
			table, err := query.Compile(set, answer.New(store.NewMemoryStore(), nil).Actions())
			if err != nil {
				return fmt.Errorf("compile patterns: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			for i, e := range table.Entries() {
				_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, e.Template, e.Action)
			}
			return tw.Flush()
		},
	}
}
