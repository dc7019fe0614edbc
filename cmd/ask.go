package cmd

import (
	"strings"

	"github.com/agentic-research/marquee/internal/repl"
	"github.com/spf13/cobra"
)

func newAskCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "ask [question...]",
		Short:   "Answer a single question and exit",
		Example: `  marquee ask who directed jaws`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.open()
			if err != nil {
				return err
			}
			defer sess.Close()

			res := sess.resolver.Ask(strings.Join(args, " "))
			return repl.Print(cmd.OutOrStdout(), res)
		},
	}
}
