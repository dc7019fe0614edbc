package cmd

import (
	"fmt"
	"os"

	"github.com/agentic-research/marquee/internal/repl"
	"github.com/spf13/cobra"
)

type options struct {
	dataPath     string
	selector     string
	patternsPath string
	inMemory     bool
	logLevel     string
	logMode      string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "marquee",
		Short:         "Marquee: ask questions about a movie catalog",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.open()
			if err != nil {
				return err
			}
			defer sess.Close()

			return repl.Run(cmd.InOrStdin(), cmd.OutOrStdout(), sess.resolver)
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&opts.dataPath, "data", "d", "", "Dataset (.json, .yaml, .yml, .db or a directory); embedded catalog when empty")
	f.StringVar(&opts.selector, "selector", "", "JSONPath selecting movie records in JSON/YAML datasets (default \"$.movies[*]\")")
	f.StringVarP(&opts.patternsPath, "patterns", "p", "", "Pattern set (.json, .yaml, .hcl); built-in questions when empty")
	f.BoolVar(&opts.inMemory, "in-memory", false, "Load a .db dataset into memory instead of querying it directly")
	f.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	f.StringVar(&opts.logMode, "log-mode", "dev", "Log encoding: dev (console) or prod (JSON)")

	root.AddCommand(
		newAskCmd(opts),
		newBuildCmd(opts),
		newPatternsCmd(opts),
	)
	return root
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
