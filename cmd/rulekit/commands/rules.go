package commands

import "github.com/spf13/cobra"

func newRulesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the registered rule names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return newReporter(cmd.OutOrStdout(), a.jsonOut).rules(a.engine.Registry().Names())
		},
	}
}
