package cmd

import (
	"fmt"

	"clovis/internal/config"
	"clovis/internal/history"

	"github.com/spf13/cobra"
)

// newHistoryCmd lists recent config changes recorded by the history store.
func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent configuration changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.Open(config.Dir())
			if err != nil {
				return fmt.Errorf("open config history: %w", err)
			}

			entries, err := store.Recent(limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No configuration changes recorded yet.")
				return nil
			}

			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n",
					e.Hash, e.When.Format("2006-01-02 15:04"), e.Message)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of entries to show")
	return cmd
}
