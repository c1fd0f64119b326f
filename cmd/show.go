package cmd

import (
	"fmt"

	"clovis/internal/ui"

	"github.com/spf13/cobra"
)

// newShowCmd prints the current configuration as highlighted YAML.
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := newRuntime()

			if len(rt.cfg.Environments) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No environments configured.")
				return nil
			}

			data, err := rt.cfg.Bytes()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.NewHighlighter().Highlight(string(data)))
			return nil
		},
	}
}
