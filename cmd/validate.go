package cmd

import (
	"fmt"

	"clovis/internal/envs"

	"github.com/spf13/cobra"
)

// newValidateCmd checks every configured app for availability.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration to ensure all apps are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := newRuntime()

			validator := envs.NewValidator(rt.checker, rt.logger)
			findings := validator.Validate(rt.cfg)
			if len(findings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "All applications are properly installed.")
			}
			return nil
		},
	}
}
