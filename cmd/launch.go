package cmd

import (
	"fmt"
	"strings"

	"clovis/internal/config"
	"clovis/internal/launcher"

	"github.com/spf13/cobra"
)

// newLaunchCmd launches every app of an environment. Without an environment
// argument it prints the subcommand help plus the configured environment
// names instead.
func newLaunchCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "launch [env]",
		Short: "Launch all apps in the specified environment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := newRuntime()

			if len(args) == 0 {
				fmt.Fprint(cmd.OutOrStdout(), renderLaunchHelp(cmd))
				fmt.Fprint(cmd.OutOrStdout(), listEnvironmentNames(rt.cfg))
				return nil
			}

			l := launcher.New(rt.sys, rt.logger, cmd.OutOrStdout())
			if err := l.Launch(rt.cfg, args[0], force); err != nil {
				// Reported, not fatal: the invocation ends normally.
				rt.logger.Error(err.Error())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "force launch applications even if they are already running")

	// The help flag behaves like the no-argument form: usage plus the live
	// environment list.
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		rt := newRuntime()
		fmt.Fprint(c.OutOrStdout(), renderLaunchHelp(c))
		fmt.Fprint(c.OutOrStdout(), listEnvironmentNames(rt.cfg))
	})
	return cmd
}

// renderLaunchHelp returns the launch subcommand's usage text.
func renderLaunchHelp(cmd *cobra.Command) string {
	return cmd.UsageString()
}

// listEnvironmentNames returns the configured environment names as a block
// suitable for appending to the help text.
func listEnvironmentNames(cfg *config.Config) string {
	var b strings.Builder
	b.WriteString("\nAvailable environments:\n")
	names := cfg.Names()
	if len(names) == 0 {
		b.WriteString("  (none configured)\n")
		return b.String()
	}
	for _, name := range names {
		fmt.Fprintf(&b, "  - %s\n", name)
	}
	return b.String()
}
