package cmd

import (
	"fmt"
	"io"

	"clovis/internal/envs"

	"github.com/spf13/cobra"
)

// newEnvCmd manages environment keys themselves. edit requires its target
// environment to exist already, so this is where environments come from.
func newEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Create or delete environments",
	}
	cmd.AddCommand(newEnvCreateCmd(), newEnvDeleteCmd())
	return cmd
}

func newEnvCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new empty environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvOp(cmd.OutOrStdout(), args[0], "create")
		},
	}
}

func newEnvDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an environment and its app list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvOp(cmd.OutOrStdout(), args[0], "delete")
		},
	}
}

func runEnvOp(out io.Writer, name, op string) error {
	rt := newRuntime()
	editor := envs.NewEditor(rt.cfg, rt.checker, rt.logger)

	var (
		mutated bool
		err     error
	)
	if op == "create" {
		mutated, err = editor.CreateEnvironment(name)
	} else {
		mutated, err = editor.DeleteEnvironment(name)
	}
	if err != nil {
		rt.logger.Error(err.Error())
	}
	if !mutated {
		rt.logger.Info("no changes made to the config")
		return nil
	}

	fmt.Fprintf(out, "Environment %q %sd.\n", name, op)
	return rt.save(fmt.Sprintf("env: %s %s", op, name))
}
