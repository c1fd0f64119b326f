package cmd

import (
	"fmt"
	"strings"

	"clovis/internal/config"
	"clovis/internal/diff"
	"clovis/internal/envs"

	"github.com/spf13/cobra"
)

// newEditCmd adds or removes an application in an environment. The config is
// written back only when something actually changed, with a diff of the
// change shown first.
func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <env> <add|remove> <app>",
		Short: "Edit the configuration for a specific environment",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := newRuntime()
			env, action, app := args[0], args[1], args[2]

			before := rt.cfg.Clone()

			editor := envs.NewEditor(rt.cfg, rt.checker, rt.logger)
			mutated, err := editor.Apply(env, action, app)
			if err != nil {
				// Validation errors are reported, never fatal.
				rt.logger.Error(err.Error())
			}
			if !mutated {
				rt.logger.Info("no changes made to the config")
				return nil
			}

			preview, err := renderEditPreview(before, rt.cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), preview)

			return rt.save(fmt.Sprintf("edit: %s %s in %s", action, app, env))
		},
	}
}

// renderEditPreview diffs two config snapshots and renders the changed lines
// followed by an insertion/deletion count.
func renderEditPreview(before, after *config.Config) (string, error) {
	old, err := before.Bytes()
	if err != nil {
		return "", err
	}
	cur, err := after.Bytes()
	if err != nil {
		return "", err
	}

	lines := diff.Lines(string(old), string(cur))
	if lines == nil {
		return "", nil
	}

	var b strings.Builder
	b.WriteString(diff.Render(lines))
	added, removed := diff.Stats(lines)
	fmt.Fprintf(&b, "%d insertion(s), %d deletion(s)\n", added, removed)
	return b.String(), nil
}
