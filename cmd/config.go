package cmd

import (
	"os"

	"clovis/internal/editor"

	"github.com/spf13/cobra"
)

// newConfigCmd opens the config file in the user's editor ($EDITOR, falling
// back to whatever line editor is installed).
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Open the configuration file in the default editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := newRuntime()

			// First run: materialize the file so the editor has
			// something to open.
			if _, err := os.Stat(rt.cfgPath); os.IsNotExist(err) {
				if err := rt.cfg.Save(rt.cfgPath); err != nil {
					return err
				}
			}

			ed := editor.Detect(rt.sys)
			rt.logger.Debug("opening config", "editor", ed.Command, "path", rt.cfgPath)
			if err := ed.Open(rt.cfgPath); err != nil {
				rt.logger.Errorf("failed to open config file with editor %q: %v", ed.Command, err)
			}
			return nil
		},
	}
}
