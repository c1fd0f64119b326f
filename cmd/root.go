// Package cmd wires the CLI surface: subcommands parse arguments and hand
// off to the internal packages; running without a subcommand opens the
// interactive environment picker.
package cmd

import (
	"fmt"
	"os"

	"clovis/internal/apps"
	"clovis/internal/config"
	"clovis/internal/history"
	"clovis/internal/launcher"
	"clovis/internal/picker"
	"clovis/internal/system"
	"clovis/internal/ui/components"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd is the entry point when clovis is called without a subcommand: it
// opens the interactive picker.
var rootCmd = &cobra.Command{
	Use:   "clovis",
	Short: "Launches applications based on environment configurations",
	Long: `clovis manages named environments — groups of applications meant to be
launched together — in a per-user config file, and starts them on demand.

Run without a subcommand for the interactive environment picker.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPicker()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newShowCmd(),
		newLaunchCmd(),
		newValidateCmd(),
		newEditCmd(),
		newEnvCmd(),
		newConfigCmd(),
		newHistoryCmd(),
	)
}

// SetVersion sets the version for the root command.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the root command. Called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "clovis version %s\n" .Version}}`)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runtime bundles the pieces every command needs: the logger, the process
// environment, the availability checker and the loaded config.
type runtime struct {
	logger  *log.Logger
	sys     *system.ExecEnvironment
	checker *apps.Checker
	cfgPath string
	cfg     *config.Config
}

// newRuntime loads the config, falling back to an empty one when the file is
// missing or unreadable. Only a later failed save is fatal.
func newRuntime() *runtime {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfgPath := config.Path()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("no config file yet, starting empty", "path", cfgPath)
		} else {
			logger.Warn("could not load config, starting empty", "path", cfgPath, "err", err)
		}
		cfg = config.Empty()
	}

	sys := system.New()
	return &runtime{
		logger:  logger,
		sys:     sys,
		checker: apps.NewChecker(sys, nil),
		cfgPath: cfgPath,
		cfg:     cfg,
	}
}

// save persists the config and records the change in the config history.
// History failures are logged and swallowed; only the write itself is fatal.
func (rt *runtime) save(message string) error {
	if err := rt.cfg.Save(rt.cfgPath); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	rt.logger.Debug("config saved", "path", rt.cfgPath)

	store, err := history.Open(config.Dir())
	if err != nil {
		rt.logger.Debug("config history unavailable", "err", err)
		return nil
	}
	if _, err := store.Commit(message); err != nil {
		rt.logger.Debug("could not record config history", "err", err)
	}
	return nil
}

// pickerItems builds the picker rows, probing availability and running state
// for every app.
func (rt *runtime) pickerItems() []components.Item {
	probe := apps.NewProbe(rt.sys)
	items := make([]components.Item, 0, len(rt.cfg.Environments))
	for _, name := range rt.cfg.Names() {
		refs, _ := rt.cfg.Apps(name)
		item := components.Item{Name: name, Apps: len(refs)}
		for _, ref := range refs {
			if !rt.checker.IsAvailable(ref) {
				item.Missing++
			}
			if probe.IsRunning(ref) {
				item.Running++
			}
		}
		items = append(items, item)
	}
	return items
}

func runPicker() error {
	rt := newRuntime()

	p := picker.New(rt.pickerItems(), rt.pickerItems)
	model, err := tea.NewProgram(p).Run()
	if err != nil {
		return err
	}

	choice := model.(*picker.Model).Choice()
	if choice == nil {
		return nil
	}

	l := launcher.New(rt.sys, rt.logger, os.Stdout)
	if err := l.Launch(rt.cfg, choice.Env, choice.Force); err != nil {
		rt.logger.Error("launch failed", "err", err)
	}
	return nil
}
