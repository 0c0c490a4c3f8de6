// Package main implements the retro CLI, a terminal task manager.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/neonterm/retrotodo/internal/config"
	"github.com/neonterm/retrotodo/internal/ui"
	"github.com/neonterm/retrotodo/task"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "retro",
	Short:         "Retro Todo - a cyberpunk terminal task manager",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the retro version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("retro %s\n", version)
	},
}

var splashCmd = &cobra.Command{
	Use:   "splash",
	Short: "Show the startup banner",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(ui.Splash(currentTheme(), version))
	},
}

var (
	flagDataFile string
	flagTheme    string
	flagNoColor  bool
	flagVerbose  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataFile, "data", "", "Path to the task data file")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme (cyberpunk, plain)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	}

	rootCmd.AddCommand(versionCmd, splashCmd)
}

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

// app bundles everything a command runner needs.
type app struct {
	cfg     *config.Config
	theme   *ui.Theme
	store   *task.Store
	service *task.Service
}

// openApp loads config, opens the store, and warns when a corrupt data
// file had to be replaced.
func openApp() (*app, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}

	dataFile := flagDataFile
	if dataFile == "" {
		dataFile = cfg.DataFilePath(cwd)
	}

	logger.Debug("opening task store", "path", dataFile)
	store, err := task.Open(dataFile)
	if err != nil {
		return nil, err
	}
	if store.WasReset() {
		logger.Warn("task data was corrupt and has been reset", "path", store.Path())
	}

	return &app{
		cfg:     cfg,
		theme:   themeFromConfig(cfg),
		store:   store,
		service: task.NewService(store),
	}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		logger.Warn("close task store", "err", err)
	}
}

func themeFromConfig(cfg *config.Config) *ui.Theme {
	name := cfg.UI.Theme
	if flagTheme != "" {
		name = flagTheme
	}
	if name == "" {
		name = ui.ThemeCyberpunk
	}

	noColor := flagNoColor || cfg.UI.NoColor || os.Getenv("NO_COLOR") != ""
	return ui.NewTheme(name, noColor)
}

// currentTheme builds a theme without opening the store, for commands
// that never touch task data.
func currentTheme() *ui.Theme {
	cwd, err := os.Getwd()
	if err != nil {
		return ui.NewTheme(ui.ThemePlain, true)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return ui.NewTheme(ui.ThemePlain, true)
	}
	return themeFromConfig(cfg)
}
