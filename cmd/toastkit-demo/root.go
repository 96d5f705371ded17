package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/embermaw/toastkit/frame"
	"github.com/embermaw/toastkit/internal/audio"
	"github.com/embermaw/toastkit/internal/bridge"
	"github.com/embermaw/toastkit/internal/config"
	"github.com/embermaw/toastkit/internal/theme"
	"github.com/embermaw/toastkit/internal/tui"
	"github.com/embermaw/toastkit/toast"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		themeName  string
		sound      bool
		relay      bool
	}
	logger *slog.Logger
)

// rootCmd represents the base command. Running it launches the
// interactive toast playground.
var rootCmd = &cobra.Command{
	Use:   "toastkit-demo",
	Short: "Interactive playground for the toastkit notification stack",
	Long: `toastkit-demo is an interactive terminal playground for toastkit.

It spawns toasts on keypress, animates them through their entry and exit
transitions, and demonstrates auto-dismiss timers, persistent toasts,
stacked rendering, sound cues, and the freedesktop notification relay.

Key bindings:
  s           Show a toast
  p           Show a pinned (persistent) toast
  i           Show a toast above the current stack
  enter       Tap the top toast (runs its tap handler, then dismisses)
  d, x        Dismiss the top toast
  h           Hold/release the top toast's auto-dismiss timer
  c           Dismiss all toasts
  ?           Toggle help
  q           Quit`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.Load(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Flag overrides beat the config file.
		if cmd.Flags().Changed("theme") {
			cfg.Theme.Name = globalOpts.themeName
		}
		if cmd.Flags().Changed("sound") {
			cfg.Audio.Enabled = globalOpts.sound
		}
		if cmd.Flags().Changed("relay") {
			cfg.Bridge.Enabled = globalOpts.relay
		}
		return nil
	},
	RunE: runDemo,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/toastkit/config.toml)")
	rootCmd.Flags().StringVar(&globalOpts.themeName, "theme", "",
		"Card theme name (embedded or ~/.config/toastkit/themes)")
	rootCmd.Flags().BoolVar(&globalOpts.sound, "sound", false,
		"Play sound cues on show and dismiss")
	rootCmd.Flags().BoolVar(&globalOpts.relay, "relay", false,
		"Mirror toasts to the desktop notification daemon over D-Bus")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout stays clean for the TUI
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

func runDemo(cmd *cobra.Command, args []string) error {
	loop := frame.NewLoop(0, logger)
	loop.Start()
	defer loop.Stop()

	mgr := toast.New(loop, logger)
	mgr.SetSettings(cfg.Settings())

	th, err := theme.Load(cfg.Theme.Name)
	if err != nil {
		logger.Warn("failed to load theme, using default", "theme", cfg.Theme.Name, "error", err)
		th = theme.Default()
	}

	if cfg.Audio.Enabled {
		cues := audio.NewCues(cfg.Audio.ShowSound, cfg.Audio.DismissSound,
			float64(cfg.Audio.Volume)/100, logger)
		defer cues.Close()
		mgr.AddStatusCallback(cues.Callback)
	}

	var relay *bridge.Relay
	if cfg.Bridge.Enabled {
		relay, err = bridge.New(cfg.Bridge.AppName, logger)
		if err != nil {
			logger.Warn("failed to connect notification relay", "error", err)
		} else {
			defer relay.Close()
		}
	}

	surface := tui.NewSurface()
	mgr.Attach(surface)

	model := tui.NewModel(mgr, cfg, th, relay, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	surface.SetProgram(program)

	// Hot-reload presentation settings when the config file changes.
	watchPath := globalOpts.configPath
	if watchPath == "" {
		watchPath = config.DefaultPath()
	}
	watcher, err := config.NewWatcher(watchPath, func(next *config.Config) {
		mgr.SetSettings(next.Settings())
	}, logger)
	if err != nil {
		logger.Debug("config watcher unavailable", "error", err)
	} else if err := watcher.Start(); err != nil {
		logger.Debug("config watcher failed to start", "error", err)
	} else {
		defer watcher.Stop()
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run playground: %w", err)
	}
	return nil
}
