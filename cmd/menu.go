package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"playmenu/internal/config"
	"playmenu/internal/menu"
	"playmenu/internal/players"
)

var (
	menuLogFile  string
	menuLogLevel string
)

// menuCmd represents the menu command
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive player menu",
	Long: `Open a terminal menu listing the active media players.

Selecting a player toggles its playback. Further bindings:

  enter/space  toggle play/pause for the selected player
  n            next track (playing player, or the tool's default)
  b            previous track
  a            pause every playing player
  o            pause every playing player except the selected one
  r            refresh the player list
  q / Esc      quit

The list refreshes on start, on 'r', and shortly after every action. There
is no background polling unless menu_refresh_seconds is set in the config.`,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)

	menuCmd.Flags().StringVar(&menuLogFile, "log-file", "", "Log file path (default: logging disabled)")
	menuCmd.Flags().StringVar(&menuLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := setupLogger(menuLogFile, menuLogLevel)

	logger.Info().
		Str("command", cfg.Command).
		Dur("settle_delay", cfg.SettleDelay()).
		Msg("Starting menu")

	client := players.NewPlayerctlClient(cfg.Command)
	registry := players.NewRegistry(client, logger)
	dispatcher := players.NewDispatcher(client, cfg.SettleDelay(), logger)

	app := menu.New(registry, dispatcher, menu.Config{
		RefreshInterval: cfg.MenuRefresh(),
		CommandTimeout:  cfg.CommandTimeout(),
	}, logger)

	// Every playback command re-queries the registry after the settle delay
	dispatcher.SetRefreshFunc(app.Refresh)

	return app.Run(context.Background())
}

// setupLogger creates a logger with the specified configuration. Without a
// log file, logging is disabled entirely: writing to stderr would fight the
// terminal UI for the screen.
func setupLogger(logFile, logLevel string) zerolog.Logger {
	if logFile == "" {
		return zerolog.Nop()
	}

	// Parse log level
	level := zerolog.InfoLevel
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		return zerolog.Nop()
	}

	return zerolog.New(f).
		Level(level).
		With().
		Timestamp().
		Logger()
}
