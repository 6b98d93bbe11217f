package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"playmenu/internal/config"
	"playmenu/internal/players"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Resume playback",
	Long: `Resume playback. With --player, targets that player; otherwise the
control tool picks its default player.`,
	RunE: runPlay,
}

// pauseCmd represents the pause command
var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause playback",
	Long: `Pause playback. With --player, targets that player; otherwise the
control tool picks its default player.`,
	RunE: runPause,
}

// toggleCmd represents the toggle command
var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle play/pause",
	Long: `Toggle between play and pause. With --player, targets that player;
otherwise the control tool picks its default player.`,
	RunE: runToggle,
}

// nextCmd represents the next command
var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Skip to the next track",
	Long: `Skip to the next track. With --player, targets that player.
Without it, targets the currently playing player when one exists, falling
back to the control tool's default.`,
	RunE: runNext,
}

// prevCmd represents the prev command
var prevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Go back to the previous track",
	Long: `Go back to the previous track. With --player, targets that player.
Without it, targets the currently playing player when one exists, falling
back to the control tool's default.`,
	RunE: runPrev,
}

// pauseAllCmd represents the pause-all command
var pauseAllCmd = &cobra.Command{
	Use:   "pause-all",
	Short: "Pause every playing player",
	Long: `Pause every player that is currently playing. Pause commands go out
concurrently; one player failing does not stop the others.`,
	RunE: runPauseAll,
}

// pauseOthersCmd represents the pause-others command
var pauseOthersCmd = &cobra.Command{
	Use:   "pause-others <player>",
	Short: "Pause every playing player except one",
	Long: `Pause every player that is currently playing, except the named one.
Useful to silence everything but the player you care about.`,
	Args: cobra.ExactArgs(1),
	RunE: runPauseOthers,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, pauseCmd, toggleCmd, nextCmd, prevCmd} {
		cmd.Flags().StringP("player", "p", "", "Player identifier to target (default: unscoped)")
	}

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(prevCmd)
	rootCmd.AddCommand(pauseAllCmd)
	rootCmd.AddCommand(pauseOthersCmd)
}

// newClient loads configuration and builds the control tool client plus a
// context bounded by the configured command timeout
func newClient() (*players.PlayerctlClient, context.Context, context.CancelFunc, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	client := players.NewPlayerctlClient(cfg.Command)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.CommandTimeout())
	return client, ctx, cancel, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	client, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	player, _ := cmd.Flags().GetString("player")
	if err := client.Play(ctx, player); err != nil {
		return fmt.Errorf("failed to play: %w", err)
	}
	return nil
}

func runPause(cmd *cobra.Command, args []string) error {
	client, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	player, _ := cmd.Flags().GetString("player")
	if err := client.Pause(ctx, player); err != nil {
		return fmt.Errorf("failed to pause: %w", err)
	}
	return nil
}

func runToggle(cmd *cobra.Command, args []string) error {
	client, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	player, _ := cmd.Flags().GetString("player")
	if err := client.PlayPause(ctx, player); err != nil {
		return fmt.Errorf("failed to toggle: %w", err)
	}
	return nil
}

func runNext(cmd *cobra.Command, args []string) error {
	client, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	if player, _ := cmd.Flags().GetString("player"); player != "" {
		if err := client.Next(ctx, player); err != nil {
			return fmt.Errorf("failed to skip to next track: %w", err)
		}
		return nil
	}

	registry := players.NewRegistry(client, zerolog.Nop())
	dispatcher := players.NewDispatcher(client, 0, zerolog.Nop())
	if err := dispatcher.Next(ctx, registry.List(ctx)); err != nil {
		return fmt.Errorf("failed to skip to next track: %w", err)
	}
	return nil
}

func runPrev(cmd *cobra.Command, args []string) error {
	client, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	if player, _ := cmd.Flags().GetString("player"); player != "" {
		if err := client.Previous(ctx, player); err != nil {
			return fmt.Errorf("failed to go to previous track: %w", err)
		}
		return nil
	}

	registry := players.NewRegistry(client, zerolog.Nop())
	dispatcher := players.NewDispatcher(client, 0, zerolog.Nop())
	if err := dispatcher.Previous(ctx, registry.List(ctx)); err != nil {
		return fmt.Errorf("failed to go to previous track: %w", err)
	}
	return nil
}

func runPauseAll(cmd *cobra.Command, args []string) error {
	client, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	registry := players.NewRegistry(client, zerolog.Nop())
	dispatcher := players.NewDispatcher(client, 0, zerolog.Nop())
	if err := dispatcher.PauseAll(ctx, registry.List(ctx)); err != nil {
		return fmt.Errorf("failed to pause all: %w", err)
	}
	return nil
}

func runPauseOthers(cmd *cobra.Command, args []string) error {
	client, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	registry := players.NewRegistry(client, zerolog.Nop())
	dispatcher := players.NewDispatcher(client, 0, zerolog.Nop())
	if err := dispatcher.PauseOthers(ctx, registry.List(ctx), args[0]); err != nil {
		return fmt.Errorf("failed to pause other players: %w", err)
	}
	return nil
}
