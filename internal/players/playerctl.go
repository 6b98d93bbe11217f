package players

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Status represents the playback state the control tool reports for one player
type Status string

const (
	StatusPlaying Status = "Playing"
	StatusPaused  Status = "Paused"
	StatusStopped Status = "Stopped"
	StatusUnknown Status = "Unknown"
)

// ParseStatus maps the control tool's status word to a Status.
// Anything other than Playing, Paused or Stopped (including empty output)
// normalizes to StatusUnknown.
func ParseStatus(s string) Status {
	switch strings.TrimSpace(s) {
	case "Playing":
		return StatusPlaying
	case "Paused":
		return StatusPaused
	case "Stopped":
		return StatusStopped
	default:
		return StatusUnknown
	}
}

// Client defines the interface for interacting with the external media
// control tool
type Client interface {
	// ListNames returns the identifiers of all active players
	ListNames(ctx context.Context) ([]string, error)

	// PlayerStatus returns the playback status of one player
	PlayerStatus(ctx context.Context, player string) (Status, error)

	// Play resumes playback; an empty player leaves the target unscoped
	Play(ctx context.Context, player string) error

	// Pause pauses playback
	Pause(ctx context.Context, player string) error

	// PlayPause toggles between play and pause
	PlayPause(ctx context.Context, player string) error

	// Next skips to the next track
	Next(ctx context.Context, player string) error

	// Previous goes to the previous track
	Previous(ctx context.Context, player string) error

	// Version returns the control tool's version string, confirming it is
	// reachable at all
	Version(ctx context.Context) (string, error)
}

// runCommand executes the control tool and captures stdout. Tests swap this
// out to avoid spawning subprocesses.
var runCommand = func(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// PlayerctlClient implements the Client interface by shelling out to a
// playerctl-compatible executable
type PlayerctlClient struct {
	command string
}

// NewPlayerctlClient creates a client for the given executable name or path.
// An empty command falls back to "playerctl".
func NewPlayerctlClient(command string) *PlayerctlClient {
	if command == "" {
		command = "playerctl"
	}
	return &PlayerctlClient{command: command}
}

// ListNames returns the identifiers of all active players, one per output
// line, trimmed, with empty lines dropped. No output means no players.
func (c *PlayerctlClient) ListNames(ctx context.Context) ([]string, error) {
	output, err := runCommand(ctx, c.command, "--list-all")
	if err != nil {
		return nil, commandError("list players", err)
	}

	var names []string
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}

// PlayerStatus queries the playback status of the named player
func (c *PlayerctlClient) PlayerStatus(ctx context.Context, player string) (Status, error) {
	output, err := runCommand(ctx, c.command, "status", "-p", player)
	if err != nil {
		return StatusUnknown, commandError("get status", err)
	}
	return ParseStatus(string(output)), nil
}

// Play resumes playback for the named player
func (c *PlayerctlClient) Play(ctx context.Context, player string) error {
	return c.control(ctx, "play", player)
}

// Pause pauses playback for the named player
func (c *PlayerctlClient) Pause(ctx context.Context, player string) error {
	return c.control(ctx, "pause", player)
}

// PlayPause toggles between play and pause for the named player
func (c *PlayerctlClient) PlayPause(ctx context.Context, player string) error {
	return c.control(ctx, "play-pause", player)
}

// Next skips to the next track on the named player
func (c *PlayerctlClient) Next(ctx context.Context, player string) error {
	return c.control(ctx, "next", player)
}

// Previous goes back to the previous track on the named player
func (c *PlayerctlClient) Previous(ctx context.Context, player string) error {
	return c.control(ctx, "previous", player)
}

// Version returns the control tool's version string
func (c *PlayerctlClient) Version(ctx context.Context) (string, error) {
	output, err := runCommand(ctx, c.command, "--version")
	if err != nil {
		return "", commandError("version", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// control invokes one playback verb, scoped with -p when a player is named
func (c *PlayerctlClient) control(ctx context.Context, verb, player string) error {
	args := []string{verb}
	if player != "" {
		args = append(args, "-p", player)
	}
	if _, err := runCommand(ctx, c.command, args...); err != nil {
		return commandError(verb, err)
	}
	return nil
}

// commandError surfaces the tool's stderr when available, since exec's
// "exit status 1" alone tells the user nothing
func commandError(op string, err error) error {
	if exitErr, ok := err.(*exec.ExitError); ok {
		if msg := strings.TrimSpace(string(exitErr.Stderr)); msg != "" {
			return fmt.Errorf("%s: %s", op, msg)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
