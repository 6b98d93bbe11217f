package players

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

// stubRunner replaces the subprocess runner for the duration of one test
func stubRunner(t *testing.T, fn func(ctx context.Context, name string, args ...string) ([]byte, error)) {
	t.Helper()
	orig := runCommand
	runCommand = fn
	t.Cleanup(func() { runCommand = orig })
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{"Playing", StatusPlaying},
		{"Paused", StatusPaused},
		{"Stopped", StatusStopped},
		{"Playing\n", StatusPlaying},
		{"  Paused  ", StatusPaused},
		{"", StatusUnknown},
		{"Buffering", StatusUnknown},
		{"playing", StatusUnknown}, // case matters, the tool reports capitalized words
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseStatus(tt.input); got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPlayerctlClient_CommandArguments(t *testing.T) {
	client := NewPlayerctlClient("playerctl")
	ctx := context.Background()

	tests := []struct {
		name     string
		invoke   func() error
		wantArgs []string
	}{
		{
			name: "list all",
			invoke: func() error {
				_, err := client.ListNames(ctx)
				return err
			},
			wantArgs: []string{"--list-all"},
		},
		{
			name: "status is always scoped",
			invoke: func() error {
				_, err := client.PlayerStatus(ctx, "spotify.instance1")
				return err
			},
			wantArgs: []string{"status", "-p", "spotify.instance1"},
		},
		{
			name:     "scoped play",
			invoke:   func() error { return client.Play(ctx, "vlc") },
			wantArgs: []string{"play", "-p", "vlc"},
		},
		{
			name:     "unscoped play",
			invoke:   func() error { return client.Play(ctx, "") },
			wantArgs: []string{"play"},
		},
		{
			name:     "scoped pause",
			invoke:   func() error { return client.Pause(ctx, "vlc") },
			wantArgs: []string{"pause", "-p", "vlc"},
		},
		{
			name:     "scoped toggle",
			invoke:   func() error { return client.PlayPause(ctx, "vlc") },
			wantArgs: []string{"play-pause", "-p", "vlc"},
		},
		{
			name:     "unscoped next",
			invoke:   func() error { return client.Next(ctx, "") },
			wantArgs: []string{"next"},
		},
		{
			name:     "scoped previous",
			invoke:   func() error { return client.Previous(ctx, "mpv") },
			wantArgs: []string{"previous", "-p", "mpv"},
		},
		{
			name: "version",
			invoke: func() error {
				_, err := client.Version(ctx)
				return err
			},
			wantArgs: []string{"--version"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotName string
			var gotArgs []string
			stubRunner(t, func(ctx context.Context, name string, args ...string) ([]byte, error) {
				gotName = name
				gotArgs = args
				return []byte("Playing\n"), nil
			})

			if err := tt.invoke(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotName != "playerctl" {
				t.Errorf("command = %q, want %q", gotName, "playerctl")
			}
			if !reflect.DeepEqual(gotArgs, tt.wantArgs) {
				t.Errorf("args = %v, want %v", gotArgs, tt.wantArgs)
			}
		})
	}
}

func TestNewPlayerctlClient_DefaultCommand(t *testing.T) {
	var gotName string
	stubRunner(t, func(ctx context.Context, name string, args ...string) ([]byte, error) {
		gotName = name
		return []byte("playerctl v2.4.1\n"), nil
	})

	client := NewPlayerctlClient("")
	if _, err := client.Version(context.Background()); err != nil {
		t.Fatalf("Version() failed: %v", err)
	}
	if gotName != "playerctl" {
		t.Errorf("command = %q, want %q", gotName, "playerctl")
	}
}

func TestListNames_TrimsAndDropsEmptyLines(t *testing.T) {
	stubRunner(t, func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return []byte("  b.instance2  \n\nspotify.instance1\n   \n"), nil
	})

	client := NewPlayerctlClient("playerctl")
	names, err := client.ListNames(context.Background())
	if err != nil {
		t.Fatalf("ListNames() failed: %v", err)
	}

	want := []string{"b.instance2", "spotify.instance1"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
}

func TestListNames_EmptyOutputMeansNoPlayers(t *testing.T) {
	stubRunner(t, func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return []byte(""), nil
	})

	client := NewPlayerctlClient("playerctl")
	names, err := client.ListNames(context.Background())
	if err != nil {
		t.Fatalf("ListNames() failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("names = %v, want none", names)
	}
}

func TestPlayerStatus_FailureNormalizesToUnknown(t *testing.T) {
	stubRunner(t, func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return nil, errors.New("exit status 1")
	})

	client := NewPlayerctlClient("playerctl")
	status, err := client.PlayerStatus(context.Background(), "spotify.instance1")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if status != StatusUnknown {
		t.Errorf("status = %q, want %q", status, StatusUnknown)
	}
}

func TestVersion_TrimsOutput(t *testing.T) {
	stubRunner(t, func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return []byte("  playerctl v2.4.1\n"), nil
	})

	client := NewPlayerctlClient("playerctl")
	version, err := client.Version(context.Background())
	if err != nil {
		t.Fatalf("Version() failed: %v", err)
	}
	if version != "playerctl v2.4.1" {
		t.Errorf("version = %q, want %q", version, "playerctl v2.4.1")
	}
}
