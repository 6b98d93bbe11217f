package menu

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"playmenu/internal/players"
)

func TestStateTransitions_DoNotMutateTheReceiver(t *testing.T) {
	base := State{}

	loading := base.WithLoading()
	if !loading.Loading {
		t.Error("WithLoading() did not set Loading")
	}
	if base.Loading {
		t.Error("WithLoading() mutated the receiver")
	}

	records := []players.PlayerRecord{
		players.NewPlayerRecord("spotify.instance1", players.StatusPlaying),
	}
	loaded := loading.WithPlayers(records)
	if loaded.Loading {
		t.Error("WithPlayers() did not clear Loading")
	}
	if len(loaded.Players) != 1 {
		t.Errorf("got %d players, want 1", len(loaded.Players))
	}
	if len(loading.Players) != 0 {
		t.Error("WithPlayers() mutated the receiver")
	}

	acted := loaded.WithAction("paused spotify")
	if acted.LastAction != "paused spotify" {
		t.Errorf("LastAction = %q, want %q", acted.LastAction, "paused spotify")
	}
	if loaded.LastAction != "" {
		t.Error("WithAction() mutated the receiver")
	}
}

func TestItemLabel(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		status     players.Status
		want       string
	}{
		{
			name:       "short label unchanged",
			identifier: "spotify.instance1",
			status:     players.StatusPlaying,
			want:       "spotify (Playing)",
		},
		{
			name:       "paused label has no marker",
			identifier: "vlc.instance2",
			status:     players.StatusPaused,
			want:       "vlc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := players.NewPlayerRecord(tt.identifier, tt.status)
			if got := itemLabel(rec); got != tt.want {
				t.Errorf("itemLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestItemLabel_TruncatesLongLabels(t *testing.T) {
	long := strings.Repeat("x", maxLabelWidth+20)
	rec := players.NewPlayerRecord(long, players.StatusPlaying)

	got := itemLabel(rec)
	if w := runewidth.StringWidth(got); w > maxLabelWidth {
		t.Errorf("label width = %d, want <= %d", w, maxLabelWidth)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("label %q is missing the truncation suffix", got)
	}
}
