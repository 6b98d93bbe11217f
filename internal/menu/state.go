package menu

import (
	"github.com/mattn/go-runewidth"

	"playmenu/internal/players"
)

// State is an immutable snapshot of what the menu shows. Transitions return
// a new value instead of mutating in place, so a render always sees a
// consistent snapshot.
type State struct {
	Players    []players.PlayerRecord
	Loading    bool
	LastAction string
}

// WithLoading marks a refresh as in flight
func (s State) WithLoading() State {
	s.Loading = true
	return s
}

// WithPlayers replaces the player list and clears the loading flag
func (s State) WithPlayers(records []players.PlayerRecord) State {
	s.Players = records
	s.Loading = false
	return s
}

// WithAction records the outcome text of the last user action
func (s State) WithAction(action string) State {
	s.LastAction = action
	return s
}

// maxLabelWidth bounds player labels so one verbose identifier cannot
// distort the list layout
const maxLabelWidth = 40

// itemLabel truncates a player label to the menu's column budget.
// Width is measured in display columns, accounting for Unicode characters.
func itemLabel(rec players.PlayerRecord) string {
	label := rec.Label()
	if runewidth.StringWidth(label) <= maxLabelWidth {
		return label
	}
	return runewidth.Truncate(label, maxLabelWidth, "...")
}
