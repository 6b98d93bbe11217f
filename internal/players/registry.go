package players

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// PlayerRecord is an immutable snapshot of one discovered player. Records
// live for a single refresh cycle; every refresh rebuilds the whole set.
type PlayerRecord struct {
	Name        string // identifier passed back to the control tool
	DisplayName string // identifier up to the first "."
	Status      Status
}

// NewPlayerRecord builds a record for the given identifier and status
func NewPlayerRecord(name string, status Status) PlayerRecord {
	display := name
	if i := strings.Index(name, "."); i >= 0 {
		display = name[:i]
	}
	return PlayerRecord{Name: name, DisplayName: display, Status: status}
}

// IsPlaying reports whether the player was playing when the record was built
func (r PlayerRecord) IsPlaying() bool {
	return r.Status == StatusPlaying
}

// Label returns the presentation label, marking playing players
func (r PlayerRecord) Label() string {
	if r.IsPlaying() {
		return r.DisplayName + " (Playing)"
	}
	return r.DisplayName
}

// Registry builds point-in-time snapshots of the players the control tool
// reports
type Registry struct {
	client Client
	logger zerolog.Logger
}

// NewRegistry creates a Registry backed by the given client
func NewRegistry(client Client, logger zerolog.Logger) *Registry {
	return &Registry{
		client: client,
		logger: logger.With().Str("component", "registry").Logger(),
	}
}

// List returns the current players sorted by identifier. It never fails:
// an enumeration error degrades to an empty result, the same as no players.
func (r *Registry) List(ctx context.Context) []PlayerRecord {
	records, err := r.ListChecked(ctx)
	if err != nil {
		r.logger.Debug().Err(err).Msg("Player enumeration failed")
	}
	return records
}

// ListChecked is List with the enumeration error exposed, so callers can
// show an advisory when the control tool itself is unreachable. The
// returned slice is usable either way (empty on enumeration failure).
func (r *Registry) ListChecked(ctx context.Context) ([]PlayerRecord, error) {
	names, err := r.client.ListNames(ctx)
	if err != nil {
		return []PlayerRecord{}, err
	}

	sort.Strings(names)

	// Query statuses concurrently so the total cost is bounded by the
	// slowest single query, not the sum. Results land at their name's
	// index, preserving the sorted order regardless of completion order.
	statuses := make([]Status, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			status, err := r.client.PlayerStatus(ctx, name)
			if err != nil {
				r.logger.Debug().Err(err).Str("player", name).Msg("Status query failed")
				status = StatusUnknown
			}
			statuses[i] = status
		}(i, name)
	}
	wg.Wait()

	records := make([]PlayerRecord, len(names))
	for i, name := range names {
		records[i] = NewPlayerRecord(name, statuses[i])
	}
	return records, nil
}
