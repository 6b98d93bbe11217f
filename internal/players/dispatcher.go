package players

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Dispatcher translates user actions into control tool invocations and
// schedules a follow-up refresh once the tool has had time to settle.
type Dispatcher struct {
	client    Client
	settle    time.Duration
	logger    zerolog.Logger
	onRefresh func()
}

// NewDispatcher creates a Dispatcher with the given settle delay
func NewDispatcher(client Client, settle time.Duration, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		client: client,
		settle: settle,
		logger: logger.With().Str("component", "dispatcher").Logger(),
	}
}

// SetRefreshFunc registers the callback fired after every playback command.
// Without one, commands run without a follow-up refresh.
func (d *Dispatcher) SetRefreshFunc(fn func()) {
	d.onRefresh = fn
}

// Toggle toggles play/pause on the given player
func (d *Dispatcher) Toggle(ctx context.Context, rec PlayerRecord) error {
	defer d.scheduleRefresh()
	if err := d.client.PlayPause(ctx, rec.Name); err != nil {
		return fmt.Errorf("toggle %s: %w", describe(rec), err)
	}
	return nil
}

// Play resumes playback on the given player
func (d *Dispatcher) Play(ctx context.Context, rec PlayerRecord) error {
	defer d.scheduleRefresh()
	if err := d.client.Play(ctx, rec.Name); err != nil {
		return fmt.Errorf("play %s: %w", describe(rec), err)
	}
	return nil
}

// Pause pauses playback on the given player
func (d *Dispatcher) Pause(ctx context.Context, rec PlayerRecord) error {
	defer d.scheduleRefresh()
	if err := d.client.Pause(ctx, rec.Name); err != nil {
		return fmt.Errorf("pause %s: %w", describe(rec), err)
	}
	return nil
}

// Next skips to the next track on the playing player. With nothing playing
// the command goes out unscoped and the control tool picks its default.
func (d *Dispatcher) Next(ctx context.Context, records []PlayerRecord) error {
	defer d.scheduleRefresh()
	target := firstPlaying(records)
	if err := d.client.Next(ctx, target.Name); err != nil {
		return fmt.Errorf("next track on %s: %w", describe(target), err)
	}
	return nil
}

// Previous goes back one track on the playing player, unscoped when
// nothing is playing
func (d *Dispatcher) Previous(ctx context.Context, records []PlayerRecord) error {
	defer d.scheduleRefresh()
	target := firstPlaying(records)
	if err := d.client.Previous(ctx, target.Name); err != nil {
		return fmt.Errorf("previous track on %s: %w", describe(target), err)
	}
	return nil
}

// PauseAll pauses every playing player concurrently. Per-player failures
// are collected and do not stop the rest of the fan-out.
func (d *Dispatcher) PauseAll(ctx context.Context, records []PlayerRecord) error {
	return d.pausePlaying(ctx, records, "")
}

// PauseOthers pauses every playing player except the named one
func (d *Dispatcher) PauseOthers(ctx context.Context, records []PlayerRecord, except string) error {
	return d.pausePlaying(ctx, records, except)
}

func (d *Dispatcher) pausePlaying(ctx context.Context, records []PlayerRecord, except string) error {
	defer d.scheduleRefresh()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, rec := range records {
		if !rec.IsPlaying() || rec.Name == except {
			continue
		}
		wg.Add(1)
		go func(rec PlayerRecord) {
			defer wg.Done()
			if err := d.client.Pause(ctx, rec.Name); err != nil {
				d.logger.Warn().Err(err).Str("player", rec.Name).Msg("Pause failed")
				mu.Lock()
				errs = append(errs, fmt.Errorf("pause %s: %w", rec.DisplayName, err))
				mu.Unlock()
			}
		}(rec)
	}
	wg.Wait()

	return errors.Join(errs...)
}

// scheduleRefresh fires the refresh callback once after the settle delay.
// The control tool's state is not synchronously observable right after a
// command returns, so re-querying waits for it to converge.
func (d *Dispatcher) scheduleRefresh() {
	if d.onRefresh == nil {
		return
	}
	time.AfterFunc(d.settle, d.onRefresh)
}

// firstPlaying returns the first playing record, or a zero record whose
// empty name leaves commands unscoped
func firstPlaying(records []PlayerRecord) PlayerRecord {
	for _, rec := range records {
		if rec.IsPlaying() {
			return rec
		}
	}
	return PlayerRecord{}
}

// describe names a record for user-facing errors
func describe(rec PlayerRecord) string {
	if rec.DisplayName == "" {
		return "default player"
	}
	return rec.DisplayName
}
