package menu

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"playmenu/internal/players"
)

// Config holds menu configuration options
type Config struct {
	RefreshInterval time.Duration // periodic refresh; 0 disables it
	CommandTimeout  time.Duration // per control tool invocation
}

// App is the interactive player menu
type App struct {
	app    *tview.Application
	list   *tview.List
	status *tview.TextView

	config     Config
	registry   *players.Registry
	dispatcher *players.Dispatcher
	logger     zerolog.Logger

	// Mutex protects state and the render caches; refreshes, action
	// callbacks and the dispatcher's settle timer all run on their own
	// goroutines.
	mu    sync.Mutex
	state State

	// Last-rendered content for change detection
	lastItems  []string
	lastStatus string

	cancelFunc context.CancelFunc
}

// New creates the menu over the given registry and dispatcher
func New(registry *players.Registry, dispatcher *players.Dispatcher, cfg Config, logger zerolog.Logger) *App {
	if cfg.CommandTimeout <= 0 {
		cfg.CommandTimeout = 5 * time.Second
	}
	a := &App{
		app:        tview.NewApplication(),
		config:     cfg,
		registry:   registry,
		dispatcher: dispatcher,
		logger:     logger.With().Str("component", "menu").Logger(),
	}
	a.setupUI()
	return a
}

// setupUI creates the UI layout
func (a *App) setupUI() {
	a.list = tview.NewList().
		ShowSecondaryText(true).
		SetSecondaryTextColor(tcell.ColorGray)
	a.list.SetBorder(true).
		SetTitle(" Players ").
		SetTitleAlign(tview.AlignLeft)

	a.list.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		a.toggleSelected()
	})

	a.status = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.list, 0, 1, true).
		AddItem(a.status, 2, 1, false)

	a.app.SetInputCapture(a.handleKeyEvent)
	a.app.SetRoot(flex, true)
}

// handleKeyEvent processes keyboard input
func (a *App) handleKeyEvent(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyEscape {
		a.app.Stop()
		return nil
	}

	switch event.Rune() {
	case 'q', 'Q':
		a.app.Stop()
		return nil
	case ' ':
		a.toggleSelected()
		return nil
	case 'n', 'N':
		a.nextTrack()
		return nil
	case 'b', 'B':
		a.previousTrack()
		return nil
	case 'a', 'A':
		a.pauseAll()
		return nil
	case 'o', 'O':
		a.pauseOthers()
		return nil
	case 'r', 'R':
		a.Refresh()
		return nil
	}
	return event
}

// Run starts the menu and blocks until the user quits
func (a *App) Run(ctx context.Context) error {
	ctx, a.cancelFunc = context.WithCancel(ctx)

	// Initial load
	go a.refresh(ctx)

	// Optional periodic refresh; by default state goes stale until the
	// user acts or presses 'r'
	if a.config.RefreshInterval > 0 {
		go a.refreshLoop(ctx)
	}

	if err := a.app.Run(); err != nil {
		return fmt.Errorf("menu error: %w", err)
	}
	return nil
}

// Stop stops the menu application
func (a *App) Stop() {
	if a.cancelFunc != nil {
		a.cancelFunc()
	}
	a.app.Stop()
}

// Refresh triggers an asynchronous registry rebuild. Safe to call from any
// goroutine; a new refresh does not cancel one already in flight, so the
// last to complete wins.
func (a *App) Refresh() {
	go a.refresh(context.Background())
}

func (a *App) refreshLoop(ctx context.Context) {
	ticker := time.NewTicker(a.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.app.Stop()
			return
		case <-ticker.C:
			a.refresh(ctx)
		}
	}
}

// refresh rebuilds the player registry and re-renders
func (a *App) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, a.config.CommandTimeout)
	defer cancel()

	a.mu.Lock()
	a.state = a.state.WithLoading()
	a.mu.Unlock()
	a.render()

	records, err := a.registry.ListChecked(ctx)

	a.mu.Lock()
	a.state = a.state.WithPlayers(records)
	if err != nil {
		// One advisory per refresh; an empty list alone is a normal
		// no-media condition and stays silent
		a.state = a.state.WithAction("media control tool unavailable")
		a.logger.Debug().Err(err).Msg("Player enumeration failed")
	}
	a.mu.Unlock()
	a.render()
}

// selectedPlayer returns the record under the cursor, if any
func (a *App) selectedPlayer() (players.PlayerRecord, bool) {
	index := a.list.GetCurrentItem()

	a.mu.Lock()
	defer a.mu.Unlock()
	if index < 0 || index >= len(a.state.Players) {
		return players.PlayerRecord{}, false
	}
	return a.state.Players[index], true
}

// snapshot returns the players from the last completed refresh
func (a *App) snapshot() []players.PlayerRecord {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Players
}

func (a *App) toggleSelected() {
	rec, ok := a.selectedPlayer()
	if !ok {
		return
	}
	a.runAction("toggled "+rec.DisplayName, func(ctx context.Context) error {
		return a.dispatcher.Toggle(ctx, rec)
	})
}

func (a *App) nextTrack() {
	records := a.snapshot()
	a.runAction("next track", func(ctx context.Context) error {
		return a.dispatcher.Next(ctx, records)
	})
}

func (a *App) previousTrack() {
	records := a.snapshot()
	a.runAction("previous track", func(ctx context.Context) error {
		return a.dispatcher.Previous(ctx, records)
	})
}

func (a *App) pauseAll() {
	records := a.snapshot()
	a.runAction("paused all", func(ctx context.Context) error {
		return a.dispatcher.PauseAll(ctx, records)
	})
}

func (a *App) pauseOthers() {
	rec, ok := a.selectedPlayer()
	if !ok {
		return
	}
	records := a.snapshot()
	a.runAction("paused all but "+rec.DisplayName, func(ctx context.Context) error {
		return a.dispatcher.PauseOthers(ctx, records, rec.Name)
	})
}

// runAction dispatches one user action off the event loop and records its
// outcome in the status line. Failures are shown, never retried.
func (a *App) runAction(description string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), a.config.CommandTimeout)
		defer cancel()

		action := description
		if err := fn(ctx); err != nil {
			a.logger.Warn().Err(err).Str("action", description).Msg("Action failed")
			action = err.Error()
		}

		a.mu.Lock()
		a.state = a.state.WithAction(action)
		a.mu.Unlock()
		a.render()
	}()
}

// render pushes the current state to the widgets, skipping unchanged content
func (a *App) render() {
	a.app.QueueUpdateDraw(func() {
		a.mu.Lock()
		defer a.mu.Unlock()

		a.renderList()
		a.renderStatus()
	})
}

// renderList rebuilds the list items when they changed.
// Must be called with a.mu held, from the event loop.
func (a *App) renderList() {
	items := make([]string, 0, len(a.state.Players))
	for _, rec := range a.state.Players {
		items = append(items, itemLabel(rec)+"\x00"+string(rec.Status))
	}

	if equalItems(items, a.lastItems) {
		return
	}
	a.lastItems = items

	selected := a.list.GetCurrentItem()
	a.list.Clear()
	for _, rec := range a.state.Players {
		a.list.AddItem(itemLabel(rec), string(rec.Status), 0, nil)
	}
	if len(a.state.Players) == 0 {
		a.list.AddItem("No players found", "", 0, nil)
	}

	// Keep the cursor near where it was across rebuilds
	if selected >= a.list.GetItemCount() {
		selected = a.list.GetItemCount() - 1
	}
	if selected >= 0 {
		a.list.SetCurrentItem(selected)
	}
}

// renderStatus updates the key help and last-action line.
// Must be called with a.mu held, from the event loop.
func (a *App) renderStatus() {
	text := "[gray]enter:toggle  n:next  b:prev  a:pause all  o:pause others  r:refresh  q:quit[-]\n"
	switch {
	case a.state.Loading:
		text += "[yellow]Refreshing...[-]"
	case a.state.LastAction != "":
		text += "[white]" + tview.Escape(a.state.LastAction) + "[-]"
	}

	if text != a.lastStatus {
		a.lastStatus = text
		a.status.SetText(text)
	}
}

func equalItems(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
