package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazechase/internal/sim"
	"github.com/samdwyer/mazechase/internal/telemetry"
)

// Renderer draws one tick's snapshot. Implemented by ui.Renderer.
type Renderer interface {
	Render(Snapshot)
}

// EventSource supplies terminal events. Implemented by ui.Screen.
type EventSource interface {
	ChannelEvents(ch chan<- tcell.Event, quit <-chan struct{})
	Sync()
}

// Game drives the session in real time: one Advance per ticker tick, input
// events mapped to directional intents between ticks.
type Game struct {
	cfg      Config
	events   EventSource
	renderer Renderer
	session  *Session
	running  bool
}

// New creates the runner. The session itself is built in Run so its
// construction is traced under the run context.
func New(cfg Config, events EventSource, renderer Renderer) *Game {
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}
	return &Game{
		cfg:      cfg,
		events:   events,
		renderer: renderer,
		running:  true,
	}
}

// Run executes the main loop until the player quits or the context is done.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")

	session, err := NewSession(ctx, g.cfg)
	if err != nil {
		initSpan.End()
		return err
	}
	g.session = session

	initSpan.SetAttributes(
		attribute.String("session.id", session.ID().String()),
		attribute.Int("game.tick_rate", g.cfg.TickRate),
	)
	initSpan.End()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go g.events.ChannelEvents(events, quit)

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.TickRate))
	defer ticker.Stop()

	intent := sim.DirNone
	for g.running {
		select {
		case <-ctx.Done():
			g.running = false

		case ev := <-events:
			g.handleEvent(ctx, ev, &intent)

		case <-ticker.C:
			snap := g.session.Advance(ctx, intent)
			intent = sim.DirNone
			g.renderer.Render(snap)
		}
	}

	return nil
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event, intent *sim.Direction) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev, intent)
	case *tcell.EventResize:
		g.events.Sync()
	}
}

// handleKeyEvent maps keyboard input to directional intents and session
// control.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey, intent *sim.Direction) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		*intent = sim.DirUp
	case tcell.KeyDown:
		*intent = sim.DirDown
	case tcell.KeyLeft:
		*intent = sim.DirLeft
	case tcell.KeyRight:
		*intent = sim.DirRight

	case tcell.KeyEnter:
		g.maybeRestart(ctx)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'w', 'W':
			*intent = sim.DirUp
		case 's', 'S':
			*intent = sim.DirDown
		case 'a', 'A':
			*intent = sim.DirLeft
		case 'd', 'D':
			*intent = sim.DirRight
		case ' ':
			g.maybeRestart(ctx)
		}
	}
}

// maybeRestart starts a new game after a finished one.
func (g *Game) maybeRestart(ctx context.Context) {
	if g.session.State() != StateGameOver && g.session.State() != StateWin {
		return
	}
	// The embedded assets were validated when the session was built.
	_ = g.session.NewGame(ctx)
}
