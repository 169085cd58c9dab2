package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazechase/data"
	"github.com/samdwyer/mazechase/internal/entity"
	"github.com/samdwyer/mazechase/internal/gamedata"
	"github.com/samdwyer/mazechase/internal/sim"
	"github.com/samdwyer/mazechase/internal/telemetry"
	"github.com/samdwyer/mazechase/internal/world"
)

// Session owns the whole simulation: the grid, the player, the four ghosts,
// the bonus fruit, the floating score markers and all session-wide counters.
// It is single-threaded; Advance must be called once per logical tick and
// never concurrently.
type Session struct {
	cfg    Config
	id     uuid.UUID
	maze   *data.MazeFile
	defs   *gamedata.GhostRegistry
	fruits *gamedata.FruitTable
	rng    *rand.Rand

	grid         *world.Grid
	player       *entity.Player
	ghosts       []*entity.Ghost
	fruit        *entity.Fruit
	fruitSpawned bool
	markers      []entity.ScoreMarker

	state     State
	scheduler ModeScheduler

	score     int
	highScore int
	lives     int
	level     int
	dotsEaten int
	totalDots int
	combo     int

	readyTimer int
	flashTimer int
}

// NewSession creates a session from the embedded assets and starts a new game.
func NewSession(ctx context.Context, cfg Config) (*Session, error) {
	maze, err := data.LoadMaze()
	if err != nil {
		return nil, fmt.Errorf("loading maze layout: %w", err)
	}
	defs, err := gamedata.LoadGhostRegistry()
	if err != nil {
		return nil, fmt.Errorf("loading ghost definitions: %w", err)
	}
	fruits, err := gamedata.LoadFruitTable()
	if err != nil {
		return nil, fmt.Errorf("loading fruit table: %w", err)
	}
	return newSession(ctx, cfg, maze, defs, fruits)
}

// newSession wires a session from explicit assets. Tests use it to run the
// simulation on purpose-built layouts.
func newSession(ctx context.Context, cfg Config, maze *data.MazeFile, defs *gamedata.GhostRegistry, fruits *gamedata.FruitTable) (*Session, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:    cfg,
		id:     uuid.New(),
		maze:   maze,
		defs:   defs,
		fruits: fruits,
		rng:    rand.New(rand.NewSource(seed)),
	}
	if err := s.NewGame(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// ID returns the session's identifier used in telemetry.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns the current overall game state.
func (s *Session) State() State {
	return s.state
}

// NewGame resets all session state to initial values. The high score is
// carried forward from the previous game.
func (s *Session) NewGame(ctx context.Context) error {
	s.score = 0
	s.lives = StartLives
	s.level = 0
	s.combo = 0

	s.player = entity.NewPlayer(s.maze.PlayerStart.Col, s.maze.PlayerStart.Row)

	house := s.maze.GhostHouse
	s.ghosts = s.ghosts[:0]
	for _, def := range s.defs.All() {
		ghost, err := entity.NewGhost(def, house.Col, house.Row)
		if err != nil {
			return err
		}
		s.ghosts = append(s.ghosts, ghost)
	}

	if err := s.buildLevel(ctx); err != nil {
		return err
	}
	s.resetPositions()
	return nil
}

// buildLevel rebuilds the grid from the static layout and resets the
// per-level counters.
func (s *Session) buildLevel(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.build_level")
	defer span.End()

	grid, err := world.Build(s.maze.Rows)
	if err != nil {
		return fmt.Errorf("building level %d: %w", s.level, err)
	}

	s.grid = grid
	s.totalDots = grid.CountConsumables()
	s.dotsEaten = 0
	s.fruit = nil
	s.fruitSpawned = false
	s.markers = s.markers[:0]
	s.scheduler.Reset()

	span.SetAttributes(
		attribute.String("session.id", s.id.String()),
		attribute.Int("level.index", s.level),
		attribute.Int("level.consumables", s.totalDots),
		attribute.Int64("level.layout_checksum", int64(grid.Checksum())),
	)
	return nil
}

// resetPositions returns the player and all ghosts to their starting cells
// and holds in the ready state. The grid's consumed cells are untouched.
func (s *Session) resetPositions() {
	s.player.Reset()
	for _, g := range s.ghosts {
		g.Reset()
	}
	s.state = StateReady
	s.readyTimer = ReadyTicks
}

// nextLevel advances to the next level: the grid is rebuilt fresh and all
// entities return to their starting positions.
func (s *Session) nextLevel(ctx context.Context) error {
	s.level++
	if err := s.buildLevel(ctx); err != nil {
		return err
	}
	s.resetPositions()
	return nil
}

// Advance runs one simulation tick. A non-DirNone intent sets the player's
// pending direction before the tick. The returned snapshot is a read-only
// view of the post-tick state for the presentation layer.
func (s *Session) Advance(ctx context.Context, intent sim.Direction) Snapshot {
	if intent != sim.DirNone {
		s.player.SetIntent(intent)
	}

	switch s.state {
	case StateReady:
		s.readyTimer--
		if s.readyTimer <= 0 {
			s.state = StatePlaying
		}

	case StateDying:
		s.player.DeathFrame++
		if s.player.DeathFrame >= DeathAnimationTicks {
			s.lives--
			if s.lives <= 0 {
				s.endGame(ctx)
			} else {
				s.resetPositions()
			}
		}

	case StateLevelComplete:
		s.flashTimer--
		if s.flashTimer <= 0 {
			// The layout was validated when the session was built, so a
			// rebuild of the same asset cannot fail.
			_ = s.nextLevel(ctx)
		}

	case StatePlaying:
		s.tick()
	}

	return s.snapshot()
}

// tick runs one playing-state update in the fixed order: player movement and
// consumption, fruit, mode scheduler, ghosts, collisions, marker aging,
// level-completion check.
func (s *Session) tick() {
	s.player.Update(s.grid)
	s.consume()
	s.updateFruit()

	s.scheduler.Advance()
	chasing := s.scheduler.Phase() == ModeChase
	refCol, refRow := s.ghosts[0].Cell()
	for _, g := range s.ghosts {
		g.Update(s.grid, s.player, refCol, refRow, chasing, s.dotsEaten, s.rng)
	}

	s.resolveCollisions()
	s.ageMarkers()

	if s.dotsEaten >= s.totalDots && s.state == StatePlaying {
		s.state = StateLevelComplete
		s.flashTimer = LevelFlashTicks
	}
}

// consume collects the dot or power pellet under the player, scoring it and
// broadcasting the frighten event on a pellet.
func (s *Session) consume() {
	col, row := s.player.Cell()
	cell, ok := s.grid.Consume(col, row)
	if !ok {
		return
	}

	s.dotsEaten++
	switch cell {
	case world.CellDot:
		s.score += DotPoints
	case world.CellPowerPellet:
		s.score += PowerPelletPoints
		s.combo = 0
		for _, g := range s.ghosts {
			g.Frighten()
		}
	}
}

// updateFruit spawns the level's bonus fruit once a third of the consumables
// are gone, ages it, and collects it when the player is close enough.
func (s *Session) updateFruit() {
	if !s.fruitSpawned && s.totalDots > 0 && s.dotsEaten >= s.totalDots/fruitSpawnDivisor {
		def := s.fruits.ForLevel(s.level)
		s.fruit = entity.NewFruit(s.maze.FruitCell.Col, s.maze.FruitCell.Row, *def)
		s.fruitSpawned = true
	}

	if s.fruit == nil {
		return
	}
	s.fruit.Update()
	if !s.fruit.Active {
		return
	}

	dx := s.player.X - s.fruit.X
	dy := s.player.Y - s.fruit.Y
	if dx*dx+dy*dy < FruitCollectRadius*FruitCollectRadius {
		s.score += s.fruit.Def.Points
		s.fruit.Collect()
		s.markers = append(s.markers, entity.NewScoreMarker(s.fruit.X, s.fruit.Y, s.fruit.Def.Points))
	}
}

// ageMarkers is a retain-where-alive pass over the floating score markers.
func (s *Session) ageMarkers() {
	retained := s.markers[:0]
	for i := range s.markers {
		s.markers[i].Update()
		if s.markers[i].Alive() {
			retained = append(retained, s.markers[i])
		}
	}
	s.markers = retained
}

// endGame finishes the session, folding the score into the high score.
func (s *Session) endGame(ctx context.Context) {
	s.state = StateGameOver
	if s.score > s.highScore {
		s.highScore = s.score
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.game_over")
	span.SetAttributes(
		attribute.String("session.id", s.id.String()),
		attribute.Int("game.score", s.score),
		attribute.Int("game.level", s.level),
	)
	span.End()
}
