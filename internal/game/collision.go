package game

import (
	"github.com/samdwyer/mazechase/internal/entity"
	"github.com/samdwyer/mazechase/internal/sim"
)

// resolveCollisions tests every player/ghost pair after all entities have
// moved. A frightened ghost within the capture radius is eaten and scored
// with the combo multiplier; any other ghost outside the eaten and in-house
// states kills the player.
func (s *Session) resolveCollisions() {
	for _, g := range s.ghosts {
		if sim.Distance(&s.player.Actor, &g.Actor) >= CaptureRadius {
			continue
		}

		switch {
		case g.State == entity.GhostFrightened:
			s.captureGhost(g)
		case g.State != entity.GhostEaten && g.State != entity.GhostInHouse:
			s.killPlayer()
			return
		}
	}
}

// captureGhost eats a frightened ghost: the capture combo doubles the award
// for each consecutive capture within one frightened window.
func (s *Session) captureGhost(g *entity.Ghost) {
	g.State = entity.GhostEaten
	s.combo++
	points := GhostBasePoints << (s.combo - 1)
	s.score += points
	s.markers = append(s.markers, entity.NewScoreMarker(g.X, g.Y, points))
}

// killPlayer starts the death sequence.
func (s *Session) killPlayer() {
	s.player.Alive = false
	s.player.DeathFrame = 0
	s.state = StateDying
}
