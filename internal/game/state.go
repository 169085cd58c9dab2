// Package game provides the game session, its state machine and the
// real-time runner.
package game

// State represents the overall game state.
type State int

const (
	// StateReady is the warm-up hold before movement is allowed.
	StateReady State = iota
	// StatePlaying is the active simulation state.
	StatePlaying
	// StateDying holds for the death animation after the player is caught.
	StateDying
	// StateLevelComplete holds for the maze flash before the next level.
	StateLevelComplete
	// StateGameOver is the terminal state once all lives are spent.
	StateGameOver
	// StateWin is reserved for a completed campaign.
	StateWin
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StateDying:
		return "dying"
	case StateLevelComplete:
		return "level-complete"
	case StateGameOver:
		return "game-over"
	case StateWin:
		return "win"
	default:
		return "unknown"
	}
}
