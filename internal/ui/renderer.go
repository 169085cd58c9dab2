package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazechase/internal/entity"
	"github.com/samdwyer/mazechase/internal/game"
	"github.com/samdwyer/mazechase/internal/gamedata"
	"github.com/samdwyer/mazechase/internal/sim"
	"github.com/samdwyer/mazechase/internal/world"
)

// hudLines is the number of terminal rows above the maze.
const hudLines = 2

// cellWidth is the number of terminal columns per maze cell.
const cellWidth = 2

// frightenedBody is the ghost body color during the vulnerable window.
const frightenedBody = "#2121FF"

// Renderer draws game snapshots to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one snapshot: HUD, maze, fruit, entities, markers and any
// state overlay.
func (r *Renderer) Render(snap game.Snapshot) {
	r.screen.Clear()

	r.drawHUD(snap)
	r.drawMaze(snap)

	if snap.Fruit != nil {
		r.drawCellGlyph(snap.Fruit.X, snap.Fruit.Y, '♦',
			tcell.StyleDefault.Foreground(gamedata.MustParseHexColor(snap.Fruit.Color)))
	}

	r.drawPlayer(snap)

	// Ghosts are hidden during the level-complete flash.
	if snap.State != game.StateLevelComplete {
		for _, g := range snap.Ghosts {
			r.drawGhost(g)
		}
	}

	for _, m := range snap.Markers {
		col, row := sim.CellOf(m.X, m.Y)
		r.drawText(col*cellWidth, row+hudLines, fmt.Sprintf("%d", m.Points),
			tcell.StyleDefault.Foreground(tcell.ColorAqua))
	}

	r.drawOverlay(snap)

	r.screen.Show()
}

// drawHUD draws score, high score, level and remaining lives.
func (r *Renderer) drawHUD(snap game.Snapshot) {
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	aqua := tcell.StyleDefault.Foreground(tcell.ColorAqua)

	r.drawText(0, 0, fmt.Sprintf("SCORE %8d", snap.Score), white)
	r.drawText(18, 0, fmt.Sprintf("HIGH %8d", snap.HighScore), gray)
	r.drawText(36, 0, fmt.Sprintf("LEVEL %d", snap.Level+1), aqua)

	yellow := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for i := 0; i < snap.Lives-1; i++ {
		r.screen.SetContent(i*2, 1, 'C', yellow)
	}
}

// drawMaze draws the grid cells. Walls flash white during the
// level-complete hold.
func (r *Renderer) drawMaze(snap game.Snapshot) {
	flash := snap.State == game.StateLevelComplete && (snap.FlashTimer/15)%2 == 0

	wallStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	if flash {
		wallStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
	houseStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkBlue)
	doorStyle := tcell.StyleDefault.Foreground(tcell.ColorPink)
	dotStyle := tcell.StyleDefault.Foreground(tcell.ColorLightPink)

	for row := 0; row < snap.Rows; row++ {
		for col := 0; col < snap.Cols; col++ {
			x := col * cellWidth
			y := row + hudLines
			switch snap.Cells[row][col] {
			case world.CellWall:
				r.screen.SetContent(x, y, '█', wallStyle)
				r.screen.SetContent(x+1, y, '█', wallStyle)
			case world.CellHouseWall:
				r.screen.SetContent(x, y, '▓', houseStyle)
				r.screen.SetContent(x+1, y, '▓', houseStyle)
			case world.CellDoor:
				r.screen.SetContent(x, y, '─', doorStyle)
				r.screen.SetContent(x+1, y, '─', doorStyle)
			case world.CellDot:
				r.screen.SetContent(x, y, '·', dotStyle)
			case world.CellPowerPellet:
				r.screen.SetContent(x, y, '●', dotStyle)
			}
		}
	}
}

// drawPlayer draws the player, shrinking it through the death animation.
func (r *Renderer) drawPlayer(snap game.Snapshot) {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)

	glyph := 'C'
	if !snap.Player.Alive {
		switch {
		case snap.Player.DeathFrame > 40:
			glyph = '·'
		case snap.Player.DeathFrame > 20:
			glyph = 'c'
		}
	}
	r.drawCellGlyph(snap.Player.X, snap.Player.Y, glyph, style)
}

// drawGhost draws one ghost with its state-dependent color.
func (r *Renderer) drawGhost(g game.GhostView) {
	var style tcell.Style
	glyph := 'M'

	switch g.State {
	case entity.GhostEaten:
		glyph = '"'
		style = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	case entity.GhostFrightened:
		body := gamedata.MustParseHexColor(frightenedBody)
		if g.Flash {
			// Blend toward white for the end-of-window warning.
			style = tcell.StyleDefault.Foreground(gamedata.BlendHex(frightenedBody, "#FFFFFF", 0.8))
		} else {
			style = tcell.StyleDefault.Foreground(body)
		}
	default:
		style = tcell.StyleDefault.Foreground(gamedata.MustParseHexColor(g.Color))
	}

	r.drawCellGlyph(g.X, g.Y, glyph, style)
}

// drawOverlay draws the READY!/GAME OVER banners.
func (r *Renderer) drawOverlay(snap game.Snapshot) {
	centerX := snap.Cols * cellWidth / 2
	centerY := snap.Rows/2 + hudLines

	switch snap.State {
	case game.StateReady:
		r.drawText(centerX-3, centerY, "READY!",
			tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	case game.StateGameOver:
		r.drawText(centerX-4, centerY, "GAME OVER",
			tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
		r.drawText(centerX-11, centerY+2, "Press ENTER to restart",
			tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}
}

// drawCellGlyph draws a glyph at the terminal cell containing a pixel
// position.
func (r *Renderer) drawCellGlyph(x, y float64, glyph rune, style tcell.Style) {
	col, row := sim.CellOf(x, y)
	r.screen.SetContent(col*cellWidth, row+hudLines, glyph, style)
}

// drawText draws a string starting at the given terminal position.
func (r *Renderer) drawText(x, y int, msg string, style tcell.Style) {
	for i, ch := range msg {
		r.screen.SetContent(x+i, y, ch, style)
	}
}
