package gemlink

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/gemlink/internal/core"
	"github.com/vovakirdan/gemlink/internal/match"
)

const (
	progressBarWidth = 20
	flashPeriod      = 4 // Ticks per flash half-cycle while clearing
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(g.layout.frame(), core.ColorGray)

	switch {
	case g.playback != nil && g.playback.Clearing():
		g.renderClearing(dst)
	case g.playback != nil:
		g.renderFalling(dst)
	default:
		g.renderBoard(dst)
	}

	if term, over := g.Result(); over {
		g.renderGameOver(dst, term)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	minW := g.rules.Width*cellSizes[len(cellSizes)-1].w + 2
	minH := hudHeight + g.rules.Height*cellSizes[len(cellSizes)-1].h + 2
	dst.DrawTextCentered(y, fmt.Sprintf("Need at least %dx%d", minW, minH))
}

// renderHUD draws the title, counters and link feedback above the board.
func (g *Game) renderHUD(dst *core.Screen) {
	snap := g.session.Snapshot()
	frame := g.layout.frame()
	x := frame.X

	dst.DrawTextCenteredColor(0, "G E M   L I N K", core.ColorBrightCyan)

	// Counters: score, moves, target progress
	line := fmt.Sprintf("Score %d   Moves %d/%d   Target ", snap.Score, snap.Moves, snap.MoveLimit)
	dst.DrawText(x, 1, line)
	tx := x + utf8.RuneCountInString(line)
	target := g.theme.Tile(snap.TargetType)
	dst.SetColor(tx, 1, target.Glyph, target.Color)
	dst.DrawText(tx+2, 1, fmt.Sprintf("%d/%d", min(snap.Collected, snap.Target), snap.Target))

	// Progress bar, then link feedback or last match
	filled := int(snap.Progress * progressBarWidth)
	dst.SetColor(x, 2, '[', core.ColorGray)
	dst.DrawHLine(x+1, 2, filled, '█', target.Color)
	dst.DrawHLine(x+1+filled, 2, progressBarWidth-filled, '·', core.ColorGray)
	dst.SetColor(x+1+progressBarWidth, 2, ']', core.ColorGray)

	text, color := g.feedback()
	dst.DrawTextColor(x+progressBarWidth+4, 2, text, color)
}

// feedback describes the open chain, or the last match when there is none.
func (g *Game) feedback() (string, core.Color) {
	link := g.Link()
	switch {
	case link.Len > 0:
		tile := g.theme.Tile(link.Type)
		parts := []string{fmt.Sprintf("Link %d %s", link.Len, tile.Name)}
		if link.IsTarget {
			parts = append(parts, "target")
		}
		if !link.Valid {
			parts = append(parts, fmt.Sprintf("need %d", g.rules.MinMatchCount))
			return strings.Join(parts, " · "), core.ColorYellow
		}
		return strings.Join(parts, " · "), core.ColorBrightGreen
	case g.last != nil:
		text := fmt.Sprintf("+%d for %d gems", g.last.Earned, g.last.Gems)
		if g.last.IsTarget {
			text += " (target x" + fmt.Sprint(g.rules.Scoring.BonusMultiplier) + ")"
		}
		return text, core.ColorBrightWhite
	default:
		return fmt.Sprintf("Link %d or more", g.rules.MinMatchCount), core.ColorGray
	}
}

// renderBoard draws the live grid with chain and cursor markers.
func (g *Game) renderBoard(dst *core.Screen) {
	chain := g.builder.Current()
	grid := g.session.Grid()

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			c := match.C(x, y)
			if tile, ok := grid.TileAt(c); ok {
				g.drawTile(dst, c, tile)
			}
		}
	}

	markerColor := core.ColorYellow
	if g.builder.Valid() {
		markerColor = core.ColorBrightGreen
	}
	for _, c := range chain.Cells {
		g.drawMarkers(dst, c, '[', ']', markerColor)
	}

	if !chain.Contains(g.cursor) {
		g.drawMarkers(dst, g.cursor, '(', ')', core.ColorBrightWhite)
	}
}

// renderClearing flashes the resolved chain on the pre-resolution grid.
func (g *Game) renderClearing(dst *core.Screen) {
	before := g.playback.Before()
	flashOn := (g.playback.ClearTick()/flashPeriod)%2 == 0

	for y := 0; y < before.Height(); y++ {
		for x := 0; x < before.Width(); x++ {
			c := match.C(x, y)
			tile, ok := before.TileAt(c)
			if !ok {
				continue
			}
			if g.playback.IsCleared(c) {
				gx, gy := g.layout.glyphPos(c)
				if flashOn {
					dst.SetColor(gx, gy, '✶', core.ColorBrightWhite)
				} else {
					dst.SetColor(gx, gy, g.theme.Tile(tile).Glyph, core.ColorBrightWhite)
				}
				continue
			}
			g.drawTile(dst, c, tile)
		}
	}
}

// renderFalling draws every tile at its interpolated fall position.
func (g *Game) renderFalling(dst *core.Screen) {
	for _, sp := range g.playback.Sprites() {
		sy, visible := g.layout.rowY(sp.Y)
		if !visible {
			continue
		}
		sx, _ := g.layout.glyphPos(match.C(sp.X, 0))
		tile := g.theme.Tile(sp.Type)
		dst.SetColor(sx, sy, tile.Glyph, tile.Color)
	}
}

func (g *Game) drawTile(dst *core.Screen, c match.Cell, t match.TileType) {
	tile := g.theme.Tile(t)
	x, y := g.layout.glyphPos(c)
	dst.SetColor(x, y, tile.Glyph, tile.Color)
}

func (g *Game) drawMarkers(dst *core.Screen, c match.Cell, left, right rune, color core.Color) {
	x, y := g.layout.glyphPos(c)
	dst.SetColor(x-1, y, left, color)
	dst.SetColor(x+1, y, right, color)
}

// renderGameOver draws the result box over the board.
func (g *Game) renderGameOver(dst *core.Screen, term match.Terminal) {
	title, color := "OUT OF MOVES", core.ColorBrightRed
	if term.Won {
		title, color = "LEVEL COMPLETE!", core.ColorBrightGreen
	}
	lines := []string{
		title,
		"",
		fmt.Sprintf("Score: %d", term.FinalScore),
		fmt.Sprintf("Collected: %d/%d", min(term.Collected, term.Target), term.Target),
		"",
		"R restart   Q quit",
	}

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, utf8.RuneCountInString(l))
	}
	boxW += 4
	boxH := len(lines) + 2

	cx, cy := g.layout.frame().Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)

	for i, l := range lines {
		lx := box.X + (boxW-utf8.RuneCountInString(l))/2
		c := core.ColorDefault
		if i == 0 {
			c = color
		}
		dst.DrawTextColor(lx, box.Y+1+i, l, c)
	}
}
