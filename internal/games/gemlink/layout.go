package gemlink

import (
	"github.com/vovakirdan/gemlink/internal/core"
	"github.com/vovakirdan/gemlink/internal/match"
)

const hudHeight = 3 // Title, counters, link feedback

// layout maps board cells to screen positions. Board row 0 is drawn at the
// bottom of the board box.
type layout struct {
	cols, rows int
	cellW      int
	cellH      int
	board      core.Rect // Interior, excluding the border
}

// cell sizes to try, roomiest first
var cellSizes = []struct{ w, h int }{
	{4, 2},
	{3, 1},
}

// newLayout fits a cols x rows board under the HUD. ok is false when the
// screen cannot hold the board at the smallest cell size.
func newLayout(screenW, screenH, cols, rows int) (layout, bool) {
	for _, size := range cellSizes {
		w := cols*size.w + 2
		h := rows*size.h + 2
		if w > screenW || hudHeight+h > screenH {
			continue
		}
		x := (screenW - w) / 2
		return layout{
			cols:  cols,
			rows:  rows,
			cellW: size.w,
			cellH: size.h,
			board: core.NewRect(x+1, hudHeight+1, cols*size.w, rows*size.h),
		}, true
	}
	return layout{}, false
}

// frame returns the board box including its border.
func (l layout) frame() core.Rect {
	return core.NewRect(l.board.X-1, l.board.Y-1, l.board.W+2, l.board.H+2)
}

// cellAt maps a screen position to the board cell under it.
func (l layout) cellAt(x, y int) (match.Cell, bool) {
	if !l.board.Contains(x, y) {
		return match.Cell{}, false
	}
	col := (x - l.board.X) / l.cellW
	row := (y - l.board.Y) / l.cellH
	return match.C(col, l.rows-1-row), true
}

// origin returns the top-left screen position of a cell.
func (l layout) origin(c match.Cell) (int, int) {
	return l.board.X + c.X*l.cellW, l.board.Y + (l.rows-1-c.Y)*l.cellH
}

// glyphPos returns where a cell's glyph is drawn.
func (l layout) glyphPos(c match.Cell) (int, int) {
	x, y := l.origin(c)
	return x + 1, y + (l.cellH-1)/2
}

// rowY converts a fractional board row to a screen row.
// ok is false when the row is above the board.
func (l layout) rowY(y float64) (int, bool) {
	row := float64(l.rows-1) - y
	if row < -0.5 {
		return 0, false
	}
	return l.board.Y + int(row*float64(l.cellH)+0.5) + (l.cellH-1)/2, true
}
