package flowerquest

import (
	"math"

	"github.com/vovakirdan/flower-quest/internal/config"
	"github.com/vovakirdan/flower-quest/internal/core"
)

// hudRows is the number of screen rows above the arena.
const hudRows = 1

// Viewport projects arena units onto screen cells. The arena is centered
// on the origin with +y up; screen rows grow downward.
type Viewport struct {
	cols, rows int // Cells available to the arena
	top        int // First arena row
	halfW      float64
	halfH      float64
}

// NewViewport fits the arena into a screen, leaving the HUD row free.
func NewViewport(screenW, screenH int, arena config.ArenaConfig) Viewport {
	return Viewport{
		cols:  max(screenW, 1),
		rows:  max(screenH-hudRows, 1),
		top:   hudRows,
		halfW: arena.HalfWidth(),
		halfH: arena.HalfHeight(),
	}
}

// ToScreen returns the cell nearest to an arena point.
func (v Viewport) ToScreen(p core.Vec2) (col, row int) {
	col = int(math.Round((p.X + v.halfW) / (2 * v.halfW) * float64(v.cols-1)))
	row = v.top + int(math.Round((v.halfH-p.Y)/(2*v.halfH)*float64(v.rows-1)))
	return col, row
}

// ToArena returns the arena point at the center of a cell.
func (v Viewport) ToArena(col, row int) core.Vec2 {
	var p core.Vec2
	if v.cols > 1 {
		p.X = float64(col)/float64(v.cols-1)*(2*v.halfW) - v.halfW
	}
	if v.rows > 1 {
		p.Y = v.halfH - float64(row-v.top)/float64(v.rows-1)*(2*v.halfH)
	}
	return p
}

// Viewport returns the projection for a screen of the given size.
func (g *Game) Viewport(screenW, screenH int) Viewport {
	return NewViewport(screenW, screenH, g.cfg.Arena)
}
