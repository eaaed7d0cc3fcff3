package tui

import (
	"math"

	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/ui/interact"
)

// grid maps terminal cells to the pixel space panels are laid out in.
type grid struct {
	cw, ch int
}

func newGrid(cw, ch int) grid {
	return grid{cw: max(cw, 1), ch: max(ch, 1)}
}

// point returns the pixel center of a cell.
func (g grid) point(col, row int) entity.Point {
	return entity.Point{X: col*g.cw + g.cw/2, Y: row*g.ch + g.ch/2}
}

// cellRect is a rectangle in terminal cells.
type cellRect struct {
	Col, Row   int
	Cols, Rows int
}

func (c cellRect) contains(col, row int) bool {
	return col >= c.Col && col < c.Col+c.Cols && row >= c.Row && row < c.Row+c.Rows
}

// cells projects a pixel rectangle onto the grid. Every panel covers at
// least one cell.
func (g grid) cells(r entity.Rect) cellRect {
	return cellRect{
		Col:  floorDiv(r.X, g.cw),
		Row:  floorDiv(r.Y, g.ch),
		Cols: max(1, int(math.Round(float64(r.W)/float64(g.cw)))),
		Rows: max(1, int(math.Round(float64(r.H)/float64(g.ch)))),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// hitPart is the part of a rendered panel under a cell.
type hitPart int

const (
	hitNone hitPart = iota
	hitTitle
	hitPin
	hitClose
	hitEdge
	hitBody
)

// Header buttons, right aligned: " ⊙ ✕ ".
const (
	closeButtonCols = 3
	pinButtonCols   = 3
)

// hitTest classifies a cell against a panel box. The header row is the
// title bar; the left, right and bottom border cells are resize edges.
func hitTest(box cellRect, col, row int) (hitPart, entity.Edges) {
	if !box.contains(col, row) {
		return hitNone, entity.Edges{}
	}
	right := box.Col + box.Cols - 1
	if row == box.Row {
		switch {
		case col > right-closeButtonCols:
			return hitClose, entity.Edges{}
		case col > right-closeButtonCols-pinButtonCols:
			return hitPin, entity.Edges{}
		default:
			return hitTitle, entity.Edges{}
		}
	}
	edges := entity.Edges{
		Left:   col == box.Col,
		Right:  col == right,
		Bottom: row == box.Row+box.Rows-1,
	}
	if edges.Any() {
		return hitEdge, edges
	}
	return hitBody, entity.Edges{}
}

// target converts a hit into the pointer target of the interaction binding.
func target(part hitPart, edges entity.Edges) interact.Target {
	switch part {
	case hitTitle:
		return interact.Target{Kind: interact.TargetTitleBar}
	case hitEdge:
		return interact.Target{Kind: interact.TargetEdge, Edges: edges}
	case hitBody:
		return interact.Target{Kind: interact.TargetContent}
	default:
		return interact.Target{Kind: interact.TargetNone}
	}
}
