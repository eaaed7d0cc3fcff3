package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/ui/interact"
)

func TestGrid_PointAndCells(t *testing.T) {
	g := newGrid(8, 16)

	assert.Equal(t, entity.Point{X: 44, Y: 40}, g.point(5, 2))
	assert.Equal(t, cellRect{Col: 4, Row: 2, Cols: 50, Rows: 19}, g.cells(entity.Rect{X: 32, Y: 32, W: 400, H: 300}))
	// Panels dragged past the left edge land on negative columns.
	assert.Equal(t, cellRect{Col: -2, Row: 0, Cols: 1, Rows: 1}, g.cells(entity.Rect{X: -9, Y: 0, W: 2, H: 2}))
}

func TestGrid_ZeroCellSize(t *testing.T) {
	g := newGrid(0, -1)
	assert.Equal(t, grid{cw: 1, ch: 1}, g)
}

func TestHitTest(t *testing.T) {
	box := cellRect{Col: 10, Row: 5, Cols: 20, Rows: 10}
	tests := []struct {
		name      string
		col, row  int
		wantPart  hitPart
		wantEdges entity.Edges
	}{
		{"outside", 9, 5, hitNone, entity.Edges{}},
		{"title", 12, 5, hitTitle, entity.Edges{}},
		{"pin", 24, 5, hitPin, entity.Edges{}},
		{"close", 29, 5, hitClose, entity.Edges{}},
		{"body", 15, 8, hitBody, entity.Edges{}},
		{"left", 10, 8, hitEdge, entity.Edges{Left: true}},
		{"right", 29, 8, hitEdge, entity.Edges{Right: true}},
		{"bottom", 15, 14, hitEdge, entity.Edges{Bottom: true}},
		{"bottom right", 29, 14, hitEdge, entity.Edges{Right: true, Bottom: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			part, edges := hitTest(box, tt.col, tt.row)
			assert.Equal(t, tt.wantPart, part)
			assert.Equal(t, tt.wantEdges, edges)
		})
	}
}

func TestTarget(t *testing.T) {
	assert.Equal(t, interact.TargetTitleBar, target(hitTitle, entity.Edges{}).Kind)
	assert.Equal(t, interact.Target{Kind: interact.TargetEdge, Edges: entity.Edges{Left: true}}, target(hitEdge, entity.Edges{Left: true}))
	assert.Equal(t, interact.TargetContent, target(hitBody, entity.Edges{}).Kind)
	assert.Equal(t, interact.TargetNone, target(hitClose, entity.Edges{}).Kind)
}
