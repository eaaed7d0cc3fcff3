// Package snap decides, from live pointer coordinates during a drag, whether a
// panel snaps to a screen edge or returns to free floating.
package snap

import (
	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/domain/geometry"
)

const (
	DefaultEdgeDistance    = 10 // Left/right activation distance
	DefaultTopDistance     = 30 // Top activation distance
	DefaultUnsnapThreshold = 60 // Pointer y a snapped panel must pass to release
)

// Target is a named edge with its activation distance.
type Target struct {
	Edge     entity.SnapState
	Distance int
}

// Config holds the snap thresholds in pixels.
type Config struct {
	EdgeDistance    int
	TopDistance     int
	UnsnapThreshold int
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		EdgeDistance:    DefaultEdgeDistance,
		TopDistance:     DefaultTopDistance,
		UnsnapThreshold: DefaultUnsnapThreshold,
	}
}

// Targets lists the snap targets in priority order.
func (c Config) Targets() []Target {
	return []Target{
		{Edge: entity.SnapLeft, Distance: c.EdgeDistance},
		{Edge: entity.SnapRight, Distance: c.EdgeDistance},
		{Edge: entity.SnapViewport, Distance: c.TopDistance},
	}
}

// Decision is what the drag listener should do with the current tick.
type Decision int

const (
	DecisionMove   Decision = iota // Not snapping: apply the regular drag move
	DecisionSnap                   // Replace the rect with an edge-aligned one
	DecisionHold                   // Still snapped: ignore this tick
	DecisionUnsnap                 // Restore the original rect
)

func (d Decision) String() string {
	switch d {
	case DecisionMove:
		return "move"
	case DecisionSnap:
		return "snap"
	case DecisionHold:
		return "hold"
	case DecisionUnsnap:
		return "unsnap"
	default:
		return "unknown"
	}
}

// MoveInput is one drag tick.
type MoveInput struct {
	Pointer    entity.Point   // Client coordinates of the pointer
	Viewport   entity.Size    // Workspace viewport size
	Offsets    entity.Offsets // Chrome offsets, see geometry.CalculateOffsets
	Current    entity.Rect    // Panel rect before this tick
	Snap       entity.SnapState
	UserDriven bool // Pointer buttons pressed; reflows never snap
}

// Result carries the decision and the geometry to apply.
type Result struct {
	Decision Decision
	Edge     entity.SnapState
	Rect     entity.Rect
	// Anchor is where subsequent drag ticks continue from after an unsnap,
	// keeping the pointer at the same relative spot inside the panel.
	Anchor entity.Point
}

// Engine holds the pre-snap geometry of a single panel.
type Engine struct {
	cfg   Config
	store geometry.Store
}

// NewEngine creates a snap engine. Zero thresholds fall back to defaults.
func NewEngine(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.EdgeDistance <= 0 {
		cfg.EdgeDistance = def.EdgeDistance
	}
	if cfg.TopDistance <= 0 {
		cfg.TopDistance = def.TopDistance
	}
	if cfg.UnsnapThreshold <= 0 {
		cfg.UnsnapThreshold = def.UnsnapThreshold
	}
	return &Engine{cfg: cfg}
}

// Config returns the active thresholds.
func (e *Engine) Config() Config {
	return e.cfg
}

// Zone returns the snap target the pointer is inside, or SnapNone.
func (e *Engine) Zone(pointer entity.Point, viewport entity.Size) entity.SnapState {
	for _, t := range e.cfg.Targets() {
		switch t.Edge {
		case entity.SnapLeft:
			if pointer.X < t.Distance {
				return t.Edge
			}
		case entity.SnapRight:
			if pointer.X > viewport.W-t.Distance {
				return t.Edge
			}
		case entity.SnapViewport:
			if pointer.Y < t.Distance {
				return t.Edge
			}
		}
	}
	return entity.SnapNone
}

// Move evaluates one drag tick.
func (e *Engine) Move(in MoveInput) Result {
	zone := e.Zone(in.Pointer, in.Viewport)
	if zone != entity.SnapNone && in.UserDriven {
		e.store.Capture(in.Current)
		return Result{
			Decision: DecisionSnap,
			Edge:     zone,
			Rect:     Rect(zone, in.Viewport, in.Offsets),
		}
	}

	if in.Snap == entity.SnapNone {
		return Result{Decision: DecisionMove}
	}

	// Snapped and outside every zone. Hysteresis: hold until the pointer is
	// far enough from the top so resizing near the top edge does not flap.
	if !in.UserDriven || in.Pointer.Y <= e.cfg.UnsnapThreshold {
		return Result{Decision: DecisionHold, Edge: in.Snap}
	}

	restored, ok := e.store.Restore(in.Offsets.Top)
	if !ok {
		restored = in.Current
	}
	return Result{
		Decision: DecisionUnsnap,
		Edge:     entity.SnapNone,
		Rect:     restored,
		Anchor:   geometry.UnsnapPosition(in.Pointer, in.Current, restored.W),
	}
}

// Original exposes the stored pre-snap rect.
func (e *Engine) Original() (entity.Rect, bool) {
	return e.store.Original()
}

// Reset forgets any stored geometry.
func (e *Engine) Reset() {
	e.store.Clear()
}

// Rect computes the edge-aligned rectangle for a snap target.
func Rect(edge entity.SnapState, viewport entity.Size, off entity.Offsets) entity.Rect {
	half := viewport.W / 2
	height := viewport.H - off.Top
	switch edge {
	case entity.SnapLeft:
		return entity.Rect{X: off.Left, Y: off.Top, W: half - off.Left, H: height}
	case entity.SnapRight:
		return entity.Rect{X: half, Y: off.Top, W: viewport.W - half, H: height}
	case entity.SnapViewport:
		return entity.Rect{X: off.Left, Y: off.Top, W: viewport.W - off.Left, H: height}
	default:
		return entity.Rect{}
	}
}
