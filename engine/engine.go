// Package engine owns the committed strokes, the gesture being drawn,
// and the undo/redo history. All methods are synchronous transforms over
// in-memory state and must only be called from the control loop.
package engine

import (
	"image/color"

	"github.com/rs/zerolog/log"
)

type gesture struct {
	tool      Tool
	color     color.NRGBA
	thickness int
	points    []Point
	moved     bool
}

// Engine is the drawing state container.
type Engine struct {
	strokes []Stroke
	undone  []Stroke
	active  *gesture
	nextSeq uint64

	lastEnd Point
	hasLast bool
}

func New() *Engine {
	return &Engine{nextSeq: 1}
}

// Begin starts a new gesture at p. Returns false if a gesture is already
// active; it must be committed or cancelled first.
func (e *Engine) Begin(p Point, tool Tool, col color.NRGBA, thickness int) bool {
	if e.active != nil {
		return false
	}
	e.active = &gesture{
		tool:      tool,
		color:     col,
		thickness: thickness,
		points:    []Point{p},
	}
	return true
}

// ChainFromLast starts a straight-line gesture anchored at the end of
// the last committed stroke, so shift+click builds connected polylines.
// Falls back to a regular line gesture at p when nothing was committed yet.
func (e *Engine) ChainFromLast(p Point, col color.NRGBA, thickness int) bool {
	if e.active != nil {
		return false
	}
	if !e.hasLast {
		return e.Begin(p, ToolLine, col, thickness)
	}
	e.active = &gesture{
		tool:      ToolLine,
		color:     col,
		thickness: thickness,
		points:    []Point{e.lastEnd, p},
		moved:     p != e.lastEnd,
	}
	return true
}

// Extend feeds the gesture a new pointer position. Freehand gestures
// collect every point; shape gestures only track start plus current.
func (e *Engine) Extend(p Point) {
	g := e.active
	if g == nil {
		return
	}
	if p != g.points[0] {
		g.moved = true
	}
	if g.tool == ToolFreehand {
		g.points = append(g.points, p)
		return
	}
	if len(g.points) == 1 {
		g.points = append(g.points, p)
	} else {
		g.points[len(g.points)-1] = p
	}
}

// Commit freezes the active gesture into a Stroke, pushes it onto the
// history and clears the redo stack. A gesture with no movement (a click
// without a drag) is suppressed rather than committed as a dot.
func (e *Engine) Commit() (Stroke, bool) {
	g := e.active
	if g == nil {
		return Stroke{}, false
	}
	e.active = nil
	if !g.moved {
		log.Debug().Msg("Suppressing zero-movement gesture")
		return Stroke{}, false
	}
	s := Stroke{
		Seq:       e.nextSeq,
		Tool:      g.tool,
		Color:     g.color,
		Thickness: g.thickness,
		Points:    g.points,
	}
	e.nextSeq++
	e.strokes = append(e.strokes, s)
	e.undone = nil
	e.updateLast()
	return s, true
}

// Cancel abandons the active gesture without committing it.
func (e *Engine) Cancel() bool {
	if e.active == nil {
		return false
	}
	e.active = nil
	return true
}

// Undo moves the most recent stroke onto the redo stack. No-op when
// there is nothing to undo.
func (e *Engine) Undo() bool {
	if len(e.strokes) == 0 {
		return false
	}
	last := e.strokes[len(e.strokes)-1]
	e.strokes = e.strokes[:len(e.strokes)-1]
	e.undone = append(e.undone, last)
	e.updateLast()
	return true
}

// Redo restores the most recently undone stroke.
func (e *Engine) Redo() bool {
	if len(e.undone) == 0 {
		return false
	}
	last := e.undone[len(e.undone)-1]
	e.undone = e.undone[:len(e.undone)-1]
	e.strokes = append(e.strokes, last)
	e.updateLast()
	return true
}

// ClearAll empties the committed strokes and both history stacks.
// Idempotent and irreversible.
func (e *Engine) ClearAll() {
	e.strokes = nil
	e.undone = nil
	e.active = nil
	e.hasLast = false
}

func (e *Engine) CanUndo() bool { return len(e.strokes) > 0 }

func (e *Engine) CanRedo() bool { return len(e.undone) > 0 }

// Strokes returns the committed strokes in commit order. The slice is
// shared; callers must not mutate it.
func (e *Engine) Strokes() []Stroke {
	return e.strokes
}

// ActiveStroke returns a snapshot of the in-progress gesture for
// rendering, or false when no gesture is active.
func (e *Engine) ActiveStroke() (Stroke, bool) {
	g := e.active
	if g == nil {
		return Stroke{}, false
	}
	return Stroke{
		Tool:      g.tool,
		Color:     g.color,
		Thickness: g.thickness,
		Points:    g.points,
	}, true
}

// GestureActive reports whether a gesture is currently being drawn.
func (e *Engine) GestureActive() bool { return e.active != nil }

func (e *Engine) updateLast() {
	if len(e.strokes) == 0 {
		e.hasLast = false
		return
	}
	e.lastEnd = e.strokes[len(e.strokes)-1].End()
	e.hasLast = true
}
