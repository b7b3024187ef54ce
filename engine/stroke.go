package engine

import "image/color"

// Tool selects how a gesture's anchor points are interpreted.
type Tool int

const (
	ToolFreehand Tool = iota
	ToolLine
	ToolRectangle
	ToolArrow
	ToolCircle
)

var toolNames = map[Tool]string{
	ToolFreehand:  "freehand",
	ToolLine:      "line",
	ToolRectangle: "rectangle",
	ToolArrow:     "arrow",
	ToolCircle:    "circle",
}

func (t Tool) String() string {
	if name, ok := toolNames[t]; ok {
		return name
	}
	return "unknown"
}

// ToolFromName resolves the names used in the config document's
// drawing.tool_shortcuts section.
func ToolFromName(name string) (Tool, bool) {
	for t, n := range toolNames {
		if n == name {
			return t, true
		}
	}
	return ToolFreehand, false
}

// Point is a position on the overlay surface in virtual-desktop pixels.
type Point struct {
	X, Y float32
}

// Stroke is a committed drawn primitive. Immutable once committed.
//
// Freehand strokes carry every control point the gesture produced;
// line, rectangle, arrow and circle strokes carry exactly two anchors
// (start and end of the drag). For circles the first anchor is the
// center and the radius is the distance to the second.
type Stroke struct {
	Seq       uint64
	Tool      Tool
	Color     color.NRGBA
	Thickness int
	Points    []Point
}

func (s Stroke) Start() Point { return s.Points[0] }

func (s Stroke) End() Point { return s.Points[len(s.Points)-1] }
