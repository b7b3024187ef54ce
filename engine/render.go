package engine

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

const (
	glowAlpha      = 70
	glowWidthScale = 3
	arrowHeadBase  = 6
)

// Render builds the canvas objects for every committed stroke plus the
// in-progress gesture. Each stroke is painted twice: a wide translucent
// underlay and then a solid core, which reads as a feathered glow
// against any background.
func (e *Engine) Render() []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, 0, len(e.strokes)*4+4)
	for _, s := range e.strokes {
		objs = appendStroke(objs, s)
	}
	if s, ok := e.ActiveStroke(); ok {
		objs = appendStroke(objs, s)
	}
	return objs
}

func appendStroke(objs []fyne.CanvasObject, s Stroke) []fyne.CanvasObject {
	if len(s.Points) < 2 {
		return objs
	}
	glow := s.Color
	glow.A = glowAlpha
	glowWidth := float32(s.Thickness * glowWidthScale)
	coreWidth := float32(s.Thickness)

	switch s.Tool {
	case ToolFreehand:
		pts := CatmullRom(s.Points, smoothSegments)
		objs = appendPolyline(objs, pts, glow, glowWidth)
		objs = appendPolyline(objs, pts, s.Color, coreWidth)
	case ToolLine:
		objs = append(objs,
			newLine(s.Start(), s.End(), glow, glowWidth),
			newLine(s.Start(), s.End(), s.Color, coreWidth))
	case ToolRectangle:
		objs = append(objs,
			newRect(s.Start(), s.End(), glow, glowWidth),
			newRect(s.Start(), s.End(), s.Color, coreWidth))
	case ToolArrow:
		objs = appendArrow(objs, s.Start(), s.End(), glow, glowWidth, s.Thickness)
		objs = appendArrow(objs, s.Start(), s.End(), s.Color, coreWidth, s.Thickness)
	case ToolCircle:
		objs = append(objs,
			newCircle(s.Start(), s.End(), glow, glowWidth),
			newCircle(s.Start(), s.End(), s.Color, coreWidth))
	}
	return objs
}

func newLine(a, b Point, col color.NRGBA, width float32) *canvas.Line {
	l := canvas.NewLine(col)
	l.StrokeWidth = width
	l.Position1 = fyne.NewPos(a.X, a.Y)
	l.Position2 = fyne.NewPos(b.X, b.Y)
	return l
}

func appendPolyline(objs []fyne.CanvasObject, pts []Point, col color.NRGBA, width float32) []fyne.CanvasObject {
	for i := 0; i < len(pts)-1; i++ {
		objs = append(objs, newLine(pts[i], pts[i+1], col, width))
	}
	return objs
}

func newRect(a, b Point, col color.NRGBA, width float32) *canvas.Rectangle {
	r := canvas.NewRectangle(color.Transparent)
	r.StrokeColor = col
	r.StrokeWidth = width
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	r.Move(fyne.NewPos(minX, minY))
	r.Resize(fyne.NewSize(maxX-minX, maxY-minY))
	return r
}

func newCircle(center, edge Point, col color.NRGBA, width float32) *canvas.Circle {
	c := canvas.NewCircle(color.Transparent)
	c.StrokeColor = col
	c.StrokeWidth = width
	dx := float64(edge.X - center.X)
	dy := float64(edge.Y - center.Y)
	r := float32(math.Hypot(dx, dy))
	c.Position1 = fyne.NewPos(center.X-r, center.Y-r)
	c.Position2 = fyne.NewPos(center.X+r, center.Y+r)
	return c
}

// appendArrow draws the shaft plus two head lines. The head scales with
// the stroke thickness so heavy arrows stay proportioned.
func appendArrow(objs []fyne.CanvasObject, a, b Point, col color.NRGBA, width float32, thickness int) []fyne.CanvasObject {
	objs = append(objs, newLine(a, b, col, width))
	angle := math.Atan2(float64(b.Y-a.Y), float64(b.X-a.X))
	size := float64(arrowHeadBase + thickness*2)
	for _, da := range []float64{math.Pi / 6, -math.Pi / 6} {
		tip := Point{
			X: b.X - float32(math.Cos(angle+da)*size),
			Y: b.Y - float32(math.Sin(angle+da)*size),
		}
		objs = append(objs, newLine(b, tip, col, width))
	}
	return objs
}
