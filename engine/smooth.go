package engine

// smoothSegments is the number of interpolated segments per control-point
// span when smoothing freehand strokes for display.
const smoothSegments = 8

// CatmullRom interpolates a spline through the raw control points of a
// freehand gesture. The input points are left untouched; smoothing is a
// render-time transform so the committed stroke keeps the exact points
// the pointer produced. Fewer than three points come back as-is.
func CatmullRom(pts []Point, segments int) []Point {
	if len(pts) < 3 || segments < 1 {
		out := make([]Point, len(pts))
		copy(out, pts)
		return out
	}
	out := make([]Point, 0, (len(pts)-1)*segments+1)
	out = append(out, pts[0])
	for i := 0; i < len(pts)-1; i++ {
		p0 := pts[clampIdx(i-1, len(pts))]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[clampIdx(i+2, len(pts))]
		for s := 1; s <= segments; s++ {
			t := float32(s) / float32(segments)
			out = append(out, catmullPoint(p0, p1, p2, p3, t))
		}
	}
	return out
}

func clampIdx(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func catmullPoint(p0, p1, p2, p3 Point, t float32) Point {
	t2 := t * t
	t3 := t2 * t
	return Point{
		X: 0.5 * (2*p1.X + (p2.X-p0.X)*t +
			(2*p0.X-5*p1.X+4*p2.X-p3.X)*t2 +
			(3*p1.X-p0.X-3*p2.X+p3.X)*t3),
		Y: 0.5 * (2*p1.Y + (p2.Y-p0.Y)*t +
			(2*p0.Y-5*p1.Y+4*p2.Y-p3.Y)*t2 +
			(3*p1.Y-p0.Y-3*p2.Y+p3.Y)*t3),
	}
}
