package engine

import "testing"

func TestCatmullRomPassesThroughControlPoints(t *testing.T) {
	pts := []Point{{0, 0}, {10, 20}, {30, 10}, {50, 40}}
	out := CatmullRom(pts, 4)

	if out[0] != pts[0] {
		t.Errorf("spline start %v, want %v", out[0], pts[0])
	}
	if out[len(out)-1] != pts[len(pts)-1] {
		t.Errorf("spline end %v, want %v", out[len(out)-1], pts[len(pts)-1])
	}
	// Every control point appears at a span boundary.
	for i, p := range pts {
		idx := i * 4
		got := out[idx]
		if absf(got.X-p.X) > 0.01 || absf(got.Y-p.Y) > 0.01 {
			t.Errorf("control point %d: spline has %v, want %v", i, got, p)
		}
	}
}

func TestCatmullRomOutputLength(t *testing.T) {
	pts := []Point{{0, 0}, {1, 1}, {2, 0}, {3, 1}, {4, 0}}
	const segments = 8
	out := CatmullRom(pts, segments)
	want := (len(pts)-1)*segments + 1
	if len(out) != want {
		t.Errorf("spline length %d, want %d", len(out), want)
	}
}

func TestCatmullRomShortInputsReturnedAsIs(t *testing.T) {
	for _, pts := range [][]Point{nil, {{1, 1}}, {{0, 0}, {5, 5}}} {
		out := CatmullRom(pts, 8)
		if len(out) != len(pts) {
			t.Errorf("short input length changed: %d -> %d", len(pts), len(out))
		}
		for i := range pts {
			if out[i] != pts[i] {
				t.Errorf("short input point %d changed", i)
			}
		}
	}
}

func TestCatmullRomDoesNotMutateInput(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {20, 0}}
	orig := append([]Point(nil), pts...)
	CatmullRom(pts, 8)
	for i := range pts {
		if pts[i] != orig[i] {
			t.Fatalf("input point %d mutated", i)
		}
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
