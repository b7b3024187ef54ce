package display

import (
	"image"
	"testing"
)

func TestDetect(t *testing.T) {
	l, err := Detect()
	if err != nil {
		t.Skipf("no displays available (headless environment): %v", err)
	}
	if len(l.Displays) == 0 {
		t.Fatal("Detect returned zero displays without error")
	}
	if l.Virtual.Empty() {
		t.Error("virtual bounds empty")
	}
	for i, d := range l.Displays {
		if !d.In(l.Virtual) {
			t.Errorf("display %d %v not inside virtual bounds %v", i, d, l.Virtual)
		}
	}
}

func TestLayoutEqual(t *testing.T) {
	a := Layout{Displays: []image.Rectangle{image.Rect(0, 0, 1920, 1080)}}
	b := Layout{Displays: []image.Rectangle{image.Rect(0, 0, 1920, 1080)}}
	c := Layout{Displays: []image.Rectangle{image.Rect(0, 0, 2560, 1440)}}
	d := Layout{Displays: []image.Rectangle{
		image.Rect(0, 0, 1920, 1080),
		image.Rect(1920, 0, 3840, 1080),
	}}

	if !a.Equal(b) {
		t.Error("identical layouts reported unequal")
	}
	if a.Equal(c) {
		t.Error("different bounds reported equal")
	}
	if a.Equal(d) {
		t.Error("different display counts reported equal")
	}
}
