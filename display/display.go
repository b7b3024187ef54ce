// Package display computes the monitor layout the overlay surface must
// cover: every active display's rectangle and their bounding union in
// virtual-desktop coordinates.
package display

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

// Layout is a snapshot of the active displays. Recomputed at overlay
// creation and whenever a configuration change is detected.
type Layout struct {
	Displays []image.Rectangle
	Virtual  image.Rectangle
}

// Detect enumerates the active displays.
func Detect() (Layout, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return Layout{}, fmt.Errorf("display: no active displays found")
	}
	l := Layout{Displays: make([]image.Rectangle, 0, n)}
	for i := 0; i < n; i++ {
		b := screenshot.GetDisplayBounds(i)
		l.Displays = append(l.Displays, b)
		l.Virtual = l.Virtual.Union(b)
	}
	return l, nil
}

// Equal reports whether two layouts describe the same displays in the
// same order.
func (l Layout) Equal(other Layout) bool {
	if len(l.Displays) != len(other.Displays) {
		return false
	}
	for i := range l.Displays {
		if l.Displays[i] != other.Displays[i] {
			return false
		}
	}
	return true
}

func (l Layout) String() string {
	return fmt.Sprintf("%d display(s), virtual %v", len(l.Displays), l.Virtual)
}
