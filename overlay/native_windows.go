//go:build windows

package overlay

import (
	"fyne.io/fyne/v2/driver"
	"github.com/lxn/win"
	"github.com/rs/zerolog/log"
)

// applyNative sets the extended window styles for the current input
// mode. Layered + toolwindow always; transparent only while
// click-through. The overlay sits above everything else, so the window
// is pinned with HWND_TOPMOST on every style change.
func (c *Controller) applyNative() {
	native, ok := c.win.(driver.NativeWindow)
	if !ok {
		log.Warn().Msg("Overlay window exposes no native handle, input modes degraded")
		return
	}
	native.RunNative(func(ctx any) {
		wctx, ok := ctx.(driver.WindowsWindowContext)
		if !ok {
			log.Warn().Msg("Unexpected native window context, input modes degraded")
			return
		}
		hwnd := win.HWND(wctx.HWND)

		style := win.GetWindowLong(hwnd, win.GWL_EXSTYLE)
		style |= win.WS_EX_LAYERED | win.WS_EX_TOOLWINDOW
		if c.capturing {
			style &^= win.WS_EX_TRANSPARENT
		} else {
			style |= win.WS_EX_TRANSPARENT
		}
		win.SetWindowLong(hwnd, win.GWL_EXSTYLE, style)

		v := c.layout.Virtual
		win.SetWindowPos(hwnd, win.HWND_TOPMOST,
			int32(v.Min.X), int32(v.Min.Y), int32(v.Dx()), int32(v.Dy()),
			win.SWP_NOACTIVATE|win.SWP_SHOWWINDOW)
	})
}
