//go:build !windows

package overlay

import "github.com/rs/zerolog/log"

// applyNative is a no-op off Windows. Fyne still shows the surface but
// click-through and topmost pinning are unavailable, so the overlay
// behaves like a plain fullscreen window.
func (c *Controller) applyNative() {
	log.Debug().Bool("capturing", c.capturing).Msg("Native overlay styles not supported on this platform")
}
