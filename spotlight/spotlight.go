// Package spotlight renders the cursor-following glow: a radial
// gradient fading out at the configured radius plus a bright ring for
// emphasis. The two canvas objects are allocated once and only moved on
// update, so the per-frame path does not allocate.
package spotlight

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/rs/zerolog/log"

	"github.com/archiflux/Glowpoint/config"
)

const ringStrokeWidth = 3

// Renderer owns the spotlight's canvas objects.
type Renderer struct {
	glow *canvas.RadialGradient
	ring *canvas.Circle

	radius     float32
	ringRadius float32
	pos        fyne.Position
	visible    bool
}

func New(cfg config.Spotlight) *Renderer {
	r := &Renderer{
		glow:    canvas.NewRadialGradient(color.Transparent, color.Transparent),
		ring:    canvas.NewCircle(color.Transparent),
		visible: true,
	}
	r.ring.StrokeWidth = ringStrokeWidth
	r.ApplyConfig(cfg)
	return r
}

// ApplyConfig adopts new spotlight settings without recreating the
// canvas objects, so settings changes apply live.
func (r *Renderer) ApplyConfig(cfg config.Spotlight) {
	base, err := config.ParseHexColor(cfg.Color)
	if err != nil {
		log.Warn().Str("color", cfg.Color).Msg("Invalid spotlight color, keeping previous")
		if prev, ok := r.ring.StrokeColor.(color.NRGBA); ok {
			base = prev
		} else {
			base = color.NRGBA{R: 0xFF, G: 0xFF, B: 0x64, A: 0xFF}
		}
	}
	opacity := cfg.Opacity
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}

	center := base
	center.A = uint8(180 * opacity)
	r.glow.StartColor = center
	r.glow.EndColor = color.NRGBA{}

	ringCol := base
	ringCol.A = uint8(200 * opacity)
	r.ring.StrokeColor = ringCol

	r.radius = float32(cfg.Radius)
	r.ringRadius = float32(cfg.RingRadius)
	r.place()
	r.glow.Refresh()
	r.ring.Refresh()
}

// Update recenters the spotlight on the cursor. Called on every tracked
// pointer-move tick.
func (r *Renderer) Update(pos fyne.Position) {
	if pos == r.pos {
		return
	}
	r.pos = pos
	r.place()
	r.glow.Refresh()
	r.ring.Refresh()
}

func (r *Renderer) place() {
	r.glow.Move(fyne.NewPos(r.pos.X-r.radius, r.pos.Y-r.radius))
	r.glow.Resize(fyne.NewSize(2*r.radius, 2*r.radius))
	r.ring.Move(fyne.NewPos(r.pos.X-r.ringRadius, r.pos.Y-r.ringRadius))
	r.ring.Resize(fyne.NewSize(2*r.ringRadius, 2*r.ringRadius))
}

// SetVisible shows or hides the spotlight objects.
func (r *Renderer) SetVisible(v bool) {
	if v == r.visible {
		return
	}
	r.visible = v
	if v {
		r.glow.Show()
		r.ring.Show()
	} else {
		r.glow.Hide()
		r.ring.Hide()
	}
}

func (r *Renderer) Visible() bool { return r.visible }

// Objects returns the canvas objects in paint order (glow under ring).
func (r *Renderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.glow, r.ring}
}
