package spotlight

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"

	"github.com/archiflux/Glowpoint/config"
)

func testConfig() config.Spotlight {
	return config.Spotlight{
		Enabled:    true,
		Radius:     80,
		RingRadius: 40,
		Opacity:    0.7,
		Color:      "#FFFF64",
	}
}

func TestRingCenteredOnCursor(t *testing.T) {
	r := New(testConfig())
	r.Update(fyne.NewPos(100, 100))

	glow := r.Objects()[0]
	ring := r.Objects()[1]

	// Outer falloff boundary at 80px radius around (100,100).
	if got := glow.Position(); got != fyne.NewPos(20, 20) {
		t.Errorf("glow position %v, want (20,20)", got)
	}
	if got := glow.Size(); got != fyne.NewSize(160, 160) {
		t.Errorf("glow size %v, want 160x160", got)
	}
	// Ring at ring_radius 40 around the same center.
	if got := ring.Position(); got != fyne.NewPos(60, 60) {
		t.Errorf("ring position %v, want (60,60)", got)
	}
	if got := ring.Size(); got != fyne.NewSize(80, 80) {
		t.Errorf("ring size %v, want 80x80", got)
	}
}

func TestOpacityModulatesColors(t *testing.T) {
	r := New(testConfig())
	start := r.glow.StartColor.(color.NRGBA)
	if start.A != uint8(180*0.7) {
		t.Errorf("glow center alpha %d, want %d", start.A, uint8(180*0.7))
	}
	if r.glow.EndColor.(color.NRGBA).A != 0 {
		t.Error("glow edge must fade to transparent")
	}
	ring := r.ring.StrokeColor.(color.NRGBA)
	if ring.A != uint8(200*0.7) {
		t.Errorf("ring alpha %d, want %d", ring.A, uint8(200*0.7))
	}
	if start.R != 0xFF || start.G != 0xFF || start.B != 0x64 {
		t.Errorf("glow tint %+v, want #FFFF64", start)
	}
}

func TestApplyConfigLiveReload(t *testing.T) {
	r := New(testConfig())
	r.Update(fyne.NewPos(50, 50))

	cfg := testConfig()
	cfg.Radius = 120
	cfg.RingRadius = 60
	r.ApplyConfig(cfg)

	if got := r.Objects()[0].Size(); got != fyne.NewSize(240, 240) {
		t.Errorf("glow size after reload %v, want 240x240", got)
	}
	// Still centered where the cursor was.
	if got := r.Objects()[0].Position(); got != fyne.NewPos(-70, -70) {
		t.Errorf("glow position after reload %v, want (-70,-70)", got)
	}
}

func TestInvalidColorKeepsPrevious(t *testing.T) {
	r := New(testConfig())
	cfg := testConfig()
	cfg.Color = "not-a-color"
	r.ApplyConfig(cfg)
	ring := r.ring.StrokeColor.(color.NRGBA)
	if ring.R != 0xFF || ring.G != 0xFF || ring.B != 0x64 {
		t.Errorf("tint changed on invalid color: %+v", ring)
	}
}

func TestVisibilityToggle(t *testing.T) {
	r := New(testConfig())
	if !r.Visible() {
		t.Fatal("renderer should start visible")
	}
	r.SetVisible(false)
	for i, o := range r.Objects() {
		if o.Visible() {
			t.Errorf("object %d still visible after hide", i)
		}
	}
	r.SetVisible(true)
	for i, o := range r.Objects() {
		if !o.Visible() {
			t.Errorf("object %d hidden after show", i)
		}
	}
}
