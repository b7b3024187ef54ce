package state

import (
	"testing"

	"github.com/archiflux/Glowpoint/config"
	"github.com/archiflux/Glowpoint/engine"
)

func newMachine(t *testing.T, spotlightOn bool) *Machine {
	t.Helper()
	cfg := config.Default()
	cfg.Spotlight.Enabled = spotlightOn
	return NewMachine(cfg)
}

func TestSpotlightToggle(t *testing.T) {
	m := newMachine(t, false)
	if m.Mode() != ModeIdle {
		t.Fatalf("initial mode %v, want idle", m.Mode())
	}
	if !m.ToggleSpotlight() {
		t.Fatal("toggle should enable spotlight")
	}
	if m.Mode() != ModeSpotlight {
		t.Errorf("mode %v, want spotlight", m.Mode())
	}
	if m.ToggleSpotlight() {
		t.Fatal("second toggle should disable spotlight")
	}
	if m.Mode() != ModeIdle {
		t.Errorf("mode %v, want idle", m.Mode())
	}
}

func TestSameColorTwiceExitsDrawing(t *testing.T) {
	m := newMachine(t, true)
	drawing, ok := m.ToggleDraw("blue")
	if !ok || !drawing {
		t.Fatal("first blue should enter drawing mode")
	}
	drawing, ok = m.ToggleDraw("blue")
	if !ok || drawing {
		t.Fatal("second blue should exit drawing mode")
	}
	// Exits back to the mode that was active before drawing.
	if m.Mode() != ModeSpotlight {
		t.Errorf("mode after exit %v, want spotlight", m.Mode())
	}
}

func TestDifferentColorSwitchesDirectly(t *testing.T) {
	m := newMachine(t, false)
	m.ToggleDraw("blue")
	drawing, ok := m.ToggleDraw("red")
	if !ok || !drawing {
		t.Fatal("red should switch color while staying in drawing mode")
	}
	name, _ := m.ActiveColor()
	if name != "red" {
		t.Errorf("active color %q, want red", name)
	}
	if m.Mode() != ModeDrawing {
		t.Errorf("mode %v, want drawing (no intermediate idle)", m.Mode())
	}
}

func TestUnknownColorIgnored(t *testing.T) {
	m := newMachine(t, false)
	_, ok := m.ToggleDraw("chartreuse")
	if ok {
		t.Error("unknown color must be rejected")
	}
	if m.Mode() != ModeIdle {
		t.Errorf("mode changed on invalid command: %v", m.Mode())
	}
}

func TestEscapeRestoresPreviousMode(t *testing.T) {
	m := newMachine(t, true)
	if m.Mode() != ModeSpotlight {
		t.Fatalf("initial mode %v, want spotlight", m.Mode())
	}
	m.ToggleDraw("green")
	if !m.ExitDrawing() {
		t.Fatal("ExitDrawing failed")
	}
	if m.Mode() != ModeSpotlight {
		t.Errorf("mode %v, want spotlight", m.Mode())
	}
	if m.ExitDrawing() {
		t.Error("ExitDrawing outside drawing should be a no-op")
	}
}

func TestSpotlightStaysOnWhileDrawing(t *testing.T) {
	m := newMachine(t, true)
	m.ToggleDraw("blue")
	if !m.SpotlightOn() {
		t.Error("spotlight should stay visible while drawing")
	}
	m.ToggleSpotlight()
	if m.SpotlightOn() {
		t.Error("toggle while drawing should hide the spotlight")
	}
	m.ExitDrawing()
	if m.Mode() != ModeIdle {
		t.Errorf("exit should land on the toggled mode, got %v", m.Mode())
	}
}

func TestThicknessClamped(t *testing.T) {
	m := newMachine(t, false)
	m.ToggleDraw("blue")

	for i := 0; i < 30; i++ {
		m.AdjustThickness(-1)
	}
	if got := m.Thickness(); got != MinThickness {
		t.Errorf("thickness %d, want clamp at %d", got, MinThickness)
	}
	for i := 0; i < 50; i++ {
		m.AdjustThickness(+1)
	}
	if got := m.Thickness(); got != MaxThickness {
		t.Errorf("thickness %d, want clamp at %d", got, MaxThickness)
	}
}

func TestThicknessPersistsPerColor(t *testing.T) {
	m := newMachine(t, false)
	m.ToggleDraw("blue")
	m.AdjustThickness(+6) // blue: 10

	m.ToggleDraw("red")
	if got := m.Thickness(); got != 4 {
		t.Errorf("red thickness %d, want default 4", got)
	}
	m.AdjustThickness(-2) // red: 2

	m.ToggleDraw("blue")
	if got := m.Thickness(); got != 10 {
		t.Errorf("blue thickness %d, want remembered 10", got)
	}
	m.ToggleDraw("red")
	if got := m.Thickness(); got != 2 {
		t.Errorf("red thickness %d, want remembered 2", got)
	}
}

func TestThicknessIgnoredOutsideDrawing(t *testing.T) {
	m := newMachine(t, false)
	before := m.Thickness()
	if got := m.AdjustThickness(+5); got != before {
		t.Errorf("thickness adjusted outside drawing mode: %d", got)
	}
}

func TestSetToolOnlyWhileDrawing(t *testing.T) {
	m := newMachine(t, false)
	if m.SetTool(engine.ToolArrow) {
		t.Error("tool change outside drawing mode should be rejected")
	}
	m.ToggleDraw("yellow")
	if !m.SetTool(engine.ToolArrow) {
		t.Error("tool change while drawing should be accepted")
	}
	if m.Tool() != engine.ToolArrow {
		t.Errorf("tool %v, want arrow", m.Tool())
	}
}
