// Package state tracks the application mode and the active drawing
// tool, color and thickness. It is pure in-memory state owned by the
// control loop; the overlay and tray read it, commands mutate it.
package state

import (
	"image/color"

	"github.com/rs/zerolog/log"

	"github.com/archiflux/Glowpoint/config"
	"github.com/archiflux/Glowpoint/engine"
)

// Mode is the process-wide application mode. Exactly one is active.
type Mode int

const (
	ModeIdle Mode = iota
	ModeSpotlight
	ModeDrawing
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeSpotlight:
		return "spotlight"
	case ModeDrawing:
		return "drawing"
	}
	return "unknown"
}

const (
	MinThickness = 1
	MaxThickness = 20
)

// Machine applies shortcut and toolbar commands as mode transitions.
type Machine struct {
	mode Mode
	prev Mode // last non-drawing mode, restored on drawing exit

	tool  engine.Tool
	color string

	// Each color keeps its own thickness across mode switches.
	thickness map[string]int
	colors    map[string]color.NRGBA
}

// NewMachine builds the machine from the drawing/spotlight config.
// Unknown color values in the config are skipped with a log entry.
func NewMachine(cfg *config.Config) *Machine {
	m := &Machine{
		mode:      ModeIdle,
		prev:      ModeIdle,
		tool:      engine.ToolFreehand,
		thickness: make(map[string]int),
		colors:    make(map[string]color.NRGBA),
	}
	if cfg.Spotlight.Enabled {
		m.mode = ModeSpotlight
		m.prev = ModeSpotlight
	}
	for name, hex := range cfg.Drawing.Colors {
		c, err := config.ParseHexColor(hex)
		if err != nil {
			log.Warn().Str("color", name).Str("value", hex).Msg("Ignoring unparseable drawing color")
			continue
		}
		m.colors[name] = c
		m.thickness[name] = clampThickness(cfg.Drawing.LineWidth)
	}
	return m
}

func (m *Machine) Mode() Mode { return m.mode }

func (m *Machine) Drawing() bool { return m.mode == ModeDrawing }

// SpotlightOn reports whether the spotlight should be rendered. The
// spotlight keeps glowing while drawing if it was on when drawing began.
func (m *Machine) SpotlightOn() bool {
	if m.mode == ModeDrawing {
		return m.prev == ModeSpotlight
	}
	return m.mode == ModeSpotlight
}

// ToggleSpotlight flips between Idle and SpotlightOnly. While drawing it
// flips the saved mode instead, so exiting drawing lands on the toggled
// state. Returns the new spotlight visibility.
func (m *Machine) ToggleSpotlight() bool {
	switch m.mode {
	case ModeDrawing:
		if m.prev == ModeSpotlight {
			m.prev = ModeIdle
		} else {
			m.prev = ModeSpotlight
		}
	case ModeSpotlight:
		m.mode = ModeIdle
	default:
		m.mode = ModeSpotlight
	}
	return m.SpotlightOn()
}

// ToggleDraw handles a color shortcut. The same color while already
// drawing it exits drawing mode; a different color switches directly
// without passing through idle. Unknown colors are ignored.
// Returns (nowDrawing, accepted).
func (m *Machine) ToggleDraw(colorName string) (bool, bool) {
	if _, ok := m.colors[colorName]; !ok {
		log.Warn().Str("color", colorName).Msg("Ignoring draw command for unknown color")
		return m.Drawing(), false
	}
	if m.mode == ModeDrawing {
		if m.color == colorName {
			m.mode = m.prev
			return false, true
		}
		m.color = colorName
		return true, true
	}
	m.prev = m.mode
	m.mode = ModeDrawing
	m.color = colorName
	return true, true
}

// ExitDrawing leaves drawing mode (Escape), restoring the previous
// non-drawing mode. No-op outside drawing mode.
func (m *Machine) ExitDrawing() bool {
	if m.mode != ModeDrawing {
		return false
	}
	m.mode = m.prev
	return true
}

// SetTool selects the active tool. Only meaningful while drawing.
func (m *Machine) SetTool(tool engine.Tool) bool {
	if m.mode != ModeDrawing {
		return false
	}
	m.tool = tool
	return true
}

func (m *Machine) Tool() engine.Tool { return m.tool }

// ActiveColor returns the drawing color name and its RGBA value.
func (m *Machine) ActiveColor() (string, color.NRGBA) {
	return m.color, m.colors[m.color]
}

// ColorNames returns the configured color names (unordered).
func (m *Machine) ColorNames() []string {
	names := make([]string, 0, len(m.colors))
	for name := range m.colors {
		names = append(names, name)
	}
	return names
}

// ColorValue resolves a configured color name.
func (m *Machine) ColorValue(name string) (color.NRGBA, bool) {
	c, ok := m.colors[name]
	return c, ok
}

// Thickness returns the active color's thickness.
func (m *Machine) Thickness() int {
	if t, ok := m.thickness[m.color]; ok {
		return t
	}
	return MinThickness
}

// AdjustThickness applies a relative delta to the active color's
// thickness, clamped to [MinThickness, MaxThickness]. Only meaningful
// while drawing. Returns the resulting thickness.
func (m *Machine) AdjustThickness(delta int) int {
	if m.mode != ModeDrawing {
		return m.Thickness()
	}
	t := clampThickness(m.Thickness() + delta)
	m.thickness[m.color] = t
	return t
}

func clampThickness(t int) int {
	if t < MinThickness {
		return MinThickness
	}
	if t > MaxThickness {
		return MaxThickness
	}
	return t
}
