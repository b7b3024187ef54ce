package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the on-disk configuration document. The zero value is not
// usable; start from Default or Load.
type Config struct {
	Shortcuts map[string]string `json:"shortcuts"`
	Spotlight Spotlight         `json:"spotlight"`
	Drawing   Drawing           `json:"drawing"`

	EnableFileLogging bool   `json:"-"`
	path              string `json:"-"`
}

type Spotlight struct {
	Enabled    bool    `json:"enabled"`
	Radius     int     `json:"radius"`
	RingRadius int     `json:"ring_radius"`
	Opacity    float64 `json:"opacity"`
	Color      string  `json:"color"`
}

type Drawing struct {
	LineWidth     int               `json:"line_width"`
	Colors        map[string]string `json:"colors"`
	ToolShortcuts map[string]string `json:"tool_shortcuts"`
}

// Shortcut action names.
const (
	ActionToggleSpotlight = "toggle_spotlight"
	ActionDrawBlue        = "draw_blue"
	ActionDrawRed         = "draw_red"
	ActionDrawYellow      = "draw_yellow"
	ActionDrawGreen       = "draw_green"
	ActionClearScreen     = "clear_screen"
	ActionQuit            = "quit"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Shortcuts: map[string]string{
			ActionToggleSpotlight: "<ctrl>+<shift>+s",
			ActionDrawBlue:        "<ctrl>+<shift>+b",
			ActionDrawRed:         "<ctrl>+<shift>+r",
			ActionDrawYellow:      "<ctrl>+<shift>+y",
			ActionDrawGreen:       "<ctrl>+<shift>+g",
			ActionClearScreen:     "<ctrl>+<shift>+c",
			ActionQuit:            "<ctrl>+<shift>+q",
		},
		Spotlight: Spotlight{
			Enabled:    true,
			Radius:     80,
			RingRadius: 40,
			Opacity:    0.7,
			Color:      "#FFFF64",
		},
		Drawing: Drawing{
			LineWidth: 4,
			Colors: map[string]string{
				"blue":   "#2196F3",
				"red":    "#F44336",
				"yellow": "#FFEB3B",
				"green":  "#4CAF50",
			},
			ToolShortcuts: map[string]string{
				"freehand":  "1",
				"line":      "2",
				"rectangle": "3",
				"arrow":     "4",
				"circle":    "5",
			},
		},
		path: "config.json",
	}
}

// Load reads the configuration, merging the file over the defaults so a
// partial document still yields every key. Missing file is not an error.
func Load() (*Config, error) {
	// Try to load .env from the current directory or the executable's
	// directory so double-clicked installs pick it up too.
	envPaths := []string{".env"}
	if execPath, err := os.Executable(); err == nil {
		envPaths = append(envPaths, filepath.Join(filepath.Dir(execPath), ".env"))
	}
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			godotenv.Load(envPath)
			break
		}
	}

	cfg := Default()
	cfg.EnableFileLogging = strings.ToLower(os.Getenv("GLOWPOINT_FILE_LOG")) == "true"
	if p := os.Getenv("GLOWPOINT_CONFIG"); p != "" {
		cfg.path = p
	}

	data, err := os.ReadFile(cfg.path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", cfg.path, err)
	}
	// Unmarshal on top of the populated struct: maps keep default entries
	// that the file does not mention, nested sections merge field-wise.
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", cfg.path, err)
	}
	return cfg, nil
}

// Save writes the configuration back to the path it was loaded from.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(c.path, data, 0644)
}

// Shortcut returns the chord bound to an action, or "".
func (c *Config) Shortcut(action string) string {
	return c.Shortcuts[action]
}

// ShortcutDisplay converts a stored chord like "<ctrl>+<shift>+s" to a
// human-readable "Ctrl+Shift+S" for tooltips and notifications.
func (c *Config) ShortcutDisplay(action string) string {
	return FormatChord(c.Shortcut(action))
}

var chordNames = strings.NewReplacer(
	"<ctrl>", "Ctrl",
	"<shift>", "Shift",
	"<alt>", "Alt",
	"<cmd>", "Cmd",
	"<meta>", "Meta",
	"<esc>", "Esc",
	"<tab>", "Tab",
	"<space>", "Space",
	"<enter>", "Enter",
)

// FormatChord renders an internal chord string for display.
func FormatChord(chord string) string {
	if chord == "" {
		return ""
	}
	parts := strings.Split(chordNames.Replace(chord), "+")
	for i, part := range parts {
		if len(part) == 1 {
			parts[i] = strings.ToUpper(part)
		}
	}
	return strings.Join(parts, "+")
}

// ParseHexColor decodes "#RRGGBB" (and "#RGB") into an opaque NRGBA.
func ParseHexColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xFF}
	hexByte := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}
	if len(s) == 0 || s[0] != '#' {
		return c, fmt.Errorf("invalid color %q", s)
	}
	switch len(s) {
	case 7:
		for i := 0; i < 3; i++ {
			hi, ok1 := hexByte(s[1+i*2])
			lo, ok2 := hexByte(s[2+i*2])
			if !ok1 || !ok2 {
				return c, fmt.Errorf("invalid color %q", s)
			}
			v := hi<<4 | lo
			switch i {
			case 0:
				c.R = v
			case 1:
				c.G = v
			case 2:
				c.B = v
			}
		}
	case 4:
		for i := 0; i < 3; i++ {
			v, ok := hexByte(s[1+i])
			if !ok {
				return c, fmt.Errorf("invalid color %q", s)
			}
			v = v<<4 | v
			switch i {
			case 0:
				c.R = v
			case 1:
				c.G = v
			case 2:
				c.B = v
			}
		}
	default:
		return c, fmt.Errorf("invalid color %q", s)
	}
	return c, nil
}
