package hotkey

import (
	"fmt"
	"strings"
)

// Modifier rawcodes as delivered by the hook (left/right variants plus
// the generic code some platforms report).
var modifierCodes = map[string][]uint16{
	"ctrl":  {162, 163, 17},
	"shift": {160, 161, 16},
	"alt":   {164, 165, 18},
	"cmd":   {91, 92},
	"win":   {91, 92},
	"super": {91, 92},
	"meta":  {91, 92},
}

// parseChord turns "<ctrl>+<shift>+s" (or "ctrl+shift+s") into rawcode
// groups. Letters and digits map to their virtual-key codes.
func parseChord(chord string) ([][]uint16, error) {
	s := strings.ToLower(strings.ReplaceAll(chord, " ", ""))
	if s == "" {
		return nil, fmt.Errorf("hotkey: empty chord")
	}
	var groups [][]uint16
	for _, part := range strings.Split(s, "+") {
		part = strings.Trim(part, "<>")
		if part == "" {
			return nil, fmt.Errorf("hotkey: malformed chord %q", chord)
		}
		if codes, ok := modifierCodes[part]; ok {
			groups = append(groups, codes)
			continue
		}
		if len(part) == 1 {
			c := part[0]
			switch {
			case c >= 'a' && c <= 'z':
				groups = append(groups, []uint16{uint16(c - 'a' + 'A')})
				continue
			case c >= '0' && c <= '9':
				groups = append(groups, []uint16{uint16(c)})
				continue
			}
		}
		return nil, fmt.Errorf("hotkey: unsupported key %q in chord %q", part, chord)
	}
	return groups, nil
}
