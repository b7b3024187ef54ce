// Package hotkey captures system-wide key chords on a background
// goroutine. Callbacks run on the capture goroutine and must only
// enqueue work; they never touch control-loop state directly.
package hotkey

import (
	"fmt"
	"sync"

	gohook "github.com/robotn/gohook"
	"github.com/rs/zerolog/log"
)

// Listener owns the global input hook. Register all chords, then Start.
type Listener struct {
	mu       sync.Mutex
	bindings []*binding
	onCursor func(x, y int16)
	stop     chan struct{}
	started  bool
}

type binding struct {
	chord  string
	groups [][]uint16 // one group per chord component, any rawcode in a group satisfies it
	fired  bool       // set on match, cleared on release: one callback per physical press
	cb     func()
}

func New() *Listener {
	return &Listener{stop: make(chan struct{})}
}

// Register binds a chord like "<ctrl>+<shift>+s" to a callback. Must be
// called before Start.
func (l *Listener) Register(chord string, cb func()) error {
	groups, err := parseChord(chord)
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bindings = append(l.bindings, &binding{chord: chord, groups: groups, cb: cb})
	log.Debug().Str("chord", chord).Msg("Registered hotkey")
	return nil
}

// OnCursorMove installs a callback for global pointer movement, fed from
// the same hook event stream. Used for spotlight tracking while the
// overlay is click-through and cannot see pointer events itself.
func (l *Listener) OnCursorMove(cb func(x, y int16)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onCursor = cb
}

// Start installs the hook and spawns the capture goroutine. Failure to
// install (missing permissions, headless session) is returned to the
// caller and must be treated as non-fatal: the process keeps running
// with hotkeys unavailable.
func (l *Listener) Start() error {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		return nil
	}
	l.started = true
	l.mu.Unlock()

	evChan := gohook.Start()
	if evChan == nil {
		return fmt.Errorf("hotkey: could not install global input hook")
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Msg("Hotkey capture goroutine panicked")
			}
		}()
		pressed := make(map[uint16]bool)
		for {
			select {
			case <-l.stop:
				return
			case ev, ok := <-evChan:
				if !ok {
					log.Warn().Msg("Hook event channel closed")
					return
				}
				l.handle(ev, pressed)
			}
		}
	}()
	return nil
}

// Stop terminates the capture goroutine and uninstalls the hook.
func (l *Listener) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.started {
		return
	}
	l.started = false
	close(l.stop)
	l.stop = make(chan struct{})
	gohook.End()
}

func (l *Listener) handle(ev gohook.Event, pressed map[uint16]bool) {
	switch ev.Kind {
	case gohook.KeyDown, gohook.KeyHold:
		rc := ev.Rawcode
		pressed[rc] = true
		l.mu.Lock()
		for _, b := range l.bindings {
			if b.fired {
				continue
			}
			if b.matches(pressed) {
				b.fired = true
				log.Debug().Str("chord", b.chord).Msg("Hotkey matched")
				b.cb()
			}
		}
		l.mu.Unlock()
	case gohook.KeyUp:
		rc := ev.Rawcode
		delete(pressed, rc)
		l.mu.Lock()
		for _, b := range l.bindings {
			if b.fired && !b.matches(pressed) {
				b.fired = false
			}
		}
		l.mu.Unlock()
	case gohook.MouseMove, gohook.MouseDrag:
		l.mu.Lock()
		cb := l.onCursor
		l.mu.Unlock()
		if cb != nil {
			cb(ev.X, ev.Y)
		}
	}
}

func (b *binding) matches(pressed map[uint16]bool) bool {
	for _, group := range b.groups {
		ok := false
		for _, rc := range group {
			if pressed[rc] {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
