// Package eventloop runs the single-threaded coordinator. Every
// collaborator (hotkey listener, tray, toolbar, overlay input) posts
// commands onto a bounded channel; only the loop goroutine touches the
// stroke engine and the mode machine. UI mutations go out through the
// Frontend so the loop never blocks on the toolkit.
package eventloop

import (
	"context"
	"time"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog/log"

	"github.com/archiflux/Glowpoint/command"
	"github.com/archiflux/Glowpoint/config"
	"github.com/archiflux/Glowpoint/display"
	"github.com/archiflux/Glowpoint/engine"
	"github.com/archiflux/Glowpoint/state"
)

const (
	// cursorInterval paces spotlight moves to roughly 60 fps.
	cursorInterval = 16 * time.Millisecond
	// displayInterval paces monitor-layout change detection.
	displayInterval = 2 * time.Second

	queueSize = 64
)

// Frontend receives the loop's UI side effects. The production
// implementation marshals onto the toolkit thread; tests record calls.
type Frontend interface {
	SetCapturing(capturing bool)
	SetToolbarVisible(visible bool)
	SetScene(objs []fyne.CanvasObject)
	SyncToolbar(s ToolbarState)
	SetSpotlightVisible(visible bool)
	MoveSpotlight(p engine.Point)
	ApplySpotlightConfig(cfg config.Spotlight)
	ApplyLayout(l display.Layout)
	SetTraySpotlight(on bool)
	Notify(title, body string)
}

// ToolbarState is the palette-visible snapshot of the drawing state.
// It is passed by value so the toolkit thread never reads loop-owned
// structures.
type ToolbarState struct {
	Tool      engine.Tool
	Color     string
	Thickness int
	CanUndo   bool
	CanRedo   bool
}

// Loop coordinates mode, strokes and rendering.
type Loop struct {
	cfg      *config.Config
	machine  *state.Machine
	engine   *engine.Engine
	frontend Frontend
	layout   display.Layout

	cmds chan command.Command
	quit func()

	cursor      engine.Point
	cursorDirty bool

	detect func() (display.Layout, error)
}

// New builds the loop. quit is invoked once when a Quit command is
// processed; it should stop the toolkit's main loop.
func New(cfg *config.Config, machine *state.Machine, frontend Frontend, layout display.Layout, quit func()) *Loop {
	return &Loop{
		cfg:      cfg,
		machine:  machine,
		engine:   engine.New(),
		frontend: frontend,
		layout:   layout,
		cmds:     make(chan command.Command, queueSize),
		quit:     quit,
		detect:   display.Detect,
	}
}

// Post enqueues a command without blocking. Commands beyond the queue
// capacity are dropped; input producers must never stall on the loop.
func (l *Loop) Post(cmd command.Command) {
	select {
	case l.cmds <- cmd:
	default:
		log.Debug().Stringer("kind", cmd.Kind).Msg("Command queue full, dropping")
	}
}

// Run processes commands until ctx is cancelled or Quit arrives. It
// pushes the initial mode out to the frontend before entering the loop.
func (l *Loop) Run(ctx context.Context) error {
	l.applyMode()
	l.refreshScene()

	cursorTick := time.NewTicker(cursorInterval)
	defer cursorTick.Stop()
	displayTick := time.NewTicker(displayInterval)
	defer displayTick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-l.cmds:
			if cmd.Kind == command.KindQuit {
				log.Info().Msg("Quit requested")
				l.quit()
				return nil
			}
			l.handle(cmd)
		case <-cursorTick.C:
			l.flushCursor()
		case <-displayTick.C:
			l.checkDisplays()
		}
	}
}

func (l *Loop) handle(cmd command.Command) {
	switch cmd.Kind {
	case command.KindToggleSpotlight:
		l.toggleSpotlight()
	case command.KindToggleDraw:
		l.toggleDraw(cmd.Color)
	case command.KindSetTool:
		if l.machine.SetTool(cmd.Tool) {
			log.Debug().Stringer("tool", cmd.Tool).Msg("Tool selected")
			l.frontend.Notify("Glowpoint", "Tool: "+cmd.Tool.String())
			l.syncToolbar()
		}
	case command.KindAdjustThickness:
		l.machine.AdjustThickness(cmd.Delta)
		l.syncToolbar()
	case command.KindUndo:
		if l.engine.Undo() {
			l.refreshScene()
			l.syncToolbar()
		}
	case command.KindRedo:
		if l.engine.Redo() {
			l.refreshScene()
			l.syncToolbar()
		}
	case command.KindClearAll:
		l.engine.ClearAll()
		l.refreshScene()
		l.syncToolbar()
		l.frontend.Notify("Glowpoint", "Annotations cleared")
	case command.KindEscape:
		l.escape()
	case command.KindCursorMoved:
		l.cursor = cmd.Pos
		l.cursorDirty = true
	case command.KindPointerPressed:
		l.pointerPressed(cmd.Pos, cmd.Chain)
	case command.KindPointerDragged:
		if l.machine.Drawing() && l.engine.GestureActive() {
			l.engine.Extend(cmd.Pos)
			l.refreshScene()
		}
	case command.KindPointerReleased:
		l.pointerReleased(cmd.Pos)
	case command.KindDisplayChanged:
		l.checkDisplays()
	case command.KindReloadSpotlight:
		l.reloadSpotlight()
	default:
		log.Warn().Stringer("kind", cmd.Kind).Msg("Unhandled command")
	}
}

func (l *Loop) toggleSpotlight() {
	on := l.machine.ToggleSpotlight()
	log.Info().Bool("on", on).Msg("Spotlight toggled")
	l.cfg.Spotlight.Enabled = on
	if err := l.cfg.Save(); err != nil {
		log.Warn().Err(err).Msg("Failed to persist spotlight setting")
	}
	l.frontend.SetSpotlightVisible(on)
	l.frontend.SetTraySpotlight(on)
}

func (l *Loop) toggleDraw(colorName string) {
	wasDrawing := l.machine.Drawing()
	nowDrawing, accepted := l.machine.ToggleDraw(colorName)
	if !accepted {
		return
	}
	name, _ := l.machine.ActiveColor()
	log.Info().Bool("drawing", nowDrawing).Str("color", name).Msg("Draw mode toggled")
	if nowDrawing != wasDrawing {
		if !nowDrawing {
			l.engine.Cancel()
			l.refreshScene()
			l.frontend.Notify("Glowpoint", "Drawing off")
		} else {
			l.frontend.Notify("Glowpoint", "Drawing with "+name)
		}
		l.applyMode()
	}
	l.syncToolbar()
}

// reloadSpotlight re-reads the config document and applies the
// spotlight section live, so edits to config.json take effect without a
// restart.
func (l *Loop) reloadSpotlight() {
	fresh, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("Config reload failed, keeping current settings")
		return
	}
	l.cfg.Spotlight = fresh.Spotlight
	log.Info().Msg("Spotlight settings reloaded")
	l.frontend.ApplySpotlightConfig(l.cfg.Spotlight)
	l.frontend.SetSpotlightVisible(l.machine.SpotlightOn())
}

func (l *Loop) escape() {
	if l.engine.Cancel() {
		l.refreshScene()
		return
	}
	if l.machine.ExitDrawing() {
		log.Info().Stringer("mode", l.machine.Mode()).Msg("Drawing exited")
		l.frontend.Notify("Glowpoint", "Drawing off")
		l.applyMode()
	}
}

func (l *Loop) pointerPressed(p engine.Point, chain bool) {
	if !l.machine.Drawing() {
		return
	}
	_, col := l.machine.ActiveColor()
	th := l.machine.Thickness()
	if chain {
		l.engine.ChainFromLast(p, col, th)
	} else {
		l.engine.Begin(p, l.machine.Tool(), col, th)
	}
	l.refreshScene()
}

func (l *Loop) pointerReleased(p engine.Point) {
	if !l.engine.GestureActive() {
		return
	}
	l.engine.Extend(p)
	if _, ok := l.engine.Commit(); ok {
		l.syncToolbar()
	}
	l.refreshScene()
}

// applyMode pushes the machine's mode out: capture and toolbar while
// drawing, spotlight per its own toggle.
func (l *Loop) applyMode() {
	drawing := l.machine.Drawing()
	l.frontend.SetCapturing(drawing)
	l.frontend.SetToolbarVisible(drawing)
	l.frontend.SetSpotlightVisible(l.machine.SpotlightOn())
	l.frontend.SetTraySpotlight(l.machine.SpotlightOn())
}

func (l *Loop) refreshScene() {
	l.frontend.SetScene(l.engine.Render())
}

func (l *Loop) syncToolbar() {
	name, _ := l.machine.ActiveColor()
	l.frontend.SyncToolbar(ToolbarState{
		Tool:      l.machine.Tool(),
		Color:     name,
		Thickness: l.machine.Thickness(),
		CanUndo:   l.engine.CanUndo(),
		CanRedo:   l.engine.CanRedo(),
	})
}

// flushCursor applies at most one spotlight move per tick, in surface
// coordinates.
func (l *Loop) flushCursor() {
	if !l.cursorDirty {
		return
	}
	l.cursorDirty = false
	if !l.machine.SpotlightOn() {
		return
	}
	l.frontend.MoveSpotlight(engine.Point{
		X: l.cursor.X - float32(l.layout.Virtual.Min.X),
		Y: l.cursor.Y - float32(l.layout.Virtual.Min.Y),
	})
}

// checkDisplays re-detects the monitor layout and resizes the surface
// on change. An in-progress gesture is cancelled because its anchors
// no longer map to stable screen positions.
func (l *Loop) checkDisplays() {
	layout, err := l.detect()
	if err != nil {
		log.Warn().Err(err).Msg("Display detection failed")
		return
	}
	if layout.Equal(l.layout) {
		return
	}
	log.Info().Stringer("layout", layout).Msg("Monitor layout changed")
	l.layout = layout
	if l.engine.Cancel() {
		l.refreshScene()
	}
	l.frontend.ApplyLayout(layout)
}
