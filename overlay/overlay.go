// Package overlay manages the transparent, always-on-top surface that
// spans every display. It switches between click-through (idle,
// spotlight) and click-capturing (drawing) input modes and routes raw
// pointer and keyboard input into control-loop commands.
package overlay

import (
	"fmt"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/archiflux/Glowpoint/command"
	"github.com/archiflux/Glowpoint/config"
	"github.com/archiflux/Glowpoint/display"
	"github.com/archiflux/Glowpoint/engine"
	"github.com/archiflux/Glowpoint/spotlight"
)

// Controller owns the overlay window and its input mode.
type Controller struct {
	win    fyne.Window
	board  *board
	spot   *spotlight.Renderer
	layout display.Layout
	post   func(command.Command)

	capturing bool
}

// NewController creates the overlay window sized to the current monitor
// layout. The window starts hidden; call Show once the loop is running.
func NewController(a fyne.App, cfg *config.Config, spot *spotlight.Renderer, post func(command.Command)) (*Controller, error) {
	drv, ok := a.Driver().(desktop.Driver)
	if !ok {
		return nil, fmt.Errorf("overlay: desktop driver required")
	}
	layout, err := display.Detect()
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}

	win := drv.CreateSplashWindow()
	win.SetTitle("Glowpoint Overlay")

	c := &Controller{
		win:    win,
		spot:   spot,
		layout: layout,
		post:   post,
	}
	c.board = newBoard(c)
	win.SetContent(c.board)
	c.applySize()
	c.bindKeys(cfg)
	return c, nil
}

func (c *Controller) bindKeys(cfg *config.Config) {
	toolKeys := make(map[rune]engine.Tool)
	for name, key := range cfg.Drawing.ToolShortcuts {
		tool, ok := engine.ToolFromName(name)
		if !ok || key == "" {
			log.Warn().Str("tool", name).Msg("Ignoring unknown tool shortcut")
			continue
		}
		toolKeys[rune(key[0])] = tool
	}

	cv := c.win.Canvas()
	cv.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			c.post(command.Escape())
		}
	})
	cv.SetOnTypedRune(func(r rune) {
		if tool, ok := toolKeys[r]; ok {
			c.post(command.SetTool(tool))
		}
	})
	cv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierControl},
		func(fyne.Shortcut) { c.post(command.Undo()) })
	cv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierControl | fyne.KeyModifierShift},
		func(fyne.Shortcut) { c.post(command.Redo()) })
}

// Show displays the overlay and applies the native always-on-top and
// click-through styles. Native style failures are non-fatal: the
// overlay still renders, input modes just degrade.
func (c *Controller) Show() {
	c.win.Show()
	c.applyNative()
}

func (c *Controller) Close() {
	c.win.Close()
}

// Layout returns the monitor layout the surface currently covers.
func (c *Controller) Layout() display.Layout {
	return c.layout
}

// ApplyLayout resizes the surface after a display-configuration change.
func (c *Controller) ApplyLayout(l display.Layout) {
	c.layout = l
	c.applySize()
	log.Info().Stringer("layout", l).Msg("Overlay resized to new monitor layout")
}

func (c *Controller) applySize() {
	v := c.layout.Virtual
	c.win.Resize(fyne.NewSize(float32(v.Dx()), float32(v.Dy())))
}

// ToSurface converts a global screen coordinate into surface-local
// coordinates.
func (c *Controller) ToSurface(x, y int) engine.Point {
	return engine.Point{
		X: float32(x - c.layout.Virtual.Min.X),
		Y: float32(y - c.layout.Virtual.Min.Y),
	}
}

// SetCapturing toggles the input mode. While capturing, pointer events
// are routed to the drawing engine and blocked from underlying windows;
// otherwise the surface is click-through.
func (c *Controller) SetCapturing(capturing bool) {
	if c.capturing == capturing {
		return
	}
	c.capturing = capturing
	c.applyNative()
	if capturing {
		c.win.RequestFocus()
	}
	c.board.Refresh()
}

func (c *Controller) Capturing() bool { return c.capturing }

// SetScene replaces the stroke objects the board paints. Called from
// the control loop via fyne.Do after every drawing mutation.
func (c *Controller) SetScene(objs []fyne.CanvasObject) {
	c.board.setScene(objs)
	c.board.Refresh()
}

// board is the full-surface widget that paints strokes and spotlight
// and feeds pointer input into the control loop.
type board struct {
	widget.BaseWidget
	ctrl *Controller

	mu    sync.Mutex
	scene []fyne.CanvasObject
}

var (
	_ fyne.Widget        = (*board)(nil)
	_ desktop.Mouseable  = (*board)(nil)
	_ fyne.Draggable     = (*board)(nil)
	_ fyne.Scrollable    = (*board)(nil)
	_ desktop.Cursorable = (*board)(nil)
)

func newBoard(ctrl *Controller) *board {
	b := &board{ctrl: ctrl}
	b.ExtendBaseWidget(b)
	return b
}

func (b *board) setScene(objs []fyne.CanvasObject) {
	b.mu.Lock()
	b.scene = objs
	b.mu.Unlock()
}

func (b *board) MouseDown(e *desktop.MouseEvent) {
	if !b.ctrl.capturing || e.Button != desktop.MouseButtonPrimary {
		return
	}
	chain := e.Modifier&fyne.KeyModifierShift != 0
	b.ctrl.post(command.PointerPressed(engine.Point{X: e.Position.X, Y: e.Position.Y}, chain))
}

func (b *board) MouseUp(e *desktop.MouseEvent) {
	if !b.ctrl.capturing || e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.ctrl.post(command.PointerReleased(engine.Point{X: e.Position.X, Y: e.Position.Y}))
}

func (b *board) Dragged(e *fyne.DragEvent) {
	if !b.ctrl.capturing {
		return
	}
	b.ctrl.post(command.PointerDragged(engine.Point{X: e.Position.X, Y: e.Position.Y}))
}

func (b *board) DragEnd() {}

// Scrolled adjusts the active thickness while drawing (mouse wheel).
func (b *board) Scrolled(e *fyne.ScrollEvent) {
	if !b.ctrl.capturing {
		return
	}
	delta := 1
	if e.Scrolled.DY < 0 {
		delta = -1
	}
	b.ctrl.post(command.AdjustThickness(delta))
}

func (b *board) Cursor() desktop.Cursor {
	if b.ctrl.capturing {
		return desktop.CrosshairCursor
	}
	return desktop.DefaultCursor
}

func (b *board) CreateRenderer() fyne.WidgetRenderer {
	return &boardRenderer{
		board:      b,
		background: canvas.NewRectangle(color.Transparent),
	}
}

type boardRenderer struct {
	board      *board
	background *canvas.Rectangle
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	r.board.mu.Lock()
	defer r.board.mu.Unlock()
	objs := make([]fyne.CanvasObject, 0, len(r.board.scene)+3)
	objs = append(objs, r.background)
	objs = append(objs, r.board.scene...)
	objs = append(objs, r.board.ctrl.spot.Objects()...)
	return objs
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size { return fyne.NewSize(1, 1) }

func (r *boardRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Destroy() {}
