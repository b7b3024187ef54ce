// Package toolbar provides the small floating palette shown while the
// annotation mode is active: tool buttons, color swatches and a
// thickness slider. Every interaction is posted as a command; the
// toolbar never touches engine or state directly.
package toolbar

import (
	"image/color"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/archiflux/Glowpoint/command"
	"github.com/archiflux/Glowpoint/engine"
	"github.com/archiflux/Glowpoint/state"
)

// colorSwatch is a tappable colored square.
type colorSwatch struct {
	widget.BaseWidget
	name     string
	tint     color.NRGBA
	selected bool
	onTapped func(name string)

	rect   *canvas.Rectangle
	border *canvas.Rectangle
}

func newColorSwatch(name string, tint color.NRGBA, tapped func(string)) *colorSwatch {
	s := &colorSwatch{name: name, tint: tint, onTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	s.rect = canvas.NewRectangle(s.tint)
	s.rect.SetMinSize(fyne.NewSize(28, 28))

	s.border = canvas.NewRectangle(color.Transparent)
	s.border.StrokeColor = color.Gray{Y: 150}
	s.border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(s.rect, s.border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.onTapped != nil {
		s.onTapped(s.name)
	}
}

func (s *colorSwatch) setSelected(sel bool) {
	if s.selected == sel {
		return
	}
	s.selected = sel
	if s.border == nil {
		return
	}
	if sel {
		s.border.StrokeColor = color.White
		s.border.StrokeWidth = 3
	} else {
		s.border.StrokeColor = color.Gray{Y: 150}
		s.border.StrokeWidth = 1
	}
	s.border.Refresh()
}

// Toolbar is the floating palette window.
type Toolbar struct {
	win  fyne.Window
	post func(command.Command)

	toolButtons map[engine.Tool]*widget.Button
	swatches    map[string]*colorSwatch
	slider      *widget.Slider
	undoBtn     *widget.Button
	redoBtn     *widget.Button

	thickness int
	syncing   bool
}

// New builds the palette window. It stays hidden until Show is called
// when the annotation mode activates.
func New(a fyne.App, machine *state.Machine, post func(command.Command)) *Toolbar {
	t := &Toolbar{
		win:         a.NewWindow("Glowpoint"),
		post:        post,
		toolButtons: make(map[engine.Tool]*widget.Button),
		swatches:    make(map[string]*colorSwatch),
	}

	tools := []struct {
		tool  engine.Tool
		label string
	}{
		{engine.ToolFreehand, "Pen"},
		{engine.ToolLine, "Line"},
		{engine.ToolRectangle, "Rect"},
		{engine.ToolArrow, "Arrow"},
		{engine.ToolCircle, "Circle"},
	}
	toolBox := container.NewHBox()
	for _, tl := range tools {
		tool := tl.tool
		btn := widget.NewButton(tl.label, func() {
			t.post(command.SetTool(tool))
		})
		t.toolButtons[tool] = btn
		toolBox.Add(btn)
	}

	names := machine.ColorNames()
	sort.Strings(names)
	colorBox := container.NewHBox()
	for _, name := range names {
		tint, ok := machine.ColorValue(name)
		if !ok {
			continue
		}
		sw := newColorSwatch(name, tint, func(n string) {
			t.post(command.ToggleDraw(n))
		})
		t.swatches[name] = sw
		colorBox.Add(sw)
	}

	t.thickness = machine.Thickness()
	t.slider = widget.NewSlider(float64(state.MinThickness), float64(state.MaxThickness))
	t.slider.Step = 1
	t.slider.SetValue(float64(t.thickness))
	t.slider.OnChanged = func(val float64) {
		if t.syncing {
			return
		}
		if delta := int(val) - t.thickness; delta != 0 {
			t.post(command.AdjustThickness(delta))
		}
	}
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(130, 35)), t.slider)

	t.undoBtn = widget.NewButton("Undo", func() { t.post(command.Undo()) })
	t.redoBtn = widget.NewButton("Redo", func() { t.post(command.Redo()) })
	clearBtn := widget.NewButton("Clear", func() { t.post(command.ClearAll()) })
	exitBtn := widget.NewButton("Exit", func() { t.post(command.Escape()) })

	t.win.SetContent(container.NewHBox(
		toolBox,
		widget.NewSeparator(),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderBox,
		widget.NewSeparator(),
		t.undoBtn,
		t.redoBtn,
		clearBtn,
		exitBtn,
	))
	t.win.SetCloseIntercept(func() { t.post(command.Escape()) })
	return t
}

func (t *Toolbar) Show() { t.win.Show() }

func (t *Toolbar) Hide() { t.win.Hide() }

func (t *Toolbar) Close() { t.win.Close() }

// Sync reflects the current selection back into the palette so
// hotkey-driven changes stay visible.
func (t *Toolbar) Sync(tool engine.Tool, colorName string, thickness int, canUndo, canRedo bool) {
	t.syncing = true
	defer func() { t.syncing = false }()

	for tl, btn := range t.toolButtons {
		if tl == tool {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
	for name, sw := range t.swatches {
		sw.setSelected(name == colorName)
	}
	t.thickness = thickness
	t.slider.SetValue(float64(thickness))

	if canUndo {
		t.undoBtn.Enable()
	} else {
		t.undoBtn.Disable()
	}
	if canRedo {
		t.redoBtn.Enable()
	} else {
		t.redoBtn.Disable()
	}
}
