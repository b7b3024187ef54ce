// Package command defines the typed commands that collaborators (hotkey
// listener, tray menu, toolbar, overlay input) post onto the control
// loop. Commands are the only way state is mutated across goroutines.
package command

import "github.com/archiflux/Glowpoint/engine"

type Kind int

const (
	KindToggleSpotlight Kind = iota
	KindToggleDraw
	KindSetTool
	KindAdjustThickness
	KindUndo
	KindRedo
	KindClearAll
	KindEscape
	KindQuit

	KindCursorMoved
	KindPointerPressed
	KindPointerDragged
	KindPointerReleased

	KindDisplayChanged
	KindReloadSpotlight
)

var kindNames = map[Kind]string{
	KindToggleSpotlight: "ToggleSpotlight",
	KindToggleDraw:      "ToggleDraw",
	KindSetTool:         "SetTool",
	KindAdjustThickness: "AdjustThickness",
	KindUndo:            "Undo",
	KindRedo:            "Redo",
	KindClearAll:        "ClearAll",
	KindEscape:          "Escape",
	KindQuit:            "Quit",
	KindCursorMoved:     "CursorMoved",
	KindPointerPressed:  "PointerPressed",
	KindPointerDragged:  "PointerDragged",
	KindPointerReleased: "PointerReleased",
	KindDisplayChanged:  "DisplayChanged",
	KindReloadSpotlight: "ReloadSpotlight",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Command carries a kind plus the payload fields that kind uses.
type Command struct {
	Kind  Kind
	Color string      // ToggleDraw
	Tool  engine.Tool // SetTool
	Delta int         // AdjustThickness
	Pos   engine.Point
	Chain bool // PointerPressed with shift held
}

func ToggleSpotlight() Command { return Command{Kind: KindToggleSpotlight} }

func ToggleDraw(color string) Command { return Command{Kind: KindToggleDraw, Color: color} }

func SetTool(tool engine.Tool) Command { return Command{Kind: KindSetTool, Tool: tool} }

func AdjustThickness(delta int) Command { return Command{Kind: KindAdjustThickness, Delta: delta} }

func Undo() Command { return Command{Kind: KindUndo} }

func Redo() Command { return Command{Kind: KindRedo} }

func ClearAll() Command { return Command{Kind: KindClearAll} }

func Escape() Command { return Command{Kind: KindEscape} }

func Quit() Command { return Command{Kind: KindQuit} }

func CursorMoved(p engine.Point) Command { return Command{Kind: KindCursorMoved, Pos: p} }

func PointerPressed(p engine.Point, chain bool) Command {
	return Command{Kind: KindPointerPressed, Pos: p, Chain: chain}
}

func PointerDragged(p engine.Point) Command { return Command{Kind: KindPointerDragged, Pos: p} }

func PointerReleased(p engine.Point) Command { return Command{Kind: KindPointerReleased, Pos: p} }

func DisplayChanged() Command { return Command{Kind: KindDisplayChanged} }

func ReloadSpotlight() Command { return Command{Kind: KindReloadSpotlight} }
