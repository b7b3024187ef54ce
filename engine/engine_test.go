package engine

import (
	"image/color"
	"testing"
)

var blue = color.NRGBA{R: 0x21, G: 0x96, B: 0xF3, A: 0xFF}

func TestFreehandKeepsEveryControlPoint(t *testing.T) {
	e := New()
	if !e.Begin(Point{0, 0}, ToolFreehand, blue, 4) {
		t.Fatal("Begin failed")
	}
	const extends = 17
	for i := 1; i <= extends; i++ {
		e.Extend(Point{float32(i), float32(i * 2)})
	}
	s, ok := e.Commit()
	if !ok {
		t.Fatal("Commit failed")
	}
	if len(s.Points) != extends+1 {
		t.Fatalf("expected %d control points, got %d", extends+1, len(s.Points))
	}
	for i, p := range s.Points {
		want := Point{float32(i), float32(i * 2)}
		if p != want {
			t.Fatalf("point %d = %v, want %v", i, p, want)
		}
	}
}

func TestLineGestureTwoAnchors(t *testing.T) {
	e := New()
	e.Begin(Point{0, 0}, ToolLine, blue, 4)
	e.Extend(Point{40, 0})
	e.Extend(Point{70, 10})
	e.Extend(Point{100, 0})
	s, ok := e.Commit()
	if !ok {
		t.Fatal("Commit failed")
	}
	if s.Tool != ToolLine {
		t.Errorf("tool = %v, want line", s.Tool)
	}
	if len(s.Points) != 2 {
		t.Fatalf("shape gesture should keep two anchors, got %d", len(s.Points))
	}
	if s.Start() != (Point{0, 0}) || s.End() != (Point{100, 0}) {
		t.Errorf("endpoints = %v..%v, want (0,0)..(100,0)", s.Start(), s.End())
	}
	if got := len(e.Strokes()); got != 1 {
		t.Errorf("expected exactly one committed stroke, got %d", got)
	}
}

func TestBeginWhileActiveIsNoop(t *testing.T) {
	e := New()
	e.Begin(Point{0, 0}, ToolFreehand, blue, 4)
	if e.Begin(Point{5, 5}, ToolLine, blue, 4) {
		t.Error("second Begin should be rejected while a gesture is active")
	}
	e.Extend(Point{1, 1})
	if s, ok := e.Commit(); !ok || s.Tool != ToolFreehand {
		t.Errorf("original gesture lost: ok=%v tool=%v", ok, s.Tool)
	}
}

func TestZeroMovementGestureSuppressed(t *testing.T) {
	e := New()
	e.Begin(Point{10, 10}, ToolFreehand, blue, 4)
	e.Extend(Point{10, 10})
	if _, ok := e.Commit(); ok {
		t.Error("click without drag should not commit a stroke")
	}
	if len(e.Strokes()) != 0 {
		t.Errorf("stroke list not empty: %d", len(e.Strokes()))
	}
}

func TestUndoRedoRestoresExactState(t *testing.T) {
	e := New()
	for i := 0; i < 5; i++ {
		e.Begin(Point{float32(i), 0}, ToolLine, blue, 4)
		e.Extend(Point{float32(i), 10})
		if _, ok := e.Commit(); !ok {
			t.Fatalf("commit %d failed", i)
		}
	}
	before := append([]Stroke(nil), e.Strokes()...)

	for i := 0; i < 3; i++ {
		if !e.Undo() {
			t.Fatalf("undo %d failed", i)
		}
	}
	if len(e.Strokes()) != 2 {
		t.Fatalf("after 3 undos expected 2 strokes, got %d", len(e.Strokes()))
	}
	for i := 0; i < 3; i++ {
		if !e.Redo() {
			t.Fatalf("redo %d failed", i)
		}
	}

	after := e.Strokes()
	if len(after) != len(before) {
		t.Fatalf("length mismatch: %d vs %d", len(after), len(before))
	}
	for i := range before {
		if before[i].Seq != after[i].Seq || before[i].Start() != after[i].Start() {
			t.Errorf("stroke %d differs after undo/redo round trip", i)
		}
	}
}

func TestUndoRedoEmptyStacksAreNoops(t *testing.T) {
	e := New()
	if e.Undo() {
		t.Error("undo on empty history should be a no-op")
	}
	if e.Redo() {
		t.Error("redo on empty stack should be a no-op")
	}
}

func TestCommitClearsRedoStack(t *testing.T) {
	e := New()
	e.Begin(Point{0, 0}, ToolLine, blue, 4)
	e.Extend(Point{10, 0})
	e.Commit()
	e.Undo()
	if !e.CanRedo() {
		t.Fatal("expected redo available after undo")
	}
	e.Begin(Point{5, 5}, ToolLine, blue, 4)
	e.Extend(Point{5, 15})
	e.Commit()
	if e.CanRedo() {
		t.Error("redo stack must be cleared by a new commit")
	}
}

func TestClearAllIdempotent(t *testing.T) {
	e := New()
	e.Begin(Point{0, 0}, ToolFreehand, blue, 4)
	e.Extend(Point{1, 1})
	e.Commit()
	e.ClearAll()
	if len(e.Strokes()) != 0 || e.CanUndo() || e.CanRedo() {
		t.Fatal("clear did not empty all state")
	}
	e.ClearAll()
	if len(e.Strokes()) != 0 || e.CanUndo() || e.CanRedo() {
		t.Fatal("second clear changed state")
	}
}

func TestChainFromLastPoint(t *testing.T) {
	e := New()
	e.Begin(Point{0, 0}, ToolLine, blue, 4)
	e.Extend(Point{50, 50})
	if _, ok := e.Commit(); !ok {
		t.Fatal("first commit failed")
	}

	if !e.ChainFromLast(Point{50, 50}, blue, 4) {
		t.Fatal("ChainFromLast failed")
	}
	e.Extend(Point{50, 100})
	s, ok := e.Commit()
	if !ok {
		t.Fatal("chained commit failed")
	}
	if s.Start() != (Point{50, 50}) {
		t.Errorf("chained stroke starts at %v, want (50,50)", s.Start())
	}
	if s.End() != (Point{50, 100}) {
		t.Errorf("chained stroke ends at %v, want (50,100)", s.End())
	}
}

func TestChainWithoutHistoryStartsPlainLine(t *testing.T) {
	e := New()
	if !e.ChainFromLast(Point{3, 4}, blue, 4) {
		t.Fatal("ChainFromLast should fall back to Begin")
	}
	e.Extend(Point{13, 4})
	s, ok := e.Commit()
	if !ok {
		t.Fatal("commit failed")
	}
	if s.Start() != (Point{3, 4}) {
		t.Errorf("fallback start = %v, want (3,4)", s.Start())
	}
}

func TestCancelAbandonsGesture(t *testing.T) {
	e := New()
	e.Begin(Point{0, 0}, ToolFreehand, blue, 4)
	e.Extend(Point{5, 5})
	if !e.Cancel() {
		t.Fatal("Cancel failed")
	}
	if e.GestureActive() {
		t.Error("gesture still active after cancel")
	}
	if len(e.Strokes()) != 0 {
		t.Error("cancelled gesture was committed")
	}
	if e.Cancel() {
		t.Error("cancel with no gesture should report false")
	}
}

func TestSequenceIDsIncrease(t *testing.T) {
	e := New()
	var prev uint64
	for i := 0; i < 3; i++ {
		e.Begin(Point{0, float32(i)}, ToolLine, blue, 2)
		e.Extend(Point{9, float32(i)})
		s, ok := e.Commit()
		if !ok {
			t.Fatal("commit failed")
		}
		if s.Seq <= prev {
			t.Errorf("sequence not increasing: %d after %d", s.Seq, prev)
		}
		prev = s.Seq
	}
}

func TestToolFromName(t *testing.T) {
	for _, name := range []string{"freehand", "line", "rectangle", "arrow", "circle"} {
		tool, ok := ToolFromName(name)
		if !ok {
			t.Errorf("ToolFromName(%q) not found", name)
		}
		if tool.String() != name {
			t.Errorf("round trip %q -> %v -> %q", name, tool, tool.String())
		}
	}
	if _, ok := ToolFromName("laser"); ok {
		t.Error("unknown tool name should not resolve")
	}
}
