package ui

import (
	"testing"

	"github.com/piwi3910/StairMason/internal/model"
)

// inputsWithHeight returns minimal measurements distinguished by total height.
func inputsWithHeight(h float64) model.StairInputs {
	return model.StairInputs{
		TotalHeight: h,
		TotalWidth:  120,
		StepTread:   30,
		StepHeight:  18,
		Sides:       model.SideConfig{Left: true, Right: true},
		Config:      model.FrontsOnTop,
	}
}

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	if h.maxDepth != defaultMaxDepth {
		t.Errorf("expected maxDepth %d, got %d", defaultMaxDepth, h.maxDepth)
	}
	if h.CanUndo() {
		t.Error("new history should not be undoable")
	}
	if h.CanRedo() {
		t.Error("new history should not be redoable")
	}
}

func TestPushAndUndo(t *testing.T) {
	h := NewHistory()

	// Push initial state (before the measurement change)
	snap0 := MakeSnapshot(inputsWithHeight(100), model.DefaultEstimateSettings(), "initial")
	h.Push(snap0)

	if !h.CanUndo() {
		t.Fatal("should be able to undo after push")
	}

	current := MakeSnapshot(inputsWithHeight(200), model.DefaultEstimateSettings(), "current")

	restored, ok := h.Undo(current)
	if !ok {
		t.Fatal("undo should succeed")
	}
	if restored.Inputs.TotalHeight != 100 {
		t.Errorf("expected height 100 after undo, got %g", restored.Inputs.TotalHeight)
	}
	if restored.Label != "initial" {
		t.Errorf("expected label 'initial', got %q", restored.Label)
	}
}

func TestUndoRedo(t *testing.T) {
	h := NewHistory()

	h.Push(MakeSnapshot(inputsWithHeight(100), model.DefaultEstimateSettings(), "first"))
	h.Push(MakeSnapshot(inputsWithHeight(150), model.DefaultEstimateSettings(), "second"))

	current := MakeSnapshot(inputsWithHeight(200), model.DefaultEstimateSettings(), "current")

	// Undo to the second state
	restored, ok := h.Undo(current)
	if !ok {
		t.Fatal("first undo should succeed")
	}
	if restored.Inputs.TotalHeight != 150 {
		t.Errorf("expected height 150, got %g", restored.Inputs.TotalHeight)
	}

	// Redo back to the current state
	if !h.CanRedo() {
		t.Fatal("should be able to redo")
	}
	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("redo should succeed")
	}
	if redone.Inputs.TotalHeight != 200 {
		t.Errorf("expected height 200 after redo, got %g", redone.Inputs.TotalHeight)
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := NewHistory()

	h.Push(MakeSnapshot(inputsWithHeight(100), model.DefaultEstimateSettings(), "first"))

	current := MakeSnapshot(inputsWithHeight(200), model.DefaultEstimateSettings(), "current")

	// Undo
	_, ok := h.Undo(current)
	if !ok {
		t.Fatal("undo should succeed")
	}
	if !h.CanRedo() {
		t.Fatal("should be able to redo after undo")
	}

	// Push new state - should clear redo
	h.Push(MakeSnapshot(inputsWithHeight(300), model.DefaultEstimateSettings(), "new action"))
	if h.CanRedo() {
		t.Error("redo stack should be cleared after push")
	}
}

func TestMaxDepth(t *testing.T) {
	h := &History{maxDepth: 3}

	for i := 0; i < 5; i++ {
		h.Push(MakeSnapshot(inputsWithHeight(float64(i)), model.DefaultEstimateSettings(), ""))
	}

	if len(h.undoStack) != 3 {
		t.Errorf("expected undo stack length 3, got %d", len(h.undoStack))
	}
}

func TestUndoEmpty(t *testing.T) {
	h := NewHistory()
	current := MakeSnapshot(inputsWithHeight(100), model.DefaultEstimateSettings(), "current")
	_, ok := h.Undo(current)
	if ok {
		t.Error("undo on empty history should return false")
	}
}

func TestRedoEmpty(t *testing.T) {
	h := NewHistory()
	current := MakeSnapshot(inputsWithHeight(100), model.DefaultEstimateSettings(), "current")
	_, ok := h.Redo(current)
	if ok {
		t.Error("redo on empty history should return false")
	}
}

func TestClear(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(inputsWithHeight(100), model.DefaultEstimateSettings(), "a"))
	h.Push(MakeSnapshot(inputsWithHeight(150), model.DefaultEstimateSettings(), "b"))

	// Create a redo entry
	current := MakeSnapshot(inputsWithHeight(200), model.DefaultEstimateSettings(), "current")
	h.Undo(current)

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("after clear, should not be able to undo or redo")
	}
}

func TestDeepCopySettings(t *testing.T) {
	settings := model.DefaultEstimateSettings()
	settings.MaterialIDs = []string{"a", "b"}

	snap := MakeSnapshot(inputsWithHeight(100), settings, "test")

	// Mutate original
	settings.MaterialIDs[0] = "modified"

	if snap.Settings.MaterialIDs[0] != "a" {
		t.Error("snapshot should be independent of original selection slice")
	}
}

func TestCopyNilSelection(t *testing.T) {
	snap := MakeSnapshot(inputsWithHeight(100), model.DefaultEstimateSettings(), "nil test")
	if snap.Settings.MaterialIDs != nil {
		t.Error("nil selection should stay nil")
	}
}

func TestMultipleUndoRedo(t *testing.T) {
	h := NewHistory()

	// Build up 3 states: 100 -> 150 -> 200 -> 250
	h.Push(MakeSnapshot(inputsWithHeight(100), model.DefaultEstimateSettings(), "100"))
	h.Push(MakeSnapshot(inputsWithHeight(150), model.DefaultEstimateSettings(), "150"))
	h.Push(MakeSnapshot(inputsWithHeight(200), model.DefaultEstimateSettings(), "200"))

	current := MakeSnapshot(inputsWithHeight(250), model.DefaultEstimateSettings(), "250")

	// Undo all the way back
	s, ok := h.Undo(current)
	if !ok || s.Inputs.TotalHeight != 200 {
		t.Fatalf("first undo: expected height 200, got %g", s.Inputs.TotalHeight)
	}

	s, ok = h.Undo(s)
	if !ok || s.Inputs.TotalHeight != 150 {
		t.Fatalf("second undo: expected height 150, got %g", s.Inputs.TotalHeight)
	}

	s, ok = h.Undo(s)
	if !ok || s.Inputs.TotalHeight != 100 {
		t.Fatalf("third undo: expected height 100, got %g", s.Inputs.TotalHeight)
	}

	// No more undos
	if h.CanUndo() {
		t.Error("should not be able to undo further")
	}

	// Redo all the way forward
	s, ok = h.Redo(s)
	if !ok || s.Inputs.TotalHeight != 150 {
		t.Fatalf("first redo: expected height 150, got %g", s.Inputs.TotalHeight)
	}

	s, ok = h.Redo(s)
	if !ok || s.Inputs.TotalHeight != 200 {
		t.Fatalf("second redo: expected height 200, got %g", s.Inputs.TotalHeight)
	}

	s, ok = h.Redo(s)
	if !ok || s.Inputs.TotalHeight != 250 {
		t.Fatalf("third redo: expected height 250, got %g", s.Inputs.TotalHeight)
	}

	if h.CanRedo() {
		t.Error("should not be able to redo further")
	}
}
