package ui

import "github.com/piwi3910/StairMason/internal/model"

const defaultMaxDepth = 50

// Snapshot captures the measurements and settings state at a point in time.
type Snapshot struct {
	Inputs   model.StairInputs
	Settings model.EstimateSettings
	Label    string // Human-readable description (e.g. "Open Job")
}

// History manages undo/redo stacks of estimate snapshots.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot
	maxDepth  int
}

// NewHistory creates a History with the default max depth of 50.
func NewHistory() *History {
	return &History{
		maxDepth: defaultMaxDepth,
	}
}

// Push saves a snapshot onto the undo stack and clears the redo stack.
// This should be called before the modification is applied.
func (h *History) Push(s Snapshot) {
	h.undoStack = append(h.undoStack, s)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[len(h.undoStack)-h.maxDepth:]
	}
	h.redoStack = nil
}

// Undo pops the most recent snapshot from the undo stack and pushes
// the current state onto the redo stack. Returns the snapshot to restore
// and true, or an empty snapshot and false if nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	// Pop from undo
	last := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	// Push current state onto redo
	h.redoStack = append(h.redoStack, current)
	return last, true
}

// Redo pops the most recent snapshot from the redo stack and pushes
// the current state onto the undo stack. Returns the snapshot to restore
// and true, or an empty snapshot and false if nothing to redo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}
	// Pop from redo
	last := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	// Push current state onto undo
	h.undoStack = append(h.undoStack, current)
	return last, true
}

// CanUndo returns true if there is at least one snapshot to undo.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if there is at least one snapshot to redo.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Clear removes all undo and redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// copySettings returns a deep copy of an EstimateSettings value.
func copySettings(s model.EstimateSettings) model.EstimateSettings {
	cp := s
	if s.MaterialIDs != nil {
		cp.MaterialIDs = make([]string, len(s.MaterialIDs))
		copy(cp.MaterialIDs, s.MaterialIDs)
	}
	return cp
}

// MakeSnapshot creates a snapshot from the current estimate state with a label.
func MakeSnapshot(inputs model.StairInputs, settings model.EstimateSettings, label string) Snapshot {
	return Snapshot{
		Inputs:   inputs,
		Settings: copySettings(settings),
		Label:    label,
	}
}
