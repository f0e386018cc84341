package engine

import (
	"testing"

	"github.com/piwi3910/StairMason/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWasteInventory_PutDropsScrap(t *testing.T) {
	inv := NewWasteInventory(nil)
	inv.Put(model.NewWastePiece(2, 100, "step 1"))
	assert.Equal(t, 0, inv.Len())

	inv.Put(model.NewWastePiece(20, 40, "step 1"))
	assert.Equal(t, 1, inv.Len())
}

func TestWasteInventory_TakeMatchingPrefersSmallestArea(t *testing.T) {
	inv := NewWasteInventory(nil)
	inv.Put(model.NewWastePiece(50, 50, "step 1"))
	inv.Put(model.NewWastePiece(30, 40, "step 2"))
	inv.Put(model.NewWastePiece(100, 60, "step 3"))

	piece, ok := inv.TakeMatching(func(p model.WastePiece) bool { return p.Width >= 25 })
	require.True(t, ok)
	assert.Equal(t, "step 2", piece.Source, "smallest sufficient piece first")
	assert.Equal(t, 2, inv.Len())
}

func TestWasteInventory_TakeMatchingNoFit(t *testing.T) {
	inv := NewWasteInventory(nil)
	inv.Put(model.NewWastePiece(30, 40, "step 1"))

	_, ok := inv.TakeMatching(func(p model.WastePiece) bool { return p.Width >= 200 })
	assert.False(t, ok)
	assert.Equal(t, 1, inv.Len(), "failed search must not consume anything")
}

func TestWasteInventory_DuplicatesAreDistinctEntries(t *testing.T) {
	inv := NewWasteInventory(nil)
	inv.Put(model.NewWastePiece(30, 40, "step 1"))
	inv.Put(model.NewWastePiece(30, 40, "step 1"))
	require.Equal(t, 2, inv.Len())

	_, ok := inv.TakeMatching(func(p model.WastePiece) bool { return true })
	require.True(t, ok)
	assert.Equal(t, 1, inv.Len(), "consuming one duplicate must leave the other")
}

func TestWasteInventory_TakePair(t *testing.T) {
	inv := NewWasteInventory(nil)
	inv.Put(model.NewWastePiece(30, 40, "step 1"))
	inv.Put(model.NewWastePiece(45, 40, "step 2"))
	inv.Put(model.NewWastePiece(90, 60, "step 3"))

	// Need 70 of combined span; the 30+45 pair has the smaller combined
	// area and must be preferred over pairs involving the 90x60 piece.
	a, b, ok := inv.TakePair(
		func(p model.WastePiece) bool { return p.Length >= 40 },
		func(a, b model.WastePiece) bool { return a.Width+b.Width >= 70 },
	)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"step 1", "step 2"}, []string{a.Source, b.Source})
	assert.Equal(t, 1, inv.Len())
}

func TestWasteInventory_CustomPolicy(t *testing.T) {
	inv := NewWasteInventory(largestAreaFirst{})
	inv.Put(model.NewWastePiece(30, 40, "small"))
	inv.Put(model.NewWastePiece(100, 60, "large"))

	piece, ok := inv.TakeMatching(func(p model.WastePiece) bool { return true })
	require.True(t, ok)
	assert.Equal(t, "large", piece.Source)
}

// largestAreaFirst inverts the default heuristic, exercising the policy
// seam without touching the planner.
type largestAreaFirst struct{}

func (largestAreaFirst) Better(a, b model.WastePiece) bool {
	return a.Area() > b.Area()
}
