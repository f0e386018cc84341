package engine

import "github.com/piwi3910/StairMason/internal/model"

// SelectionPolicy decides which of several usable waste pieces to consume
// first. The planner's control flow stays the same whichever policy is
// plugged in.
type SelectionPolicy interface {
	// Better reports whether a should be consumed in preference to b.
	Better(a, b model.WastePiece) bool
}

// SmallestAreaFirst is the default policy: consume the smallest piece that
// is still sufficient, keeping larger remnants intact for later surfaces.
type SmallestAreaFirst struct{}

func (SmallestAreaFirst) Better(a, b model.WastePiece) bool {
	return a.Area() < b.Area()
}

// WasteInventory is the pool of reusable off-cuts threaded through one
// planning run. Pieces are addressed by index, so consuming one is a single
// swap-remove rather than a value-equality scan; entries with identical
// dimensions remain distinct.
type WasteInventory struct {
	pieces []model.WastePiece
	policy SelectionPolicy
}

// NewWasteInventory returns an empty inventory. A nil policy defaults to
// SmallestAreaFirst.
func NewWasteInventory(policy SelectionPolicy) *WasteInventory {
	if policy == nil {
		policy = SmallestAreaFirst{}
	}
	return &WasteInventory{policy: policy}
}

// Put banks a piece for later reuse. Pieces below the usable minimum are
// dropped silently.
func (inv *WasteInventory) Put(p model.WastePiece) {
	if !p.Usable() {
		return
	}
	inv.pieces = append(inv.pieces, p)
}

// Len returns the number of banked pieces.
func (inv *WasteInventory) Len() int {
	return len(inv.pieces)
}

// Pieces returns a copy of the current pool.
func (inv *WasteInventory) Pieces() []model.WastePiece {
	out := make([]model.WastePiece, len(inv.pieces))
	copy(out, inv.pieces)
	return out
}

// TakeMatching removes and returns the policy-preferred piece among those
// satisfying fits. The second result is false when nothing matches.
func (inv *WasteInventory) TakeMatching(fits func(model.WastePiece) bool) (model.WastePiece, bool) {
	best := -1
	for i, p := range inv.pieces {
		if !fits(p) {
			continue
		}
		if best < 0 || inv.policy.Better(p, inv.pieces[best]) {
			best = i
		}
	}
	if best < 0 {
		return model.WastePiece{}, false
	}
	return inv.removeAt(best), true
}

// TakePair removes and returns the pair of fitting pieces with the smallest
// combined area for which together returns true. Used when no single piece
// can span a surface alone.
func (inv *WasteInventory) TakePair(fits func(model.WastePiece) bool, together func(a, b model.WastePiece) bool) (model.WastePiece, model.WastePiece, bool) {
	bestI, bestJ := -1, -1
	bestArea := 0.0
	for i := 0; i < len(inv.pieces); i++ {
		if !fits(inv.pieces[i]) {
			continue
		}
		for j := i + 1; j < len(inv.pieces); j++ {
			if !fits(inv.pieces[j]) {
				continue
			}
			if !together(inv.pieces[i], inv.pieces[j]) {
				continue
			}
			area := inv.pieces[i].Area() + inv.pieces[j].Area()
			if bestI < 0 || area < bestArea {
				bestI, bestJ, bestArea = i, j, area
			}
		}
	}
	if bestI < 0 {
		return model.WastePiece{}, model.WastePiece{}, false
	}
	// Remove the higher index first so the lower one stays valid.
	second := inv.removeAt(bestJ)
	first := inv.removeAt(bestI)
	return first, second, true
}

// removeAt swap-removes the piece at index i. Pool order carries no
// meaning, so the cheaper removal is safe.
func (inv *WasteInventory) removeAt(i int) model.WastePiece {
	p := inv.pieces[i]
	last := len(inv.pieces) - 1
	inv.pieces[i] = inv.pieces[last]
	inv.pieces = inv.pieces[:last]
	return p
}
