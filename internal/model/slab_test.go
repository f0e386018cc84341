package model

import "testing"

func TestSpanWidthFollowsPlacement(t *testing.T) {
	s := SlabSize{Name: "80 x 40", Width: 80, Length: 40}
	if got := s.SpanWidth(PlacementLongWays); got != 80 {
		t.Errorf("long-ways span width: expected 80, got %v", got)
	}
	if got := s.SpanLength(PlacementLongWays); got != 40 {
		t.Errorf("long-ways span length: expected 40, got %v", got)
	}
	if got := s.SpanWidth(PlacementSideWays); got != 40 {
		t.Errorf("side-ways span width: expected 40, got %v", got)
	}
	if got := s.SpanLength(PlacementSideWays); got != 80 {
		t.Errorf("side-ways span length: expected 80, got %v", got)
	}
}

func TestFindSlabSizeFallsBackToFirst(t *testing.T) {
	s := FindSlabSize("no such size")
	if s.Name != SlabCatalogue()[0].Name {
		t.Errorf("expected fallback to first catalogue entry, got %q", s.Name)
	}
}

func TestWastePieceUsable(t *testing.T) {
	if !NewWastePiece(10, 40, "step 1").Usable() {
		t.Error("10x40 piece should be usable")
	}
	if NewWastePiece(2, 40, "step 1").Usable() {
		t.Error("2cm strip should be scrap")
	}
}

func TestMaterialTotalsAddAccumulates(t *testing.T) {
	var totals MaterialTotals
	totals.Add("a", "Brick", 10)
	totals.Add("b", "Block", 4)
	totals.Add("a", "Brick", 5)

	if len(totals.Counts) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(totals.Counts))
	}
	if totals.Counts[0].Units != 15 {
		t.Errorf("expected 15 bricks, got %d", totals.Counts[0].Units)
	}
	if totals.TotalUnits() != 19 {
		t.Errorf("expected 19 total units, got %d", totals.TotalUnits())
	}
}
