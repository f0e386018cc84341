package model

import (
	"testing"
)

func TestPlacedHeightBlockIgnoresOrientation(t *testing.T) {
	block := NewMaterialOption("Block", KindBlock, 23.8, 17.5, 49.8)
	if got := block.PlacedHeight(OrientationFlat); got != 17.5 {
		t.Errorf("expected block placed height 17.5, got %v", got)
	}
	if got := block.PlacedHeight(OrientationOnSide); got != 17.5 {
		t.Errorf("expected block placed height 17.5, got %v", got)
	}
}

func TestPlacedHeightBrickFollowsOrientation(t *testing.T) {
	brick := NewMaterialOption("Brick", KindBrick, 7.1, 11.5, 24)
	if got := brick.PlacedHeight(OrientationFlat); got != 7.1 {
		t.Errorf("expected flat brick placed height 7.1, got %v", got)
	}
	if got := brick.PlacedHeight(OrientationOnSide); got != 11.5 {
		t.Errorf("expected on-side brick placed height 11.5, got %v", got)
	}
}

func TestDefaultMaterialsHaveUniqueIDs(t *testing.T) {
	materials := DefaultMaterials()
	if len(materials) == 0 {
		t.Fatal("expected non-empty default catalogue")
	}
	seen := map[string]bool{}
	for _, m := range materials {
		if m.ID == "" {
			t.Errorf("material %q has empty ID", m.Name)
		}
		if seen[m.ID] {
			t.Errorf("duplicate material ID %q", m.ID)
		}
		seen[m.ID] = true
	}
}

func TestFindMaterialByName(t *testing.T) {
	materials := DefaultMaterials()
	m := FindMaterialByName(materials, "Hollow block 24")
	if m == nil {
		t.Fatal("expected to find Hollow block 24")
	}
	if m.Width != 24 {
		t.Errorf("expected width 24, got %v", m.Width)
	}
	if FindMaterialByName(materials, "Unknown") != nil {
		t.Error("expected nil for unknown material")
	}
}

func TestFindMaterialByID(t *testing.T) {
	materials := DefaultMaterials()
	want := materials[2]
	got := FindMaterialByID(materials, want.ID)
	if got == nil || got.Name != want.Name {
		t.Errorf("expected %q, got %v", want.Name, got)
	}
}
