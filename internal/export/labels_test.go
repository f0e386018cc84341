package export

import (
	"path/filepath"
	"testing"

	"github.com/piwi3910/StairMason/internal/model"
)

func TestCollectLabelInfos(t *testing.T) {
	est := buildTestEstimate(t)
	labels := CollectLabelInfos(est.Slabs)

	want := 0
	for _, r := range est.Slabs.Results {
		want += len(r.Pieces)
	}
	if len(labels) != want {
		t.Fatalf("expected %d labels, got %d", want, len(labels))
	}

	first := labels[0]
	if first.Step != 1 {
		t.Errorf("expected 1-based step numbering, got %d", first.Step)
	}
	if first.Location != "tread" {
		t.Errorf("expected first surface to be the tread, got %s", first.Location)
	}
	if first.Width <= 0 || first.Depth <= 0 {
		t.Errorf("label dimensions missing: %+v", first)
	}
}

func TestCollectLabelInfos_NilPlan(t *testing.T) {
	if labels := CollectLabelInfos(nil); labels != nil {
		t.Errorf("expected no labels for nil plan, got %d", len(labels))
	}
}

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	est := buildTestEstimate(t)
	if err := ExportLabels(path, est.Slabs); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	assertNonEmptyFile(t, path)
}

func TestExportLabels_EmptyPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, &model.SlabPlan{}); err == nil {
		t.Fatal("expected error for empty plan, got nil")
	}
}

func TestExportLabels_ManyPieces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "many.pdf")

	// More pieces than fit on one label page
	plan := &model.SlabPlan{}
	for step := 0; step < 20; step++ {
		plan.Results = append(plan.Results, model.SlabPlacementResult{
			Step:     step,
			Location: model.LocationTread,
			Pieces: []model.SlabPiece{
				{Width: 40, Depth: 40},
				{Width: 20, Depth: 40, Cut: true},
			},
		})
	}

	if err := ExportLabels(path, plan); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	assertNonEmptyFile(t, path)
}
