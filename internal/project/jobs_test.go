package project

import (
	"path/filepath"
	"testing"

	"github.com/piwi3910/StairMason/internal/model"
)

func sampleJob(name string) model.SavedJob {
	inputs := model.StairInputs{
		TotalHeight: 180,
		TotalWidth:  100,
		StepHeight:  17,
		StepTread:   29,
		Sides:       model.SideConfig{Left: true, Right: true},
		Config:      model.FrontsOnTop,
	}
	return model.NewSavedJob(name, "garden stair", inputs, model.DefaultEstimateSettings())
}

func TestSaveAndLoadJobs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")

	store := model.NewJobStore()
	store.Add(sampleJob("Garden"))
	store.Add(sampleJob("Terrace"))

	if err := SaveJobs(path, store); err != nil {
		t.Fatalf("SaveJobs failed: %v", err)
	}

	loaded, err := LoadJobs(path)
	if err != nil {
		t.Fatalf("LoadJobs failed: %v", err)
	}
	if len(loaded.Jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(loaded.Jobs))
	}

	job := loaded.FindByName("Garden")
	if job == nil {
		t.Fatal("saved job not found by name")
	}
	if job.Inputs.TotalHeight != 180 {
		t.Errorf("expected inputs to round-trip, got height %f", job.Inputs.TotalHeight)
	}
}

func TestLoadJobsMissingFile(t *testing.T) {
	store, err := LoadJobs(filepath.Join(t.TempDir(), "jobs.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if store.Jobs == nil {
		t.Error("Jobs should never be nil")
	}
	if len(store.Jobs) != 0 {
		t.Errorf("expected empty store, got %d jobs", len(store.Jobs))
	}
}

func TestJobStoreRemove(t *testing.T) {
	store := model.NewJobStore()
	job := sampleJob("Garden")
	store.Add(job)

	if !store.Remove(job.ID) {
		t.Error("expected Remove to report success")
	}
	if store.Remove(job.ID) {
		t.Error("expected second Remove to report failure")
	}
	if len(store.Jobs) != 0 {
		t.Errorf("expected empty store, got %d jobs", len(store.Jobs))
	}
}
