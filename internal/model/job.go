package model

import (
	"time"

	"github.com/google/uuid"
)

// SavedJob is a reusable stair estimate setup: the measurements and the
// settings, but never the computed results. Re-running a job always goes
// through the full pipeline again.
type SavedJob struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
	Inputs      StairInputs      `json:"inputs"`
	Settings    EstimateSettings `json:"settings"`
}

// NewSavedJob captures the given inputs and settings under a name.
func NewSavedJob(name, description string, inputs StairInputs, settings EstimateSettings) SavedJob {
	now := time.Now().UTC().Format(time.RFC3339)
	return SavedJob{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Inputs:      inputs,
		Settings:    settings,
	}
}

// JobStore holds a collection of saved jobs.
type JobStore struct {
	Jobs []SavedJob `json:"jobs"`
}

// NewJobStore creates an empty job store.
func NewJobStore() JobStore {
	return JobStore{
		Jobs: []SavedJob{},
	}
}

// Add adds a job to the store.
func (js *JobStore) Add(j SavedJob) {
	js.Jobs = append(js.Jobs, j)
}

// Remove removes a job by ID. Returns true if found and removed.
func (js *JobStore) Remove(id string) bool {
	for i, j := range js.Jobs {
		if j.ID == id {
			js.Jobs = append(js.Jobs[:i], js.Jobs[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the job with the given ID, or nil.
func (js *JobStore) FindByID(id string) *SavedJob {
	for i := range js.Jobs {
		if js.Jobs[i].ID == id {
			return &js.Jobs[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first job with the given name, or nil.
func (js *JobStore) FindByName(name string) *SavedJob {
	for i := range js.Jobs {
		if js.Jobs[i].Name == name {
			return &js.Jobs[i]
		}
	}
	return nil
}

// Names returns the job names for UI dropdowns.
func (js *JobStore) Names() []string {
	names := make([]string, len(js.Jobs))
	for i, j := range js.Jobs {
		names[i] = j.Name
	}
	return names
}
