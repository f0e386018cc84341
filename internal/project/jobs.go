package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/StairMason/internal/model"
)

// DefaultJobsPath returns the default file path for the saved-jobs store.
// This is located at ~/.stairmason/jobs.json.
func DefaultJobsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".stairmason")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "jobs.json"), nil
}

// SaveJobs writes the job store to a JSON file.
func SaveJobs(path string, store model.JobStore) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadJobs reads a job store from a JSON file.
// If the file does not exist, returns an empty store.
func LoadJobs(path string) (model.JobStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewJobStore(), nil
		}
		return model.JobStore{}, err
	}
	var store model.JobStore
	if err := json.Unmarshal(data, &store); err != nil {
		return model.JobStore{}, err
	}
	if store.Jobs == nil {
		store.Jobs = []model.SavedJob{}
	}
	return store, nil
}

// LoadDefaultJobs loads the job store from the default path.
func LoadDefaultJobs() (model.JobStore, error) {
	path, err := DefaultJobsPath()
	if err != nil {
		return model.NewJobStore(), err
	}
	return LoadJobs(path)
}

// SaveDefaultJobs saves the job store to the default path.
func SaveDefaultJobs(store model.JobStore) error {
	path, err := DefaultJobsPath()
	if err != nil {
		return err
	}
	return SaveJobs(path, store)
}
