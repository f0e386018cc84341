package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/StairMason/internal/model"
)

// DefaultCataloguePath returns the default file path for the material
// catalogue file. This is located at ~/.stairmason/materials.json.
func DefaultCataloguePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".stairmason", "materials.json"), nil
}

// SaveCatalogue writes the material catalogue to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveCatalogue(path string, materials []model.MaterialOption) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(materials, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCatalogue reads the material catalogue from the specified JSON file.
// If the file does not exist, it returns the built-in catalogue and saves it.
func LoadCatalogue(path string) ([]model.MaterialOption, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			materials := model.DefaultMaterials()
			if saveErr := SaveCatalogue(path, materials); saveErr != nil {
				return materials, saveErr
			}
			return materials, nil
		}
		return nil, err
	}
	var materials []model.MaterialOption
	if err := json.Unmarshal(data, &materials); err != nil {
		return nil, err
	}
	return materials, nil
}

// LoadOrCreateCatalogue loads the catalogue from the default path.
// If the file does not exist, it creates one with the built-in units.
func LoadOrCreateCatalogue() ([]model.MaterialOption, string, error) {
	path, err := DefaultCataloguePath()
	if err != nil {
		return model.DefaultMaterials(), "", err
	}
	materials, err := LoadCatalogue(path)
	return materials, path, err
}

// ExportCatalogue exports the catalogue to a user-specified JSON file.
func ExportCatalogue(path string, materials []model.MaterialOption) error {
	return SaveCatalogue(path, materials)
}

// ImportCatalogue imports a catalogue from a user-specified JSON file,
// merging it with the existing one. Units whose name is already present
// are skipped; imported units keep their stored dimensions but get fresh
// IDs so they never collide with the current session's.
func ImportCatalogue(path string, existing []model.MaterialOption) ([]model.MaterialOption, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported []model.MaterialOption
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}

	names := make(map[string]bool, len(existing))
	for _, m := range existing {
		names[m.Name] = true
	}

	for _, m := range imported {
		if names[m.Name] {
			continue
		}
		existing = append(existing, model.NewMaterialOption(m.Name, m.Kind, m.CourseHeight, m.Width, m.Length))
		names[m.Name] = true
	}
	return existing, nil
}
