package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// PriceList maps material names to a per-unit price. Prices annotate the
// finished estimate; they are looked up by name so a list survives catalogue
// re-imports, whose IDs are regenerated.
type PriceList map[string]float64

// Lookup returns the price for a material name. It satisfies the estimator's
// price hook.
func (p PriceList) Lookup(materialName string) (float64, bool) {
	price, ok := p[materialName]
	return price, ok
}

// DefaultPricesPath returns the default file path for the price list.
func DefaultPricesPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".stairmason", "prices.json"), nil
}

// SavePrices saves a price list to a JSON file.
func SavePrices(path string, prices PriceList) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(prices, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPrices loads a price list from a JSON file.
// Returns an empty list if the file does not exist.
func LoadPrices(path string) (PriceList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return PriceList{}, nil
		}
		return nil, err
	}

	var prices PriceList
	if err := json.Unmarshal(data, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

// LoadDefaultPrices loads the price list from the default path.
func LoadDefaultPrices() (PriceList, error) {
	path, err := DefaultPricesPath()
	if err != nil {
		return nil, err
	}
	return LoadPrices(path)
}

// SaveDefaultPrices saves the price list to the default path.
func SaveDefaultPrices(prices PriceList) error {
	path, err := DefaultPricesPath()
	if err != nil {
		return err
	}
	return SavePrices(path, prices)
}
