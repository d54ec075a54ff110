// Package seed loads item manifests into the catalog through the store
// contract. Manifests are YAML files of the form:
//
//	items:
//	  - name: Potion
//	    description: Restores a small amount of HP
//	    price: 5
//
// Loading is idempotent by item name: names already present in the store
// are skipped, so watch-triggered reloads converge.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"catalog-in-go/pkg/server/store"
)

// Manifest is the parsed seed file
type Manifest struct {
	Items []ManifestItem `yaml:"items"`
}

// ManifestItem is one item entry in a seed file
type ManifestItem struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Price       float64 `yaml:"price"`
}

// LoadResult summarizes a load run
type LoadResult struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	IDs     []string `json:"ids"`
}

// Loader writes manifest items through the ItemsStore contract
type Loader struct {
	items store.ItemsStore
}

// NewLoader creates a new Loader
func NewLoader(items store.ItemsStore) *Loader {
	return &Loader{items: items}
}

// LoadFile loads a manifest from disk
func (l *Loader) LoadFile(ctx context.Context, filename string) (*LoadResult, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return l.LoadFromReader(ctx, file)
}

// LoadFromReader parses a manifest and creates its items, skipping names
// that already exist in the store.
func (l *Loader) LoadFromReader(ctx context.Context, r io.Reader) (*LoadResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed manifest: %w", err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse seed manifest: %w", err)
	}

	existing, err := l.items.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(existing))
	for _, item := range existing {
		known[item.Name] = true
	}

	result := &LoadResult{}
	for _, entry := range manifest.Items {
		if known[entry.Name] {
			result.Skipped++
			continue
		}

		item, err := l.items.CreateItem(ctx, entry.Name, entry.Description, entry.Price)
		if err != nil {
			return nil, fmt.Errorf("failed to create item %q: %w", entry.Name, err)
		}

		known[entry.Name] = true
		result.Created++
		result.IDs = append(result.IDs, item.ID)
	}

	return result, nil
}
