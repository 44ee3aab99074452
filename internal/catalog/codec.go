// File codec for catalog documents: a JSON array of piece records,
// written atomically with the temp-file, fsync, rename pattern.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/brickforge/pab/pkg/types"
)

// LoadFile reads and parses a catalog document.
func LoadFile(path string) (*types.Catalog, error) {
	records, err := ReadRecords(path)
	if err != nil {
		return nil, err
	}
	cat, err := Build(records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// SaveFile renders the catalog and writes it as indented JSON.
func SaveFile(path string, cat *types.Catalog) error {
	return WriteRecords(path, Render(cat))
}

// ReadRecords reads the raw wire records of a catalog document.
func ReadRecords(path string) ([]PieceRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var records []PieceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}

// WriteRecords writes wire records as an indented JSON array, atomically.
func WriteRecords(path string, records []PieceRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".catalog-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing catalog: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
