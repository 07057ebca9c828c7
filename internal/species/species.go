// Package species reads the external class-membership reference table.
package species

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// LoadLegendary reads the species CSV at path and returns the set of species
// names flagged legendary. Columns are addressed by header name so the
// reference table can carry extra columns in any order.
func LoadLegendary(path string) (map[string]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open species csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read species csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("species csv %s: empty", path)
	}

	nameCol, legCol := -1, -1
	for i, col := range records[0] {
		switch col {
		case "Cobblemon":
			nameCol = i
		case "Legendary":
			legCol = i
		}
	}
	if nameCol < 0 || legCol < 0 {
		return nil, fmt.Errorf("species csv %s: missing Cobblemon or Legendary column", path)
	}

	legendaries := make(map[string]bool)
	for _, rec := range records[1:] {
		if len(rec) <= nameCol || len(rec) <= legCol {
			continue
		}
		if strings.EqualFold(rec[legCol], "true") {
			legendaries[rec[nameCol]] = true
		}
	}
	return legendaries, nil
}
