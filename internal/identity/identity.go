// Package identity resolves opaque player UUIDs to display names using the
// server's usercache document.
package identity

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Map is a UUID → display-name lookup.
type Map map[string]string

type record struct {
	Name string `json:"name"`
	UUID string `json:"uuid"`
}

// Load reads a usercache-style JSON document: a list of {name, uuid} records.
func Load(r io.Reader) (Map, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode usercache: %w", err)
	}
	m := make(Map, len(records))
	for _, rec := range records {
		m[rec.UUID] = rec.Name
	}
	return m, nil
}

// LoadFile reads the usercache document at path.
func LoadFile(path string) (Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open usercache: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Resolve returns the display name for id. Unknown ids fall back to the id
// itself and never fail; the second return value tells the caller whether a
// mapping existed so it can emit a diagnostic.
func (m Map) Resolve(id string) (string, bool) {
	if name, ok := m[id]; ok {
		return name, true
	}
	return id, false
}
