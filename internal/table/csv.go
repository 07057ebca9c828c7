package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/ferrand/go-mc-stats/internal/model"
)

// WriteCSV caches the merged matrix at path: three path columns followed by
// one column per player, one row per statistic.
func WriteCSV(t *model.StatTable, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv cache: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append([]string{"section", "group", "key"}, t.Players...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, p := range t.Paths() {
		rec := []string{p.Section, p.Group, p.Key}
		for _, player := range t.Players {
			rec = append(rec, t.Cell(p, player).String())
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// ReadCSV loads a matrix previously cached by WriteCSV.
func ReadCSV(path string) (*model.StatTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv cache: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv cache: %w", err)
	}
	if len(records) == 0 || len(records[0]) < 3 {
		return nil, fmt.Errorf("csv cache %s: missing header", path)
	}

	t := model.NewStatTable()
	t.Players = append(t.Players, records[0][3:]...)
	for _, rec := range records[1:] {
		if len(rec) != len(records[0]) {
			return nil, fmt.Errorf("csv cache %s: ragged row", path)
		}
		p := model.StatPath{Section: rec[0], Group: rec[1], Key: rec[2]}
		row := make(map[string]model.Value, len(t.Players))
		for i, player := range t.Players {
			row[player] = decodeCell(rec[3+i])
		}
		t.Rows[p] = row
	}
	return t, nil
}

// decodeCell reverses Value.String. Numbers and the True/False spellings
// get their tags back; everything else stays text. An empty cell reads as
// the zero fill.
func decodeCell(s string) model.Value {
	switch s {
	case "":
		return model.Number(0)
	case "True":
		return model.Bool(true)
	case "False":
		return model.Bool(false)
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return model.Number(n)
	}
	return model.Text(s)
}
