// Package table merges per-player flattened stat trees into one
// statistic x player matrix.
package table

import (
	"github.com/ferrand/go-mc-stats/internal/model"
)

// Merge outer-joins the players' stat trees on statistic path and fills
// every structurally absent cell with numeric zero. The fill happens only
// after all inputs are merged; filling earlier would freeze an incomplete
// union of row keys. Cell values are independent of input order.
func Merge(players []model.PlayerStats) *model.StatTable {
	t := model.NewStatTable()
	for _, p := range players {
		t.Players = append(t.Players, p.Player)
		for path, v := range p.Stats {
			row := t.Rows[path]
			if row == nil {
				row = make(map[string]model.Value, len(players))
				t.Rows[path] = row
			}
			row[p.Player] = v
		}
	}
	fill(t)
	return t
}

func fill(t *model.StatTable) {
	for _, row := range t.Rows {
		for _, p := range t.Players {
			if _, ok := row[p]; !ok {
				row[p] = model.Number(0)
			}
		}
	}
}
