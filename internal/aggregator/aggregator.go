// Package aggregator computes ranked leaderboards from a merged stat table.
//
// All operations are pure reads: they never mutate the table, so one
// feature's filtering cannot leak into another's.
package aggregator

import (
	"fmt"
	"sort"

	"github.com/ferrand/go-mc-stats/internal/model"
)

// StatusCaught is the discovery-register marker meaning a species was caught.
const StatusCaught = "CAUGHT"

// Timestamp and flag rows carry per-entry metadata, not countable catches.
var nonCountKeys = map[string]bool{
	"caughtTimestamp":     true,
	"discoveredTimestamp": true,
	"isShiny":             true,
}

// Leaderboard returns the players of one statistic sorted by descending
// score. It fails with model.ErrStatNotFound when path is not a row of the
// table.
func Leaderboard(t *model.StatTable, path model.StatPath) ([]model.Entry, error) {
	row, ok := t.Rows[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrStatNotFound, path)
	}
	entries := make([]model.Entry, 0, len(t.Players))
	for _, p := range t.Players {
		entries = append(entries, model.Entry{Player: p, Score: row[p].Float()})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries, nil
}

// BestAndWorst reports, per statistic, the competition rank the named player
// holds across all players, sorted by the player's raw value descending.
//
// With clean set, statistics where fewer than cleanThreshold players have a
// non-zero value are dropped before ranking. Ranking is standard competition
// ranking ("min"): tied players share the lower rank number and the next
// distinct value skips ahead.
func BestAndWorst(t *model.StatTable, username string, clean bool, cleanThreshold int) ([]model.BestWorstRow, error) {
	if username == "" || !t.HasPlayer(username) {
		return nil, &model.UserNotFoundError{
			Username:  username,
			Available: append([]string(nil), t.Players...),
		}
	}

	var out []model.BestWorstRow
	for _, path := range t.Paths() {
		row := t.Rows[path]
		nonZero := 0
		for _, p := range t.Players {
			if !row[p].IsZero() {
				nonZero++
			}
		}
		if clean && nonZero < cleanThreshold {
			continue
		}
		val := row[username].Float()
		rank := 1
		for _, p := range t.Players {
			if row[p].Float() > val {
				rank++
			}
		}
		out = append(out, model.BestWorstRow{Path: path, Rank: rank, Value: val, NonZero: nonZero})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out, nil
}

// CaughtBoard ranks players by how many discovery entries they have marked
// caught. Timestamp and shiny-flag rows are not countable and are skipped.
func CaughtBoard(t *model.StatTable, ignore []string) []model.LeaderboardRow {
	scores := make(map[string]int, len(t.Players))
	for path, row := range t.Rows {
		if nonCountKeys[path.Key] {
			continue
		}
		for _, p := range t.Players {
			if row[p].EqualsText(StatusCaught) {
				scores[p]++
			}
		}
	}
	return rankDescending(t.Players, scores, ignore)
}

// ShinyBoard ranks players by how many cells across the full matrix are
// boolean true, counting both the JSON bool and its text spelling.
func ShinyBoard(t *model.StatTable, ignore []string) []model.LeaderboardRow {
	scores := make(map[string]int, len(t.Players))
	for _, row := range t.Rows {
		for _, p := range t.Players {
			if row[p].IsTrue() {
				scores[p]++
			}
		}
	}
	return rankDescending(t.Players, scores, ignore)
}

// LegendaryBoard ranks players by caught species restricted to the supplied
// legendary set. Rows for the same species collapse to one entry per
// species: if any of its sub-entries is marked caught, the species counts as
// caught for that player.
func LegendaryBoard(t *model.StatTable, legendaries map[string]bool, ignore []string) []model.LeaderboardRow {
	caught := make(map[string]map[string]bool) // species → player → caught
	for path, row := range t.Rows {
		if !legendaries[path.Section] || nonCountKeys[path.Key] {
			continue
		}
		byPlayer := caught[path.Section]
		if byPlayer == nil {
			byPlayer = make(map[string]bool, len(t.Players))
			caught[path.Section] = byPlayer
		}
		for _, p := range t.Players {
			if row[p].EqualsText(StatusCaught) {
				byPlayer[p] = true
			}
		}
	}

	scores := make(map[string]int, len(t.Players))
	for _, byPlayer := range caught {
		for p, ok := range byPlayer {
			if ok {
				scores[p]++
			}
		}
	}
	return rankDescending(t.Players, scores, ignore)
}

// rankDescending orders players ascending by score (stable in column
// order), assigns dense ranks N down to 1, reverses to descending, then
// removes ignored players. Removal happens after rank assignment, so an
// ignored player leaves a gap rather than promoting everyone below.
func rankDescending(players []string, scores map[string]int, ignore []string) []model.LeaderboardRow {
	ordered := append([]string(nil), players...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return scores[ordered[i]] < scores[ordered[j]]
	})

	ignored := make(map[string]bool, len(ignore))
	for _, name := range ignore {
		ignored[name] = true
	}

	rows := make([]model.LeaderboardRow, 0, len(ordered))
	for i := len(ordered) - 1; i >= 0; i-- {
		p := ordered[i]
		if ignored[p] {
			continue
		}
		rows = append(rows, model.LeaderboardRow{
			Rank:   len(ordered) - i,
			Player: p,
			Score:  scores[p],
		})
	}
	return rows
}
