// Package report renders leaderboards as console tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/ferrand/go-mc-stats/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintEntries prints a single-statistic leaderboard.
func PrintEntries(w io.Writer, path model.StatPath, entries []model.Entry) {
	fmt.Fprintf(w, "\nLeaderboard of %s:\n", path)
	table := newTable(w)
	table.Header("#", "PLAYER", "SCORE")
	for i, e := range entries {
		table.Append(
			strconv.Itoa(i+1),
			e.Player,
			strconv.FormatFloat(e.Score, 'f', -1, 64),
		)
	}
	table.Render()
}

// PrintLeaderboard prints a ranked categorical board under the given title.
func PrintLeaderboard(w io.Writer, title string, rows []model.LeaderboardRow) {
	fmt.Fprintf(w, "\n%s\n", title)
	table := newTable(w)
	table.Header("RANK", "PLAYER", "SCORE")
	for _, r := range rows {
		table.Append(
			strconv.Itoa(r.Rank),
			r.Player,
			strconv.Itoa(r.Score),
		)
	}
	table.Render()
}

// PrintBestWorst prints the per-statistic rank report for one player,
// best statistics first.
func PrintBestWorst(w io.Writer, username string, rows []model.BestWorstRow) {
	fmt.Fprintf(w, "\nBest and worst statistics for %s:\n", username)
	table := newTable(w)
	table.Header("STATISTIC", "RANK", "VALUE", "NON-ZERO PLAYERS")
	for _, r := range rows {
		table.Append(
			r.Path.String(),
			strconv.Itoa(r.Rank),
			strconv.FormatFloat(r.Value, 'f', -1, 64),
			strconv.Itoa(r.NonZero),
		)
	}
	table.Render()
}
