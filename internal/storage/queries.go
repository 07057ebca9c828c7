package storage

import (
	"fmt"

	"github.com/ferrand/go-mc-stats/internal/model"
)

// tableNames maps a board kind to its leaderboard table.
var tableNames = map[model.BoardKind]string{
	model.BoardStandard:  "standard_leaderboard",
	model.BoardShiny:     "shiny_leaderboard",
	model.BoardLegendary: "legendary_leaderboard",
}

// ReplaceLeaderboard clears the board's table and inserts the given rows, in
// one transaction. Every run fully replaces a board's contents.
func (db *DB) ReplaceLeaderboard(kind model.BoardKind, rows []model.LeaderboardRow, lastUpdated string) error {
	table, ok := tableNames[kind]
	if !ok {
		return fmt.Errorf("unknown leaderboard kind %q", kind)
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM " + table); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO " + table + "(rank, player_name, score, last_updated) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(r.Rank, r.Player, r.Score, lastUpdated); err != nil {
			return fmt.Errorf("insert %s row for %s: %w", table, r.Player, err)
		}
	}
	return tx.Commit()
}

// GetLeaderboard returns a board's stored rows ordered by rank, plus the
// last-updated stamp they were written with.
func (db *DB) GetLeaderboard(kind model.BoardKind) ([]model.LeaderboardRow, string, error) {
	table, ok := tableNames[kind]
	if !ok {
		return nil, "", fmt.Errorf("unknown leaderboard kind %q", kind)
	}

	rows, err := db.conn.Query(
		"SELECT rank, player_name, score, last_updated FROM " + table + " ORDER BY rank ASC")
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	var out []model.LeaderboardRow
	var lastUpdated string
	for rows.Next() {
		var r model.LeaderboardRow
		if err := rows.Scan(&r.Rank, &r.Player, &r.Score, &lastUpdated); err != nil {
			return nil, "", err
		}
		out = append(out, r)
	}
	return out, lastUpdated, rows.Err()
}
