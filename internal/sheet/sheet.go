// Package sheet writes ranked leaderboards into a pre-existing templated
// workbook at fixed coordinates.
package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ferrand/go-mc-stats/internal/model"
)

// sheetNames maps a board kind to its tab in the workbook template.
var sheetNames = map[model.BoardKind]string{
	model.BoardStandard:  "leaderboard2",
	model.BoardShiny:     "leaderboard3",
	model.BoardLegendary: "leaderboard4",
}

// Layout is the configured grid geometry of a leaderboard tab: entries fill
// Rows slots per column block, up to Columns blocks of three cells each.
type Layout struct {
	Rows    int
	Columns int
}

// WriteLeaderboard writes the ranked rows into the board's tab, stamps the
// timestamp and subtitle cells below the grid, and saves the workbook in
// place. Entries beyond the grid capacity are dropped. The position cell
// holds the visual position within the sheet, not the engine rank, so the
// template never shows gaps.
func WriteLeaderboard(path string, kind model.BoardKind, rows []model.LeaderboardRow, layout Layout, lastUpdated, subtitle string) error {
	name, ok := sheetNames[kind]
	if !ok {
		return fmt.Errorf("unknown leaderboard kind %q", kind)
	}

	wb, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	capacity := layout.Rows * layout.Columns
	for i, r := range rows {
		if i >= capacity {
			break
		}
		rowN := i%layout.Rows + 3
		base := 2 + (i/layout.Rows)*3
		if err := setCell(wb, name, base, rowN, fmt.Sprintf("%d.", i+1)); err != nil {
			return err
		}
		if err := setCell(wb, name, base+1, rowN, r.Player); err != nil {
			return err
		}
		if err := setCell(wb, name, base+2, rowN, r.Score); err != nil {
			return err
		}
	}

	if err := setCell(wb, name, 2, layout.Rows+3, lastUpdated); err != nil {
		return err
	}
	if err := setCell(wb, name, 2, layout.Rows+4, subtitle); err != nil {
		return err
	}

	if err := wb.Save(); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func setCell(wb *excelize.File, sheet string, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := wb.SetCellValue(sheet, cell, v); err != nil {
		return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
	}
	return nil
}
