package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ferrand/go-mc-stats/internal/config"
	"github.com/ferrand/go-mc-stats/internal/model"
	"github.com/ferrand/go-mc-stats/internal/report"
	"github.com/ferrand/go-mc-stats/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the leaderboards stored in the scoreboard database",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func runShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := storage.Open(cfg.Cobblemon.DatabasePath)
	if err != nil {
		return fmt.Errorf("open scoreboard db: %w", err)
	}
	defer db.Close()

	kinds := []struct {
		kind  model.BoardKind
		title string
	}{
		{model.BoardStandard, "Standard leaderboard"},
		{model.BoardShiny, "Shiny leaderboard"},
		{model.BoardLegendary, "Legendary leaderboard"},
	}

	for _, k := range kinds {
		rows, lastUpdated, err := db.GetLeaderboard(k.kind)
		if err != nil {
			return fmt.Errorf("query %s leaderboard: %w", k.kind, err)
		}
		if len(rows) == 0 {
			continue
		}
		report.PrintLeaderboard(os.Stdout, fmt.Sprintf("%s (updated %s)", k.title, lastUpdated), rows)
	}
	return nil
}
