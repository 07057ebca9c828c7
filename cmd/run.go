package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ferrand/go-mc-stats/internal/aggregator"
	"github.com/ferrand/go-mc-stats/internal/config"
	"github.com/ferrand/go-mc-stats/internal/identity"
	"github.com/ferrand/go-mc-stats/internal/loader"
	"github.com/ferrand/go-mc-stats/internal/model"
	"github.com/ferrand/go-mc-stats/internal/render"
	"github.com/ferrand/go-mc-stats/internal/report"
	"github.com/ferrand/go-mc-stats/internal/sheet"
	"github.com/ferrand/go-mc-stats/internal/species"
	"github.com/ferrand/go-mc-stats/internal/storage"
	"github.com/ferrand/go-mc-stats/internal/table"
)

// board couples one categorical leaderboard with its output identity.
type board struct {
	kind    model.BoardKind
	enabled bool
	title   string
	image   string
	compute func() []model.LeaderboardRow
}

func runRun(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	needVanilla := cfg.Vanilla.Enable || cfg.BestWorst.Enable
	needCobblemon := cfg.Cobblemon.TotalEnable || cfg.Cobblemon.ShinyEnable || cfg.Cobblemon.LegEnable

	var db *storage.DB
	if cfg.Cobblemon.SQLiteOutput {
		db, err = storage.Open(cfg.Cobblemon.DatabasePath)
		if err != nil {
			return fmt.Errorf("open scoreboard db: %w", err)
		}
		defer db.Close()
	}

	var names identity.Map
	if needVanilla || (needCobblemon && !cfg.Matrix.UseCSV) {
		names, err = identity.LoadFile(cfg.UsercachePath())
		if err != nil {
			return err
		}
	}

	var vanilla *model.StatTable
	if needVanilla {
		log.Infow("loading vanilla data", "dir", cfg.StatsDir())
		players, err := loader.LoadVanillaDir(cfg.StatsDir(), names, log)
		if err != nil {
			return err
		}
		vanilla = table.Merge(players)
		if cfg.Vanilla.CreateCSV {
			if err := table.WriteCSV(vanilla, cfg.Vanilla.CSVPath); err != nil {
				return err
			}
		}
	}

	var cobblemon *model.StatTable
	if needCobblemon {
		if cfg.Matrix.UseCSV {
			log.Infow("loading cobblemon data from csv cache", "path", cfg.Matrix.CSVPath)
			cobblemon, err = table.ReadCSV(cfg.Matrix.CSVPath)
			if err != nil {
				return err
			}
		} else {
			log.Infow("loading cobblemon data", "dir", cfg.CobblemonDir())
			players, err := loader.LoadCobblemonDir(cfg.CobblemonDir(), names, log)
			if err != nil {
				return err
			}
			cobblemon = table.Merge(players)
			if cfg.Matrix.CreateCSV {
				if err := table.WriteCSV(cobblemon, cfg.Matrix.CSVPath); err != nil {
					return err
				}
			}
		}
	}

	// A bad category or username only loses that feature, not the run.
	if cfg.Vanilla.Enable {
		path := model.StatPath{Section: "stats", Group: cfg.Vanilla.Category, Key: cfg.Vanilla.Subcategory}
		entries, err := aggregator.Leaderboard(vanilla, path)
		if err != nil {
			log.Errorw("vanilla leaderboard skipped", "error", err)
		} else {
			report.PrintEntries(os.Stdout, path, entries)
		}
	}

	if cfg.BestWorst.Enable {
		rows, err := aggregator.BestAndWorst(vanilla, cfg.BestWorst.Username,
			cfg.BestWorst.Cleaning, cfg.BestWorst.CleaningValue)
		var notFound *model.UserNotFoundError
		switch {
		case errors.As(err, &notFound):
			log.Errorw("best-and-worst skipped", "error", err)
		case err != nil:
			return err
		default:
			report.PrintBestWorst(os.Stdout, cfg.BestWorst.Username, rows)
		}
	}

	if needCobblemon {
		if err := runBoards(cfg, db, cobblemon, log); err != nil {
			return err
		}
	}

	log.Infow("done")
	return nil
}

func runBoards(cfg *config.Config, db *storage.DB, t *model.StatTable, log *zap.SugaredLogger) error {
	var legendaries map[string]bool
	if cfg.Cobblemon.LegEnable {
		var err error
		legendaries, err = species.LoadLegendary(cfg.Cobblemon.SpeciesCSV)
		if err != nil {
			return err
		}
	}

	ignore := cfg.Cobblemon.IgnoreNames
	boards := []board{
		{
			kind:    model.BoardStandard,
			enabled: cfg.Cobblemon.TotalEnable,
			title:   "Qui a attrapé le plus de Pokémon ?",
			image:   "classement_pokemon_total.png",
			compute: func() []model.LeaderboardRow { return aggregator.CaughtBoard(t, ignore) },
		},
		{
			kind:    model.BoardShiny,
			enabled: cfg.Cobblemon.ShinyEnable,
			title:   "Qui a attrapé le plus de Pokémon Shiny ?",
			image:   "classement_pokemon_shiny.png",
			compute: func() []model.LeaderboardRow { return aggregator.ShinyBoard(t, ignore) },
		},
		{
			kind:    model.BoardLegendary,
			enabled: cfg.Cobblemon.LegEnable,
			title:   "Qui a attrapé le plus de Pokémon Légendaires ?",
			image:   "classement_pokemon_legendaire.png",
			compute: func() []model.LeaderboardRow { return aggregator.LegendaryBoard(t, legendaries, ignore) },
		},
	}

	now := time.Now().Format(cfg.Cobblemon.LastUpdated)
	layout := sheet.Layout{Rows: cfg.Cobblemon.ExcelRows, Columns: cfg.Cobblemon.ExcelColumns}

	for _, b := range boards {
		if !b.enabled {
			continue
		}
		rows := b.compute()
		report.PrintLeaderboard(os.Stdout, b.title, rows)

		if cfg.Cobblemon.SQLiteOutput && db != nil {
			if err := db.ReplaceLeaderboard(b.kind, rows, now); err != nil {
				return fmt.Errorf("update %s leaderboard: %w", b.kind, err)
			}
		}
		if cfg.Cobblemon.XLSXOutput {
			if err := sheet.WriteLeaderboard(cfg.Cobblemon.WorkbookPath, b.kind, rows, layout, now, cfg.Cobblemon.Subtitle); err != nil {
				return fmt.Errorf("update %s worksheet: %w", b.kind, err)
			}
		}
		if cfg.Cobblemon.ImageOutput {
			if err := os.MkdirAll(cfg.Cobblemon.ImageDir, 0755); err != nil {
				return fmt.Errorf("create image dir: %w", err)
			}
			out := filepath.Join(cfg.Cobblemon.ImageDir, b.image)
			if err := render.WriteImage(out, b.title, now, rows); err != nil {
				return fmt.Errorf("render %s leaderboard: %w", b.kind, err)
			}
			log.Infow("leaderboard image saved", "path", out)
		}
	}
	return nil
}
