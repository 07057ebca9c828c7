package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const fullConfig = `[INPUT]
Mode = local
LocalPath = /srv/minecraft

[VANILLALEADERBOARD]
Enable = true
Category = minecraft:custom
Subcategory = minecraft:jump
CreateCSV = false

[BESTANDWORST]
Enable = true
Username = Steve
Cleaning = true
CleaningValue = 3

[GLOBALMATRIX]
UseCSV = false
CreateCSV = true
CSVPath = cache.csv

[COBBLEMONLEADERBOARDS]
TotalEnable = true
ShinyEnable = true
LegEnable = true
SQLiteOutput = true
XLSXOutput = true
ImageOutput = false
DatabasePath = scores.db
WorkbookPath = board.xlsx
ExcelRows = 15
ExcelColumns = 3
Subtitle = season 4
IgnoreNames = Admin, Bot ,
`

func TestLoadFull(t *testing.T) {
	cfg, err := Load(writeConfig(t, fullConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Input.Mode != "local" || cfg.Input.LocalPath != "/srv/minecraft" {
		t.Errorf("input = %+v", cfg.Input)
	}
	if !cfg.Vanilla.Enable || cfg.Vanilla.Subcategory != "minecraft:jump" {
		t.Errorf("vanilla = %+v", cfg.Vanilla)
	}
	if cfg.BestWorst.Username != "Steve" || cfg.BestWorst.CleaningValue != 3 {
		t.Errorf("bestworst = %+v", cfg.BestWorst)
	}
	if cfg.Matrix.CSVPath != "cache.csv" {
		t.Errorf("matrix = %+v", cfg.Matrix)
	}
	if cfg.Cobblemon.ExcelRows != 15 || cfg.Cobblemon.DatabasePath != "scores.db" {
		t.Errorf("cobblemon = %+v", cfg.Cobblemon)
	}
	if len(cfg.Cobblemon.IgnoreNames) != 2 ||
		cfg.Cobblemon.IgnoreNames[0] != "Admin" || cfg.Cobblemon.IgnoreNames[1] != "Bot" {
		t.Errorf("IgnoreNames = %v", cfg.Cobblemon.IgnoreNames)
	}
	// defaults fill in for keys the file omits
	if cfg.Cobblemon.SpeciesCSV != "Pokemon.csv" {
		t.Errorf("SpeciesCSV default = %q", cfg.Cobblemon.SpeciesCSV)
	}
	if cfg.Cobblemon.LastUpdated != "02/01/2006 15:04" {
		t.Errorf("LastUpdated default = %q", cfg.Cobblemon.LastUpdated)
	}
}

func TestLoadUnsupportedMode(t *testing.T) {
	_, err := Load(writeConfig(t, "[INPUT]\nMode = ftp\n"))
	if err == nil || !strings.Contains(err.Error(), "unsupported input mode") {
		t.Errorf("err = %v", err)
	}
}

func TestLoadLocalModeRequiresPath(t *testing.T) {
	_, err := Load(writeConfig(t, "[INPUT]\nMode = local\n"))
	if err == nil || !strings.Contains(err.Error(), "LocalPath") {
		t.Errorf("err = %v", err)
	}
}

func TestLoadUnknownSection(t *testing.T) {
	_, err := Load(writeConfig(t, "[INPUT]\nMode = manual\n\n[TYPO]\nFoo = 1\n"))
	if err == nil || !strings.Contains(err.Error(), "unknown config section") {
		t.Errorf("err = %v", err)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	_, err := Load(writeConfig(t, "[INPUT]\nMode = manual\nModus = manual\n"))
	if err == nil || !strings.Contains(err.Error(), "unknown config key") {
		t.Errorf("err = %v", err)
	}
}

func TestLoadBadInteger(t *testing.T) {
	_, err := Load(writeConfig(t, "[INPUT]\nMode = manual\n\n[BESTANDWORST]\nCleaningValue = three\n"))
	if err == nil {
		t.Error("expected error for non-integer CleaningValue")
	}
}

func TestLoadXLSXNeedsGrid(t *testing.T) {
	cfgText := "[INPUT]\nMode = manual\n\n[COBBLEMONLEADERBOARDS]\nXLSXOutput = true\n"
	if _, err := Load(writeConfig(t, cfgText)); err == nil {
		t.Error("expected error when XLSX output has no grid dimensions")
	}
}

func TestLoadNullUsernameMeansUnset(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[INPUT]\nMode = manual\n\n[BESTANDWORST]\nUsername = null\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BestWorst.Username != "" {
		t.Errorf("Username = %q, want empty", cfg.BestWorst.Username)
	}
}

func TestPathHelpers(t *testing.T) {
	local := &Config{Input: Input{Mode: "local", LocalPath: "/srv/mc"}}
	if got := local.StatsDir(); got != filepath.Join("/srv/mc", "world", "stats") {
		t.Errorf("StatsDir = %q", got)
	}
	if got := local.UsercachePath(); got != filepath.Join("/srv/mc", "usercache.json") {
		t.Errorf("UsercachePath = %q", got)
	}

	manual := &Config{Input: Input{Mode: "manual"}}
	if got := manual.CobblemonDir(); got != filepath.Join("data", "cobblemonplayerdata") {
		t.Errorf("CobblemonDir = %q", got)
	}
}
