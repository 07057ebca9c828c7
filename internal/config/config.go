// Package config loads and validates the run configuration from an ini file.
//
// Every recognized key is enumerated here; unknown sections or keys fail
// fast at load time instead of surfacing as a deep runtime lookup problem.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// Input selects where stat files are read from.
type Input struct {
	Mode      string // "manual" or "local"
	LocalPath string // server root for "local" mode
}

// Vanilla configures the single-statistic leaderboard feature.
type Vanilla struct {
	Enable      bool
	Category    string
	Subcategory string
	CreateCSV   bool
	CSVPath     string
}

// BestWorst configures the per-player best/worst report.
type BestWorst struct {
	Enable        bool
	Username      string
	Cleaning      bool
	CleaningValue int
}

// Matrix configures the CSV cache of the merged discovery matrix.
type Matrix struct {
	UseCSV    bool
	CreateCSV bool
	CSVPath   string
}

// Cobblemon configures the categorical leaderboards and their sinks.
type Cobblemon struct {
	TotalEnable  bool
	ShinyEnable  bool
	LegEnable    bool
	SQLiteOutput bool
	XLSXOutput   bool
	ImageOutput  bool
	DatabasePath string
	WorkbookPath string
	ImageDir     string
	SpeciesCSV   string
	ExcelRows    int
	ExcelColumns int
	LastUpdated  string // Go reference-time layout for the timestamp cells
	Subtitle     string
	IgnoreNames  []string
}

// Config is the parsed, validated run configuration.
type Config struct {
	Input     Input
	Vanilla   Vanilla
	BestWorst BestWorst
	Matrix    Matrix
	Cobblemon Cobblemon
}

var allowedKeys = map[string]map[string]bool{
	"INPUT": {
		"Mode": true, "LocalPath": true,
	},
	"VANILLALEADERBOARD": {
		"Enable": true, "Category": true, "Subcategory": true,
		"CreateCSV": true, "CSVPath": true,
	},
	"BESTANDWORST": {
		"Enable": true, "Username": true, "Cleaning": true, "CleaningValue": true,
	},
	"GLOBALMATRIX": {
		"UseCSV": true, "CreateCSV": true, "CSVPath": true,
	},
	"COBBLEMONLEADERBOARDS": {
		"TotalEnable": true, "ShinyEnable": true, "LegEnable": true,
		"SQLiteOutput": true, "XLSXOutput": true, "ImageOutput": true,
		"DatabasePath": true, "WorkbookPath": true, "ImageDir": true, "SpeciesCSV": true,
		"ExcelRows": true, "ExcelColumns": true,
		"LastUpdated": true, "Subtitle": true, "IgnoreNames": true,
	},
}

// Load reads, parses, and validates the configuration at path.
func Load(path string) (*Config, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := checkKeys(f); err != nil {
		return nil, err
	}

	p := &reader{file: f}
	cfg := &Config{
		Input: Input{
			Mode:      p.str("INPUT", "Mode", ""),
			LocalPath: p.str("INPUT", "LocalPath", ""),
		},
		Vanilla: Vanilla{
			Enable:      p.boolean("VANILLALEADERBOARD", "Enable", false),
			Category:    p.str("VANILLALEADERBOARD", "Category", ""),
			Subcategory: p.str("VANILLALEADERBOARD", "Subcategory", ""),
			CreateCSV:   p.boolean("VANILLALEADERBOARD", "CreateCSV", false),
			CSVPath:     p.str("VANILLALEADERBOARD", "CSVPath", "vanilla.csv"),
		},
		BestWorst: BestWorst{
			Enable:        p.boolean("BESTANDWORST", "Enable", false),
			Username:      p.str("BESTANDWORST", "Username", ""),
			Cleaning:      p.boolean("BESTANDWORST", "Cleaning", false),
			CleaningValue: p.integer("BESTANDWORST", "CleaningValue", 0),
		},
		Matrix: Matrix{
			UseCSV:    p.boolean("GLOBALMATRIX", "UseCSV", false),
			CreateCSV: p.boolean("GLOBALMATRIX", "CreateCSV", false),
			CSVPath:   p.str("GLOBALMATRIX", "CSVPath", "cobblemon.csv"),
		},
		Cobblemon: Cobblemon{
			TotalEnable:  p.boolean("COBBLEMONLEADERBOARDS", "TotalEnable", false),
			ShinyEnable:  p.boolean("COBBLEMONLEADERBOARDS", "ShinyEnable", false),
			LegEnable:    p.boolean("COBBLEMONLEADERBOARDS", "LegEnable", false),
			SQLiteOutput: p.boolean("COBBLEMONLEADERBOARDS", "SQLiteOutput", false),
			XLSXOutput:   p.boolean("COBBLEMONLEADERBOARDS", "XLSXOutput", false),
			ImageOutput:  p.boolean("COBBLEMONLEADERBOARDS", "ImageOutput", false),
			DatabasePath: p.str("COBBLEMONLEADERBOARDS", "DatabasePath", "scoreboard.db"),
			WorkbookPath: p.str("COBBLEMONLEADERBOARDS", "WorkbookPath", "output.xlsx"),
			ImageDir:     p.str("COBBLEMONLEADERBOARDS", "ImageDir", "images"),
			SpeciesCSV:   p.str("COBBLEMONLEADERBOARDS", "SpeciesCSV", "Pokemon.csv"),
			ExcelRows:    p.integer("COBBLEMONLEADERBOARDS", "ExcelRows", 0),
			ExcelColumns: p.integer("COBBLEMONLEADERBOARDS", "ExcelColumns", 0),
			LastUpdated:  p.str("COBBLEMONLEADERBOARDS", "LastUpdated", "02/01/2006 15:04"),
			Subtitle:     p.str("COBBLEMONLEADERBOARDS", "Subtitle", ""),
			IgnoreNames:  splitNames(p.str("COBBLEMONLEADERBOARDS", "IgnoreNames", "")),
		},
	}
	if p.err != nil {
		return nil, p.err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Input.Mode {
	case "manual":
	case "local":
		if c.Input.LocalPath == "" {
			return fmt.Errorf("input mode %q requires LocalPath", c.Input.Mode)
		}
	default:
		return fmt.Errorf("unsupported input mode %q: only \"manual\" and \"local\" are supported", c.Input.Mode)
	}
	if c.BestWorst.CleaningValue < 0 {
		return fmt.Errorf("CleaningValue must not be negative")
	}
	if c.Cobblemon.XLSXOutput && (c.Cobblemon.ExcelRows <= 0 || c.Cobblemon.ExcelColumns <= 0) {
		return fmt.Errorf("XLSX output requires positive ExcelRows and ExcelColumns")
	}
	// legacy configs spell an unset username as the literal "null"
	if c.BestWorst.Username == "null" {
		c.BestWorst.Username = ""
	}
	return nil
}

// UsercachePath resolves the identity map location for the input mode.
func (c *Config) UsercachePath() string {
	if c.Input.Mode == "local" {
		return filepath.Join(c.Input.LocalPath, "usercache.json")
	}
	return filepath.Join("data", "usercache", "usercache.json")
}

// StatsDir resolves the vanilla stats directory for the input mode.
func (c *Config) StatsDir() string {
	if c.Input.Mode == "local" {
		return filepath.Join(c.Input.LocalPath, "world", "stats")
	}
	return filepath.Join("data", "stats")
}

// CobblemonDir resolves the Cobblemon player-data directory for the input mode.
func (c *Config) CobblemonDir() string {
	if c.Input.Mode == "local" {
		return filepath.Join(c.Input.LocalPath, "world", "cobblemonplayerdata")
	}
	return filepath.Join("data", "cobblemonplayerdata")
}

func checkKeys(f *ini.File) error {
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection {
			if len(sec.KeyStrings()) > 0 {
				return fmt.Errorf("config keys outside any section: %s", strings.Join(sec.KeyStrings(), ", "))
			}
			continue
		}
		known, ok := allowedKeys[sec.Name()]
		if !ok {
			return fmt.Errorf("unknown config section [%s]", sec.Name())
		}
		for _, key := range sec.KeyStrings() {
			if !known[key] {
				return fmt.Errorf("unknown config key %s in [%s]", key, sec.Name())
			}
		}
	}
	return nil
}

// reader pulls typed values out of the ini file, remembering the first
// conversion error.
type reader struct {
	file *ini.File
	err  error
}

func (r *reader) str(section, key, def string) string {
	sec := r.file.Section(section)
	if !sec.HasKey(key) {
		return def
	}
	return sec.Key(key).String()
}

func (r *reader) boolean(section, key string, def bool) bool {
	sec := r.file.Section(section)
	if !sec.HasKey(key) {
		return def
	}
	v, err := sec.Key(key).Bool()
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("config key %s in [%s]: %w", key, section, err)
	}
	return v
}

func (r *reader) integer(section, key string, def int) int {
	sec := r.file.Section(section)
	if !sec.HasKey(key) {
		return def
	}
	v, err := sec.Key(key).Int()
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("config key %s in [%s]: %w", key, section, err)
	}
	return v
}

func splitNames(raw string) []string {
	var names []string
	for _, name := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}
