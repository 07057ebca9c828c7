package model

import (
	"sort"
	"strconv"
	"strings"
)

// Kind discriminates the cell value union.
type Kind int

const (
	KindAbsent Kind = iota
	KindNumber
	KindBool
	KindText
)

// Value is one cell of the stat matrix. Raw stat documents mix numeric
// counters with status strings, boolean-ish flags, and timestamps, so cells
// carry an explicit tag instead of relying on runtime type switches at every
// comparison site.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
	Flag bool
}

func Number(f float64) Value { return Value{Kind: KindNumber, Num: f} }
func Bool(b bool) Value      { return Value{Kind: KindBool, Flag: b} }
func Text(s string) Value    { return Value{Kind: KindText, Str: s} }

// IsZero reports whether the cell is the numeric zero used to fill
// structurally absent cells.
func (v Value) IsZero() bool { return v.Kind == KindNumber && v.Num == 0 }

// IsTrue reports whether the cell is boolean true, accepting both the JSON
// bool and its textual serialization.
func (v Value) IsTrue() bool {
	switch v.Kind {
	case KindBool:
		return v.Flag
	case KindText:
		return strings.EqualFold(v.Str, "true")
	default:
		return false
	}
}

// EqualsText reports whether the cell is text equal to s.
func (v Value) EqualsText(s string) bool { return v.Kind == KindText && v.Str == s }

// Float returns the numeric value of the cell, or 0 for non-numeric cells.
func (v Value) Float() float64 {
	if v.Kind == KindNumber {
		return v.Num
	}
	return 0
}

func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBool:
		if v.Flag {
			return "True"
		}
		return "False"
	case KindText:
		return v.Str
	default:
		return ""
	}
}

// StatPath identifies one statistic as a dotted key of at most three
// segments. Deeper raw keys are canonicalized onto their 3-segment prefix by
// the loader. Unused trailing segments are empty.
type StatPath struct {
	Section string // top-level key, e.g. "stats" or a species name
	Group   string // middle key, e.g. "minecraft:custom" or a form name
	Key     string // leaf key, e.g. "minecraft:jump" or "status"
}

func (p StatPath) String() string {
	segs := make([]string, 0, 3)
	for _, s := range []string{p.Section, p.Group, p.Key} {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return strings.Join(segs, ".")
}

// PlayerStats is one player's flattened stat tree before merging.
type PlayerStats struct {
	Player string
	Stats  map[StatPath]Value
}

// StatTable is the merged statistic x player matrix. Row keys are the union
// of all players' stat paths; columns are player display names in load
// order. After the merge completes every (row, player) cell holds a concrete
// Value; structurally absent cells are numeric zero.
type StatTable struct {
	Players []string
	Rows    map[StatPath]map[string]Value
}

func NewStatTable() *StatTable {
	return &StatTable{Rows: make(map[StatPath]map[string]Value)}
}

func (t *StatTable) HasPlayer(name string) bool {
	for _, p := range t.Players {
		if p == name {
			return true
		}
	}
	return false
}

// Cell returns the value at (path, player). Missing cells read as absent.
func (t *StatTable) Cell(path StatPath, player string) Value {
	return t.Rows[path][player]
}

// Paths returns the row keys in a stable lexical order.
func (t *StatTable) Paths() []StatPath {
	paths := make([]StatPath, 0, len(t.Rows))
	for p := range t.Rows {
		paths = append(paths, p)
	}
	sort.Slice(paths, func(i, j int) bool {
		a, b := paths[i], paths[j]
		if a.Section != b.Section {
			return a.Section < b.Section
		}
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		return a.Key < b.Key
	})
	return paths
}

// Entry is one (player, score) pair of a single-statistic leaderboard,
// ordered by descending score.
type Entry struct {
	Player string
	Score  float64
}

// LeaderboardRow is one ranked entry of a categorical leaderboard, consumed
// by the console, SQLite, spreadsheet, and image sinks.
type LeaderboardRow struct {
	Rank   int
	Player string
	Score  int
}

// BestWorstRow describes how one statistic ranks for the report's target
// player.
type BestWorstRow struct {
	Path    StatPath
	Rank    int     // competition rank of the target player for this statistic
	Value   float64 // the target player's raw value
	NonZero int     // players with a non-zero value for this statistic
}

// BoardKind names one of the categorical leaderboards.
type BoardKind string

const (
	BoardStandard  BoardKind = "standard"
	BoardShiny     BoardKind = "shiny"
	BoardLegendary BoardKind = "legendary"
)
