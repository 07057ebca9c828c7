// Package loader reads raw per-player stat documents and flattens their
// nested key trees into path-keyed stat sets.
//
// Two document shapes are supported: vanilla stat files (numeric counters
// under a "stats" root) and Cobblemon player-data files (categorical
// discovery records under extraData.cobbledex_discovery.registers).
package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ferrand/go-mc-stats/internal/identity"
	"github.com/ferrand/go-mc-stats/internal/model"
)

// FormatError reports a per-player document that could not be parsed or had
// an unexpected shape. One bad file invalidates trust in the whole dataset,
// so callers abort the run rather than skip the file.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed stat document %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// maxDepth is the canonical depth of a statistic path. Raw keys that contain
// dots of their own flatten deeper than this; such leaves collapse onto their
// 3-segment prefix and their numeric values are summed.
const maxDepth = 3

// ParseVanilla reads one vanilla stats document for the named player and
// flattens everything under its "stats" root. All leaves must be numeric.
func ParseVanilla(player string, r io.Reader) (model.PlayerStats, error) {
	var doc map[string]any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return model.PlayerStats{}, fmt.Errorf("decode: %w", err)
	}
	root, ok := doc["stats"].(map[string]any)
	if !ok {
		return model.PlayerStats{}, fmt.Errorf(`missing "stats" root`)
	}
	stats := make(map[model.StatPath]model.Value)
	if err := flatten(root, []string{"stats"}, true, stats); err != nil {
		return model.PlayerStats{}, err
	}
	return model.PlayerStats{Player: player, Stats: stats}, nil
}

// ParseCobblemon reads one Cobblemon player-data document for the named
// player and flattens its cobbledex discovery registers. Discovery records
// hold status strings, shiny flags, and timestamps; categorical leaves are
// preserved as-is. A document with empty registers yields an empty stat set,
// and the player still becomes a column of the merged table.
func ParseCobblemon(player string, r io.Reader) (model.PlayerStats, error) {
	var doc map[string]any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return model.PlayerStats{}, fmt.Errorf("decode: %w", err)
	}
	regs, err := discoveryRegisters(doc)
	if err != nil {
		return model.PlayerStats{}, err
	}
	stats := make(map[model.StatPath]model.Value)
	if err := flatten(regs, nil, false, stats); err != nil {
		return model.PlayerStats{}, err
	}
	return model.PlayerStats{Player: player, Stats: stats}, nil
}

func discoveryRegisters(doc map[string]any) (map[string]any, error) {
	extra, ok := doc["extraData"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf(`missing "extraData" root`)
	}
	dex, ok := extra["cobbledex_discovery"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf(`missing "cobbledex_discovery" entry`)
	}
	regs, ok := dex["registers"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf(`missing "registers" mapping`)
	}
	return regs, nil
}

// flatten walks the nested node with an explicit stack and records each leaf
// under its ≤3-segment path. numericOnly rejects non-numeric leaves (vanilla
// stat files carry counters exclusively).
func flatten(root map[string]any, prefix []string, numericOnly bool, out map[model.StatPath]model.Value) error {
	type frame struct {
		prefix []string
		node   map[string]any
	}
	stack := []frame{{prefix: prefix, node: root}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for key, raw := range fr.node {
			// key names may themselves contain dots; they split into extra
			// path segments exactly as if they were nested
			segs := append(append([]string(nil), fr.prefix...), strings.Split(key, ".")...)
			if child, ok := raw.(map[string]any); ok {
				stack = append(stack, frame{prefix: segs, node: child})
				continue
			}
			val, err := leafValue(raw, numericOnly)
			if err != nil {
				return fmt.Errorf("%s: %w", strings.Join(segs, "."), err)
			}
			if val.Kind == model.KindAbsent {
				continue
			}
			if err := record(out, segs, val); err != nil {
				return err
			}
		}
	}
	return nil
}

func leafValue(raw any, numericOnly bool) (model.Value, error) {
	switch v := raw.(type) {
	case float64:
		return model.Number(v), nil
	case bool:
		if numericOnly {
			return model.Value{}, fmt.Errorf("unexpected boolean leaf")
		}
		return model.Bool(v), nil
	case string:
		if numericOnly {
			return model.Value{}, fmt.Errorf("unexpected string leaf %q", v)
		}
		return model.Text(v), nil
	case nil:
		return model.Value{}, nil
	default:
		return model.Value{}, fmt.Errorf("unsupported leaf type %T", raw)
	}
}

// record stores a leaf under its canonical path. Leaves deeper than maxDepth
// collapse onto the 3-segment prefix: their values must be numeric and are
// summed with whatever already landed there.
func record(out map[model.StatPath]model.Value, segs []string, val model.Value) error {
	path := model.StatPath{Section: segs[0]}
	if len(segs) > 1 {
		path.Group = segs[1]
	}
	if len(segs) > 2 {
		path.Key = segs[2]
	}

	overflow := len(segs) > maxDepth
	if overflow && val.Kind != model.KindNumber {
		return fmt.Errorf("non-numeric value at %s collapses beyond depth %d", strings.Join(segs, "."), maxDepth)
	}

	existing, collides := out[path]
	if !collides {
		out[path] = val
		return nil
	}
	if existing.Kind != model.KindNumber || val.Kind != model.KindNumber {
		return fmt.Errorf("conflicting values at %s", path)
	}
	out[path] = model.Number(existing.Num + val.Num)
	return nil
}

// LoadVanillaDir loads every per-player vanilla stats file in dir. File
// names are "<uuid>.json"; UUIDs without a usercache entry fall back to the
// raw UUID as the display name.
func LoadVanillaDir(dir string, names identity.Map, log *zap.SugaredLogger) ([]model.PlayerStats, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read stats dir: %w", err)
	}
	var players []model.PlayerStats
	for _, entry := range entries {
		if entry.IsDir() || skipFile(entry.Name()) {
			continue
		}
		full := filepath.Join(dir, entry.Name())
		ps, err := loadOne(full, entry.Name(), names, log, ParseVanilla)
		if err != nil {
			return nil, err
		}
		players = append(players, ps)
	}
	return players, nil
}

// LoadCobblemonDir loads every Cobblemon player-data file under dir. Files
// live one directory level down, sharded by UUID prefix, so the whole tree
// is walked.
func LoadCobblemonDir(dir string, names identity.Map, log *zap.SugaredLogger) ([]model.PlayerStats, error) {
	var players []model.PlayerStats
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || skipFile(d.Name()) {
			return nil
		}
		ps, err := loadOne(path, d.Name(), names, log, ParseCobblemon)
		if err != nil {
			return err
		}
		players = append(players, ps)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk player data dir: %w", err)
	}
	return players, nil
}

func skipFile(name string) bool {
	return strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".json")
}

func loadOne(path, base string, names identity.Map, log *zap.SugaredLogger,
	parse func(string, io.Reader) (model.PlayerStats, error)) (model.PlayerStats, error) {

	id := strings.TrimSuffix(base, ".json")
	player, known := names.Resolve(id)
	if !known {
		log.Warnw("no username found in usercache, using UUID instead", "uuid", id)
	}
	log.Infow("processing stat file", "file", base, "player", player)

	f, err := os.Open(path)
	if err != nil {
		return model.PlayerStats{}, fmt.Errorf("open stat file: %w", err)
	}
	defer f.Close()

	ps, err := parse(player, f)
	if err != nil {
		return model.PlayerStats{}, &FormatError{Path: path, Err: err}
	}
	return ps, nil
}
