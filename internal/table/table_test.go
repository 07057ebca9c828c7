package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ferrand/go-mc-stats/internal/model"
)

func writeRaw(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func jump(n float64) model.PlayerStats {
	return model.PlayerStats{
		Player: "",
		Stats: map[model.StatPath]model.Value{
			{Section: "stats", Group: "minecraft:custom", Key: "minecraft:jump"}: model.Number(n),
		},
	}
}

func TestMergeOuterJoinZeroFills(t *testing.T) {
	alice := jump(5)
	alice.Player = "Alice"
	bob := model.PlayerStats{
		Player: "Bob",
		Stats: map[model.StatPath]model.Value{
			{Section: "stats", Group: "minecraft:custom", Key: "minecraft:deaths"}: model.Number(2),
		},
	}

	merged := Merge([]model.PlayerStats{alice, bob})
	if len(merged.Players) != 2 || len(merged.Rows) != 2 {
		t.Fatalf("got %d players / %d rows, want 2 / 2", len(merged.Players), len(merged.Rows))
	}

	jumpPath := model.StatPath{Section: "stats", Group: "minecraft:custom", Key: "minecraft:jump"}
	if got := merged.Cell(jumpPath, "Bob"); got != model.Number(0) {
		t.Errorf("absent cell = %+v, want zero fill", got)
	}
	if got := merged.Cell(jumpPath, "Alice"); got != model.Number(5) {
		t.Errorf("present cell = %+v, want Number(5)", got)
	}
}

func TestMergeOrderIndependent(t *testing.T) {
	alice := jump(5)
	alice.Player = "Alice"
	bob := jump(7)
	bob.Player = "Bob"

	ab := Merge([]model.PlayerStats{alice, bob})
	ba := Merge([]model.PlayerStats{bob, alice})

	for path, row := range ab.Rows {
		for player, v := range row {
			if got := ba.Cell(path, player); got != v {
				t.Errorf("cell %s/%s differs across input orders: %+v vs %+v", path, player, v, got)
			}
		}
	}
}

func TestMergeEmptyStatsStillAddsColumn(t *testing.T) {
	alice := jump(5)
	alice.Player = "Alice"
	empty := model.PlayerStats{Player: "Bob", Stats: map[model.StatPath]model.Value{}}

	merged := Merge([]model.PlayerStats{alice, empty})
	if !merged.HasPlayer("Bob") {
		t.Fatal("player with no stats should still become a column")
	}
	path := model.StatPath{Section: "stats", Group: "minecraft:custom", Key: "minecraft:jump"}
	if got := merged.Cell(path, "Bob"); got != model.Number(0) {
		t.Errorf("cell = %+v, want zero fill", got)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	src := model.NewStatTable()
	src.Players = []string{"Alice", "Bob"}
	caught := model.StatPath{Section: "pikachu", Group: "normal", Key: "status"}
	shiny := model.StatPath{Section: "pikachu", Group: "normal", Key: "isShiny"}
	stamp := model.StatPath{Section: "pikachu", Group: "normal", Key: "caughtTimestamp"}
	src.Rows[caught] = map[string]model.Value{"Alice": model.Text("CAUGHT"), "Bob": model.Number(0)}
	src.Rows[shiny] = map[string]model.Value{"Alice": model.Bool(true), "Bob": model.Bool(false)}
	src.Rows[stamp] = map[string]model.Value{"Alice": model.Number(1713112), "Bob": model.Number(0)}

	path := filepath.Join(t.TempDir(), "matrix.csv")
	if err := WriteCSV(src, path); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	got, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	if len(got.Players) != 2 || got.Players[0] != "Alice" {
		t.Fatalf("players = %v", got.Players)
	}
	if v := got.Cell(caught, "Alice"); !v.EqualsText("CAUGHT") {
		t.Errorf("caught cell = %+v", v)
	}
	if v := got.Cell(shiny, "Alice"); !v.IsTrue() {
		t.Errorf("shiny cell = %+v, want true", v)
	}
	if v := got.Cell(shiny, "Bob"); v.IsTrue() {
		t.Errorf("shiny cell = %+v, want false", v)
	}
	if v := got.Cell(stamp, "Alice"); v != model.Number(1713112) {
		t.Errorf("timestamp cell = %+v", v)
	}
}

func TestReadCSVRejectsRaggedRow(t *testing.T) {
	// csv.Reader already enforces uniform record length
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := writeRaw(path, "section,group,key,Alice\na,b,c\n"); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadCSV(path); err == nil {
		t.Error("expected error for ragged csv cache")
	}
}
