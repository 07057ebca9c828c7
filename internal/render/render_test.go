package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ferrand/go-mc-stats/internal/model"
)

func TestWriteImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.png")
	rows := []model.LeaderboardRow{
		{Rank: 1, Player: "Alice", Score: 42},
		{Rank: 2, Player: "Bob", Score: 17},
		{Rank: 3, Player: "Carol", Score: 9},
		{Rank: 4, Player: "Dave", Score: 2},
	}
	if err := WriteImage(path, "Qui a attrapé le plus de Pokémon ?", "27/08/2026", rows); err != nil {
		t.Fatalf("WriteImage: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open image: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode image: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != imgWidth {
		t.Errorf("width = %d, want %d", bounds.Dx(), imgWidth)
	}
	wantHeight := titleBand + headerBand + len(rows)*rowBand + footBand
	if bounds.Dy() != wantHeight {
		t.Errorf("height = %d, want %d", bounds.Dy(), wantHeight)
	}
}

func TestWriteImageEmptyBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	if err := WriteImage(path, "title", "caption", nil); err != nil {
		t.Fatalf("WriteImage: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("image not written: %v", err)
	}
}

func TestPositionColors(t *testing.T) {
	want := map[int]string{1: colorGold, 2: colorSilver, 3: colorBronze, 4: colorRow, 50: colorRow}
	for pos, color := range want {
		if got := positionColor(pos); got != color {
			t.Errorf("positionColor(%d) = %s, want %s", pos, got, color)
		}
	}
}
