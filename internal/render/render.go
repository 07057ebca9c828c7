// Package render rasterizes a ranked leaderboard into a table image.
package render

import (
	"fmt"

	"github.com/fogleman/gg"

	"github.com/ferrand/go-mc-stats/internal/model"
)

const (
	colorBackground = "#131e33"
	colorHeader     = "#2a75bb"
	colorGold       = "#FFD700"
	colorSilver     = "#C0C0C0"
	colorBronze     = "#CD7F32"
	colorRow        = "#f5f5f5"
	colorTitle      = "#95BADD"
	colorCaption    = "#666666"
)

const (
	imgWidth   = 700
	marginX    = 40
	titleBand  = 70
	headerBand = 44
	rowBand    = 38
	footBand   = 40
)

// column x offsets within the content area, as fractions of its width
const (
	rankColFrac   = 0.06
	playerColFrac = 0.18
	scoreColFrac  = 0.92
)

// WriteImage renders the ranked rows as a table PNG at path. The first three
// visual positions get podium colors; the caption line carries the date.
func WriteImage(path, title, caption string, rows []model.LeaderboardRow) error {
	height := titleBand + headerBand + len(rows)*rowBand + footBand
	dc := gg.NewContext(imgWidth, height)

	dc.SetHexColor(colorBackground)
	dc.Clear()

	dc.SetHexColor(colorTitle)
	dc.DrawStringAnchored(title, imgWidth/2, titleBand/2, 0.5, 0.5)

	contentW := float64(imgWidth - 2*marginX)
	rankX := marginX + contentW*rankColFrac
	playerX := marginX + contentW*playerColFrac
	scoreX := marginX + contentW*scoreColFrac

	headerTop := float64(titleBand)
	dc.SetHexColor(colorHeader)
	dc.DrawRectangle(marginX, headerTop, contentW, headerBand)
	dc.Fill()
	dc.SetHexColor("#ffffff")
	headerMid := headerTop + headerBand/2
	dc.DrawStringAnchored("Rank", rankX, headerMid, 0, 0.5)
	dc.DrawStringAnchored("Player", playerX, headerMid, 0, 0.5)
	dc.DrawStringAnchored("Score", scoreX, headerMid, 1, 0.5)

	for i, r := range rows {
		top := headerTop + headerBand + float64(i*rowBand)
		dc.SetHexColor(positionColor(i + 1))
		dc.DrawRectangle(marginX, top, contentW, rowBand)
		dc.Fill()

		dc.SetHexColor("#000000")
		mid := top + rowBand/2
		dc.DrawStringAnchored(fmt.Sprintf("%d.", i+1), rankX, mid, 0, 0.5)
		dc.DrawStringAnchored(r.Player, playerX, mid, 0, 0.5)
		dc.DrawStringAnchored(fmt.Sprintf("%d", r.Score), scoreX, mid, 1, 0.5)
	}

	dc.SetHexColor(colorCaption)
	dc.DrawStringAnchored(caption, imgWidth/2, float64(height)-footBand/2, 0.5, 0.5)

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save leaderboard image: %w", err)
	}
	return nil
}

func positionColor(position int) string {
	switch position {
	case 1:
		return colorGold
	case 2:
		return colorSilver
	case 3:
		return colorBronze
	default:
		return colorRow
	}
}
