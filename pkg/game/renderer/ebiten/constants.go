package ebiten

import (
	"image/color"

	"darkmaze/pkg/game/entities"
	"darkmaze/pkg/game/renderer"
)

// Color palette
var (
	colorBackground      = color.RGBA{8, 8, 12, 255}
	colorFloor           = color.RGBA{26, 26, 36, 255}
	colorWall            = color.RGBA{90, 90, 120, 255}
	colorExit            = color.RGBA{60, 20, 80, 255}
	colorPlayer          = color.RGBA{0, 255, 0, 255}
	colorPlayerFacing    = color.RGBA{180, 255, 180, 255}
	colorGhost           = color.RGBA{220, 220, 255, 200}
	colorGhostChasing    = color.RGBA{255, 120, 120, 220}
	colorBattery         = color.RGBA{255, 200, 100, 255}
	colorMedkit          = color.RGBA{100, 255, 150, 255}
	colorCollectible     = color.RGBA{220, 170, 255, 255}
	colorBeam            = color.RGBA{255, 240, 180, 120}
	colorText            = color.RGBA{200, 210, 245, 255}
	colorWarning         = color.RGBA{255, 220, 100, 255}
	colorDanger          = color.RGBA{255, 100, 100, 255}
	colorPanelBackground = color.RGBA{20, 20, 30, 230}
)

// Layout in pixels
const (
	mapMargin   = 16
	hudHeight   = 96
	lineHeight  = 16
	playerSize  = 6
	itemSize    = 5
	ghostSize   = 9
	wallWidth   = 2
	beamSegment = 12 // arc segments of the beam outline
)

// itemColor returns the dot color of an item type
func itemColor(t entities.ItemType) color.Color {
	switch t {
	case entities.ItemBattery:
		return colorBattery
	case entities.ItemMedkit:
		return colorMedkit
	default:
		return colorCollectible
	}
}

// severityColor maps HUD severities to text colors
func severityColor(s renderer.Severity) color.Color {
	switch s {
	case renderer.SeverityWarning:
		return colorWarning
	case renderer.SeverityDanger:
		return colorDanger
	default:
		return colorText
	}
}
