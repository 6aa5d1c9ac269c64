package ebiten

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/entities"
	"darkmaze/pkg/game/renderer"
	"darkmaze/pkg/game/state"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	snap := e.currentSnapshot()
	if !snap.Valid() {
		return
	}

	ox, oy := float32(mapMargin), float32(mapMargin)

	e.drawMaze(screen, snap.Maze, ox, oy)
	e.drawFog(screen, snap, ox, oy)
	e.drawBeam(screen, snap, ox, oy)

	for _, item := range snap.Items {
		x, y := ox+float32(item.Position.X), oy+float32(item.Position.Y)
		vector.FillCircle(screen, x, y, itemSize, itemColor(item.Type), true)
	}
	for _, ghost := range snap.Enemies {
		clr := colorGhost
		if ghost.State == entities.StateChase {
			clr = colorGhostChasing
		}
		x, y := ox+float32(ghost.Position.X), oy+float32(ghost.Position.Y)
		vector.FillCircle(screen, x, y, ghostSize, clr, true)
	}
	e.drawPlayer(screen, snap.Player, ox, oy)

	if snap.Transitioning {
		e.drawBanner(screen, snap.SceneName, "")
	}
	e.drawHUD(screen, snap)

	if title, hint, ok := renderer.EndScreen(snap); ok {
		e.drawBanner(screen, title, hint)
	}
}

// drawMaze draws the floor, the exit cell and every standing wall
func (e *EbitenRenderer) drawMaze(screen *ebiten.Image, m *world.Maze, ox, oy float32) {
	cs := float32(m.CellSize)
	vector.FillRect(screen, ox, oy, float32(m.PixelWidth()), float32(m.PixelHeight()), colorFloor, false)

	ex, ey := m.CellOf(m.EndPos)
	vector.FillRect(screen, ox+float32(ex)*cs, oy+float32(ey)*cs, cs, cs, colorExit, false)

	m.ForEachCell(func(c *world.Cell) {
		x0, y0 := ox+float32(c.X)*cs, oy+float32(c.Y)*cs
		x1, y1 := x0+cs, y0+cs
		if c.Top() {
			vector.StrokeLine(screen, x0, y0, x1, y0, wallWidth, colorWall, false)
		}
		if c.Left() {
			vector.StrokeLine(screen, x0, y0, x0, y1, wallWidth, colorWall, false)
		}
		// Shared walls are drawn once, from the cell above or to the left
		if c.Bottom() && c.Y == m.Height-1 {
			vector.StrokeLine(screen, x0, y1, x1, y1, wallWidth, colorWall, false)
		}
		if c.Right() && c.X == m.Width-1 {
			vector.StrokeLine(screen, x1, y0, x1, y1, wallWidth, colorWall, false)
		}
	})
}

// drawFog darkens every cell whose centre the player cannot see, then tints
// the whole playfield for panic and madness
func (e *EbitenRenderer) drawFog(screen *ebiten.Image, snap *state.Snapshot, ox, oy float32) {
	m := snap.Maze
	vis := snap.Visibility
	cs := float32(m.CellSize)
	fog := color.RGBA{0, 0, 0, alpha(vis.Darkness)}

	m.ForEachCell(func(c *world.Cell) {
		if vis.Visible(m.CellCenter(c.X, c.Y)) {
			return
		}
		vector.FillRect(screen, ox+float32(c.X)*cs, oy+float32(c.Y)*cs, cs, cs, fog, false)
	})

	w, h := float32(m.PixelWidth()), float32(m.PixelHeight())
	if vis.HeartRateFog > 0 {
		vector.FillRect(screen, ox, oy, w, h, color.RGBA{80, 0, 0, alpha(vis.HeartRateFog)}, false)
	}
	if vis.SanityDistortion > 0 {
		vector.FillRect(screen, ox, oy, w, h, color.RGBA{40, 0, 60, alpha(vis.SanityDistortion * 0.3)}, false)
	}
}

// drawBeam outlines the flashlight cone
func (e *EbitenRenderer) drawBeam(screen *ebiten.Image, snap *state.Snapshot, ox, oy float32) {
	vis := snap.Visibility
	if !vis.ConeOn {
		return
	}

	point := func(angle float64) (float32, float32) {
		p := vis.Origin.Add(world.FromAngle(angle, vis.ConeRange))
		return ox + float32(p.X), oy + float32(p.Y)
	}
	cx, cy := ox+float32(vis.Origin.X), oy+float32(vis.Origin.Y)

	from := vis.ConeDirection - vis.ConeHalfAngle
	step := 2 * vis.ConeHalfAngle / beamSegment
	px, py := point(from)
	vector.StrokeLine(screen, cx, cy, px, py, 1, colorBeam, true)
	for i := 1; i <= beamSegment; i++ {
		nx, ny := point(from + float64(i)*step)
		vector.StrokeLine(screen, px, py, nx, ny, 1, colorBeam, true)
		px, py = nx, ny
	}
	vector.StrokeLine(screen, px, py, cx, cy, 1, colorBeam, true)
}

// drawPlayer draws the player and a tick showing where they face
func (e *EbitenRenderer) drawPlayer(screen *ebiten.Image, p state.Player, ox, oy float32) {
	x, y := ox+float32(p.Position.X), oy+float32(p.Position.Y)
	vector.FillCircle(screen, x, y, playerSize, colorPlayer, true)

	tx := x + float32(math.Cos(p.Direction))*playerSize*1.8
	ty := y + float32(math.Sin(p.Direction))*playerSize*1.8
	vector.StrokeLine(screen, x, y, tx, ty, 2, colorPlayerFacing, true)
}

// drawHUD draws stats, indicators, the current message and the key help below the maze
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, snap *state.Snapshot) {
	top := e.windowHeight - hudHeight
	vector.FillRect(screen, 0, float32(top), float32(e.windowWidth), hudHeight, colorPanelBackground, false)

	x, y := mapMargin, top+4
	ebitenutil.DebugPrintAt(screen, renderer.StatusLine(snap), x, y)
	y += lineHeight
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  FPS %d", renderer.SceneLine(snap), snap.FPS), x, y)
	y += lineHeight

	var flags []string
	worst := renderer.SeverityNormal
	for _, line := range renderer.Indicators(snap) {
		flags = append(flags, line.Text)
		if line.Severity > worst {
			worst = line.Severity
		}
	}
	// Debug text is always white, so severity shows as a marker bar
	vector.FillRect(screen, float32(x-8), float32(y+2), 4, lineHeight-4, severityColor(worst), false)
	ebitenutil.DebugPrintAt(screen, strings.Join(flags, "  "), x, y)
	y += lineHeight

	if snap.Message != "" {
		ebitenutil.DebugPrintAt(screen, snap.Message, x, y)
	}
	y += lineHeight
	ebitenutil.DebugPrintAt(screen, renderer.Controls(), x, y)
}

// drawBanner darkens the playfield and prints a centred title with an optional hint
func (e *EbitenRenderer) drawBanner(screen *ebiten.Image, title, hint string) {
	h := e.windowHeight - hudHeight
	vector.FillRect(screen, 0, 0, float32(e.windowWidth), float32(h), color.RGBA{0, 0, 0, 200}, false)

	// The debug font is 6px wide per glyph
	cx, cy := e.windowWidth/2, h/2
	ebitenutil.DebugPrintAt(screen, title, cx-len(title)*3, cy-lineHeight)
	if hint != "" {
		ebitenutil.DebugPrintAt(screen, hint, cx-len(hint)*3, cy+lineHeight/2)
	}
}

// alpha converts a 0-1 opacity to a color channel
func alpha(v float64) uint8 {
	return uint8(math.Max(0, math.Min(1, v)) * 255)
}
