// Package tui draws the maze as coloured text and runs the game loop on a ticker,
// either interactively in a raw-mode terminal or headless.
package tui

import (
	"context"
	"io"
	"log"
	"strings"
	"time"

	"github.com/gookit/color"

	"darkmaze/pkg/engine/input"
	"darkmaze/pkg/engine/terminal"
	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/entities"
	"darkmaze/pkg/game/gameplay"
	"darkmaze/pkg/game/renderer"
	"darkmaze/pkg/game/state"
)

// Icon constants
const (
	PlayerIcon = "@"
	IconWall   = "▒"
	IconFloor  = " "
	IconFog    = "░"
	IconGhost  = "G"
	IconExit   = "△"
)

// lineBreak works in raw mode, where "\n" does not return the carriage
const lineBreak = "\r\n"

// hudLines is the number of rows printed below the map
const hudLines = 6

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	session *gameplay.Session
	out     io.Writer
	keys    *input.TerminalReader // nil when headless

	muteKey input.EdgeTrigger

	colorWall    color.Style
	colorFog     color.Style
	colorPlayer  color.Style
	colorGhost   color.Style
	colorItem    color.Style
	colorBattery color.Style
	colorMedkit  color.Style
	colorExit    color.Style
	colorText    color.Style
	colorWarning color.Style
	colorDanger  color.Style
	colorSubtle  color.Style
}

// New creates a terminal renderer writing to out. With keys nil the renderer
// runs headless: it draws only the final frame and stops as soon as the game ends.
func New(session *gameplay.Session, out io.Writer, keys *input.TerminalReader) *TUIRenderer {
	t := &TUIRenderer{session: session, out: out, keys: keys}
	t.Init()
	return t
}

// Init initializes the color styles
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorFog = color.Style{color.FgBlack, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorGhost = color.Style{color.FgWhite, color.OpBold}
	t.colorItem = color.Style{color.FgMagenta}
	t.colorBattery = color.Style{color.FgYellow}
	t.colorMedkit = color.Style{color.FgGreen}
	t.colorExit = color.Style{color.FgMagenta, color.OpBold}
	t.colorText = color.Style{color.FgCyan}
	t.colorWarning = color.Style{color.FgYellow, color.OpBold}
	t.colorDanger = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	terminal.Clear(t.out)
}

// RenderFrame redraws the screen in place
func (t *TUIRenderer) RenderFrame(snap *state.Snapshot) {
	terminal.Home(t.out)
	io.WriteString(t.out, t.Frame(snap))
}

// Frame renders a snapshot to text: the maze with walls between cells, then the HUD
func (t *TUIRenderer) Frame(snap *state.Snapshot) string {
	if !snap.Valid() {
		return ""
	}

	var b strings.Builder
	t.printMap(&b, snap)
	t.printHUD(&b, snap)
	return b.String()
}

// printMap draws a (2h+1)x(2w+1) character grid; odd rows and columns are cell interiors
func (t *TUIRenderer) printMap(b *strings.Builder, snap *state.Snapshot) {
	m := snap.Maze
	glyphs := t.interiorGlyphs(snap)

	wall := t.colorWall.Sprint(IconWall)
	for row := 0; row <= 2*m.Height; row++ {
		for col := 0; col <= 2*m.Width; col++ {
			x, y := (col-1)/2, (row-1)/2
			switch {
			case row%2 == 1 && col%2 == 1:
				b.WriteString(glyphs[y][x])
			case row%2 == 1:
				// Vertical wall left of cell x+1
				if m.CellAt(col/2, y) == nil || m.CellAt(col/2, y).Left() || col == 2*m.Width {
					b.WriteString(wall)
				} else {
					b.WriteString(IconFloor)
				}
			case col%2 == 1:
				// Horizontal wall above cell y+1
				if m.CellAt(x, row/2) == nil || m.CellAt(x, row/2).Top() || row == 2*m.Height {
					b.WriteString(wall)
				} else {
					b.WriteString(IconFloor)
				}
			default:
				b.WriteString(wall)
			}
		}
		b.WriteString(lineBreak)
	}
}

// interiorGlyphs picks the styled glyph of each cell: player over ghosts over
// items over the exit, and fog wherever the player cannot see
func (t *TUIRenderer) interiorGlyphs(snap *state.Snapshot) [][]string {
	m := snap.Maze
	glyphs := make([][]string, m.Height)
	for y := range glyphs {
		glyphs[y] = make([]string, m.Width)
		for x := range glyphs[y] {
			if snap.Visibility.Visible(m.CellCenter(x, y)) {
				glyphs[y][x] = IconFloor
			} else {
				glyphs[y][x] = t.colorFog.Sprint(IconFog)
			}
		}
	}

	put := func(p world.Vector2, glyph string) {
		x, y := m.CellOf(p)
		if m.InBounds(x, y) {
			glyphs[y][x] = glyph
		}
	}

	if snap.Visibility.Visible(m.EndPos) {
		put(m.EndPos, t.colorExit.Sprint(IconExit))
	}
	for _, item := range snap.Items {
		put(item.Position, t.itemStyle(item.Type).Sprint(entities.ItemTypes[item.Type].Icon))
	}
	for _, ghost := range snap.Enemies {
		put(ghost.Position, t.colorGhost.Sprint(IconGhost))
	}
	put(snap.Player.Position, t.colorPlayer.Sprint(PlayerIcon))
	return glyphs
}

func (t *TUIRenderer) itemStyle(it entities.ItemType) color.Style {
	switch it {
	case entities.ItemBattery:
		return t.colorBattery
	case entities.ItemMedkit:
		return t.colorMedkit
	default:
		return t.colorItem
	}
}

// printHUD writes the stats, indicators, banner message and end screen
func (t *TUIRenderer) printHUD(b *strings.Builder, snap *state.Snapshot) {
	line := func(s string) {
		b.WriteString(s)
		// Overwrite leftovers of a longer previous frame
		b.WriteString("\x1b[K")
		b.WriteString(lineBreak)
	}

	line(t.colorText.Sprint(renderer.SceneLine(snap)))
	line(renderer.StatusLine(snap))

	var flags []string
	for _, ind := range renderer.Indicators(snap) {
		flags = append(flags, t.severityStyle(ind.Severity).Sprint(ind.Text))
	}
	line(strings.Join(flags, "  "))

	line(t.colorWarning.Sprint(snap.Message))

	if title, hint, ok := renderer.EndScreen(snap); ok {
		line(t.colorDanger.Sprint(title))
		line(hint)
	} else {
		line("")
		line(t.colorSubtle.Sprint(renderer.Controls()))
	}
}

func (t *TUIRenderer) severityStyle(s renderer.Severity) color.Style {
	switch s {
	case renderer.SeverityWarning:
		return t.colorWarning
	case renderer.SeverityDanger:
		return t.colorDanger
	default:
		return t.colorText
	}
}

// Run drives the session at the configured tick rate until ctx is cancelled,
// the player quits, or (headless) the game ends
func (t *TUIRenderer) Run(ctx context.Context) error {
	tps := t.session.Config().Engine.TicksPerSecond
	if tps <= 0 {
		tps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	if t.keys == nil {
		// Headless runs dump the last frame only
		defer func() { io.WriteString(t.out, t.Frame(t.session.Snapshot())) }()
	} else {
		m := t.session.Maze()
		if w, h := terminal.GetSize(); w < 2*m.Width+1 || h < 2*m.Height+hudLines+1 {
			log.Printf("Terminal is %dx%d, the maze may not fit", w, h)
		}
		t.Clear()
		terminal.HideCursor(t.out)
		defer terminal.ShowCursor(t.out)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		if !t.step() {
			return nil
		}
	}
}

// step runs one frame and reports whether the loop should continue
func (t *TUIRenderer) step() bool {
	if t.keys == nil {
		if t.session.State() != state.Playing {
			return false
		}
		t.session.Update(input.Snapshot{})
		return true
	}

	held := input.HeldFromCodes(t.keys.HeldCodes())
	if held.Has(input.ActionQuit) {
		return false
	}
	if t.muteKey.Update(held.Has(input.ActionMute)) {
		t.session.ToggleMute()
	}
	if t.session.State().Terminal() && held.Has(input.ActionRestart) {
		t.session.Restart()
	}

	t.session.Update(input.FromHeld(held))
	t.RenderFrame(t.session.Snapshot())
	return true
}
