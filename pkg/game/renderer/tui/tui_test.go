package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"

	"darkmaze/pkg/engine/clock"
	"darkmaze/pkg/engine/input"
	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/entities"
	"darkmaze/pkg/game/gameplay"
	"darkmaze/pkg/game/scene"
	"darkmaze/pkg/game/state"
)

// corridorSnapshot is a 2x1 maze with the middle wall removed and the player in the left cell
func corridorSnapshot(radius float64) *state.Snapshot {
	m := world.NewMaze(2, 1, 32)
	m.Carve(0, 0, world.East)
	start := m.CellCenter(0, 0)
	return &state.Snapshot{
		State:      state.Playing,
		Maze:       m,
		Player:     state.NewPlayer(start, config.Default()),
		Visibility: scene.Visibility{Origin: start, Radius: radius},
	}
}

// plainLines strips styling and splits a frame into rows
func plainLines(frame string) []string {
	frame = strings.ReplaceAll(color.ClearCode(frame), "\x1b[K", "")
	return strings.Split(frame, lineBreak)
}

func newTestSession() *gameplay.Session {
	clk := clock.NewMock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return gameplay.NewSession(config.Default(), gameplay.WithClock(clk), gameplay.WithSeed(1))
}

func TestFrame_Map(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		modify func(*state.Snapshot)
		want   string
	}{
		{
			name:   "fogged cell",
			radius: 1,
			want:   "▒@ ░▒",
		},
		{
			name:   "visible exit",
			radius: 100,
			want:   "▒@ △▒",
		},
		{
			name:   "ghost over exit",
			radius: 100,
			modify: func(s *state.Snapshot) {
				s.Enemies = []entities.Enemy{{Position: s.Maze.CellCenter(1, 0)}}
			},
			want: "▒@ G▒",
		},
		{
			name:   "item",
			radius: 1,
			modify: func(s *state.Snapshot) {
				s.Items = []entities.Item{{Type: entities.ItemMedkit, Position: s.Maze.CellCenter(1, 0)}}
			},
			want: "▒@ +▒",
		},
		{
			name:   "standing wall",
			radius: 100,
			modify: func(s *state.Snapshot) {
				s.Maze = world.NewMaze(2, 1, 32)
			},
			want: "▒@▒△▒",
		},
	}

	r := New(nil, &bytes.Buffer{}, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := corridorSnapshot(tt.radius)
			if tt.modify != nil {
				tt.modify(snap)
			}
			lines := plainLines(r.Frame(snap))
			if lines[0] != "▒▒▒▒▒" || lines[2] != "▒▒▒▒▒" {
				t.Errorf("border rows = %q, %q", lines[0], lines[2])
			}
			if lines[1] != tt.want {
				t.Errorf("cell row = %q, want %q", lines[1], tt.want)
			}
		})
	}
}

func TestFrame_HUD(t *testing.T) {
	r := New(nil, &bytes.Buffer{}, nil)
	snap := corridorSnapshot(100)
	snap.Message = "Something moves"

	out := strings.Join(plainLines(r.Frame(snap)), "\n")
	for _, want := range []string{"HP 100", "LIGHT OFF", "Something moves"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q:\n%s", want, out)
		}
	}

	snap.State = state.GameOver
	out = strings.Join(plainLines(r.Frame(snap)), "\n")
	if !strings.Contains(out, "YOU DIED") {
		t.Errorf("game over frame missing title:\n%s", out)
	}
}

func TestFrame_InvalidSnapshot(t *testing.T) {
	r := New(nil, &bytes.Buffer{}, nil)
	if got := r.Frame(nil); got != "" {
		t.Errorf("Frame(nil) = %q, want empty", got)
	}
}

func TestRenderFrame_UsesRawLineEndings(t *testing.T) {
	var out bytes.Buffer
	r := New(nil, &out, nil)
	r.RenderFrame(corridorSnapshot(100))

	s := out.String()
	if !strings.HasPrefix(s, "\x1b[H") {
		t.Errorf("frame does not start by homing the cursor: %q", s[:min(len(s), 8)])
	}
	if strings.Count(s, "\n") != strings.Count(s, "\r\n") {
		t.Error("frame contains bare line feeds")
	}
}

func TestStep_Headless(t *testing.T) {
	s := newTestSession()
	var out bytes.Buffer
	r := New(s, &out, nil)

	if !r.step() {
		t.Fatal("step() stopped while playing")
	}
	if out.Len() != 0 {
		t.Errorf("headless step wrote %d bytes", out.Len())
	}
}

func TestStep_Keys(t *testing.T) {
	s := newTestSession()
	keys := input.NewTerminalReader(strings.NewReader(""), time.Minute)
	var out bytes.Buffer
	r := New(s, &out, keys)

	keys.Press("m")
	if !r.step() {
		t.Fatal("step() stopped without quit")
	}
	if !s.Snapshot().Tempo.Muted {
		t.Error("mute key did not mute")
	}
	// Still held: no second toggle
	r.step()
	if !s.Snapshot().Tempo.Muted {
		t.Error("held mute key toggled twice")
	}
	if out.Len() == 0 {
		t.Error("interactive step rendered nothing")
	}

	keys.Press("q")
	if r.step() {
		t.Error("step() continued after quit")
	}
}

func TestRun_HeadlessStopsOnCancel(t *testing.T) {
	var out bytes.Buffer
	r := New(newTestSession(), &out, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v, want nil", err)
		}
		if !strings.Contains(color.ClearCode(out.String()), PlayerIcon) {
			t.Error("headless run did not dump its final frame")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}
