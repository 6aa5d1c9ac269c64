package state

import (
	"reflect"
	"testing"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/config"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(world.Vec(16, 16), config.Default())
	if p.Health != 100 || p.Luck != 80 || p.Sanity != 80 || p.HeartRate != 75 {
		t.Errorf("NewPlayer stats = %+v", p)
	}
}

func TestPlayer_StatsClamp(t *testing.T) {
	p := NewPlayer(world.Vec(0, 0), config.Default())
	tests := []struct {
		name  string
		apply func()
		get   func() float64
		want  float64
	}{
		{"heal past max", func() { p.AddHealth(50) }, func() float64 { return p.Health }, 100},
		{"damage past zero", func() { p.AddHealth(-500) }, func() float64 { return p.Health }, 0},
		{"sanity up", func() { p.AddSanity(30) }, func() float64 { return p.Sanity }, 100},
		{"sanity down", func() { p.AddSanity(-130) }, func() float64 { return p.Sanity }, 0},
		{"luck up", func() { p.AddLuck(15) }, func() float64 { return p.Luck }, 95},
		{"luck down", func() { p.AddLuck(-200) }, func() float64 { return p.Luck }, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.apply()
			if got := tt.get(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
	if !p.IsDead() {
		t.Error("IsDead() = false at zero health")
	}
}

func TestClamp_Idempotent(t *testing.T) {
	for _, v := range []float64{-10, 0, 42, 100, 250} {
		if Clamp(Clamp(v)) != Clamp(v) {
			t.Errorf("Clamp not idempotent for %v", v)
		}
	}
}

func TestMessageLog(t *testing.T) {
	l := NewMessageLog(3)
	for _, m := range []string{"a", "b", "c", "d"} {
		l.AddMessage(m)
	}
	if l.Current() != "d" {
		t.Errorf("Current() = %q, want d", l.Current())
	}
	if got := l.Messages(); !reflect.DeepEqual(got, []string{"b", "c", "d"}) {
		t.Errorf("Messages() = %v, want [b c d]", got)
	}
	l.ClearCurrent()
	if l.Current() != "" || len(l.Messages()) != 3 {
		t.Errorf("ClearCurrent: current %q, history %v", l.Current(), l.Messages())
	}
	l.Reset()
	if len(l.Messages()) != 0 {
		t.Errorf("Reset left %v", l.Messages())
	}
}

func TestMessageLog_RecordKeepsBanner(t *testing.T) {
	l := NewMessageLog(2)
	l.AddMessage("banner")
	l.Record("quiet")
	l.Record("quieter")

	if l.Current() != "banner" {
		t.Errorf("Current() = %q, want banner", l.Current())
	}
	if got := l.Messages(); !reflect.DeepEqual(got, []string{"quiet", "quieter"}) {
		t.Errorf("Messages() = %v, want [quiet quieter]", got)
	}
}

func TestGameState_Terminal(t *testing.T) {
	for s, want := range map[GameState]bool{Menu: false, Playing: false, Paused: false, GameOver: true, Victory: true} {
		if s.Terminal() != want {
			t.Errorf("%v.Terminal() = %v, want %v", s, s.Terminal(), want)
		}
	}
}
