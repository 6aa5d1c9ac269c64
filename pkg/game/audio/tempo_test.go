package audio

import (
	"math"
	"testing"

	"darkmaze/pkg/game/scene"
)

func TestTempo_HeartRate(t *testing.T) {
	m := NewModel()
	tests := []struct {
		name       string
		bpm        float64
		wantVolume float64
		wantRate   float64
	}{
		{"resting", 75, 0.3, 0.95},
		{"slow", 50, 0.2, 0.8},
		{"sprinting", 110, 0.44, 1.3},
		{"panic", 200, 0.45, 1.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Tempo(tt.bpm, 80, 0)
			if math.Abs(got.Volume-tt.wantVolume) > 1e-9 {
				t.Errorf("Volume = %v, want %v", got.Volume, tt.wantVolume)
			}
			if math.Abs(got.Rate-tt.wantRate) > 1e-9 {
				t.Errorf("Rate = %v, want %v", got.Rate, tt.wantRate)
			}
		})
	}
}

func TestTempo_SceneProfile(t *testing.T) {
	m := NewModel()
	m.OnSceneTransition(scene.Crimson)
	if got := m.Tempo(75, 80, 0).Volume; math.Abs(got-0.5) > 1e-9 {
		t.Errorf("crimson resting volume = %v, want 0.5", got)
	}
	m.OnSceneTransition(scene.Void)
	if got := m.Tempo(75, 80, 0).Volume; math.Abs(got-0.25) > 1e-9 {
		t.Errorf("void resting volume = %v, want 0.25", got)
	}
}

func TestTempo_LowSanityWobbles(t *testing.T) {
	m := NewModel()
	lo, hi := 1.0, 0.0
	for i := 0; i < 200; i++ {
		v := m.Tempo(75, 0, float64(i)*0.05).Volume
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo < 0.1-1e-9 || hi > 0.5+1e-9 {
		t.Errorf("volume range [%v,%v] outside [0.1,0.5]", lo, hi)
	}
	if hi-lo < 0.2 {
		t.Errorf("volume range [%v,%v] barely wobbles", lo, hi)
	}
}

func TestToggleMute(t *testing.T) {
	m := NewModel()
	m.ToggleMute()
	if !m.Tempo(75, 80, 0).Muted {
		t.Error("Tempo not muted after ToggleMute")
	}
}
