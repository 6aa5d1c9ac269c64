package flashlight

import (
	"math"
	"math/rand"
	"testing"

	"darkmaze/pkg/game/config"
)

func newTestController(seed int64) *Controller {
	return NewController(config.Default().Flashlight, rand.New(rand.NewSource(seed)))
}

func TestNewController_StartsOffAndFull(t *testing.T) {
	c := newTestController(1)
	s := c.State()
	if s.IsOn || s.Battery != 100 || s.Angle != 90 || s.Range != 150 {
		t.Errorf("initial state = %+v", s)
	}
	if c.BatteryPercentage() != 100 {
		t.Errorf("BatteryPercentage() = %v, want 100", c.BatteryPercentage())
	}
}

func TestToggle(t *testing.T) {
	c := newTestController(2)
	c.Toggle()
	if !c.IsActive() {
		t.Fatal("Toggle() did not switch on")
	}
	c.Toggle()
	if c.IsActive() {
		t.Fatal("second Toggle() did not switch off")
	}
}

func TestBatteryExhaustion(t *testing.T) {
	c := newTestController(3)
	c.Toggle()
	// 10.5 s at 60 fps and 10/s drain
	for i := 0; i < 630; i++ {
		c.Update(1.0/60, 75)
	}
	s := c.State()
	if s.Battery != 0 {
		t.Errorf("battery = %v after 10.5 s, want 0", s.Battery)
	}
	if s.IsOn {
		t.Error("flashlight still on with an empty battery")
	}

	c.Toggle()
	if c.IsActive() {
		t.Error("Toggle() switched on with an empty battery")
	}
	c.TurnOn()
	if c.IsActive() {
		t.Error("TurnOn() switched on with an empty battery")
	}
}

func TestUpdate_OffDoesNotDrain(t *testing.T) {
	c := newTestController(4)
	c.Update(5, 75)
	if c.State().Battery != 100 {
		t.Errorf("battery = %v while off, want 100", c.State().Battery)
	}
}

func TestRechargeBattery_Caps(t *testing.T) {
	c := newTestController(5)
	c.Toggle()
	c.Update(3, 75)
	c.RechargeBattery(20)
	if got := c.State().Battery; math.Abs(got-90) > 1e-9 {
		t.Errorf("battery = %v, want 90", got)
	}
	c.RechargeBattery(50)
	if got := c.State().Battery; got != 100 {
		t.Errorf("battery = %v, want capped at 100", got)
	}
}

func TestShake(t *testing.T) {
	tests := []struct {
		name     string
		bpm      float64
		maxShake float64
	}{
		{"calm", 75, 0},
		{"threshold", 80, 0},
		{"elevated", 115, 4},
		{"panic", 200, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(6)
			sawPositive, sawNegative := false, false
			for i := 0; i < 200; i++ {
				c.Update(1.0/60, tt.bpm)
				shake := c.State().Shake
				if math.Abs(shake) > tt.maxShake+1e-9 || (tt.maxShake > 0 && math.Abs(shake) < tt.maxShake/2-1e-9) {
					t.Fatalf("shake %v outside [%v,%v]", shake, tt.maxShake/2, tt.maxShake)
				}
				if shake > 0 {
					sawPositive = true
				}
				if shake < 0 {
					sawNegative = true
				}
			}
			if tt.maxShake > 0 && (!sawPositive || !sawNegative) {
				t.Errorf("shake never changed sign over 200 ticks")
			}
		})
	}
}

func TestShakeDirection(t *testing.T) {
	c := newTestController(7)
	c.state.Shake = 90
	if got := c.ShakeDirection(0); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Errorf("ShakeDirection(0) with 90° shake = %v, want π/2", got)
	}
}

func TestReset(t *testing.T) {
	c := newTestController(8)
	c.Toggle()
	c.Update(4, 150)
	c.Reset()
	s := c.State()
	if s.IsOn || s.Battery != 100 || s.Shake != 0 {
		t.Errorf("after Reset state = %+v", s)
	}
}
