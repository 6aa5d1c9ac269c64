// Package flashlight models the player's battery-limited torch and the
// heart-rate driven shake of its beam.
package flashlight

import (
	"math"
	"math/rand"

	"darkmaze/pkg/game/config"
)

// State is a copy of the flashlight's observable values
type State struct {
	IsOn       bool
	Angle      float64 // cone width in degrees
	Range      float64 // pixels
	Brightness float64
	Battery    float64
	MaxBattery float64
	DrainRate  float64 // battery per second while on
	Shake      float64 // degrees, signed
}

// Controller owns the flashlight. It starts switched off with a full battery.
type Controller struct {
	state State
	cfg   config.FlashlightConfig
	rng   *rand.Rand
}

// NewController creates a flashlight from cfg
func NewController(cfg config.FlashlightConfig, rng *rand.Rand) *Controller {
	return &Controller{
		cfg: cfg,
		rng: rng,
		state: State{
			Angle:      cfg.Angle,
			Range:      cfg.Range,
			Brightness: cfg.Brightness,
			Battery:    cfg.MaxBattery,
			MaxBattery: cfg.MaxBattery,
			DrainRate:  cfg.DrainRate,
		},
	}
}

// Toggle flips the flashlight. It will not switch on with an empty battery.
func (c *Controller) Toggle() {
	if !c.state.IsOn && c.state.Battery <= 0 {
		return
	}
	c.state.IsOn = !c.state.IsOn
}

// TurnOn switches on if there is charge left
func (c *Controller) TurnOn() {
	if c.state.Battery > 0 {
		c.state.IsOn = true
	}
}

// TurnOff switches off
func (c *Controller) TurnOff() {
	c.state.IsOn = false
}

// Update drains the battery while on and recomputes the shake from heart rate
func (c *Controller) Update(dt, heartRate float64) {
	if c.state.IsOn {
		c.state.Battery = math.Max(0, c.state.Battery-c.state.DrainRate*dt)
		if c.state.Battery <= 0 {
			c.state.IsOn = false
		}
	}
	c.updateShake(heartRate)
}

func (c *Controller) updateShake(heartRate float64) {
	if heartRate < c.cfg.ShakeBPMThreshold {
		c.state.Shake = 0
		return
	}

	normalized := math.Min(1, (heartRate-c.cfg.ShakeBPMThreshold)/c.cfg.ShakeBand)
	base := normalized * c.cfg.ShakeMax
	sign := -1.0
	magnitude := 0.5 + c.rng.Float64()*0.5
	if c.rng.Float64() > 0.5 {
		sign = 1
	}
	c.state.Shake = base * magnitude * sign
}

// RechargeBattery adds charge, capped at the maximum
func (c *Controller) RechargeBattery(amount float64) {
	c.state.Battery = math.Min(c.state.MaxBattery, c.state.Battery+amount)
}

// Reset restores a full battery, switched off and steady
func (c *Controller) Reset() {
	c.state.IsOn = false
	c.state.Battery = c.state.MaxBattery
	c.state.Shake = 0
}

// State returns a copy of the flashlight state
func (c *Controller) State() State {
	return c.state
}

// BatteryPercentage returns the charge as 0-100
func (c *Controller) BatteryPercentage() float64 {
	if c.state.MaxBattery <= 0 {
		return 0
	}
	return c.state.Battery / c.state.MaxBattery * 100
}

// IsActive reports whether the flashlight is on
func (c *Controller) IsActive() bool {
	return c.state.IsOn
}

// ShakeDirection returns base (radians) offset by the current shake
func (c *Controller) ShakeDirection(base float64) float64 {
	return base + c.state.Shake*math.Pi/180
}
