// Package config holds every tunable of the simulation. Defaults reproduce the
// stock game; a YAML file can override any subset of them.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Collision policy names
const (
	CollisionFree  = "free"
	CollisionWalls = "walls"
)

// Enemy behavior policy names
const (
	BehaviorWander = "wander"
	BehaviorChase  = "chase"
)

type MazeConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	CellSize      float64 `yaml:"cell_size"`
	WallThickness float64 `yaml:"wall_thickness"`
}

type PlayerConfig struct {
	Speed            float64 `yaml:"speed"`
	SprintMultiplier float64 `yaml:"sprint_multiplier"`
	DiagonalFactor   float64 `yaml:"diagonal_factor"`
	Radius           float64 `yaml:"radius"`
	MaxHealth        float64 `yaml:"max_health"`
	Collision        string  `yaml:"collision"`
}

type HeartRateConfig struct {
	Base           float64 `yaml:"base"`
	Walking        float64 `yaml:"walking"`
	Sprinting      float64 `yaml:"sprinting"`
	Responsiveness float64 `yaml:"responsiveness"`

	// Debuff stages: at or above each threshold, the per-second chance applies
	Stage1        float64 `yaml:"stage1"`
	Stage2        float64 `yaml:"stage2"`
	Stage3        float64 `yaml:"stage3"`
	Stage1Chance  float64 `yaml:"stage1_chance"`
	Stage2Chance  float64 `yaml:"stage2_chance"`
	Stage3Chance  float64 `yaml:"stage3_chance"`
	DebuffSpeed   float64 `yaml:"debuff_speed"`
	DebuffSeconds float64 `yaml:"debuff_seconds"`
}

type FlashlightConfig struct {
	Angle             float64 `yaml:"angle"`
	Range             float64 `yaml:"range"`
	Brightness        float64 `yaml:"brightness"`
	MaxBattery        float64 `yaml:"max_battery"`
	DrainRate         float64 `yaml:"drain_rate"`
	ShakeBPMThreshold float64 `yaml:"shake_bpm_threshold"`
	ShakeMax          float64 `yaml:"shake_max"`
	ShakeBand         float64 `yaml:"shake_band"`
}

type ItemConfig struct {
	BatteryRecharge      float64 `yaml:"battery_recharge"`
	MedkitHeal           float64 `yaml:"medkit_heal"`
	PickupRadius         float64 `yaml:"pickup_radius"`
	BatteryCount         int     `yaml:"battery_count"`
	MedkitCount          int     `yaml:"medkit_count"`
	SpeciesCount         int     `yaml:"species_count"`
	MaxPlacementAttempts int     `yaml:"max_placement_attempts"`
	FakeItemMaxChance    float64 `yaml:"fake_item_max_chance"`
	InventorySlots       int     `yaml:"inventory_slots"`
}

type SanityConfig struct {
	Max             float64 `yaml:"max"`
	Initial         float64 `yaml:"initial"`
	GhostLoss       float64 `yaml:"ghost_loss"`
	Low             float64 `yaml:"low"`
	Critical        float64 `yaml:"critical"`
	DistortionStart float64 `yaml:"distortion_start"`
}

type EnemyConfig struct {
	GhostCount            int     `yaml:"ghost_count"`
	Speed                 float64 `yaml:"speed"`
	DetectionRadius       float64 `yaml:"detection_radius"`
	CollisionRadius       float64 `yaml:"collision_radius"`
	Damage                float64 `yaml:"damage"`
	LuckPenalty           float64 `yaml:"luck_penalty"`
	DirectionChangeChance float64 `yaml:"direction_change_chance"`
	SpawnSafeCells        int     `yaml:"spawn_safe_cells"`
	HitCooldownSeconds    float64 `yaml:"hit_cooldown_seconds"`
	EventSpawnSpread      float64 `yaml:"event_spawn_spread"`
	Behavior              string  `yaml:"behavior"`
}

type LuckConfig struct {
	Initial float64 `yaml:"initial"`
	Max     float64 `yaml:"max"`
	Min     float64 `yaml:"min"`
}

// EventConfig holds the trigger chance, the ordered weights and the effect magnitudes
type EventConfig struct {
	TriggerChance  float64            `yaml:"trigger_chance"`
	Weights        map[string]float64 `yaml:"weights"`
	HealthDelta    float64            `yaml:"health_delta"`
	SanityDelta    float64            `yaml:"sanity_delta"`
	LuckBoost      float64            `yaml:"luck_boost"`
	CurseFactor    float64            `yaml:"curse_factor"`
	MessageSeconds float64            `yaml:"message_seconds"`
}

type FogConfig struct {
	Darkness        float64 `yaml:"darkness"`
	LitRadius       float64 `yaml:"lit_radius"`
	UnlitRadius     float64 `yaml:"unlit_radius"`
	HeartRateStart  float64 `yaml:"heart_rate_start"`
	HeartRateBand   float64 `yaml:"heart_rate_band"`
	HeartRateMaxFog float64 `yaml:"heart_rate_max_fog"`
}

type SceneConfig struct {
	MinSeconds        float64 `yaml:"min_seconds"`
	MaxSeconds        float64 `yaml:"max_seconds"`
	TransitionSeconds float64 `yaml:"transition_seconds"`
}

type EngineConfig struct {
	TicksPerSecond int     `yaml:"ticks_per_second"`
	MaxFrameDelta  float64 `yaml:"max_frame_delta"`
	MaxMessages    int     `yaml:"max_messages"`
	Locale         string  `yaml:"locale"`
}

// Config is the full set of tunables
type Config struct {
	Maze       MazeConfig       `yaml:"maze"`
	Player     PlayerConfig     `yaml:"player"`
	HeartRate  HeartRateConfig  `yaml:"heart_rate"`
	Flashlight FlashlightConfig `yaml:"flashlight"`
	Items      ItemConfig       `yaml:"items"`
	Sanity     SanityConfig     `yaml:"sanity"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Luck       LuckConfig       `yaml:"luck"`
	Events     EventConfig      `yaml:"events"`
	Fog        FogConfig        `yaml:"fog"`
	Scenes     SceneConfig      `yaml:"scenes"`
	Engine     EngineConfig     `yaml:"engine"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Maze: MazeConfig{
			Width:         12,
			Height:        12,
			CellSize:      32,
			WallThickness: 4,
		},
		Player: PlayerConfig{
			Speed:            150,
			SprintMultiplier: 1.8,
			DiagonalFactor:   0.707,
			Radius:           8,
			MaxHealth:        100,
			Collision:        CollisionFree,
		},
		HeartRate: HeartRateConfig{
			Base:           75,
			Walking:        85,
			Sprinting:      110,
			Responsiveness: 2,
			Stage1:         80,
			Stage2:         100,
			Stage3:         120,
			Stage1Chance:   0.05,
			Stage2Chance:   0.15,
			Stage3Chance:   0.30,
			DebuffSpeed:    0.7,
			DebuffSeconds:  2,
		},
		Flashlight: FlashlightConfig{
			Angle:             90,
			Range:             150,
			Brightness:        0.8,
			MaxBattery:        100,
			DrainRate:         10,
			ShakeBPMThreshold: 80,
			ShakeMax:          8,
			ShakeBand:         70,
		},
		Items: ItemConfig{
			BatteryRecharge:      50,
			MedkitHeal:           30,
			PickupRadius:         30,
			BatteryCount:         2,
			MedkitCount:          2,
			SpeciesCount:         15,
			MaxPlacementAttempts: 100,
			FakeItemMaxChance:    0.3,
			InventorySlots:       4,
		},
		Sanity: SanityConfig{
			Max:             100,
			Initial:         80,
			GhostLoss:       15,
			Low:             30,
			Critical:        10,
			DistortionStart: 50,
		},
		Enemies: EnemyConfig{
			GhostCount:            4,
			Speed:                 40,
			DetectionRadius:       120,
			CollisionRadius:       20,
			Damage:                15,
			LuckPenalty:           10,
			DirectionChangeChance: 0.03,
			SpawnSafeCells:        3,
			HitCooldownSeconds:    1,
			EventSpawnSpread:      50,
			Behavior:              BehaviorWander,
		},
		Luck: LuckConfig{
			Initial: 80,
			Max:     100,
			Min:     0,
		},
		Events: EventConfig{
			TriggerChance:  0.5,
			Weights:        DefaultEventWeights(),
			HealthDelta:    20,
			SanityDelta:    20,
			LuckBoost:      15,
			CurseFactor:    2,
			MessageSeconds: 3,
		},
		Fog: FogConfig{
			Darkness:        0.7,
			LitRadius:       200,
			UnlitRadius:     80,
			HeartRateStart:  100,
			HeartRateBand:   50,
			HeartRateMaxFog: 0.15,
		},
		Scenes: SceneConfig{
			MinSeconds:        6,
			MaxSeconds:        12,
			TransitionSeconds: 1.5,
		},
		Engine: EngineConfig{
			TicksPerSecond: 60,
			MaxFrameDelta:  0.1,
			MaxMessages:    5,
			Locale:         "en",
		},
	}
}

// DefaultEventWeights returns the stock event weights keyed by event name.
// They sum to 0.95; the remainder falls through to "nothing".
func DefaultEventWeights() map[string]float64 {
	return map[string]float64{
		"escape_portal":    0.02,
		"spawn_ghost":      0.15,
		"damage":           0.20,
		"sanity_loss":      0.15,
		"curse":            0.10,
		"heal":             0.10,
		"sanity_restore":   0.10,
		"luck_boost":       0.05,
		"treasure":         0.03,
		"scene_transition": 0.05,
	}
}

// Load reads a YAML file and applies it on top of the defaults.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse applies YAML data on top of the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid value")

// Validate checks ranges that the simulation relies on
func (c *Config) Validate() error {
	switch {
	case c.Maze.Width < 1 || c.Maze.Height < 1:
		return fmt.Errorf("maze dimensions %dx%d: %w", c.Maze.Width, c.Maze.Height, ErrInvalid)
	case c.Maze.CellSize <= 0:
		return fmt.Errorf("maze cell_size %v: %w", c.Maze.CellSize, ErrInvalid)
	case c.Player.Collision != CollisionFree && c.Player.Collision != CollisionWalls:
		return fmt.Errorf("player collision %q: %w", c.Player.Collision, ErrInvalid)
	case c.Enemies.Behavior != BehaviorWander && c.Enemies.Behavior != BehaviorChase:
		return fmt.Errorf("enemies behavior %q: %w", c.Enemies.Behavior, ErrInvalid)
	case c.Scenes.MinSeconds <= 0 || c.Scenes.MaxSeconds < c.Scenes.MinSeconds:
		return fmt.Errorf("scene interval [%v,%v): %w", c.Scenes.MinSeconds, c.Scenes.MaxSeconds, ErrInvalid)
	case c.Items.InventorySlots < 1:
		return fmt.Errorf("inventory_slots %d: %w", c.Items.InventorySlots, ErrInvalid)
	case c.Events.TriggerChance < 0 || c.Events.TriggerChance > 1:
		return fmt.Errorf("events trigger_chance %v: %w", c.Events.TriggerChance, ErrInvalid)
	case c.Engine.MaxFrameDelta <= 0:
		return fmt.Errorf("engine max_frame_delta %v: %w", c.Engine.MaxFrameDelta, ErrInvalid)
	}

	total := 0.0
	for name, w := range c.Events.Weights {
		if w < 0 {
			return fmt.Errorf("event weight %s=%v: %w", name, w, ErrInvalid)
		}
		total += w
	}
	if total > 1 {
		return fmt.Errorf("event weights sum to %v, more than 1: %w", total, ErrInvalid)
	}
	return nil
}

// Seconds converts a float seconds value to a duration
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
