// Package config provides YAML-based runner configuration loading,
// difficulty presets and startup validation.
package config

// RunnerConfig contains all configuration for the lane runner.
type RunnerConfig struct {
	World       WorldConfig     `yaml:"world"`
	Physics     PhysicsConfig   `yaml:"physics"`
	Spawner     SpawnerConfig   `yaml:"spawner"`
	Collision   CollisionConfig `yaml:"collision"`
	Particles   ParticleConfig  `yaml:"particles"`
	Scenery     SceneryConfig   `yaml:"scenery"`
	Themes      []ThemeConfig   `yaml:"themes"`
	StageLength float64         `yaml:"stage_length"`
	BlendRate   float64         `yaml:"theme_blend_rate"`
	Session     SessionConfig   `yaml:"session"`
	Audio       AudioConfig     `yaml:"audio"`
}

// WorldConfig defines the logical playfield in world units.
type WorldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	LaneHeight    float64 `yaml:"lane_height"`
	LaneStartY    float64 `yaml:"lane_start_y"`
	PlayerX       float64 `yaml:"player_x"`
	PlayerWidth   float64 `yaml:"player_width"`
	PlayerHeight  float64 `yaml:"player_height"`
	SpawnOffset   float64 `yaml:"spawn_offset"`   // Spawn x = Width + SpawnOffset
	DespawnMargin float64 `yaml:"despawn_margin"` // Removed once x < -DespawnMargin
}

// PhysicsConfig defines player motion parameters.
type PhysicsConfig struct {
	InitialSpeed    float64 `yaml:"initial_speed"`
	MaxSpeed        float64 `yaml:"max_speed"`
	Acceleration    float64 `yaml:"acceleration"` // Target speed gain per unit of distance
	LaneSwitchRate  float64 `yaml:"lane_switch_rate"`
	SpeedEase       float64 `yaml:"speed_ease"`
	GasMultiplier   float64 `yaml:"gas_multiplier"`
	BrakeMultiplier float64 `yaml:"brake_multiplier"`
	TiltFactor      float64 `yaml:"tilt_factor"`
	TiltEase        float64 `yaml:"tilt_ease"`
	BounceFrequency float64 `yaml:"bounce_frequency"`
	BounceAmplitude float64 `yaml:"bounce_amplitude"`
}

// SpawnerConfig defines pattern generation parameters.
type SpawnerConfig struct {
	SafeZone     float64    `yaml:"safe_zone"`
	Gap          float64    `yaml:"gap"`
	Thresholds   [3]float64 `yaml:"pattern_thresholds"` // single | coin line | gate | slalom
	ObstacleSize float64    `yaml:"obstacle_size"`
	CoinSize     float64    `yaml:"coin_size"`
	CoinColor    string     `yaml:"coin_color"`
	CoinSpacing  float64    `yaml:"coin_spacing"`
	CoinLineMin  int        `yaml:"coin_line_min"`
	CoinLineMax  int        `yaml:"coin_line_max"`
	SingleLength float64    `yaml:"single_length"`
	CoinLineTail float64    `yaml:"coin_line_tail"`
	GateLength   float64    `yaml:"gate_length"`
	SlalomLength float64    `yaml:"slalom_length"`
	CrateDebris  string     `yaml:"crate_debris_color"`
	BarrelDebris string     `yaml:"barrel_debris_color"`
}

// CollisionConfig defines hitbox insets and the damage window.
type CollisionConfig struct {
	PlayerInsetLeft   float64 `yaml:"player_inset_left"`
	PlayerInsetRight  float64 `yaml:"player_inset_right"`
	PlayerInsetTop    float64 `yaml:"player_inset_top"`
	PlayerInsetBottom float64 `yaml:"player_inset_bottom"`
	EntityInset       float64 `yaml:"entity_inset"`
	Invincibility     int     `yaml:"invincibility_ticks"`
}

// ParticleConfig defines the effects layer.
type ParticleConfig struct {
	ExhaustInterval int     `yaml:"exhaust_interval"`
	Decay           float64 `yaml:"decay"`
	DebrisCount     int     `yaml:"debris_count"`
	SparkleCount    int     `yaml:"sparkle_count"`
	MaxParticles    int     `yaml:"max_particles"`
	SmokeColor      string  `yaml:"smoke_color"`
	SparkleColor    string  `yaml:"sparkle_color"`
}

// SceneryConfig defines the background decoration stream.
type SceneryConfig struct {
	Parallax    float64 `yaml:"parallax"`
	HouseChance float64 `yaml:"house_chance"`
	CarChance   float64 `yaml:"car_chance"`
}

// ThemeConfig is one stage palette. Colors are "#rrggbb".
type ThemeConfig struct {
	Name      string             `yaml:"name"`
	Sky       string             `yaml:"sky"`
	SkyBottom string             `yaml:"sky_bottom"`
	Ground    string             `yaml:"ground"`
	Road      string             `yaml:"road"`
	Stripe    string             `yaml:"stripe"`
	Obstacle  string             `yaml:"obstacle"`
	Details   string             `yaml:"details"`
	Scenery   string             `yaml:"scenery"`
	Weights   map[string]float64 `yaml:"obstacle_weights"`
}

// SessionConfig defines the session controller.
type SessionConfig struct {
	Lives               int `yaml:"lives"`
	StartLockTicks      int `yaml:"start_lock_ticks"`
	TransitionLockTicks int `yaml:"transition_lock_ticks"`
}

// AudioConfig defines the audio trigger.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // Relative, in beep's base-2 units; 0 is unchanged
	SampleRate int     `yaml:"sample_rate"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the difficulty presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset returns the preset with the given name.
func ParsePreset(name string) (DifficultyPreset, bool) {
	for _, p := range Presets {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}
