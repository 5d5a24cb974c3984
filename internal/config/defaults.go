package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default lane runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:         1280,
			Height:        720,
			LaneHeight:    120,
			LaneStartY:    320,
			PlayerX:       180,
			PlayerWidth:   200,
			PlayerHeight:  120,
			SpawnOffset:   100,
			DespawnMargin: 200,
		},
		Physics: PhysicsConfig{
			InitialSpeed:    4,
			MaxSpeed:        16,
			Acceleration:    0.0002,
			LaneSwitchRate:  0.12,
			SpeedEase:       0.05,
			GasMultiplier:   1.3,
			BrakeMultiplier: 0.7,
			TiltFactor:      0.05,
			TiltEase:        0.2,
			BounceFrequency: 0.2,
			BounceAmplitude: 3,
		},
		Spawner: SpawnerConfig{
			SafeZone:     1000,
			Gap:          500,
			Thresholds:   [3]float64{0.3, 0.6, 0.8},
			ObstacleSize: 80,
			CoinSize:     50,
			CoinColor:    "#f1c40f",
			CoinSpacing:  70,
			CoinLineMin:  5,
			CoinLineMax:  10,
			SingleLength: 400,
			CoinLineTail: 300,
			GateLength:   500,
			SlalomLength: 600,
			CrateDebris:  "#d35400",
			BarrelDebris: "#3498db",
		},
		Collision: CollisionConfig{
			PlayerInsetLeft:   25,
			PlayerInsetRight:  25,
			PlayerInsetTop:    35,
			PlayerInsetBottom: 35,
			EntityInset:       15,
			Invincibility:     180,
		},
		Particles: ParticleConfig{
			ExhaustInterval: 5,
			Decay:           0.95,
			DebrisCount:     8,
			SparkleCount:    10,
			MaxParticles:    512,
			SmokeColor:      "#f0f0f0",
			SparkleColor:    "#f1c40f",
		},
		Scenery: SceneryConfig{
			Parallax:    0.5,
			HouseChance: 0.6,
			CarChance:   0.5,
		},
		Themes: []ThemeConfig{
			{
				Name: "Idyllic Suburbia", Sky: "#87ceeb", SkyBottom: "#e0f7fa",
				Ground: "#55efc4", Road: "#636e72", Stripe: "#dfe6e9",
				Obstacle: "#ff7675", Details: "#00b894", Scenery: "#ffffff",
				Weights: map[string]float64{"cone": 0.5, "barrier": 0.3, "barrel": 0.2},
			},
			{
				Name: "Sunny Village", Sky: "#81ecec", SkyBottom: "#00cec9",
				Ground: "#55efc4", Road: "#b2bec3", Stripe: "#ffffff",
				Obstacle: "#e17055", Details: "#00b894", Scenery: "#00b894",
				Weights: map[string]float64{"cone": 0.4, "rock": 0.3, "crate": 0.3},
			},
			{
				Name: "Construction Site", Sky: "#ffeaa7", SkyBottom: "#fab1a0",
				Ground: "#fdcb6e", Road: "#2d3436", Stripe: "#fdcb6e",
				Obstacle: "#ffeaa7", Details: "#636e72", Scenery: "#2d3436",
				Weights: map[string]float64{"cone": 0.2, "barrier": 0.2, "crate": 0.3, "barrel": 0.3},
			},
		},
		StageLength: 10000,
		BlendRate:   0.01,
		Session: SessionConfig{
			Lives:               3,
			StartLockTicks:      12,
			TransitionLockTicks: 18,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
