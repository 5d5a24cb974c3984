package runner

import (
	"testing"
)

func coinsAndObstacles(entities []Entity) (coins []*Coin, obstacles []*Obstacle) {
	for _, e := range entities {
		switch e := e.(type) {
		case *Coin:
			coins = append(coins, e)
		case *Obstacle:
			obstacles = append(obstacles, e)
		}
	}
	return coins, obstacles
}

func TestSpawnerGate(t *testing.T) {
	r := testRules(t)
	s := newSpawner(r, 1)
	theme := r.themes[0]

	if got := s.update(nil, 999, theme, theme.Name); len(got) != 0 {
		t.Fatalf("nothing should spawn inside the safe zone, got %d", len(got))
	}

	got := s.update(nil, 1000, theme, theme.Name)
	if len(got) == 0 {
		t.Fatal("a pattern should spawn at the safe zone boundary")
	}
	if s.NextSpawn() <= 1000+500 {
		t.Errorf("next spawn %v should be past distance + gap", s.NextSpawn())
	}

	if again := s.update(nil, 1001, theme, theme.Name); len(again) != 0 {
		t.Error("spawner should wait for the next spawn distance")
	}
}

func TestSpawnerPatternLengths(t *testing.T) {
	r := testRules(t)
	theme := r.themes[0]

	tests := []struct {
		pattern Pattern
		want    float64
	}{
		{PatternSingle, 400},
		{PatternGate, 500},
		{PatternSlalom, 600},
	}
	for _, tt := range tests {
		t.Run(tt.pattern.String(), func(t *testing.T) {
			s := newSpawner(r, 7)
			_, length := s.spawn(nil, tt.pattern, theme, theme.Name)
			if length != tt.want {
				t.Errorf("length = %v, expected %v", length, tt.want)
			}
		})
	}
}

func TestSpawnerCoinLine(t *testing.T) {
	r := testRules(t)
	theme := r.themes[0]

	for seed := int64(0); seed < 50; seed++ {
		s := newSpawner(r, seed)
		got, length := s.spawn(nil, PatternCoinLine, theme, theme.Name)
		coins, obstacles := coinsAndObstacles(got)

		if len(obstacles) != 0 {
			t.Fatalf("seed %d: coin line spawned obstacles", seed)
		}
		if len(coins) < 5 || len(coins) > 10 {
			t.Fatalf("seed %d: %d coins, expected 5..10", seed, len(coins))
		}
		if length != float64(len(coins))*70+300 {
			t.Errorf("seed %d: length %v for %d coins", seed, length, len(coins))
		}
		for i, c := range coins {
			if c.Lane != coins[0].Lane {
				t.Fatalf("seed %d: coin %d left the lane", seed, i)
			}
			if c.X != 1380+float64(i)*70 {
				t.Errorf("seed %d: coin %d at x=%v", seed, i, c.X)
			}
			if c.Y != r.laneCenter(c.Lane) {
				t.Errorf("coin should sit on the lane center, got %v", c.Y)
			}
		}
	}
}

func TestSpawnerGatePattern(t *testing.T) {
	r := testRules(t)
	theme := r.themes[0]

	for seed := int64(0); seed < 30; seed++ {
		s := newSpawner(r, seed)
		got, _ := s.spawn(nil, PatternGate, theme, theme.Name)
		coins, obstacles := coinsAndObstacles(got)

		if len(coins) != 3 || len(obstacles) != 2 {
			t.Fatalf("seed %d: gate gave %d coins and %d obstacles", seed, len(coins), len(obstacles))
		}
		safe := coins[0].Lane
		for _, c := range coins {
			if c.Lane != safe {
				t.Fatalf("seed %d: coins split across lanes", seed)
			}
		}
		for _, o := range obstacles {
			if o.Lane == safe {
				t.Fatalf("seed %d: obstacle in the safe lane", seed)
			}
			if o.X != 1380+50 {
				t.Errorf("obstacle x = %v, expected 1430", o.X)
			}
			if o.Color != theme.Obstacle {
				t.Errorf("obstacle should take the theme color")
			}
		}
	}
}

func TestSpawnerSlalomPattern(t *testing.T) {
	r := testRules(t)
	theme := r.themes[0]

	for seed := int64(0); seed < 30; seed++ {
		s := newSpawner(r, seed)
		got, _ := s.spawn(nil, PatternSlalom, theme, theme.Name)
		coins, obstacles := coinsAndObstacles(got)

		if len(coins) != 4 || len(obstacles) != 1 {
			t.Fatalf("seed %d: slalom gave %d coins and %d obstacles", seed, len(coins), len(obstacles))
		}
		start, next := coins[0].Lane, coins[2].Lane
		if coins[1].Lane != start || coins[3].Lane != next {
			t.Fatalf("seed %d: coin pairs should share a lane", seed)
		}
		if start == next {
			t.Fatalf("seed %d: slalom should change lanes", seed)
		}
		if start != LaneMiddle && next != LaneMiddle {
			t.Errorf("seed %d: outer start lanes should shift to the middle", seed)
		}
		if obstacles[0].Lane != start {
			t.Errorf("seed %d: obstacle should block the abandoned lane", seed)
		}
		if obstacles[0].X != 1380+300 {
			t.Errorf("obstacle x = %v, expected 1680", obstacles[0].X)
		}
	}
}

func TestSpawnerWeightsByStage(t *testing.T) {
	r := testRules(t)
	theme := r.themes[0]

	tests := []struct {
		stage   string
		allowed map[ObstacleKind]bool
	}{
		{"Idyllic Suburbia", map[ObstacleKind]bool{ObstacleCone: true, ObstacleBarrier: true, ObstacleBarrel: true}},
		{"Sunny Village", map[ObstacleKind]bool{ObstacleCone: true, ObstacleRock: true, ObstacleCrate: true}},
		{"Construction Site", map[ObstacleKind]bool{ObstacleCone: true, ObstacleBarrier: true, ObstacleCrate: true, ObstacleBarrel: true}},
	}

	for _, tt := range tests {
		t.Run(tt.stage, func(t *testing.T) {
			s := newSpawner(r, 42)
			seen := make(map[ObstacleKind]int)
			for i := 0; i < 2000; i++ {
				got, _ := s.spawn(nil, PatternSingle, theme, tt.stage)
				o := got[0].(*Obstacle)
				if !tt.allowed[o.Kind] {
					t.Fatalf("stage %s spawned %s", tt.stage, o.Kind)
				}
				seen[o.Kind]++
			}
			for kind := range tt.allowed {
				if seen[kind] == 0 {
					t.Errorf("stage %s never spawned %s", tt.stage, kind)
				}
			}
		})
	}
}

func TestSpawnerPatternMix(t *testing.T) {
	r := testRules(t)
	theme := r.themes[0]
	s := newSpawner(r, 3)

	counts := make(map[int]int)
	distance := 0.0
	for i := 0; i < 4000; i++ {
		distance = s.NextSpawn()
		got := s.update(nil, distance, theme, theme.Name)
		counts[len(got)]++
	}

	// Single: 1 entity, gate: 5, slalom: 5, coin line: 5..10.
	if counts[1] == 0 {
		t.Error("no single obstacle patterns")
	}
	if counts[5] == 0 {
		t.Error("no five-entity patterns")
	}
	if frac := float64(counts[1]) / 4000; frac < 0.25 || frac > 0.35 {
		t.Errorf("single patterns = %.2f of draws, expected about 0.3", frac)
	}
}
