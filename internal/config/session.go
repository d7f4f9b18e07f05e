// internal/config/session.go
package config

import (
	"fmt"
	"os"
	"time"

	"go-path-defense/internal/defs"
	"go-path-defense/pkg/route"

	"gopkg.in/yaml.v3"
)

// PlayerConfig holds the starting resources of a session.
type PlayerConfig struct {
	Health int `yaml:"health"`
	Money  int `yaml:"money"`
	Wave   int `yaml:"wave"`
}

// EconomyConfig holds the resource changes caused by enemies.
type EconomyConfig struct {
	KillReward   int `yaml:"kill_reward"`
	EscapeDamage int `yaml:"escape_damage"`
}

// BulletConfig holds projectile parameters shared by all towers.
type BulletConfig struct {
	Speed float64 `yaml:"speed"`
}

// TowerPlacement is a tower placed for free when the session starts.
type TowerPlacement struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Kind string  `yaml:"kind"`
}

// Config is the full session configuration.
// Every tower entry present in a YAML file must be complete: entries replace defaults as a whole.
type Config struct {
	TickRate       int                             `yaml:"tick_rate"` // simulation ticks per second of simulation time
	Player         PlayerConfig                    `yaml:"player"`
	Path           []route.Waypoint                `yaml:"path"`
	Towers         map[string]defs.TowerDefinition `yaml:"towers"`
	Enemy          defs.EnemyDefinition            `yaml:"enemy"`
	Waves          defs.WaveDefinition             `yaml:"waves"`
	Economy        EconomyConfig                   `yaml:"economy"`
	Bullet         BulletConfig                    `yaml:"bullet"`
	StartingTowers []TowerPlacement                `yaml:"starting_towers"`
}

// Default returns the stock session: the fixed five-waypoint route, 100 health,
// 100 money and one free basic tower in the middle of the field.
func Default() *Config {
	towers := make(map[string]defs.TowerDefinition, len(defs.TowerKinds))
	for _, k := range defs.TowerKinds {
		towers[k.String()] = defs.DefaultTowers[k]
	}

	return &Config{
		TickRate: TicksPerSecond,
		Player:   PlayerConfig{Health: 100, Money: 100, Wave: 1},
		Path: []route.Waypoint{
			{X: 0, Y: 100},
			{X: 760, Y: 100},
			{X: 760, Y: 400},
			{X: 0, Y: 400},
			{X: 0, Y: 580},
		},
		Towers:         towers,
		Enemy:          defs.DefaultEnemy,
		Waves:          defs.DefaultWaves,
		Economy:        EconomyConfig{KillReward: 10, EscapeDamage: 10},
		Bullet:         BulletConfig{Speed: 5},
		StartingTowers: []TowerPlacement{{X: 400, Y: 300, Kind: "basic"}},
	}
}

// Load reads a YAML file over Default() and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read session config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("session config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default() and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Validate checks ranges and the route invariants.
func (c *Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %d", c.TickRate)
	}
	if c.Player.Health <= 0 {
		return fmt.Errorf("player.health must be positive, got %d", c.Player.Health)
	}
	if c.Player.Money < 0 {
		return fmt.Errorf("player.money cannot be negative, got %d", c.Player.Money)
	}
	if c.Player.Wave < 1 {
		return fmt.Errorf("player.wave must be at least 1, got %d", c.Player.Wave)
	}

	if _, err := route.New(c.Path); err != nil {
		return fmt.Errorf("path: %w", err)
	}

	if _, err := c.TowerTable(); err != nil {
		return err
	}

	if err := validateEnemy(c.Enemy); err != nil {
		return err
	}
	if err := validateWaves(c.Waves); err != nil {
		return err
	}

	if c.Economy.KillReward < 0 {
		return fmt.Errorf("economy.kill_reward cannot be negative, got %d", c.Economy.KillReward)
	}
	if c.Economy.EscapeDamage < 0 {
		return fmt.Errorf("economy.escape_damage cannot be negative, got %d", c.Economy.EscapeDamage)
	}
	if c.Bullet.Speed <= 0 {
		return fmt.Errorf("bullet.speed must be positive, got %f", c.Bullet.Speed)
	}

	for i, p := range c.StartingTowers {
		if _, err := defs.ParseTowerKind(p.Kind); err != nil {
			return fmt.Errorf("starting_towers[%d]: %w", i, err)
		}
	}
	return nil
}

func validateEnemy(e defs.EnemyDefinition) error {
	if e.BaseHealth <= 0 {
		return fmt.Errorf("enemy.base_health must be positive, got %d", e.BaseHealth)
	}
	if e.HealthPerWave < 0 {
		return fmt.Errorf("enemy.health_per_wave cannot be negative, got %d", e.HealthPerWave)
	}
	if e.BaseSpeed <= 0 {
		return fmt.Errorf("enemy.base_speed must be positive, got %f", e.BaseSpeed)
	}
	if e.SpeedPerWave < 0 {
		return fmt.Errorf("enemy.speed_per_wave cannot be negative, got %f", e.SpeedPerWave)
	}
	if e.Size <= 0 {
		return fmt.Errorf("enemy.size must be positive, got %f", e.Size)
	}
	return nil
}

func validateWaves(w defs.WaveDefinition) error {
	if w.BaseCount < 0 || w.CountPerWave < 0 {
		return fmt.Errorf("waves: counts cannot be negative (base %d, per wave %f)", w.BaseCount, w.CountPerWave)
	}
	if w.Stagger < 0 {
		return fmt.Errorf("waves.stagger cannot be negative, got %s", w.Stagger)
	}
	if w.Interval <= 0 {
		return fmt.Errorf("waves.interval must be positive, got %s", w.Interval)
	}
	if !w.Difficulty.Valid() {
		return fmt.Errorf("waves.difficulty must be %q or %q, got %q",
			defs.CaptureAtSchedule, defs.CaptureAtFire, w.Difficulty)
	}
	return nil
}

// TowerTable resolves the towers section into a table with one entry per kind.
func (c *Config) TowerTable() (defs.TowerTable, error) {
	var table defs.TowerTable
	seen := make(map[defs.TowerKind]bool, len(c.Towers))
	for name, def := range c.Towers {
		kind, err := defs.ParseTowerKind(name)
		if err != nil {
			return table, fmt.Errorf("towers: %w", err)
		}
		if def.Range <= 0 {
			return table, fmt.Errorf("tower %s: range must be positive, got %f", name, def.Range)
		}
		if def.Damage < 0 {
			return table, fmt.Errorf("tower %s: damage cannot be negative, got %d", name, def.Damage)
		}
		if def.FireRatePeriod < 0 {
			return table, fmt.Errorf("tower %s: fire_rate_period cannot be negative, got %d", name, def.FireRatePeriod)
		}
		if def.Cost < 0 {
			return table, fmt.Errorf("tower %s: cost cannot be negative, got %d", name, def.Cost)
		}
		table[kind] = def
		seen[kind] = true
	}
	for _, k := range defs.TowerKinds {
		if !seen[k] {
			return table, fmt.Errorf("towers: missing definition for %s", k)
		}
	}
	return table, nil
}

// Route builds the validated path.
func (c *Config) Route() (*route.Path, error) {
	return route.New(c.Path)
}

// TickDuration is the simulation time covered by one tick.
func (c *Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
