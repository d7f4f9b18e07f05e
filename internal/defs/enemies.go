// internal/defs/enemies.go
package defs

// EnemyDefinition holds the difficulty curve of the single enemy type.
// Stats are computed once, from the wave number the enemy is spawned for.
type EnemyDefinition struct {
	BaseHealth    int     `yaml:"base_health"`
	HealthPerWave int     `yaml:"health_per_wave"`
	BaseSpeed     float64 `yaml:"base_speed"`
	SpeedPerWave  float64 `yaml:"speed_per_wave"`
	Size          float64 `yaml:"size"`
}

// DefaultEnemy is the stock difficulty curve.
var DefaultEnemy = EnemyDefinition{
	BaseHealth:    30,
	HealthPerWave: 5,
	BaseSpeed:     0.8,
	SpeedPerWave:  0.05,
	Size:          30,
}

// MaxHealth returns the max health of an enemy spawned for wave.
func (d EnemyDefinition) MaxHealth(wave int) int {
	return d.BaseHealth + wave*d.HealthPerWave
}

// Speed returns the per-tick speed of an enemy spawned for wave.
func (d EnemyDefinition) Speed(wave int) float64 {
	return d.BaseSpeed + float64(wave)*d.SpeedPerWave
}
