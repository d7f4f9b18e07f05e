// internal/defs/waves.go
package defs

import (
	"fmt"
	"math"
	"time"
)

// DifficultyCapture selects which wave number a staggered spawn uses for its stats.
type DifficultyCapture string

const (
	// CaptureAtSchedule uses the wave the batch was scheduled for.
	CaptureAtSchedule DifficultyCapture = "schedule"
	// CaptureAtFire uses the wave counter at the moment the spawn event fires.
	CaptureAtFire DifficultyCapture = "fire"
)

// Valid reports whether c is a known policy.
func (c DifficultyCapture) Valid() bool {
	return c == CaptureAtSchedule || c == CaptureAtFire
}

// WaveDefinition описывает параметры волн врагов.
type WaveDefinition struct {
	BaseCount    int               `yaml:"base_count"`     // врагов в волне без учёта номера
	CountPerWave float64           `yaml:"count_per_wave"` // прирост за номер волны, округляется вниз
	Stagger      time.Duration     `yaml:"stagger"`        // интервал между появлением врагов
	Interval     time.Duration     `yaml:"interval"`       // период запуска новых волн
	Difficulty   DifficultyCapture `yaml:"difficulty"`
}

// DefaultWaves is the stock wave schedule.
var DefaultWaves = WaveDefinition{
	BaseCount:    3,
	CountPerWave: 0.5,
	Stagger:      1200 * time.Millisecond,
	Interval:     8000 * time.Millisecond,
	Difficulty:   CaptureAtSchedule,
}

// Count returns how many enemies wave spawns: BaseCount + floor(wave*CountPerWave).
func (d WaveDefinition) Count(wave int) int {
	return d.BaseCount + int(math.Floor(float64(wave)*d.CountPerWave))
}

// SpawnDelay returns the delay of the i-th enemy of a batch.
func (d WaveDefinition) SpawnDelay(i int) time.Duration {
	return time.Duration(i) * d.Stagger
}

func (d WaveDefinition) String() string {
	return fmt.Sprintf("%d+floor(w*%.2f) every %s, stagger %s, difficulty at %s",
		d.BaseCount, d.CountPerWave, d.Interval, d.Stagger, d.Difficulty)
}
