// internal/system/wave.go
package system

import (
	"log"
	"time"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
	"go-path-defense/internal/schedule"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/route"
)

// WaveSystem планирует волны врагов на шкале планировщика
type WaveSystem struct {
	world     *World
	scheduler *schedule.Scheduler
	path      *route.Path
	enemy     defs.EnemyDefinition
	waves     defs.WaveDefinition
	repeatID  schedule.EventID // периодический запуск волн, 0 если не запущен
	spawns    map[schedule.EventID]struct{}
}

func NewWaveSystem(world *World, scheduler *schedule.Scheduler, path *route.Path,
	enemy defs.EnemyDefinition, waves defs.WaveDefinition) *WaveSystem {
	return &WaveSystem{
		world:     world,
		scheduler: scheduler,
		path:      path,
		enemy:     enemy,
		waves:     waves,
		spawns:    make(map[schedule.EventID]struct{}),
	}
}

// Start запускает первую волну сразу и дальше по одной каждые waves.Interval.
// Повторный вызов ничего не делает.
func (s *WaveSystem) Start() {
	if s.repeatID != 0 {
		return
	}
	s.SpawnWave()
	s.repeatID = s.scheduler.Every(s.waves.Interval, func(time.Duration) {
		s.SpawnWave()
	})
}

// Stop снимает периодический запуск волн и всех ещё не появившихся врагов.
// Возвращает число снятых событий.
func (s *WaveSystem) Stop() int {
	cancelled := 0
	if s.repeatID != 0 && s.scheduler.Cancel(s.repeatID) {
		cancelled++
	}
	s.repeatID = 0
	for id := range s.spawns {
		if s.scheduler.Cancel(id) {
			cancelled++
		}
	}
	clear(s.spawns)
	return cancelled
}

// SpawnWave планирует появление врагов текущей волны с интервалом waves.Stagger
// и сразу увеличивает счётчик волн. Возвращает число запланированных врагов.
func (s *WaveSystem) SpawnWave() int {
	if s.world.State.Ended() {
		return 0
	}

	wave := s.world.State.Wave
	count := s.waves.Count(wave)
	for i := 0; i < count; i++ {
		var id schedule.EventID
		id = s.scheduler.After(s.waves.SpawnDelay(i), func(time.Duration) {
			delete(s.spawns, id)
			s.spawnScheduled(wave)
		})
		s.spawns[id] = struct{}{}
	}
	s.world.State.AdvanceWave()

	log.Printf("[WaveSystem] wave %d started: %d enemies every %s", wave, count, s.waves.Stagger)
	s.world.Dispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WavePayload{Wave: wave, Count: count},
	})
	s.world.statsChanged()
	return count
}

// spawnScheduled срабатывает из планировщика. После конца игры враги не появляются.
func (s *WaveSystem) spawnScheduled(scheduledWave int) {
	if s.world.State.Ended() {
		return
	}
	wave := scheduledWave
	if s.waves.Difficulty == defs.CaptureAtFire {
		wave = s.world.State.Wave
	}
	s.SpawnEnemy(wave)
}

// SpawnEnemy создаёт врага в начале маршрута с параметрами волны wave
func (s *WaveSystem) SpawnEnemy(wave int) types.Handle {
	start := s.path.Start()
	maxHealth := s.enemy.MaxHealth(wave)
	enemy := &component.Enemy{
		Position:  component.Position{X: start.X, Y: start.Y},
		Size:      s.enemy.Size,
		MaxHealth: maxHealth,
		Health:    maxHealth,
		Speed:     s.enemy.Speed(wave),
		Wave:      wave,
	}
	h := s.world.Registry.AddEnemy(enemy)
	s.world.Dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: h})
	return h
}
