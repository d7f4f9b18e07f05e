// internal/system/state.go
package system

import (
	"log"

	"go-path-defense/internal/component"
	"go-path-defense/internal/event"
)

// StateSystem следит за условием поражения
type StateSystem struct {
	world *World
	waves *WaveSystem
}

func NewStateSystem(world *World, waves *WaveSystem) *StateSystem {
	return &StateSystem{world: world, waves: waves}
}

// Update переводит сессию в фазу GameOver, когда здоровье исчерпано.
// Переход происходит один раз: волны останавливаются, GameOver отправляется единожды.
func (s *StateSystem) Update() bool {
	gs := s.world.State
	if gs.IsOver() || !gs.Defeated() {
		return false
	}
	gs.Phase = component.PhaseGameOver
	dropped := s.waves.Stop()
	log.Printf("[StateSystem] game over: health %d, money %d, wave %d, %d scheduled events dropped",
		gs.Health, gs.Money, gs.Wave, dropped)
	s.world.Dispatcher.Dispatch(event.Event{Type: event.GameOver, Data: *gs})
	return true
}

// Current возвращает текущую фазу сессии
func (s *StateSystem) Current() component.Phase {
	return s.world.State.Phase
}
