// internal/system/utils.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
)

// ApplyDamage наносит урон врагу. Здоровье не опускается ниже нуля.
// Возвращает true, если враг убит этим попаданием.
func ApplyDamage(e *component.Enemy, damage int) bool {
	if damage < 0 {
		damage = 0
	}
	e.Health -= damage
	if e.Health <= 0 {
		e.Health = 0
		return true
	}
	return false
}

// World — общее состояние сессии, которое системы получают по ссылке
type World struct {
	Registry   *entity.Registry
	State      *component.GameState
	Dispatcher *event.Dispatcher
}

// statsChanged просит HUD перерисоваться
func (w *World) statsChanged() {
	w.Dispatcher.Dispatch(event.Event{Type: event.StatsChanged, Data: *w.State})
}

// removeEnemy убирает врага из живого множества и отправляет событие типа t
func (w *World) removeEnemy(h types.Handle, t event.EventType) bool {
	if !w.Registry.RemoveEnemy(h) {
		return false
	}
	w.Dispatcher.Dispatch(event.Event{Type: t, Data: h})
	return true
}
