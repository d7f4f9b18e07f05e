// internal/system/combat.go
package system

import (
	"log"

	"go-path-defense/internal/component"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
	"go-path-defense/internal/utils"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	world       *World
	bulletSpeed float64
	Verbose     bool
}

func NewCombatSystem(world *World, bulletSpeed float64) *CombatSystem {
	return &CombatSystem{world: world, bulletSpeed: bulletSpeed}
}

// Update обрабатывает башни в порядке постройки.
// Башня на перезарядке только уменьшает счётчик. Готовая башня стреляет
// в первого по порядку появления врага в радиусе и уходит на перезарядку.
func (s *CombatSystem) Update() {
	enemies := s.world.Registry.LiveEnemies()
	for _, tower := range s.world.Registry.Towers() {
		if s.world.State.Ended() {
			return
		}
		if !tower.Ready() {
			tower.FireCooldown--
			continue
		}

		target, ok := s.findTarget(tower, enemies)
		if !ok {
			continue
		}

		bullet := &component.Bullet{
			Position: tower.Position,
			Target:   target,
			Speed:    s.bulletSpeed,
			Damage:   tower.Damage,
		}
		s.world.Registry.AddBullet(bullet)
		tower.FireCooldown = tower.FireRatePeriod

		if s.Verbose {
			log.Printf("[CombatSystem] %s tower at (%.0f, %.0f) fired at %s", tower.Kind, tower.X, tower.Y, target)
		}
		s.world.Dispatcher.Dispatch(event.Event{Type: event.BulletFired, Data: target})
	}
}

// findTarget возвращает первого живого врага в радиусе башни
func (s *CombatSystem) findTarget(tower *component.Tower, enemies []types.Handle) (types.Handle, bool) {
	for _, h := range enemies {
		enemy, ok := s.world.Registry.Enemy(h)
		if !ok {
			continue
		}
		if utils.Distance(tower.X, tower.Y, enemy.X, enemy.Y) <= tower.Range {
			return h, true
		}
	}
	return types.Handle{}, false
}
