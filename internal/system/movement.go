// internal/system/movement.go
package system

import (
	"log"

	"go-path-defense/internal/component"
	"go-path-defense/internal/event"
	"go-path-defense/internal/utils"
	"go-path-defense/pkg/route"
)

// AdvanceEnemy сдвигает врага на один тик вдоль маршрута.
// Если до следующего waypoint осталось меньше Speed, враг встаёт на него,
// остаток хода пропадает. Возвращает true, когда враг дошёл до последнего waypoint.
func AdvanceEnemy(e *component.Enemy, path *route.Path) (escaped bool) {
	target, ok := path.At(e.SegmentIndex + 1)
	if !ok {
		return true
	}

	dist := utils.Distance(e.X, e.Y, target.X, target.Y)
	if dist < e.Speed {
		e.X, e.Y = target.X, target.Y
		e.SegmentIndex++
		return e.SegmentIndex >= path.Len()-1
	}

	e.X, e.Y = utils.StepToward(e.X, e.Y, target.X, target.Y, e.Speed)
	return false
}

// MovementSystem двигает врагов по маршруту и снимает урон за прорвавшихся
type MovementSystem struct {
	world        *World
	path         *route.Path
	escapeDamage int
	Verbose      bool
}

func NewMovementSystem(world *World, path *route.Path, escapeDamage int) *MovementSystem {
	return &MovementSystem{world: world, path: path, escapeDamage: escapeDamage}
}

func (s *MovementSystem) Update() {
	for _, h := range s.world.Registry.LiveEnemies() {
		if s.world.State.Ended() {
			return
		}
		enemy, ok := s.world.Registry.Enemy(h)
		if !ok {
			continue
		}
		if !AdvanceEnemy(enemy, s.path) {
			continue
		}

		// Враг прорвался к концу маршрута
		if s.world.removeEnemy(h, event.EnemyEscaped) {
			s.world.State.TakeDamage(s.escapeDamage)
			if s.Verbose {
				log.Printf("[MovementSystem] enemy %s escaped, health %d", h, s.world.State.Health)
			}
			s.world.statsChanged()
		}
	}
}
