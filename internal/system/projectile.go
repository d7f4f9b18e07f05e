// internal/system/projectile.go
package system

import (
	"log"

	"go-path-defense/internal/event"
	"go-path-defense/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	world      *World
	killReward int
	Verbose    bool
}

func NewProjectileSystem(world *World, killReward int) *ProjectileSystem {
	return &ProjectileSystem{world: world, killReward: killReward}
}

func (s *ProjectileSystem) Update() {
	for _, bullet := range s.world.Registry.LiveBullets() {
		if s.world.State.Ended() {
			return
		}
		if !s.world.Registry.BulletAlive(bullet) {
			continue
		}

		// Цель пропала, снаряд исчезает без эффекта
		target, ok := s.world.Registry.Enemy(bullet.Target)
		if !ok {
			s.world.Registry.RemoveBullet(bullet)
			continue
		}

		dist := utils.Distance(bullet.X, bullet.Y, target.X, target.Y)
		if dist > bullet.Speed {
			bullet.X, bullet.Y = utils.StepToward(bullet.X, bullet.Y, target.X, target.Y, bullet.Speed)
			continue
		}

		s.world.Registry.RemoveBullet(bullet)
		if !ApplyDamage(target, bullet.Damage) {
			continue
		}
		if s.world.removeEnemy(bullet.Target, event.EnemyKilled) {
			s.world.State.Earn(s.killReward)
			if s.Verbose {
				log.Printf("[ProjectileSystem] enemy %s killed, money %d", bullet.Target, s.world.State.Money)
			}
			s.world.statsChanged()
		}
	}
}
