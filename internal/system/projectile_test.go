package system

import (
	"math"
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
)

// Два попадания по 15 убивают врага с 30 HP и приносят ровно 10 монет
func TestTwoHitsKill(t *testing.T) {
	w, events := newTestWorld(t)
	h, enemy := addEnemyAt(w, 100, 100, 30)
	for i := 0; i < 3; i++ {
		w.Registry.AddBullet(&component.Bullet{
			Position: component.Position{X: 98, Y: 100},
			Target:   h,
			Speed:    5,
			Damage:   15,
		})
	}

	NewProjectileSystem(w, 10).Update()

	if enemy.Health != 0 {
		t.Errorf("Expected health 0, got %d", enemy.Health)
	}
	if w.Registry.Alive(h) {
		t.Error("Killed enemy is still alive")
	}
	if w.State.Money != 110 {
		t.Errorf("Expected money 110, got %d", w.State.Money)
	}
	if events[event.EnemyKilled] != 1 || events[event.StatsChanged] != 1 {
		t.Errorf("Expected one kill and one HUD refresh, got %v", events)
	}
	if n := len(w.Registry.LiveBullets()); n != 0 {
		t.Errorf("All bullets should be gone, %d left", n)
	}
}

func TestBulletHoming(t *testing.T) {
	w, _ := newTestWorld(t)
	h, enemy := addEnemyAt(w, 30, 40, 30)
	bullet := &component.Bullet{Target: h, Speed: 5, Damage: 10}
	w.Registry.AddBullet(bullet)
	projectiles := NewProjectileSystem(w, 10)

	projectiles.Update()
	if math.Abs(bullet.X-3) > 1e-9 || math.Abs(bullet.Y-4) > 1e-9 {
		t.Fatalf("Expected bullet at (3,4), got (%v,%v)", bullet.X, bullet.Y)
	}

	// Цель сместилась, снаряд перенацеливается на её текущую позицию
	bullet.X, bullet.Y = 3, 4
	enemy.X, enemy.Y = 3, 40
	projectiles.Update()
	if bullet.X != 3 || bullet.Y != 9 {
		t.Fatalf("Expected bullet at (3,9), got (%v,%v)", bullet.X, bullet.Y)
	}
}

func TestStaleTargetDiscardsBullet(t *testing.T) {
	w, events := newTestWorld(t)
	h, _ := addEnemyAt(w, 0, 0, 30)
	w.Registry.AddBullet(&component.Bullet{Target: h, Speed: 5, Damage: 15})
	w.Registry.AddBullet(&component.Bullet{Target: types.Handle{}, Speed: 5, Damage: 15})
	w.Registry.RemoveEnemy(h)

	// Слот переиспользуется новым врагом, старый handle его не задевает
	_, fresh := addEnemyAt(w, 0, 0, 30)

	NewProjectileSystem(w, 10).Update()

	if fresh.Health != 30 {
		t.Errorf("Stale bullet damaged a recycled slot: health %d", fresh.Health)
	}
	if n := len(w.Registry.LiveBullets()); n != 0 {
		t.Errorf("Expected stale bullets discarded, %d left", n)
	}
	if w.State.Money != 100 || len(events) != 0 {
		t.Errorf("Stale bullets must have no effect, money %d events %v", w.State.Money, events)
	}
}

// Здоровье врага не растёт, а после удаления компонент больше не меняется
func TestEnemyHealthMonotonic(t *testing.T) {
	w, _ := newTestWorld(t)
	w.State.Health = 1000
	waves, sched := newTestWaves(w, defaultWaves())
	addTower(w, 400, 300, 0)
	addTower(w, 380, 150, 1)
	movement := NewMovementSystem(w, fieldPath, 10)
	combat := NewCombatSystem(w, 5)
	projectiles := NewProjectileSystem(w, 10)
	waves.Start()

	type seen struct {
		enemy  *component.Enemy
		health int
		x, y   float64
		dead   bool
	}
	tracked := map[types.Handle]*seen{}

	for tick := 0; tick < 4000; tick++ {
		sched.RunDue()
		for _, h := range w.Registry.LiveEnemies() {
			if _, ok := tracked[h]; !ok {
				e, _ := w.Registry.Enemy(h)
				tracked[h] = &seen{enemy: e, health: e.Health}
			}
		}
		movement.Update()
		combat.Update()
		projectiles.Update()
		w.Registry.Sweep()
		sched.AdvanceTo(sched.Now() + tickDuration)

		for h, s := range tracked {
			e := s.enemy
			if s.dead {
				if e.Health != s.health || e.X != s.x || e.Y != s.y {
					t.Fatalf("Tick %d: removed enemy %s was mutated", tick, h)
				}
				continue
			}
			if e.Health > s.health {
				t.Fatalf("Tick %d: enemy %s health grew %d -> %d", tick, h, s.health, e.Health)
			}
			if e.Health < 0 || e.Health > e.MaxHealth {
				t.Fatalf("Tick %d: enemy %s health %d out of [0, %d]", tick, h, e.Health, e.MaxHealth)
			}
			s.health, s.x, s.y = e.Health, e.X, e.Y
			s.dead = !w.Registry.Alive(h)
		}
	}

	kills := 0
	for _, s := range tracked {
		if s.dead && s.health == 0 {
			kills++
		}
	}
	if kills == 0 {
		t.Error("Expected the towers to kill at least one enemy")
	}
}
