package entity

import (
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/types"
)

func TestEnemyHandles(t *testing.T) {
	r := NewRegistry()
	a := r.AddEnemy(&component.Enemy{Health: 10})
	b := r.AddEnemy(&component.Enemy{Health: 20})

	if a == b {
		t.Fatal("Handles should be unique")
	}
	if a.IsZero() {
		t.Fatal("Handle of a live enemy should not be zero")
	}

	e, ok := r.Enemy(b)
	if !ok || e.Health != 20 {
		t.Fatalf("Expected enemy with health 20, got %v, %v", e, ok)
	}

	if !r.RemoveEnemy(a) {
		t.Fatal("RemoveEnemy should succeed")
	}
	if r.RemoveEnemy(a) {
		t.Error("Second RemoveEnemy should report false")
	}
	if _, ok := r.Enemy(a); ok {
		t.Error("Removed handle still resolves")
	}
}

func TestStaleHandleAfterSlotReuse(t *testing.T) {
	r := NewRegistry()
	old := r.AddEnemy(&component.Enemy{Health: 1})
	r.RemoveEnemy(old)
	r.Sweep()

	fresh := r.AddEnemy(&component.Enemy{Health: 2})
	if fresh.Index != old.Index {
		t.Fatalf("Expected slot reuse, got %d and %d", old.Index, fresh.Index)
	}
	if _, ok := r.Enemy(old); ok {
		t.Error("Stale handle resolves to the enemy in the reused slot")
	}
	if e, ok := r.Enemy(fresh); !ok || e.Health != 2 {
		t.Error("Fresh handle does not resolve")
	}
}

func TestZeroHandleIsInvalid(t *testing.T) {
	r := NewRegistry()
	r.AddEnemy(&component.Enemy{})
	if r.Alive(types.Handle{}) {
		t.Error("Zero handle should never resolve")
	}
}

func TestLiveEnemiesOrderAndSweep(t *testing.T) {
	r := NewRegistry()
	h1 := r.AddEnemy(&component.Enemy{Health: 1})
	h2 := r.AddEnemy(&component.Enemy{Health: 2})
	h3 := r.AddEnemy(&component.Enemy{Health: 3})

	snapshot := r.LiveEnemies()
	r.RemoveEnemy(h2) // удаление во время обхода снимка

	visited := 0
	for _, h := range snapshot {
		if _, ok := r.Enemy(h); ok {
			visited++
		}
	}
	if visited != 2 {
		t.Errorf("Expected 2 live enemies while iterating, got %d", visited)
	}

	live := r.LiveEnemies()
	if len(live) != 2 || live[0] != h1 || live[1] != h3 {
		t.Errorf("Expected [h1 h3] in insertion order, got %v", live)
	}

	r.Sweep()
	if len(r.enemyOrder) != 2 {
		t.Errorf("Sweep should compact order to 2, got %d", len(r.enemyOrder))
	}
	if r.EnemyCount() != 2 {
		t.Errorf("Expected 2 enemies, got %d", r.EnemyCount())
	}
}

func TestBullets(t *testing.T) {
	r := NewRegistry()
	b1 := &component.Bullet{Damage: 1}
	b2 := &component.Bullet{Damage: 2}
	r.AddBullet(b1)
	r.AddBullet(b2)

	r.RemoveBullet(b1)
	if r.BulletAlive(b1) {
		t.Error("Removed bullet reported alive")
	}
	if got := r.LiveBullets(); len(got) != 1 || got[0] != b2 {
		t.Errorf("Expected only b2 alive, got %v", got)
	}

	r.Sweep()
	if len(r.bullets) != 1 {
		t.Errorf("Sweep should leave 1 bullet, got %d", len(r.bullets))
	}
}

func TestTowersKeepBuildOrder(t *testing.T) {
	r := NewRegistry()
	first := &component.Tower{Range: 100}
	second := &component.Tower{Range: 200}
	r.AddTower(first)
	r.AddTower(second)
	r.AddEnemy(&component.Enemy{})
	r.Sweep()

	towers := r.Towers()
	if len(towers) != 2 || towers[0] != first || towers[1] != second {
		t.Errorf("Towers should keep build order, got %v", towers)
	}
}
