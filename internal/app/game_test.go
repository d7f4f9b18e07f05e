package app

import (
	"errors"
	"testing"
	"time"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
	"go-path-defense/internal/interfaces"
	"go-path-defense/pkg/route"
)

func newTestGame(t *testing.T, mutate func(c *config.Config)) *Game {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	g, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return g
}

func countEvents(g *Game, types ...event.EventType) map[event.EventType]int {
	counts := map[event.EventType]int{}
	for _, et := range types {
		g.Dispatcher().Subscribe(et, event.ListenerFunc(func(e event.Event) {
			counts[e.Type]++
		}))
	}
	return counts
}

func TestNewGameDefaults(t *testing.T) {
	g := newTestGame(t, nil)

	if s := g.Stats(); s.Health != 100 || s.Money != 100 || s.Wave != 1 || s.Phase != component.PhaseRunning {
		t.Errorf("Unexpected starting stats %+v", s)
	}

	var towers []component.Tower
	g.EachTower(func(tw component.Tower) { towers = append(towers, tw) })
	if len(towers) != 1 {
		t.Fatalf("Expected one free starting tower, got %d", len(towers))
	}
	if towers[0].X != 400 || towers[0].Y != 300 || towers[0].Kind != defs.TowerBasic {
		t.Errorf("Unexpected starting tower %+v", towers[0])
	}
	if len(g.Path()) != 5 {
		t.Errorf("Expected 5 waypoints, got %d", len(g.Path()))
	}
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Path = []route.Waypoint{{X: 0, Y: 0}}
	if _, err := NewGame(cfg); !errors.Is(err, route.ErrTooFewWaypoints) {
		t.Errorf("Expected ErrTooFewWaypoints, got %v", err)
	}
}

func TestStartSpawnsFirstWaveImmediately(t *testing.T) {
	g := newTestGame(t, nil)
	events := countEvents(g, event.StatsChanged, event.WaveStarted, event.EnemySpawned)

	g.Start()
	g.Start()

	if g.Stats().Wave != 2 {
		t.Errorf("Expected wave 2 right after start, got %d", g.Stats().Wave)
	}
	if events[event.WaveStarted] != 1 {
		t.Errorf("Expected one WaveStarted, got %d", events[event.WaveStarted])
	}

	g.Step()
	if events[event.EnemySpawned] != 1 {
		t.Errorf("First enemy should appear on the first tick, got %d spawns", events[event.EnemySpawned])
	}

	// 1200ms при 60 тиках в секунду: 72 тика
	g.Run(72)
	if events[event.EnemySpawned] != 2 {
		t.Errorf("Second enemy should appear after 1200ms, got %d spawns", events[event.EnemySpawned])
	}
	if g.Tick() != 73 {
		t.Errorf("Expected 73 ticks, got %d", g.Tick())
	}
}

// Снайпер за 100 при 100 монетах: покупка проходит, вторая отклоняется без изменений
func TestPlaceTowerSpendsMoney(t *testing.T) {
	g := newTestGame(t, nil)
	events := countEvents(g, event.TowerPlaced, event.StatsChanged)

	if !g.PlaceTower(100, 200, defs.TowerSniper) {
		t.Fatal("Sniper placement with exactly enough money failed")
	}
	if g.Stats().Money != 0 {
		t.Errorf("Expected money 0, got %d", g.Stats().Money)
	}
	if n := len(g.Registry.Towers()); n != 2 {
		t.Fatalf("Expected 2 towers, got %d", n)
	}

	if g.PlaceTower(150, 200, defs.TowerBasic) {
		t.Error("Placement without money should fail")
	}
	if g.Stats().Money != 0 || len(g.Registry.Towers()) != 2 {
		t.Errorf("Rejected placement changed state: money %d, towers %d",
			g.Stats().Money, len(g.Registry.Towers()))
	}
	if events[event.TowerPlaced] != 1 || events[event.StatsChanged] != 1 {
		t.Errorf("Expected one placement and one HUD refresh, got %v", events)
	}

	tower := g.Registry.Towers()[1]
	if tower.Range != 200 || tower.Damage != 25 || tower.FireRatePeriod != 90 || tower.FireCooldown != 0 {
		t.Errorf("Unexpected sniper %+v", *tower)
	}
}

func TestTowerCosts(t *testing.T) {
	g := newTestGame(t, nil)
	want := map[defs.TowerKind]int{defs.TowerBasic: 50, defs.TowerSniper: 100, defs.TowerSlow: 75}
	for kind, cost := range want {
		if got := g.TowerCost(kind); got != cost {
			t.Errorf("%s: expected cost %d, got %d", kind, cost, got)
		}
	}
	if g.TowerCost(defs.TowerKind(42)) != -1 {
		t.Error("Unknown kind should cost -1")
	}
	if g.PlaceTower(0, 0, defs.TowerKind(42)) {
		t.Error("Unknown kind must be rejected")
	}
}

func TestMoneyNeverNegative(t *testing.T) {
	g := newTestGame(t, nil)
	g.Start()
	kinds := []defs.TowerKind{defs.TowerSlow, defs.TowerBasic, defs.TowerSniper}
	for i := 0; i < 3000 && !g.IsOver(); i++ {
		if i%50 == 0 {
			g.PlaceTower(float64(100+i%600), 250, kinds[i%len(kinds)])
		}
		g.Step()
		if g.Stats().Money < 0 {
			t.Fatalf("Tick %d: money went negative: %d", i, g.Stats().Money)
		}
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	// Без башен и с малым запасом здоровья игра заканчивается на первом прорвавшемся враге
	g := newTestGame(t, func(c *config.Config) {
		c.Player.Health = 10
		c.StartingTowers = nil
	})
	events := countEvents(g, event.GameOver, event.EnemySpawned)
	g.Start()

	ran := g.Run(10000)
	if !g.IsOver() {
		t.Fatal("Expected the game to end")
	}
	if events[event.GameOver] != 1 {
		t.Errorf("Expected one GameOver event, got %d", events[event.GameOver])
	}

	before := g.Stats()
	enemies := g.Registry.EnemyCount()
	bullets := len(g.Registry.LiveBullets())
	tick := g.Tick()
	spawned := events[event.EnemySpawned]

	for i := 0; i < 600; i++ {
		g.Step()
	}
	if g.Run(600) != 0 {
		t.Error("Run must not execute ticks after game over")
	}

	if g.Stats() != before {
		t.Errorf("State changed after game over: %+v -> %+v", before, g.Stats())
	}
	if g.Registry.EnemyCount() != enemies || len(g.Registry.LiveBullets()) != bullets {
		t.Error("Entity sets changed after game over")
	}
	if g.Tick() != tick || events[event.EnemySpawned] != spawned {
		t.Error("Simulation kept running after game over")
	}
	if events[event.GameOver] != 1 {
		t.Errorf("GameOver repeated: %d", events[event.GameOver])
	}
	if g.Scheduler.Pending() != 0 {
		t.Errorf("Expected no pending events, got %d", g.Scheduler.Pending())
	}
	if g.PlaceTower(10, 10, defs.TowerBasic) {
		t.Error("Placement must be rejected after game over")
	}
	if ran >= 10000 {
		t.Errorf("Run should stop early, ran %d", ran)
	}
}

// Стандартная сессия с одной покупкой: башни убивают часть врагов, но волны растут быстрее
func TestDefaultSessionPlaysOut(t *testing.T) {
	g := newTestGame(t, nil)
	events := countEvents(g, event.EnemyKilled, event.EnemyEscaped, event.BulletFired)
	// Снайпер между двумя горизонтальными участками маршрута
	if !g.PlaceTower(400, 250, defs.TowerSniper) {
		t.Fatal("Failed to place sniper")
	}
	g.Start()
	g.Run(60 * 60 * 10)

	if events[event.BulletFired] == 0 {
		t.Fatal("Towers never fired")
	}
	if events[event.EnemyKilled] == 0 {
		t.Error("Towers never killed anything")
	}
	s := g.Stats()
	if want := 10 * events[event.EnemyKilled]; s.Money != want {
		t.Errorf("Expected money %d from kills, got %d", want, s.Money)
	}
	if want := 100 - 10*events[event.EnemyEscaped]; s.Health != want {
		t.Errorf("Expected health %d from escapes, got %d", want, s.Health)
	}
	if !g.IsOver() {
		t.Error("Two towers should not hold ten minutes of waves")
	}
}

func TestGameDrivenThroughSession(t *testing.T) {
	var s interfaces.Session = newTestGame(t, nil)
	placed := countEvents(s.(*Game), event.TowerPlaced)

	s.Start()
	if !s.CanAfford(defs.TowerSniper) || s.TowerRange(defs.TowerSniper) != 200 {
		t.Fatalf("Unexpected sniper data: affordable %v, range %.0f",
			s.CanAfford(defs.TowerSniper), s.TowerRange(defs.TowerSniper))
	}
	if !s.PlaceTower(400, 250, defs.TowerSniper) {
		t.Fatal("Sniper placement through the session should succeed")
	}
	if s.CanAfford(defs.TowerSniper) {
		t.Error("Money left after the sniper must not cover another one")
	}
	for i := 0; i < 60; i++ {
		s.Step()
	}

	if s.Elapsed() != time.Second {
		t.Errorf("Expected 1s of simulation after 60 steps, got %s", s.Elapsed())
	}
	if placed[event.TowerPlaced] != 1 {
		t.Errorf("Expected one TowerPlaced event, got %d", placed[event.TowerPlaced])
	}
	if s.Stats().Wave != 2 {
		t.Errorf("Expected wave counter 2 after Start, got %d", s.Stats().Wave)
	}
}
