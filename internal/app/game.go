// internal/app/game.go
package app

import (
	"fmt"
	"log"
	"time"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/interfaces"
	"go-path-defense/internal/schedule"
	"go-path-defense/internal/system"
	"go-path-defense/pkg/route"
)

var _ interfaces.Session = (*Game)(nil)

// Game владеет состоянием одной сессии: ресурсами игрока, реестром сущностей,
// планировщиком и системами, которые их изменяют.
type Game struct {
	Config          *config.Config
	State           *component.GameState
	Registry        *entity.Registry
	Scheduler       *schedule.Scheduler
	EventDispatcher *event.Dispatcher

	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	WaveSystem       *system.WaveSystem
	StateSystem      *system.StateSystem

	path     *route.Path
	towers   defs.TowerTable
	tickRate int
	ticks    uint64
	started  bool
}

// NewGame собирает сессию по конфигурации. Стартовые башни ставятся бесплатно.
func NewGame(cfg *config.Config) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session config: %w", err)
	}
	path, err := cfg.Route()
	if err != nil {
		return nil, fmt.Errorf("failed to build path: %w", err)
	}
	towers, err := cfg.TowerTable()
	if err != nil {
		return nil, fmt.Errorf("failed to build tower table: %w", err)
	}

	g := &Game{
		Config: cfg,
		State: &component.GameState{
			Health: cfg.Player.Health,
			Money:  cfg.Player.Money,
			Wave:   cfg.Player.Wave,
		},
		Registry:        entity.NewRegistry(),
		Scheduler:       schedule.New(),
		EventDispatcher: event.NewDispatcher(),
		path:            path,
		towers:          towers,
		tickRate:        cfg.TickRate,
	}

	world := &system.World{
		Registry:   g.Registry,
		State:      g.State,
		Dispatcher: g.EventDispatcher,
	}
	g.MovementSystem = system.NewMovementSystem(world, path, cfg.Economy.EscapeDamage)
	g.CombatSystem = system.NewCombatSystem(world, cfg.Bullet.Speed)
	g.ProjectileSystem = system.NewProjectileSystem(world, cfg.Economy.KillReward)
	g.WaveSystem = system.NewWaveSystem(world, g.Scheduler, path, cfg.Enemy, cfg.Waves)
	g.StateSystem = system.NewStateSystem(world, g.WaveSystem)

	for _, p := range cfg.StartingTowers {
		kind, err := defs.ParseTowerKind(p.Kind)
		if err != nil {
			return nil, fmt.Errorf("starting tower: %w", err)
		}
		g.addTower(p.X, p.Y, kind)
	}

	return g, nil
}

// SetVerbose включает по-тиковое логирование систем
func (g *Game) SetVerbose(v bool) {
	g.MovementSystem.Verbose = v
	g.CombatSystem.Verbose = v
	g.ProjectileSystem.Verbose = v
}

// Start обновляет HUD и запускает волны: первая сразу, затем по расписанию.
// Повторный вызов ничего не делает.
func (g *Game) Start() {
	if g.started {
		return
	}
	g.started = true
	log.Printf("[Game] session started: health %d, money %d, %d tower(s), path %.0fpx, waves %s",
		g.State.Health, g.State.Money, len(g.Registry.Towers()), g.path.Length(), g.Config.Waves)
	g.EventDispatcher.Dispatch(event.Event{Type: event.StatsChanged, Data: *g.State})
	g.WaveSystem.Start()
}

// Step продвигает симуляцию на один тик.
// Порядок фаз фиксирован: отложенные события, враги, башни, снаряды, проверка поражения.
func (g *Game) Step() {
	if g.State.IsOver() {
		return
	}

	g.Scheduler.RunDue()
	g.MovementSystem.Update()
	g.CombatSystem.Update()
	g.ProjectileSystem.Update()
	g.StateSystem.Update()
	g.Registry.Sweep()

	g.ticks++
	g.Scheduler.AdvanceTo(g.simTime(g.ticks))
}

// simTime переводит номер тика во время симуляции без накопления ошибки округления
func (g *Game) simTime(tick uint64) time.Duration {
	return time.Duration(tick) * time.Second / time.Duration(g.tickRate)
}

// Run выполняет до n тиков и останавливается раньше, если игра окончена.
// Возвращает число выполненных тиков.
func (g *Game) Run(n int) int {
	done := 0
	for ; done < n && !g.State.IsOver(); done++ {
		g.Step()
	}
	return done
}

// --- Public Accessors ---

// Tick возвращает число выполненных тиков
func (g *Game) Tick() uint64 {
	return g.ticks
}

// Elapsed возвращает время симуляции
func (g *Game) Elapsed() time.Duration {
	return g.Scheduler.Now()
}

func (g *Game) Dispatcher() *event.Dispatcher {
	return g.EventDispatcher
}

func (g *Game) Stats() component.GameState {
	return *g.State
}

func (g *Game) IsOver() bool {
	return g.State.IsOver()
}

func (g *Game) Path() []route.Waypoint {
	return g.path.Waypoints()
}

// Route возвращает маршрут сессии
func (g *Game) Route() *route.Path {
	return g.path
}

func (g *Game) EachEnemy(fn func(component.Enemy)) {
	for _, h := range g.Registry.LiveEnemies() {
		if e, ok := g.Registry.Enemy(h); ok {
			fn(*e)
		}
	}
}

func (g *Game) EachTower(fn func(component.Tower)) {
	for _, t := range g.Registry.Towers() {
		fn(*t)
	}
}

func (g *Game) EachBullet(fn func(component.Bullet)) {
	for _, b := range g.Registry.LiveBullets() {
		fn(*b)
	}
}
