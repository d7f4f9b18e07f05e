// cmd/simulate/main.go
//
// simulate прогоняет сессию без окна и печатает итог.
// Башни можно докупить заранее флагом -build, например: -build sniper@400,250 -build slow@700,250
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
)

// placements собирает повторяющийся флаг -build
type placements []string

func (p *placements) String() string     { return strings.Join(*p, " ") }
func (p *placements) Set(v string) error { *p = append(*p, v); return nil }

var (
	configPath = flag.String("config", "", "path to a session YAML file (built-in defaults if empty)")
	ticks      = flag.Int("ticks", 60*60*5, "maximum number of ticks to simulate")
	duration   = flag.Duration("duration", 0, "simulation time to run, overrides -ticks when set (e.g. 90s)")
	dumpConfig = flag.Bool("dump-config", false, "print the effective session config as YAML and exit")
	verbose    = flag.Bool("verbose", false, "log every shot, kill and escape")
	builds     placements
)

// tally считает события сессии
type tally map[event.EventType]int

func (t tally) OnEvent(e event.Event) {
	t[e.Type]++
}

func parsePlacement(s string) (defs.TowerKind, float64, float64, error) {
	name, coords, ok := strings.Cut(s, "@")
	if !ok {
		return 0, 0, 0, fmt.Errorf("placement %q: expected kind@x,y", s)
	}
	kind, err := defs.ParseTowerKind(name)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("placement %q: %w", s, err)
	}
	var x, y float64
	if _, err := fmt.Sscanf(coords, "%g,%g", &x, &y); err != nil {
		return 0, 0, 0, fmt.Errorf("placement %q: bad coordinates: %w", s, err)
	}
	return kind, x, y, nil
}

// tickBudget переводит -duration в тики по частоте сессии. Без -duration берётся -ticks.
func tickBudget(cfg *config.Config, ticks int, d time.Duration) int {
	if d <= 0 {
		return ticks
	}
	return int(d / cfg.TickDuration())
}

func main() {
	flag.Var(&builds, "build", "buy a tower before the start, kind@x,y (repeatable)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	if *dumpConfig {
		data, err := cfg.Marshal()
		if err != nil {
			log.Fatalf("Failed to dump config: %v", err)
		}
		os.Stdout.Write(data)
		return
	}

	game, err := app.NewGame(cfg)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	game.SetVerbose(*verbose)

	counts := tally{}
	for _, et := range []event.EventType{
		event.WaveStarted, event.EnemySpawned, event.EnemyKilled,
		event.EnemyEscaped, event.TowerPlaced, event.BulletFired,
	} {
		game.Dispatcher().Subscribe(et, counts)
	}

	for _, b := range builds {
		kind, x, y, err := parsePlacement(b)
		if err != nil {
			log.Fatalf("Invalid -build: %v", err)
		}
		if !game.PlaceTower(x, y, kind) {
			log.Printf("Cannot afford %s tower at (%.0f, %.0f), money %d", kind, x, y, game.Stats().Money)
		}
	}

	game.Start()
	game.Run(tickBudget(cfg, *ticks, *duration))

	s := game.Stats()
	log.Printf("Simulated %d ticks (%s): %s", game.Tick(), game.Elapsed(), s.Phase)
	log.Printf("Health %d, money %d, wave %d", s.Health, s.Money, s.Wave)
	log.Printf("Waves %d, spawned %d, killed %d, escaped %d, shots %d, towers bought %d",
		counts[event.WaveStarted], counts[event.EnemySpawned], counts[event.EnemyKilled],
		counts[event.EnemyEscaped], counts[event.BulletFired], counts[event.TowerPlaced])
}
