// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-path-defense/internal/app"
	"go-path-defense/internal/assets"
	"go-path-defense/internal/config"
	"go-path-defense/internal/interfaces"
	"go-path-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	configPath = flag.String("config", "", "path to a session YAML file (built-in defaults if empty)")
	fontPath   = flag.String("font", "", "path to a TTF font (built-in Go Regular if empty)")
	pprofAddr  = flag.String("pprof", "", "address for the pprof debug server, e.g. localhost:6060")
	verbose    = flag.Bool("verbose", false, "log every shot, kill and escape")
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// newSession создаёт сессию симуляции для экранных состояний
func newSession(cfg *config.Config) (interfaces.Session, error) {
	game, err := app.NewGame(cfg)
	if err != nil {
		return nil, err
	}
	game.SetVerbose(*verbose)
	return game, nil
}

func main() {
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
		log.Printf("Loaded session config from %s", *configPath)
	}

	fonts, err := assets.NewFontManager(*fontPath)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	defer fonts.Close()

	sm := state.NewStateMachine() // Создаём машину состояний
	gs, err := state.NewGameState(sm, cfg, fonts, newSession)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	sm.SetState(gs)

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Path Defense")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
