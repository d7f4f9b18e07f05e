// internal/state/game_over_state.go
package state

import (
	"fmt"
	"log"
	"time"

	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что GameOverState соответствует интерфейсу State
var _ State = (*GameOverState)(nil)

// GameOverState — конечный экран. Сессия уже остановлена, R начинает новую.
type GameOverState struct {
	sm       *StateMachine
	finished *GameState
	summary  string
}

func NewGameOverState(sm *StateMachine, finished *GameState) *GameOverState {
	stats := finished.game.Stats()
	return &GameOverState{
		sm:       sm,
		finished: finished,
		summary: fmt.Sprintf("Wave %d, money %d, %s survived",
			stats.Wave, stats.Money, finished.game.Elapsed().Truncate(time.Second)),
	}
}

func (s *GameOverState) Enter() {
	log.Printf("[GameOverState] %s", s.summary)
}

func (s *GameOverState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return
	}
	next, err := NewGameState(s.sm, s.finished.cfg, s.finished.fonts, s.finished.newSession)
	if err != nil {
		log.Printf("[GameOverState] restart failed: %v", err)
		return
	}
	s.finished.hud.Detach()
	s.sm.SetState(next)
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.finished.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.FieldHeight, config.OverlayColor, false)
	fonts := s.finished.fonts
	drawCentered(screen, "Game Over!", fonts.Face(config.TitleFontSize), config.FieldHeight/2-20)
	drawCentered(screen, s.summary, fonts.Face(config.FontSize), config.FieldHeight/2+15)
	drawCentered(screen, "Press R to restart", fonts.Face(config.FontSize), config.FieldHeight/2+40)
}

func (s *GameOverState) Exit() {}
