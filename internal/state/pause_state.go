// internal/state/pause_state.go
package state

import (
	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию и рисует поверх последнего кадра
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	font          font.Face
}

func NewPauseState(sm *StateMachine, prevState *GameState, face font.Face) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		font:          face,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.previousState.pauseButton.IsClicked(x, y)
	}

	if unpause {
		// GameState.Enter сам «отожмёт» кнопку паузы
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.FieldHeight, config.OverlayColor, false)
	drawCentered(screen, "PAUSED", s.font, config.FieldHeight/2)
}

func (s *PauseState) Exit() {}

// drawCentered рисует строку по центру экрана по горизонтали
func drawCentered(screen *ebiten.Image, line string, face font.Face, baselineY int) {
	bounds := text.BoundString(face, line)
	x := (config.ScreenWidth-bounds.Dx())/2 - bounds.Min.X
	text.Draw(screen, line, face, x, baselineY, config.TextLightColor)
}
