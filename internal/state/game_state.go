// internal/state/game_state.go
package state

import (
	"fmt"
	"image"
	"log"
	"time"

	"go-path-defense/internal/assets"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/interfaces"
	"go-path-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что GameState соответствует интерфейсу State
var _ State = (*GameState)(nil)

// buildKeys выбирают тип башни, по порядку defs.TowerKinds
var buildKeys = [...]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// SessionFactory создаёт новую сессию по конфигурации. Вызывается при старте и при рестарте.
type SessionFactory func(cfg *config.Config) (interfaces.Session, error)

// GameState — состояние игры: симуляция, поле и панель инструментов
type GameState struct {
	sm           *StateMachine
	game         interfaces.Session
	newSession   SessionFactory
	cfg          *config.Config
	fonts        *assets.FontManager
	renderer     *ui.FieldRenderer
	hud          *ui.HUD
	buildButtons []*ui.Button
	speedButton  *ui.SpeedButton
	pauseButton  *ui.PauseButton

	armed         bool // следующий клик по полю ставит башню armedKind
	armedKind     defs.TowerKind
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, cfg *config.Config, fonts *assets.FontManager, newSession SessionFactory) (*GameState, error) {
	gameLogic, err := newSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	face := fonts.Face(config.FontSize)
	g := &GameState{
		sm:         sm,
		game:       gameLogic,
		newSession: newSession,
		cfg:        cfg,
		fonts:      fonts,
		renderer:   ui.NewFieldRenderer(gameLogic, config.DefaultPalette()),
		hud: ui.NewHUD(config.HUDX, config.ToolbarCenterY+5, face,
			gameLogic.Stats(), gameLogic.Dispatcher()),
		speedButton: ui.NewSpeedButton(config.SpeedButtonX, config.ToolbarCenterY,
			config.ToolbarIconSize, config.SpeedButtonColors),
		pauseButton: ui.NewPauseButton(config.PauseButtonX, config.ToolbarCenterY,
			config.ToolbarIconSize, config.PauseColor, config.PlayColor),
	}
	g.hud.Spacing = config.HUDSpacing

	top := config.ToolbarY + (config.ToolbarHeight-config.ButtonHeight)/2
	for i, kind := range defs.TowerKinds {
		x := config.ButtonMargin + i*(config.ButtonWidth+config.ButtonMargin)
		rect := image.Rect(x, top, x+config.ButtonWidth, top+config.ButtonHeight)
		label := fmt.Sprintf("%d %s (%d)", i+1, kind, gameLogic.TowerCost(kind))
		g.buildButtons = append(g.buildButtons, ui.NewButton(rect, label, face))
	}
	return g, nil
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
	g.game.Start()
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.handlePauseClick()
		return
	}

	for i, key := range buildKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.arm(defs.TowerKinds[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.armed = false
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) &&
		time.Since(g.lastClickTime) > config.ClickCooldown*time.Millisecond {
		x, y := ebiten.CursorPosition()
		g.lastClickTime = time.Now()
		if y >= config.ToolbarY {
			g.handleUIClick(x, y)
		} else {
			g.handleFieldClick(x, y)
		}
		if g.sm.Current() != g {
			return
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.armed = false
	}

	for i := 0; i < g.speedButton.Multiplier(); i++ {
		g.game.Step()
	}
	g.refreshButtons()

	if g.game.IsOver() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

// arm выбирает тип башни для следующего клика. Повторный выбор того же типа снимает выбор.
func (g *GameState) arm(kind defs.TowerKind) {
	if g.armed && g.armedKind == kind {
		g.armed = false
		return
	}
	g.armed = true
	g.armedKind = kind
}

func (g *GameState) handleUIClick(x, y int) {
	if g.pauseButton.IsClicked(x, y) {
		g.handlePauseClick()
		return
	}
	if g.speedButton.IsClicked(x, y) {
		g.speedButton.ToggleState()
		return
	}
	for i, b := range g.buildButtons {
		if b.Contains(x, y) {
			g.arm(defs.TowerKinds[i])
			return
		}
	}
}

// handleFieldClick ставит выбранную башню. Выбор сбрасывается после любой попытки.
func (g *GameState) handleFieldClick(x, y int) {
	if !g.armed {
		return
	}
	g.armed = false
	kind := g.armedKind
	if !g.game.PlaceTower(float64(x), float64(y), kind) {
		log.Printf("[GameState] cannot place %s tower at (%d, %d): cost %d, money %d",
			kind, x, y, g.game.TowerCost(kind), g.game.Stats().Money)
	}
}

func (g *GameState) handlePauseClick() {
	g.pauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g, g.fonts.Face(config.TitleFontSize)))
}

func (g *GameState) refreshButtons() {
	for i, b := range g.buildButtons {
		kind := defs.TowerKinds[i]
		b.Active = g.armed && g.armedKind == kind
		b.Disabled = !g.game.CanAfford(kind)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen)

	if g.armed {
		x, y := ebiten.CursorPosition()
		if y < config.ToolbarY {
			g.renderer.DrawPlacementPreview(screen, float64(x), float64(y), int(g.armedKind),
				g.game.TowerRange(g.armedKind), g.game.CanAfford(g.armedKind))
		}
	}

	g.drawToolbar(screen)
}

func (g *GameState) drawToolbar(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, config.ToolbarY, config.ScreenWidth, config.ToolbarHeight, config.ToolbarColor, false)
	cx, cy := ebiten.CursorPosition()
	for _, b := range g.buildButtons {
		b.Draw(screen, cx, cy)
	}
	g.hud.Draw(screen)
	g.pauseButton.Draw(screen)
	g.speedButton.Draw(screen)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
