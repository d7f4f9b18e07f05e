// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"go-path-defense/internal/component"
	"go-path-defense/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUD показывает здоровье, деньги и номер волны.
// Строки пересобираются только по событию StatsChanged.
type HUD struct {
	X, Y       int
	Spacing    int
	Color      color.RGBA
	Font       font.Face
	lines      [3]string
	dispatcher *event.Dispatcher
}

// NewHUD создаёт HUD с начальными значениями и подписывает его на изменения статистики
func NewHUD(x, y int, face font.Face, initial component.GameState, dispatcher *event.Dispatcher) *HUD {
	h := &HUD{
		X:       x,
		Y:       y,
		Spacing: 110,
		Color:   color.RGBA{240, 240, 240, 255},
		Font:    face,
	}
	h.Refresh(initial)
	if dispatcher != nil {
		dispatcher.Subscribe(event.StatsChanged, h)
		h.dispatcher = dispatcher
	}
	return h
}

// Detach отписывает HUD от сессии. Строки остаются последними полученными.
func (h *HUD) Detach() {
	if h.dispatcher == nil {
		return
	}
	h.dispatcher.Unsubscribe(event.StatsChanged, h)
	h.dispatcher = nil
}

// OnEvent реализует интерфейс event.Listener.
func (h *HUD) OnEvent(e event.Event) {
	if e.Type != event.StatsChanged {
		return
	}
	if gs, ok := e.Data.(component.GameState); ok {
		h.Refresh(gs)
	}
}

// Refresh пересобирает строки HUD
func (h *HUD) Refresh(gs component.GameState) {
	h.lines = [3]string{
		fmt.Sprintf("Health: %d", gs.Health),
		fmt.Sprintf("Money: %d", gs.Money),
		fmt.Sprintf("Wave: %d", gs.Wave),
	}
}

// Lines возвращает текущие строки HUD
func (h *HUD) Lines() []string {
	return h.lines[:]
}

func (h *HUD) Draw(screen *ebiten.Image) {
	if h.Font == nil {
		return
	}
	for i, line := range h.Lines() {
		text.Draw(screen, line, h.Font, h.X+i*h.Spacing, h.Y, h.Color)
	}
}
