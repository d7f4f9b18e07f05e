// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect        image.Rectangle
	Text        string
	TextColor   color.RGBA
	BgColor     color.RGBA
	HoverColor  color.RGBA
	ActiveColor color.RGBA
	Active      bool // кнопка «нажата», например выбран тип башни
	Disabled    bool // не хватает денег
	Font        font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, face font.Face) *Button {
	return &Button{
		Rect:        rect,
		Text:        label,
		TextColor:   color.RGBA{240, 240, 240, 255},
		BgColor:     color.RGBA{60, 60, 70, 255},
		HoverColor:  color.RGBA{90, 90, 105, 255},
		ActiveColor: color.RGBA{40, 90, 160, 255},
		Font:        face,
	}
}

// Contains проверяет, находится ли точка внутри кнопки.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку. cursorX, cursorY нужны для подсветки.
func (b *Button) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	bg := b.BgColor
	switch {
	case b.Active:
		bg = b.ActiveColor
	case b.Contains(cursorX, cursorY):
		bg = b.HoverColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{110, 110, 120, 255}, false)

	if b.Font == nil {
		return
	}
	fg := b.TextColor
	if b.Disabled {
		fg = color.RGBA{130, 130, 130, 255}
	}
	bounds := text.BoundString(b.Font, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2 - bounds.Min.X
	textY := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, b.Font, textX, textY, fg)
}
