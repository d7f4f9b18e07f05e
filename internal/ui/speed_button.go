// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton переключает число шагов симуляции за кадр: x1, x2, x4
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.RGBA
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)

	c := b.StateColors[b.CurrentState]

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	// Два треугольника «перемотки»
	for _, dx := range []float32{0, offset} {
		p1 := [2]float32{b.X - width + dx, b.Y - height/2}
		p2 := [2]float32{b.X + dx, b.Y}
		p3 := [2]float32{b.X - width + dx, b.Y + height/2}
		fillPolygon(screen, c, p1, p2, p3)
		strokePolygon(screen, 1, color.White, p1, p2, p3)
	}
}

// IsClicked использует круг для определения попадания, так как форма сложная
func (b *SpeedButton) IsClicked(x, y int) bool {
	dx := float64(float32(x) - b.X)
	dy := float64(float32(y) - b.Y)
	r := float64(b.Size * 1.5)
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
}

// Multiplier возвращает число шагов симуляции за кадр
func (b *SpeedButton) Multiplier() int {
	return 1 << b.CurrentState
}
