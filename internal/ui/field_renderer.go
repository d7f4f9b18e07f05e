// internal/ui/field_renderer.go
package ui

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/interfaces"
	"go-path-defense/internal/utils"
	"go-path-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FieldRenderer рисует маршрут и сущности. Мир читается только через SessionView.
type FieldRenderer struct {
	view    interfaces.SessionView
	palette *render.Palette
}

func NewFieldRenderer(view interfaces.SessionView, palette *render.Palette) *FieldRenderer {
	return &FieldRenderer{view: view, palette: palette}
}

// Draw рисует в порядке: маршрут, враги, башни, снаряды
func (s *FieldRenderer) Draw(screen *ebiten.Image) {
	s.drawPath(screen)

	s.view.EachEnemy(func(e component.Enemy) {
		s.drawEnemy(screen, e)
	})

	s.view.EachTower(func(t component.Tower) {
		half := float32(config.TowerDrawSize / 2)
		vector.DrawFilledRect(screen, float32(t.X)-half, float32(t.Y)-half,
			config.TowerDrawSize, config.TowerDrawSize, s.palette.TowerColor(int(t.Kind)), false)
	})

	s.view.EachBullet(func(b component.Bullet) {
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), config.BulletRadius, s.palette.Bullet, true)
	})
}

func (s *FieldRenderer) drawPath(screen *ebiten.Image) {
	points := s.view.Path()
	half := float32(config.PathWidth / 2)
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			config.PathWidth, s.palette.Path, false)
	}
	// Скругляем стыки сегментов
	for _, p := range points {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), half, s.palette.Path, true)
	}
}

func (s *FieldRenderer) drawEnemy(screen *ebiten.Image, e component.Enemy) {
	size := float32(e.Size)
	x, y := float32(e.X), float32(e.Y)
	vector.DrawFilledCircle(screen, x, y, size/2, s.palette.Enemy, true)

	// Полоска здоровья над врагом
	barX := x - size/2
	barY := y - size
	width := utils.Lerp(0, size, float32(utils.Clamp01(e.HealthRatio())))
	vector.DrawFilledRect(screen, barX, barY, size, config.HealthBarHeight, s.palette.HealthBarBg, false)
	vector.DrawFilledRect(screen, barX, barY, width, config.HealthBarHeight, s.palette.HealthBar, false)
}

// DrawPlacementPreview показывает будущую башню и её радиус под курсором
func (s *FieldRenderer) DrawPlacementPreview(screen *ebiten.Image, x, y float64, kind int, radius float64, affordable bool) {
	c := s.palette.TowerColor(kind)
	if !affordable {
		c = render.DarkenColor(c)
	}
	half := float32(config.TowerDrawSize / 2)
	vector.DrawFilledRect(screen, float32(x)-half, float32(y)-half,
		config.TowerDrawSize, config.TowerDrawSize, render.WithAlpha(c, 140), false)
	vector.StrokeCircle(screen, float32(x), float32(y), float32(radius), 1.5, s.palette.RangeOutline, true)
}
