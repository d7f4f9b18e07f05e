// internal/config/config.go
package config

import (
	"image/color"

	"go-path-defense/pkg/render"
)

const (
	FieldWidth    = 800
	FieldHeight   = 600
	ToolbarHeight = 40
	ScreenWidth   = FieldWidth
	ScreenHeight  = FieldHeight + ToolbarHeight

	TicksPerSecond = 60 // ebiten вызывает Update с этой частотой

	PathWidth       = 30.0
	TowerDrawSize   = 20.0
	BulletRadius    = 4.0
	HealthBarHeight = 5.0

	ToolbarY        = FieldHeight
	ToolbarCenterY  = FieldHeight + ToolbarHeight/2
	ButtonWidth     = 110
	ButtonHeight    = 28
	ButtonMargin    = 8
	HUDX            = 3*(ButtonWidth+ButtonMargin) + 16
	HUDSpacing      = 105
	PauseButtonX    = FieldWidth - 80
	SpeedButtonX    = FieldWidth - 30
	ToolbarIconSize = 9.0
	FontSize        = 14
	TitleFontSize   = 40

	ClickCooldown = 150 // мс, защита от двойного клика по кнопкам
)

var (
	BackgroundColor = color.RGBA{34, 34, 34, 255}
	PathColor       = color.RGBA{119, 119, 119, 255}
	EnemyColor      = color.RGBA{255, 0, 0, 255}
	HealthBarColor  = color.RGBA{0, 200, 0, 255}
	HealthBarBg     = color.RGBA{60, 0, 0, 200}
	BulletColor     = color.RGBA{255, 255, 0, 255}
	RangeColor      = color.RGBA{255, 255, 255, 60}
	ToolbarColor    = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 160}
	TowerColors     = []color.RGBA{
		{0, 0, 255, 255},   // basic
		{80, 60, 220, 255}, // sniper
		{0, 160, 220, 255}, // slow
	}
	PauseColor        = color.RGBA{220, 220, 220, 255}
	PlayColor         = color.RGBA{60, 180, 75, 255}
	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220},  // x1
		{220, 60, 60, 220},   // x2
		{194, 178, 128, 255}, // x4
	}
)

// DefaultPalette собирает цвета из констант для рендерера
func DefaultPalette() *render.Palette {
	return &render.Palette{
		Background:   BackgroundColor,
		Path:         PathColor,
		Enemy:        EnemyColor,
		HealthBar:    HealthBarColor,
		HealthBarBg:  HealthBarBg,
		Bullet:       BulletColor,
		Towers:       TowerColors,
		RangeOutline: RangeColor,
		Toolbar:      ToolbarColor,
		Text:         TextLightColor,
		Overlay:      OverlayColor,
	}
}
