// internal/interfaces/view.go
package interfaces

import (
	"go-path-defense/internal/component"
	"go-path-defense/pkg/route"
)

// SessionView — доступ только на чтение для рендера и HUD.
// Все колбэки получают копии компонентов, изменить мир через них нельзя.
type SessionView interface {
	Path() []route.Waypoint
	Stats() component.GameState
	IsOver() bool
	EachEnemy(fn func(component.Enemy))
	EachTower(fn func(component.Tower))
	EachBullet(fn func(component.Bullet))
}
