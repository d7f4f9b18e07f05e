// internal/interfaces/game.go
package interfaces

import (
	"time"

	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
)

// Session — то, что экранные состояния требуют от игровой сессии.
// Это помогает избежать циклических зависимостей между state и app.
type Session interface {
	SessionView
	Start()
	Step()
	Elapsed() time.Duration
	PlaceTower(x, y float64, kind defs.TowerKind) bool
	CanAfford(kind defs.TowerKind) bool
	TowerCost(kind defs.TowerKind) int
	TowerRange(kind defs.TowerKind) float64
	Dispatcher() *event.Dispatcher
}
