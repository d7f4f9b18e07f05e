// internal/app/tower_management.go
package app

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
)

// PlaceTower покупает башню kind в точке (x, y).
// Если денег не хватает или игра окончена, состояние не меняется и возвращается false.
func (g *Game) PlaceTower(x, y float64, kind defs.TowerKind) bool {
	if !g.canPlaceTower(kind) {
		return false
	}
	def, _ := g.towers.Get(kind)
	if !g.State.Spend(def.Cost) {
		return false
	}

	g.addTower(x, y, kind)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerPayload{X: x, Y: y, Kind: kind.String(), Cost: def.Cost},
	})
	g.EventDispatcher.Dispatch(event.Event{Type: event.StatsChanged, Data: *g.State})
	return true
}

// CanAfford сообщает, хватает ли денег на башню kind
func (g *Game) CanAfford(kind defs.TowerKind) bool {
	def, ok := g.towers.Get(kind)
	return ok && g.State.Money >= def.Cost
}

// TowerCost возвращает цену башни, -1 для неизвестного типа
func (g *Game) TowerCost(kind defs.TowerKind) int {
	def, ok := g.towers.Get(kind)
	if !ok {
		return -1
	}
	return def.Cost
}

// TowerRange возвращает радиус атаки башни kind
func (g *Game) TowerRange(kind defs.TowerKind) float64 {
	def, _ := g.towers.Get(kind)
	return def.Range
}

func (g *Game) canPlaceTower(kind defs.TowerKind) bool {
	if g.State.Ended() {
		return false
	}
	return g.CanAfford(kind)
}

func (g *Game) addTower(x, y float64, kind defs.TowerKind) *component.Tower {
	def, _ := g.towers.Get(kind)
	tower := component.NewTower(x, y, kind, def)
	g.Registry.AddTower(tower)
	return tower
}
