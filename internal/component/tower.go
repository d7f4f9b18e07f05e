// internal/component/tower.go
package component

import "go-path-defense/internal/defs"

// Tower — башня игрока. После постройки меняется только FireCooldown.
type Tower struct {
	Position
	Kind           defs.TowerKind
	Range          float64
	Damage         int
	FireCooldown   int // тиков до следующего выстрела, при 0 башня готова
	FireRatePeriod int
}

// NewTower строит башню по определению её типа
func NewTower(x, y float64, kind defs.TowerKind, def defs.TowerDefinition) *Tower {
	return &Tower{
		Position:       Position{X: x, Y: y},
		Kind:           kind,
		Range:          def.Range,
		Damage:         def.Damage,
		FireRatePeriod: def.FireRatePeriod,
	}
}

// Ready сообщает, что перезарядка закончилась
func (t *Tower) Ready() bool {
	return t.FireCooldown <= 0
}
