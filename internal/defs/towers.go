// internal/defs/towers.go
package defs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTowerKind is returned when a tower kind name is not recognized.
var ErrUnknownTowerKind = errors.New("unknown tower kind")

// TowerKind defines the category of a tower. The set is closed: every kind has
// exactly one entry in a TowerTable.
type TowerKind uint8

const (
	TowerBasic TowerKind = iota
	TowerSniper
	TowerSlow

	towerKindCount
)

// TowerKinds lists all kinds in declaration order.
var TowerKinds = [towerKindCount]TowerKind{TowerBasic, TowerSniper, TowerSlow}

var towerKindNames = [towerKindCount]string{"basic", "sniper", "slow"}

func (k TowerKind) String() string {
	if k >= towerKindCount {
		return fmt.Sprintf("TowerKind(%d)", uint8(k))
	}
	return towerKindNames[k]
}

// Valid reports whether k is one of the declared kinds.
func (k TowerKind) Valid() bool {
	return k < towerKindCount
}

// ParseTowerKind maps a name like "sniper" to its kind.
func ParseTowerKind(name string) (TowerKind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range towerKindNames {
		if s == n {
			return TowerKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTowerKind, name)
}

// MarshalText lets tower kinds appear as names in YAML.
func (k TowerKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTowerKind, uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText parses a tower kind name.
func (k *TowerKind) UnmarshalText(text []byte) error {
	parsed, err := ParseTowerKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// TowerDefinition holds all the static data for a specific kind of tower.
type TowerDefinition struct {
	Range          float64 `yaml:"range"`
	Damage         int     `yaml:"damage"`
	FireRatePeriod int     `yaml:"fire_rate_period"` // ticks between shots
	Cost           int     `yaml:"cost"`
}

// TowerTable maps every kind to its definition.
type TowerTable [towerKindCount]TowerDefinition

// DefaultTowers is the stock tower table.
var DefaultTowers = TowerTable{
	TowerBasic:  {Range: 100, Damage: 15, FireRatePeriod: 45, Cost: 50},
	TowerSniper: {Range: 200, Damage: 25, FireRatePeriod: 90, Cost: 100},
	TowerSlow:   {Range: 120, Damage: 5, FireRatePeriod: 45, Cost: 75},
}

// Get returns the definition for kind. ok is false for undeclared kinds.
func (t *TowerTable) Get(kind TowerKind) (TowerDefinition, bool) {
	if !kind.Valid() {
		return TowerDefinition{}, false
	}
	return t[kind], true
}
