// internal/component/projectile.go
package component

import "go-path-defense/internal/types"

// Bullet представляет летящий снаряд.
// Target — слабая ссылка, цель могла исчезнуть до попадания.
type Bullet struct {
	Position
	Target types.Handle
	Speed  float64
	Damage int
}
