// internal/component/enemy.go
package component

// Enemy представляет вражескую сущность.
// MaxHealth и Speed фиксируются при создании по номеру волны Wave.
type Enemy struct {
	Position
	Size         float64
	MaxHealth    int
	Health       int
	Speed        float64 // единиц за тик
	SegmentIndex int     // пройден waypoint[i], движемся к waypoint[i+1]
	Wave         int     // волна, по которой рассчитаны параметры
}

// HealthRatio возвращает долю оставшегося здоровья для полоски над врагом
func (e *Enemy) HealthRatio() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return float64(e.Health) / float64(e.MaxHealth)
}
