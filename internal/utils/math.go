// internal/utils/math.go
package utils

import "math"

// Distance возвращает евклидово расстояние между двумя точками
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// StepToward сдвигает точку (x, y) к цели (tx, ty) на step вдоль нормализованного направления.
// Вызывающий код гарантирует, что dist > 0.
func StepToward(x, y, tx, ty, step float64) (float64, float64) {
	dx := tx - x
	dy := ty - y
	dist := math.Sqrt(dx*dx + dy*dy)
	return x + (dx/dist)*step, y + (dy/dist)*step
}

// Clamp01 ограничивает значение диапазоном [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}
