// internal/component/game_state.go
package component

// Phase — фаза сессии
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// GameState — ресурсы игрока и счётчик волн.
// Money никогда не уходит в минус: траты проходят через Spend.
type GameState struct {
	Health int
	Money  int
	Wave   int
	Phase  Phase
}

// Spend списывает amount, если денег хватает. Иначе состояние не меняется.
func (gs *GameState) Spend(amount int) bool {
	if amount < 0 || gs.Money < amount {
		return false
	}
	gs.Money -= amount
	return true
}

// Earn начисляет награду
func (gs *GameState) Earn(amount int) {
	if amount > 0 {
		gs.Money += amount
	}
}

// TakeDamage уменьшает здоровье игрока. Здоровье может уйти в ноль и ниже.
func (gs *GameState) TakeDamage(amount int) {
	gs.Health -= amount
}

// AdvanceWave увеличивает счётчик волн и возвращает новое значение
func (gs *GameState) AdvanceWave() int {
	gs.Wave++
	return gs.Wave
}

// Defeated сообщает, что здоровье исчерпано
func (gs *GameState) Defeated() bool {
	return gs.Health <= 0
}

// IsOver сообщает, что сессия уже завершена
func (gs *GameState) IsOver() bool {
	return gs.Phase == PhaseGameOver
}

// Ended сообщает, что дальнейшие изменения мира запрещены: либо фаза уже
// переключена, либо здоровье исчерпано в текущем тике и переключение ещё впереди.
func (gs *GameState) Ended() bool {
	return gs.IsOver() || gs.Defeated()
}
