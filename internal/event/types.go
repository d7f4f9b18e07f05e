// internal/event/types.go
package event

const (
	StatsChanged EventType = "StatsChanged" // Изменились здоровье, деньги или волна, HUD перерисовывается
	WaveStarted  EventType = "WaveStarted"  // Запущена волна, Data: WavePayload
	EnemySpawned EventType = "EnemySpawned" // Враг появился, Data: types.Handle
	EnemyKilled  EventType = "EnemyKilled"  // Враг уничтожен, Data: types.Handle
	EnemyEscaped EventType = "EnemyEscaped" // Враг дошёл до конца пути, Data: types.Handle
	TowerPlaced  EventType = "TowerPlaced"  // Башня построена, Data: TowerPayload
	BulletFired  EventType = "BulletFired"  // Башня выстрелила
	GameOver     EventType = "GameOver"     // Здоровье исчерпано, отправляется один раз
)

// WavePayload — данные события WaveStarted
type WavePayload struct {
	Wave  int // номер запущенной волны
	Count int // сколько врагов запланировано
}

// TowerPayload — данные события TowerPlaced
type TowerPayload struct {
	X, Y float64
	Kind string
	Cost int
}
