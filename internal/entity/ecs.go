// internal/entity/ecs.go
package entity

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/types"
)

type enemySlot struct {
	generation uint32
	enemy      *component.Enemy // nil, пока слот свободен
}

// Registry хранит живые множества врагов, башен и снарядов.
//
// Удаление помечает сущность сразу: handle врага перестаёт быть действительным,
// а компонент отвязывается и больше не изменяется. Физическое уплотнение
// контейнеров происходит в Sweep в конце тика, поэтому системы могут безопасно
// удалять сущности во время обхода снимка.
type Registry struct {
	enemySlots []enemySlot
	freeSlots  []uint32
	enemyOrder []types.Handle // порядок появления; мёртвые handles убирает Sweep

	towers []*component.Tower

	bullets     []*component.Bullet
	deadBullets map[*component.Bullet]struct{}
}

// NewRegistry создаёт пустой реестр
func NewRegistry() *Registry {
	return &Registry{
		deadBullets: make(map[*component.Bullet]struct{}),
	}
}

// AddEnemy регистрирует врага и возвращает его handle
func (r *Registry) AddEnemy(e *component.Enemy) types.Handle {
	var idx uint32
	if n := len(r.freeSlots); n > 0 {
		idx = r.freeSlots[n-1]
		r.freeSlots = r.freeSlots[:n-1]
	} else {
		idx = uint32(len(r.enemySlots))
		r.enemySlots = append(r.enemySlots, enemySlot{})
	}

	slot := &r.enemySlots[idx]
	slot.generation++
	slot.enemy = e

	h := types.Handle{Index: idx, Generation: slot.generation}
	r.enemyOrder = append(r.enemyOrder, h)
	return h
}

// Enemy разыменовывает handle. ok == false, если враг уже удалён.
func (r *Registry) Enemy(h types.Handle) (*component.Enemy, bool) {
	if h.IsZero() || int(h.Index) >= len(r.enemySlots) {
		return nil, false
	}
	slot := r.enemySlots[h.Index]
	if slot.generation != h.Generation || slot.enemy == nil {
		return nil, false
	}
	return slot.enemy, true
}

// Alive сообщает, действителен ли handle
func (r *Registry) Alive(h types.Handle) bool {
	_, ok := r.Enemy(h)
	return ok
}

// RemoveEnemy удаляет врага из живого множества. Повторное удаление возвращает false.
func (r *Registry) RemoveEnemy(h types.Handle) bool {
	if !r.Alive(h) {
		return false
	}
	slot := &r.enemySlots[h.Index]
	slot.enemy = nil
	slot.generation++
	r.freeSlots = append(r.freeSlots, h.Index)
	return true
}

// LiveEnemies возвращает снимок handles живых врагов в порядке появления
func (r *Registry) LiveEnemies() []types.Handle {
	out := make([]types.Handle, 0, len(r.enemyOrder))
	for _, h := range r.enemyOrder {
		if r.Alive(h) {
			out = append(out, h)
		}
	}
	return out
}

// EnemyCount возвращает число живых врагов
func (r *Registry) EnemyCount() int {
	n := 0
	for _, h := range r.enemyOrder {
		if r.Alive(h) {
			n++
		}
	}
	return n
}

// AddTower добавляет башню. Башни не удаляются до конца сессии.
func (r *Registry) AddTower(t *component.Tower) {
	r.towers = append(r.towers, t)
}

// Towers возвращает башни в порядке постройки
func (r *Registry) Towers() []*component.Tower {
	return r.towers
}

// AddBullet добавляет снаряд
func (r *Registry) AddBullet(b *component.Bullet) {
	r.bullets = append(r.bullets, b)
}

// RemoveBullet помечает снаряд уничтоженным
func (r *Registry) RemoveBullet(b *component.Bullet) {
	r.deadBullets[b] = struct{}{}
}

// BulletAlive сообщает, что снаряд ещё не уничтожен
func (r *Registry) BulletAlive(b *component.Bullet) bool {
	_, dead := r.deadBullets[b]
	return !dead
}

// LiveBullets возвращает снимок живых снарядов в порядке выстрелов
func (r *Registry) LiveBullets() []*component.Bullet {
	out := make([]*component.Bullet, 0, len(r.bullets))
	for _, b := range r.bullets {
		if r.BulletAlive(b) {
			out = append(out, b)
		}
	}
	return out
}

// Sweep физически убирает удалённых врагов и снаряды, сохраняя порядок остальных
func (r *Registry) Sweep() {
	live := r.enemyOrder[:0]
	for _, h := range r.enemyOrder {
		if r.Alive(h) {
			live = append(live, h)
		}
	}
	for i := len(live); i < len(r.enemyOrder); i++ {
		r.enemyOrder[i] = types.Handle{}
	}
	r.enemyOrder = live

	if len(r.deadBullets) == 0 {
		return
	}
	kept := r.bullets[:0]
	for _, b := range r.bullets {
		if r.BulletAlive(b) {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(r.bullets); i++ {
		r.bullets[i] = nil
	}
	r.bullets = kept
	r.deadBullets = make(map[*component.Bullet]struct{})
}
