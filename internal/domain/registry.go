package domain

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Registry - изменяемое отображение "клетка -> живой агент".
//
// Индекс тот же, что у Cave: Y*Width + X. В каждой клетке не больше одного
// агента, агенты стоят только на полу, мертвых агентов в реестре нет.
// Реестр не потокобезопасен: им владеет один планировщик раундов.
type Registry struct {
	cave   *Cave
	cells  []*Agent
	counts [len(Factions)]int
	total  int
}

// NewRegistry создает пустой реестр поверх карты.
func NewRegistry(cave *Cave) *Registry {
	return &Registry{
		cave:  cave,
		cells: make([]*Agent, cave.Width()*cave.Height()),
	}
}

// Cave возвращает карту, поверх которой построен реестр.
func (r *Registry) Cave() *Cave {
	return r.cave
}

// Place ставит агента на его позицию. Используется только при построении боя.
func (r *Registry) Place(a *Agent) error {
	if !a.Faction.Valid() {
		return fmt.Errorf("%w: agent %d has unknown faction %d", ErrInvariant, a.ID, a.Faction)
	}
	if !r.cave.IsOpen(a.Pos) {
		return fmt.Errorf("%w: agent %d placed on non-floor cell %v", ErrInvariant, a.ID, a.Pos)
	}
	if !a.IsAlive() {
		return fmt.Errorf("%w: agent %d placed with %d hp", ErrInvariant, a.ID, a.HP)
	}

	idx := r.cave.Index(a.Pos)
	if other := r.cells[idx]; other != nil {
		return fmt.Errorf("%w: agents %d and %d share cell %v", ErrInvariant, other.ID, a.ID, a.Pos)
	}

	r.cells[idx] = a
	r.counts[a.Faction]++
	r.total++
	return nil
}

// AgentAt возвращает живого агента в клетке или nil.
func (r *Registry) AgentAt(p Position) *Agent {
	if !r.cave.InBounds(p) {
		return nil
	}
	return r.cells[r.cave.Index(p)]
}

// IsVacant - клетка является полом и в ней никого нет.
func (r *Registry) IsVacant(p Position) bool {
	return r.cave.IsOpen(p) && r.cells[r.cave.Index(p)] == nil
}

// Remove убирает агента из клетки (смерть). Возвращает удаленного агента.
func (r *Registry) Remove(p Position) (*Agent, error) {
	a := r.AgentAt(p)
	if a == nil {
		return nil, fmt.Errorf("%w: remove from empty cell %v", ErrInvariant, p)
	}

	r.cells[r.cave.Index(p)] = nil
	r.counts[a.Faction]--
	r.total--
	return a, nil
}

// Relocate перемещает агента из from в свободную клетку to.
func (r *Registry) Relocate(from, to Position) error {
	a := r.AgentAt(from)
	if a == nil {
		return fmt.Errorf("%w: relocate from empty cell %v", ErrInvariant, from)
	}
	if !r.IsVacant(to) {
		return fmt.Errorf("%w: agent %d cannot enter occupied or blocked cell %v", ErrInvariant, a.ID, to)
	}

	r.cells[r.cave.Index(from)] = nil
	r.cells[r.cave.Index(to)] = a
	a.Pos = to
	return nil
}

// LiveFactions возвращает множество фракций, у которых остались живые агенты.
func (r *Registry) LiveFactions() mapset.Set[Faction] {
	live := mapset.New[Faction]()
	for _, f := range Factions {
		if r.counts[f] > 0 {
			live.Put(f)
		}
	}
	return live
}

// Count возвращает число живых агентов фракции.
func (r *Registry) Count(f Faction) int {
	if !f.Valid() {
		return 0
	}
	return r.counts[f]
}

// Len возвращает общее число живых агентов.
func (r *Registry) Len() int {
	return r.total
}

// Agents возвращает живых агентов в порядке чтения.
// Обход плоского среза по возрастанию индекса и есть порядок чтения.
func (r *Registry) Agents() []*Agent {
	out := make([]*Agent, 0, r.total)
	for _, a := range r.cells {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}

// TotalHP - сумма HP всех живых агентов.
func (r *Registry) TotalHP() int {
	sum := 0
	for _, a := range r.cells {
		if a != nil {
			sum += a.HP
		}
	}
	return sum
}
