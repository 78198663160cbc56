package systems

import (
	"cave-combat/internal/domain"
)

// AdjacentEnemies возвращает живых врагов, стоящих вплотную к агенту (по ортогонали).
// Порядок результата - порядок чтения их позиций.
func AdjacentEnemies(reg *domain.Registry, a *domain.Agent) []*domain.Agent {
	var out []*domain.Agent
	for _, p := range a.Pos.Neighbors() {
		if other := reg.AgentAt(p); a.IsEnemy(other) {
			out = append(out, other)
		}
	}
	return out
}

// HasAdjacentEnemy - есть ли враг в соседней клетке.
func HasAdjacentEnemy(reg *domain.Registry, a *domain.Agent) bool {
	for _, p := range a.Pos.Neighbors() {
		if a.IsEnemy(reg.AgentAt(p)) {
			return true
		}
	}
	return false
}

// SelectTarget выбирает цель атаки: соседний враг с наименьшим HP,
// при равенстве - первый в порядке чтения. nil, если рядом никого нет.
func SelectTarget(reg *domain.Registry, a *domain.Agent) *domain.Agent {
	var target *domain.Agent
	for _, e := range AdjacentEnemies(reg, a) {
		if target == nil || e.HP < target.HP || (e.HP == target.HP && e.Pos.Less(target.Pos)) {
			target = e
		}
	}
	return target
}

// TargetSquares перечисляет свободные клетки рядом с живыми врагами агента.
// Это кандидаты в точку назначения. Дубликаты возможны и не мешают выбору.
func TargetSquares(reg *domain.Registry, a *domain.Agent) []domain.Position {
	var out []domain.Position
	for _, other := range reg.Agents() {
		if !a.IsEnemy(other) {
			continue
		}
		for _, p := range other.Pos.Neighbors() {
			if reg.IsVacant(p) {
				out = append(out, p)
			}
		}
	}
	return out
}
