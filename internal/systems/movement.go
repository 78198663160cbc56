package systems

import (
	"fmt"

	"cave-combat/internal/domain"
	"cave-combat/pkg/logger"

	"github.com/sirupsen/logrus"
)

// MovementResult - результат планирования шага. Не меняет состояние мира!
type MovementResult struct {
	From, To    domain.Position
	Destination domain.Position // Выбранная клетка рядом с врагом
	Distance    int             // Шагов от From до Destination
	HasMoved    bool
	InRange     bool // Враг уже рядом, двигаться не нужно
}

// PlanMove вычисляет следующий шаг агента к ближайшему достижимому врагу.
//
//  1. Враг уже рядом - не двигаемся.
//  2. Кандидаты - свободные клетки рядом с живыми врагами.
//  3. Поиск в ширину от агента, выбираем ближайшего кандидата (тай-брейк - порядок чтения).
//  4. Поиск в ширину от выбранной клетки, выбираем соседнюю клетку агента
//     с минимальным расстоянием (тай-брейк - порядок чтения самой клетки шага).
func PlanMove(reg *domain.Registry, a *domain.Agent) (MovementResult, error) {
	res := MovementResult{From: a.Pos, To: a.Pos}

	if HasAdjacentEnemy(reg, a) {
		res.InRange = true
		return res, nil
	}

	targets := TargetSquares(reg, a)
	if len(targets) == 0 {
		return res, nil
	}

	cave := reg.Cave()
	fromAgent := ComputeDistances(cave, a.Pos, reg.IsVacant)
	dest, dist, ok := closest(targets, fromAgent)
	if !ok {
		return res, nil
	}

	steps := make([]domain.Position, 0, 4)
	for _, p := range a.Pos.Neighbors() {
		if reg.IsVacant(p) {
			steps = append(steps, p)
		}
	}

	fromDest := ComputeDistances(cave, dest, reg.IsVacant)
	step, _, ok := closest(steps, fromDest)
	if !ok {
		// Цель достижима, а первого шага нет - такого быть не может.
		return res, fmt.Errorf("%w: agent %d at %v reaches %v but has no first step",
			domain.ErrInvariant, a.ID, a.Pos, dest)
	}

	res.To = step
	res.Destination = dest
	res.Distance = dist
	res.HasMoved = true
	return res, nil
}

// ApplyMove переносит агента в реестре согласно результату PlanMove.
func ApplyMove(reg *domain.Registry, res MovementResult) error {
	if !res.HasMoved {
		return nil
	}
	return reg.Relocate(res.From, res.To)
}

// TakeStep планирует и сразу выполняет шаг агента.
func TakeStep(reg *domain.Registry, a *domain.Agent) (MovementResult, error) {
	res, err := PlanMove(reg, a)
	if err != nil {
		return res, err
	}
	if err := ApplyMove(reg, res); err != nil {
		return res, err
	}

	if res.HasMoved && logger.DebugEnabled() {
		logger.For("movement_system").WithFields(logrus.Fields{
			"agent_id":    a.ID,
			"faction":     a.Faction.String(),
			"from":        res.From.String(),
			"to":          res.To.String(),
			"destination": res.Destination.String(),
			"distance":    res.Distance,
		}).Debug("Agent stepped.")
	}
	return res, nil
}
