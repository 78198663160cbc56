package engine

import (
	"context"
	"errors"
	"fmt"

	"cave-combat/internal/domain"
	"cave-combat/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Calibration - результат подбора силы атаки эльфов.
type Calibration struct {
	AttackPower int     `json:"attackPower"` // Минимальная сила атаки без потерь
	Outcome     Outcome `json:"outcome"`     // Итог боя при этой силе
	Attempts    int     `json:"attempts"`
}

// Calibrate ищет минимальную силу атаки эльфов, при которой они выигрывают
// бой без единой потери. Перебор идет от cfg.ElfAttack до cfg.MaxAttackPower;
// каждая попытка прерывается при первой же смерти эльфа.
func Calibrate(ctx context.Context, cave *domain.Cave, spawns []domain.Spawn, cfg Config) (Calibration, error) {
	if err := cfg.Validate(); err != nil {
		return Calibration{}, err
	}
	calLogger := logger.For("calibration")

	attempts := 0
	for power := cfg.ElfAttack; power <= cfg.MaxAttackPower; power++ {
		attempts++
		try := cfg
		try.ElfAttack = power

		b, err := NewBattle(cave, spawns, try, AbortOnLoss(domain.FactionElf))
		if err != nil {
			return Calibration{}, err
		}

		out, err := b.Run(ctx)
		if errors.Is(err, ErrCalibrationLoss) {
			calLogger.WithFields(logrus.Fields{
				"elf_attack": power,
				"round":      b.Rounds() + 1,
				"elves":      b.Registry().Count(domain.FactionElf),
				"goblins":    b.Registry().Count(domain.FactionGoblin),
			}).Debug("Elf lost, raising attack power.")
			continue
		}
		if err != nil {
			return Calibration{}, fmt.Errorf("elf attack %d: %w", power, err)
		}

		calLogger.WithFields(logrus.Fields{
			"elf_attack": power,
			"attempts":   attempts,
			"outcome":    out.Value,
		}).Info("Calibration converged.")
		return Calibration{AttackPower: power, Outcome: out, Attempts: attempts}, nil
	}

	return Calibration{}, fmt.Errorf("%w: elves still lose at attack power %d", ErrNoConvergence, cfg.MaxAttackPower)
}
