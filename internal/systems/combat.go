package systems

import (
	"cave-combat/internal/domain"
	"cave-combat/pkg/logger"

	"github.com/sirupsen/logrus"
)

// AttackResult - итог одной атаки.
type AttackResult struct {
	Attacked bool
	Target   *domain.Agent
	Damage   int
	HPBefore int
	HPAfter  int
	Killed   bool
}

// ResolveAttack выбирает самого слабого соседнего врага и бьет его на
// AttackPower атакующего. Погибший убирается из реестра сразу, а не в конце
// раунда: это влияет на ходы остальных агентов в том же раунде.
func ResolveAttack(reg *domain.Registry, attacker *domain.Agent) (AttackResult, error) {
	target := SelectTarget(reg, attacker)
	if target == nil {
		return AttackResult{}, nil
	}

	res := AttackResult{
		Attacked: true,
		Target:   target,
		Damage:   attacker.AttackPower,
		HPBefore: target.HP,
	}
	res.Killed = target.TakeDamage(attacker.AttackPower)
	res.HPAfter = target.HP

	if res.Killed {
		if _, err := reg.Remove(target.Pos); err != nil {
			return res, err
		}
	}

	if logger.DebugEnabled() {
		combatLogger := logger.For("combat_system").WithFields(logrus.Fields{
			"attacker_id": attacker.ID,
			"attacker":    attacker.Faction.String(),
			"target_id":   target.ID,
			"target":      target.Faction.String(),
			"damage":      res.Damage,
			"hp_before":   res.HPBefore,
			"hp_after":    res.HPAfter,
		})
		if res.Killed {
			combatLogger.WithField("pos", target.Pos.String()).Debug("Target killed.")
		} else {
			combatLogger.Debug("Attack resolved.")
		}
	}

	return res, nil
}
