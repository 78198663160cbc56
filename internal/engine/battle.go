package engine

import (
	"context"
	"fmt"

	"cave-combat/internal/domain"
	"cave-combat/internal/systems"
	"cave-combat/pkg/logger"

	"github.com/sirupsen/logrus"
)

// State - состояние планировщика раундов.
type State uint8

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "running"
}

// Option настраивает бой.
type Option func(*Battle)

// AbortOnLoss прерывает бой с ErrCalibrationLoss, как только погибает
// любой агент фракции f. Используется калибровкой.
func AbortOnLoss(f domain.Faction) Option {
	return func(b *Battle) {
		b.abortOnLoss = true
		b.abortFaction = f
	}
}

// Battle - один изолированный бой. Владеет реестром агентов.
type Battle struct {
	cfg    Config
	reg    *domain.Registry
	state  State
	rounds int
	losses map[domain.Faction]int

	abortOnLoss  bool
	abortFaction domain.Faction

	log *logrus.Entry
}

// NewBattle расставляет агентов по карте и готовит бой.
func NewBattle(cave *domain.Cave, spawns []domain.Spawn, cfg Config, opts ...Option) (*Battle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	reg := domain.NewRegistry(cave)
	for i, s := range spawns {
		a := &domain.Agent{
			ID:          domain.AgentID(i),
			Faction:     s.Faction,
			Pos:         s.Pos,
			HP:          cfg.HitPoints,
			AttackPower: cfg.AttackPower(s.Faction),
		}
		if err := reg.Place(a); err != nil {
			return nil, err
		}
	}

	b := &Battle{
		cfg:    cfg,
		reg:    reg,
		state:  StateRunning,
		losses: make(map[domain.Faction]int, len(domain.Factions)),
		log: logger.For("battle").WithFields(logrus.Fields{
			"elf_attack":    cfg.ElfAttack,
			"goblin_attack": cfg.GoblinAttack,
		}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Registry возвращает реестр агентов (для отрисовки и тестов).
func (b *Battle) Registry() *domain.Registry { return b.reg }

func (b *Battle) State() State { return b.state }

// Rounds - число полностью завершенных раундов.
func (b *Battle) Rounds() int { return b.rounds }

// decided - осталась не больше чем одна фракция.
func (b *Battle) decided() bool {
	live := b.reg.LiveFactions()
	return live.Size() < 2
}

// RunRound проводит один раунд. Возвращает true, если раунд засчитан.
//
// Раунд не засчитывается, если последняя вражеская фракция погибла, а в
// снимке порядка еще остался живой агент: на своем ходу он не нашел бы целей.
func (b *Battle) RunRound() (bool, error) {
	if b.state == StateTerminated {
		return false, nil
	}
	if b.decided() {
		b.terminate()
		return false, nil
	}

	order := NewRoundOrder(b.reg.Agents())
	for {
		item, ok := order.Next()
		if !ok {
			break
		}
		// Погиб раньше в этом же раунде
		if !item.Alive(b.reg) {
			continue
		}

		if err := b.takeTurn(item.Value); err != nil {
			return false, err
		}

		if b.decided() {
			complete := !order.HasLive(b.reg)
			if complete {
				b.rounds++
			}
			b.terminate()
			return complete, nil
		}
	}

	b.rounds++
	if logger.DebugEnabled() {
		b.log.WithFields(logrus.Fields{
			"round":   b.rounds,
			"elves":   b.reg.Count(domain.FactionElf),
			"goblins": b.reg.Count(domain.FactionGoblin),
			"hp":      b.reg.TotalHP(),
		}).Debug("Round complete.")
	}
	return true, nil
}

// takeTurn - ход одного агента: шаг, если враг не рядом, затем атака.
func (b *Battle) takeTurn(a *domain.Agent) error {
	if !systems.HasAdjacentEnemy(b.reg, a) {
		if _, err := systems.TakeStep(b.reg, a); err != nil {
			return err
		}
	}

	res, err := systems.ResolveAttack(b.reg, a)
	if err != nil {
		return err
	}
	if !res.Killed {
		return nil
	}

	b.losses[res.Target.Faction]++
	if b.abortOnLoss && res.Target.Faction == b.abortFaction {
		return fmt.Errorf("%w: %s %d died in round %d", ErrCalibrationLoss,
			res.Target.Faction, res.Target.ID, b.rounds+1)
	}
	return nil
}

func (b *Battle) terminate() {
	b.state = StateTerminated
	out := b.Outcome()
	b.log.WithFields(logrus.Fields{
		"rounds":    out.Rounds,
		"hp":        out.HPRemaining,
		"outcome":   out.Value,
		"winner":    out.Winner.String(),
		"survivors": out.Survivors,
	}).Debug("Battle finished.")
}

// Run проводит раунды до победы одной из фракций.
func (b *Battle) Run(ctx context.Context) (Outcome, error) {
	for b.state == StateRunning {
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}
		if b.rounds >= b.cfg.MaxRounds {
			return Outcome{}, fmt.Errorf("%w: %d rounds", ErrRoundLimit, b.cfg.MaxRounds)
		}
		if _, err := b.RunRound(); err != nil {
			return Outcome{}, err
		}
	}
	return b.Outcome(), nil
}

// Outcome возвращает текущий итог: завершенные раунды * оставшееся HP.
func (b *Battle) Outcome() Outcome {
	hp := b.reg.TotalHP()
	out := Outcome{
		Rounds:      b.rounds,
		HPRemaining: hp,
		Value:       b.rounds * hp,
		Winner:      domain.FactionNone,
		Survivors:   b.reg.Len(),
		Losses:      make(map[domain.Faction]int, len(b.losses)),
	}
	for f, n := range b.losses {
		out.Losses[f] = n
	}
	if b.decided() {
		for _, f := range domain.Factions {
			if b.reg.Count(f) > 0 {
				out.Winner = f
			}
		}
	}
	return out
}
