package engine

import (
	"fmt"

	"cave-combat/internal/domain"
)

// Outcome - итог боя.
type Outcome struct {
	Rounds      int            `json:"rounds"`      // Полностью завершенные раунды
	HPRemaining int            `json:"hpRemaining"` // Суммарное HP выживших
	Value       int            `json:"value"`       // Rounds * HPRemaining
	Winner      domain.Faction `json:"winner"`
	Survivors   int            `json:"survivors"`

	// Losses - сколько агентов потеряла каждая фракция.
	Losses map[domain.Faction]int `json:"losses"`
}

func (o Outcome) String() string {
	return fmt.Sprintf("%d rounds x %d hp = %d (%s win, %d survivors)",
		o.Rounds, o.HPRemaining, o.Value, o.Winner, o.Survivors)
}
