package domain

// Faction - одна из двух враждующих фракций.
type Faction uint8

const (
	FactionElf Faction = iota
	FactionGoblin

	// FactionNone - "нет фракции" (например, победитель пустой карты).
	FactionNone Faction = 0xFF
)

// Factions перечисляет все настоящие фракции.
var Factions = [...]Faction{FactionElf, FactionGoblin}

// Valid возвращает true для FactionElf и FactionGoblin.
func (f Faction) Valid() bool {
	return f == FactionElf || f == FactionGoblin
}

// Enemy возвращает враждебную фракцию.
func (f Faction) Enemy() Faction {
	switch f {
	case FactionElf:
		return FactionGoblin
	case FactionGoblin:
		return FactionElf
	}
	return FactionNone
}

// Glyph - символ фракции на карте.
func (f Faction) Glyph() byte {
	switch f {
	case FactionElf:
		return 'E'
	case FactionGoblin:
		return 'G'
	}
	return '?'
}

func (f Faction) String() string {
	switch f {
	case FactionElf:
		return "elf"
	case FactionGoblin:
		return "goblin"
	}
	return "none"
}

// FactionFromGlyph возвращает фракцию по символу карты.
func FactionFromGlyph(ch byte) (Faction, bool) {
	switch ch {
	case 'E':
		return FactionElf, true
	case 'G':
		return FactionGoblin, true
	}
	return FactionNone, false
}

// Spawn - стартовая расстановка агента, как она записана на карте.
// Сила атаки сюда не входит: это параметр конкретного боя.
type Spawn struct {
	Faction Faction  `json:"faction"`
	Pos     Position `json:"pos"`
}

// AgentID - порядковый номер агента в стартовой расстановке.
type AgentID int

// Agent - боец одной из фракций.
type Agent struct {
	ID          AgentID  `json:"id"`
	Faction     Faction  `json:"faction"`
	Pos         Position `json:"pos"`
	HP          int      `json:"hp"`
	AttackPower int      `json:"attackPower"`
}

// IsAlive - у живого агента HP > 0.
func (a *Agent) IsAlive() bool {
	return a.HP > 0
}

// IsEnemy возвращает true, если other из враждебной фракции.
func (a *Agent) IsEnemy(other *Agent) bool {
	return other != nil && other.Faction != a.Faction
}

// TakeDamage наносит урон с насыщением в нуле. Возвращает true, если агент погиб.
func (a *Agent) TakeDamage(amount int) bool {
	if a.HP <= 0 {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	a.HP -= amount
	if a.HP <= 0 {
		a.HP = 0
		return true
	}
	return false
}
