package engine

import (
	"fmt"

	"cave-combat/internal/domain"
)

// Config хранит параметры боя.
type Config struct {
	// HitPoints - стартовое HP каждого агента.
	HitPoints int `yaml:"hit_points"`
	// ElfAttack - сила атаки эльфов. Именно ее подбирает калибровка.
	ElfAttack    int `yaml:"elf_attack"`
	GoblinAttack int `yaml:"goblin_attack"`

	// MaxRounds - предохранитель от бесконечного боя (например, фракции
	// разделены стеной). Превышение - фатальная ошибка, а не обычный финал.
	MaxRounds int `yaml:"max_rounds"`
	// MaxAttackPower - верхняя граница перебора при калибровке.
	MaxAttackPower int `yaml:"max_attack_power"`
}

// NewConfig создает конфиг по умолчанию
func NewConfig() Config {
	return Config{
		HitPoints:      domain.DefaultHitPoints,
		ElfAttack:      domain.DefaultAttackPower,
		GoblinAttack:   domain.DefaultAttackPower,
		MaxRounds:      10000,
		MaxAttackPower: domain.DefaultHitPoints,
	}
}

// AttackPower возвращает силу атаки фракции.
func (c Config) AttackPower(f domain.Faction) int {
	if f == domain.FactionElf {
		return c.ElfAttack
	}
	return c.GoblinAttack
}

// Validate проверяет, что параметры имеют смысл.
func (c Config) Validate() error {
	switch {
	case c.HitPoints <= 0:
		return fmt.Errorf("hit_points must be positive, got %d", c.HitPoints)
	case c.ElfAttack <= 0:
		return fmt.Errorf("elf_attack must be positive, got %d", c.ElfAttack)
	case c.GoblinAttack <= 0:
		return fmt.Errorf("goblin_attack must be positive, got %d", c.GoblinAttack)
	case c.MaxRounds <= 0:
		return fmt.Errorf("max_rounds must be positive, got %d", c.MaxRounds)
	case c.MaxAttackPower < c.ElfAttack:
		return fmt.Errorf("max_attack_power %d is below elf_attack %d", c.MaxAttackPower, c.ElfAttack)
	}
	return nil
}
