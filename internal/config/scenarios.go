package config

import (
	"fmt"

	"cave-combat/internal/engine"
	"cave-combat/pkg/cavemap"
)

// Expectation - эталонные значения сценария. Нулевые поля не проверяются,
// кроме Outcome.
type Expectation struct {
	Outcome int `yaml:"outcome"`
	Rounds  int `yaml:"rounds,omitempty"`
	HP      int `yaml:"hp,omitempty"`

	CalibratedPower   int `yaml:"calibrated_power,omitempty"`
	CalibratedOutcome int `yaml:"calibrated_outcome,omitempty"`
}

// Scenario - карта и ожидаемый итог боя.
type Scenario struct {
	Name      string      `yaml:"name"`
	Map       string      `yaml:"map"`
	ElfAttack int         `yaml:"elf_attack,omitempty"`
	Expect    Expectation `yaml:"expect"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios читает список сценариев из YAML.
func LoadScenarios(path string) ([]Scenario, error) {
	var f scenarioFile
	if err := loadYAML(path, &f); err != nil {
		return nil, err
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("%s: no scenarios", path)
	}
	for i, s := range f.Scenarios {
		if s.Name == "" {
			return nil, fmt.Errorf("%s: scenario #%d has no name", path, i)
		}
		if s.Map == "" {
			return nil, fmt.Errorf("%s: scenario %q has no map", path, s.Name)
		}
	}
	return f.Scenarios, nil
}

// Parse разбирает карту сценария.
func (s Scenario) Parse() (*cavemap.Map, error) {
	m, err := cavemap.ParseString(s.Map)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return m, nil
}

// Apply накладывает параметры сценария на базовый конфиг.
func (s Scenario) Apply(base engine.Config) engine.Config {
	if s.ElfAttack > 0 {
		base.ElfAttack = s.ElfAttack
		if base.MaxAttackPower < s.ElfAttack {
			base.MaxAttackPower = s.ElfAttack
		}
	}
	return base
}
