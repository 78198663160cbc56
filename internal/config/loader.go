package config

import (
	"fmt"
	"os"

	"cave-combat/internal/engine"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// LoadRules читает параметры боя из YAML поверх значений по умолчанию.
// Ключи, которых нет в файле, остаются как в engine.NewConfig().
func LoadRules(path string) (engine.Config, error) {
	cfg := engine.NewConfig()
	if err := loadYAML(path, &cfg); err != nil {
		return engine.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return engine.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
