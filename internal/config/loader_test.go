package config

import (
	"os"
	"path/filepath"
	"testing"

	"cave-combat/internal/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadRules_Overlay(t *testing.T) {
	path := writeFile(t, "rules.yaml", "elf_attack: 12\nmax_rounds: 500\n")

	cfg, err := LoadRules(path)
	require.NoError(t, err)

	want := engine.NewConfig()
	want.ElfAttack = 12
	want.MaxRounds = 500
	assert.Equal(t, want, cfg)
}

func TestLoadRules_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "broken yaml", body: "elf_attack: [1, 2\n"},
		{name: "zero attack", body: "goblin_attack: 0\n"},
		{name: "power bound below attack", body: "elf_attack: 50\nmax_attack_power: 10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRules(writeFile(t, "rules.yaml", tt.body))
			assert.Error(t, err)
		})
	}

	_, err := LoadRules(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadScenarios(t *testing.T) {
	path := writeFile(t, "scenarios.yaml", `
scenarios:
  - name: duel
    elf_attack: 250
    map: |
      ####
      #GE#
      ####
    expect:
      outcome: 200
`)

	scenarios, err := LoadScenarios(path)
	require.NoError(t, err)
	require.Len(t, scenarios, 1)

	sc := scenarios[0]
	assert.Equal(t, "duel", sc.Name)
	assert.Equal(t, 200, sc.Expect.Outcome)
	assert.Zero(t, sc.Expect.CalibratedPower)

	m, err := sc.Parse()
	require.NoError(t, err)
	assert.Len(t, m.Spawns, 2)

	// Сила атаки сценария тянет за собой верхнюю границу калибровки
	cfg := sc.Apply(engine.NewConfig())
	assert.Equal(t, 250, cfg.ElfAttack)
	assert.Equal(t, 250, cfg.MaxAttackPower)
	assert.NoError(t, cfg.Validate())
}

func TestLoadScenarios_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty list", body: "scenarios: []\n"},
		{name: "no name", body: "scenarios:\n  - map: \"#\"\n"},
		{name: "no map", body: "scenarios:\n  - name: x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenarios(writeFile(t, "s.yaml", tt.body))
			assert.Error(t, err)
		})
	}
}

func TestScenario_ParseError(t *testing.T) {
	sc := Scenario{Name: "ragged", Map: "###\n#E\n###\n"}
	_, err := sc.Parse()
	assert.Error(t, err)
}
