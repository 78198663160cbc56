package engine

import (
	"os"
	"testing"

	"cave-combat/internal/domain"
	"cave-combat/pkg/cavemap"
	"cave-combat/pkg/logger"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func mustCave(t *testing.T, text string) *domain.Cave {
	t.Helper()
	m, err := cavemap.ParseString(text)
	require.NoError(t, err)
	return m.Cave
}

// Helper: бой по текстовой карте
func battleFromMap(t *testing.T, text string, cfg Config, opts ...Option) *Battle {
	t.Helper()
	m, err := cavemap.ParseString(text)
	require.NoError(t, err)

	b, err := NewBattle(m.Cave, m.Spawns, cfg, opts...)
	require.NoError(t, err)
	return b
}
