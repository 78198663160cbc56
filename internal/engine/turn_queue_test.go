package engine

import (
	"testing"

	"cave-combat/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnQueue(t *testing.T) {
	e1 := &domain.Agent{ID: 1, Pos: domain.Position{X: 5, Y: 1}, HP: 10}
	e2 := &domain.Agent{ID: 2, Pos: domain.Position{X: 1, Y: 2}, HP: 10}
	e3 := &domain.Agent{ID: 3, Pos: domain.Position{X: 2, Y: 1}, HP: 10}

	pq := NewRoundOrder([]*domain.Agent{e1, e2, e3})
	require.Equal(t, 3, pq.Len())

	// Порядок чтения: (2,1), (5,1), (1,2)
	var got []domain.AgentID
	for {
		item, ok := pq.Next()
		if !ok {
			break
		}
		got = append(got, item.Value.ID)
		assert.Equal(t, -1, item.Index)
	}
	assert.Equal(t, []domain.AgentID{3, 1, 2}, got)
}

// Снимок фиксирует стартовые позиции: шаг агента по ходу раунда порядок не меняет.
func TestTurnQueue_SnapshotIgnoresMoves(t *testing.T) {
	a := &domain.Agent{ID: 1, Pos: domain.Position{X: 1, Y: 1}, HP: 10}
	b := &domain.Agent{ID: 2, Pos: domain.Position{X: 2, Y: 1}, HP: 10}

	pq := NewRoundOrder([]*domain.Agent{b, a})
	a.Pos = domain.Position{X: 9, Y: 9}

	first, ok := pq.Next()
	require.True(t, ok)
	assert.Same(t, a, first.Value)
}

func TestTurnItem_Alive(t *testing.T) {
	reg := domain.NewRegistry(mustCave(t, "#####\n#...#\n#####\n"))
	a := &domain.Agent{ID: 1, Faction: domain.FactionElf, Pos: domain.Position{X: 1, Y: 1}, HP: 10}
	b := &domain.Agent{ID: 2, Faction: domain.FactionGoblin, Pos: domain.Position{X: 3, Y: 1}, HP: 10}
	require.NoError(t, reg.Place(a))
	require.NoError(t, reg.Place(b))

	pq := NewRoundOrder(reg.Agents())
	assert.True(t, pq.HasLive(reg))

	// b погиб, a зашел в его клетку: снимок b все равно мертв
	b.HP = 0
	_, err := reg.Remove(b.Pos)
	require.NoError(t, err)
	require.NoError(t, reg.Relocate(a.Pos, domain.Position{X: 2, Y: 1}))
	require.NoError(t, reg.Relocate(a.Pos, domain.Position{X: 3, Y: 1}))

	first, _ := pq.Next()
	second, _ := pq.Next()
	assert.Same(t, a, first.Value)
	assert.True(t, first.Alive(reg))
	assert.Same(t, b, second.Value)
	assert.False(t, second.Alive(reg))
}
