package cavemap

import (
	"testing"

	"cave-combat/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	m, err := ParseString(`
#######
#.G...#
#...EG#
#######
`)
	require.NoError(t, err)

	assert.Equal(t, 7, m.Cave.Width())
	assert.Equal(t, 4, m.Cave.Height())
	assert.False(t, m.Cave.IsOpen(domain.Position{X: 0, Y: 0}))
	assert.True(t, m.Cave.IsOpen(domain.Position{X: 1, Y: 1}))
	// Под агентами пол
	assert.True(t, m.Cave.IsOpen(domain.Position{X: 2, Y: 1}))

	want := []domain.Spawn{
		{Faction: domain.FactionGoblin, Pos: domain.Position{X: 2, Y: 1}},
		{Faction: domain.FactionElf, Pos: domain.Position{X: 4, Y: 2}},
		{Faction: domain.FactionGoblin, Pos: domain.Position{X: 5, Y: 2}},
	}
	assert.Equal(t, want, m.Spawns)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "\n\n", ErrEmptyMap},
		{"ragged rows", "####\n#..\n####\n", ErrNotRectangular},
		{"blank row in the middle", "###\n\n###\n", ErrNotRectangular},
		{"unknown glyph", "###\n#X#\n###\n", ErrUnknownGlyph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_CRLF(t *testing.T) {
	m, err := ParseString("###\r\n#E#\r\n###\r\n")
	require.NoError(t, err)
	assert.Equal(t, 3, m.Cave.Width())
	assert.Len(t, m.Spawns, 1)
}

func TestRender(t *testing.T) {
	m, err := ParseString("#######\n#.G.E.#\n#######\n")
	require.NoError(t, err)

	reg := domain.NewRegistry(m.Cave)
	for i, s := range m.Spawns {
		require.NoError(t, reg.Place(&domain.Agent{ID: domain.AgentID(i), Faction: s.Faction, Pos: s.Pos, HP: 200 - i}))
	}

	want := "#######\n" +
		"#.G.E.#   G(200), E(199)\n" +
		"#######\n"
	assert.Equal(t, want, Render(reg))
}
