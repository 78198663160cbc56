package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want int
	}{
		{"same cell", Position{X: 3, Y: 4}, Position{X: 3, Y: 4}, 0},
		{"row wins over column", Position{X: 9, Y: 1}, Position{X: 0, Y: 2}, -1},
		{"same row, left first", Position{X: 1, Y: 5}, Position{X: 2, Y: 5}, -1},
		{"lower row later", Position{X: 0, Y: 3}, Position{X: 7, Y: 2}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
		})
	}
}

// Порядок чтения должен быть строгим полным порядком: ровно одна из двух
// различных позиций меньше, и без циклов.
func TestPosition_ReadingOrderIsTotal(t *testing.T) {
	var all []Position
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			all = append(all, Position{X: x, Y: y})
		}
	}

	for i, a := range all {
		for j, b := range all {
			if i == j {
				assert.False(t, a.Less(b))
				continue
			}
			assert.True(t, a.Less(b) != b.Less(a), "%v vs %v", a, b)
			// Построчное перечисление уже идет в порядке чтения.
			assert.Equal(t, i < j, a.Less(b), "%v vs %v", a, b)

			for _, c := range all {
				if a.Less(b) && b.Less(c) {
					assert.True(t, a.Less(c), "transitivity %v < %v < %v", a, b, c)
				}
			}
		}
	}
}

func TestPosition_Neighbors(t *testing.T) {
	p := Position{X: 5, Y: 5}
	n := p.Neighbors()

	assert.Equal(t, [4]Position{{X: 5, Y: 4}, {X: 4, Y: 5}, {X: 6, Y: 5}, {X: 5, Y: 6}}, n)
	for i := 1; i < len(n); i++ {
		assert.True(t, n[i-1].Less(n[i]), "neighbors must come in reading order")
	}
	for _, q := range n {
		assert.True(t, p.IsAdjacent(q))
	}
	assert.False(t, p.IsAdjacent(Position{X: 6, Y: 6}), "diagonal is not adjacent")
	assert.False(t, p.IsAdjacent(p))
}
