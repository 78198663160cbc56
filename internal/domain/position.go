package domain

import "fmt"

// Position - координата клетки. X - столбец, Y - строка.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Compare задает порядок чтения: сверху вниз, затем слева направо.
// Возвращает -1, 0 или +1. Все тай-брейки симуляции (клетка назначения,
// первый шаг, цель атаки) идут только через этот компаратор.
func (p Position) Compare(other Position) int {
	switch {
	case p.Y < other.Y:
		return -1
	case p.Y > other.Y:
		return 1
	case p.X < other.X:
		return -1
	case p.X > other.X:
		return 1
	}
	return 0
}

// Less возвращает true, если p идет раньше other в порядке чтения.
func (p Position) Less(other Position) bool {
	return p.Compare(other) < 0
}

// Shift возвращает новую позицию со смещением, не меняя текущую.
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Смещения соседей уже отсортированы в порядке чтения: вверх, влево, вправо, вниз.
var neighborOffsets = [4]Position{
	{X: 0, Y: -1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
}

// Neighbors возвращает 4 ортогональных соседа в порядке чтения.
// Позиции могут выходить за границы карты, проверка на вызывающей стороне.
func (p Position) Neighbors() [4]Position {
	var out [4]Position
	for i, off := range neighborOffsets {
		out[i] = p.Shift(off.X, off.Y)
	}
	return out
}

// ManhattanTo возвращает манхэттенское расстояние до другой точки.
func (p Position) ManhattanTo(other Position) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// IsAdjacent возвращает true, если цель в соседней клетке по ортогонали.
// Диагонали соседями не считаются.
func (p Position) IsAdjacent(other Position) bool {
	return p.ManhattanTo(other) == 1
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
