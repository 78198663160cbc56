package domain

import "fmt"

// Tile - одна клетка ландшафта.
type Tile struct {
	IsWall bool `json:"isWall"`
}

// Cave - неизменяемая карта ландшафта (стены и пол).
// Клетки хранятся плоским срезом, индекс = Y*Width + X.
type Cave struct {
	width  int
	height int
	tiles  []Tile
}

// NewCave создает карту из плоского среза клеток (построчно).
// Срез копируется, дальнейшие изменения исходника на карту не влияют.
func NewCave(width, height int, tiles []Tile) (*Cave, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("%w: %d tiles for %dx%d", ErrBadDimensions, len(tiles), width, height)
	}

	c := &Cave{
		width:  width,
		height: height,
		tiles:  make([]Tile, len(tiles)),
	}
	copy(c.tiles, tiles)
	return c, nil
}

func (c *Cave) Width() int  { return c.width }
func (c *Cave) Height() int { return c.height }

// InBounds проверяет, что позиция лежит внутри карты.
func (c *Cave) InBounds(p Position) bool {
	return p.X >= 0 && p.X < c.width && p.Y >= 0 && p.Y < c.height
}

// Index возвращает индекс клетки в плоском срезе. Позиция должна быть в границах.
func (c *Cave) Index(p Position) int {
	return p.Y*c.width + p.X
}

// IsOpen возвращает true для клетки пола. За границами карты - всегда false.
func (c *Cave) IsOpen(p Position) bool {
	if !c.InBounds(p) {
		return false
	}
	return !c.tiles[c.Index(p)].IsWall
}
