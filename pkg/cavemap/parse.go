package cavemap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cave-combat/internal/domain"
)

// Символы карты
const (
	GlyphWall  = '#'
	GlyphFloor = '.'
)

var (
	ErrEmptyMap       = errors.New("cavemap: map is empty")
	ErrNotRectangular = errors.New("cavemap: rows differ in length")
	ErrUnknownGlyph   = errors.New("cavemap: unknown glyph")
)

// Map - результат разбора текстовой карты.
type Map struct {
	Cave   *domain.Cave
	Spawns []domain.Spawn // В порядке чтения
}

// Load читает карту из файла.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseString разбирает карту из строки.
func ParseString(s string) (*Map, error) {
	return Parse(strings.NewReader(s))
}

// Parse разбирает карту: '#' - стена, '.' - пол, 'E'/'G' - агенты на полу.
// Пустые строки в начале и в конце игнорируются, '\r' в конце строки тоже.
func Parse(r io.Reader) (*Map, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read map: %w", err)
	}

	// Отрезаем пустые строки по краям
	for len(rows) > 0 && rows[0] == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}

	width, height := len(rows[0]), len(rows)
	tiles := make([]domain.Tile, 0, width*height)
	var spawns []domain.Spawn

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotRectangular, y, len(row), width)
		}
		for x := 0; x < len(row); x++ {
			ch := row[x]
			switch ch {
			case GlyphWall:
				tiles = append(tiles, domain.Tile{IsWall: true})
			case GlyphFloor:
				tiles = append(tiles, domain.Tile{})
			default:
				f, ok := domain.FactionFromGlyph(ch)
				if !ok {
					return nil, fmt.Errorf("%w %q at (%d,%d)", ErrUnknownGlyph, ch, x, y)
				}
				// Под агентом всегда пол
				tiles = append(tiles, domain.Tile{})
				spawns = append(spawns, domain.Spawn{Faction: f, Pos: domain.Position{X: x, Y: y}})
			}
		}
	}

	cave, err := domain.NewCave(width, height, tiles)
	if err != nil {
		return nil, err
	}
	return &Map{Cave: cave, Spawns: spawns}, nil
}
