package systems

import (
	"cave-combat/internal/domain"

	"github.com/zyedidia/generic/queue"
)

const unreachable = -1

// Area - размеры сетки, по которой идет поиск.
type Area interface {
	Width() int
	Height() int
}

// VacancyFunc сообщает, можно ли пройти через клетку.
// Для клеток за пределами карты обязана возвращать false.
type VacancyFunc func(domain.Position) bool

// DistanceField - расстояния в шагах от одной исходной клетки.
// Принадлежит вызову, который его построил, между ходами не переиспользуется:
// занятость клеток меняется после каждого шага и каждой смерти.
type DistanceField struct {
	origin domain.Position
	width  int
	height int
	dist   []int
}

// Origin возвращает клетку, от которой считались расстояния.
func (f *DistanceField) Origin() domain.Position {
	return f.origin
}

// At возвращает расстояние до клетки и признак достижимости.
func (f *DistanceField) At(p domain.Position) (int, bool) {
	if p.X < 0 || p.X >= f.width || p.Y < 0 || p.Y >= f.height {
		return 0, false
	}
	d := f.dist[p.Y*f.width+p.X]
	return d, d != unreachable
}

// Reached возвращает число достигнутых клеток, включая исходную.
func (f *DistanceField) Reached() int {
	n := 0
	for _, d := range f.dist {
		if d != unreachable {
			n++
		}
	}
	return n
}

// ComputeDistances - поиск в ширину от origin по свободным клеткам (4 направления).
//
// Сама исходная клетка получает расстояние 0, даже если в ней стоит агент.
// Поиск идет до исчерпания очереди: выбор цели потом сравнивает все равноудаленные
// кандидаты явно, порядок обнаружения для тай-брейка не используется.
func ComputeDistances(area Area, origin domain.Position, vacant VacancyFunc) *DistanceField {
	f := &DistanceField{
		origin: origin,
		width:  area.Width(),
		height: area.Height(),
		dist:   make([]int, area.Width()*area.Height()),
	}
	for i := range f.dist {
		f.dist[i] = unreachable
	}
	if origin.X < 0 || origin.X >= f.width || origin.Y < 0 || origin.Y >= f.height {
		return f
	}

	frontier := queue.New[domain.Position]()
	f.dist[origin.Y*f.width+origin.X] = 0
	frontier.Enqueue(origin)

	for !frontier.Empty() {
		cur := frontier.Dequeue()
		next := f.dist[cur.Y*f.width+cur.X] + 1

		for _, n := range cur.Neighbors() {
			if !vacant(n) {
				continue
			}
			idx := n.Y*f.width + n.X
			if f.dist[idx] != unreachable {
				continue
			}
			f.dist[idx] = next
			frontier.Enqueue(n)
		}
	}

	return f
}

// closest выбирает ближайшую по полю клетку из кандидатов.
// Равные расстояния разрешаются порядком чтения. Недостижимые кандидаты отбрасываются.
func closest(candidates []domain.Position, field *DistanceField) (best domain.Position, bestDist int, ok bool) {
	for _, c := range candidates {
		d, reachable := field.At(c)
		if !reachable {
			continue
		}
		if !ok || d < bestDist || (d == bestDist && c.Less(best)) {
			best, bestDist, ok = c, d, true
		}
	}
	return best, bestDist, ok
}
