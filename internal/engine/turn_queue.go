package engine

import (
	"cave-combat/internal/domain"
	"container/heap"
)

// TurnItem обертка для элемента очереди ходов
type TurnItem struct {
	Value *domain.Agent   // Сам агент
	Pos   domain.Position // Позиция на момент начала раунда. По ней идет порядок.
	Index int             // Индекс в куче
}

// Alive - агент из снимка все еще жив и стоит в реестре.
// Сравниваем по указателю: в клетку погибшего мог зайти другой агент.
func (it *TurnItem) Alive(reg *domain.Registry) bool {
	return it.Value.IsAlive() && reg.AgentAt(it.Value.Pos) == it.Value
}

// TurnQueue реализует heap.Interface и хранит TurnItems.
// Приоритет - порядок чтения стартовых позиций.
type TurnQueue []*TurnItem

func (pq TurnQueue) Len() int { return len(pq) }

func (pq TurnQueue) Less(i, j int) bool {
	// MinHeap по порядку чтения
	return pq[i].Pos.Less(pq[j].Pos)
}

func (pq TurnQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *TurnQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*TurnItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *TurnQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // избегаем утечки памяти
	item.Index = -1 // для безопасности
	*pq = old[0 : n-1]
	return item
}

// NewRoundOrder фиксирует порядок ходов на раунд: снимок живых агентов.
// Порядок не меняется, даже если агенты двигаются и гибнут по ходу раунда.
func NewRoundOrder(agents []*domain.Agent) *TurnQueue {
	pq := make(TurnQueue, 0, len(agents))
	for _, a := range agents {
		pq = append(pq, &TurnItem{Value: a, Pos: a.Pos, Index: len(pq)})
	}
	heap.Init(&pq)
	return &pq
}

// Next снимает следующего по порядку агента.
func (pq *TurnQueue) Next() (*TurnItem, bool) {
	if pq.Len() == 0 {
		return nil, false
	}
	return heap.Pop(pq).(*TurnItem), true
}

// HasLive сообщает, остался ли в очереди хотя бы один живой агент.
func (pq TurnQueue) HasLive(reg *domain.Registry) bool {
	for _, it := range pq {
		if it.Alive(reg) {
			return true
		}
	}
	return false
}
