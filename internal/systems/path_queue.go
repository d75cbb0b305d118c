package systems

import (
	"container/heap"

	"github.com/Samwisebuze/rustlike/internal/domain"
)

// pathNode - элемент открытого списка A*.
type pathNode struct {
	Pos   domain.Position
	G     int // Пройдено шагов от старта
	F     int // G + эвристика
	Seq   int // Порядок добавления, для стабильного выбора при равных F
	Index int // Индекс в куче (нужен для update)
}

// pathQueue реализует heap.Interface (MinHeap по F).
type pathQueue []*pathNode

func (pq pathQueue) Len() int { return len(pq) }

func (pq pathQueue) Less(i, j int) bool {
	if pq[i].F != pq[j].F {
		return pq[i].F < pq[j].F
	}
	// При равной оценке берем узел ближе к цели
	if pq[i].G != pq[j].G {
		return pq[i].G > pq[j].G
	}
	return pq[i].Seq < pq[j].Seq
}

func (pq pathQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *pathQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*pathNode)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *pathQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // избегаем утечки памяти
	item.Index = -1 // для безопасности
	*pq = old[0 : n-1]
	return item
}

// update меняет стоимость узла, который уже лежит в куче.
func (pq *pathQueue) update(item *pathNode, g, f int) {
	item.G = g
	item.F = f
	heap.Fix(pq, item.Index)
}
