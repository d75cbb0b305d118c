package systems

import (
	"container/heap"

	"github.com/Samwisebuze/rustlike/internal/domain"
)

// Восемь направлений: сначала ортогональные, потом диагонали.
var directions = [8][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
}

// chebyshev - эвристика для сетки, где диагональный шаг стоит 1.
func chebyshev(a, b domain.Position) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// FindPath ищет кратчайший путь A* по 8 направлениям, шаг стоит 1.
// Клетки Map.Blocked непроходимы, кроме самой цели (на ней стоит жертва).
// Путь включает start и goal. Если пути нет, возвращает false.
func FindPath(m *domain.Map, start, goal domain.Position) ([]domain.Position, bool) {
	if !m.InBounds(start.X, start.Y) || !m.InBounds(goal.X, goal.Y) {
		return nil, false
	}
	if start == goal {
		return []domain.Position{start}, true
	}

	n := m.Width * m.Height
	g := make([]int, n)
	from := make([]int, n)
	closed := make([]bool, n)
	open := make([]*pathNode, n)
	for i := range g {
		g[i] = -1
		from[i] = -1
	}

	startIdx := m.IndexOf(start)
	goalIdx := m.IndexOf(goal)
	g[startIdx] = 0

	pq := make(pathQueue, 0, 64)
	heap.Init(&pq)
	seq := 0
	first := &pathNode{Pos: start, G: 0, F: chebyshev(start, goal), Seq: seq}
	heap.Push(&pq, first)
	open[startIdx] = first

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*pathNode)
		curIdx := m.IndexOf(cur.Pos)
		open[curIdx] = nil
		if curIdx == goalIdx {
			return buildPath(m, from, goalIdx), true
		}
		closed[curIdx] = true

		for _, d := range directions {
			next := cur.Pos.Shift(d[0], d[1])
			if !m.InBounds(next.X, next.Y) {
				continue
			}
			nextIdx := m.IndexOf(next)
			if closed[nextIdx] {
				continue
			}
			if nextIdx != goalIdx && m.IsBlocked(next) {
				continue
			}

			cost := cur.G + 1
			if g[nextIdx] >= 0 && cost >= g[nextIdx] {
				continue
			}
			g[nextIdx] = cost
			from[nextIdx] = curIdx

			f := cost + chebyshev(next, goal)
			if node := open[nextIdx]; node != nil {
				pq.update(node, cost, f)
				continue
			}
			seq++
			node := &pathNode{Pos: next, G: cost, F: f, Seq: seq}
			heap.Push(&pq, node)
			open[nextIdx] = node
		}
	}

	return nil, false
}

func buildPath(m *domain.Map, from []int, goalIdx int) []domain.Position {
	var rev []domain.Position
	for idx := goalIdx; idx >= 0; idx = from[idx] {
		rev = append(rev, m.PositionOf(idx))
	}
	path := make([]domain.Position, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}
