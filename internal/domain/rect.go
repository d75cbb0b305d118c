package domain

// Rect - прямоугольная комната. X, Y - левый верхний угол, W, H - размеры.
// Стены комнаты лежат на границе, пол - строго внутри.
type Rect struct {
	X, Y, W, H int
}

// X2 и Y2 - правая нижняя граница (включительно).
func (r Rect) X2() int { return r.X + r.W }
func (r Rect) Y2() int { return r.Y + r.H }

// Center возвращает центр комнаты.
func (r Rect) Center() Position {
	return Position{X: (r.X + r.X2()) / 2, Y: (r.Y + r.Y2()) / 2}
}

// Intersects проверяет пересечение с буфером в одну клетку: комнаты,
// касающиеся стенами, тоже считаются пересекающимися.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X2() && r.X2() >= other.X &&
		r.Y <= other.Y2() && r.Y2() >= other.Y
}

// Contains - лежит ли клетка на полу комнаты (без стен).
func (r Rect) Contains(p Position) bool {
	return p.X > r.X && p.X < r.X2() && p.Y > r.Y && p.Y < r.Y2()
}
