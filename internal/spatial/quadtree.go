// internal/spatial/quadtree.go
package spatial

// DefaultCapacity — сколько точек узел держит до деления.
const DefaultCapacity = 4

// maxDepth ограничивает деление: совпадающие точки копятся в листе.
const maxDepth = 12

// Point — всё, что можно положить в дерево.
type Point interface {
	Pos() (x, y float64)
}

// Quadtree хранит каждую точку ровно в одном узле: в самом мелком по глубине,
// чьи границы её содержат и где ещё есть место. Дерево строится заново каждый тик.
type Quadtree[T Point] struct {
	bounds   Rect
	capacity int
	points   []T
	divided  bool
	depth    int

	northEast *Quadtree[T]
	northWest *Quadtree[T]
	southEast *Quadtree[T]
	southWest *Quadtree[T]
}

// NewQuadtree создаёт корень над bounds. capacity <= 0 заменяется на DefaultCapacity.
func NewQuadtree[T Point](bounds Rect, capacity int) *Quadtree[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Quadtree[T]{
		bounds:   bounds,
		capacity: capacity,
		points:   make([]T, 0, capacity),
	}
}

// Bounds возвращает границы узла.
func (q *Quadtree[T]) Bounds() Rect { return q.bounds }

// Insert возвращает false, если точка вне границ узла.
func (q *Quadtree[T]) Insert(p T) bool {
	x, y := p.Pos()
	if !q.bounds.Contains(x, y) {
		return false
	}

	if len(q.points) < q.capacity || (!q.divided && q.depth >= maxDepth) {
		q.points = append(q.points, p)
		return true
	}

	if !q.divided {
		q.subdivide()
	}

	if q.northEast.Insert(p) ||
		q.northWest.Insert(p) ||
		q.southEast.Insert(p) ||
		q.southWest.Insert(p) {
		return true
	}

	// Точку, которую не принял ни один потомок, держим в самом узле.
	q.points = append(q.points, p)
	return true
}

func (q *Quadtree[T]) subdivide() {
	// Восточные и южные четверти доходят ровно до дальних краёв родителя.
	x, y := q.bounds.X, q.bounds.Y
	midX, midY := x+q.bounds.W/2, y+q.bounds.H/2
	right, bottom := x+q.bounds.W, y+q.bounds.H
	west, north := midX-x, midY-y
	east, south := right-midX, bottom-midY

	q.northEast = q.child(Rect{X: midX, Y: y, W: east, H: north})
	q.northWest = q.child(Rect{X: x, Y: y, W: west, H: north})
	q.southEast = q.child(Rect{X: midX, Y: midY, W: east, H: south})
	q.southWest = q.child(Rect{X: x, Y: midY, W: west, H: south})
	q.divided = true
}

func (q *Quadtree[T]) child(r Rect) *Quadtree[T] {
	c := NewQuadtree[T](r, q.capacity)
	c.depth = q.depth + 1
	return c
}

// Query дописывает в found все точки внутри r и возвращает результат.
// Передавайте found[:0] между запросами, чтобы не выделять память.
func (q *Quadtree[T]) Query(r Rect, found []T) []T {
	if !q.bounds.Intersects(r) {
		return found
	}

	for _, p := range q.points {
		x, y := p.Pos()
		if r.Contains(x, y) {
			found = append(found, p)
		}
	}

	if q.divided {
		found = q.northWest.Query(r, found)
		found = q.northEast.Query(r, found)
		found = q.southWest.Query(r, found)
		found = q.southEast.Query(r, found)
	}
	return found
}

// QueryCircle — Query по описанному квадрату с точной фильтрацией по радиусу.
func (q *Quadtree[T]) QueryCircle(cx, cy, radius float64, found []T) []T {
	start := len(found)
	found = q.Query(Around(cx, cy, radius), found)

	kept := found[:start]
	r2 := radius * radius
	for _, p := range found[start:] {
		x, y := p.Pos()
		dx, dy := x-cx, y-cy
		if dx*dx+dy*dy <= r2 {
			kept = append(kept, p)
		}
	}
	return kept
}

// Clear очищает дерево, сохраняя корень и его ёмкость.
func (q *Quadtree[T]) Clear() {
	clear(q.points)
	q.points = q.points[:0]
	q.divided = false
	q.northEast, q.northWest, q.southEast, q.southWest = nil, nil, nil, nil
}

// Len считает точки во всём поддереве.
func (q *Quadtree[T]) Len() int {
	n := len(q.points)
	if q.divided {
		n += q.northEast.Len() + q.northWest.Len() + q.southEast.Len() + q.southWest.Len()
	}
	return n
}

// Divided сообщает, делился ли узел.
func (q *Quadtree[T]) Divided() bool { return q.divided }
