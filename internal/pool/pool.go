// internal/pool/pool.go
package pool

// Poolable — сущность, которую можно переиспользовать через Pool.
type Poolable interface {
	Active() bool
	SetActive(active bool)
	// Reset обнуляет состояние экземпляра, включая вложенные коллекции.
	Reset()
}

// Pool — растущий набор переиспользуемых экземпляров.
// Каждый элемент либо активен (принадлежит симуляции), либо свободен.
// Пул только растёт и никогда не сжимается.
type Pool[T Poolable] struct {
	items []T
	newFn func() T
}

// New создаёт пул и заранее выделяет initialSize неактивных экземпляров.
func New[T Poolable](newFn func() T, initialSize int) *Pool[T] {
	if initialSize < 0 {
		initialSize = 0
	}
	p := &Pool[T]{
		items: make([]T, 0, initialSize),
		newFn: newFn,
	}
	for i := 0; i < initialSize; i++ {
		item := newFn()
		item.SetActive(false)
		p.items = append(p.items, item)
	}
	return p
}

// Get возвращает первый свободный экземпляр, предварительно вызвав init.
// Если свободных нет, создаётся и добавляется новый.
// init обязан перезаписать всё изменяемое состояние.
func (p *Pool[T]) Get(init func(T)) T {
	for _, item := range p.items {
		if item.Active() {
			continue
		}
		return p.activate(item, init)
	}

	item := p.newFn()
	p.items = append(p.items, item)
	return p.activate(item, init)
}

func (p *Pool[T]) activate(item T, init func(T)) T {
	if init != nil {
		init(item)
	}
	item.SetActive(true)
	return item
}

// Release помечает экземпляр свободным и сбрасывает его.
// Повторный Release ничего не делает.
func (p *Pool[T]) Release(item T) {
	if !item.Active() {
		return
	}
	item.SetActive(false)
	item.Reset()
}

// ReleaseAll возвращает в пул все экземпляры.
func (p *Pool[T]) ReleaseAll() {
	for _, item := range p.items {
		p.Release(item)
	}
}

// Len — сколько экземпляров выделено за всё время.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// ActiveCount — сколько экземпляров сейчас занято.
func (p *Pool[T]) ActiveCount() int {
	n := 0
	for _, item := range p.items {
		if item.Active() {
			n++
		}
	}
	return n
}

// Each вызывает fn для каждого экземпляра, включая свободные.
func (p *Pool[T]) Each(fn func(T)) {
	for _, item := range p.items {
		fn(item)
	}
}
