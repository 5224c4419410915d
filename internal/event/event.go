// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — событие симуляции. Data несёт структуру из types.go или nil.
type Event struct {
	Type EventType
	Data any
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher доставляет события синхронно, в порядке подписки, прямо
// внутри Dispatch. Подписчик не должен менять размер коллекций,
// которые в этот момент обходит симуляция.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventType][]Listener)}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll подписывает listener сразу на несколько типов.
func (d *Dispatcher) SubscribeAll(listener Listener, types ...EventType) {
	for _, t := range types {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe снимает первую подписку listener на eventType.
// Срез копируется, чтобы идущий Dispatch не увидел сдвига.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

func (d *Dispatcher) Dispatch(e Event) {
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
}

// Recorder копит полученные события; удобен для статистики и тестов.
type Recorder struct {
	Events []Event
}

func (r *Recorder) OnEvent(e Event) {
	r.Events = append(r.Events, e)
}

// Count — сколько событий данного типа получено.
func (r *Recorder) Count(t EventType) int {
	n := 0
	for _, e := range r.Events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// Last возвращает последнее событие типа t.
func (r *Recorder) Last(t EventType) (Event, bool) {
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Type == t {
			return r.Events[i], true
		}
	}
	return Event{}, false
}
