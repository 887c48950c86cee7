package state

// Listener is notified after an action changed the options.
type Listener func(prev, next Options, a Action)

// Store owns the options of one view. It is driven from the UI event loop
// and is not safe for concurrent use.
type Store struct {
	opts      Options
	listeners map[int]Listener
	order     []int
	nextID    int
}

// NewStore creates a store holding initial.
func NewStore(initial Options) *Store {
	return &Store{
		opts:      initial,
		listeners: make(map[int]Listener),
	}
}

// Options returns the current options.
func (s *Store) Options() Options {
	return s.opts
}

// Dispatch applies a and notifies listeners in subscription order.
// It returns true if the options changed.
func (s *Store) Dispatch(a Action) bool {
	prev := s.opts
	next := Reduce(prev, a)
	if next == prev {
		return false
	}
	s.opts = next
	for _, id := range s.order {
		if fn, ok := s.listeners[id]; ok {
			fn(prev, next, a)
		}
	}
	return true
}

// Subscribe registers fn and returns a func that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.order = append(s.order, id)
	return func() {
		delete(s.listeners, id)
		for i, o := range s.order {
			if o == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}
