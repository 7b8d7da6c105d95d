// Package signals provides a small reactive value type.
// No build tags; fully testable outside WASM.
package signals

import "sync"

// Signal[T] is a value that notifies subscribers when it is Set.
type Signal[T any] struct {
	mu     sync.RWMutex
	value  T
	nextID uint64
	subs   map[uint64]func(prev, next T)
	order  []uint64
}

// NewSignal creates a Signal with an initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		value: initial,
		subs:  make(map[uint64]func(prev, next T)),
	}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set stores v and notifies subscribers in subscription order. Callbacks run
// after the lock is released, so they may call Get, Set or Subscribe.
func (s *Signal[T]) Set(v T) {
	s.mu.Lock()
	old := s.value
	s.value = v
	fns := make([]func(prev, next T), 0, len(s.order))
	for _, id := range s.order {
		fns = append(fns, s.subs[id])
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(old, v)
	}
}

// Subscribe registers fn to run on every Set. The returned func removes the
// subscription; calling it more than once is harmless.
func (s *Signal[T]) Subscribe(fn func(prev, next T)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.order = append(s.order, id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; !ok {
			return
		}
		delete(s.subs, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

// Len returns the number of active subscribers.
func (s *Signal[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}
