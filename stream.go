package ggchart

import (
	"context"
	"slices"
	"sync"
)

// Stream is a push-based stream of whole values, such as dataset
// snapshots. Values are delivered to subscribers in arrival order, one
// delivery at a time. Subscribers must not Push to the stream they are
// called from.
//
// The zero value is ready to use.
type Stream[T any] struct {
	mu      sync.Mutex
	subs    []subscriber[T]
	nextID  uint64
	latest  T
	hasLast bool

	deliver sync.Mutex
}

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// NewStream returns an empty stream.
func NewStream[T any]() *Stream[T] {
	return &Stream[T]{}
}

// Subscribe registers fn for every later Push. The returned cancel func
// removes it and may be called more than once.
func (s *Stream[T]) Subscribe(fn func(T)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.subs = slices.DeleteFunc(s.subs, func(sub subscriber[T]) bool { return sub.id == id })
		})
	}
}

// Push delivers v to every current subscriber.
func (s *Stream[T]) Push(v T) {
	s.deliver.Lock()
	defer s.deliver.Unlock()

	s.mu.Lock()
	s.latest, s.hasLast = v, true
	subs := slices.Clone(s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(v)
	}
}

// Latest returns the last pushed value.
func (s *Stream[T]) Latest() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.hasLast
}

// Pipe pushes values received from ch until ch is closed or ctx is done.
// When several values are buffered in ch only the newest is pushed. Pipe
// returns ctx.Err() if ctx ends first and nil when ch is closed.
func (s *Stream[T]) Pipe(ctx context.Context, ch <-chan T) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case v, ok := <-ch:
			if !ok {
				return nil
			}
			v, open := drain(ch, v)
			s.Push(v)
			if !open {
				return nil
			}
		}
	}
}

// drain returns the newest value buffered in ch, starting from v.
func drain[T any](ch <-chan T, v T) (T, bool) {
	for {
		select {
		case next, ok := <-ch:
			if !ok {
				return v, false
			}
			v = next
		default:
			return v, true
		}
	}
}
