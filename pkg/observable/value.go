package observable

import (
	"context"
	"sync"
)

// Value holds the latest value of T and broadcasts every change to its
// subscribers. Subscribers receive the current value on subscription.
// A slow subscriber never blocks Store: it skips intermediate values and
// observes the latest one.
type Value[T any] struct {
	mu      sync.Mutex
	current T
	subs    map[chan T]struct{}
}

func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		current: initial,
		subs:    make(map[chan T]struct{}),
	}
}

func (v *Value[T]) Load() T {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.current
}

func (v *Value[T]) Store(value T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.current = value

	for ch := range v.subs {
		replace(ch, value)
	}
}

// Subscribe returns a channel carrying the current value followed by
// subsequent changes. The channel is closed once ctx is done.
func (v *Value[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	v.mu.Lock()
	ch <- v.current
	v.subs[ch] = struct{}{}
	v.mu.Unlock()

	go func() {
		<-ctx.Done()

		v.mu.Lock()
		delete(v.subs, ch)
		close(ch)
		v.mu.Unlock()
	}()

	return ch
}

func (v *Value[T]) Subscribers() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return len(v.subs)
}

// replace drops a pending value so that the channel holds only the latest.
func replace[T any](ch chan T, value T) {
	select {
	case <-ch:
	default:
	}

	ch <- value
}
