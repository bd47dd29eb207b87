// Package broadcast fans typed messages out to in-process subscribers.
//
// Publishing never blocks: a subscriber whose buffer is full misses the
// message. Subscriptions end when their context is cancelled, when Close is
// called on them, or when the broadcaster closes.
//
//	b := broadcast.NewMemoryBroadcaster[tracking.Event](64)
//	sub := b.Subscribe(ctx)
//	for msg := range sub.Receive() {
//	    ...
//	}
package broadcast

import (
	"context"
	"sync"
	"sync/atomic"
)

// Message wraps a payload.
type Message[T any] struct {
	Data T
}

// Subscriber receives broadcast messages until closed.
type Subscriber[T any] interface {
	// Receive returns the delivery channel. It is closed when the
	// subscription ends.
	Receive() <-chan Message[T]
	// Dropped counts messages lost to a full buffer.
	Dropped() uint64
	Close() error
}

// Broadcaster publishes to every live subscriber.
type Broadcaster[T any] interface {
	Subscribe(ctx context.Context) Subscriber[T]
	Broadcast(ctx context.Context, msg Message[T]) error
	Close() error
}

type subscriber[T any] struct {
	mu      sync.RWMutex
	ch      chan Message[T]
	closed  bool
	dropped atomic.Uint64
	onClose func()
}

func (s *subscriber[T]) Receive() <-chan Message[T] { return s.ch }

func (s *subscriber[T]) Dropped() uint64 { return s.dropped.Load() }

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.ch)
	s.mu.Unlock()

	if s.onClose != nil {
		s.onClose()
	}
	return nil
}

func (s *subscriber[T]) send(msg Message[T]) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- msg:
	default:
		s.dropped.Add(1)
	}
}
