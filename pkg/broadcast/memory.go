package broadcast

import (
	"context"
	"sync"
)

// MemoryBroadcaster is the in-process Broadcaster.
type MemoryBroadcaster[T any] struct {
	bufferSize int

	mu     sync.RWMutex
	subs   map[*subscriber[T]]struct{}
	closed bool
	done   chan struct{}
}

// NewMemoryBroadcaster gives every subscriber a buffer of bufferSize
// messages, at least one.
func NewMemoryBroadcaster[T any](bufferSize int) *MemoryBroadcaster[T] {
	return &MemoryBroadcaster[T]{
		bufferSize: max(bufferSize, 1),
		subs:       make(map[*subscriber[T]]struct{}),
		done:       make(chan struct{}),
	}
}

// Subscribe registers a subscriber that lives until ctx is done. After
// Close it returns an already closed subscriber.
func (b *MemoryBroadcaster[T]) Subscribe(ctx context.Context) Subscriber[T] {
	sub := &subscriber[T]{ch: make(chan Message[T], b.bufferSize)}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		_ = sub.Close()
		return sub
	}
	sub.onClose = func() { b.remove(sub) }
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	if ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				_ = sub.Close()
			case <-b.done:
			}
		}()
	}
	return sub
}

// Broadcast delivers msg to every subscriber without blocking.
func (b *MemoryBroadcaster[T]) Broadcast(_ context.Context, msg Message[T]) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrClosed
	}
	for sub := range b.subs {
		sub.send(msg)
	}
	return nil
}

// Subscribers reports the number of live subscribers.
func (b *MemoryBroadcaster[T]) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close ends every subscription. It is safe to call more than once.
func (b *MemoryBroadcaster[T]) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.done)
	subs := b.subs
	b.subs = make(map[*subscriber[T]]struct{})
	b.mu.Unlock()

	for sub := range subs {
		_ = sub.Close()
	}
	return nil
}

func (b *MemoryBroadcaster[T]) remove(sub *subscriber[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subs, sub)
}
