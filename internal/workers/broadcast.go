package workers

import "sync"

const subscriberBuffer = 16

// broadcaster fans values out to subscriber channels without ever blocking
// the publisher. A subscriber that falls behind loses its oldest values.
type broadcaster[T any] struct {
	mu     sync.Mutex
	subs   []chan T
	closed bool
}

func (b *broadcaster[T]) Subscribe() <-chan T {
	ch := make(chan T, subscriberBuffer)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch
	}
	b.subs = append(b.subs, ch)
	return ch
}

func (b *broadcaster[T]) Publish(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- v:
			continue
		default:
		}
		// full: drop the oldest value to make room
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
}

// Close closes every subscriber channel. Later publishes are dropped.
func (b *broadcaster[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
}
