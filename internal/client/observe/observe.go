// Package observe provides a minimal in-process observer primitive used by
// the session, onboarding, and conversation components to push state-change
// notifications to the presentation layer.
package observe

import "sync"

// Notifier fans a value out to registered subscribers. Notify never blocks:
// each subscriber channel holds one slot and a pending value is replaced by
// the newer one, so subscribers always observe the latest state.
type Notifier[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan T
}

func NewNotifier[T any]() *Notifier[T] {
	return &Notifier[T]{subs: make(map[int]chan T)}
}

// Subscribe registers a subscriber and returns its channel together with an
// unsubscribe function. Unsubscribing closes the channel; calling the
// returned function more than once is safe.
func (n *Notifier[T]) Subscribe() (<-chan T, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++

	ch := make(chan T, 1)
	n.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			delete(n.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// Notify delivers v to every subscriber, replacing an unread older value.
func (n *Notifier[T]) Notify(v T) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case ch <- v:
		default:
			// Drop the stale value and queue the fresh one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- v:
			default:
			}
		}
	}
}
