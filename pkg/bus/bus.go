// Package bus carries presenter events between the watcher, the UI, and
// anything else that wants to observe a running session.
package bus

import (
	"context"
	"sync"
	"time"
)

const defaultBufferSize = 16

// EventType names what happened to the deck or the presentation.
type EventType string

const (
	EventDeckLoaded    EventType = "deck_loaded"
	EventDeckChanged   EventType = "deck_changed"
	EventDeckReloaded  EventType = "deck_reloaded"
	EventReloadFailed  EventType = "reload_failed"
	EventSlideViewed   EventType = "slide_viewed"
	EventLintCompleted EventType = "lint_completed"
)

// Event is one presenter notification.
type Event struct {
	Type     EventType `json:"type"`
	At       time.Time `json:"at"`
	DeckPath string    `json:"deck_path,omitempty"`
	Slide    int       `json:"slide,omitempty"`
	Detail   string    `json:"detail,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// Bus fans events out to subscribers. Slow subscribers drop events rather
// than blocking publishers.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[uint64]chan Event
	nextID      uint64

	done      chan struct{}
	closeOnce sync.Once
}

// New creates an open bus.
func New() *Bus {
	return &Bus{
		subscribers: make(map[uint64]chan Event),
		done:        make(chan struct{}),
	}
}

// Publish fans the event out to every live subscriber. It returns false
// when the bus is closed or the context is already done.
func (b *Bus) Publish(ctx context.Context, event Event) bool {
	if ctx == nil {
		ctx = context.Background()
	}
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	select {
	case <-ctx.Done():
		return false
	case <-b.done:
		return false
	default:
	}

	// Sends stay under the read lock so unsubscribe and Close cannot
	// close a channel mid-send.
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			// Drop instead of blocking the publisher on slow subscribers.
		}
	}

	return true
}

// Subscribe registers a buffered event channel. The returned cancel func
// is idempotent; the channel closes on cancel, context end, or bus close.
func (b *Bus) Subscribe(ctx context.Context, buffer int) (<-chan Event, func()) {
	if ctx == nil {
		ctx = context.Background()
	}
	if buffer <= 0 {
		buffer = defaultBufferSize
	}

	ch := make(chan Event, buffer)

	b.mu.Lock()
	select {
	case <-b.done:
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	default:
	}

	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch
	b.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			b.mu.Lock()
			if sub, ok := b.subscribers[id]; ok {
				delete(b.subscribers, id)
				close(sub)
			}
			b.mu.Unlock()
		})
	}

	go func() {
		select {
		case <-ctx.Done():
			unsubscribe()
		case <-b.done:
			unsubscribe()
		}
	}()

	return ch, unsubscribe
}

// Close shuts the bus and closes every subscriber channel.
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		close(b.done)

		b.mu.Lock()
		for id, ch := range b.subscribers {
			close(ch)
			delete(b.subscribers, id)
		}
		b.mu.Unlock()
	})
}
