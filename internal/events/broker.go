// Package events provides the in-process fan-out used by the change feed.
package events

import "sync"

// Event types delivered on the /api/events feed.
const (
	PersonCreated = "person_created"
	PersonUpdated = "person_updated"
	PersonDeleted = "person_deleted"
)

// Event describes a successful mutation of the people store.
type Event struct {
	Type string `json:"type"`
	ID   int    `json:"id"`
}

// Broker fans events out to any number of subscribers. Publishing never
// blocks: a subscriber that falls behind misses events instead of stalling
// the producer.
type Broker struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

// NewBroker creates a broker with no subscribers.
func NewBroker() *Broker {
	return &Broker{subs: make(map[chan Event]struct{})}
}

// Subscribe registers and returns a new buffered subscriber channel.
func (b *Broker) Subscribe() chan Event {
	ch := make(chan Event, 64)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes the channel from the broker and closes it.
func (b *Broker) Unsubscribe(ch chan Event) {
	b.mu.Lock()
	delete(b.subs, ch)
	b.mu.Unlock()
	close(ch)
}

// Publish delivers ev to every subscriber with buffer room.
func (b *Broker) Publish(ev Event) {
	b.mu.Lock()
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	b.mu.Unlock()
}
