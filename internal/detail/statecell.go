package detail

import (
	"sync"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// StateCell holds the latest published UI state and fans it out to any
// number of subscribers.
//
// Subscribers get last-value-wins delivery: each subscription is a
// capacity-one channel, and a publish that finds a stale undelivered value
// replaces it. A subscriber that reads lazily may therefore miss
// intermediate states but always observes the latest one. Current never
// blocks.
type StateCell struct {
	mu    sync.RWMutex
	state models.UIState
	subs  []chan models.UIState
}

// NewStateCell creates a cell seeded with the given initial state.
func NewStateCell(initial models.UIState) *StateCell {
	return &StateCell{state: initial}
}

// Current returns the latest published state.
func (c *StateCell) Current() models.UIState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Subscribe registers a new observer and returns its delivery channel.
// The current state is delivered immediately so late subscribers do not
// start blind.
func (c *StateCell) Subscribe() <-chan models.UIState {
	ch := make(chan models.UIState, 1)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, ch)
	ch <- c.state
	return ch
}

// publish replaces the held state and notifies every subscriber.
// Only lock-holding coordinator code may call it.
func (c *StateCell) publish(next models.UIState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = next
	for _, ch := range c.subs {
		// Drop the stale value, if any, so the send below cannot block.
		select {
		case <-ch:
		default:
		}
		ch <- next
	}
}
