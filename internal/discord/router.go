package discord

import (
	"sync"

	"github.com/relyk/tomatobot/internal/domain"
)

// componentRouter routes component interactions to the reply that owns the
// custom-id. Each active reply claims its derived ids for its lifetime.
type componentRouter struct {
	mu     sync.RWMutex
	routes map[string]chan<- domain.ComponentEvent
}

func newComponentRouter() *componentRouter {
	return &componentRouter{routes: make(map[string]chan<- domain.ComponentEvent)}
}

func (r *componentRouter) register(ch chan<- domain.ComponentEvent, ids ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		r.routes[id] = ch
	}
}

func (r *componentRouter) unregister(ids ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		delete(r.routes, id)
	}
}

// dispatch delivers the event to its owner. Events for closed or unknown
// replies are dropped; a full owner channel drops too rather than blocking
// the gateway handler.
func (r *componentRouter) dispatch(ev domain.ComponentEvent) bool {
	r.mu.RLock()
	ch, ok := r.routes[ev.CustomID]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	select {
	case ch <- ev:
		return true
	default:
		return false
	}
}
