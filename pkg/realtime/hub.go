package realtime

import (
	"sync"
)

// Event describes one committed mutation on a table. Subscribers use it
// only as a signal to refetch; it carries no row data.
type Event struct {
	Table  string `json:"table"`
	Action string `json:"action"`
	ID     string `json:"id,omitempty"`
}

const (
	ActionInsert = "insert"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Hub fans events out to per-table subscribers. Publish never blocks: a
// subscriber whose buffer is full misses the event.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a listener for one table. The returned cancel func
// must be called when the listener goes away.
func (h *Hub) Subscribe(table string) (<-chan Event, func()) {
	ch := make(chan Event, 16)

	h.mu.Lock()
	if h.subs[table] == nil {
		h.subs[table] = make(map[chan Event]struct{})
	}
	h.subs[table][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[table]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(h.subs, table)
			}
		}
		h.mu.Unlock()
	}

	return ch, cancel
}

func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[event.Table] {
		select {
		case ch <- event:
		default:
			// slow subscriber, drop
		}
	}
}

// SubscriberCount reports listeners on a table.
func (h *Hub) SubscriberCount(table string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[table])
}
