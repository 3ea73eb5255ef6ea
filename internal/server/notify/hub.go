// Package notify fans out conversation change events to subscribed
// streams. Events carry no payload beyond identifiers; receivers are
// expected to refetch, so dropping an event for a slow subscriber only
// delays a refetch that a later event will trigger again.
package notify

import "sync"

// Event describes a change in a participant's conversation.
type Event struct {
	ParticipantID string
	Kind          string // "message" or "file"
	EntityID      string
}

const subscriberBuffer = 16

// Hub routes events to subscribers keyed by participant id.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan Event]struct{})}
}

// Subscribe registers a subscriber for the participant's events. The returned
// cancel func unregisters and closes the channel; it is safe to call twice.
func (h *Hub) Subscribe(participantID string) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	set, ok := h.subs[participantID]
	if !ok {
		set = make(map[chan Event]struct{})
		h.subs[participantID] = set
	}
	set[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[participantID], ch)
			if len(h.subs[participantID]) == 0 {
				delete(h.subs, participantID)
			}
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers the event to every subscriber of its participant.
// Delivery never blocks; a full subscriber channel drops the event.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[ev.ParticipantID] {
		select {
		case ch <- ev:
		default:
		}
	}
}
