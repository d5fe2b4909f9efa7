package profile

import (
	"sync"

	"github.com/google/uuid"

	"github.com/hiremind/backend/pkg/locale"
)

// Hub fans profile saves out to live watchers. The stream is independent of
// workflow execution: an in-flight compatibility check keeps the snapshot it
// already captured; only watchers observe the update.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[*Subscription]struct{}
}

// Subscription delivers at most the latest pending document; a slow consumer
// loses intermediate versions, never blocks a save.
type Subscription struct {
	C    chan Profile
	hub  *Hub
	key  string
	once sync.Once
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[*Subscription]struct{})}
}

func subKey(userID uuid.UUID, loc locale.Locale) string {
	return userID.String() + "/" + loc.String()
}

// Subscribe registers a watcher for (user, locale). The caller must Close it.
func (h *Hub) Subscribe(userID uuid.UUID, loc locale.Locale) *Subscription {
	s := &Subscription{
		C:   make(chan Profile, 1),
		hub: h,
		key: subKey(userID, loc),
	}
	h.mu.Lock()
	set, ok := h.subs[s.key]
	if !ok {
		set = make(map[*Subscription]struct{})
		h.subs[s.key] = set
	}
	set[s] = struct{}{}
	h.mu.Unlock()
	return s
}

// Close releases the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		if set, ok := s.hub.subs[s.key]; ok {
			delete(set, s)
			if len(set) == 0 {
				delete(s.hub.subs, s.key)
			}
		}
		s.hub.mu.Unlock()
		close(s.C)
	})
}

// Publish pushes a new document version to all watchers of (user, locale).
func (h *Hub) Publish(userID uuid.UUID, loc locale.Locale, p Profile) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.subs[subKey(userID, loc)] {
		// Replace a stale pending value instead of blocking.
		select {
		case s.C <- p:
		default:
			select {
			case <-s.C:
			default:
			}
			select {
			case s.C <- p:
			default:
			}
		}
	}
}
