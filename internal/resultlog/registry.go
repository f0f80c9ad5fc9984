package resultlog

import "sync"

// Registry hands out one in-memory session log per user. Logs live for the
// process lifetime only; nothing is persisted. The mutex follows the same
// shape as the per-IP rate limiter map in internal/auth.
type Registry struct {
	mu   sync.RWMutex
	logs map[int]*Log
}

func NewRegistry() *Registry {
	return &Registry{logs: make(map[int]*Log)}
}

// Get returns the user's session log, creating it on first use.
func (r *Registry) Get(userID int) *Log {
	r.mu.RLock()
	l, ok := r.logs[userID]
	r.mu.RUnlock()
	if ok {
		return l
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.logs[userID]; ok {
		return l
	}
	l = New()
	r.logs[userID] = l
	return l
}
