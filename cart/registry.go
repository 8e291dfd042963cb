package cart

import (
	"sync"

	"github.com/arielcolab/dishly-api/notify"
)

// Registry hands out one Store per shopper, restoring the persisted
// snapshot the first time a shopper is seen.
type Registry struct {
	repo     Repository
	notifier notify.Notifier

	mu     sync.Mutex
	stores map[string]*Store
}

func NewRegistry(repo Repository, notifier notify.Notifier) *Registry {
	return &Registry{
		repo:     repo,
		notifier: notifier,
		stores:   make(map[string]*Store),
	}
}

func (r *Registry) ForUser(userID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.stores[userID]; ok {
		return s
	}
	s := NewStore(userID, r.repo, r.notifier)
	r.stores[userID] = s
	return s
}
