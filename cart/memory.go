package cart

import (
	"encoding/json"
	"sync"

	"github.com/arielcolab/dishly-api/models"
)

// MemoryRepository is the in-memory Repository used in tests. It serializes
// through JSON like the gorm implementation so round-trip behavior matches.
type MemoryRepository struct {
	mu        sync.Mutex
	snapshots map[string][]byte

	// When set, the corresponding operation fails with this error.
	LoadErr error
	SaveErr error
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{snapshots: make(map[string][]byte)}
}

func (r *MemoryRepository) Load(userID string) ([]models.CartLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.LoadErr != nil {
		return nil, r.LoadErr
	}
	data, ok := r.snapshots[userID]
	if !ok {
		return nil, nil
	}
	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *MemoryRepository) Save(userID string, lines []models.CartLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.SaveErr != nil {
		return r.SaveErr
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	r.snapshots[userID] = data
	return nil
}

func (r *MemoryRepository) Clear(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.SaveErr != nil {
		return r.SaveErr
	}
	delete(r.snapshots, userID)
	return nil
}

// Corrupt overwrites a shopper's snapshot with bytes that do not parse.
func (r *MemoryRepository) Corrupt(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[userID] = []byte("{not json")
}
