package cart

import (
	"errors"
	"log"
	"sync"

	"github.com/arielcolab/dishly-api/models"
	"github.com/arielcolab/dishly-api/notify"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Listener receives the full line list after every successful mutation.
type Listener func([]models.CartLine)

// Store is the single source of truth for one shopper's cart. Every
// mutation persists synchronously through the Repository before listeners
// are told; persistence failures degrade to the in-memory state and are
// never returned to callers.
type Store struct {
	userID   string
	repo     Repository
	notifier notify.Notifier

	mu        sync.Mutex
	lines     []models.CartLine
	listeners map[int]Listener
	nextID    int
}

// NewStore builds a store for the shopper and restores the persisted
// snapshot. A missing or corrupt snapshot yields an empty cart.
func NewStore(userID string, repo Repository, notifier notify.Notifier) *Store {
	s := &Store{
		userID:    userID,
		repo:      repo,
		notifier:  notifier,
		listeners: make(map[int]Listener),
	}
	lines, err := repo.Load(userID)
	if err != nil {
		log.Printf("❌ cart: restore failed for %s: %v", userID, err)
		notifier.Notify("We couldn't restore your saved cart.", notify.SeverityWarning)
		lines = nil
	}
	s.lines = lines
	return s
}

// Lines returns a copy of the current cart in insertion order.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLines(s.lines)
}

// AddItem merges the dish into the cart: an existing line grows by quantity,
// otherwise a new line is appended. Dishes of a single-quantity kind are
// capped at 1 no matter what is requested.
func (s *Store) AddItem(dish models.DishSnapshot, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	s.mu.Lock()
	found := false
	for i := range s.lines {
		if s.lines[i].DishID == dish.ID {
			if !dish.Kind.SingleQuantity() {
				s.lines[i].Quantity += quantity
			}
			found = true
			break
		}
	}
	if !found {
		if dish.Kind.SingleQuantity() {
			quantity = 1
		}
		s.lines = append(s.lines, models.CartLine{DishID: dish.ID, Dish: dish, Quantity: quantity})
	}
	s.persistLocked()
	s.notifyListeners()
	return nil
}

// UpdateQuantity sets the quantity for an existing line. Requests below 1,
// for unknown dishes, or against single-quantity kinds are silent no-ops.
func (s *Store) UpdateQuantity(dishID uint, quantity int) {
	if quantity < 1 {
		return
	}
	s.mu.Lock()
	changed := false
	for i := range s.lines {
		if s.lines[i].DishID == dishID {
			if !s.lines[i].Dish.Kind.SingleQuantity() {
				s.lines[i].Quantity = quantity
				changed = true
			}
			break
		}
	}
	if !changed {
		s.mu.Unlock()
		return
	}
	s.persistLocked()
	s.notifyListeners()
}

// RemoveItem drops the line for the dish; removing an absent dish is not an
// error.
func (s *Store) RemoveItem(dishID uint) {
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].DishID == dishID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
	s.persistLocked()
	s.notifyListeners()
}

// Clear empties the cart. Called after a successful checkout and on logout.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	if err := s.repo.Clear(s.userID); err != nil {
		log.Printf("❌ cart: clear failed for %s: %v", s.userID, err)
		s.notifier.Notify("We couldn't update your saved cart.", notify.SeverityWarning)
	}
	s.notifyListeners()
}

// Subscribe registers a listener for mutation notifications and returns its
// unsubscribe function. Unsubscribing one listener never affects others.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// persistLocked writes the snapshot before anyone is notified, so the
// durable copy never lags a delivered notification. Failures keep the
// in-memory cart authoritative.
func (s *Store) persistLocked() {
	if err := s.repo.Save(s.userID, s.lines); err != nil {
		log.Printf("❌ cart: persist failed for %s: %v", s.userID, err)
		s.notifier.Notify("We couldn't save your cart. It will reset on reload.", notify.SeverityWarning)
	}
}

// notifyListeners snapshots state and releases the mutex before invoking
// listeners, so a listener may call back into the store.
func (s *Store) notifyListeners() {
	lines := cloneLines(s.lines)
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(cloneLines(lines))
	}
}

func cloneLines(lines []models.CartLine) []models.CartLine {
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out
}
