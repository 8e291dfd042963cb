package orders

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arielcolab/dishly-api/models"
	"github.com/arielcolab/dishly-api/notify"
)

var (
	ErrEmptyOrder = errors.New("order must contain at least one item")
	ErrStopped    = errors.New("order simulator is stopped")
)

// Delay before leaving each non-terminal status.
var transitionDelays = map[models.OrderStatus]time.Duration{
	models.OrderStatusPending:    5 * time.Second,
	models.OrderStatusConfirmed:  20 * time.Second,
	models.OrderStatusInProgress: 90 * time.Second,
	models.OrderStatusReady:      45 * time.Second,
	models.OrderStatusDelivered:  30 * time.Second,
}

// Event describes a lifecycle change. From is empty when the order was just
// created.
type Event struct {
	Order models.Order
	From  models.OrderStatus
	To    models.OrderStatus
}

// Subscriber receives every lifecycle event for every order.
type Subscriber func(Event)

// Simulator stands in for a real order-management backend: it turns a
// checked-out cart into an Order and walks it through the status flow on
// scheduled timers, whether or not anyone is watching. Orders live in the
// active set until they complete, then move to history.
type Simulator struct {
	sched    Scheduler
	notifier notify.Notifier

	mu      sync.Mutex
	stopped bool
	active  map[string]*models.Order
	history []models.Order
	timers  map[string]Timer
	subs    map[int]Subscriber
	nextSub int
}

func NewSimulator(sched Scheduler, notifier notify.Notifier) *Simulator {
	return &Simulator{
		sched:    sched,
		notifier: notifier,
		active:   make(map[string]*models.Order),
		timers:   make(map[string]Timer),
		subs:     make(map[int]Subscriber),
	}
}

// CreateOrder snapshots the given lines into a new pending Order and starts
// its progression. The lines are copied in full: later cart mutations never
// reach the order. An empty line list is caller misuse and is rejected.
func (s *Simulator) CreateOrder(lines []models.CartLine, buyer models.Buyer, method models.DeliveryMethod, total float64) (models.Order, error) {
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyOrder
	}
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return models.Order{}, ErrStopped
	}
	now := s.sched.Now()
	id := uuid.NewString()
	o := &models.Order{
		ID:             id,
		Ref:            now.Format("20060102150405") + "-" + id[:8],
		BuyerID:        buyer.ID,
		BuyerName:      buyer.Name,
		CookID:         lines[0].Dish.CookID,
		CookName:       lines[0].Dish.CookName,
		Items:          cloneItems(lines),
		DeliveryMethod: method,
		Total:          total,
		Status:         models.OrderStatusPending,
		CreatedAt:      now,
		StatusHistory:  []models.StatusChange{{Status: models.OrderStatusPending, Timestamp: now}},
	}
	s.active[id] = o
	s.timers[id] = s.sched.AfterFunc(transitionDelays[o.Status], func() { s.advance(id) })
	snapshot := cloneOrder(*o)
	subs := s.subscribers()
	s.mu.Unlock()

	emit(subs, Event{Order: snapshot, To: snapshot.Status})
	return snapshot, nil
}

// advance fires from a timer. Fires against a stopped simulator or an order
// that already left the active set are no-ops.
func (s *Simulator) advance(id string) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	o, ok := s.active[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	delete(s.timers, id)

	from := o.Status
	to := nextStatus(from, o.DeliveryMethod)
	if to == "" {
		s.mu.Unlock()
		return
	}
	o.Status = to
	o.StatusHistory = append(o.StatusHistory, models.StatusChange{Status: to, Timestamp: s.sched.Now()})

	if to.Terminal() {
		// Atomic handoff: the order leaves active and joins history inside
		// the same critical section, so no reader sees it in both.
		delete(s.active, id)
		s.history = append([]models.Order{cloneOrder(*o)}, s.history...)
	} else {
		s.timers[id] = s.sched.AfterFunc(transitionDelays[to], func() { s.advance(id) })
	}
	snapshot := cloneOrder(*o)
	subs := s.subscribers()
	s.mu.Unlock()

	emit(subs, Event{Order: snapshot, From: from, To: to})
	switch to {
	case models.OrderStatusDelivered:
		s.notifier.Notify("Your order "+snapshot.Ref+" was delivered.", notify.SeverityInfo)
	case models.OrderStatusCompleted:
		s.notifier.Notify("Your order "+snapshot.Ref+" is complete. Enjoy!", notify.SeverityInfo)
	}
}

// Subscribe registers a lifecycle subscriber and returns its unsubscribe
// function. Unsubscribing never touches the order timers.
func (s *Simulator) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Active returns the in-flight orders, most recent first.
func (s *Simulator) Active() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, 0, len(s.active))
	for _, o := range s.active {
		out = append(out, cloneOrder(*o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// History returns completed orders, most recent completion first.
func (s *Simulator) History() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.history))
	for i, o := range s.history {
		out[i] = cloneOrder(o)
	}
	return out
}

// Get looks an order up in the active set, then in history.
func (s *Simulator) Get(id string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.active[id]; ok {
		return cloneOrder(*o), true
	}
	for _, o := range s.history {
		if o.ID == id {
			return cloneOrder(o), true
		}
	}
	return models.Order{}, false
}

// Stop cancels every pending timer. Orders freeze where they are; callbacks
// already in flight become no-ops.
func (s *Simulator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

func (s *Simulator) subscribers() []Subscriber {
	subs := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}

func emit(subs []Subscriber, e Event) {
	for _, fn := range subs {
		fn(e)
	}
}

// nextStatus encodes the fixed flow. At ready, self-pickup orders close out
// directly; courier orders pass through delivered first and complete after a
// final delay.
func nextStatus(from models.OrderStatus, method models.DeliveryMethod) models.OrderStatus {
	switch from {
	case models.OrderStatusPending:
		return models.OrderStatusConfirmed
	case models.OrderStatusConfirmed:
		return models.OrderStatusInProgress
	case models.OrderStatusInProgress:
		return models.OrderStatusReady
	case models.OrderStatusReady:
		if method == models.DeliveryMethodPickup {
			return models.OrderStatusCompleted
		}
		return models.OrderStatusDelivered
	case models.OrderStatusDelivered:
		return models.OrderStatusCompleted
	}
	return ""
}

func cloneItems(lines []models.CartLine) []models.CartLine {
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out
}

func cloneOrder(o models.Order) models.Order {
	o.Items = cloneItems(o.Items)
	history := make([]models.StatusChange, len(o.StatusHistory))
	copy(history, o.StatusHistory)
	o.StatusHistory = history
	return o
}
