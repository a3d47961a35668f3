package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"natalify-backend/internal/models"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid status")
)

// OrderFilter narrows an order listing. Zero values mean "no filter".
type OrderFilter struct {
	Status string
	Search string
}

// OrderStore keeps orders in process memory. Sequence numbers are assigned
// under the write lock, so two concurrent creates cannot produce the same
// order number. Orders are never deleted, so the sequence tracks the count.
type OrderStore struct {
	mu   sync.RWMutex
	byID map[string]*models.Order
	ids  []string
	seq  int
}

func NewOrderStore(seed []models.Order) *OrderStore {
	s := &OrderStore{byID: make(map[string]*models.Order, len(seed))}
	for i := range seed {
		o := seed[i]
		s.byID[o.ID] = &o
		s.ids = append(s.ids, o.ID)
	}
	s.seq = len(seed)
	return s
}

// Create assigns the id and human-facing order number NAT-<year>-<seq>,
// with the sequence zero-padded to three digits (it simply grows wider
// past 999). Returns the stored order.
func (s *OrderStore) Create(o models.Order) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	o.ID = fmt.Sprintf("order%d", s.seq)
	o.OrderNumber = fmt.Sprintf("NAT-%d-%03d", time.Now().Year(), s.seq)

	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now

	s.byID[o.ID] = &o
	s.ids = append(s.ids, o.ID)
	return o
}

func (s *OrderStore) Get(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.byID[id]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	return *o, nil
}

// UpdateStatus sets the order's status and optional notes. Any valid
// status may replace any other; no transition graph is enforced.
func (s *OrderStore) UpdateStatus(id string, status models.OrderStatus, notes string) (models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return models.Order{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.byID[id]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}

	o.Status = status
	if notes != "" {
		o.Notes = notes
	}
	o.UpdatedAt = time.Now()
	return *o, nil
}

// MarkPaid records a successful gateway payment: paymentStatus becomes
// paid and a pending order moves to confirmed.
func (s *OrderStore) MarkPaid(id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.byID[id]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}

	o.PaymentStatus = models.PaymentPaid
	if o.Status == models.OrderPending {
		o.Status = models.OrderConfirmed
	}
	o.UpdatedAt = time.Now()
	return *o, nil
}

// List returns orders matching filter, newest first. The search term
// matches the order number or customer name case-insensitively, and the
// phone as a raw substring.
func (s *OrderStore) List(filter OrderFilter) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := strings.TrimSpace(filter.Status)
	search := strings.TrimSpace(filter.Search)
	searchLower := strings.ToLower(search)

	out := make([]models.Order, 0, len(s.ids))
	for _, id := range s.ids {
		o := s.byID[id]

		if status != "" && status != "all" && string(o.Status) != status {
			continue
		}
		if search != "" {
			if !strings.Contains(strings.ToLower(o.OrderNumber), searchLower) &&
				!strings.Contains(strings.ToLower(o.Customer.Name), searchLower) &&
				!strings.Contains(o.Customer.Phone, search) {
				continue
			}
		}

		out = append(out, *o)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// ByPhone returns a customer's orders, newest first.
func (s *OrderStore) ByPhone(phone string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, 0)
	for _, id := range s.ids {
		o := s.byID[id]
		if o.Customer.Phone == phone {
			out = append(out, *o)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// All returns every order in insertion order.
func (s *OrderStore) All() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, *s.byID[id])
	}
	return out
}

func (s *OrderStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}
