package cart

import (
	"context"
	"sync"
	"time"

	"github.com/yasminebk/beautyuniverse-backend/pkg/logger"
)

const persistTimeout = 3 * time.Second

// State is the read-only view handed to listeners and the HTTP layer after
// every mutation. Totals are always recomputed from the items, never
// mutated independently.
type State struct {
	Items      []LineItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPrice float64    `json:"total_price"`
	IsOpen     bool       `json:"is_open"`
}

// Listener is invoked synchronously after each successful mutation
type Listener func(State)

// Store is the single source of truth for one guest's cart. Every mutation
// keeps the invariants: one line item per product id, quantity >= 1, and
// a snapshot written through the SnapshotStore afterwards. A failed write
// is logged and absorbed - the in-memory cart remains authoritative.
type Store struct {
	mu        sync.Mutex
	token     string
	items     []LineItem
	isOpen    bool
	listeners []Listener
	snapshots SnapshotStore
}

// NewStore creates a cart store for the given guest token, hydrated from
// any previously saved snapshot. Load failures start the cart empty.
func NewStore(token string, snapshots SnapshotStore) *Store {
	s := &Store{
		token:     token,
		snapshots: snapshots,
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	items, err := snapshots.Load(ctx, token)
	if err != nil {
		logger.Warn("Starting cart empty after snapshot load failure", map[string]interface{}{
			"cart_token": token,
			"error":      err.Error(),
		})
		return s
	}
	s.items = items
	return s
}

// Subscribe registers a listener notified synchronously after every
// successful mutation
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// AddItem merges quantity into an existing line item with the same id or
// appends a new one. quantity values below 1 are clamped to 1.
func (s *Store) AddItem(ref ProductRef, quantity int) error {
	if err := ref.Validate(); err != nil {
		logger.Warn("Rejected invalid product ref", map[string]interface{}{
			"cart_token": s.token,
			"product_id": ref.ID,
			"error":      err.Error(),
		})
		return err
	}
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	merged := false
	for i := range s.items {
		if s.items[i].ID == ref.ID {
			s.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, LineItem{
			ID:            ref.ID,
			Name:          ref.Name,
			NameAr:        ref.NameAr,
			UnitPrice:     ref.UnitPrice,
			OriginalPrice: ref.OriginalPrice,
			ImageURL:      ref.ImageURL,
			Quantity:      quantity,
		})
	}
	state := s.stateLocked()
	s.mu.Unlock()

	logger.Debug("Cart item added", map[string]interface{}{
		"cart_token":  s.token,
		"product_id":  ref.ID,
		"quantity":    quantity,
		"merged":      merged,
		"total_items": state.TotalItems,
	})

	s.persistAndNotify(state)
	return nil
}

// RemoveItem deletes the line item with the given id. Removing an absent
// id is a no-op, not an error.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	removed := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			removed = true
			break
		}
	}
	state := s.stateLocked()
	s.mu.Unlock()

	if !removed {
		return
	}

	logger.Debug("Cart item removed", map[string]interface{}{
		"cart_token": s.token,
		"product_id": id,
	})

	s.persistAndNotify(state)
}

// UpdateQuantity sets the line item's quantity. A quantity <= 0 removes
// the item entirely. No upper bound is enforced.
func (s *Store) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(id)
		return
	}

	s.mu.Lock()
	updated := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			updated = true
			break
		}
	}
	state := s.stateLocked()
	s.mu.Unlock()

	if !updated {
		return
	}

	logger.Debug("Cart item quantity updated", map[string]interface{}{
		"cart_token": s.token,
		"product_id": id,
		"quantity":   quantity,
	})

	s.persistAndNotify(state)
}

// Clear empties the cart and persists the empty snapshot
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	state := s.stateLocked()
	s.mu.Unlock()

	logger.Debug("Cart cleared", map[string]interface{}{
		"cart_token": s.token,
	})

	s.persistAndNotify(state)
}

// SetOpen flips the slide-over panel flag. Pure presentation state: it is
// never persisted and triggers no snapshot write.
func (s *Store) SetOpen(open bool) {
	s.mu.Lock()
	s.isOpen = open
	state := s.stateLocked()
	listeners := s.listeners
	s.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}
}

// IsOpen reports whether the cart panel is expanded
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOpen
}

// Items returns a copy of the current line items
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyItems(s.items)
}

// TotalItems is the sum of all line item quantities
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalItems(s.items)
}

// TotalPrice is the sum of unit price times quantity over all line items
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalPrice(s.items)
}

// State returns the full read view in one call
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Store) stateLocked() State {
	return State{
		Items:      copyItems(s.items),
		TotalItems: totalItems(s.items),
		TotalPrice: totalPrice(s.items),
		IsOpen:     s.isOpen,
	}
}

func (s *Store) persistAndNotify(state State) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := s.snapshots.Save(ctx, s.token, state.Items); err != nil {
		// Best-effort write: the session keeps running on in-memory state
		logger.Error("Failed to persist cart snapshot", err, map[string]interface{}{
			"cart_token": s.token,
		})
	}

	s.mu.Lock()
	listeners := s.listeners
	s.mu.Unlock()
	for _, l := range listeners {
		l(state)
	}
}

func copyItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}

func totalItems(items []LineItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

func totalPrice(items []LineItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}
