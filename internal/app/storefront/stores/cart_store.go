// Package stores holds the injected in-memory state services that replace
// the ambient singletons of the original storefront: each store is an
// explicit dependency with a subscribe/notify surface, so tests instantiate
// isolated instances.
package stores

import (
	"sync"

	"github.com/maxiipins/storefront-service/internal/app/storefront/domain"
)

// CartStore keeps one cart per session key. Mutations notify subscribers
// with the affected session key; reads return snapshots.
type CartStore struct {
	mu     sync.Mutex
	carts  map[string]*domain.Cart
	subs   map[int]func(sessionKey string)
	nextID int
}

// NewCartStore returns an empty store.
func NewCartStore() *CartStore {
	return &CartStore{
		carts: make(map[string]*domain.Cart),
		subs:  make(map[int]func(string)),
	}
}

// Subscribe registers fn to run after every mutation. The returned function
// unsubscribes.
func (s *CartStore) Subscribe(fn func(sessionKey string)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *CartStore) notify(sessionKey string) {
	s.mu.Lock()
	fns := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(sessionKey)
	}
}

// cart allocates the session's cart on first write. Only Add goes through
// here: reads and no-op mutations on unseen keys must not grow the map, or
// anonymous traffic would accumulate state for the process lifetime.
func (s *CartStore) cart(sessionKey string) *domain.Cart {
	c, ok := s.carts[sessionKey]
	if !ok {
		c = domain.NewCart()
		s.carts[sessionKey] = c
	}
	return c
}

// Add increments or appends a line in the session's cart.
func (s *CartStore) Add(sessionKey, productID string, quantity int) error {
	s.mu.Lock()
	err := s.cart(sessionKey).Add(productID, quantity)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify(sessionKey)
	return nil
}

// Update sets a line's quantity; zero or below removes the line.
func (s *CartStore) Update(sessionKey, productID string, quantity int) {
	s.mu.Lock()
	if c, ok := s.carts[sessionKey]; ok {
		c.Update(productID, quantity)
	}
	s.mu.Unlock()
	s.notify(sessionKey)
}

// Remove deletes a line entirely.
func (s *CartStore) Remove(sessionKey, productID string) {
	s.mu.Lock()
	if c, ok := s.carts[sessionKey]; ok {
		c.Remove(productID)
	}
	s.mu.Unlock()
	s.notify(sessionKey)
}

// Clear empties the session's cart and releases its entry.
func (s *CartStore) Clear(sessionKey string) {
	s.mu.Lock()
	delete(s.carts, sessionKey)
	s.mu.Unlock()
	s.notify(sessionKey)
}

// Lines returns a snapshot of the session's cart lines.
func (s *CartStore) Lines(sessionKey string) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[sessionKey]; ok {
		return c.Lines()
	}
	return []domain.CartLine{}
}

// ItemCount is the sum of line quantities for the session.
func (s *CartStore) ItemCount(sessionKey string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[sessionKey]; ok {
		return c.ItemCount()
	}
	return 0
}

// BadgeLabel renders the header badge for the session.
func (s *CartStore) BadgeLabel(sessionKey string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[sessionKey]; ok {
		return c.BadgeLabel()
	}
	return ""
}
