package stores

import (
	"slices"
	"sync"

	"pocketshop/internal/domain"
	"pocketshop/internal/kv"
	applog "pocketshop/internal/log"
)

const wishlistKey = "wishlist"

// WishlistStore holds the user's saved products. The whole collection is
// persisted on every mutation, so mutations are serialized by a mutex:
// overlapping writes would be last-write-wins and silently drop entries.
// In-memory and persisted state never diverge after a completed call — a
// failed persist rolls the in-memory copy back.
type WishlistStore struct {
	mu    sync.Mutex
	kv    *kv.Store
	items []domain.Product
}

// NewWishlistStore loads the saved collection once. A missing or
// undecodable value degrades to an empty wishlist.
func NewWishlistStore(store *kv.Store) *WishlistStore {
	s := &WishlistStore{kv: store}
	if _, err := store.Get(wishlistKey, &s.items); err != nil {
		applog.Warn(nil, "wishlist.load.corrupt", map[string]any{"err": err.Error()})
		s.items = nil
	}
	return s
}

// Add saves a product. Adding an id that is already saved is a no-op.
func (s *WishlistStore) Add(p domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.containsLocked(p.ID) {
		return nil
	}
	prev := s.items
	s.items = append(slices.Clone(s.items), p)
	if err := s.kv.Set(wishlistKey, s.items); err != nil {
		s.items = prev
		return err
	}
	return nil
}

// Remove drops a product by id. Removing an absent id is a no-op.
func (s *WishlistStore) Remove(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.containsLocked(id) {
		return nil
	}
	prev := s.items
	next := make([]domain.Product, 0, len(prev))
	for _, p := range prev {
		if p.ID != id {
			next = append(next, p)
		}
	}
	s.items = next
	if err := s.kv.Set(wishlistKey, s.items); err != nil {
		s.items = prev
		return err
	}
	return nil
}

func (s *WishlistStore) Contains(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.containsLocked(id)
}

// List returns the saved products in insertion order.
func (s *WishlistStore) List() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

func (s *WishlistStore) containsLocked(id int64) bool {
	for _, p := range s.items {
		if p.ID == id {
			return true
		}
	}
	return false
}
