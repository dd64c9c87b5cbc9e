package stores

import (
	"sync"

	"pocketshop/internal/domain"
	"pocketshop/internal/kv"
	applog "pocketshop/internal/log"
)

const themeKey = "theme"

// ThemeStore holds the persisted dark/light flag. Unlike the wishlist, a
// failed persist does not roll back: the in-memory flag keeps its new value
// and the error is surfaced. The divergence is tolerable for a cosmetic
// setting.
type ThemeStore struct {
	mu     sync.Mutex
	kv     *kv.Store
	isDark bool
}

// NewThemeStore loads the flag once; missing or undecodable state means
// light mode.
func NewThemeStore(store *kv.Store) *ThemeStore {
	s := &ThemeStore{kv: store}
	if _, err := store.Get(themeKey, &s.isDark); err != nil {
		applog.Warn(nil, "theme.load.corrupt", map[string]any{"err": err.Error()})
		s.isDark = false
	}
	return s
}

func (s *ThemeStore) IsDark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isDark
}

// Toggle flips the flag, persists it, and returns the new value. The
// returned error, if any, is the persistence failure.
func (s *ThemeStore) Toggle() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isDark = !s.isDark
	return s.isDark, s.kv.Set(themeKey, s.isDark)
}

// Theme derives the active color palette.
func (s *ThemeStore) Theme() domain.Theme { return domain.Colors(s.IsDark()) }
