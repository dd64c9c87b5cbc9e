// Package query derives the displayable product sequence from the raw
// catalog list and the user's search/filter/sort state.
package query

import (
	"slices"
	"sort"
	"strings"
	"sync"

	"pocketshop/internal/domain"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

type SortOrder string

const (
	SortNone      SortOrder = "none"
	SortPriceAsc  SortOrder = "low-high"
	SortPriceDesc SortOrder = "high-low"
)

// State is the ephemeral search/filter/sort selection. It is never
// persisted; the derived list is recomputed whenever it changes.
type State struct {
	Search   string
	Category string
	Sort     SortOrder
}

// Derive filters then sorts, in that fixed order:
// title substring match (case-folded), exact category match unless "all",
// then a stable price sort. It never mutates its input and identical
// inputs always yield identical output.
func Derive(products []domain.Product, st State) []domain.Product {
	out := make([]domain.Product, 0, len(products))

	q := strings.ToLower(strings.TrimSpace(st.Search))
	for _, p := range products {
		if q != "" && !strings.Contains(strings.ToLower(p.Title), q) {
			continue
		}
		if st.Category != "" && st.Category != CategoryAll && p.Category != st.Category {
			continue
		}
		out = append(out, p)
	}

	switch st.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}

// Engine memoizes Derive on its last inputs, so a screen re-rendering with
// unchanged products and state gets the cached sequence back instead of a
// recomputation.
type Engine struct {
	mu       sync.Mutex
	products []domain.Product
	state    State
	result   []domain.Product
	valid    bool
}

func NewEngine() *Engine { return &Engine{} }

func (e *Engine) Derive(products []domain.Product, st State) []domain.Product {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.valid && st == e.state && slices.Equal(products, e.products) {
		return e.result
	}
	e.products = slices.Clone(products)
	e.state = st
	e.result = Derive(products, st)
	e.valid = true
	return e.result
}
