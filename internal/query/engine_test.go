package query_test

import (
	"slices"
	"testing"

	"pocketshop/internal/domain"
	"pocketshop/internal/query"
)

func products() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Red Shoe", Price: 50, Category: "shoes"},
		{ID: 2, Title: "Blue Hat", Price: 20, Category: "hats"},
		{ID: 3, Title: "Blue Shoe", Price: 20, Category: "shoes"},
		{ID: 4, Title: "Green Scarf", Price: 35, Category: "scarves"},
	}
}

func ids(ps []domain.Product) []int64 {
	out := make([]int64, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestDeriveEmptyInput(t *testing.T) {
	got := query.Derive(nil, query.State{Category: query.CategoryAll, Sort: query.SortNone})
	if len(got) != 0 {
		t.Fatalf("want empty, got %d items", len(got))
	}
}

func TestDeriveNoFiltersPreservesOrder(t *testing.T) {
	got := query.Derive(products(), query.State{Category: query.CategoryAll, Sort: query.SortNone})
	if !slices.Equal(ids(got), []int64{1, 2, 3, 4}) {
		t.Fatalf("order changed: %v", ids(got))
	}
}

func TestDeriveSearchIsCaseFoldedSubstring(t *testing.T) {
	got := query.Derive(products(), query.State{Search: "  BLUE ", Category: query.CategoryAll})
	if !slices.Equal(ids(got), []int64{2, 3}) {
		t.Fatalf("got %v", ids(got))
	}
}

func TestDeriveCategoryExactMatch(t *testing.T) {
	got := query.Derive(products(), query.State{Category: "shoes"})
	if !slices.Equal(ids(got), []int64{1, 3}) {
		t.Fatalf("got %v", ids(got))
	}
	// case-sensitive: no match for a differently-cased label
	if got := query.Derive(products(), query.State{Category: "Shoes"}); len(got) != 0 {
		t.Fatalf("category match should be exact, got %v", ids(got))
	}
}

func TestDeriveSortLowHigh(t *testing.T) {
	got := query.Derive(products(), query.State{Category: query.CategoryAll, Sort: query.SortPriceAsc})
	// stable: 2 before 3 (equal price, input order kept)
	if !slices.Equal(ids(got), []int64{2, 3, 4, 1}) {
		t.Fatalf("got %v", ids(got))
	}
}

func TestDeriveSortHighLow(t *testing.T) {
	got := query.Derive(products(), query.State{Category: query.CategoryAll, Sort: query.SortPriceDesc})
	if !slices.Equal(ids(got), []int64{1, 4, 2, 3}) {
		t.Fatalf("got %v", ids(got))
	}
}

// The derived list is always a reordering of a subsequence of the input
// satisfying both predicates.
func TestDeriveSubsetOfInput(t *testing.T) {
	in := products()
	got := query.Derive(in, query.State{Search: "shoe", Category: "shoes", Sort: query.SortPriceAsc})
	for _, p := range got {
		if !slices.Contains(in, p) {
			t.Fatalf("derived item %v not in input", p.ID)
		}
		if p.Category != "shoes" {
			t.Fatalf("category predicate violated: %v", p.ID)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Price > got[i].Price {
			t.Fatalf("not sorted ascending at %d", i)
		}
	}
}

func TestDeriveDoesNotMutateInput(t *testing.T) {
	in := products()
	want := slices.Clone(in)
	query.Derive(in, query.State{Category: query.CategoryAll, Sort: query.SortPriceAsc})
	if !slices.Equal(in, want) {
		t.Fatal("input slice mutated")
	}
}

func TestEngineMemoizesLastInputs(t *testing.T) {
	e := query.NewEngine()
	in := products()
	st := query.State{Category: query.CategoryAll, Sort: query.SortPriceAsc}

	first := e.Derive(in, st)
	second := e.Derive(slices.Clone(in), st)
	if len(first) == 0 || len(second) != len(first) {
		t.Fatalf("unexpected lengths %d/%d", len(first), len(second))
	}
	// equal inputs return the cached slice itself
	if &first[0] != &second[0] {
		t.Fatal("expected memoized result for identical inputs")
	}

	st.Sort = query.SortPriceDesc
	third := e.Derive(in, st)
	if slices.Equal(ids(third), ids(first)) {
		t.Fatal("state change did not invalidate memo")
	}
}
