package stores_test

import (
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"pocketshop/internal/domain"
	"pocketshop/internal/errs"
	"pocketshop/internal/kv"
	"pocketshop/internal/stores"
)

func memkv(t *testing.T) (*kv.Store, *sqlx.DB) {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	store, err := kv.New(db)
	if err != nil {
		t.Fatal(err)
	}
	return store, db
}

func prod(id int64, title string, price float64) domain.Product {
	return domain.Product{ID: id, Title: title, Price: price, Category: "misc"}
}

func TestWishlistAddRemoveContains(t *testing.T) {
	store, _ := memkv(t)
	w := stores.NewWishlistStore(store)

	p := prod(1, "Red Shoe", 50)
	if w.Contains(p.ID) {
		t.Fatal("contains before add")
	}
	if err := w.Add(p); err != nil {
		t.Fatal(err)
	}
	if !w.Contains(p.ID) {
		t.Fatal("missing after add")
	}
	if err := w.Remove(p.ID); err != nil {
		t.Fatal(err)
	}
	if w.Contains(p.ID) {
		t.Fatal("contains after remove")
	}
}

func TestWishlistDuplicateAddIsNoop(t *testing.T) {
	store, _ := memkv(t)
	w := stores.NewWishlistStore(store)

	p := prod(1, "Red Shoe", 50)
	if err := w.Add(p); err != nil {
		t.Fatal(err)
	}
	if err := w.Add(p); err != nil {
		t.Fatal(err)
	}
	if n := len(w.List()); n != 1 {
		t.Fatalf("want 1 item after duplicate add, got %d", n)
	}
}

func TestWishlistRemoveAbsentIsNoop(t *testing.T) {
	store, _ := memkv(t)
	w := stores.NewWishlistStore(store)
	if err := w.Remove(99); err != nil {
		t.Fatal(err)
	}
}

func TestWishlistPreservesInsertionOrderAcrossReload(t *testing.T) {
	store, _ := memkv(t)
	w := stores.NewWishlistStore(store)
	for _, p := range []domain.Product{prod(3, "C", 1), prod(1, "A", 2), prod(2, "B", 3)} {
		if err := w.Add(p); err != nil {
			t.Fatal(err)
		}
	}

	// a fresh store over the same medium sees the same sequence
	w2 := stores.NewWishlistStore(store)
	got := w2.List()
	if len(got) != 3 || got[0].ID != 3 || got[1].ID != 1 || got[2].ID != 2 {
		t.Fatalf("got %v", got)
	}
}

func TestWishlistLoadsEmptyFromCorruptState(t *testing.T) {
	store, db := memkv(t)
	if _, err := db.Exec(`INSERT INTO kv(key,value) VALUES('wishlist','[{broken')`); err != nil {
		t.Fatal(err)
	}
	w := stores.NewWishlistStore(store)
	if n := len(w.List()); n != 0 {
		t.Fatalf("corrupt state should load as empty, got %d items", n)
	}
}

func TestWishlistRollsBackOnPersistFailure(t *testing.T) {
	store, db := memkv(t)
	w := stores.NewWishlistStore(store)
	if err := w.Add(prod(1, "Red Shoe", 50)); err != nil {
		t.Fatal(err)
	}

	db.Close() // every write from here on fails

	err := w.Add(prod(2, "Blue Hat", 20))
	var pe *errs.PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("want PersistenceError, got %v", err)
	}
	if w.Contains(2) {
		t.Fatal("failed add left item in memory")
	}

	err = w.Remove(1)
	if !errors.As(err, &pe) {
		t.Fatalf("want PersistenceError, got %v", err)
	}
	if !w.Contains(1) {
		t.Fatal("failed remove dropped item from memory")
	}
}
