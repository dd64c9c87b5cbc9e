package stores_test

import (
	"errors"
	"testing"

	"pocketshop/internal/errs"
	"pocketshop/internal/stores"
)

func TestThemeDefaultsToLight(t *testing.T) {
	store, _ := memkv(t)
	th := stores.NewThemeStore(store)
	if th.IsDark() {
		t.Fatal("default should be light")
	}
}

func TestThemeToggleSurvivesReload(t *testing.T) {
	store, _ := memkv(t)
	th := stores.NewThemeStore(store)

	isDark, err := th.Toggle()
	if err != nil {
		t.Fatal(err)
	}
	if !isDark {
		t.Fatal("toggle from light should report dark")
	}

	// simulated restart over the same medium
	if !stores.NewThemeStore(store).IsDark() {
		t.Fatal("toggle not persisted")
	}
}

func TestThemeCorruptStateDefaultsToLight(t *testing.T) {
	store, db := memkv(t)
	if _, err := db.Exec(`INSERT INTO kv(key,value) VALUES('theme','tru')`); err != nil {
		t.Fatal(err)
	}
	if stores.NewThemeStore(store).IsDark() {
		t.Fatal("corrupt state should default to light")
	}
}

func TestThemeToggleKeepsFlipOnPersistFailure(t *testing.T) {
	store, db := memkv(t)
	th := stores.NewThemeStore(store)
	db.Close()

	isDark, err := th.Toggle()
	var pe *errs.PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("want PersistenceError, got %v", err)
	}
	if !isDark || !th.IsDark() {
		t.Fatal("in-memory flag should flip even when persist fails")
	}
}

func TestThemePalette(t *testing.T) {
	store, _ := memkv(t)
	th := stores.NewThemeStore(store)

	light := th.Theme()
	if light.Background != "#FFFFFF" || light.Text != "#000000" {
		t.Fatalf("light palette %+v", light)
	}
	if _, err := th.Toggle(); err != nil {
		t.Fatal(err)
	}
	dark := th.Theme()
	if dark.Background != "#1C1C1E" || dark.Text != "#FFFFFF" {
		t.Fatalf("dark palette %+v", dark)
	}
	if light.Primary != dark.Primary {
		t.Fatal("primary color should not depend on mode")
	}
}
