package inventory

import (
	"errors"
	"testing"
)

func mustItem(t *testing.T, name string, weight int) Item {
	t.Helper()

	it, err := NewItem(name, weight)
	if err != nil {
		t.Fatalf("NewItem(%q, %d): %v", name, weight, err)
	}
	return it
}

func TestNewItem_EmptyName(t *testing.T) {
	_, err := NewItem("", 5)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestItem_EqualityIsCaseInsensitive(t *testing.T) {
	sword := mustItem(t, "Sword", 10)
	upper := mustItem(t, "SWORD", 3)
	shield := mustItem(t, "Shield", 10)

	if !sword.Equal(upper) {
		t.Errorf("expected %q to equal %q", sword.Name(), upper.Name())
	}
	if sword.Equal(shield) {
		t.Errorf("expected %q to differ from %q", sword.Name(), shield.Name())
	}
	if sword.Hash() != upper.Hash() {
		t.Errorf("expected equal hashes, got %d and %d", sword.Hash(), upper.Hash())
	}
	if sword.Key() != "SWORD" {
		t.Errorf("expected key SWORD, got %q", sword.Key())
	}
}

func TestItem_String(t *testing.T) {
	if got := mustItem(t, "Potion", 2).String(); got != "Potion - 2kg" {
		t.Errorf("unexpected String(): %q", got)
	}
}

func TestItem_ZeroValue(t *testing.T) {
	var it Item
	if !it.IsZero() {
		t.Fatal("zero Item should report IsZero")
	}
	if mustItem(t, "x", 0).IsZero() {
		t.Fatal("named Item should not report IsZero")
	}
}
