package inventory

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Item is an immutable named weight. Two items are equal when their names
// match case-insensitively; weight does not take part in identity.
type Item struct {
	name   string
	weight int
}

func NewItem(name string, weight int) (Item, error) {
	if name == "" {
		return Item{}, fmt.Errorf("%w: item name is empty", ErrInvalidArgument)
	}
	return Item{name: name, weight: weight}, nil
}

func (it Item) Name() string { return it.name }
func (it Item) Weight() int  { return it.weight }

// IsZero reports whether it is the absent item.
func (it Item) IsZero() bool { return it.name == "" }

// Key is the normalized name used for lookup and hashing.
func (it Item) Key() string { return normalize(it.name) }

func (it Item) Equal(other Item) bool {
	return it.Key() == other.Key()
}

func (it Item) Hash() uint64 {
	return xxhash.Sum64String(it.Key())
}

func (it Item) String() string {
	return fmt.Sprintf("%s - %dkg", it.name, it.weight)
}

func normalize(name string) string {
	return strings.ToUpper(name)
}
