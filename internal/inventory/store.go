package inventory

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MaxWeight caps the total weight an Inventory may hold.
const MaxWeight = 100

var ErrInvalidArgument = errors.New("invalid argument")

const (
	OpAdd    = "add"
	OpRemove = "remove"
	OpSearch = "search"

	ResultAccepted = "accepted"
	ResultRejected = "rejected"
	ResultInvalid  = "invalid"
	ResultRemoved  = "removed"
	ResultMissing  = "missing"
	ResultOK       = "ok"
)

// Recorder receives operation outcomes and the current load. Calls are made
// while the store lock is held, so implementations must not call back into
// the Inventory.
type Recorder interface {
	ObserveOp(inventoryID, op, result string)
	SetLoad(inventoryID string, weight, items int)
}

type nopRecorder struct{}

func (nopRecorder) ObserveOp(string, string, string) {}
func (nopRecorder) SetLoad(string, int, int)         {}

type Option func(*Inventory)

func WithRecorder(r Recorder) Option {
	return func(inv *Inventory) {
		if r != nil {
			inv.rec = r
		}
	}
}

// Inventory is a weight-capped item store safe for concurrent use.
// Mutations take the write lock for the whole check-then-update sequence;
// reads take the read lock and return copies.
type Inventory struct {
	id  string
	rec Recorder

	mu          sync.RWMutex
	m           map[string]Item
	totalWeight int
}

func New(opts ...Option) *Inventory {
	inv := &Inventory{
		id:  uuid.NewString(),
		rec: nopRecorder{},
		m:   make(map[string]Item),
	}
	for _, opt := range opts {
		opt(inv)
	}
	inv.rec.SetLoad(inv.id, 0, 0)
	return inv
}

func (inv *Inventory) ID() string { return inv.id }

// AddItem stores item, or grows the weight of the entry already stored under
// the same name. It returns false without changing anything when the result
// would exceed MaxWeight.
func (inv *Inventory) AddItem(item Item) (bool, error) {
	if item.IsZero() {
		inv.rec.ObserveOp(inv.id, OpAdd, ResultInvalid)
		return false, fmt.Errorf("%w: add: item is absent", ErrInvalidArgument)
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if inv.totalWeight+item.weight > MaxWeight {
		inv.rec.ObserveOp(inv.id, OpAdd, ResultRejected)
		return false, nil
	}

	key := item.Key()
	if existing, ok := inv.m[key]; ok {
		inv.m[key] = Item{name: existing.name, weight: existing.weight + item.weight}
	} else {
		inv.m[key] = item
	}
	inv.totalWeight += item.weight

	inv.rec.ObserveOp(inv.id, OpAdd, ResultAccepted)
	inv.rec.SetLoad(inv.id, inv.totalWeight, len(inv.m))
	return true, nil
}

// RemoveItem deletes the entry stored under item's name and releases its
// stored weight. The weight carried by item itself is ignored.
func (inv *Inventory) RemoveItem(item Item) (bool, error) {
	if item.IsZero() {
		inv.rec.ObserveOp(inv.id, OpRemove, ResultInvalid)
		return false, fmt.Errorf("%w: remove: item is absent", ErrInvalidArgument)
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	key := item.Key()
	stored, ok := inv.m[key]
	if !ok {
		inv.rec.ObserveOp(inv.id, OpRemove, ResultMissing)
		return false, nil
	}

	delete(inv.m, key)
	inv.totalWeight -= stored.weight

	inv.rec.ObserveOp(inv.id, OpRemove, ResultRemoved)
	inv.rec.SetLoad(inv.id, inv.totalWeight, len(inv.m))
	return true, nil
}

// SearchItems returns the items whose name contains term, ignoring case.
// A blank term matches nothing.
func (inv *Inventory) SearchItems(term string) []Item {
	if strings.TrimSpace(term) == "" {
		return []Item{}
	}
	needle := normalize(term)

	inv.mu.RLock()
	defer inv.mu.RUnlock()

	out := make([]Item, 0)
	for key, it := range inv.m {
		if strings.Contains(key, needle) {
			out = append(out, it)
		}
	}
	inv.rec.ObserveOp(inv.id, OpSearch, ResultOK)
	return out
}

// Items returns a snapshot of every stored item in no particular order.
func (inv *Inventory) Items() []Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	out := make([]Item, 0, len(inv.m))
	for _, it := range inv.m {
		out = append(out, it)
	}
	return out
}

func (inv *Inventory) CurrentWeight() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.totalWeight
}

func (inv *Inventory) Len() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.m)
}
