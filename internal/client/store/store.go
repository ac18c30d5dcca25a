// Package store holds a page's working copy of a remote collection.
//
// Two modes exist. LocalOnlyStore mirrors create, update and delete in
// process only and never calls the API; edits are lost on the next reload.
// WriteThroughStore sends each change to the API first and mirrors it
// locally only when the API accepted it.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/bod/internal/client/gateway"
	"github.com/dmitrijs2005/bod/internal/client/models"
	"github.com/dmitrijs2005/bod/internal/common"
)

// IDPolicy assigns ids to records created locally.
type IDPolicy interface {
	// NextID returns the id for a new record given the current collection
	// size and the largest id the collection has ever held.
	NextID(size, maxSeen int) int
	Name() string
}

// MonotonicIDs never reuses an id, even after deletions.
type MonotonicIDs struct{}

func (MonotonicIDs) NextID(_, maxSeen int) int { return maxSeen + 1 }
func (MonotonicIDs) Name() string              { return "monotonic" }

// LengthPlusOneIDs uses size+1, which collides with a surviving record once
// anything but the last record has been deleted.
type LengthPlusOneIDs struct{}

func (LengthPlusOneIDs) NextID(size, _ int) int { return size + 1 }
func (LengthPlusOneIDs) Name() string           { return "length_plus_one" }

// PolicyByName maps a configured name to its policy.
func PolicyByName(name string) (IDPolicy, error) {
	switch name {
	case "", MonotonicIDs{}.Name():
		return MonotonicIDs{}, nil
	case LengthPlusOneIDs{}.Name():
		return LengthPlusOneIDs{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown id policy %q", common.ErrorValidation, name)
	}
}

// Store is a page's collection.
type Store[T models.Record[T]] interface {
	// Items returns a copy of the records in display order.
	Items() []T
	// Get returns the first record with id.
	Get(id int) (T, bool)
	// Replace swaps in a freshly fetched collection.
	Replace(items []T)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, rec T) (T, error)
	Delete(ctx context.Context, id int) error
	// Modify applies fn to every record with id and returns the first
	// result.
	Modify(ctx context.Context, id int, fn func(T) T) (T, error)
	// Mode names the store kind for display.
	Mode() string
}

// Remote is the slice of a gateway collection a write-through store needs.
type Remote[T any] interface {
	Create(ctx context.Context, rec T) (gateway.Response[T], error)
	Update(ctx context.Context, id int, rec T) (gateway.Response[T], error)
	Delete(ctx context.Context, id int) error
}

// collection is the in-process mirror shared by both modes.
type collection[T models.Record[T]] struct {
	mu      sync.RWMutex
	items   []T
	maxSeen int
	policy  IDPolicy
}

func newCollection[T models.Record[T]](policy IDPolicy) *collection[T] {
	if policy == nil {
		policy = MonotonicIDs{}
	}
	return &collection[T]{policy: policy}
}

func (c *collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

func (c *collection[T]) Get(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.index(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

func (c *collection[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T(nil), items...)
	for _, it := range items {
		c.seen(it.RecordID())
	}
}

func (c *collection[T]) index(id int) int {
	for i, it := range c.items {
		if it.RecordID() == id {
			return i
		}
	}
	return -1
}

func (c *collection[T]) seen(id int) {
	if id > c.maxSeen {
		c.maxSeen = id
	}
}

func (c *collection[T]) nextID() int {
	return c.policy.NextID(len(c.items), c.maxSeen)
}

// add appends rec with the given id.
func (c *collection[T]) add(rec T, id int) T {
	rec = rec.WithID(id)
	c.items = append(c.items, rec)
	c.seen(id)
	return rec
}

// replaceAt swaps rec in for every record with id; ids only repeat under
// LengthPlusOneIDs.
func (c *collection[T]) replaceAt(id int, rec T) (T, error) {
	rec = rec.WithID(id)
	found := false
	for i, it := range c.items {
		if it.RecordID() == id {
			c.items[i] = rec
			found = true
		}
	}
	if !found {
		var zero T
		return zero, fmt.Errorf("record %d: %w", id, common.ErrorNotFound)
	}
	return rec, nil
}

// modifyAt applies fn to each record with id in place.
func (c *collection[T]) modifyAt(id int, fn func(T) T) (T, error) {
	var first T
	found := false
	for i, it := range c.items {
		if it.RecordID() != id {
			continue
		}
		c.items[i] = fn(it).WithID(id)
		if !found {
			first, found = c.items[i], true
		}
	}
	if !found {
		return first, fmt.Errorf("record %d: %w", id, common.ErrorNotFound)
	}
	return first, nil
}

// removeAt drops every record with id.
func (c *collection[T]) removeAt(id int) error {
	kept := c.items[:0]
	for _, it := range c.items {
		if it.RecordID() != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(c.items) {
		return fmt.Errorf("record %d: %w", id, common.ErrorNotFound)
	}
	var zero T
	for i := len(kept); i < len(c.items); i++ {
		c.items[i] = zero
	}
	c.items = kept
	return nil
}

func (c *collection[T]) has(id int) bool {
	return c.index(id) >= 0
}
