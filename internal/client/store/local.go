package store

import (
	"context"

	"github.com/dmitrijs2005/bod/internal/client/models"
)

// LocalOnlyStore changes only the in-process collection.
type LocalOnlyStore[T models.Record[T]] struct {
	*collection[T]
}

// NewLocalOnly returns an empty local store using policy for new ids.
func NewLocalOnly[T models.Record[T]](policy IDPolicy) *LocalOnlyStore[T] {
	return &LocalOnlyStore[T]{collection: newCollection[T](policy)}
}

func (s *LocalOnlyStore[T]) Mode() string { return "local" }

// Create appends rec under the id chosen by the policy.
func (s *LocalOnlyStore[T]) Create(_ context.Context, rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(rec, s.nextID()), nil
}

// Update replaces every record with rec's id.
func (s *LocalOnlyStore[T]) Update(_ context.Context, rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceAt(rec.RecordID(), rec)
}

func (s *LocalOnlyStore[T]) Modify(_ context.Context, id int, fn func(T) T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modifyAt(id, fn)
}

// Delete removes every record with id.
func (s *LocalOnlyStore[T]) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeAt(id)
}
