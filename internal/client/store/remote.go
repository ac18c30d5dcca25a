package store

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bod/internal/client/models"
	"github.com/dmitrijs2005/bod/internal/common"
)

// WriteThroughStore sends every change to the API before touching the
// local collection. A failed call leaves the collection unchanged.
type WriteThroughStore[T models.Record[T]] struct {
	*collection[T]
	remote Remote[T]
}

// NewWriteThrough returns an empty store backed by remote. policy picks the
// local id when the server's answer collides with a record already held.
func NewWriteThrough[T models.Record[T]](remote Remote[T], policy IDPolicy) *WriteThroughStore[T] {
	return &WriteThroughStore[T]{collection: newCollection[T](policy), remote: remote}
}

func (s *WriteThroughStore[T]) Mode() string { return "remote" }

// Create posts rec and mirrors the server's copy.
func (s *WriteThroughStore[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T

	resp, err := s.remote.Create(ctx, rec.WithID(0))
	if err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// the demo API does not persist writes and answers every create with
	// the same id
	id := resp.Data.RecordID()
	if id <= 0 || s.has(id) {
		id = s.nextID()
	}
	return s.add(resp.Data, id), nil
}

// Update puts rec and mirrors the server's copy.
func (s *WriteThroughStore[T]) Update(ctx context.Context, rec T) (T, error) {
	var zero T
	id := rec.RecordID()

	if _, ok := s.Get(id); !ok {
		return zero, fmt.Errorf("record %d: %w", id, common.ErrorNotFound)
	}

	resp, err := s.remote.Update(ctx, id, rec)
	if err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceAt(id, resp.Data)
}

// Modify puts fn applied to the first record with id. The server's copy
// replaces that record and fn is applied to any other holder of the id.
func (s *WriteThroughStore[T]) Modify(ctx context.Context, id int, fn func(T) T) (T, error) {
	var zero T

	cur, ok := s.Get(id)
	if !ok {
		return zero, fmt.Errorf("record %d: %w", id, common.ErrorNotFound)
	}

	resp, err := s.remote.Update(ctx, id, fn(cur))
	if err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	first := true
	return s.modifyAt(id, func(it T) T {
		if first {
			first = false
			return resp.Data
		}
		return fn(it)
	})
}

// Delete removes the record remotely, then locally.
func (s *WriteThroughStore[T]) Delete(ctx context.Context, id int) error {
	if _, ok := s.Get(id); !ok {
		return fmt.Errorf("record %d: %w", id, common.ErrorNotFound)
	}

	if err := s.remote.Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeAt(id)
}
