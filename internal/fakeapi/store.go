package fakeapi

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/dmitrijs2005/bod/internal/common"
)

// Object is one JSON record as the API stores it.
type Object = map[string]any

// Store keeps every resource in memory. It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	resources map[string]*resource
}

type resource struct {
	items  map[int]Object
	nextID int
}

// NewStore builds a store preloaded with data. Values are encoded to JSON
// objects; each must carry a numeric "id".
func NewStore(data map[string][]any) (*Store, error) {
	s := &Store{resources: map[string]*resource{}}
	for name, values := range data {
		r := &resource{items: map[int]Object{}}
		for _, v := range values {
			obj, err := toObject(v)
			if err != nil {
				return nil, fmt.Errorf("seed %s: %w", name, err)
			}
			id, ok := objectID(obj)
			if !ok {
				return nil, fmt.Errorf("seed %s: record without id", name)
			}
			r.items[id] = obj
			if id > r.nextID {
				r.nextID = id
			}
		}
		s.resources[name] = r
	}
	return s, nil
}

// Names lists the resources the store serves.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.resources))
	for name := range s.resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Store) get(name string) (*resource, error) {
	r, ok := s.resources[name]
	if !ok {
		return nil, fmt.Errorf("resource %s: %w", name, common.ErrorNotFound)
	}
	return r, nil
}

// List returns the records matching every filter, ordered by id. Filters
// compare the JSON value's text form with the query value.
func (s *Store) List(name string, filters map[string]string) ([]Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, err := s.get(name)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]Object, 0, len(ids))
	for _, id := range ids {
		obj := r.items[id]
		if matches(obj, filters) {
			out = append(out, obj)
		}
	}
	return out, nil
}

// Get returns one record.
func (s *Store) Get(name string, id int) (Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, err := s.get(name)
	if err != nil {
		return nil, err
	}
	obj, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%s %d: %w", name, id, common.ErrorNotFound)
	}
	return obj, nil
}

// Create stores obj under a fresh id, ignoring any id it carries.
func (s *Store) Create(name string, obj Object) (Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.get(name)
	if err != nil {
		return nil, err
	}
	r.nextID++
	obj["id"] = r.nextID
	r.items[r.nextID] = obj
	return obj, nil
}

// Update replaces the record with the given id. The stored id always wins
// over the body's.
func (s *Store) Update(name string, id int, obj Object) (Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.get(name)
	if err != nil {
		return nil, err
	}
	if _, ok := r.items[id]; !ok {
		return nil, fmt.Errorf("%s %d: %w", name, id, common.ErrorNotFound)
	}
	obj["id"] = id
	r.items[id] = obj
	return obj, nil
}

// Delete removes the record with the given id.
func (s *Store) Delete(name string, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.get(name)
	if err != nil {
		return err
	}
	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("%s %d: %w", name, id, common.ErrorNotFound)
	}
	delete(r.items, id)
	return nil
}

func toObject(v any) (Object, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var obj Object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func objectID(obj Object) (int, bool) {
	switch v := obj["id"].(type) {
	case float64:
		return int(v), v > 0
	case int:
		return v, v > 0
	default:
		return 0, false
	}
}

func matches(obj Object, filters map[string]string) bool {
	for key, want := range filters {
		v, ok := obj[key]
		if !ok || fmt.Sprint(v) != want {
			return false
		}
	}
	return true
}
