// Package taskstore is an in-memory task repository partitioned by project.
//
// Each project owns a partition created on first write; partitions are never
// removed. Records are immutable once stored: updates install a new record
// with compare-and-swap, so readers see either the old or the new version of
// a task in full.
package taskstore

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

var (
	ErrNotFound            = errors.New("task not found")
	ErrDescriptionRequired = errors.New("description is required")
)

// Item is a task of the tracker service.
type Item struct {
	ID          int64  `json:"id"`
	ProjectID   int64  `json:"projectId"`
	Description string `json:"description"`
	IsCompleted bool   `json:"isCompleted"`
}

// partition maps task ID to *Item.
type partition struct {
	items sync.Map
}

// Store is safe for concurrent use. There is no global lock: the outer map
// and every partition are sync.Maps, and identity allocation goes through
// the injected Counter.
type Store struct {
	partitions sync.Map // int64 -> *partition
	ids        Counter
}

// NewStore creates a Store. A nil counter is replaced with a fresh
// AtomicCounter, so the first task gets ID 1.
func NewStore(ids Counter) *Store {
	if ids == nil {
		ids = NewAtomicCounter(0)
	}
	return &Store{ids: ids}
}

func (s *Store) lookup(projectID int64) (*partition, bool) {
	p, ok := s.partitions.Load(projectID)
	if !ok {
		return nil, false
	}
	return p.(*partition), true
}

// partitionFor returns the project's partition, creating it if needed.
// Concurrent first writers all receive the same partition.
func (s *Store) partitionFor(projectID int64) *partition {
	if p, ok := s.lookup(projectID); ok {
		return p
	}
	p, _ := s.partitions.LoadOrStore(projectID, &partition{})
	return p.(*partition)
}

// GetAll returns the project's tasks ordered by ID. Unknown projects yield
// an empty, non-nil slice.
func (s *Store) GetAll(projectID int64) []Item {
	items := []Item{}
	p, ok := s.lookup(projectID)
	if !ok {
		return items
	}

	p.items.Range(func(_, value any) bool {
		items = append(items, *value.(*Item))
		return true
	})
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// Add stores a new, not yet completed task. The description is trimmed and
// must not be blank.
func (s *Store) Add(projectID int64, description string) (Item, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Item{}, ErrDescriptionRequired
	}

	item := &Item{
		ID:          s.ids.Next(),
		ProjectID:   projectID,
		Description: description,
	}
	s.partitionFor(projectID).items.Store(item.ID, item)
	return *item, nil
}

// Update applies the supplied fields to an existing task. A nil or blank
// description and a nil isCompleted leave the stored values unchanged.
func (s *Store) Update(projectID, id int64, description *string, isCompleted *bool) (Item, error) {
	p, ok := s.lookup(projectID)
	if !ok {
		return Item{}, ErrNotFound
	}

	for {
		current, ok := p.items.Load(id)
		if !ok {
			return Item{}, ErrNotFound
		}
		existing := current.(*Item)

		next := &Item{
			ID:          existing.ID,
			ProjectID:   projectID,
			Description: existing.Description,
			IsCompleted: existing.IsCompleted,
		}
		if description != nil {
			if trimmed := strings.TrimSpace(*description); trimmed != "" {
				next.Description = trimmed
			}
		}
		if isCompleted != nil {
			next.IsCompleted = *isCompleted
		}

		// Fails if another writer replaced or deleted the record since Load.
		if p.items.CompareAndSwap(id, existing, next) {
			return *next, nil
		}
	}
}

// Delete removes a task and reports whether it existed.
func (s *Store) Delete(projectID, id int64) bool {
	p, ok := s.lookup(projectID)
	if !ok {
		return false
	}
	_, loaded := p.items.LoadAndDelete(id)
	return loaded
}
