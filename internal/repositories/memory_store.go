package repositories

import (
	"sort"
	"sync"
)

// identifiable is satisfied by pointers to entities with an integer primary key
type identifiable[T any] interface {
	*T
	GetID() int
	SetID(int)
}

// memoryStore is a goroutine-safe in-memory table keyed by auto-incremented ID.
// Items are stored by value so callers never alias stored state.
type memoryStore[T any, P identifiable[T]] struct {
	mu     sync.RWMutex
	items  map[int]T
	nextID int
}

func newMemoryStore[T any, P identifiable[T]]() *memoryStore[T, P] {
	return &memoryStore[T, P]{items: make(map[int]T)}
}

// get returns a copy of the item with the given ID
func (s *memoryStore[T, P]) get(id int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	return item, ok
}

// list returns copies of all items ordered by ID
func (s *memoryStore[T, P]) list() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		return P(&out[i]).GetID() < P(&out[j]).GetID()
	})
	return out
}

// find returns the first item matching pred
func (s *memoryStore[T, P]) find(pred func(*T) bool) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if pred(&item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// filter returns copies of the items matching pred ordered by ID
func (s *memoryStore[T, P]) filter(pred func(*T) bool) []T {
	out := []T{}
	for _, item := range s.list() {
		if pred(&item) {
			out = append(out, item)
		}
	}
	return out
}

// insert assigns the next ID and stores the item.
// When conflict matches an existing item nothing is stored and false is returned.
func (s *memoryStore[T, P]) insert(item T, conflict func(*T) bool) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conflict != nil {
		for _, existing := range s.items {
			if conflict(&existing) {
				return item, false
			}
		}
	}

	s.nextID++
	P(&item).SetID(s.nextID)
	s.items[s.nextID] = item
	return item, true
}

// replace overwrites an existing item. conflict is checked against every other item.
func (s *memoryStore[T, P]) replace(item T, conflict func(*T) bool) (found bool, conflicted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := P(&item).GetID()
	if _, ok := s.items[id]; !ok {
		return false, false
	}

	if conflict != nil {
		for otherID, existing := range s.items {
			if otherID != id && conflict(&existing) {
				return true, true
			}
		}
	}

	s.items[id] = item
	return true, false
}

// remove deletes the item with the given ID
func (s *memoryStore[T, P]) remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	return true
}
