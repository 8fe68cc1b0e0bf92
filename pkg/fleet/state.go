// Package fleet holds the session-scoped shared vehicle collection and the
// lifecycle rules for reconciling server-confirmed mutations into it.
package fleet

import (
	"sync"

	"github.com/samkiyya/SAM-Fleet/models"
)

// State is the client-held collection of vehicle records treated as current
// truth for rendering. It holds at most one record per id and is only
// mutated through the methods below, which all replace by id rather than by
// position.
type State struct {
	mu       sync.RWMutex
	vehicles []models.Vehicle
	index    map[string]int
}

func NewState() *State {
	return &State{index: make(map[string]int)}
}

// ReplaceAll swaps in a freshly fetched collection. Later duplicates of an
// id overwrite earlier ones so the one-record-per-id invariant holds even on
// a misbehaving feed.
func (s *State) ReplaceAll(vehicles []models.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.vehicles = s.vehicles[:0]
	s.index = make(map[string]int, len(vehicles))
	for _, v := range vehicles {
		if i, ok := s.index[v.ID]; ok {
			s.vehicles[i] = v
			continue
		}
		s.index[v.ID] = len(s.vehicles)
		s.vehicles = append(s.vehicles, v)
	}
}

// Clear empties the collection.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles = nil
	s.index = make(map[string]int)
}

// Add appends a server-confirmed record. If the id is already present the
// existing entry is replaced in place, so applying a create response twice
// never yields a duplicate row.
func (s *State) Add(v models.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[v.ID]; ok {
		s.vehicles[i] = v
		return
	}
	s.index[v.ID] = len(s.vehicles)
	s.vehicles = append(s.vehicles, v)
}

// ReplaceByID swaps the entry with v.ID for v, keeping its position.
// Returns false when no entry has that id.
func (s *State) ReplaceByID(v models.Vehicle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[v.ID]
	if !ok {
		return false
	}
	s.vehicles[i] = v
	return true
}

// RemoveByID deletes the entry with the given id, preserving the relative
// order of the rest. Returns false when no entry has that id.
func (s *State) RemoveByID(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.vehicles = append(s.vehicles[:i], s.vehicles[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.vehicles); j++ {
		s.index[s.vehicles[j].ID] = j
	}
	return true
}

// Get returns the record with the given id, if present.
func (s *State) Get(id string) (models.Vehicle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return models.Vehicle{}, false
	}
	return s.vehicles[i], true
}

// Snapshot returns a copy of the collection in insertion order, safe to hand
// to the table engine while mutations continue.
func (s *State) Snapshot() []models.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out
}

func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vehicles)
}
