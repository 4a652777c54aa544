package session

import (
	"sort"
	"sync"

	"github.com/vk/geoflowgo/internal/geo"
)

// LayerStore is the in-memory registry of named layers. It is keyed by the
// user-chosen layer ID: commands that produce a layer register it here,
// commands that reference an ID read it back. Entries are never removed
// implicitly; only an explicit free command deletes them.
//
// Backed by sync.Map. The interpreter itself is strictly sequential, but the
// store must stay safe when a command's delegated toolkit call fans out
// internally.
type LayerStore struct {
	layers sync.Map // Key: layer ID string, Value: *geo.Layer
}

// NewLayerStore creates an empty layer store.
func NewLayerStore() *LayerStore {
	return &LayerStore{}
}

// Set registers a layer under its ID, replacing any existing entry.
func (s *LayerStore) Set(l *geo.Layer) {
	s.layers.Store(l.ID, l)
}

// Get retrieves a layer by ID.
func (s *LayerStore) Get(id string) (*geo.Layer, bool) {
	v, ok := s.layers.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*geo.Layer), true
}

// Contains reports whether a layer is registered under id.
func (s *LayerStore) Contains(id string) bool {
	_, ok := s.layers.Load(id)
	return ok
}

// Remove deletes the layer registered under id, if any.
func (s *LayerStore) Remove(id string) {
	s.layers.Delete(id)
}

// IDs returns the registered layer IDs in sorted order.
func (s *LayerStore) IDs() []string {
	var ids []string
	s.layers.Range(func(key, _ any) bool {
		ids = append(ids, key.(string))
		return true
	})
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered layers.
func (s *LayerStore) Len() int {
	n := 0
	s.layers.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
