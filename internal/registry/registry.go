// Package registry holds the ordered collection of registered units.
package registry

import (
	"sort"
	"sync"

	"github.com/conneroisu/playground/internal/errors"
	"github.com/conneroisu/playground/internal/runner"
)

// Registry is an ordered set of units keyed by id. Iteration is always in
// ascending id order, whatever order units were added in.
type Registry struct {
	units map[int]runner.Runnable
	order []int
	mutex sync.RWMutex
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		units: make(map[int]runner.Runnable),
		order: make([]int, 0),
	}
}

// Add inserts a unit. A nil unit or an id that is already registered is
// rejected with a registration error and the registry is left unchanged.
func (r *Registry) Add(unit runner.Runnable) error {
	if unit == nil {
		return errors.NewRegistrationError(errors.ErrCodeNilUnit, "cannot register a nil unit", nil)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	id := unit.ID()
	if existing, exists := r.units[id]; exists {
		return errors.NewRegistrationError(errors.ErrCodeDuplicateID, "unit id already registered", errors.ErrDuplicateID).
			WithUnit(id, unit.Name()).
			WithContext("registered_name", existing.Name())
	}

	r.units[id] = unit

	// Ids normally arrive in ascending order, so this is usually an append.
	pos := sort.SearchInts(r.order, id)
	r.order = append(r.order, 0)
	copy(r.order[pos+1:], r.order[pos:])
	r.order[pos] = id

	return nil
}

// FindByID returns the unit with the given id.
func (r *Registry) FindByID(id int) (runner.Runnable, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	unit, exists := r.units[id]
	return unit, exists
}

// FindByName returns the unit with the smallest id whose name matches
// exactly.
func (r *Registry) FindByName(name string) (runner.Runnable, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, id := range r.order {
		if unit := r.units[id]; unit.Name() == name {
			return unit, true
		}
	}
	return nil, false
}

// All returns every unit in ascending id order. The slice is a copy.
func (r *Registry) All() []runner.Runnable {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]runner.Runnable, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.units[id])
	}
	return result
}

// Names returns unit names in ascending id order.
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.order))
	for _, id := range r.order {
		names = append(names, r.units[id].Name())
	}
	return names
}

// Count returns the number of registered units
func (r *Registry) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.units)
}
