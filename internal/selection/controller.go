// Package selection keeps the seats chosen for one reservation draft.
package selection

import "slices"

// Field is the host value the selection is bound to. Every mutation of a
// Controller ends with a single Set carrying the full replacement slice.
type Field[K comparable] interface {
	Value() []K
	Set(ids []K)
}

// Controller is an insertion ordered set of seat identifiers. It does not
// check availability; that belongs to the composition validator.
//
// A Controller is not safe for concurrent use. It is scoped to one draft.
type Controller[K comparable] struct {
	ids   []K
	index map[K]struct{}
	field Field[K]
}

// New returns a controller seeded from field's current value. field may be nil.
func New[K comparable](field Field[K]) *Controller[K] {
	c := &Controller[K]{
		index: make(map[K]struct{}),
		field: field,
	}

	if field != nil {
		c.load(field.Value())
	}

	return c
}

func (c *Controller[K]) load(ids []K) {
	c.ids = make([]K, 0, len(ids))
	clear(c.index)

	var zero K

	for _, id := range ids {
		if id == zero {
			continue
		}
		if _, ok := c.index[id]; ok {
			continue
		}
		c.index[id] = struct{}{}
		c.ids = append(c.ids, id)
	}
}

func (c *Controller[K]) IsSelected(id K) bool {
	_, ok := c.index[id]
	return ok
}

// Toggle adds id when absent and removes it when present. It reports whether
// id is selected afterwards. The zero value is never selected.
func (c *Controller[K]) Toggle(id K) bool {
	var zero K
	if id == zero {
		return false
	}

	selected := !c.IsSelected(id)

	if selected {
		c.index[id] = struct{}{}
		c.ids = append(c.ids, id)
	} else {
		c.drop(id)
	}

	c.sync()

	return selected
}

// SetAll replaces the selection. Duplicates keep their first position and
// zero values are skipped.
func (c *Controller[K]) SetAll(ids []K) {
	c.load(ids)
	c.sync()
}

// Remove drops every given id, ignoring ids that are not selected. It
// returns the ids that were actually removed.
func (c *Controller[K]) Remove(ids ...K) []K {
	var removed []K

	for _, id := range ids {
		if c.drop(id) {
			removed = append(removed, id)
		}
	}

	if len(removed) > 0 {
		c.sync()
	}

	return removed
}

func (c *Controller[K]) Clear() {
	c.load(nil)
	c.sync()
}

// IDs returns a copy of the selection in insertion order.
func (c *Controller[K]) IDs() []K {
	return slices.Clone(c.ids)
}

func (c *Controller[K]) Len() int {
	return len(c.ids)
}

func (c *Controller[K]) drop(id K) bool {
	if _, ok := c.index[id]; !ok {
		return false
	}

	delete(c.index, id)
	c.ids = slices.DeleteFunc(c.ids, func(v K) bool { return v == id })

	return true
}

func (c *Controller[K]) sync() {
	if c.field != nil {
		c.field.Set(c.IDs())
	}
}

// Value is a Field backed by a plain slice.
type Value[K comparable] struct {
	ids []K
}

func (v *Value[K]) Value() []K {
	return slices.Clone(v.ids)
}

func (v *Value[K]) Set(ids []K) {
	v.ids = slices.Clone(ids)
}
