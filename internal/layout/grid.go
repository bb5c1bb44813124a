// Package layout turns a flat, sparsely addressed seat collection into a dense
// row-major grid and prepares it for rendering.
package layout

import (
	"cmp"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"slices"
)

// NoBound is reported as MaxX and MaxY of a layout built from zero items.
const NoBound = -1

// ErrInvalidPosition is returned for an item with a negative coordinate.
var ErrInvalidPosition = errors.New("invalid grid position")

// Positioned is anything that can be placed on the grid.
type Positioned interface {
	// GridKey identifies the item; it must be stable across builds.
	GridKey() string
	GridPosition() (x, y int)
}

// Row holds the items of one y coordinate. Cells has one slot per column in
// [0, MaxX]; nil marks an aisle or a structural gap.
type Row[T Positioned] struct {
	Key   int
	Cells []*T
}

// Grid is a dense row-major layout. Rows are ordered by key.
type Grid[T Positioned] struct {
	Rows []Row[T]
	MaxX int
	MaxY int
}

func (g Grid[T]) Empty() bool {
	return len(g.Rows) == 0
}

// Columns returns the width shared by every row.
func (g Grid[T]) Columns() int {
	return g.MaxX + 1
}

// Build places every item at index x of the row keyed by its y. Only y values
// present in the input produce a row. Rows are ordered by y ascending.
//
// A negative coordinate rejects the whole input. When two items share a
// position the later one in input order wins.
func Build[T Positioned](items []T) (Grid[T], error) {
	grid := Grid[T]{MaxX: NoBound, MaxY: NoBound}

	for i := range items {
		x, y := items[i].GridPosition()
		if x < 0 || y < 0 {
			return Grid[T]{}, fmt.Errorf("%w: %q at (%d, %d)", ErrInvalidPosition, items[i].GridKey(), x, y)
		}

		grid.MaxX = max(grid.MaxX, x)
		grid.MaxY = max(grid.MaxY, y)
	}

	if len(items) == 0 {
		return grid, nil
	}

	rows := make(map[int][]*T)

	for i := range items {
		x, y := items[i].GridPosition()

		cells, ok := rows[y]
		if !ok {
			cells = make([]*T, grid.MaxX+1)
			rows[y] = cells
		}

		cells[x] = &items[i]
	}

	grid.Rows = make([]Row[T], 0, len(rows))
	for y, cells := range rows {
		grid.Rows = append(grid.Rows, Row[T]{Key: y, Cells: cells})
	}

	slices.SortFunc(grid.Rows, func(a, b Row[T]) int {
		return cmp.Compare(a.Key, b.Key)
	})

	return grid, nil
}

// Lookup returns the item at (x, y), if any.
func (g Grid[T]) Lookup(x, y int) (*T, bool) {
	if x < 0 || x > g.MaxX {
		return nil, false
	}

	i, found := slices.BinarySearchFunc(g.Rows, y, func(r Row[T], y int) int {
		return cmp.Compare(r.Key, y)
	})
	if !found {
		return nil, false
	}

	cell := g.Rows[i].Cells[x]

	return cell, cell != nil
}

// Fingerprint hashes the keys and positions of items independent of their
// order, so it can key a memoized layout.
func Fingerprint[T Positioned](items []T) string {
	type entry struct {
		key  string
		x, y int
	}

	entries := make([]entry, len(items))
	for i, item := range items {
		x, y := item.GridPosition()
		entries[i] = entry{key: item.GridKey(), x: x, y: y}
	}

	slices.SortFunc(entries, func(a, b entry) int {
		return cmp.Or(
			cmp.Compare(a.y, b.y),
			cmp.Compare(a.x, b.x),
			cmp.Compare(a.key, b.key),
		)
	})

	h := sha256.New()
	buf := make([]byte, 8)

	for _, e := range entries {
		h.Write([]byte(e.key))
		h.Write([]byte{0})
		binary.BigEndian.PutUint64(buf, uint64(e.x))
		h.Write(buf)
		binary.BigEndian.PutUint64(buf, uint64(e.y))
		h.Write(buf)
	}

	return fmt.Sprintf("%x", h.Sum(nil))
}
