package layout

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

type CellKind string

const (
	CellSeat  CellKind = "seat"
	CellEmpty CellKind = "empty"
	CellLabel CellKind = "label"
)

// LabelPosition controls where the row label cell is rendered.
type LabelPosition int

const (
	LabelLeading LabelPosition = 1 << iota
	LabelTrailing

	LabelNone LabelPosition = 0
	LabelBoth               = LabelLeading | LabelTrailing
)

// Cell is a single render descriptor. Key is stable across renders and unique
// within its row.
type Cell[T Positioned] struct {
	Key   string
	Kind  CellKind
	Label string
	Item  *T
}

// RenderRow is one grid row laid out left to right, labels included.
type RenderRow[T Positioned] struct {
	Key   int
	Label string
	Cells []Cell[T]
}

// Template sizes a grid based layout. SeatColumns equal width seat columns are
// flanked by one flexible column for every label side set in Labels, so
// LabelColumns+SeatColumns is the cell count of every rendered row.
type Template struct {
	Labels       LabelPosition
	LabelColumns int
	SeatColumns  int
}

func newTemplate(pos LabelPosition, seatColumns int) Template {
	pos &= LabelBoth

	return Template{
		Labels:       pos,
		LabelColumns: bits.OnesCount(uint(pos)),
		SeatColumns:  seatColumns,
	}
}

// String renders the template as a CSS grid-template-columns value.
func (t Template) String() string {
	parts := make([]string, 0, 3)

	if t.Labels&LabelLeading != 0 {
		parts = append(parts, "auto")
	}
	if t.SeatColumns > 0 {
		parts = append(parts, fmt.Sprintf("repeat(%d, 1fr)", t.SeatColumns))
	}
	if t.Labels&LabelTrailing != 0 {
		parts = append(parts, "auto")
	}

	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, " ")
}

// Presentation is a grid prepared for rendering.
type Presentation[T Positioned] struct {
	Rows     []RenderRow[T]
	Template Template
}

// RowLabeler names a row from its key and cells.
type RowLabeler[T Positioned] func(key int, cells []*T) string

// NumericLabels labels rows with their y coordinate.
func NumericLabels[T Positioned](key int, _ []*T) string {
	return strconv.Itoa(key)
}

// LetterLabels labels rows A..Z, AA..AZ, ... by y coordinate.
func LetterLabels[T Positioned](key int, _ []*T) string {
	return RowLetters(key)
}

// RowLetters converts a zero based index to a spreadsheet style column name.
func RowLetters(n int) string {
	if n < 0 {
		return ""
	}

	var buf []byte
	for n >= 0 {
		buf = append([]byte{byte('A' + n%26)}, buf...)
		n = n/26 - 1
	}

	return string(buf)
}

type presentOptions[T Positioned] struct {
	labeler  RowLabeler[T]
	position LabelPosition
}

type PresentOption[T Positioned] func(*presentOptions[T])

func WithRowLabeler[T Positioned](fn RowLabeler[T]) PresentOption[T] {
	return func(o *presentOptions[T]) {
		if fn != nil {
			o.labeler = fn
		}
	}
}

func WithLabelPosition[T Positioned](p LabelPosition) PresentOption[T] {
	return func(o *presentOptions[T]) {
		o.position = p
	}
}

// Present converts a grid into render rows. A seat cell is keyed by its item
// key, a label cell by its row key and position, and an empty cell by its
// position alone.
func Present[T Positioned](g Grid[T], opts ...PresentOption[T]) Presentation[T] {
	o := presentOptions[T]{
		labeler:  NumericLabels[T],
		position: LabelLeading,
	}

	for _, opt := range opts {
		opt(&o)
	}

	p := Presentation[T]{
		Rows: make([]RenderRow[T], len(g.Rows)),
		Template: newTemplate(o.position, g.Columns()),
	}

	for i, row := range g.Rows {
		label := o.labeler(row.Key, row.Cells)
		cells := make([]Cell[T], 0, len(row.Cells)+2)

		if o.position&LabelLeading != 0 {
			cells = append(cells, labelCell[T](row.Key, len(cells), label))
		}

		for _, item := range row.Cells {
			idx := len(cells)

			if item == nil {
				cells = append(cells, Cell[T]{
					Key:  "empty-" + strconv.Itoa(idx),
					Kind: CellEmpty,
				})
				continue
			}

			cells = append(cells, Cell[T]{
				Key:  "seat-" + (*item).GridKey(),
				Kind: CellSeat,
				Item: item,
			})
		}

		if o.position&LabelTrailing != 0 {
			cells = append(cells, labelCell[T](row.Key, len(cells), label))
		}

		p.Rows[i] = RenderRow[T]{
			Key:   row.Key,
			Label: label,
			Cells: cells,
		}
	}

	return p
}

func labelCell[T Positioned](rowKey, idx int, label string) Cell[T] {
	return Cell[T]{
		Key:   fmt.Sprintf("label-%d-%d", rowKey, idx),
		Kind:  CellLabel,
		Label: label,
	}
}
