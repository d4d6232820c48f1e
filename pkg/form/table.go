package form

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-promptform/pkg/layout"
)

// MinColumnWidth is the pixel floor enforced while resizing table columns.
const MinColumnWidth = 40

// TableBinding is the externally supplied runtime data for one table
// component: rows to display plus the selection behaviour. Bindings are not
// form values; only the selected row indices enter the submittable payload.
type TableBinding struct {
	Rows      [][]any
	Selection layout.TableSelection
}

// Bindings maps logical field keys to their table bindings.
type Bindings map[string]TableBinding

// seedTableSelections writes preselected row indices into the value map for
// every bound table that has no value yet.
func (s *Session) seedTableSelections() {
	for _, item := range s.layout.Items {
		if item.Type != layout.TypeTable {
			continue
		}
		key := item.FieldKey()
		binding, ok := s.bindings[key]
		if !ok || len(binding.Selection.Preselected) == 0 {
			continue
		}
		if _, exists := s.values[key]; exists {
			continue
		}
		switch binding.Selection.Mode {
		case layout.TableSelectionSingle:
			s.values[key] = binding.Selection.Preselected[0]
		case layout.TableSelectionMulti:
			s.values[key] = append([]int(nil), binding.Selection.Preselected...)
		}
	}
}

// Binding returns the table binding for a logical field key.
func (s *Session) Binding(key string) (TableBinding, bool) {
	binding, ok := s.bindings[key]
	return binding, ok
}

// SelectRow records a table row selection. Single mode stores the row index
// and replaces any previous choice; multi mode toggles the index in the
// stored index set; none mode rejects the write (the table is display-only).
func (s *Session) SelectRow(itemID string, row int) error {
	if s.readOnly {
		return ErrReadOnly
	}
	item, ok := s.layout.Item(itemID)
	if !ok || item.Type != layout.TypeTable {
		return fmt.Errorf("form: %q is not a table component", itemID)
	}
	key := item.FieldKey()
	binding, ok := s.bindings[key]
	if !ok {
		return fmt.Errorf("form: table %q has no binding", key)
	}
	if row < 0 || row >= len(binding.Rows) {
		return fmt.Errorf("form: row %d out of range for table %q", row, key)
	}

	switch binding.Selection.Mode {
	case layout.TableSelectionSingle:
		s.values[key] = row
	case layout.TableSelectionMulti:
		current, _ := s.values[key].([]int)
		s.values[key] = toggleIndex(current, row)
	default:
		return fmt.Errorf("form: table %q does not allow selection", key)
	}
	s.emit(key, s.values[key])
	return nil
}

func toggleIndex(indices []int, row int) []int {
	for i, idx := range indices {
		if idx == row {
			return append(append([]int(nil), indices[:i]...), indices[i+1:]...)
		}
	}
	out := append([]int(nil), indices...)
	return append(out, row)
}

// TableState is the ephemeral per-session UI state of one table component:
// column display order and per-column pixel widths. It lives outside the
// persisted layout and outside the form values by design.
type TableState struct {
	order  []int
	widths map[int]int
}

// Table returns (lazily creating) the ephemeral table state for a placed
// table component, keyed by structural item id.
func (s *Session) Table(itemID string) (*TableState, error) {
	if state, ok := s.tables[itemID]; ok {
		return state, nil
	}
	item, ok := s.layout.Item(itemID)
	if !ok || item.Type != layout.TypeTable {
		return nil, fmt.Errorf("form: %q is not a table component", itemID)
	}

	state := &TableState{
		order:  make([]int, len(item.Config.Columns)),
		widths: make(map[int]int, len(item.Config.Columns)),
	}
	for i, col := range item.Config.Columns {
		state.order[i] = i
		if col.Width > 0 {
			state.widths[i] = col.Width
		}
	}
	s.tables[itemID] = state
	s.logger.Debug("table state created", zap.String("item", itemID))
	return state, nil
}

// Order returns the current column display order as indices into the
// component's configured columns.
func (t *TableState) Order() []int {
	return append([]int(nil), t.order...)
}

// MoveColumn splices the dragged column out of the order and re-inserts it
// at the target position, shifting the columns in between. Out-of-range
// positions are no-ops.
func (t *TableState) MoveColumn(from, to int) {
	if from == to || from < 0 || to < 0 || from >= len(t.order) || to >= len(t.order) {
		return
	}
	moved := t.order[from]
	order := append(t.order[:from:from], t.order[from+1:]...)
	order = append(order[:to:to], append([]int{moved}, order[to:]...)...)
	t.order = order
}

// Width returns the current pixel width for a column index; ok is false when
// the column has no explicit width yet.
func (t *TableState) Width(column int) (int, bool) {
	width, ok := t.widths[column]
	return width, ok
}

// SetWidth stores a column width, clamped to the minimum.
func (t *TableState) SetWidth(column, width int) {
	if column < 0 {
		return
	}
	if width < MinColumnWidth {
		width = MinColumnWidth
	}
	t.widths[column] = width
}

// ColumnResize is a pointer-capture session for one column resize gesture.
// Start it on pointer-down, feed it pointer positions, and always End or
// Dispose it on pointer-up or teardown so no gesture state lingers.
type ColumnResize struct {
	table      *TableState
	column     int
	startX     int
	startWidth int
	done       bool
}

// ResizeColumn begins a resize gesture at the given pointer x position.
func (t *TableState) ResizeColumn(column, startX int) *ColumnResize {
	width, ok := t.widths[column]
	if !ok {
		width = MinColumnWidth * 3
	}
	return &ColumnResize{
		table:      t,
		column:     column,
		startX:     startX,
		startWidth: width,
	}
}

// Update applies the current pointer x position, committing the clamped
// width continuously so the rendered table tracks the drag.
func (r *ColumnResize) Update(x int) {
	if r == nil || r.done {
		return
	}
	r.table.SetWidth(r.column, r.startWidth+(x-r.startX))
}

// End finishes the gesture.
func (r *ColumnResize) End() {
	if r != nil {
		r.done = true
	}
}

// Dispose aborts the gesture without a final commit; safe to call after End.
func (r *ColumnResize) Dispose() {
	r.End()
}
