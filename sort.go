package main

import (
	"cmp"
	"slices"
	"strings"

	"github.com/andareed/dutyfree-helper/logging"
)

func (d sortDir) next() sortDir {
	switch d {
	case sortNone:
		return sortAsc
	case sortAsc:
		return sortDesc
	default:
		return sortNone
	}
}

func (d sortDir) arrow() string {
	switch d {
	case sortAsc:
		return "▲"
	case sortDesc:
		return "▼"
	default:
		return ""
	}
}

// sortIndices orders indices (into rows) by the sort column. The sort is
// stable so equal keys keep API order.
func sortIndices(indices []int, rows []itemRow, cols []ColumnMeta, st sortState) {
	if st.dir == sortNone || int(st.column) >= len(cols) {
		return
	}
	meta := cols[st.column]

	compare := func(a, b int) int {
		ra, rb := &rows[a], &rows[b]
		if meta.Numeric {
			return cmp.Compare(numericKey(meta.ID, ra.item), numericKey(meta.ID, rb.item))
		}
		return strings.Compare(strings.ToLower(ra.cols[meta.ID]), strings.ToLower(rb.cols[meta.ID]))
	}

	slices.SortStableFunc(indices, func(a, b int) int {
		c := compare(a, b)
		if st.dir == sortDesc {
			return -c
		}
		return c
	})
}

// moveSortColumn steps the sort column over visible columns by delta,
// wrapping at either end.
func (m *model) moveSortColumn(delta int) {
	cols := m.data.header
	n := len(cols)
	if n == 0 {
		return
	}
	i := int(m.data.sort.column)
	for range n {
		i = ((i+delta)%n + n) % n
		if cols[i].Visible {
			break
		}
	}
	m.data.sort.column = cols[i].ID
	logging.Debugf("Sort column now %s (%d)", cols[i].Name, m.data.sort.dir)
	if m.data.sort.dir != sortNone {
		m.applyFilter()
	}
}

func (m *model) cycleSortDir() {
	m.data.sort.dir = m.data.sort.dir.next()
	logging.Infof("Sort on %s set to %d", m.sortColumnName(), m.data.sort.dir)
	m.applyFilter()
}

func (m *model) sortColumnName() string {
	if int(m.data.sort.column) < len(m.data.header) {
		return m.data.header[m.data.sort.column].Name
	}
	return ""
}

func (m *model) sortLabel() string {
	if m.data.sort.dir == sortNone {
		return "Sort: off"
	}
	return "Sort: " + m.sortColumnName() + " " + m.data.sort.dir.arrow()
}
