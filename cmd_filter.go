package main

import (
	"fmt"
	"regexp"

	"github.com/andareed/dutyfree-helper/filters"
	"github.com/andareed/dutyfree-helper/logging"
)

func (m *model) setFilterPattern(pattern string) error {
	logging.Infof("Setting Pattern to: %s", pattern)
	if pattern == "" {
		m.data.filterRegex = nil
	} else {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf("invalid filter %q: %w", pattern, err)
		}
		m.data.filterRegex = re
	}
	m.applyFilter()
	return nil
}

// includeRow applies every active filter; they combine with AND.
func (m *model) includeRow(row *itemRow) bool {
	if m.data.showOnlyMarked {
		if _, ok := m.data.markedRows[row.id()]; !ok {
			return false
		}
	}

	if !filters.PassMembers(m.data.members, row.item.Members) {
		return false
	}

	if !filters.PassTimeAgo(m.data.timeAgo, row.item.LowTime, m.now()) {
		return false
	}

	if m.data.filterRegex != nil && !m.data.filterRegex.MatchString(row.String()) {
		return false
	}
	return true
}

// applyFilter rebuilds filteredIndices and keeps the cursor on the same item
// when it is still visible.
func (m *model) applyFilter() {
	selected, hadSelection := m.currentItemID()

	m.data.filteredIndices = m.data.filteredIndices[:0]
	for i := range m.data.rows {
		if m.includeRow(&m.data.rows[i]) {
			m.data.filteredIndices = append(m.data.filteredIndices, i)
		}
	}
	sortIndices(m.data.filteredIndices, m.data.rows, m.data.header, m.data.sort)

	logging.Debugf("applyFilter: %d of %d rows pass", len(m.data.filteredIndices), len(m.data.rows))

	m.cursor = 0
	if hadSelection {
		for i, idx := range m.data.filteredIndices {
			if m.data.rows[idx].id() == selected {
				m.cursor = i
				break
			}
		}
	}
	if len(m.data.filteredIndices) == 0 {
		// No matches; prevent index panics
		m.cursor = -1
	}
	m.refreshView("filter", false)
}

func (m *model) filterLabel() string {
	if m.data.filterRegex != nil && m.data.filterRegex.String() != "" {
		return m.data.filterRegex.String()
	}
	return "None"
}
