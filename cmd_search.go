package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// searchOnce moves the cursor to the first visible row after the cursor that
// contains query, wrapping to the top.
func (m *model) searchOnce(query string) tea.Cmd {
	m.ui.searchQuery = strings.TrimSpace(query)
	if m.ui.searchQuery == "" {
		return nil
	}
	n := len(m.data.filteredIndices)
	q := strings.ToLower(m.ui.searchQuery)

	for step := 1; step <= n; step++ {
		i := (m.cursor + step) % n
		row := &m.data.rows[m.data.filteredIndices[i]]
		if strings.Contains(strings.ToLower(row.String()), q) {
			m.cursor = i
			return nil
		}
	}
	return m.startNotice("No match for "+m.ui.searchQuery, "warn", noticeDuration)
}
