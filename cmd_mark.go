package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/dutyfree-helper/logging"
)

// MarkCurrent sets the mark on the selected item and returns the command that
// persists it, or nil when nothing changed.
func (m *model) MarkCurrent(colour MarkColor) tea.Cmd {
	row := m.currentRow()
	if row == nil {
		return nil
	}
	id := row.id()
	if colour == MarkNone {
		if _, ok := m.data.markedRows[id]; !ok {
			return nil
		}
		delete(m.data.markedRows, id)
		logging.Infof("Cursor: %d with item ID %d has been unmarked", m.cursor, id)
	} else {
		logging.Infof("Cursor: %d with item ID %d is being marked with color %s", m.cursor, id, colour)
		m.data.markedRows[id] = colour
	}
	return m.saveMarkCmd(id, colour)
}

func (m *model) handleMarkCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mark, ok := markFromKey(msg.String())
	if !ok {
		// Unhandled keys: stay in mark mode, do nothing
		return m, nil
	}
	m.exitCommandMode()

	persist := m.MarkCurrent(mark)
	if m.data.showOnlyMarked {
		m.applyFilter()
	} else {
		m.refreshView("mark", false)
	}

	label := string(mark)
	if mark == MarkNone {
		label = "cleared"
	}
	return m, tea.Batch(persist, m.startNotice(
		fmt.Sprintf("Row %d marked [%s]", m.cursor+1, label),
		"",
		noticeDuration,
	))
}

func (m *model) toggleMarksOnly() tea.Cmd {
	m.data.showOnlyMarked = !m.data.showOnlyMarked
	logging.Infof("Show marks only: %v", m.data.showOnlyMarked)
	m.applyFilter()
	if m.data.showOnlyMarked && len(m.data.filteredIndices) == 0 {
		return m.startNotice("No marked rows", "warn", noticeDuration)
	}
	return nil
}

func (m *model) jumpToNextMark() {
	if !m.checkViewPortHasData() {
		return
	}
	for i := m.cursor + 1; i < len(m.data.filteredIndices); i++ {
		row := &m.data.rows[m.data.filteredIndices[i]]
		if _, ok := m.data.markedRows[row.id()]; ok {
			logging.Debugf("Next mark found at %d", i)
			m.cursor = i
			return
		}
	}
	logging.Debug("No next mark has been found")
}

func (m *model) jumpToPreviousMark() {
	if !m.checkViewPortHasData() {
		return
	}
	for i := m.cursor - 1; i >= 0; i-- {
		row := &m.data.rows[m.data.filteredIndices[i]]
		if _, ok := m.data.markedRows[row.id()]; ok {
			logging.Debugf("Previous mark found at %d", i)
			m.cursor = i
			return
		}
	}
	logging.Debug("No previous mark has been found")
}
