package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/dutyfree-helper/logging"
)

func (m *model) checkViewPortHasData() bool {
	return len(m.data.filteredIndices) > 0
}

func (m *model) jumpToStart() {
	if !m.checkViewPortHasData() {
		return
	}
	m.cursor = 0
}

func (m *model) jumpToEnd() {
	if !m.checkViewPortHasData() {
		return
	}
	m.cursor = len(m.data.filteredIndices) - 1
}

// jumpToLine selects the row at lineNo (1-based) of the current view.
func (m *model) jumpToLine(lineNo int) tea.Cmd {
	logging.Debugf("jumpToLine %d", lineNo)
	if !m.checkViewPortHasData() {
		return nil
	}
	if lineNo <= 0 || lineNo > len(m.data.filteredIndices) {
		return m.startNotice(fmt.Sprintf("Line %d out of bounds", lineNo), "warn", noticeDuration)
	}
	m.cursor = lineNo - 1
	return nil
}

func (m *model) moveCursor(delta int) {
	if !m.checkViewPortHasData() {
		return
	}
	m.cursor = clamp(m.cursor+delta, 0, len(m.data.filteredIndices)-1)
}

func (m *model) pageDown() {
	m.moveCursor(max(1, m.lastVisibleRowCount))
}

func (m *model) pageUp() {
	m.moveCursor(-max(1, m.lastVisibleRowCount))
}
