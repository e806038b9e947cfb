package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/dutyfree-helper/logging"
)

// columnHints lists the columns that can be toggled, numbered from 1.
func (m *model) columnHints() string {
	var parts []string
	for i, c := range m.data.header {
		if c.Role == RolePrimary {
			continue
		}
		state := "on"
		if !c.Visible {
			state = "off"
		}
		parts = append(parts, fmt.Sprintf("%d:%s(%s)", i+1, c.Name, state))
	}
	return strings.Join(parts, " ")
}

func (m *model) handleColumnsCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return m, nil
	}
	m.exitCommandMode()

	idx := int(k[0] - '1')
	visible, ok := toggleColumn(m.data.header, idx)
	if !ok {
		return m, m.startNotice(fmt.Sprintf("Column %s cannot be toggled", k), "warn", noticeDuration)
	}
	name := m.data.header[idx].Name
	logging.Infof("Column %s visible=%v", name, visible)

	state := "shown"
	if !visible {
		state = "hidden"
		if m.data.sort.column == m.data.header[idx].ID {
			m.data.sort = sortState{}
			m.applyFilter()
		}
	}
	m.resize()
	return m, m.startNotice(name+" "+state, "", noticeDuration)
}
