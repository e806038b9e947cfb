package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/dutyfree-helper/filters"
	"github.com/andareed/dutyfree-helper/logging"
)

// cycleMembersFilter steps the members filter all -> members -> non-members.
// With no filter set it starts at members only.
func (m *model) cycleMembersFilter() tea.Cmd {
	if m.data.members == nil {
		m.data.members = &filters.MembersModel{Value: filters.MembersAll}
	}
	m.data.members.Value = m.data.members.Value.Next()
	logging.Infof("Members filter set to %s", m.data.members.Value)
	m.applyFilter()
	return m.startNotice("Members: "+m.data.members.Value.Label(), "info", noticeDuration)
}

func (m *model) clearMembersFilter() tea.Cmd {
	if m.data.members == nil {
		return nil
	}
	m.data.members = nil
	logging.Infof("Members filter cleared")
	m.applyFilter()
	return m.startNotice("Members filter cleared", "", noticeDuration)
}

func (m *model) membersLabel() string {
	if m.data.members == nil {
		return filters.MembersAll.Label()
	}
	return m.data.members.Value.Label()
}
