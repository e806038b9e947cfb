package main

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) enterCommandMode(cmd Command) {
	m.ui.command = CommandInput{cmd: cmd}
	if cmd == CmdFilter && m.data.filterRegex != nil {
		m.ui.command.buf = m.data.filterRegex.String()
	}
	m.ui.mode = modeCommand
}

func (m *model) runCommand() tea.Cmd {
	switch m.ui.command.cmd {
	case CmdJump:
		if n, err := strconv.Atoi(m.ui.command.buf); err == nil {
			return m.jumpToLine(n)
		}
		return m.startNotice("Invalid line number", "warn", noticeDuration)

	case CmdSearch:
		return m.searchOnce(m.ui.command.buf)

	case CmdFilter:
		if err := m.setFilterPattern(m.ui.command.buf); err != nil {
			return m.startNotice(err.Error(), "error", noticeDuration)
		}
		return nil
	}
	return nil
}

func (m *model) exitCommandMode() {
	m.ui.command = CommandInput{}
	m.ui.mode = modeView
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// universal cancel
	if msg.Type == tea.KeyEsc {
		m.exitCommandMode()
		return m, nil
	}

	// single key commands
	switch m.ui.command.cmd {
	case CmdMark:
		return m.handleMarkCommandKey(msg)
	case CmdColumns:
		return m.handleColumnsCommandKey(msg)
	}

	// commit
	if msg.Type == tea.KeyEnter {
		cmd := m.runCommand()
		m.exitCommandMode()
		m.refreshView("command", false)
		return m, cmd
	}

	// editing
	switch msg.Type {
	case tea.KeyBackspace:
		if r := []rune(m.ui.command.buf); len(r) > 0 {
			m.ui.command.buf = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.ui.command.buf += " "
		return m, nil
	}

	// append printable runes
	if msg.Type == tea.KeyRunes {
		m.ui.command.buf += string(msg.Runes)
	}
	return m, nil
}
