package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/dutyfree-helper/logging"
)

type clearNoticeMsg struct{ id int }

const noticeDuration = 2 * time.Second

func noticeText(msg, kind string) string {
	if msg == "" {
		return ""
	}
	var icon string
	switch kind {
	case "info":
		icon = "ℹ"
	case "success":
		icon = "✓"
	case "warn":
		icon = "!"
	case "error":
		icon = "×"
	}
	if icon == "" {
		return msg
	}
	return icon + " " + msg
}

// startNotice shows msg in the footer and schedules its removal after d.
// A newer notice replaces an older one along with its pending clear.
func (m *model) startNotice(msg, kind string, d time.Duration) tea.Cmd {
	switch kind {
	case "warn":
		logging.Warnf("Notice: %s", msg)
	case "error":
		logging.Errorf("Notice: %s", msg)
	default:
		logging.Debugf("Notice: %s", msg)
	}

	m.ui.noticeMsg = msg
	m.ui.noticeType = kind

	m.ui.noticeSeq++
	id := m.ui.noticeSeq

	return tea.Tick(d, func(time.Time) tea.Msg { return clearNoticeMsg{id: id} })
}
