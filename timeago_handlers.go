package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/dutyfree-helper/calc"
	"github.com/andareed/dutyfree-helper/filters"
	"github.com/andareed/dutyfree-helper/logging"
)

func (m *model) openTimeAgoDrawer() {
	tw := &m.ui.timeAgo
	tw.open = true
	tw.errorMsg = ""

	if m.data.timeAgo != nil {
		tw.draft = *m.data.timeAgo
	} else {
		tw.draft = filters.DefaultTimeAgoModel()
	}

	m.updateTimeAgoInputFromDraft()
	m.setTimeAgoFocus(timeAgoFocusComparison)
	m.ui.mode = modeTimeAgo
	m.resize()
}

func (m *model) closeTimeAgoDrawer() {
	m.ui.timeAgo.open = false
	m.ui.timeAgo.errorMsg = ""
	m.ui.timeAgo.magnitude.Blur()
	m.ui.mode = modeView
	m.resize()
}

func (m *model) handleTimeAgoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tw := &m.ui.timeAgo

	switch {
	case msg.Type == tea.KeyEsc:
		m.closeTimeAgoDrawer()
		return m, nil
	case msg.Type == tea.KeyEnter:
		return m, m.applyTimeAgoFromDraft()
	case msg.Type == tea.KeyCtrlR:
		return m, m.resetTimeAgo()
	case msg.Type == tea.KeyTab:
		m.setTimeAgoFocus((tw.focus + 1) % timeAgoFocusCount)
		return m, nil
	case msg.Type == tea.KeyShiftTab:
		m.setTimeAgoFocus((tw.focus + timeAgoFocusCount - 1) % timeAgoFocusCount)
		return m, nil
	case msg.Type == tea.KeyLeft || msg.Type == tea.KeyRight:
		step := 1
		if msg.Type == tea.KeyLeft {
			step = -1
		}
		m.cycleTimeAgoOption(step)
		return m, nil
	}

	if tw.focus != timeAgoFocusMagnitude {
		return m, nil
	}
	var cmd tea.Cmd
	tw.magnitude, cmd = tw.magnitude.Update(msg)
	return m, cmd
}

func (m *model) setTimeAgoFocus(focus int) {
	tw := &m.ui.timeAgo
	m.syncTimeAgoDraftFromInput()
	tw.focus = focus
	if focus == timeAgoFocusMagnitude {
		tw.magnitude.Focus()
		tw.magnitude.CursorEnd()
	} else {
		tw.magnitude.Blur()
	}
}

func cycle[T comparable](opts []T, cur T, step int) T {
	i := slices.Index(opts, cur)
	if i < 0 {
		return opts[0]
	}
	n := len(opts)
	return opts[((i+step)%n+n)%n]
}

// cycleTimeAgoOption moves the focused option by step. On the magnitude it
// nudges the number instead.
func (m *model) cycleTimeAgoOption(step int) {
	tw := &m.ui.timeAgo
	tw.errorMsg = ""
	switch tw.focus {
	case timeAgoFocusComparison:
		tw.draft.Comparison = cycle(filters.Comparisons, tw.draft.Comparison, step)
	case timeAgoFocusUnit:
		tw.draft.Unit = cycle(filters.Units, tw.draft.Unit, step)
	case timeAgoFocusMagnitude:
		m.syncTimeAgoDraftFromInput()
		tw.draft.Magnitude = max(1, tw.draft.Magnitude+float64(step))
		m.updateTimeAgoInputFromDraft()
	}
}

func (m *model) updateTimeAgoInputFromDraft() {
	tw := &m.ui.timeAgo
	tw.magnitude.SetValue(strconv.FormatFloat(tw.draft.Magnitude, 'f', -1, 64))
	tw.magnitude.CursorEnd()
}

// syncTimeAgoDraftFromInput parses the magnitude text. Anything that is not a
// number of at least 1 becomes 1.
func (m *model) syncTimeAgoDraftFromInput() {
	tw := &m.ui.timeAgo
	n := calc.ParseInt(strings.TrimSpace(tw.magnitude.Value()))
	if n < 1 {
		n = 1
	}
	tw.draft.Magnitude = float64(n)
}

func (m *model) resetTimeAgo() tea.Cmd {
	tw := &m.ui.timeAgo
	tw.errorMsg = ""
	tw.draft = filters.DefaultTimeAgoModel()
	m.updateTimeAgoInputFromDraft()

	if m.data.timeAgo == nil {
		return nil
	}
	m.data.timeAgo = nil
	logging.Infof("Time-ago filter reset and disabled")
	m.applyFilter()
	return m.startNotice("Time filter off", "", noticeDuration)
}

func (m *model) applyTimeAgoFromDraft() tea.Cmd {
	tw := &m.ui.timeAgo
	tw.errorMsg = ""
	m.syncTimeAgoDraftFromInput()

	if err := tw.draft.Validate(); err != nil {
		tw.errorMsg = err.Error()
		return nil
	}

	applied := tw.draft
	m.data.timeAgo = &applied
	logging.Infof("Time-ago filter applied: %s", applied)
	m.closeTimeAgoDrawer()
	m.applyFilter()
	return m.startNotice("Low Time "+applied.String(), "info", noticeDuration)
}

func (m *model) clearTimeAgoFilter() tea.Cmd {
	if m.data.timeAgo == nil {
		return nil
	}
	m.data.timeAgo = nil
	m.applyFilter()
	return m.startNotice("Time filter cleared", "", noticeDuration)
}

func (m *model) timeAgoDrawerView(width int) string {
	tw := &m.ui.timeAgo
	innerWidth := max(0, width-2)
	lineStyle := lipgloss.NewStyle().Width(innerWidth)
	focused := lipgloss.NewStyle().Reverse(true)

	option := func(focus int, text string) string {
		if tw.focus == focus {
			return focused.Render("‹ " + text + " ›")
		}
		return "  " + text + "  "
	}
	magnitude := tw.magnitude.View()
	if tw.focus == timeAgoFocusMagnitude {
		magnitude = "[" + magnitude + "]"
	} else {
		magnitude = " " + magnitude + " "
	}

	editLine := fmt.Sprintf("Low Time  %s %s %s ago",
		option(timeAgoFocusComparison, tw.draft.Comparison.Label()),
		magnitude,
		option(timeAgoFocusUnit, tw.draft.Unit.Label()),
	)
	helpLine := "tab: next  ←/→: change  enter: apply  ctrl+r: reset  esc: cancel"
	errorLine := ""
	if tw.errorMsg != "" {
		errorLine = "Error: " + tw.errorMsg
	}

	lines := []string{
		lineStyle.Render(editLine),
		lineStyle.Render(m.timeAgoStatusLabel()),
		lineStyle.Render(helpLine),
		lineStyle.Render(errorLine),
	}

	return timeAgoArea.Width(width).Render(strings.Join(lines, "\n"))
}

func (m *model) timeAgoStatusLabel() string {
	if m.data.timeAgo == nil {
		return "Low Time: any"
	}
	return "Low Time: " + m.data.timeAgo.String()
}
