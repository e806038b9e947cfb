package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// footerState is everything the two footer lines show. The first line is the
// control bar (mode pill, data source, filter and marks state, item
// position); the second carries notices and the key legend.
type footerState struct {
	Mode      string
	ModeInput string

	Source string

	FilterLabel string
	MarksOnly   bool

	Row        int
	ShownRows  int
	TotalItems int

	StatusMessage string
	Legend        string
}

type footerStyles struct {
	Bar      lipgloss.Style
	ModePill lipgloss.Style
	Source   lipgloss.Style
	Dim      lipgloss.Style
	Status   lipgloss.Style
	Legend   lipgloss.Style
}

func defaultFooterStyles() footerStyles {
	bar := lipgloss.Color("#2b2b2b")
	status := lipgloss.Color("#000000")
	return footerStyles{
		Bar:      lipgloss.NewStyle().Background(bar).Foreground(lipgloss.Color("#cfcfcf")),
		ModePill: lipgloss.NewStyle().Background(lipgloss.Color("#ff9f1c")).Foreground(lipgloss.Color("#000000")).Bold(true),
		Source:   lipgloss.NewStyle().Background(bar).Foreground(lipgloss.Color("#e0e0e0")),
		Dim:      lipgloss.NewStyle().Background(bar).Foreground(lipgloss.Color("#a0a0a0")),
		Status:   lipgloss.NewStyle().Background(status).Foreground(lipgloss.Color("#9a9a9a")),
		Legend:   lipgloss.NewStyle().Background(status).Foreground(lipgloss.Color("#b0b0b0")),
	}
}

func renderFooter(width int, st footerState, styles footerStyles) string {
	if width <= 0 {
		return ""
	}
	if st.FilterLabel == "" {
		st.FilterLabel = "None"
	}
	if st.Mode == "" {
		st.Mode = "NORMAL"
	}
	if st.Legend == "" {
		st.Legend = "(? help)"
	}
	st.Row = max(0, st.Row)
	st.ShownRows = max(0, st.ShownRows)
	st.TotalItems = max(st.ShownRows, st.TotalItems)

	return renderControlBar(width, st, styles) + "\n" + renderStatusBar(width, st, styles)
}

// fit truncates s to w cells and pads it out to exactly w.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = truncate.String(s, uint(w))
	if pad := w - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func positionText(st footerState) string {
	if st.ShownRows == st.TotalItems {
		return fmt.Sprintf(" Row %d/%d ", st.Row, st.ShownRows)
	}
	return fmt.Sprintf(" Row %d/%d (of %d) ", st.Row, st.ShownRows, st.TotalItems)
}

func renderControlBar(width int, st footerState, styles footerStyles) string {
	const gap = 1

	right := truncate.String(positionText(st), uint(width))
	leftW := max(0, width-lipgloss.Width(right))

	pill := " " + st.Mode + " "
	pillW := min(lipgloss.Width(pill), clamp(leftW/4, 10, 36))

	status := fmt.Sprintf("[FILTER: %s] · [MARKS ONLY: %t]", truncate.StringWithTail(st.FilterLabel, 16, "…"), st.MarksOnly)
	statusW := min(lipgloss.Width(status), max(0, leftW-pillW-gap))

	sourceW := max(0, leftW-pillW-statusW-2*gap)
	source := "▸ " + strings.TrimSpace(st.Source)
	if strings.TrimSpace(st.Source) == "" {
		source = "▸ (no data)"
	}
	if input := strings.TrimSpace(st.ModeInput); input != "" {
		source += " ▸ " + input
	}

	var b strings.Builder
	b.WriteString(styles.ModePill.Render(fit(pill, pillW)))
	b.WriteString(styles.Bar.Render(strings.Repeat(" ", gap)))
	b.WriteString(styles.Source.Render(fit(source, sourceW)))
	b.WriteString(styles.Bar.Render(strings.Repeat(" ", gap)))
	b.WriteString(styles.Dim.Render(fit(status, statusW)))
	b.WriteString(styles.Bar.Render(right))
	return fit(b.String(), width)
}

func renderStatusBar(width int, st footerState, styles footerStyles) string {
	legend := truncate.String(st.Legend, uint(width))
	msgW := max(0, width-lipgloss.Width(legend))
	return styles.Status.Render(fit(st.StatusMessage, msgW)) + styles.Legend.Render(legend)
}

func commandLabel(cmd Command) string {
	switch cmd {
	case CmdJump:
		return "JUMP"
	case CmdSearch:
		return "SEARCH"
	case CmdFilter:
		return "FILTER"
	case CmdMark:
		return "MARK"
	case CmdColumns:
		return "COLUMNS"
	default:
		return "NORMAL"
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
