package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"

	"github.com/andareed/dutyfree-helper/logging"
)

func (m *model) gutterWidth() int {
	return utf8.RuneCountInString(pillMarker) + len(strconv.Itoa(len(m.data.rows))) + 1
}

func (m *model) headerView() string {
	var cells []string

	for _, col := range m.data.header {
		if !col.Visible || col.Width <= 0 {
			continue
		}

		style := cellStyle
		name := col.Name
		if col.ID == m.data.sort.column && m.data.sort.dir != sortNone {
			name += " " + m.data.sort.dir.arrow()
			style = style.Inherit(sortHeaderStyle)
		}
		if col.Numeric {
			style = style.Align(lipgloss.Right)
		}
		cells = append(cells, style.Width(col.Width).Render(name))
	}

	headerRow := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	return headerStyle.Render(
		strings.Repeat(" ", m.gutterWidth()) + headerRow,
	)
}

// sourceLabel says where the rows came from and how old they are.
func (m *model) sourceLabel() string {
	if m.data.fetchedAt.IsZero() {
		if m.data.fetching {
			return "fetching…"
		}
		return ""
	}
	origin := "live"
	if m.data.fromCache {
		origin = "cached"
	}
	if m.client == nil {
		origin = "offline"
	}
	label := fmt.Sprintf("%s · %s", origin, humanize.RelTime(m.data.fetchedAt, m.now(), "ago", "from now"))
	if m.data.fetching {
		label += " · refreshing"
	}
	return label
}

func (m *model) filterSummary() string {
	return strings.Join([]string{
		"Members: " + m.membersLabel(),
		m.timeAgoStatusLabel(),
		m.sortLabel(),
	}, " · ")
}

// footerView renders the 2-line footer. width is the content width.
func (m *model) footerView(width int) string {
	st := footerState{
		Mode:        "NORMAL",
		Source:      m.sourceLabel(),
		FilterLabel: m.filterLabel(),
		MarksOnly:   m.data.showOnlyMarked,
		Row:         m.cursor + 1,
		ShownRows:   len(m.data.filteredIndices),
		TotalItems:  len(m.data.rows),
		Legend:      "(? help · b members · t low time · [ ] s sort · a/p calc · e export)",
	}
	switch m.ui.mode {
	case modeCommand:
		st.Mode = commandLabel(m.ui.command.cmd)
		st.ModeInput = m.activeCommandLine()
		st.Legend = m.commandHintsLine(m.ui.command.cmd)
	case modeTimeAgo:
		st.Mode = "LOW TIME"
	}

	st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	if st.StatusMessage == "" {
		st.StatusMessage = m.filterSummary()
	}

	if logging.IsDebugMode() {
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d vp=%dx%d cur=%d vis=%d-%d",
			m.terminalWidth, m.terminalHeight, m.viewport.Width, m.viewport.Height,
			m.cursor, m.ui.visibleStart, m.ui.visibleEnd,
		)
	}

	return renderFooter(width, st, defaultFooterStyles())
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		w, h := m.terminalWidth, m.terminalHeight
		return lipgloss.Place(
			w, h,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	bordered := tableStyle.Render(m.viewport.View())
	contentW := lipgloss.Width(bordered)

	parts := []string{m.headerView(), bordered}
	if m.ui.timeAgo.open {
		parts = append(parts, m.timeAgoDrawerView(contentW))
	}
	parts = append(parts, m.footerView(contentW)) // always
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderRowAt renders the filtered row at filteredIdx as one line: mark
// pill, row number, then the visible cells.
func (m *model) renderRowAt(filteredIdx int) string {
	selected := filteredIdx == m.cursor
	numStyle := rowStyle
	rowPrefix := bgSeq(lipgloss.Color("")) + fgSeq(lipgloss.Color(rowTextFGColor))
	if selected {
		numStyle = rowSelectedStyle
		rowPrefix = bgSeq(lipgloss.Color(rowSelectedBGColor)) + fgSeq(lipgloss.Color(rowSelectedTextFGColor))
	}

	row := m.data.rows[m.data.filteredIndices[filteredIdx]]
	numberWidth := m.gutterWidth() - utf8.RuneCountInString(pillMarker)

	// The mark resets any background, so it has to come before the row styling
	gutter := m.getRowMarker(row.id()) + numStyle.Render(fmt.Sprintf("%*d ", numberWidth-1, filteredIdx+1))

	if m.ui.searchQuery != "" {
		cols := make([]string, len(row.cols))
		for i, col := range row.cols {
			cols[i] = highlightMatches(col, m.ui.searchQuery)
		}
		row.cols = cols
	}
	line := row.Render(cellStyle, m.data.header)
	if m.ui.searchQuery != "" {
		line = restoreRowStyleAfterReset(line, rowPrefix)
	}
	return gutter + rowPrefix + line + termenv.CSI + "0m"
}

func highlightMatches(text string, query string) string {
	q := strings.TrimSpace(query)
	if q == "" || text == "" {
		return text
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(q)
	var b strings.Builder
	start := 0
	for {
		idx := strings.Index(lowerText[start:], lowerQuery)
		if idx == -1 {
			b.WriteString(text[start:])
			break
		}
		idx += start
		b.WriteString(text[start:idx])
		match := text[idx : idx+len(lowerQuery)]
		b.WriteString(searchHighlight.Render(match))
		start = idx + len(lowerQuery)
	}
	return b.String()
}

func restoreRowStyleAfterReset(s string, rowPrefix string) string {
	if rowPrefix == "" {
		return s
	}
	reset := termenv.CSI + "0m"
	if !strings.Contains(s, reset) {
		return s
	}
	return strings.ReplaceAll(s, reset, reset+rowPrefix)
}

func fgSeq(c lipgloss.Color) string {
	return colorSeq(c, false)
}

func bgSeq(c lipgloss.Color) string {
	return colorSeq(c, true)
}

func colorSeq(c lipgloss.Color, bg bool) string {
	value := string(c)
	if value == "" {
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	profile := lipgloss.ColorProfile()
	tc := profile.Color(value)
	if tc == nil {
		return ""
	}
	return termenv.CSI + tc.Sequence(bg) + "m"
}

func (m *model) getRowMarker(id int64) string {
	switch m.data.markedRows[id] {
	case MarkRed:
		return redMarker.Render(pillMarker)
	case MarkGreen:
		return greenMarker.Render(pillMarker)
	case MarkAmber:
		return amberMarker.Render(pillMarker)
	default:
		return defaultMarker
	}
}

func (m *model) renderViewport() string {
	n := len(m.data.filteredIndices)
	if n == 0 {
		return emptyStyle.Render(m.emptyMessage())
	}
	m.cursor = clamp(m.cursor, 0, n-1)

	start, end := visibleWindow(m.cursor, n, m.viewport.Height)
	m.ui.visibleStart, m.ui.visibleEnd = start, end-1
	m.lastVisibleRowCount = end - start

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(m.renderRowAt(i))
		b.WriteByte('\n')
	}
	return b.String()
}

// visibleWindow returns the half-open range of rows to draw so the cursor
// sits in the middle of a viewport of height lines, pinned at either end.
func visibleWindow(cursor, n, height int) (start, end int) {
	if height <= 0 || n <= 0 {
		return 0, 0
	}
	if n <= height {
		return 0, n
	}
	start = clamp(cursor-(height-1)/2, 0, n-height)
	return start, start + height
}
