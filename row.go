package main

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/andareed/dutyfree-helper/items"
)

type itemRow struct {
	item items.Item
	cols []string // cell text, indexed by columnID
}

func newItemRow(it items.Item, now time.Time) itemRow {
	r := itemRow{
		item: it,
		cols: make([]string, columnCount),
	}
	for id := range columnCount {
		r.cols[id] = cellText(id, it, now)
	}
	return r
}

func (r *itemRow) id() int64 { return r.item.ID }

// refreshTimes re-renders the time-ago cells for now.
func (r *itemRow) refreshTimes(now time.Time) {
	r.cols[colHighTime] = cellText(colHighTime, r.item, now)
	r.cols[colLowTime] = cellText(colLowTime, r.item, now)
}

func (r *itemRow) Join(sep string, colsMeta []ColumnMeta) string {
	var b strings.Builder

	first := true
	for _, meta := range colsMeta {
		if !meta.Visible {
			continue
		}
		if !first {
			b.WriteString(sep)
		}
		b.WriteString(r.cols[meta.ID])
		first = false
	}

	return b.String()
}

// String is the full row text used by regex filter and search, every
// column tab separated regardless of visibility.
func (r *itemRow) String() string {
	return strings.Join(r.cols, "\t")
}

// Render lays out the visible cells on one line, truncating each to its
// column width. Numeric columns are right aligned.
func (r *itemRow) Render(style lipgloss.Style, colsMeta []ColumnMeta) string {
	var rendered []string

	for _, meta := range colsMeta {
		if !meta.Visible || meta.Width <= 0 {
			continue
		}
		text := r.cols[meta.ID]
		inner := meta.Width - style.GetHorizontalFrameSize()
		if inner > 0 {
			text = truncate.StringWithTail(text, uint(inner), "…")
		}
		cs := style.Width(meta.Width)
		if meta.Numeric {
			cs = cs.Align(lipgloss.Right)
		}
		rendered = append(rendered, cs.Render(text))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
