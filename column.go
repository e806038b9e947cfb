package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/andareed/dutyfree-helper/filters"
	"github.com/andareed/dutyfree-helper/items"
)

type columnID int

const (
	colName columnID = iota
	colMembers
	colLimit
	colHigh
	colLow
	colMargin
	colVolume
	colHighTime
	colLowTime
	columnCount
)

type ColumnRole int

const (
	RoleNormal  ColumnRole = iota
	RolePrimary            // Name
	RoleSecondary
)

type ColumnMeta struct {
	ID       columnID
	Name     string
	Role     ColumnRole
	Numeric  bool
	Visible  bool
	MinWidth int
	Weight   float64
	Width    int
}

var columnNames = [columnCount]string{
	colName:     "Name",
	colMembers:  "Members",
	colLimit:    "Limit",
	colHigh:     "High",
	colLow:      "Low",
	colMargin:   "Margin",
	colVolume:   "Volume",
	colHighTime: "High Time",
	colLowTime:  "Low Time",
}

func roleFor(id columnID) ColumnRole {
	switch id {
	case colName:
		return RolePrimary
	case colHighTime, colLowTime:
		return RoleSecondary
	default:
		return RoleNormal
	}
}

func defaultMinWidthForRole(r ColumnRole) int {
	switch r {
	case RolePrimary:
		return 24
	case RoleSecondary:
		return 16
	default:
		return 9
	}
}

func defaultWeightForRole(r ColumnRole) float64 {
	switch r {
	case RolePrimary:
		return 4.0
	case RoleSecondary:
		return 1.5
	default:
		return 1.0
	}
}

func defaultColumns() []ColumnMeta {
	cols := make([]ColumnMeta, columnCount)
	for i := range cols {
		id := columnID(i)
		role := roleFor(id)
		cols[i] = ColumnMeta{
			ID:       id,
			Name:     columnNames[id],
			Role:     role,
			Numeric:  id != colName,
			Visible:  true,
			MinWidth: defaultMinWidthForRole(role),
			Weight:   defaultWeightForRole(role),
		}
	}
	return cols
}

func normaliseColumnName(s string) string {
	r := strings.NewReplacer(" ", "", "_", "", "-", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(s)))
}

// findColumn looks a column up by display name, ignoring case, spaces,
// underscores and dashes ("high_time" finds "High Time").
func findColumn(cols []ColumnMeta, name string) (int, bool) {
	want := normaliseColumnName(name)
	for i := range cols {
		if normaliseColumnName(cols[i].Name) == want {
			return i, true
		}
	}
	return -1, false
}

// hideColumns hides the named columns. The primary column cannot be hidden.
func hideColumns(cols []ColumnMeta, names []string) error {
	for _, name := range names {
		i, ok := findColumn(cols, name)
		if !ok {
			return fmt.Errorf("unknown column %q", name)
		}
		if cols[i].Role == RolePrimary {
			return fmt.Errorf("column %q cannot be hidden", cols[i].Name)
		}
		cols[i].Visible = false
		cols[i].Width = 0
	}
	return nil
}

// toggleColumn flips the visibility of the column at idx and reports the new
// state. ok is false if idx is out of range or names the primary column.
func toggleColumn(cols []ColumnMeta, idx int) (visible bool, ok bool) {
	if idx < 0 || idx >= len(cols) || cols[idx].Role == RolePrimary {
		return false, false
	}
	cols[idx].Visible = !cols[idx].Visible
	if !cols[idx].Visible {
		cols[idx].Width = 0
	}
	return cols[idx].Visible, true
}

func membersText(b *bool) string {
	switch {
	case b == nil:
		return ""
	case *b:
		return "Yes"
	default:
		return "No"
	}
}

// cellText renders one column of it as plain text.
func cellText(id columnID, it items.Item, now time.Time) string {
	switch id {
	case colName:
		return it.Name
	case colMembers:
		return membersText(it.Members)
	case colLimit:
		return humanize.Comma(it.Limit)
	case colHigh:
		return humanize.Comma(it.High)
	case colLow:
		return humanize.Comma(it.Low)
	case colMargin:
		return humanize.Comma(it.Margin)
	case colVolume:
		return humanize.Comma(it.Volume)
	case colHighTime:
		return filters.FormatTimeAgo(it.HighTime, now)
	case colLowTime:
		return filters.FormatTimeAgo(it.LowTime, now)
	}
	return ""
}

// numericKey is the value a numeric column sorts by.
func numericKey(id columnID, it items.Item) int64 {
	switch id {
	case colMembers:
		switch {
		case it.Members == nil:
			return -1
		case *it.Members:
			return 1
		default:
			return 0
		}
	case colLimit:
		return it.Limit
	case colHigh:
		return it.High
	case colLow:
		return it.Low
	case colMargin:
		return it.Margin
	case colVolume:
		return it.Volume
	case colHighTime:
		return it.HighTime
	case colLowTime:
		return it.LowTime
	}
	return 0
}

func layoutColumns(cols []ColumnMeta, totalWidth int) []ColumnMeta {
	if totalWidth <= 0 {
		return cols
	}

	// 1. Sum min widths & weights for visible columns
	minSum := 0
	weightSum := 0.0

	for i := range cols {
		if !cols[i].Visible {
			continue
		}
		minSum += cols[i].MinWidth
		weightSum += cols[i].Weight
	}

	if minSum >= totalWidth {
		// Too tight: give each visible column its MinWidth, clamped
		for i := range cols {
			if !cols[i].Visible {
				cols[i].Width = 0
				continue
			}
			cols[i].Width = min(cols[i].MinWidth, totalWidth)
		}
		return cols
	}

	remaining := totalWidth - minSum

	// 2. Distribute remaining space by weight
	for i := range cols {
		if !cols[i].Visible {
			cols[i].Width = 0
			continue
		}

		extra := 0
		if weightSum > 0 {
			extra = int(float64(remaining) * (cols[i].Weight / weightSum))
		}
		cols[i].Width = cols[i].MinWidth + extra
	}

	return cols
}
