package main

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/andareed/dutyfree-helper/dialogs"
)

type Keymap struct {
	Quit           key.Binding
	RowDown        key.Binding
	RowUp          key.Binding
	PageUp         key.Binding
	PageDown       key.Binding
	Top            key.Binding
	Bottom         key.Binding
	ScrollLeft     key.Binding
	ScrollRight    key.Binding
	Search         key.Binding
	Jump           key.Binding
	Filter         key.Binding
	ClearFilter    key.Binding
	MembersFilter  key.Binding
	ClearMembers   key.Binding
	TimeAgoFilter  key.Binding
	ClearTimeAgo   key.Binding
	MarkMode       key.Binding
	ShowMarksOnly  key.Binding
	NextMark       key.Binding
	PrevMark       key.Binding
	SortPrev       key.Binding
	SortNext       key.Binding
	SortCycle      key.Binding
	ToggleColumn   key.Binding
	AccountsNeeded key.Binding
	ProfitOverTime key.Binding
	ExportToFile   key.Binding
	CopyRow        key.Binding
	Refresh        key.Binding
	OpenHelp       key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("u", "pgup"),
		key.WithHelp("u/pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("d", "pgdown"),
		key.WithHelp("d/pgdown", "page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g/home", "first row"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G/end", "last row"),
	),
	ScrollLeft: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "scroll left"),
	),
	ScrollRight: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "scroll right"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Jump: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "jump to row"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "regex filter"),
	),
	ClearFilter: key.NewBinding(
		key.WithKeys("F"),
		key.WithHelp("F", "clear regex filter"),
	),
	MembersFilter: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "cycle members filter"),
	),
	ClearMembers: key.NewBinding(
		key.WithKeys("B"),
		key.WithHelp("B", "clear members filter"),
	),
	TimeAgoFilter: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "low time filter"),
	),
	ClearTimeAgo: key.NewBinding(
		key.WithKeys("T"),
		key.WithHelp("T", "clear low time filter"),
	),
	MarkMode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mark row (r/g/a/c)"),
	),
	ShowMarksOnly: key.NewBinding(
		key.WithKeys("M"),
		key.WithHelp("M", "toggle marked only"),
	),
	NextMark: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next mark"),
	),
	PrevMark: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "previous mark"),
	),
	SortPrev: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "sort column left"),
	),
	SortNext: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "sort column right"),
	),
	SortCycle: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort asc/desc/off"),
	),
	ToggleColumn: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v <n>", "show/hide column n"),
	),
	AccountsNeeded: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "accounts needed"),
	),
	ProfitOverTime: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "profit over time"),
	),
	ExportToFile: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export CSV"),
	),
	CopyRow: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy row"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh now"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) HelpSections() []dialogs.HelpSection {
	return []dialogs.HelpSection{
		{Title: "Grid", Bindings: []key.Binding{
			k.RowDown, k.RowUp, k.PageDown, k.PageUp, k.Top, k.Bottom,
			k.Search, k.Jump, k.SortPrev, k.SortNext, k.SortCycle, k.ToggleColumn,
		}},
		{Title: "Filters", Bindings: []key.Binding{
			k.Filter, k.ClearFilter, k.MembersFilter, k.ClearMembers, k.TimeAgoFilter, k.ClearTimeAgo,
		}},
		{Title: "Marks", Bindings: []key.Binding{
			k.MarkMode, k.ShowMarksOnly, k.NextMark, k.PrevMark,
		}},
		{Title: "Tools", Bindings: []key.Binding{
			k.AccountsNeeded, k.ProfitOverTime, k.ExportToFile, k.CopyRow, k.Refresh, k.OpenHelp, k.Quit,
		}},
	}
}
