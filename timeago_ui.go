package main

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/andareed/dutyfree-helper/filters"
)

const (
	timeAgoFocusComparison = iota
	timeAgoFocusMagnitude
	timeAgoFocusUnit
	timeAgoFocusCount
)

const (
	timeAgoDrawerContentHeight = 4
	timeAgoDrawerHeight        = timeAgoDrawerContentHeight + 2
)

// timeAgoDrawer holds the draft being edited. Nothing reaches the grid until
// the draft is applied.
type timeAgoDrawer struct {
	open      bool
	focus     int
	draft     filters.TimeAgoModel
	magnitude textinput.Model
	errorMsg  string
}

func initTimeAgoInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "5"
	ti.CharLimit = 9
	ti.Width = 10
	ti.Prompt = ""
	return ti
}
