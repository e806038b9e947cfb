package main

import (
	"regexp"
	"time"

	"github.com/andareed/dutyfree-helper/filters"
)

type sortDir int

const (
	sortNone sortDir = iota
	sortAsc
	sortDesc
)

type sortState struct {
	column columnID
	dir    sortDir
}

type dataState struct {
	header          []ColumnMeta // one entry per column, in display order
	rows            []itemRow    // API order
	markedRows      map[int64]MarkColor
	showOnlyMarked  bool
	filterRegex     *regexp.Regexp
	members         *filters.MembersModel // nil: no members filter
	timeAgo         *filters.TimeAgoModel // nil: no time-ago filter, applied to Low Time
	sort            sortState
	filteredIndices []int // indices into rows that pass every filter, in display order
	fetchedAt       time.Time
	fetching        bool
	fromCache       bool
}
