package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/dutyfree-helper/config"
	"github.com/andareed/dutyfree-helper/dialogs"
	"github.com/andareed/dutyfree-helper/filters"
	"github.com/andareed/dutyfree-helper/logging"
)

type mode int

const (
	modeView mode = iota
	modeCommand
	modeTimeAgo
)

// Rows taken by the column header and the two-line footer.
const (
	headerHeight = 1
	footerHeight = 2
)

type model struct {
	data                dataState
	ui                  uiState
	viewport            viewport.Model
	ready               bool
	cursor              int // index into data.filteredIndices
	lastVisibleRowCount int
	terminalWidth       int
	terminalHeight      int
	activeDialog        dialogs.Dialog

	client itemFetcher // nil when offline
	cache  itemCache   // nil when the cache is disabled
	cfg    *config.Config
	now    func() time.Time
}

func newModel(cfg *config.Config, client itemFetcher, cache itemCache) (*model, error) {
	header := defaultColumns()
	if err := hideColumns(header, cfg.Columns.Hidden); err != nil {
		return nil, fmt.Errorf("columns.hidden: %w", err)
	}
	var members *filters.MembersModel
	if cfg.Filters.Members != "" {
		members = &filters.MembersModel{Value: cfg.Filters.Members}
	}

	m := &model{
		data: dataState{
			header:     header,
			markedRows: make(map[int64]MarkColor),
			members:    members,
		},
		client: client,
		cache:  cache,
		cfg:    cfg,
		now:    time.Now,
	}
	m.InitialiseUI()
	return m, nil
}

func (m *model) InitialiseUI() {
	m.viewport = viewport.New(0, 0)
	m.ui.mode = modeView
	m.ui.timeAgo.magnitude = initTimeAgoInput()
	m.ui.timeAgo.draft = filters.DefaultTimeAgoModel()
	m.cursor = -1
}

func (m *model) Init() tea.Cmd {
	logging.Infof("dfhelper: Initialised")
	return tea.Batch(
		m.loadCacheCmd(),
		m.startFetch(),
		m.clockTickCmd(),
		m.refreshTickCmd(),
	)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth, m.terminalHeight = msg.Width, msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case clearNoticeMsg:
		if msg.id == m.ui.noticeSeq {
			m.ui.noticeMsg = ""
			m.ui.noticeType = ""
		}
		return m, nil

	case itemsFetchedMsg, fetchFailedMsg, cacheLoadedMsg, cacheSavedMsg,
		markSavedMsg, clockTickMsg, refreshTickMsg:
		return m.handleDataMsg(msg)

	case dialogs.CalculatorClosedMsg, dialogs.HelpClosedMsg, dialogs.ExportCanceledMsg:
		m.activeDialog = nil
		m.refreshView("dialog-close", false)
		return m, nil

	case dialogs.ExportConfirmedMsg:
		m.activeDialog = nil
		return m, m.exportCmd(msg.Path)

	case exportDoneMsg:
		return m, m.handleExportDone(msg)

	case copyDoneMsg:
		return m, m.handleCopyDone(msg)
	}

	// Anything else (cursor blink etc.) belongs to whichever input is live.
	if m.activeDialog != nil {
		d, cmd := m.activeDialog.Update(msg)
		m.activeDialog = d
		return m, cmd
	}
	if m.ui.timeAgo.open {
		var cmd tea.Cmd
		m.ui.timeAgo.magnitude, cmd = m.ui.timeAgo.magnitude.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		d, cmd := m.activeDialog.Update(msg)
		m.activeDialog = d
		return m, cmd
	}

	switch m.ui.mode {
	case modeCommand:
		return m.handleCommandKey(msg)
	case modeTimeAgo:
		return m.handleTimeAgoKey(msg)
	}
	return m.handleViewModeKey(msg)
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.RowDown):
		m.moveCursor(1)
	case key.Matches(msg, Keys.RowUp):
		m.moveCursor(-1)
	case key.Matches(msg, Keys.PageDown):
		m.pageDown()
	case key.Matches(msg, Keys.PageUp):
		m.pageUp()
	case key.Matches(msg, Keys.Top):
		m.jumpToStart()
	case key.Matches(msg, Keys.Bottom):
		m.jumpToEnd()
	case key.Matches(msg, Keys.ScrollLeft):
		m.viewport.ScrollLeft(4)
	case key.Matches(msg, Keys.ScrollRight):
		m.viewport.ScrollRight(4)

	case key.Matches(msg, Keys.Search):
		m.enterCommandMode(CmdSearch)
	case key.Matches(msg, Keys.Jump):
		m.enterCommandMode(CmdJump)
	case key.Matches(msg, Keys.Filter):
		m.enterCommandMode(CmdFilter)
	case key.Matches(msg, Keys.ClearFilter):
		m.ui.searchQuery = ""
		if m.data.filterRegex != nil {
			_ = m.setFilterPattern("")
			cmd = m.startNotice("Filter cleared", "", noticeDuration)
		}
	case key.Matches(msg, Keys.MembersFilter):
		cmd = m.cycleMembersFilter()
	case key.Matches(msg, Keys.ClearMembers):
		cmd = m.clearMembersFilter()
	case key.Matches(msg, Keys.TimeAgoFilter):
		m.openTimeAgoDrawer()
	case key.Matches(msg, Keys.ClearTimeAgo):
		cmd = m.clearTimeAgoFilter()

	case key.Matches(msg, Keys.MarkMode):
		if m.currentRow() == nil {
			return m, m.startNotice("No row selected", "warn", noticeDuration)
		}
		m.enterCommandMode(CmdMark)
	case key.Matches(msg, Keys.ShowMarksOnly):
		cmd = m.toggleMarksOnly()
	case key.Matches(msg, Keys.NextMark):
		m.jumpToNextMark()
	case key.Matches(msg, Keys.PrevMark):
		m.jumpToPreviousMark()

	case key.Matches(msg, Keys.SortPrev):
		m.moveSortColumn(-1)
	case key.Matches(msg, Keys.SortNext):
		m.moveSortColumn(1)
	case key.Matches(msg, Keys.SortCycle):
		m.cycleSortDir()
	case key.Matches(msg, Keys.ToggleColumn):
		m.enterCommandMode(CmdColumns)

	case key.Matches(msg, Keys.AccountsNeeded):
		m.openAccountsNeeded()
		cmd = m.activeDialog.Init()
	case key.Matches(msg, Keys.ProfitOverTime):
		m.openProfitOverTime()
		cmd = m.activeDialog.Init()
	case key.Matches(msg, Keys.ExportToFile):
		if len(m.data.filteredIndices) == 0 {
			return m, m.startNotice("Nothing to export", "warn", noticeDuration)
		}
		m.openExportDialog()
		cmd = m.activeDialog.Init()
	case key.Matches(msg, Keys.CopyRow):
		cmd = m.copyCurrentRow()
	case key.Matches(msg, Keys.Refresh):
		cmd = m.refreshNow()
	case key.Matches(msg, Keys.OpenHelp):
		m.openHelp()

	case msg.Type == tea.KeyEsc:
		m.ui.searchQuery = ""
	}

	m.refreshView("key", false)
	return m, cmd
}

// resize recomputes the viewport and column widths from the terminal size.
func (m *model) resize() {
	if !m.ready {
		return
	}
	w := m.terminalWidth - appstyle.GetHorizontalFrameSize() - tableStyle.GetHorizontalFrameSize()
	h := m.terminalHeight - appstyle.GetVerticalFrameSize() - tableStyle.GetVerticalFrameSize() -
		headerHeight - footerHeight
	if m.ui.timeAgo.open {
		h -= timeAgoDrawerHeight
	}
	m.viewport.Width = max(0, w)
	m.viewport.Height = max(1, h)
	m.refreshView("resize", true)
}

// refreshView re-renders the grid into the viewport. relayout also
// recomputes column widths.
func (m *model) refreshView(reason string, relayout bool) {
	if !m.ready {
		return
	}
	logging.Debugf("refreshView: %s", reason)
	if relayout {
		layoutColumns(m.data.header, m.viewport.Width-m.gutterWidth())
	}
	m.viewport.SetContent(m.renderViewport())
}

func (m *model) currentRow() *itemRow {
	if m.cursor < 0 || m.cursor >= len(m.data.filteredIndices) {
		return nil
	}
	return &m.data.rows[m.data.filteredIndices[m.cursor]]
}

func (m *model) currentItemID() (int64, bool) {
	row := m.currentRow()
	if row == nil {
		return 0, false
	}
	return row.id(), true
}

func (m *model) emptyMessage() string {
	switch {
	case len(m.data.rows) == 0 && m.data.fetching:
		return "Fetching items…"
	case len(m.data.rows) == 0:
		return "No items. Press r to refresh."
	default:
		return "No items match the current filters."
	}
}
