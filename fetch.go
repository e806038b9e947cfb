package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/andareed/dutyfree-helper/items"
	"github.com/andareed/dutyfree-helper/logging"
)

// cacheTimeout bounds every cache read and write.
const cacheTimeout = 5 * time.Second

type itemFetcher interface {
	Fetch(ctx context.Context) ([]items.Item, error)
}

type itemCache interface {
	SaveItems(ctx context.Context, list []items.Item, fetchedAt time.Time) error
	LoadItems(ctx context.Context) ([]items.Item, time.Time, error)
	SetMark(ctx context.Context, itemID int64, colour string) error
	LoadMarks(ctx context.Context) (map[int64]string, error)
}

type (
	itemsFetchedMsg struct {
		items []items.Item
		at    time.Time
	}
	fetchFailedMsg struct{ err error }
	cacheLoadedMsg struct {
		items []items.Item
		marks map[int64]string
		at    time.Time
		err   error
	}
	cacheSavedMsg  struct{ err error }
	markSavedMsg   struct{ err error }
	clockTickMsg   time.Time
	refreshTickMsg time.Time
)

// startFetch marks a fetch in flight and returns the command running it.
// It returns nil while another fetch is running or when offline.
func (m *model) startFetch() tea.Cmd {
	if m.client == nil || m.data.fetching {
		return nil
	}
	m.data.fetching = true
	client, now := m.client, m.now
	return func() tea.Msg {
		list, err := client.Fetch(context.Background())
		if err != nil {
			return fetchFailedMsg{err: err}
		}
		return itemsFetchedMsg{items: list, at: now()}
	}
}

func (m *model) loadCacheCmd() tea.Cmd {
	if m.cache == nil {
		return nil
	}
	cache := m.cache
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cacheTimeout)
		defer cancel()
		list, at, err := cache.LoadItems(ctx)
		if err != nil {
			return cacheLoadedMsg{err: err}
		}
		marks, err := cache.LoadMarks(ctx)
		return cacheLoadedMsg{items: list, marks: marks, at: at, err: err}
	}
}

func (m *model) saveCacheCmd(list []items.Item, at time.Time) tea.Cmd {
	if m.cache == nil {
		return nil
	}
	cache := m.cache
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cacheTimeout)
		defer cancel()
		return cacheSavedMsg{err: cache.SaveItems(ctx, list, at)}
	}
}

func (m *model) saveMarkCmd(id int64, colour MarkColor) tea.Cmd {
	if m.cache == nil {
		return nil
	}
	cache := m.cache
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cacheTimeout)
		defer cancel()
		return markSavedMsg{err: cache.SetMark(ctx, id, string(colour))}
	}
}

func (m *model) clockTickCmd() tea.Cmd {
	if m.cfg.ClockInterval <= 0 {
		return nil
	}
	return tea.Tick(m.cfg.ClockInterval, func(t time.Time) tea.Msg { return clockTickMsg(t) })
}

func (m *model) refreshTickCmd() tea.Cmd {
	if m.client == nil || m.cfg.Refresh() <= 0 {
		return nil
	}
	return tea.Tick(m.cfg.Refresh(), func(t time.Time) tea.Msg { return refreshTickMsg(t) })
}

// setItems replaces the grid rows with list, keeping marks and filters.
func (m *model) setItems(list []items.Item, at time.Time) {
	now := m.now()
	rows := make([]itemRow, 0, len(list))
	for _, it := range list {
		rows = append(rows, newItemRow(it, now))
	}
	m.data.rows = rows
	m.data.fetchedAt = at
	logging.Infof("Loaded %d items (fetched %s)", len(rows), at.Format(time.RFC3339))
	m.applyFilter()
}

// tickClock re-renders the time-ago cells and re-applies filters, since both
// depend on the current time.
func (m *model) tickClock() {
	now := m.now()
	for i := range m.data.rows {
		m.data.rows[i].refreshTimes(now)
	}
	m.applyFilter()
}

func (m *model) handleDataMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case cacheLoadedMsg:
		if msg.err != nil {
			logging.Warnf("Cache load failed: %v", msg.err)
			return m, m.startNotice("Cache unavailable", "warn", noticeDuration)
		}
		for id, c := range msg.marks {
			if mark := sanitizeMarkColor(c); mark != MarkNone {
				m.data.markedRows[id] = mark
			}
		}
		// A fetch that finished first wins over the cache.
		if len(msg.items) > 0 && m.data.fetchedAt.IsZero() {
			m.data.fromCache = true
			m.setItems(msg.items, msg.at)
		} else {
			m.applyFilter()
		}
		return m, nil

	case itemsFetchedMsg:
		m.data.fetching = false
		m.data.fromCache = false
		m.setItems(msg.items, msg.at)
		return m, tea.Batch(
			m.saveCacheCmd(msg.items, msg.at),
			m.startNotice("Fetched "+pluralItems(len(msg.items)), "success", noticeDuration),
		)

	case fetchFailedMsg:
		m.data.fetching = false
		logging.Errorf("Fetch failed: %v", msg.err)
		return m, m.startNotice("Fetch failed: "+msg.err.Error(), "error", noticeDuration*2)

	case cacheSavedMsg:
		if msg.err != nil {
			logging.Warnf("Cache save failed: %v", msg.err)
		}
		return m, nil

	case markSavedMsg:
		if msg.err != nil {
			logging.Warnf("Mark save failed: %v", msg.err)
			return m, m.startNotice("Mark not saved", "warn", noticeDuration)
		}
		return m, nil

	case clockTickMsg:
		m.tickClock()
		return m, m.clockTickCmd()

	case refreshTickMsg:
		return m, tea.Batch(m.startFetch(), m.refreshTickCmd())
	}
	return m, nil
}

func (m *model) refreshNow() tea.Cmd {
	if m.client == nil {
		return m.startNotice("Offline: refresh disabled", "warn", noticeDuration)
	}
	if m.data.fetching {
		return nil
	}
	return tea.Batch(m.startFetch(), m.startNotice("Refreshing…", "info", noticeDuration))
}

func pluralItems(n int) string {
	if n == 1 {
		return "1 item"
	}
	return humanize.Comma(int64(n)) + " items"
}
