package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/andareed/dutyfree-helper/dialogs"
	"github.com/andareed/dutyfree-helper/logging"
)

type exportDoneMsg struct {
	path string
	rows int
	err  error
}

// exportSnapshot is a copy of what the grid shows, safe to write off the
// event loop.
type exportSnapshot struct {
	header []string
	ids    []columnID
	rows   [][]string
	marks  []MarkColor
}

func (m *model) snapshotForExport() exportSnapshot {
	var snap exportSnapshot
	for _, col := range m.data.header {
		if !col.Visible {
			continue
		}
		snap.header = append(snap.header, col.Name)
		snap.ids = append(snap.ids, col.ID)
	}
	snap.header = append(snap.header, "Mark")

	for _, idx := range m.data.filteredIndices {
		r := &m.data.rows[idx]
		out := make([]string, len(snap.ids))
		for i, id := range snap.ids {
			out[i] = r.cols[id]
		}
		snap.rows = append(snap.rows, out)
		snap.marks = append(snap.marks, m.data.markedRows[r.id()])
	}
	return snap
}

func (s exportSnapshot) writeCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(s.header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range s.rows {
		out := append(row, string(s.marks[i]))
		if err := cw.Write(out); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// writeExport writes snap to a CSV file at path and reports the number of
// rows written.
func writeExport(snap exportSnapshot, path string) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("open export file: %w", err)
	}
	if err := snap.writeCSV(f); err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close export file: %w", err)
	}
	return len(snap.rows), nil
}

func defaultExportName(now time.Time) string {
	return "dutyfree-items-" + now.Format("20060102-150405") + ".csv"
}

func (m *model) openExportDialog() {
	dir := m.ui.lastExportDir
	m.activeDialog = dialogs.NewExportDialog(defaultExportName(m.now()), dir, len(m.data.filteredIndices))
}

func (m *model) exportCmd(path string) tea.Cmd {
	snap := m.snapshotForExport()
	return func() tea.Msg {
		n, err := writeExport(snap, path)
		return exportDoneMsg{path: path, rows: n, err: err}
	}
}

func (m *model) handleExportDone(msg exportDoneMsg) tea.Cmd {
	if msg.err != nil {
		logging.Errorf("Export to %s failed: %v", msg.path, msg.err)
		return m.startNotice("Export failed: "+msg.err.Error(), "error", noticeDuration*2)
	}
	m.ui.lastExportDir = filepath.Dir(msg.path)
	logging.Infof("Exported %d rows to %s", msg.rows, msg.path)
	return m.startNotice(fmt.Sprintf("Exported %s to %s", pluralRows(msg.rows), msg.path), "success", noticeDuration)
}

func pluralRows(n int) string {
	if n == 1 {
		return "1 row"
	}
	return humanize.Comma(int64(n)) + " rows"
}
