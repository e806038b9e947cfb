package dialogs

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/andareed/dutyfree-helper/logging"
)

type (
	ExportConfirmedMsg struct{ Path string }
	ExportCanceledMsg  struct{}
)

// Export asks where to write the filtered grid as CSV.
type Export struct {
	input   textinput.Model
	visible bool
	rows    int
	// lastDir is joined onto bare file names.
	lastDir string
}

func (d Export) Init() tea.Cmd { return d.input.Focus() }

// NewExportDialog prompts for a path, prefilled with defaultName. rows is the
// number of rows that will be written and is shown for context.
func NewExportDialog(defaultName, lastDir string, rows int) *Export {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = "Export CSV as: "
	ti.CharLimit = 256
	ti.Width = 50
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	ti.Focus()
	return &Export{input: ti, visible: true, rows: rows, lastDir: lastDir}
}

// Path resolves the value typed so far against lastDir and adds a .csv
// extension when none is given.
func (d *Export) Path() string {
	val := strings.TrimSpace(d.input.Value())
	if val == "" {
		val = d.input.Placeholder
	}
	if val == "" {
		return ""
	}
	if filepath.Ext(val) == "" {
		val += ".csv"
	}
	if d.lastDir != "" && !filepath.IsAbs(val) && filepath.Dir(val) == "." {
		val = filepath.Join(d.lastDir, val)
	}
	return val
}

func (d *Export) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			path := d.Path()
			if path == "" {
				return d, nil
			}
			logging.Debugf("ExportDialog: confirmed %s", path)
			return d, func() tea.Msg { return ExportConfirmedMsg{Path: path} }
		case "esc":
			logging.Debug("ExportDialog: canceled")
			return d, func() tea.Msg { return ExportCanceledMsg{} }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d Export) View() string {
	if !d.visible {
		return ""
	}
	title := lipgloss.NewStyle().Bold(true).Render("Export filtered items")
	count := lipgloss.NewStyle().Faint(true).Render(pluralRows(d.rows))
	help := lipgloss.NewStyle().
		Faint(true).
		Render("enter to export • esc to cancel")

	return modalBox.Render(strings.Join([]string{title, count, "", d.input.View(), "", help}, "\n"))
}

func pluralRows(n int) string {
	if n == 1 {
		return "1 row"
	}
	return humanize.Comma(int64(n)) + " rows"
}

func (d *Export) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Export) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Export) Focus() tea.Cmd { return d.input.Focus() }
func (d *Export) Blur()          { d.input.Blur() }
func (d Export) IsVisible() bool { return d.visible }
