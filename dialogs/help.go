package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/dutyfree-helper/logging"
)

// HelpSection is a titled group of bindings.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

type HelpClosedMsg struct{}

// Help lists the key bindings, grouped into sections.
type Help struct {
	visible  bool
	sections []HelpSection
}

func (d Help) Init() tea.Cmd { return nil }

// NewHelpDialog creates a help dialog showing sections in order. Disabled
// bindings are skipped.
func NewHelpDialog(sections ...HelpSection) *Help {
	return &Help{
		visible:  true,
		sections: sections,
	}
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter", "esc", "?", "q":
			logging.Debug("HelpDialog: closed")
			d.visible = false
			return d, func() tea.Msg { return HelpClosedMsg{} }
		}
	}
	return d, nil
}

func (d Help) View() string {
	if !d.visible {
		return ""
	}

	heading := lipgloss.NewStyle().Bold(true).Underline(true)

	var blocks []string
	for _, s := range d.sections {
		var lines []string
		if s.Title != "" {
			lines = append(lines, heading.Render(s.Title))
		}
		for _, b := range s.Bindings {
			if !b.Enabled() {
				continue
			}
			h := b.Help()
			lines = append(lines, fmt.Sprintf("%-12s %s", h.Key, h.Desc))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	helpHint := lipgloss.NewStyle().
		Faint(true).
		Render("enter/esc to return")

	content := fmt.Sprintf("%s\n\n%s", strings.Join(blocks, "\n\n"), helpHint)
	return modalBox.Render(content)
}

func (d *Help) Show() { d.visible = true }
func (d *Help) Hide() { d.visible = false }

func (d *Help) Focus() tea.Cmd { return nil }
func (d *Help) Blur()          {}
func (d Help) IsVisible() bool { return d.visible }
