package dialogs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/dutyfree-helper/calc"
	"github.com/andareed/dutyfree-helper/logging"
)

// CalculatorClosedMsg is sent when the user dismisses a calculator.
type CalculatorClosedMsg struct{ Title string }

type calcField struct {
	label string
	input textinput.Model
}

// Calculator is a modal with four numeric fields and a live result. Each
// dialog owns its own inputs; open a new one to start from scratch.
type Calculator struct {
	title       string
	resultLabel string
	fields      []calcField
	focus       int
	visible     bool
	compute     func(values []string) string
}

// NewAccountsNeededDialog builds the accounts-needed calculator seeded with in.
func NewAccountsNeededDialog(in calc.AccountsNeededInput) *Calculator {
	d := &Calculator{
		title:       "Accounts Needed",
		resultLabel: "Accounts",
		visible:     true,
		fields: []calcField{
			newCalcField("Purchase Price", strconv.FormatInt(in.PurchasePrice, 10)),
			newCalcField("Buy Limit", strconv.FormatInt(in.BuyLimit, 10)),
			newCalcField("# of Buy Limits", strconv.FormatInt(in.NumOfBuyLimits, 10)),
			newCalcField("Budget", strconv.FormatInt(in.Budget, 10)),
		},
		compute: func(v []string) string {
			in := calc.AccountsNeededInput{
				PurchasePrice:  calc.ParseInt(v[0]),
				BuyLimit:       calc.ParseInt(v[1]),
				NumOfBuyLimits: calc.ParseInt(v[2]),
				Budget:         calc.ParseInt(v[3]),
			}
			return strconv.FormatInt(in.Result(), 10)
		},
	}
	d.setFocus(0)
	return d
}

// NewProfitOverTimeDialog builds the profit-over-time calculator seeded with
// in, reporting the profit after months.
func NewProfitOverTimeDialog(in calc.ProfitOverTimeInput, months int) *Calculator {
	d := &Calculator{
		title:       "Profit over time",
		resultLabel: fmt.Sprintf("Profit After %d Months", months),
		visible:     true,
		fields: []calcField{
			newCalcField("Purchase Price", strconv.FormatInt(in.PurchasePrice, 10)),
			newCalcField("Sale Price", strconv.FormatInt(in.SalePrice, 10)),
			newCalcField("Purchase Volume", strconv.FormatInt(in.Volume, 10)),
			newCalcField("Days needed to purchase volume", calc.FormatNumber(in.DaysToBuy)),
		},
		compute: func(v []string) string {
			in := calc.ProfitOverTimeInput{
				PurchasePrice: calc.ParseInt(v[0]),
				SalePrice:     calc.ParseInt(v[1]),
				Volume:        calc.ParseInt(v[2]),
				DaysToBuy:     calc.ParseFloat(v[3]),
			}
			return calc.FormatNumber(in.Result(months))
		},
	}
	d.setFocus(0)
	return d
}

func newCalcField(label, value string) calcField {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 24
	ti.Width = 24
	ti.SetValue(value)
	return calcField{label: label, input: ti}
}

func (d Calculator) Init() tea.Cmd { return textinput.Blink }

// Values returns the raw text of every field, in display order.
func (d *Calculator) Values() []string {
	out := make([]string, len(d.fields))
	for i, f := range d.fields {
		out[i] = f.input.Value()
	}
	return out
}

// Result is the formatted output for the current field values.
func (d *Calculator) Result() string {
	return d.compute(d.Values())
}

// Reset sets every field back to zero.
func (d *Calculator) Reset() {
	for i := range d.fields {
		d.fields[i].input.SetValue("0")
	}
	d.setFocus(0)
}

func (d *Calculator) setFocus(i int) {
	n := len(d.fields)
	d.focus = ((i % n) + n) % n
	for j := range d.fields {
		if j == d.focus {
			d.fields[j].input.Focus()
			d.fields[j].input.CursorEnd()
		} else {
			d.fields[j].input.Blur()
		}
	}
}

func (d *Calculator) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			logging.Debugf("Calculator[%s]: closed", d.title)
			d.Hide()
			title := d.title
			return d, func() tea.Msg { return CalculatorClosedMsg{Title: title} }
		case "tab", "down", "enter":
			d.setFocus(d.focus + 1)
			return d, nil
		case "shift+tab", "up":
			d.setFocus(d.focus - 1)
			return d, nil
		case "ctrl+r":
			d.Reset()
			return d, nil
		}
	}
	var cmd tea.Cmd
	d.fields[d.focus].input, cmd = d.fields[d.focus].input.Update(msg)
	return d, cmd
}

func (d Calculator) View() string {
	if !d.visible {
		return ""
	}

	labelW := 0
	for _, f := range d.fields {
		labelW = max(labelW, lipgloss.Width(f.label))
	}

	title := lipgloss.NewStyle().Bold(true).Render(d.title)
	lines := []string{title, ""}
	for i, f := range d.fields {
		cursor := "  "
		if i == d.focus {
			cursor = "▸ "
		}
		lines = append(lines, fmt.Sprintf("%s%-*s  %s", cursor, labelW, f.label, f.input.View()))
	}

	result := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff9f1c")).Render(d.compute(d.Values()))
	lines = append(lines, "", d.resultLabel+":", result)

	help := lipgloss.NewStyle().
		Faint(true).
		Render("tab/↑/↓ move • ctrl+r reset • esc close")

	content := fmt.Sprintf("%s\n\n%s", strings.Join(lines, "\n"), help)
	return modalBox.Render(content)
}

func (d *Calculator) Show() {
	d.visible = true
	d.setFocus(d.focus)
}

func (d *Calculator) Hide() {
	d.visible = false
	for i := range d.fields {
		d.fields[i].input.Blur()
	}
}

func (d *Calculator) Focus() tea.Cmd { return d.fields[d.focus].input.Focus() }
func (d *Calculator) Blur()          { d.fields[d.focus].input.Blur() }
func (d Calculator) IsVisible() bool { return d.visible }
