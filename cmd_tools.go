package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/dutyfree-helper/calc"
	"github.com/andareed/dutyfree-helper/clipboard"
	"github.com/andareed/dutyfree-helper/dialogs"
	"github.com/andareed/dutyfree-helper/logging"
)

type copyDoneMsg struct{ err error }

// copyFn is swapped out in tests.
var copyFn = clipboard.Copy

func (m *model) copyCurrentRow() tea.Cmd {
	row := m.currentRow()
	if row == nil {
		return m.startNotice("Nothing to copy", "warn", noticeDuration)
	}
	text := row.Join("\t", m.data.header)
	return func() tea.Msg {
		return copyDoneMsg{err: copyFn(text)}
	}
}

func (m *model) handleCopyDone(msg copyDoneMsg) tea.Cmd {
	if msg.err != nil {
		logging.Errorf("Copy failed: %v", msg.err)
		return m.startNotice("Copy failed", "error", noticeDuration)
	}
	return m.startNotice("Row copied", "success", noticeDuration)
}

// openAccountsNeeded opens the calculator seeded from the selected row, or
// with zeros when nothing is selected.
func (m *model) openAccountsNeeded() {
	var in calc.AccountsNeededInput
	if row := m.currentRow(); row != nil {
		in.PurchasePrice = row.item.Low
		in.BuyLimit = row.item.Limit
	}
	logging.Debugf("Opening accounts needed with %+v", in)
	m.activeDialog = dialogs.NewAccountsNeededDialog(in)
}

func (m *model) openProfitOverTime() {
	var in calc.ProfitOverTimeInput
	if row := m.currentRow(); row != nil {
		in.PurchasePrice = row.item.Low
		in.SalePrice = row.item.High
		in.Volume = row.item.Limit
	}
	logging.Debugf("Opening profit over time with %+v", in)
	m.activeDialog = dialogs.NewProfitOverTimeDialog(in, m.cfg.Calculators.ProfitMonths)
}

func (m *model) openHelp() {
	m.activeDialog = dialogs.NewHelpDialog(Keys.HelpSections()...)
}
