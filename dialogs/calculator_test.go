package dialogs

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/andareed/dutyfree-helper/calc"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, d Dialog, msgs ...tea.Msg) (Dialog, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		d, cmd = d.Update(msg)
	}
	return d, cmd
}

func TestAccountsNeededDialogPrefill(t *testing.T) {
	d := NewAccountsNeededDialog(calc.AccountsNeededInput{
		PurchasePrice: 100, BuyLimit: 10, NumOfBuyLimits: 2, Budget: 5000,
	})

	if diff := cmp.Diff([]string{"100", "10", "2", "5000"}, d.Values()); diff != "" {
		t.Errorf("prefill mismatch (-want +got):\n%s", diff)
	}
	if got := d.Result(); got != "3" {
		t.Errorf("Result() = %q, want 3", got)
	}
	if !d.IsVisible() {
		t.Error("new dialog should be visible")
	}
}

func TestAccountsNeededDialogEditing(t *testing.T) {
	d := NewAccountsNeededDialog(calc.AccountsNeededInput{
		PurchasePrice: 100, BuyLimit: 10, NumOfBuyLimits: 2, Budget: 5000,
	})

	// Typing appends to the focused field: 100 -> 1000.
	press(t, d, runes("0"))
	if got := d.Values()[0]; got != "1000" {
		t.Fatalf("purchase price = %q, want 1000", got)
	}
	if got := d.Result(); got != "1" {
		t.Errorf("Result() = %q, want 1", got)
	}

	// Move to the budget and make it 50000.
	press(t, d,
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
		runes("0"),
	)
	if got := d.Values()[3]; got != "50000" {
		t.Fatalf("budget = %q, want 50000", got)
	}
	if got := d.Result(); got != "3" {
		t.Errorf("Result() = %q, want 3", got)
	}
}

func TestAccountsNeededDialogHugeBudget(t *testing.T) {
	d := NewAccountsNeededDialog(calc.AccountsNeededInput{PurchasePrice: 1, BuyLimit: 1, NumOfBuyLimits: 1})
	press(t, d,
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyBackspace},
		runes("99999999999999999999"),
	)
	if got := d.Values()[3]; got != "99999999999999999999" {
		t.Fatalf("budget = %q", got)
	}
	if got := d.Result(); got != "9223372036854775807" {
		t.Errorf("Result() = %q, want the int64 maximum", got)
	}
}

func TestCalculatorGarbageInputIsZero(t *testing.T) {
	d := NewAccountsNeededDialog(calc.AccountsNeededInput{})
	press(t, d, tea.KeyMsg{Type: tea.KeyBackspace}, runes("abc"))
	if got := d.Result(); got != "0" {
		t.Errorf("Result() = %q, want 0", got)
	}
}

func TestCalculatorReset(t *testing.T) {
	d := NewProfitOverTimeDialog(calc.ProfitOverTimeInput{
		PurchasePrice: 50, SalePrice: 200, Volume: 10, DaysToBuy: 5,
	}, 3)
	if got := d.Result(); got != "26640" {
		t.Fatalf("Result() = %q, want 26640", got)
	}

	press(t, d, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyCtrlR})

	if diff := cmp.Diff([]string{"0", "0", "0", "0"}, d.Values()); diff != "" {
		t.Errorf("reset mismatch (-want +got):\n%s", diff)
	}
	if got := d.Result(); got != "0" {
		t.Errorf("Result() after reset = %q, want 0", got)
	}
}

func TestProfitOverTimeDialogFractionalDays(t *testing.T) {
	d := NewProfitOverTimeDialog(calc.ProfitOverTimeInput{
		PurchasePrice: 10, SalePrice: 20, Volume: 1, DaysToBuy: 0.5,
	}, 1)
	if got := d.Values()[3]; got != "0.5" {
		t.Errorf("days field = %q, want 0.5", got)
	}
	// 30 / 0.5 * 10 * 1
	if got := d.Result(); got != "600" {
		t.Errorf("Result() = %q, want 600", got)
	}
}

func TestCalculatorEscCloses(t *testing.T) {
	d := NewProfitOverTimeDialog(calc.ProfitOverTimeInput{}, 3)

	_, cmd := press(t, d, tea.KeyMsg{Type: tea.KeyEsc})
	if d.IsVisible() {
		t.Error("dialog still visible after esc")
	}
	if cmd == nil {
		t.Fatal("esc returned no command")
	}
	msg, ok := cmd().(CalculatorClosedMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want CalculatorClosedMsg", cmd())
	}
	if msg.Title != "Profit over time" {
		t.Errorf("Title = %q", msg.Title)
	}
	if d.View() != "" {
		t.Error("hidden dialog should render nothing")
	}
}
