// Package calc holds the trading calculators and the parsing used for their
// text fields.
package calc

import "math"

// DefaultProfitMonths is the horizon the profit calculator reports on.
const DefaultProfitMonths = 3

// daysPerMonth approximates a month for profit projections.
const daysPerMonth = 30

// AccountsNeededInput is the input set of the accounts-needed calculator.
type AccountsNeededInput struct {
	PurchasePrice  int64
	BuyLimit       int64
	NumOfBuyLimits int64
	Budget         int64
}

// Result returns the number of accounts needed to spend Budget.
func (in AccountsNeededInput) Result() int64 {
	return AccountsNeeded(in.PurchasePrice, in.BuyLimit, in.NumOfBuyLimits, in.Budget)
}

// ProfitOverTimeInput is the input set of the profit-over-time calculator.
type ProfitOverTimeInput struct {
	PurchasePrice int64
	SalePrice     int64
	Volume        int64
	DaysToBuy     float64
}

// Result returns the projected profit after the given number of months.
func (in ProfitOverTimeInput) Result(months int) float64 {
	return ProfitOverTime(in.PurchasePrice, in.SalePrice, in.Volume, in.DaysToBuy, months)
}

// AccountsNeeded returns ceil(budget / (purchasePrice * buyLimit * numOfBuyLimits)).
// A zero divisor or any non-finite quotient yields 0. Quotients outside the
// int64 range saturate.
func AccountsNeeded(purchasePrice, buyLimit, numOfBuyLimits, budget int64) int64 {
	perAccount := float64(purchasePrice) * float64(buyLimit) * float64(numOfBuyLimits)
	if perAccount == 0 {
		return 0
	}
	n := math.Ceil(float64(budget) / perAccount)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	if n == 0 {
		// ceil of a small negative quotient is -0
		return 0
	}
	// float64(math.MaxInt64) is 2^63, which does not convert back.
	if n >= math.MaxInt64 {
		return math.MaxInt64
	}
	if n < math.MinInt64 {
		return math.MinInt64
	}
	return int64(n)
}

// ProfitOverTime projects the profit of repeatedly buying volume units at
// purchasePrice and selling at salePrice, where one round of buying takes
// daysToBuy days. Sales above 100 pay a 1% tax. The result is not rounded.
func ProfitOverTime(purchasePrice, salePrice, volume int64, daysToBuy float64, months int) float64 {
	if daysToBuy == 0 {
		return 0
	}
	sale := float64(salePrice)
	profit := sale - float64(purchasePrice)
	if salePrice > 100 {
		profit -= sale / 100
	}
	days := float64(months * daysPerMonth)
	return (days / daysToBuy) * profit * float64(volume)
}
