package filters

import (
	"fmt"
	"math"
	"time"
)

// Comparison is how a row's age is compared to the threshold.
type Comparison string

const (
	Equals      Comparison = "equals"
	LessThan    Comparison = "lessThan"
	GreaterThan Comparison = "greaterThan"
)

// Unit is the unit a time-ago magnitude is expressed in.
type Unit string

const (
	Seconds Unit = "seconds"
	Minutes Unit = "minutes"
	Hours   Unit = "hours"
	Days    Unit = "days"
	Months  Unit = "months"
	Years   Unit = "years"
)

// Comparisons and Units list the options in the order the drawer cycles them.
var (
	Comparisons = []Comparison{Equals, LessThan, GreaterThan}
	Units       = []Unit{Seconds, Minutes, Hours, Days, Months, Years}
)

// equalsTolerance is the relative band accepted by Equals.
const equalsTolerance = 0.05

// TimeAgoModel is the configuration of a time-ago filter. A nil
// *TimeAgoModel means the filter is inactive.
type TimeAgoModel struct {
	Comparison Comparison `json:"comparison" yaml:"comparison"`
	Magnitude  float64    `json:"magnitude" yaml:"magnitude"`
	Unit       Unit       `json:"unit" yaml:"unit"`
}

// DefaultTimeAgoModel is what a freshly opened filter shows: less than 5 minutes.
func DefaultTimeAgoModel() TimeAgoModel {
	return TimeAgoModel{Comparison: LessThan, Magnitude: 5, Unit: Minutes}
}

// Seconds is the number of seconds in one u. Months are 30 days and years
// 365 days. An unknown unit counts as seconds.
func (u Unit) Seconds() float64 {
	switch u {
	case Minutes:
		return 60
	case Hours:
		return 60 * 60
	case Days:
		return 24 * 60 * 60
	case Months:
		return 30 * 24 * 60 * 60
	case Years:
		return 365 * 24 * 60 * 60
	default:
		return 1
	}
}

// Label is the option text shown in the drawer.
func (u Unit) Label() string {
	switch u {
	case Seconds:
		return "Seconds"
	case Minutes:
		return "Minutes"
	case Hours:
		return "Hours"
	case Days:
		return "Days"
	case Months:
		return "Months"
	case Years:
		return "Years"
	default:
		return string(u)
	}
}

// Label is the option text shown in the drawer.
func (c Comparison) Label() string {
	switch c {
	case Equals:
		return "Equals"
	case LessThan:
		return "Less than"
	case GreaterThan:
		return "Greater than"
	default:
		return string(c)
	}
}

// ThresholdSeconds converts the model's magnitude to seconds.
func (m TimeAgoModel) ThresholdSeconds() float64 {
	return m.Magnitude * m.Unit.Seconds()
}

// String summarises the model for the footer, e.g. "< 5 minutes ago".
func (m TimeAgoModel) String() string {
	op := string(m.Comparison)
	switch m.Comparison {
	case Equals:
		op = "≈"
	case LessThan:
		op = "<"
	case GreaterThan:
		op = ">"
	}
	return fmt.Sprintf("%s %g %s ago", op, m.Magnitude, m.Unit)
}

// Validate checks that every field of the model is populated with a known value.
func (m TimeAgoModel) Validate() error {
	switch m.Comparison {
	case Equals, LessThan, GreaterThan:
	default:
		return fmt.Errorf("unknown comparison %q", m.Comparison)
	}
	switch m.Unit {
	case Seconds, Minutes, Hours, Days, Months, Years:
	default:
		return fmt.Errorf("unknown unit %q", m.Unit)
	}
	if !(m.Magnitude > 0) || math.IsInf(m.Magnitude, 0) {
		return fmt.Errorf("magnitude must be a positive number, got %v", m.Magnitude)
	}
	return nil
}

// PassTimeAgo reports whether a row whose unix timestamp (seconds) is ts
// passes model at time now. A zero timestamp never passes an active filter,
// and an unknown comparison rejects every row.
func PassTimeAgo(model *TimeAgoModel, ts int64, now time.Time) bool {
	if model == nil {
		return true
	}
	if ts == 0 {
		return false
	}

	elapsed := float64(now.Unix() - ts)
	threshold := model.ThresholdSeconds()

	switch model.Comparison {
	case Equals:
		margin := threshold * equalsTolerance
		return math.Abs(elapsed-threshold) <= margin
	case LessThan:
		return elapsed < threshold
	case GreaterThan:
		return elapsed > threshold
	default:
		return false
	}
}
