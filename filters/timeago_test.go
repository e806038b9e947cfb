package filters

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var testNow = time.Unix(1_700_000_000, 0)

func TestUnitSeconds(t *testing.T) {
	want := map[Unit]float64{
		Seconds:   1,
		Minutes:   60,
		Hours:     3600,
		Days:      86400,
		Months:    2_592_000,
		Years:     31_536_000,
		"decades": 1,
	}
	for u, w := range want {
		if got := u.Seconds(); got != w {
			t.Errorf("%q.Seconds() = %v, want %v", u, got, w)
		}
	}
}

func TestPassTimeAgo(t *testing.T) {
	tests := []struct {
		name    string
		model   *TimeAgoModel
		elapsed int64
		ts      *int64
		want    bool
	}{
		{
			name:    "nil model passes",
			model:   nil,
			elapsed: 999999,
			want:    true,
		},
		{
			name:    "less than passes younger row",
			model:   &TimeAgoModel{Comparison: LessThan, Magnitude: 5, Unit: Minutes},
			elapsed: 120,
			want:    true,
		},
		{
			name:    "greater than rejects younger row",
			model:   &TimeAgoModel{Comparison: GreaterThan, Magnitude: 5, Unit: Minutes},
			elapsed: 120,
			want:    false,
		},
		{
			name:    "greater than passes older row",
			model:   &TimeAgoModel{Comparison: GreaterThan, Magnitude: 1, Unit: Hours},
			elapsed: 3601,
			want:    true,
		},
		{
			name:    "less than is strict",
			model:   &TimeAgoModel{Comparison: LessThan, Magnitude: 300, Unit: Seconds},
			elapsed: 300,
			want:    false,
		},
		{
			name:    "greater than is strict",
			model:   &TimeAgoModel{Comparison: GreaterThan, Magnitude: 300, Unit: Seconds},
			elapsed: 300,
			want:    false,
		},
		{
			name:    "equals within tolerance",
			model:   &TimeAgoModel{Comparison: Equals, Magnitude: 100, Unit: Seconds},
			elapsed: 104,
			want:    true,
		},
		{
			name:    "equals on tolerance edge",
			model:   &TimeAgoModel{Comparison: Equals, Magnitude: 100, Unit: Seconds},
			elapsed: 95,
			want:    true,
		},
		{
			name:    "equals outside tolerance",
			model:   &TimeAgoModel{Comparison: Equals, Magnitude: 100, Unit: Seconds},
			elapsed: 106,
			want:    false,
		},
		{
			name:    "equals days",
			model:   &TimeAgoModel{Comparison: Equals, Magnitude: 2, Unit: Days},
			elapsed: 2*86400 + 3600,
			want:    true,
		},
		{
			name:    "zero threshold equals exact only",
			model:   &TimeAgoModel{Comparison: Equals, Magnitude: 0, Unit: Seconds},
			elapsed: 0,
			want:    true,
		},
		{
			name:    "zero threshold rejects any age",
			model:   &TimeAgoModel{Comparison: Equals, Magnitude: 0, Unit: Seconds},
			elapsed: 1,
			want:    false,
		},
		{
			name:    "unknown comparison fails closed",
			model:   &TimeAgoModel{Comparison: "between", Magnitude: 5, Unit: Minutes},
			elapsed: 10,
			want:    false,
		},
		{
			name:  "zero timestamp never passes less than",
			model: &TimeAgoModel{Comparison: LessThan, Magnitude: 100, Unit: Years},
			ts:    new(int64),
			want:  false,
		},
		{
			name:  "zero timestamp never passes greater than",
			model: &TimeAgoModel{Comparison: GreaterThan, Magnitude: 1, Unit: Seconds},
			ts:    new(int64),
			want:  false,
		},
		{
			name:    "future row is younger than any positive threshold",
			model:   &TimeAgoModel{Comparison: LessThan, Magnitude: 1, Unit: Seconds},
			elapsed: -30,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := testNow.Unix() - tt.elapsed
			if tt.ts != nil {
				ts = *tt.ts
			}
			got := PassTimeAgo(tt.model, ts, testNow)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("PassTimeAgo mismatch (-want +got):\n%s", diff)
			}
			if again := PassTimeAgo(tt.model, ts, testNow); again != got {
				t.Errorf("second evaluation = %v, first = %v", again, got)
			}
		})
	}
}

func TestTimeAgoModelValidate(t *testing.T) {
	tests := []struct {
		name    string
		model   TimeAgoModel
		wantErr bool
	}{
		{name: "default", model: DefaultTimeAgoModel()},
		{name: "bad comparison", model: TimeAgoModel{Comparison: "x", Magnitude: 1, Unit: Days}, wantErr: true},
		{name: "bad unit", model: TimeAgoModel{Comparison: Equals, Magnitude: 1, Unit: "weeks"}, wantErr: true},
		{name: "zero magnitude", model: TimeAgoModel{Comparison: Equals, Magnitude: 0, Unit: Days}, wantErr: true},
		{name: "negative magnitude", model: TimeAgoModel{Comparison: Equals, Magnitude: -2, Unit: Days}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.model.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTimeAgoModelString(t *testing.T) {
	if diff := cmp.Diff("< 5 minutes ago", DefaultTimeAgoModel().String()); diff != "" {
		t.Errorf("String mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatTimeAgo(t *testing.T) {
	tests := []struct {
		elapsed int64
		want    string
	}{
		{0, "0 second ago"},
		{1, "1 second ago"},
		{59, "59 seconds ago"},
		{60, "1 minute ago"},
		{119, "1 minute ago"},
		{120, "2 minutes ago"},
		{3599, "59 minutes ago"},
		{3600, "1 hour ago"},
		{7200, "2 hours ago"},
		{86399, "23 hours ago"},
		{86400, "1 day ago"},
		{10 * 86400, "10 days ago"},
		{-50, "0 second ago"},
	}
	for _, tt := range tests {
		got := FormatTimeAgo(testNow.Unix()-tt.elapsed, testNow)
		if got != tt.want {
			t.Errorf("FormatTimeAgo(elapsed=%d) = %q, want %q", tt.elapsed, got, tt.want)
		}
	}
	if got := FormatTimeAgo(0, testNow); got != "" {
		t.Errorf("FormatTimeAgo(0) = %q, want empty", got)
	}
}
