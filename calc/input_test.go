package calc

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"", 0},
		{"42", 42},
		{"  42", 42},
		{"-7", -7},
		{"+7", 7},
		{"12.9", 12},
		{"12abc", 12},
		{"abc", 0},
		{"-", 0},
		{".5", 0},
		{"99999999999999999999", math.MaxInt64},
		{"-99999999999999999999", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ParseInt(tt.in)); diff != "" {
				t.Errorf("ParseInt(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"2.5", 2.5},
		{" 2.5days", 2.5},
		{".5", 0.5},
		{"5.", 5},
		{"-1.25", -1.25},
		{"1e3", 1000},
		{"1e", 1},
		{"1e+", 1},
		{"2E-1", 0.2},
		{".", 0},
		{"abc", 0},
		{"1e999", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ParseFloat(tt.in)); diff != "" {
				t.Errorf("ParseFloat(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{26640, "26640"},
		{-600, "-600"},
		{1234.5, "1234.5"},
		{1.0 / 3, "0.3333333333333333"},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, FormatNumber(tt.in)); diff != "" {
			t.Errorf("FormatNumber(%v) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}
