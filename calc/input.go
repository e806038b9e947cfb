package calc

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseInt reads the leading integer of s the way a browser number field
// does: leading space is skipped, a sign is allowed, and parsing stops at
// the first non-digit. Anything without digits is 0. Values beyond int64
// saturate.
func ParseInt(s string) int64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == digitsStart {
		return 0
	}
	// The prefix is well formed, so the only possible error is ErrRange and
	// n is already clamped to the int64 bounds.
	n, _ := strconv.ParseInt(s[:end], 10, 64)
	return n
}

// ParseFloat reads the longest leading decimal number of s (sign,
// fraction and exponent allowed). Unparseable or non-finite input is 0.
func ParseFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	intDigits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		intDigits++
	}
	fracDigits := 0
	if end < len(s) && s[end] == '.' {
		j := end + 1
		for j < len(s) && isDigit(s[j]) {
			j++
			fracDigits++
		}
		if intDigits > 0 || fracDigits > 0 {
			end = j
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		j := end + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > expStart {
			end = j
		}
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// FormatNumber renders f with the shortest representation that round-trips,
// without exponent notation for everyday magnitudes.
func FormatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
