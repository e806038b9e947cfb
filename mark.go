package main

type MarkColor string

const (
	MarkNone  MarkColor = ""
	MarkRed   MarkColor = "red"
	MarkGreen MarkColor = "green"
	MarkAmber MarkColor = "amber"
)

// Accept only known values; anything else becomes MarkNone.
func sanitizeMarkColor(s string) MarkColor {
	switch MarkColor(s) {
	case MarkNone, MarkRed, MarkGreen, MarkAmber:
		return MarkColor(s)
	default:
		return MarkNone
	}
}

func markFromKey(k string) (MarkColor, bool) {
	switch k {
	case "r":
		return MarkRed, true
	case "g":
		return MarkGreen, true
	case "a":
		return MarkAmber, true
	case "c":
		return MarkNone, true
	}
	return MarkNone, false
}
