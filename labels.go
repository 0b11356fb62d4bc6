package grouping

import "slices"

// GroupLabel maps a zero-based group index to a letter label for reporting:
// 0-25 map to "A"-"Z" and 26 onward to two-letter codes starting at "AA"
// (bijective base-26, the spreadsheet column scheme). Index 701 is "ZZ";
// larger indices continue with longer labels.
//
// The label is a display-only convenience, not a stable identifier.
// Negative indices yield "".
func GroupLabel(index int) string {
	if index < 0 {
		return ""
	}

	// Digits come out least significant first.
	buf := make([]byte, 0, 8)
	for index >= 0 {
		buf = append(buf, byte('A'+index%26))
		index = index/26 - 1
	}
	slices.Reverse(buf)

	return string(buf)
}
