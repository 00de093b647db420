// Package format provides display formatting for values scraped from the
// statistics pages: thousands grouping, fee precision, and terminal colours.
package format

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// Kind selects how the fractional part of a number is rendered.
type Kind int

const (
	// Plain keeps fractional digits exactly as scraped.
	Plain Kind = iota
	// Fee rounds fractional digits to 2 places.
	Fee
	// LastTxFee rounds fractional digits to 5 places.
	LastTxFee
)

// precision reports the number of fractional digits for fee kinds.
func (k Kind) precision() (int, bool) {
	switch k {
	case Fee:
		return 2, true
	case LastTxFee:
		return 5, true
	default:
		return 0, false
	}
}

var nonNumeric = regexp.MustCompile(`[^\d.]`)

// FormatNumber turns a scraped cell value into a display string with space
// separated thousands groups.
//
// Parameters:
//   - raw: Cell text, possibly containing units, spaces or other symbols
//   - kind: Plain for counts, Fee or LastTxFee for BTC amounts
//
// Returns:
//   - string: "0" for empty input, otherwise the cleaned and grouped number
//
// Examples:
//   - ("1234567", Plain) -> "1 234 567"
//   - ("12.345", Plain) -> "12.345"
//   - ("1234.5", Fee) -> "1 234.50"
//   - ("1234.123456", LastTxFee) -> "1 234.12346"
//   - ("0.00012 BTC", LastTxFee) -> "0.00012"
//
// Only the first two dot-separated parts of the cleaned value are used. A
// non-empty value with no digits at all (e.g. "N/A") yields "".
func FormatNumber(raw string, kind Kind) string {
	if raw == "" {
		return "0"
	}

	num := nonNumeric.ReplaceAllString(raw, "")

	whole, frac, ok := strings.Cut(num, ".")
	if !ok {
		return GroupThousands(num)
	}
	frac, _, _ = strings.Cut(frac, ".")

	if digits, isFee := kind.precision(); isFee {
		frac = roundFraction(frac, digits)
	}
	return GroupThousands(whole) + "." + frac
}

// GroupThousands inserts a space before every group of 3 digits counted from
// the right. The input is expected to contain digits only.
//
// Examples:
//   - "24277510" -> "24 277 510"
//   - "123" -> "123"
//   - "1000" -> "1 000"
func GroupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result []byte
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ' ')
		}
		result = append(result, s[i])
	}
	return string(result)
}

// roundFraction rounds 0.<frac> to the given number of digits and returns only
// the digits after the decimal point.
//
// The fraction is parsed as a float64 and rounded half-up on its exact binary
// value, the way fixed-point conversion of a double behaves: "125" -> "13" but
// "005" -> "01" (0.005 is slightly above 5/1000). A carry out of the fraction
// is dropped: "999" -> "00".
func roundFraction(frac string, digits int) string {
	f, err := strconv.ParseFloat("0."+frac, 64)
	if err != nil {
		f = 0
	}

	// 1100 places holds the exact expansion of any float64 below 1.
	exact := new(big.Float).SetFloat64(f).Text('f', 1100)
	_, expansion, _ := strings.Cut(exact, ".")

	kept := []byte(expansion[:digits])
	if expansion[digits] < '5' {
		return string(kept)
	}
	for i := len(kept) - 1; i >= 0; i-- {
		if kept[i] != '9' {
			kept[i]++
			return string(kept)
		}
		kept[i] = '0'
	}
	return string(kept)
}
