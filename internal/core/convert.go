package core

// convert.go provides number parsing and MaxUtil arithmetic.
//
// Cells are parsed the way a generic float() reads text:
//   - Surrounding whitespace is ignored
//   - Exponents, inf/infinity and nan (signed or not) are accepted
//   - Underscores are accepted between digits only
//   - Hex floats, thousands separators and decimal commas are rejected
//
// Utilization may carry one trailing '%' which is stripped before parsing.

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotNumeric is returned when a cell cannot be parsed as a number.
var ErrNotNumeric = errors.New("not a number")

// ParseNumber converts a cell to float64.
// Out-of-range magnitudes saturate to ±Inf (or 0) instead of failing.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrNotNumeric)
	}

	// strconv accepts hex mantissas; plain decimal text only here
	if strings.ContainsAny(s, "xX") {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}

	if strings.Contains(s, "_") {
		if !underscoresBetweenDigits(s) {
			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
		}
		s = strings.ReplaceAll(s, "_", "")
	}

	// strconv refuses a signed NaN
	if len(s) > 1 && (s[0] == '+' || s[0] == '-') && strings.EqualFold(s[1:], "nan") {
		return math.NaN(), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	return f, nil
}

// ParseUtilization strips a single trailing '%' and parses the rest.
// "50%" and "50" both yield 50.
func ParseUtilization(s string) (float64, error) {
	return ParseNumber(strings.TrimSuffix(s, "%"))
}

// underscoresBetweenDigits reports whether every '_' in s sits between two
// ASCII digits.
func underscoresBetweenDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return false
		}
	}
	return true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// MaxUtil is a computed MaxUtil cell.
type MaxUtil struct {
	Value float64
	// ZeroUtilization is set when Utilization was zero. Value is then 0 and
	// the cell is rendered as the integer literal "0".
	ZeroUtilization bool
}

// ComputeMaxUtil returns value / util * 100 rounded to digits decimal places.
// A zero utilization yields 0 rather than a division error.
func ComputeMaxUtil(value, util float64, digits int) MaxUtil {
	if util == 0 {
		return MaxUtil{ZeroUtilization: true}
	}
	return MaxUtil{Value: RoundTo(value/util*100, digits)}
}

// RoundTo rounds x to digits decimal places. Rounding is exact on the binary
// value with ties to even, so 2.675 (stored as 2.67499...) becomes 2.67.
func RoundTo(x float64, digits int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', digits, 64), 64)
	if err != nil {
		return x
	}
	return rounded
}

// String renders the cell for CSV output.
func (m MaxUtil) String() string {
	if m.ZeroUtilization {
		return "0"
	}
	return FormatFloat(m.Value)
}

// Finite reports whether the cell holds a finite number.
func (m MaxUtil) Finite() bool {
	return !math.IsNaN(m.Value) && !math.IsInf(m.Value, 0)
}

// FormatFloat renders f with the shortest digits that round-trip, keeping at
// least one fractional digit: 200 -> "200.0", 33.33 -> "33.33".
// Magnitudes >= 1e16 or < 1e-4 use exponent form ("1e+16").
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
