package validate

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const (
	// TaxIDLength is the number of digits in a RUC.
	TaxIDLength = 11

	MinScore = 0
	MaxScore = 100
)

var taxIDPattern = regexp.MustCompile(`^\d{11}$`)

// TaxID reports whether v is an acceptable RUC. Absent values are valid;
// anything else must be exactly eleven ASCII digits with no surrounding
// whitespace. Numbers are checked by the string a browser would print for
// them, so float64(12345678901) passes and 1.5e10 does not.
func TaxID(v any) bool {
	s, present := taxIDString(v)
	if !present {
		return true
	}
	return taxIDPattern.MatchString(s)
}

func taxIDString(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, x != ""
	case *string:
		if x == nil {
			return "", false
		}
		return *x, *x != ""
	case int:
		return strconv.Itoa(x), x != 0
	case int64:
		return strconv.FormatInt(x, 10), x != 0
	case uint64:
		return strconv.FormatUint(x, 10), x != 0
	case float64:
		if x == 0 || math.IsNaN(x) {
			return "", false
		}
		return numberString(x), true
	default:
		s := fmt.Sprint(v)
		return s, s != ""
	}
}

// Score reports whether v is an acceptable safety score. Absent or falsy
// values (nil, "", 0, false, NaN) are valid. Otherwise v is integer-parsed
// the way a browser parseInt would (leading whitespace and sign allowed,
// trailing non-digits ignored) and must land in [MinScore, MaxScore].
// Input with no leading digits is invalid.
//
// A numeric zero is indistinguishable from "no score"; it is in range
// either way, so the result is the same.
func Score(v any) bool {
	n, present, ok := scoreValue(v)
	if !present {
		return true
	}
	if !ok {
		return false
	}
	return n >= MinScore && n <= MaxScore
}

// scoreValue returns the integer value of v, whether v counts as present,
// and whether it parsed to a number at all.
func scoreValue(v any) (n int64, present, ok bool) {
	switch x := v.(type) {
	case nil:
		return 0, false, false
	case bool:
		if !x {
			return 0, false, false
		}
		return 0, true, false
	case string:
		if x == "" {
			return 0, false, false
		}
		n, ok := ParseInt(x)
		return n, true, ok
	case *string:
		if x == nil {
			return 0, false, false
		}
		return scoreValue(*x)
	case *int:
		if x == nil {
			return 0, false, false
		}
		return scoreValue(*x)
	case int:
		return int64(x), x != 0, true
	case int32:
		return int64(x), x != 0, true
	case int64:
		return x, x != 0, true
	case float32:
		return scoreValue(float64(x))
	case float64:
		if x == 0 || math.IsNaN(x) {
			return 0, false, false
		}
		if math.IsInf(x, 0) {
			return 0, true, false
		}
		// parseInt reads the printed number: 1e21 prints as "1e+21" and
		// parses to 1, 5e-7 prints as "5e-7" and parses to 5.
		n, ok := ParseInt(numberString(x))
		return n, true, ok
	default:
		return scoreValue(fmt.Sprint(v))
	}
}

// numberString prints a finite float the way a browser's Number
// toString does, up to the exponent spelling after the mantissa: fixed
// notation for magnitudes in [1e-6, 1e21), exponent notation otherwise.
func numberString(x float64) string {
	if a := math.Abs(x); a >= 1e21 || a < 1e-6 {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// ParseInt parses the leading integer of s with browser parseInt rules:
// leading whitespace is skipped, an optional sign is honoured, a 0x prefix
// selects base 16, and parsing stops at the first non-digit. ok is false
// when no digit is found. Values too large for int64 saturate.
func ParseInt(s string) (n int64, ok bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	base := int64(10)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	const limit = math.MaxInt64 / 16
	for i := 0; i < len(s); i++ {
		d, isDigit := digitValue(s[i], base)
		if !isDigit {
			break
		}
		ok = true
		if n < limit {
			n = n*base + d
		}
	}
	if neg {
		n = -n
	}
	return n, ok
}

func digitValue(c byte, base int64) (int64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int64(c - '0'), true
	case base == 16 && c >= 'a' && c <= 'f':
		return int64(c-'a') + 10, true
	case base == 16 && c >= 'A' && c <= 'F':
		return int64(c-'A') + 10, true
	}
	return 0, false
}
