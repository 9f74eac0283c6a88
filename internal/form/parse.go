package form

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

func itoa(n int) string { return strconv.Itoa(n) }

func trimLeadingSpace(s string) string {
	return strings.TrimLeftFunc(s, func(r rune) bool { return unicode.IsSpace(r) || r == '\ufeff' })
}

// ParseInt reads the longest integer prefix of s, the way an HTML form
// field is read with leading-integer semantics: leading whitespace is
// skipped, an optional sign and an optional 0x prefix are accepted, and
// parsing stops at the first character that is not a digit. "3.7" yields
// 3 and "12abc" yields 12. ok is false when no digit is found or the value
// does not fit in an int.
func ParseInt(s string) (int, bool) {
	s = trimLeadingSpace(s)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}
	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	u, err := strconv.ParseUint(s[:end], base, 63)
	if err != nil {
		return 0, false
	}
	n := int(u)
	if neg {
		n = -n
	}
	return n, true
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f':
		return true
	case base == 16 && c >= 'A' && c <= 'F':
		return true
	}
	return false
}

// ParseFloat reads the longest decimal literal prefix of s: optional sign,
// digits with an optional fraction, and an optional exponent. "1e3" yields
// 1000 and "12.5kg" yields 12.5. ok is false when no literal is found or
// the value is not finite.
func ParseFloat(s string) (float64, bool) {
	s = trimLeadingSpace(s)
	lit := floatPrefix(s)
	if lit == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func floatPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intStart := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	digits := i - intStart
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		frac := j - i - 1
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return ""
	}
	// exponent only counts when it has at least one digit
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && s[k] >= '0' && s[k] <= '9' {
			k++
		}
		if k > j {
			i = k
		}
	}
	return s[:i]
}

// Parse reads raw as the field's kind. The result is an int or a float64.
func (f Field) Parse(raw string) (any, bool) {
	if f.Kind == KindFloat {
		return ParseFloat(raw)
	}
	return ParseInt(raw)
}

// parseStrictFloat reports whether the whole of raw is a finite number,
// which is what a number input accepts as its value.
func parseStrictFloat(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if floatPrefix(raw) != raw {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
