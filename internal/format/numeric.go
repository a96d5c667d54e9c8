package format

// Canonical-number classification for subscript rendering.
//
// The engine sorts and displays a subscript as a number only when its bytes
// are the canonical representation of that number: no superfluous '+' or
// leading zeros, no trailing zeros after the decimal point, a fraction
// written as ".5" rather than "0.5", and never "-0". Anything else is an
// ordinary byte string, even if it happens to parse as numeric.

// IsCanonicalNumber reports whether b is a canonically written number.
//
// Examples:
//
//	IsCanonicalNumber([]byte("0"))     = true
//	IsCanonicalNumber([]byte("-3.14")) = true
//	IsCanonicalNumber([]byte(".5"))    = true
//	IsCanonicalNumber([]byte("0.5"))   = false (canonical form is ".5")
//	IsCanonicalNumber([]byte("01"))    = false
//	IsCanonicalNumber([]byte("1.50"))  = false
//	IsCanonicalNumber([]byte("-0"))    = false
func IsCanonicalNumber(b []byte) bool {
	i := 0
	neg := false
	if i < len(b) && b[i] == '-' {
		neg = true
		i++
	}

	intStart := i
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		i++
	}
	intLen := i - intStart

	fracLen := 0
	if i < len(b) && b[i] == '.' {
		i++
		fracStart := i
		for i < len(b) && b[i] >= '0' && b[i] <= '9' {
			i++
		}
		fracLen = i - fracStart
		if fracLen == 0 {
			return false // trailing '.' is never canonical
		}
		if b[fracStart+fracLen-1] == '0' {
			return false // trailing fractional zeros
		}
	}
	if i != len(b) {
		return false // stray non-digit bytes
	}
	if intLen == 0 && fracLen == 0 {
		return false // "", "-", "-."
	}

	// Leading-zero rules: a lone "0" is canonical, "00"/"01" are not, and
	// a zero integer part before a fraction must be omitted entirely.
	if intLen > 0 && b[intStart] == '0' {
		if intLen != 1 || fracLen != 0 {
			return false
		}
		if neg {
			return false // "-0"
		}
	}
	return true
}
