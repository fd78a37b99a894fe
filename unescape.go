package reqcore

import (
	"github.com/wattstack/reqcore/internal/arena"
)

// unescapeQuery percent-decodes s for a query key or value, additionally
// converting '+' to ' ' per the application/x-www-form-urlencoded
// convention. unescapePath is identical minus the '+' conversion, per the
// QueryUnescape/PathUnescape split the ecosystem uses.
func unescapeQuery(s []byte, a *arena.Arena) ([]byte, error) {
	return unescape(s, a, true)
}

// unescapePath percent-decodes s for a request-target path segment. '+' is
// left as a literal plus, matching PathUnescape's contract.
func unescapePath(s []byte, a *arena.Arena) ([]byte, error) {
	return unescape(s, a, false)
}

// unescape decodes %XX hex escapes in s, and optionally '+' to ' '. When s
// needs no decoding it is returned unchanged (still borrowed from the
// caller's buffer, zero allocation). When decoding is needed the result is
// carved from a, so the caller never owns a slice outliving the arena's
// next Reset.
func unescape(s []byte, a *arena.Arena, plusAsSpace bool) ([]byte, error) {
	needsDecode := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%':
			if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
				return nil, ErrInvalidRequestTarget
			}
			needsDecode = true
			i += 2
		case '+':
			if plusAsSpace {
				needsDecode = true
			}
		}
	}
	if !needsDecode {
		return s, nil
	}

	out := a.Alloc(len(s))
	out = out[:0]
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '%':
			out = append(out, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
		case c == '+' && plusAsSpace:
			out = append(out, ' ')
		default:
			out = append(out, c)
		}
	}
	return out, nil
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
