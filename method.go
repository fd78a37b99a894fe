package reqcore

import "encoding/binary"

// ParseMethodID dispatches the first token of the request line to a method
// ID. It reads the first four bytes as a little-endian integer and compares
// against the key4* constants in one shot — grounded on the teacher's
// length-switch method.go, adapted to the single-integer-compare form the
// request line's fixed method-phase layout allows, since GET/PUT/POST/HEAD/
// PATCH/DELETE/OPTIONS all differ within their first four bytes. PATCH,
// DELETE and OPTIONS are longer than the four-byte key, so their remaining
// bytes ("H", "TE", "ONS") are checked after the key matches.
//
// line must include the trailing space or cover at least 4 bytes; method
// names shorter than 4 bytes before a space (none of the supported methods
// are) would never match and fall through to MethodUnknown.
func ParseMethodID(line []byte) (id uint8, length int) {
	if len(line) < 4 {
		return MethodUnknown, 0
	}
	key := binary.LittleEndian.Uint32(line)
	switch key {
	case key4GET:
		return MethodGET, 3
	case key4PUT:
		return MethodPUT, 3
	case key4POST:
		return MethodPOST, 4
	case key4HEAD:
		return MethodHEAD, 4
	case key4PATC:
		if len(line) >= 5 && line[4] == 'H' {
			return MethodPATCH, 5
		}
		return MethodUnknown, 0
	case key4DELE:
		if len(line) >= 6 && line[4] == 'T' && line[5] == 'E' {
			return MethodDELETE, 6
		}
		return MethodUnknown, 0
	case key4OPTI:
		if len(line) >= 7 && line[4] == 'O' && line[5] == 'N' && line[6] == 'S' {
			return MethodOPTIONS, 7
		}
		return MethodUnknown, 0
	default:
		return MethodUnknown, 0
	}
}
