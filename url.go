package reqcore

import (
	"bytes"

	"github.com/wattstack/reqcore/internal/arena"
)

// SplitTarget splits a raw request-target into its path and raw query
// components on the first '?'. The wildcard target "*" (OPTIONS *) is
// returned unchanged as path with no query. The returned slices borrow
// target's backing array; neither is percent-decoded.
func SplitTarget(target []byte) (path, rawQuery []byte) {
	if string(target) == wildcardTarget {
		return target, nil
	}
	if i := bytes.IndexByte(target, '?'); i >= 0 {
		return target[:i], target[i+1:]
	}
	return target, nil
}

// ParseQuery decodes a raw query string ("a=b&c=d") into store, one entry
// per '&'-separated pair. A pair without '=' is stored with an empty
// value. Both key and value are percent-decoded (with '+' treated as
// space) via a, falling back to the store's ErrStoreFull once its capacity
// is reached — additional pairs beyond capacity are silently dropped,
// matching KeyValueStore.Add's fixed-capacity contract.
func ParseQuery(rawQuery []byte, store *KeyValueStore, a *arena.Arena) error {
	for len(rawQuery) > 0 {
		var pair []byte
		if i := bytes.IndexByte(rawQuery, '&'); i >= 0 {
			pair, rawQuery = rawQuery[:i], rawQuery[i+1:]
		} else {
			pair, rawQuery = rawQuery, nil
		}
		if len(pair) == 0 {
			continue
		}

		var key, value []byte
		if i := bytes.IndexByte(pair, '='); i >= 0 {
			key, value = pair[:i], pair[i+1:]
		} else {
			key = pair
		}

		decodedKey, err := unescapeQuery(key, a)
		if err != nil {
			return err
		}
		decodedValue, err := unescapeQuery(value, a)
		if err != nil {
			return err
		}

		if err := store.Add(decodedKey, decodedValue); err != nil {
			if err == ErrStoreFull {
				return nil
			}
			return err
		}
	}
	return nil
}
