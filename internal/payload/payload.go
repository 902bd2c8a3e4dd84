// Package payload provides defensive access to loosely-typed upstream
// payload trees (the map[string]any structures produced by decoding XML or
// JSON of uncertain shape). All knowledge of upstream schema variance is
// meant to live in the candidate path lists passed to Resolve, not in the
// business logic consuming the values.
package payload

// Walk descends a payload tree following keys. A list encountered at any
// step collapses to its first element (upstream feeds represent "one or
// many" inconsistently). Returns nil when any step is missing or the shape
// does not match.
func Walk(node any, keys ...string) any {
	cur := node
	for _, key := range keys {
		if cur == nil {
			return nil
		}
		if list, ok := cur.([]any); ok {
			if len(list) == 0 {
				return nil
			}
			cur = list[0]
		}
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[key]
	}
	if list, ok := cur.([]any); ok {
		if len(list) == 0 {
			return nil
		}
		cur = list[0]
	}
	return cur
}

// Resolve tries each candidate path in order and returns the first present
// value, or nil when none resolves.
func Resolve(node any, paths ...[]string) any {
	for _, p := range paths {
		if v := Walk(node, p...); v != nil {
			return v
		}
	}
	return nil
}

// String resolves the first present path to a string. Non-string scalars
// and missing values yield the fallback.
func String(node any, fallback string, paths ...[]string) string {
	v := Resolve(node, paths...)
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

// List normalises an "absent, single object, or list" field into a slice.
func List(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		return t
	default:
		return []any{t}
	}
}
