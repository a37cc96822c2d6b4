package log

import "sort"

// Field keys shared across the code base.
const (
	FieldKeyRun     = "run"
	FieldKeyTool    = "tool"
	FieldKeyProfile = "profile"
)

// Fields type, used to pass to `WithFields`.
type Fields map[string]any

// Keys returns the sorted field keys, without the given keys.
func (fields Fields) Keys(removeKeys ...string) []string {
	keys := make([]string, 0, len(fields))

	for key := range fields {
		var skip bool

		for _, removeKey := range removeKeys {
			if key == removeKey {
				skip = true
				break
			}
		}

		if !skip {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)

	return keys
}
