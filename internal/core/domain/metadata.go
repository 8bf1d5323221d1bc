package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Metadata carries scalar key-value pairs attached to a chunk.
// The destination store only supports strings, integers, floats and
// booleans, so richer values are rejected before they reach the
// identity function or the output boundary.
type Metadata map[string]any

// Validate checks every value against the supported scalar set.
// Returns ErrInvalidMetadata naming the first offending key.
func (m Metadata) Validate() error {
	for _, key := range m.sortedKeys() {
		switch m[key].(type) {
		case string, bool, int, int32, int64, float32, float64:
		default:
			return fmt.Errorf("%w: key %q holds %T", ErrInvalidMetadata, key, m[key])
		}
	}
	return nil
}

// Canonical renders the metadata as a single deterministic string:
// keys in sorted order, each as key=value, joined by semicolons.
// Identical logical metadata always renders identically, across runs
// and platforms, which makes it safe to hash.
func (m Metadata) Canonical() string {
	keys := m.sortedKeys()
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+"="+formatScalar(m[key]))
	}
	return strings.Join(parts, ";")
}

func (m Metadata) sortedKeys() []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func formatScalar(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		// Validate rejects these before hashing; Sprintf keeps
		// Canonical total for direct callers.
		return fmt.Sprintf("%v", val)
	}
}
