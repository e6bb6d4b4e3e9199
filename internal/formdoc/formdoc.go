package formdoc

import "strconv"

// Doc is a JSON-like document as produced by json.Unmarshal into interface{}.
type Doc = map[string]any

// Path is an ordered list of keys identifying a leaf field. Numeric segments
// address slice elements.
type Path = []string

// Set returns a new document with the value at path replaced. Every container
// along the path is shallow-copied; containers off the path are shared with the
// input by reference. Missing intermediate keys are created as empty objects.
// The input document is never mutated.
func Set(root Doc, path Path, value any) Doc {
	if len(path) == 0 {
		return root
	}
	return set(root, path, value).(Doc)
}

func set(node any, path Path, value any) any {
	key := path[0]

	if arr, ok := node.([]any); ok {
		if idx, err := strconv.Atoi(key); err == nil && idx >= 0 && idx < len(arr) {
			out := make([]any, len(arr))
			copy(out, arr)
			if len(path) == 1 {
				out[idx] = value
			} else {
				out[idx] = set(arr[idx], path[1:], value)
			}
			return out
		}
	}

	// Anything that is not an indexable slice is treated as an object; a missing
	// or scalar intermediate becomes an empty object.
	m, _ := node.(map[string]any)
	out := make(map[string]any, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	if len(path) == 1 {
		out[key] = value
	} else {
		out[key] = set(m[key], path[1:], value)
	}
	return out
}

// Get resolves path against root. The second return is false when any segment
// is absent or addresses a scalar.
func Get(root Doc, path Path) (any, bool) {
	var cur any = root
	for _, key := range path {
		switch n := cur.(type) {
		case map[string]any:
			v, ok := n[key]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			idx, err := strconv.Atoi(key)
			if err != nil || idx < 0 || idx >= len(n) {
				return nil, false
			}
			cur = n[idx]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Str reads a string leaf, returning "" for absent or non-string values.
func Str(root Doc, path ...string) string {
	v, ok := Get(root, path)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Bool reads a boolean leaf, returning false for absent or non-bool values.
func Bool(root Doc, path ...string) bool {
	v, ok := Get(root, path)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Num coerces a leaf value to a number the way form inputs do: blank or
// unparsable strings count as zero.
func Num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		if n == "" {
			return 0
		}
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
