package normalize

import "strings"

// splitPath turns "data[].account" into ["data[]", "account"]. The empty path
// addresses the document root.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// splitLast separates a path into its parent segments and final field name.
func splitLast(path string) ([]string, string) {
	segs := splitPath(path)
	if len(segs) == 0 {
		return nil, ""
	}
	return segs[:len(segs)-1], strings.TrimSuffix(segs[len(segs)-1], "[]")
}

// walk calls fn on every object reached by following segs from node.
// A segment ending in "[]" fans out over the elements of an array.
func walk(node any, segs []string, fn func(map[string]any)) {
	m, ok := node.(map[string]any)
	if !ok {
		return
	}
	if len(segs) == 0 {
		fn(m)
		return
	}

	seg := segs[0]
	name := strings.TrimSuffix(seg, "[]")
	child, ok := m[name]
	if !ok {
		return
	}

	if name != seg {
		items, ok := child.([]any)
		if !ok {
			// Some endpoints return a single object where a list is expected.
			walk(child, segs[1:], fn)
			return
		}
		for _, item := range items {
			walk(item, segs[1:], fn)
		}
		return
	}
	walk(child, segs[1:], fn)
}

// clone deep-copies decoded JSON.
func clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = clone(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = clone(val)
		}
		return out
	default:
		return v
	}
}
