package validator

import "strings"

// SplitPath splits a dotted path into its segments. An empty path has no
// segments.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// GetValue returns the value addressed by a dotted path such as
// "company.address.streetName". It descends one segment at a time and
// reports false as soon as a segment is missing.
func GetValue(obj any, path string) (any, bool) {
	_, value, ok := resolve(obj, SplitPath(path))
	return value, ok
}

// resolve walks the segments and also returns the object that contains the
// last segment, which rules receive as their parent.
func resolve(obj any, segments []string) (parent, value any, ok bool) {
	if len(segments) == 0 {
		return nil, nil, false
	}

	current := obj
	for i, seg := range segments {
		v, found := lookupField(current, seg)
		if !found {
			if i == len(segments)-1 {
				return current, nil, false
			}
			return nil, nil, false
		}
		if i == len(segments)-1 {
			return current, v, true
		}
		current = v
	}
	return nil, nil, false
}

// Add appends message to the leaf addressed by a dotted path, creating
// every missing intermediate node as an empty nested tree. Only the full
// path receives the message. A leaf found where an intermediate node is
// needed is replaced by a nested tree.
func (t ErrorTree) Add(path, message string) {
	segments := SplitPath(path)
	if len(segments) == 0 {
		return
	}

	current := t
	for _, seg := range segments[:len(segments)-1] {
		next, ok := current[seg].(ErrorTree)
		if !ok {
			next = make(ErrorTree)
			current[seg] = next
		}
		current = next
	}

	last := segments[len(segments)-1]
	msgs, _ := current[last].(Messages)
	current[last] = append(msgs, message)
}
