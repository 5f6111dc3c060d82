package validator

import "strings"

// ErrorNode is either Messages (failures of a leaf field) or a nested
// ErrorTree (failures inside a nested object).
type ErrorNode interface {
	errorNode()
}

// Messages holds the failure messages of one field in rule-declaration order.
type Messages []string

// ErrorTree maps field names to their failures. Fields without failures are
// absent, and a nil tree means no failures at all.
type ErrorTree map[string]ErrorNode

func (Messages) errorNode()  {}
func (ErrorTree) errorNode() {}

// JoinedNode is either a JoinedMessage or a nested JoinedErrors.
type JoinedNode interface {
	joinedNode()
}

// JoinedMessage is the space-joined Messages of one field.
type JoinedMessage string

// JoinedErrors mirrors an ErrorTree with every message list collapsed into
// a single string.
type JoinedErrors map[string]JoinedNode

func (JoinedMessage) joinedNode() {}
func (JoinedErrors) joinedNode()  {}

// Join collapses every leaf of the tree into one string per field, joining
// messages with a single space. It returns nil for a nil or empty tree.
func Join(tree ErrorTree) JoinedErrors {
	if len(tree) == 0 {
		return nil
	}

	joined := make(JoinedErrors, len(tree))
	for field, node := range tree {
		switch n := node.(type) {
		case Messages:
			joined[field] = JoinedMessage(strings.Join(n, " "))
		case ErrorTree:
			if sub := Join(n); sub != nil {
				joined[field] = sub
			}
		}
	}

	if len(joined) == 0 {
		return nil
	}
	return joined
}

// IsEmpty reports whether the tree holds no failures.
func (t ErrorTree) IsEmpty() bool {
	return len(t) == 0
}

// Clone returns a deep copy of the tree.
func (t ErrorTree) Clone() ErrorTree {
	if t == nil {
		return nil
	}

	out := make(ErrorTree, len(t))
	for field, node := range t {
		switch n := node.(type) {
		case Messages:
			out[field] = append(Messages(nil), n...)
		case ErrorTree:
			out[field] = n.Clone()
		}
	}
	return out
}

// Messages returns the failure messages stored at a dotted path, or nil
// when the path holds no leaf.
func (t ErrorTree) Messages(path string) []string {
	node, ok := t.node(SplitPath(path))
	if !ok {
		return nil
	}
	msgs, _ := node.(Messages)
	return msgs
}

// Subtree returns the nested tree stored at a dotted path.
func (t ErrorTree) Subtree(path string) (ErrorTree, bool) {
	node, ok := t.node(SplitPath(path))
	if !ok {
		return nil, false
	}
	sub, ok := node.(ErrorTree)
	return sub, ok
}

func (t ErrorTree) node(segments []string) (ErrorNode, bool) {
	if len(segments) == 0 {
		return nil, false
	}

	current := t
	for i, seg := range segments {
		node, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return node, true
		}
		next, ok := node.(ErrorTree)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

// Get returns the joined message stored at a dotted path.
func (j JoinedErrors) Get(path string) (string, bool) {
	segments := SplitPath(path)
	if len(segments) == 0 {
		return "", false
	}

	current := j
	for i, seg := range segments {
		node, ok := current[seg]
		if !ok {
			return "", false
		}
		if i == len(segments)-1 {
			msg, ok := node.(JoinedMessage)
			return string(msg), ok
		}
		next, ok := node.(JoinedErrors)
		if !ok {
			return "", false
		}
		current = next
	}
	return "", false
}
