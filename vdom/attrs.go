package vdom

import (
	"fmt"
	"sort"
)

// AttrOp is one change to apply to a DOM element's attributes.
type AttrOp struct {
	Key    string
	Value  string
	Remove bool
}

// IsEventKey reports whether an attribute key holds an event handler
// ("onClick", "onInput"). Those are attached as listeners, never as attributes.
func IsEventKey(key string) bool {
	return len(key) > 2 && key[0] == 'o' && key[1] == 'n'
}

// attrOp maps one attribute value to its DOM operation. Boolean attributes
// are present when true and removed when false.
func attrOp(key string, value any) AttrOp {
	switch v := value.(type) {
	case bool:
		if v {
			return AttrOp{Key: key, Value: ""}
		}
		return AttrOp{Key: key, Remove: true}
	case string:
		return AttrOp{Key: key, Value: v}
	default:
		return AttrOp{Key: key, Value: fmt.Sprint(v)}
	}
}

// DiffAttributes returns the operations that turn an element rendered from
// oldAttrs into one rendered from newAttrs. A nil oldAttrs means the element
// is new. Operations are sorted by key.
func DiffAttributes(oldAttrs, newAttrs map[string]any) []AttrOp {
	var ops []AttrOp

	for key := range oldAttrs {
		if IsEventKey(key) {
			continue
		}
		if _, exists := newAttrs[key]; !exists {
			ops = append(ops, AttrOp{Key: key, Remove: true})
		}
	}

	for key, value := range newAttrs {
		if IsEventKey(key) {
			continue
		}
		old, had := oldAttrs[key]
		if had && old == value {
			continue
		}
		op := attrOp(key, value)
		if op.Remove && !had {
			// Never set, nothing to remove.
			continue
		}
		ops = append(ops, op)
	}

	sort.Slice(ops, func(i, j int) bool { return ops[i].Key < ops[j].Key })
	return ops
}
