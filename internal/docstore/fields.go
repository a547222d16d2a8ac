package docstore

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

type transform interface {
	apply(cur any, exists bool) (v any, keep bool, err error)
}

type increment struct{ n float64 }

// Increment adds n to a numeric field, treating a missing field as 0.
func Increment(n int64) any { return increment{n: float64(n)} }

func (t increment) apply(cur any, exists bool) (any, bool, error) {
	if !exists || cur == nil {
		return t.n, true, nil
	}
	f, ok := cur.(float64)
	if !ok {
		return nil, false, fmt.Errorf("increment non-numeric value %T", cur)
	}
	return f + t.n, true, nil
}

type arrayUnion struct{ vals []any }

// ArrayUnion appends each value not already present in an array field.
func ArrayUnion(vals ...any) any { return arrayUnion{vals: vals} }

func (t arrayUnion) apply(cur any, exists bool) (any, bool, error) {
	arr, err := asArray(cur, exists)
	if err != nil {
		return nil, false, err
	}
	for _, v := range t.vals {
		nv, err := normalize(v)
		if err != nil {
			return nil, false, err
		}
		if indexOf(arr, nv) < 0 {
			arr = append(arr, nv)
		}
	}
	return arr, true, nil
}

type arrayRemove struct{ vals []any }

// ArrayRemove drops every occurrence of the values from an array field.
func ArrayRemove(vals ...any) any { return arrayRemove{vals: vals} }

func (t arrayRemove) apply(cur any, exists bool) (any, bool, error) {
	arr, err := asArray(cur, exists)
	if err != nil {
		return nil, false, err
	}
	out := arr[:0:0]
	for _, item := range arr {
		drop := false
		for _, v := range t.vals {
			nv, err := normalize(v)
			if err != nil {
				return nil, false, err
			}
			if reflect.DeepEqual(item, nv) {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, item)
		}
	}
	return out, true, nil
}

type deleteField struct{}

// DeleteField removes the field.
func DeleteField() any { return deleteField{} }

func (deleteField) apply(any, bool) (any, bool, error) { return nil, false, nil }

func asArray(cur any, exists bool) ([]any, error) {
	if !exists || cur == nil {
		return []any{}, nil
	}
	arr, ok := cur.([]any)
	if !ok {
		return nil, fmt.Errorf("array transform on %T", cur)
	}
	return append([]any(nil), arr...), nil
}

func indexOf(arr []any, v any) int {
	for i, item := range arr {
		if reflect.DeepEqual(item, v) {
			return i
		}
	}
	return -1
}

// normalize converts v to the generic JSON shape (maps, slices, float64, ...)
// so values compare the same way they will after a round trip.
func normalize(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// encodeBody marshals a document value, which must encode as a JSON object.
func encodeBody(v any) (map[string]any, error) {
	nv, err := normalize(v)
	if err != nil {
		return nil, err
	}
	m, ok := nv.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document body must be an object, got %T", v)
	}
	return m, nil
}

// applyFields applies field updates to doc in key order. Dotted keys address
// nested maps, which are created as needed.
func applyFields(doc map[string]any, fields map[string]any) error {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		parts := strings.Split(key, ".")
		parent := doc
		for _, p := range parts[:len(parts)-1] {
			next, ok := parent[p].(map[string]any)
			if !ok {
				next = map[string]any{}
				parent[p] = next
			}
			parent = next
		}
		leaf := parts[len(parts)-1]

		if t, ok := fields[key].(transform); ok {
			cur, exists := parent[leaf]
			v, keep, err := t.apply(cur, exists)
			if err != nil {
				return fmt.Errorf("field %s: %w", key, err)
			}
			if keep {
				parent[leaf] = v
			} else {
				delete(parent, leaf)
			}
			continue
		}

		v, err := normalize(fields[key])
		if err != nil {
			return fmt.Errorf("field %s: %w", key, err)
		}
		parent[leaf] = v
	}
	return nil
}

// lookupField resolves a dotted field path in a decoded document.
func lookupField(doc map[string]any, field string) (any, bool) {
	var cur any = doc
	for _, p := range strings.Split(field, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
