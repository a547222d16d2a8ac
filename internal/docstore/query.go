package docstore

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Filter is an equality predicate on a (possibly dotted) field.
type Filter struct {
	Field string
	Value any
}

// Order sorts results by a field. Ties are broken by creation sequence, so
// documents written in the same millisecond keep their commit order.
type Order struct {
	Field string
	Desc  bool
}

// Query selects documents of a single collection.
type Query struct {
	Collection string
	Filters    []Filter
	OrderBy    []Order
	Limit      int
}

// Collection starts a query over the collection at path.
func Collection(path string) Query {
	return Query{Collection: path}
}

// Where returns a copy of q with an extra equality filter.
func (q Query) Where(field string, v any) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), Filter{Field: field, Value: v})
	return q
}

// OrderByField returns a copy of q with an extra sort key.
func (q Query) OrderByField(field string, desc bool) Query {
	q.OrderBy = append(append([]Order(nil), q.OrderBy...), Order{Field: field, Desc: desc})
	return q
}

// WithLimit returns a copy of q capped at n results (0 = unlimited).
func (q Query) WithLimit(n int) Query {
	q.Limit = n
	return q
}

func (q Query) String() string {
	var b strings.Builder
	b.WriteString(q.Collection)
	for _, f := range q.Filters {
		fmt.Fprintf(&b, " where %s==%v", f.Field, f.Value)
	}
	for _, o := range q.OrderBy {
		fmt.Fprintf(&b, " order %s desc=%t", o.Field, o.Desc)
	}
	if q.Limit > 0 {
		fmt.Fprintf(&b, " limit %d", q.Limit)
	}
	return b.String()
}

// ApplyQuery filters, sorts and limits the documents of q.Collection.
// Backends call it on the full collection listing.
func ApplyQuery(q Query, docs []*Snapshot) ([]*Snapshot, error) {
	filters := make([]any, len(q.Filters))
	for i, f := range q.Filters {
		v, err := normalize(f.Value)
		if err != nil {
			return nil, fmt.Errorf("filter %s: %w", f.Field, err)
		}
		filters[i] = v
	}

	type row struct {
		snap   *Snapshot
		fields map[string]any
	}
	rows := make([]row, 0, len(docs))
	for _, d := range docs {
		fields, err := d.Fields()
		if err != nil {
			return nil, err
		}
		match := true
		for i, f := range q.Filters {
			v, ok := lookupField(fields, f.Field)
			if !ok || !reflect.DeepEqual(v, filters[i]) {
				match = false
				break
			}
		}
		if match {
			rows = append(rows, row{snap: d, fields: fields})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		for _, o := range q.OrderBy {
			a, _ := lookupField(rows[i].fields, o.Field)
			b, _ := lookupField(rows[j].fields, o.Field)
			c := compareValues(a, b)
			if c == 0 {
				continue
			}
			if o.Desc {
				return c > 0
			}
			return c < 0
		}
		desc := len(q.OrderBy) > 0 && q.OrderBy[0].Desc
		si, sj := rows[i].snap, rows[j].snap
		if si.CreateSeq != sj.CreateSeq {
			if desc {
				return si.CreateSeq > sj.CreateSeq
			}
			return si.CreateSeq < sj.CreateSeq
		}
		return si.Path < sj.Path
	})

	if q.Limit > 0 && len(rows) > q.Limit {
		rows = rows[:q.Limit]
	}
	out := make([]*Snapshot, len(rows))
	for i, r := range rows {
		out[i] = r.snap
	}
	return out, nil
}

// compareValues orders missing < bool < number < string; values of other
// types compare equal.
func compareValues(a, b any) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch av := a.(type) {
	case bool:
		bv := b.(bool)
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		default:
			return 1
		}
	case float64:
		bv := b.(float64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case string:
		return strings.Compare(av, b.(string))
	}
	return 0
}

func rank(v any) int {
	switch v.(type) {
	case nil:
		return 0
	case bool:
		return 1
	case float64:
		return 2
	case string:
		return 3
	}
	return 4
}
