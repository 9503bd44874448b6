// filepath: internal/models/record.go
package models

import (
	"fmt"
	"sort"
	"time"
)

// Record is one row exchanged with the repository, keyed by column name.
type Record map[string]Value

// NewRecord converts plain Go values with Of.
func NewRecord(fields map[string]any) (Record, error) {
	r := make(Record, len(fields))
	for k, v := range fields {
		val, err := Of(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		r[k] = val
	}
	return r, nil
}

// MustRecord is NewRecord for literals known to be valid. It panics otherwise.
func MustRecord(fields map[string]any) Record {
	r, err := NewRecord(fields)
	if err != nil {
		panic(err)
	}
	return r
}

// Keys returns the field names in sorted order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Equal reports whether both records hold the same keys with equal values.
func (r Record) Equal(o Record) bool {
	if len(r) != len(o) {
		return false
	}
	for k, v := range r {
		ov, ok := o[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// StringField returns the string held under key, or "".
func (r Record) StringField(key string) string {
	s, _ := r[key].AsString()
	return s
}

// BoolField accepts Bool and Int values; anything else is false.
func (r Record) BoolField(key string) bool {
	v := r[key]
	switch v.Kind() {
	case KindBool:
		b, _ := v.AsBool()
		return b
	case KindInt:
		i, _ := v.AsInt()
		return i != 0
	}
	return false
}

// IntField accepts Int, Float and Bool values; anything else is 0.
func (r Record) IntField(key string) int64 {
	v := r[key]
	switch v.Kind() {
	case KindInt:
		i, _ := v.AsInt()
		return i
	case KindFloat:
		f, _ := v.AsFloat()
		return int64(f)
	case KindBool:
		if b, _ := v.AsBool(); b {
			return 1
		}
	}
	return 0
}

// FloatField accepts Float and Int values; anything else is 0.
func (r Record) FloatField(key string) float64 {
	v := r[key]
	switch v.Kind() {
	case KindFloat:
		f, _ := v.AsFloat()
		return f
	case KindInt:
		i, _ := v.AsInt()
		return float64(i)
	}
	return 0
}

// TimeField returns the time held under key for Time and Date values.
func (r Record) TimeField(key string) (time.Time, bool) {
	return r[key].AsTime()
}

// ListField returns a copy of the list under key, or nil.
func (r Record) ListField(key string) []string {
	l, _ := r[key].AsList()
	return l
}
