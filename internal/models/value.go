// filepath: internal/models/value.go
package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindTime // date and time of day
	KindDate // calendar date only
	KindList // list of strings
)

var kindNames = [...]string{"null", "bool", "int", "float", "string", "time", "date", "list"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a single field value exchanged with the repository.
// The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	t    time.Time
	list []string
}

func Null() Value {
	return Value{}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Time holds t without its monotonic clock reading.
func Time(t time.Time) Value {
	return Value{kind: KindTime, t: t.Round(0)}
}

// Date keeps only the calendar date of t, as midnight UTC.
func Date(t time.Time) Value {
	y, m, d := t.Date()
	return Value{kind: KindDate, t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// List copies items. List() is an empty, non-nil list.
func List(items ...string) Value {
	return Value{kind: KindList, list: append([]string{}, items...)}
}

// Of converts a plain Go value into a Value.
func Of(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return ofUint(uint64(x))
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return ofUint(x)
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case string:
		return String(x), nil
	case []byte:
		return String(string(x)), nil
	case time.Time:
		return Time(x), nil
	case *time.Time:
		if x == nil {
			return Null(), nil
		}
		return Time(*x), nil
	case []string:
		return List(x...), nil
	case []any:
		items := make([]string, 0, len(x))
		for i, item := range x {
			s, ok := item.(string)
			if !ok {
				return Value{}, fmt.Errorf("list element %d: unsupported type %T", i, item)
			}
			items = append(items, s)
		}
		return List(items...), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", v)
	}
}

func ofUint(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, fmt.Errorf("value %d overflows int64", u)
	}
	return Int(int64(u)), nil
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInt
}

func (v Value) AsFloat() (float64, bool) {
	return v.f, v.kind == KindFloat
}

func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsTime returns the held time for both KindTime and KindDate.
func (v Value) AsTime() (time.Time, bool) {
	return v.t, v.kind == KindTime || v.kind == KindDate
}

// AsList returns a copy of the held list.
func (v Value) AsList() ([]string, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return append([]string{}, v.list...), true
}

// Equal compares kind and payload. Times compare with time.Time.Equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindTime, KindDate:
		return v.t.Equal(o.t)
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != o.list[i] {
				return false
			}
		}
		return true
	}
	return false
}

// String renders the value for display.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "NULL"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindTime:
		return v.t.Format(time.RFC3339Nano)
	case KindDate:
		return v.t.Format(time.DateOnly)
	case KindList:
		return "[" + strings.Join(v.list, ", ") + "]"
	}
	return ""
}
