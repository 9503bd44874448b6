// filepath: internal/repository/convert.go
package repository

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"focusboard/internal/models"
)

// Type coercion between models.Value and SQLite storage classes.
//
// to-storage (always, by value kind):
//
//	Null   → NULL
//	Bool   → INTEGER 1 / 0
//	Int    → INTEGER
//	Float  → REAL
//	String → TEXT
//	Time   → TEXT, RFC 3339 in UTC with a fixed nine digit fraction
//	Date   → TEXT, YYYY-MM-DD
//	List   → TEXT, JSON array
//
// from-storage is decided by column NAME, not by declared type. NULL is always
// returned as Null. The first matching rule in fromStorageRules wins; columns
// that match no rule get the plain mapping of the driver value.

// coercionRule converts a non-NULL stored value for the columns it matches.
type coercionRule struct {
	name    string
	matches func(column string) bool
	convert func(raw any) models.Value
}

var fromStorageRules = []coercionRule{
	{
		name:    "flag",
		matches: named("urgent", "important", "completed"),
		convert: storedBool,
	},
	{
		name:    "date",
		matches: named("due_date", "target_date"),
		convert: storedDate,
	},
	{
		name: "timestamp",
		matches: func(column string) bool {
			return strings.HasSuffix(column, "_at")
		},
		convert: storedTime,
	},
	{
		name:    "tag list",
		matches: named("tags"),
		convert: storedList,
	},
}

func named(names ...string) func(string) bool {
	return func(column string) bool {
		for _, n := range names {
			if column == n {
				return true
			}
		}
		return false
	}
}

// storedTimeLayout is RFC 3339 in UTC with a fixed nine digit fraction, so
// stored times compare in time order as text.
const storedTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ToStorage returns the driver value stored for v.
func ToStorage(v models.Value) any {
	switch v.Kind() {
	case models.KindBool:
		if b, _ := v.AsBool(); b {
			return int64(1)
		}
		return int64(0)
	case models.KindInt:
		i, _ := v.AsInt()
		return i
	case models.KindFloat:
		f, _ := v.AsFloat()
		return f
	case models.KindString:
		s, _ := v.AsString()
		return s
	case models.KindTime:
		t, _ := v.AsTime()
		return t.UTC().Format(storedTimeLayout)
	case models.KindDate:
		t, _ := v.AsTime()
		return t.Format(time.DateOnly)
	case models.KindList:
		items, _ := v.AsList()
		b, err := json.Marshal(items)
		if err != nil {
			// []string always marshals
			panic(err)
		}
		return string(b)
	default:
		return nil
	}
}

// FromStorage converts a driver value read from column into a Value.
func FromStorage(column string, raw any) models.Value {
	if raw == nil {
		return models.Null()
	}
	for _, rule := range fromStorageRules {
		if rule.matches(column) {
			return rule.convert(raw)
		}
	}
	return plainValue(raw)
}

// plainValue maps a driver value without any name-based coercion.
func plainValue(raw any) models.Value {
	switch x := raw.(type) {
	case nil:
		return models.Null()
	case int64:
		return models.Int(x)
	case int:
		return models.Int(int64(x))
	case float64:
		return models.Float(x)
	case bool:
		return models.Bool(x)
	case string:
		return models.String(x)
	case []byte:
		return models.String(string(x))
	case time.Time:
		return models.Time(x)
	default:
		return models.String(fmt.Sprint(raw))
	}
}

func storedBool(raw any) models.Value {
	switch x := raw.(type) {
	case bool:
		return models.Bool(x)
	case int64:
		return models.Bool(x != 0)
	case int:
		return models.Bool(x != 0)
	case float64:
		return models.Bool(x != 0)
	case string:
		if b, err := strconv.ParseBool(x); err == nil {
			return models.Bool(b)
		}
		return models.Bool(x != "")
	case []byte:
		return storedBool(string(x))
	}
	return plainValue(raw)
}

var storedTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
}

// storedTime parses ISO 8601 text. A string without 'T' or ':' is a date.
// Unparseable text is returned unchanged.
func storedTime(raw any) models.Value {
	switch x := raw.(type) {
	case time.Time:
		return models.Time(x)
	case []byte:
		return storedTime(string(x))
	case string:
		if !strings.ContainsAny(x, "T:") {
			if d, err := time.Parse(time.DateOnly, x); err == nil {
				return models.Date(d)
			}
			return models.String(x)
		}
		for _, layout := range storedTimeLayouts {
			if t, err := time.Parse(layout, x); err == nil {
				return models.Time(t)
			}
		}
		return models.String(x)
	}
	return plainValue(raw)
}

// storedDate is storedTime for date columns. Drivers return a time.Time for
// columns declared DATE or DATETIME; one at midnight UTC is a date.
func storedDate(raw any) models.Value {
	if t, ok := raw.(time.Time); ok {
		if t.Equal(t.UTC().Truncate(24 * time.Hour)) {
			return models.Date(t.UTC())
		}
		return models.Time(t)
	}
	return storedTime(raw)
}

// storedList decodes a JSON array. Empty text is an empty list; text that is
// not a JSON string array is returned unchanged.
func storedList(raw any) models.Value {
	var s string
	switch x := raw.(type) {
	case string:
		s = x
	case []byte:
		s = string(x)
	default:
		return plainValue(raw)
	}
	if s == "" {
		return models.List()
	}
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return models.String(s)
	}
	return models.List(items...)
}
