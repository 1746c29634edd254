package label

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// rawString renders a metadata value in its natural string form.
// Falsy values (nil, false, zero, NaN, "", empty lists) render as "".
func rawString(v interface{}) string {
	if isFalsy(v) {
		return ""
	}
	return naturalString(v)
}

func isFalsy(v interface{}) bool {
	if v == nil {
		return true
	}
	switch val := v.(type) {
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0 || math.IsNaN(val)
	case float32:
		return val == 0 || math.IsNaN(float64(val))
	case time.Time:
		return val.IsZero()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.IsZero()
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func naturalString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case time.Time:
		return instantString(val)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		items := make([]string, rv.Len())
		for i := range items {
			items[i] = elementString(rv.Index(i).Interface())
		}
		return strings.Join(items, ",")
	}
	if rv.Kind() == reflect.Map {
		return mapString(rv)
	}

	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

// elementString renders list members: nil is blank, false stays "false"
func elementString(v interface{}) string {
	if b, ok := v.(bool); ok {
		return cast.ToString(b)
	}
	return naturalString(v)
}

// mapString renders a mapping as key=value pairs sorted by key
func mapString(rv reflect.Value) string {
	pairs := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key := naturalString(iter.Key().Interface())
		pairs = append(pairs, key+"="+elementString(iter.Value().Interface()))
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

// instantString renders a time value: date-only at midnight, RFC 3339 otherwise
func instantString(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}
