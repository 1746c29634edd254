package label

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// InvalidDate is rendered for date extractors whose value cannot be parsed
const InvalidDate = "Invalid date"

// DefaultDatePattern is used by date extractors without a format
const DefaultDatePattern = "YYYY-MM-DDTHH:mm:ssZ"

// parseInstant interprets a metadata value as an instant. Numbers are epoch
// milliseconds, strings go through cast's date grammar with loc as the zone
// for values that carry none.
func parseInstant(v interface{}, loc *time.Location) (time.Time, bool) {
	switch val := v.(type) {
	case nil, bool:
		return time.Time{}, false
	case time.Time:
		return val, true
	case *time.Time:
		if val == nil {
			return time.Time{}, false
		}
		return *val, true
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return time.Time{}, false
		}
		t, err := cast.ToTimeInDefaultLocationE(s, loc)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	case float64:
		return fromMillis(val)
	case float32:
		return fromMillis(float64(val))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return time.UnixMilli(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(u)), true
	}

	t, err := cast.ToTimeInDefaultLocationE(v, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func fromMillis(ms float64) (time.Time, bool) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > 8.64e15 {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)), true
}

// dateTokens maps moment-style pattern tokens to renderers
var dateTokens = map[string]func(t time.Time) string{
	"YYYY": func(t time.Time) string { return fmt.Sprintf("%04d", t.Year()) },
	"YY":   func(t time.Time) string { return fmt.Sprintf("%02d", t.Year()%100) },
	"Y":    func(t time.Time) string { return strconv.Itoa(t.Year()) },
	"Q":    func(t time.Time) string { return strconv.Itoa((int(t.Month())-1)/3 + 1) },
	"MMMM": func(t time.Time) string { return t.Month().String() },
	"MMM":  func(t time.Time) string { return t.Month().String()[:3] },
	"MM":   func(t time.Time) string { return fmt.Sprintf("%02d", int(t.Month())) },
	"Mo":   func(t time.Time) string { return ordinal(int(t.Month())) },
	"M":    func(t time.Time) string { return strconv.Itoa(int(t.Month())) },
	"DDDD": func(t time.Time) string { return fmt.Sprintf("%03d", t.YearDay()) },
	"DDD":  func(t time.Time) string { return strconv.Itoa(t.YearDay()) },
	"DD":   func(t time.Time) string { return fmt.Sprintf("%02d", t.Day()) },
	"Do":   func(t time.Time) string { return ordinal(t.Day()) },
	"D":    func(t time.Time) string { return strconv.Itoa(t.Day()) },
	"dddd": func(t time.Time) string { return t.Weekday().String() },
	"ddd":  func(t time.Time) string { return t.Weekday().String()[:3] },
	"dd":   func(t time.Time) string { return t.Weekday().String()[:2] },
	"d":    func(t time.Time) string { return strconv.Itoa(int(t.Weekday())) },
	"E":    func(t time.Time) string { return strconv.Itoa(isoWeekday(t)) },
	"WW":   func(t time.Time) string { _, w := t.ISOWeek(); return fmt.Sprintf("%02d", w) },
	"W":    func(t time.Time) string { _, w := t.ISOWeek(); return strconv.Itoa(w) },
	"GGGG": func(t time.Time) string { y, _ := t.ISOWeek(); return fmt.Sprintf("%04d", y) },
	"HH":   func(t time.Time) string { return fmt.Sprintf("%02d", t.Hour()) },
	"H":    func(t time.Time) string { return strconv.Itoa(t.Hour()) },
	"hh":   func(t time.Time) string { return fmt.Sprintf("%02d", hour12(t)) },
	"h":    func(t time.Time) string { return strconv.Itoa(hour12(t)) },
	"kk":   func(t time.Time) string { return fmt.Sprintf("%02d", hour24(t)) },
	"k":    func(t time.Time) string { return strconv.Itoa(hour24(t)) },
	"mm":   func(t time.Time) string { return fmt.Sprintf("%02d", t.Minute()) },
	"m":    func(t time.Time) string { return strconv.Itoa(t.Minute()) },
	"ss":   func(t time.Time) string { return fmt.Sprintf("%02d", t.Second()) },
	"s":    func(t time.Time) string { return strconv.Itoa(t.Second()) },
	"SSS":  func(t time.Time) string { return fmt.Sprintf("%03d", t.Nanosecond()/1e6) },
	"SS":   func(t time.Time) string { return fmt.Sprintf("%02d", t.Nanosecond()/1e7) },
	"S":    func(t time.Time) string { return strconv.Itoa(t.Nanosecond() / 1e8) },
	"A":    func(t time.Time) string { return meridiem(t) },
	"a":    func(t time.Time) string { return strings.ToLower(meridiem(t)) },
	"ZZ":   func(t time.Time) string { return t.Format("-0700") },
	"Z":    func(t time.Time) string { return t.Format("-07:00") },
	"X":    func(t time.Time) string { return strconv.FormatInt(t.Unix(), 10) },
	"x":    func(t time.Time) string { return strconv.FormatInt(t.UnixMilli(), 10) },
}

// tokenOrder lists dateTokens longest first so "MMMM" wins over "MM"
var tokenOrder = func() []string {
	keys := make([]string, 0, len(dateTokens))
	for k := range dateTokens {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// FormatDate renders t with a moment-style pattern. Text inside square
// brackets is copied literally; characters that are not tokens pass through.
func FormatDate(t time.Time, pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		if pattern[i] == '[' {
			if end := strings.IndexByte(pattern[i+1:], ']'); end >= 0 {
				b.WriteString(pattern[i+1 : i+1+end])
				i += end + 2
				continue
			}
		}

		matched := false
		for _, tok := range tokenOrder {
			if strings.HasPrefix(pattern[i:], tok) {
				b.WriteString(dateTokens[tok](t))
				i += len(tok)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(pattern[i])
			i++
		}
	}
	return b.String()
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

func isoWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}

func hour24(t time.Time) int {
	if t.Hour() == 0 {
		return 24
	}
	return t.Hour()
}

func meridiem(t time.Time) string {
	if t.Hour() < 12 {
		return "AM"
	}
	return "PM"
}
