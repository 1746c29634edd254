package label

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, time.May, 7, 15, 4, 5, 123456789, time.UTC)

	tests := []struct {
		pattern string
		want    string
	}{
		{"YYYY", "2024"},
		{"YY", "24"},
		{"Y", "2024"},
		{"Q", "2"},
		{"MMMM", "May"},
		{"MMM", "May"},
		{"MM", "05"},
		{"Mo", "5th"},
		{"M", "5"},
		{"DDDD", "128"},
		{"DDD", "128"},
		{"DD", "07"},
		{"Do", "7th"},
		{"D", "7"},
		{"dddd", "Tuesday"},
		{"ddd", "Tue"},
		{"dd", "Tu"},
		{"d", "2"},
		{"E", "2"},
		{"W", "19"},
		{"GGGG-[W]WW", "2024-W19"},
		{"HH:mm:ss", "15:04:05"},
		{"H", "15"},
		{"hh h A a", "03 3 PM pm"},
		{"kk k", "15 15"},
		{"m s", "4 5"},
		{"SSS SS S", "123 12 1"},
		{"Z", "+00:00"},
		{"ZZ", "+0000"},
		{"X", "1715094245"},
		{"x", "1715094245123"},
		{"[Quarter] Q", "Quarter 2"},
		{"[[nested]", "[nested"},
		{"dddd, MMMM Do YYYY, h:mm:ss a", "Tuesday, May 7th 2024, 3:04:05 pm"},
		{"YYYY/MM/DD · é", "2024/05/07 · é"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(ts, tt.pattern))
		})
	}
}

func TestFormatDateClockEdges(t *testing.T) {
	midnight := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "12 AM 24", FormatDate(midnight, "h A k"))

	noon := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "12 PM 12", FormatDate(noon, "h A k"))

	sunday := time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "0 7", FormatDate(sunday, "d E"))
}

func TestOrdinal(t *testing.T) {
	cases := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th",
		13: "13th", 21: "21st", 22: "22nd", 23: "23rd", 31: "31st", 111: "111th",
	}
	for n, want := range cases {
		assert.Equal(t, want, ordinal(n))
	}
}

func TestFixedZoneOffsets(t *testing.T) {
	zone := time.FixedZone("X", -(5*60+30)*60)
	ts := time.Date(2024, time.May, 7, 15, 4, 5, 0, zone)
	assert.Equal(t, "-05:30 -0530", FormatDate(ts, "Z ZZ"))
}
