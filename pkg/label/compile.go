package label

import (
	"strings"
	"time"

	"github.com/arthur-debert/fmlabel/pkg/types"
)

// Compiler compiles labels, parsing and rendering instants in Location.
// The zero value uses UTC.
type Compiler struct {
	Location *time.Location
}

// Compile builds the label for snapshot using the process local time zone
func Compile(extractors []types.ExtractorSpec, separator string, snapshot types.Snapshot) string {
	return Compiler{Location: time.Local}.Compile(extractors, separator, snapshot)
}

// Compile builds the label for snapshot. A nil snapshot yields "".
func (c Compiler) Compile(extractors []types.ExtractorSpec, separator string, snapshot types.Snapshot) string {
	if snapshot == nil {
		return ""
	}

	parts := make([]string, 0, len(extractors))
	for _, ex := range extractors {
		if out := c.Extract(ex, snapshot); out != "" {
			parts = append(parts, out)
		}
	}
	return strings.Join(parts, " "+separator+" ")
}

// Extract renders a single extractor against snapshot
func (c Compiler) Extract(ex types.ExtractorSpec, snapshot types.Snapshot) string {
	if ex.Key == "" {
		return ""
	}
	value, ok := snapshot.Lookup(ex.Key)
	if !ok {
		return ""
	}

	switch ex.Kind {
	case types.KindRaw:
		return rawString(value)
	case types.KindDate:
		t, ok := parseInstant(value, c.location())
		if !ok {
			return InvalidDate
		}
		pattern := ex.Format
		if pattern == "" {
			pattern = DefaultDatePattern
		}
		return FormatDate(t.In(c.location()), pattern)
	default:
		return ""
	}
}

func (c Compiler) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}
