package types_test

import (
	"testing"

	"github.com/arthur-debert/fmlabel/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := types.DefaultConfig()

	require.Len(t, cfg.Extractors, 1)
	assert.Equal(t, types.ExtractorSpec{Key: "", Kind: types.KindRaw}, cfg.Extractors[0])
	assert.Equal(t, "|", cfg.Separator)
}

func TestConfigCloneIsIndependent(t *testing.T) {
	cfg := types.Config{
		Extractors: []types.ExtractorSpec{{Key: "title", Kind: types.KindRaw}},
		Separator:  " - ",
	}

	clone := cfg.Clone()
	clone.Extractors[0].Key = "changed"
	clone.Extractors = append(clone.Extractors, types.ExtractorSpec{Key: "date", Kind: types.KindDate})

	assert.Equal(t, "title", cfg.Extractors[0].Key)
	assert.Len(t, cfg.Extractors, 1)
	assert.Nil(t, types.Config{}.Clone().Extractors)
}

func TestConfigEqual(t *testing.T) {
	base := types.Config{
		Extractors: []types.ExtractorSpec{{Key: "created", Kind: types.KindDate, Format: "YYYY"}},
		Separator:  "|",
	}

	tests := []struct {
		name  string
		other types.Config
		want  bool
	}{
		{"same", base.Clone(), true},
		{"separator", types.Config{Extractors: base.Extractors, Separator: ","}, false},
		{"format", types.Config{Extractors: []types.ExtractorSpec{{Key: "created", Kind: types.KindDate}}, Separator: "|"}, false},
		{"length", types.Config{Separator: "|"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Equal(tt.other))
		})
	}
}

func TestKindKnown(t *testing.T) {
	assert.True(t, types.KindRaw.Known())
	assert.True(t, types.KindDate.Known())
	assert.False(t, types.Kind("upper").Known())
}

func TestExtractorString(t *testing.T) {
	assert.Equal(t, "title:raw", types.ExtractorSpec{Key: "title", Kind: types.KindRaw}.String())
	assert.Equal(t, "d:date(YYYY)", types.ExtractorSpec{Key: "d", Kind: types.KindDate, Format: "YYYY"}.String())
	assert.Equal(t, "d:date", types.ExtractorSpec{Key: "d", Kind: types.KindDate}.String())
}

func TestSnapshotLookup(t *testing.T) {
	var empty types.Snapshot
	_, ok := empty.Lookup("a")
	assert.False(t, ok)

	s := types.Snapshot{"a": nil}
	v, ok := s.Lookup("a")
	assert.True(t, ok)
	assert.Nil(t, v)
}
