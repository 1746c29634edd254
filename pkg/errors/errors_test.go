// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code inspection

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/fmlabel/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "file not found",
			wantStr: "[NOT_FOUND] file not found",
		},
		{
			name:    "index_error",
			code:    errors.ErrIndexOutRange,
			message: "no extractor at 4",
			wantStr: "[INDEX_OUT_OF_RANGE] no extractor at 4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	base := stderrors.New("disk full")

	err := errors.Wrapf(base, errors.ErrConfigSave, "failed to write %s", "settings.toml")
	require.NotNil(t, err)

	assert.Equal(t, "[CONFIG_SAVE] failed to write settings.toml: disk full", err.Error())
	assert.True(t, stderrors.Is(err, base))
	assert.Nil(t, errors.Wrap(nil, errors.ErrConfigSave, "nothing"))
}

func TestIsByCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrConfigParse, "bad toml"))

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrConfigParse, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrConfigLoad, "")))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	assert.Equal(t, errors.ErrConfigParse, errors.GetErrorCode(err))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrIndexOutRange, "bad index").
		WithDetail("index", 3).
		WithDetail("len", 2)

	details := errors.GetErrorDetails(err)
	assert.Equal(t, 3, details["index"])
	assert.Equal(t, 2, details["len"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}
