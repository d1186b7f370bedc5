package errors_test

import (
	"fmt"
	"testing"

	"github.com/arthur-debert/pkgls/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrPatternInvalid, "bad pattern")
	assert.Equal(t, errors.ErrPatternInvalid, err.Code)
	assert.Equal(t, "[PATTERN_INVALID] bad pattern", err.Error())
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrPackageNotFound, "package '%s' not found", "zlib")
	assert.Equal(t, "[PACKAGE_NOT_FOUND] package 'zlib' not found", err.Error())
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying failure")
	err := errors.Wrap(cause, errors.ErrCatalogRead, "failed to read catalog")

	require.NotNil(t, err)
	assert.Equal(t, errors.ErrCatalogRead, err.Code)
	assert.ErrorContains(t, err, "underlying failure")
	assert.Equal(t, cause, err.Unwrap())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrCatalogRead, "no error"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrCatalogRead, "no error %d", 1))
}

func TestIsMatchesOnCode(t *testing.T) {
	err := errors.Newf(errors.ErrFormatUnknown, "unknown format 'xml'")
	target := errors.New(errors.ErrFormatUnknown, "any message")

	assert.ErrorIs(t, err, target)
	assert.NotErrorIs(t, err, errors.New(errors.ErrNotFound, "other"))
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code errors.ErrorCode
		want bool
	}{
		{
			name: "direct match",
			err:  errors.New(errors.ErrPatternInvalid, "bad"),
			code: errors.ErrPatternInvalid,
			want: true,
		},
		{
			name: "wrapped match",
			err: errors.Wrap(
				errors.New(errors.ErrPatternInvalid, "bad"),
				errors.ErrInternal, "outer"),
			code: errors.ErrPatternInvalid,
			want: true,
		},
		{
			name: "no match",
			err:  errors.New(errors.ErrNotFound, "missing"),
			code: errors.ErrPatternInvalid,
			want: false,
		},
		{
			name: "plain error",
			err:  fmt.Errorf("plain"),
			code: errors.ErrPatternInvalid,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.IsCode(tt.err, tt.code))
		})
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrPatternInvalid, "bad pattern").
		WithDetail("pattern", "[abc")

	assert.Equal(t, "[abc", err.Details["pattern"])
}
