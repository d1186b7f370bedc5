package catalog_test

import (
	"testing"

	"github.com/arthur-debert/pkgls/pkg/catalog"
	"github.com/stretchr/testify/assert"
)

func TestVersionCompareNumericAware(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"major", "2.0", "1.0", 1},
		{"minor is numeric not lexical", "1.10", "1.9", 1},
		{"patch", "1.2.13", "1.2.12", 1},
		{"equal", "1.0", "1.0", 0},
		{"less", "0.9", "1.0", -1},
		{"non-semver falls back to string order", "develop", "master", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := catalog.ParseVersion(tt.a)
			b := catalog.ParseVersion(tt.b)
			assert.Equal(t, tt.want, a.Compare(b))
			assert.Equal(t, -tt.want, b.Compare(a))
		})
	}
}

func TestVersionStringKeepsRawToken(t *testing.T) {
	assert.Equal(t, "1.0", catalog.ParseVersion("1.0").String())
	assert.Equal(t, "develop", catalog.ParseVersion("develop").String())
}

func TestSortedDescending(t *testing.T) {
	vs := catalog.ParseVersions([]string{"1.9", "2.0", "1.10", "0.4"})

	sorted := catalog.SortedDescending(vs)

	got := make([]string, len(sorted))
	for i, v := range sorted {
		got[i] = v.String()
	}
	assert.Equal(t, []string{"2.0", "1.10", "1.9", "0.4"}, got)

	// The input order is untouched
	assert.Equal(t, "1.9", vs[0].String())
}

func TestParseVersionsEmpty(t *testing.T) {
	assert.Nil(t, catalog.ParseVersions(nil))
}
