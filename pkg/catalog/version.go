package catalog

import (
	"sort"

	mm "github.com/Masterminds/semver/v3"
)

// Version is a single version token. Tokens that parse as (possibly
// partial) semantic versions compare numerically; anything else falls
// back to byte-wise string comparison.
type Version struct {
	raw string
	sem *mm.Version
}

// ParseVersion builds a Version from a raw token. Parsing is lenient
// and never fails: non-semver tokens keep string semantics.
func ParseVersion(raw string) Version {
	v := Version{raw: raw}
	if sem, err := mm.NewVersion(raw); err == nil {
		v.sem = sem
	}
	return v
}

// ParseVersions builds Versions from raw tokens, preserving order
func ParseVersions(raw []string) []Version {
	if len(raw) == 0 {
		return nil
	}
	out := make([]Version, len(raw))
	for i, r := range raw {
		out[i] = ParseVersion(r)
	}
	return out
}

// String returns the original token
func (v Version) String() string {
	return v.raw
}

// Compare returns -1, 0, or 1 for v against o
func (v Version) Compare(o Version) int {
	if v.sem != nil && o.sem != nil {
		return v.sem.Compare(o.sem)
	}
	switch {
	case v.raw < o.raw:
		return -1
	case v.raw > o.raw:
		return 1
	}
	return 0
}

// SortedDescending returns a copy of vs sorted newest first
func SortedDescending(vs []Version) []Version {
	out := make([]Version, len(vs))
	copy(out, vs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Compare(out[j]) > 0
	})
	return out
}
