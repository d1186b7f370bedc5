package filter

import (
	"sort"
	"strings"

	"github.com/arthur-debert/pkgls/pkg/catalog"
	"github.com/arthur-debert/pkgls/pkg/logging"
)

// Spec describes one filtering request
type Spec struct {
	// Patterns holds the user glob patterns; empty means match-all
	Patterns []string

	// SearchDescription extends pattern matching to description text
	SearchDescription bool

	// Tags restricts the result to packages carrying any of these tags;
	// empty means no tag filter
	Tags []string
}

// Apply filters the catalog's package names according to spec and
// returns them sorted case-insensitively with no duplicates. A name
// is retained when any pattern matches it, or, with SearchDescription
// set, when any pattern matches its description.
func Apply(cat catalog.Catalog, spec Spec) ([]string, error) {
	log := logging.GetLogger("filter")

	retained := dedupe(cat.AllNames())

	if len(spec.Patterns) > 0 {
		matchers := make([]*Matcher, 0, len(spec.Patterns))
		for _, pattern := range spec.Patterns {
			m, err := Compile(pattern)
			if err != nil {
				return nil, err
			}
			matchers = append(matchers, m)
		}

		matched := retained[:0]
		for _, name := range retained {
			ok, err := anyMatch(cat, matchers, name, spec.SearchDescription)
			if err != nil {
				return nil, err
			}
			if ok {
				matched = append(matched, name)
			}
		}
		retained = matched
	}

	sortNames(retained)

	if len(spec.Tags) > 0 {
		tagged := cat.PackagesWithTags(spec.Tags...)
		kept := retained[:0]
		for _, name := range retained {
			if tagged[name] {
				kept = append(kept, name)
			}
		}
		retained = kept
		sortNames(retained)
	}

	log.Debug().
		Int("patterns", len(spec.Patterns)).
		Int("tags", len(spec.Tags)).
		Int("matched", len(retained)).
		Msg("Filtered catalog")
	return retained, nil
}

// anyMatch reports whether any matcher accepts the name, or its
// description when searchDescription is set. A package without a
// description never matches on description.
func anyMatch(cat catalog.Catalog, matchers []*Matcher, name string, searchDescription bool) (bool, error) {
	for _, m := range matchers {
		if m.Matches(name) {
			return true, nil
		}
	}
	if !searchDescription {
		return false, nil
	}

	pkg, err := cat.Get(name)
	if err != nil {
		return false, err
	}
	if pkg.Description == "" {
		return false, nil
	}
	for _, m := range matchers {
		if m.Matches(pkg.Description) {
			return true, nil
		}
	}
	return false, nil
}

// dedupe removes duplicate names, preserving first-seen order
func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

// sortNames sorts case-insensitively, breaking case-fold ties with
// plain string order so the result is deterministic.
func sortNames(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})
}
