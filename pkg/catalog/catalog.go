// Package catalog defines the package-catalog data model: named
// packages with homepage, description, versions, typed dependencies,
// and tags, plus the Catalog lookup interface the filter and the
// formatters consume.
package catalog

import "strings"

// DependencyType categorizes a dependency relationship
type DependencyType string

// The known dependency types, in report-section order
const (
	DepBuild DependencyType = "build"
	DepLink  DependencyType = "link"
	DepRun   DependencyType = "run"
	DepTest  DependencyType = "test"
)

// AllDependencyTypes lists every dependency type in the fixed order
// report sections are emitted in.
var AllDependencyTypes = []DependencyType{DepBuild, DepLink, DepRun, DepTest}

// Title returns the capitalized form used in report headings
func (t DependencyType) Title() string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Package is a single catalog entry. Instances are read-only views for
// the duration of one invocation.
type Package struct {
	// Name is the catalog's primary key
	Name string

	// Homepage is the project URL, possibly empty
	Homepage string

	// Description is free-form text, possibly empty
	Description string

	// Versions holds the known versions, in no particular order
	Versions []Version

	// Dependencies maps a dependency type to dependency package names
	Dependencies map[DependencyType][]string

	// Tags holds the classification labels attached to this package
	Tags []string
}

// DependenciesOfType returns the dependency names of the given type
func (p *Package) DependenciesOfType(t DependencyType) []string {
	if p.Dependencies == nil {
		return nil
	}
	return p.Dependencies[t]
}

// Catalog is the read-only lookup surface over the full package
// collection.
type Catalog interface {
	// AllNames returns every package name in the catalog
	AllNames() []string

	// Get returns the package with the given name, or a
	// PACKAGE_NOT_FOUND error
	Get(name string) (*Package, error)

	// PackagesWithTags returns the set of names of packages carrying
	// any of the given tags
	PackagesWithTags(tags ...string) map[string]bool
}
