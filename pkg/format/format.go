// Package format renders a filtered, sorted package list as a report.
// Formatters are registered once during package initialization and
// looked up by name; the set of names is fixed before flag parsing so
// --format can be choice-validated.
package format

import (
	"io"
	"strings"

	"github.com/arthur-debert/pkgls/pkg/catalog"
	"github.com/arthur-debert/pkgls/pkg/errors"
	"github.com/arthur-debert/pkgls/pkg/registry"
)

// Options carries the environment a formatter renders under
type Options struct {
	// Interactive reports whether the output stream is a terminal
	Interactive bool

	// Width is the target width for columnar regions (0 = default)
	Width int

	// SourceLink builds the source-link URL for a package name
	SourceLink func(name string) string
}

func (o Options) sourceLink(name string) string {
	if o.SourceLink == nil {
		return ""
	}
	return o.SourceLink(name)
}

// Formatter renders the sorted name list as a complete report on w.
// Metadata beyond the names is resolved through the catalog; a name
// absent from the catalog is a fatal error.
type Formatter func(w io.Writer, names []string, cat catalog.Catalog, opts Options) error

var formatters = registry.New[Formatter]()

func init() {
	registry.MustRegister(formatters, "name_only", NameOnly)
	registry.MustRegister(formatters, "rst", RST)
	registry.MustRegister(formatters, "html", HTML)
}

// Register adds a formatter under the given name
func Register(name string, f Formatter) error {
	return formatters.Register(name, f)
}

// Get returns the formatter registered under name
func Get(name string) (Formatter, error) {
	f, err := formatters.Get(name)
	if err != nil {
		return nil, errors.Newf(errors.ErrFormatUnknown, "unknown format '%s'", name)
	}
	return f, nil
}

// Names returns the registered formatter names in sorted order
func Names() []string {
	return formatters.List()
}

// resolveAll fetches full metadata for every name, in order. The
// filtered list is defined to be a subset of the catalog, so a failed
// lookup is surfaced rather than skipped.
func resolveAll(cat catalog.Catalog, names []string) ([]*catalog.Package, error) {
	pkgs := make([]*catalog.Package, 0, len(names))
	for _, name := range names {
		pkg, err := cat.Get(name)
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, pkg)
	}
	return pkgs, nil
}

// nameSet builds a membership set over the filtered names, used to
// decide which dependency names become cross-references.
func nameSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

// versionList joins a package's versions newest first
func versionList(pkg *catalog.Package) string {
	sorted := catalog.SortedDescending(pkg.Versions)
	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}
