package catalog

import (
	"github.com/arthur-debert/pkgls/pkg/errors"
)

// MemoryCatalog is an in-memory Catalog implementation. It is the
// backing store for catalogs loaded from disk and for tests.
type MemoryCatalog struct {
	packages map[string]*Package
	tagIndex map[string]map[string]bool
}

// NewMemoryCatalog builds a catalog from the given packages. The last
// package wins if a name repeats.
func NewMemoryCatalog(packages ...*Package) *MemoryCatalog {
	c := &MemoryCatalog{
		packages: make(map[string]*Package, len(packages)),
		tagIndex: make(map[string]map[string]bool),
	}
	for _, p := range packages {
		c.add(p)
	}
	return c
}

func (c *MemoryCatalog) add(p *Package) {
	c.packages[p.Name] = p
	for _, tag := range p.Tags {
		if c.tagIndex[tag] == nil {
			c.tagIndex[tag] = make(map[string]bool)
		}
		c.tagIndex[tag][p.Name] = true
	}
}

// AllNames returns every package name in the catalog
func (c *MemoryCatalog) AllNames() []string {
	names := make([]string, 0, len(c.packages))
	for name := range c.packages {
		names = append(names, name)
	}
	return names
}

// Get returns the package with the given name
func (c *MemoryCatalog) Get(name string) (*Package, error) {
	p, ok := c.packages[name]
	if !ok {
		return nil, errors.Newf(errors.ErrPackageNotFound, "package '%s' not found in catalog", name)
	}
	return p, nil
}

// PackagesWithTags returns the set of names of packages carrying any
// of the given tags.
func (c *MemoryCatalog) PackagesWithTags(tags ...string) map[string]bool {
	result := make(map[string]bool)
	for _, tag := range tags {
		for name := range c.tagIndex[tag] {
			result[name] = true
		}
	}
	return result
}

// Tags returns every known tag mapped to the number of packages
// carrying it.
func (c *MemoryCatalog) Tags() map[string]int {
	counts := make(map[string]int, len(c.tagIndex))
	for tag, names := range c.tagIndex {
		counts[tag] = len(names)
	}
	return counts
}

// Count returns the number of packages in the catalog
func (c *MemoryCatalog) Count() int {
	return len(c.packages)
}
