package catalog

import (
	"os"

	"github.com/arthur-debert/pkgls/pkg/errors"
	"github.com/arthur-debert/pkgls/pkg/logging"
	"gopkg.in/yaml.v3"
)

// fileCatalog mirrors the on-disk catalog schema
type fileCatalog struct {
	Packages []filePackage `yaml:"packages"`
}

type filePackage struct {
	Name         string              `yaml:"name"`
	Homepage     string              `yaml:"homepage"`
	Description  string              `yaml:"description"`
	Versions     []string            `yaml:"versions"`
	Dependencies map[string][]string `yaml:"dependencies"`
	Tags         []string            `yaml:"tags"`
}

// Load reads a YAML catalog file into a MemoryCatalog
func Load(path string) (*MemoryCatalog, error) {
	log := logging.GetLogger("catalog")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCatalogRead, "failed to read catalog file %s", path)
	}

	var file fileCatalog
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(err, errors.ErrCatalogParse, "failed to parse catalog file %s", path)
	}

	cat := NewMemoryCatalog()
	for i, fp := range file.Packages {
		if fp.Name == "" {
			return nil, errors.Newf(errors.ErrCatalogParse, "catalog entry %d has no name", i)
		}
		if _, exists := cat.packages[fp.Name]; exists {
			return nil, errors.Newf(errors.ErrCatalogParse, "duplicate catalog entry '%s'", fp.Name)
		}

		deps := make(map[DependencyType][]string, len(fp.Dependencies))
		for rawType, names := range fp.Dependencies {
			t := DependencyType(rawType)
			if !knownDependencyType(t) {
				return nil, errors.Newf(errors.ErrCatalogParse,
					"catalog entry '%s' has unknown dependency type '%s'", fp.Name, rawType)
			}
			deps[t] = names
		}

		cat.add(&Package{
			Name:         fp.Name,
			Homepage:     fp.Homepage,
			Description:  fp.Description,
			Versions:     ParseVersions(fp.Versions),
			Dependencies: deps,
			Tags:         fp.Tags,
		})
	}

	log.Debug().Str("path", path).Int("packages", cat.Count()).Msg("Loaded catalog")
	return cat, nil
}

func knownDependencyType(t DependencyType) bool {
	for _, known := range AllDependencyTypes {
		if t == known {
			return true
		}
	}
	return false
}
