package codegen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/signadot/boolenum/debug"
	"github.com/signadot/boolenum/enum"
	"github.com/signadot/boolenum/serde"
)

// ManifestFile is looked up in every package directory.
const ManifestFile = "boolenum.yaml"

// Manifest lists enums to generate for a package, as an alternative to
// source directives.
type Manifest struct {
	Features []string       `yaml:"features"`
	Output   string         `yaml:"output"`
	Enums    []ManifestEnum `yaml:"enums"`

	// Path is the file the manifest was read from.
	Path string `yaml:"-"`
}

type ManifestEnum struct {
	Name       string          `yaml:"name"`
	Visibility enum.Visibility `yaml:"visibility"`
	Serde      bool            `yaml:"serde"`
	Formats    []string        `yaml:"formats"`
}

// LoadManifest reads and decodes the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseManifest(d, path)
}

// FindManifest loads ManifestFile from dir. It returns nil, nil when
// there is none.
func FindManifest(dir string) (*Manifest, error) {
	m, err := LoadManifest(filepath.Join(dir, ManifestFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return m, err
}

// ParseManifest decodes manifest YAML. Unknown fields are rejected.
func ParseManifest(d []byte, path string) (*Manifest, error) {
	m := &Manifest{}
	if err := yaml.UnmarshalWithOptions(d, m, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("failed to decode manifest %q: %w", path, err)
	}
	m.Path = path
	if debug.Manifest() {
		debug.Logf("manifest %s: %d enums, features %v\n", path, len(m.Enums), m.Features)
	}
	return m, nil
}

// FeatureSet returns the features the manifest enables.
func (m *Manifest) FeatureSet() (enum.Features, error) {
	f, err := enum.ParseFeatures(m.Features...)
	if err != nil {
		return enum.Features{}, fmt.Errorf("manifest %q: %w", m.Path, err)
	}
	return f, nil
}

// Specs converts the manifest entries to generation requests.
func (m *Manifest) Specs() ([]*enum.Spec, error) {
	specs := make([]*enum.Spec, 0, len(m.Enums))
	for i, e := range m.Enums {
		var formats serde.Formats
		for _, f := range e.Formats {
			pf, err := serde.ParseFormat(f)
			if err != nil {
				return nil, fmt.Errorf("manifest %q: enums[%d]: %w", m.Path, i, err)
			}
			formats = formats.With(pf)
		}
		specs = append(specs, &enum.Spec{
			Name:       e.Name,
			Visibility: e.Visibility,
			Serde:      e.Serde,
			Formats:    formats,
			Pos:        fmt.Sprintf("%s: enums[%d]", m.Path, i),
		})
	}
	return specs, nil
}
