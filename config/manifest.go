package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const MANIFEST_FILE = "mica.toml"

type Manifest struct {
	Package PackageSection `toml:"package"`
	Build   BuildSection   `toml:"build"`

	// Empty when no manifest was found and defaults are in use
	Path string `toml:"-"`
}

type PackageSection struct {
	Name   string `toml:"name"`
	Target Target `toml:"target"`
}

type BuildSection struct {
	Type  BuildType `toml:"type"`
	Trace bool      `toml:"trace"`
}

func DefaultManifest(sourcePath string) *Manifest {
	base := filepath.Base(sourcePath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return &Manifest{
		Package: PackageSection{Name: name, Target: EXECUTABLE},
		Build:   BuildSection{Type: DEBUG, Trace: false},
	}
}

// ManifestFor loads the mica.toml sitting next to sourcePath. Without one,
// the defaults derived from the file name are returned.
func ManifestFor(sourcePath string) (*Manifest, error) {
	path := filepath.Join(filepath.Dir(sourcePath), MANIFEST_FILE)
	manifest, err := LoadManifest(path, DefaultManifest(sourcePath))
	if errors.Is(err, os.ErrNotExist) {
		return DefaultManifest(sourcePath), nil
	}
	return manifest, err
}

// LoadManifest decodes path on top of defaults. Keys missing from the file
// keep their default value.
func LoadManifest(path string, defaults *Manifest) (*Manifest, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	manifest := *defaults
	meta, err := toml.DecodeFile(path, &manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if manifest.Package.Name == "" {
		return nil, fmt.Errorf("%s: package name must not be empty", path)
	}

	manifest.Path = path
	return &manifest, nil
}
