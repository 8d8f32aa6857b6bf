package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file sigil looks for in a project root.
const ManifestName = "sigil.toml"

// DefaultExt is the source extension checked when no manifest overrides it.
const DefaultExt = ".sx"

// Manifest describes a project's sigil.toml.
type Manifest struct {
	Package PackageSection `toml:"package"`
	Check   CheckSection   `toml:"check"`
}

// PackageSection is the [package] table.
type PackageSection struct {
	Name string `toml:"name"`
	Ext  string `toml:"ext"`
}

// CheckSection is the [check] table.
type CheckSection struct {
	Cache    bool   `toml:"cache"`
	CacheDir string `toml:"cache_dir"`
}

// ErrPackageSectionMissing indicates that [package] is missing in a manifest.
var ErrPackageSectionMissing = errors.New("missing [package]")

// Load parses a sigil.toml and fills in defaults.
func Load(path string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	m.applyDefaults()
	return &m, nil
}

// Discover walks up from dir looking for a manifest. Without one it
// returns the defaults, so every command works in a bare directory too.
func Discover(dir string) (*Manifest, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	for {
		candidate := filepath.Join(current, ManifestName)
		if _, statErr := os.Stat(candidate); statErr == nil {
			return Load(candidate)
		}
		parent := filepath.Dir(current)
		if parent == current {
			return Default(), nil
		}
		current = parent
	}
}

// Default returns the manifest used when no sigil.toml exists.
func Default() *Manifest {
	m := &Manifest{}
	m.applyDefaults()
	return m
}

func (m *Manifest) applyDefaults() {
	if m.Package.Ext == "" {
		m.Package.Ext = DefaultExt
	}
	if m.Check.CacheDir == "" {
		m.Check.CacheDir = ".sigil-cache"
	}
}
