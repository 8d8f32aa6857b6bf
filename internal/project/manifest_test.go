package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[package]
name = "mylib"
ext = ".lisp"

[check]
cache = true
cache_dir = "build/cache"
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Package.Name != "mylib" {
		t.Errorf("name = %q", m.Package.Name)
	}
	if m.Package.Ext != ".lisp" {
		t.Errorf("ext = %q", m.Package.Ext)
	}
	if !m.Check.Cache || m.Check.CacheDir != "build/cache" {
		t.Errorf("check = %+v", m.Check)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[package]
name = "mylib"
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Package.Ext != DefaultExt {
		t.Errorf("ext default = %q, want %q", m.Package.Ext, DefaultExt)
	}
	if m.Check.CacheDir != ".sigil-cache" {
		t.Errorf("cache_dir default = %q", m.Check.CacheDir)
	}
	if m.Check.Cache {
		t.Error("cache should default to off")
	}
}

func TestLoadRequiresPackageSection(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[check]
cache = true
`)
	_, err := Load(path)
	if !errors.Is(err, ErrPackageSectionMissing) {
		t.Errorf("err = %v, want ErrPackageSectionMissing", err)
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"up\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	m, err := Discover(nested)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if m.Package.Name != "up" {
		t.Errorf("name = %q, want %q", m.Package.Name, "up")
	}
}

func TestDiscoverFallsBackToDefaults(t *testing.T) {
	m, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if m.Package.Ext != DefaultExt {
		t.Errorf("ext = %q, want %q", m.Package.Ext, DefaultExt)
	}
}
