package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := New()
	if cfg.Inspect.Port != DefaultPort {
		t.Errorf("Inspect.Port = %d, want %d", cfg.Inspect.Port, DefaultPort)
	}
	if cfg.Inspect.Host != DefaultHost {
		t.Errorf("Inspect.Host = %q", cfg.Inspect.Host)
	}
	if !cfg.Metrics.Enabled {
		t.Error("metrics should default to enabled")
	}
	if cfg.Archive.Store != "disk" || cfg.Archive.Dir != "snapshots" {
		t.Errorf("Archive defaults = %+v", cfg.Archive)
	}
	if cfg.Templates.ValidateSlots {
		t.Error("slot validation should default to off")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{
		"name": "demo",
		"inspect": {"port": 9000},
		"templates": {"validateSlots": true},
		"archive": {"store": "s3", "bucket": "quill-snapshots", "prefix": "prod/"}
	}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "demo" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Inspect.Port != 9000 {
		t.Errorf("Inspect.Port = %d", cfg.Inspect.Port)
	}
	if cfg.Inspect.Host != DefaultHost {
		t.Errorf("missing host should default, got %q", cfg.Inspect.Host)
	}
	if !cfg.Templates.ValidateSlots {
		t.Error("ValidateSlots should be true")
	}
	if cfg.Archive.Store != "s3" || cfg.Archive.Bucket != "quill-snapshots" {
		t.Errorf("Archive = %+v", cfg.Archive)
	}
	if cfg.InspectAddress() != "localhost:9000" {
		t.Errorf("InspectAddress = %q", cfg.InspectAddress())
	}
	if cfg.Dir() != dir {
		t.Errorf("Dir = %q, want %q", cfg.Dir(), dir)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{not json`)
	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"bad port", func(c *Config) { c.Inspect.Port = 70000 }, true},
		{"unknown store", func(c *Config) { c.Archive.Store = "ftp" }, true},
		{"s3 without bucket", func(c *Config) { c.Archive.Store = "s3" }, true},
		{"s3 with bucket", func(c *Config) {
			c.Archive.Store = "s3"
			c.Archive.Bucket = "b"
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := New()
	cfg.Name = "roundtrip"
	cfg.Templates.ValidateSlots = true

	path := filepath.Join(dir, ConfigFileName)
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Name != "roundtrip" || !loaded.Templates.ValidateSlots {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{}`)
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot: %v", err)
	}
	// Resolve symlinks so macOS /tmp vs /private/tmp both pass.
	want, _ := filepath.EvalSymlinks(root)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != want {
		t.Errorf("FindProjectRoot = %q, want %q", got, root)
	}
}

func TestArchiveDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"archive": {"dir": "snaps"}}`)
	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.ArchiveDir(); got != filepath.Join(dir, "snaps") {
		t.Errorf("ArchiveDir = %q", got)
	}

	cfg.Archive.Dir = "/abs/snaps"
	if got := cfg.ArchiveDir(); got != "/abs/snaps" {
		t.Errorf("absolute ArchiveDir = %q", got)
	}
}
