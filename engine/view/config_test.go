package view

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "views.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
views:
  shoulder:
    base: [1.2, 1.5, -3.5]
    look_at: [0.0, 1.5, 0.0]
    smoothing: 0.15
    fov: 0.87
  tactical:
    base: [0.0, 10.0, -6.0]
    look_at: [0.0, 0.0, 2.0]
    smoothing: 0.08
    fov: 1.04
`)

	views, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}

	shoulder := views["shoulder"]
	if shoulder.Base != [3]float32{1.2, 1.5, -3.5} {
		t.Fatalf("shoulder base = %v", shoulder.Base)
	}
	if shoulder.Smoothing != 0.15 {
		t.Fatalf("shoulder smoothing = %v", shoulder.Smoothing)
	}
}

func TestLoadFileErrors(t *testing.T) {
	cases := []struct {
		name     string
		contents string
	}{
		{"empty_file", ""},
		{"no_views", "views: {}\n"},
		{"malformed_yaml", "views: [not a map\n"},
		{"invalid_smoothing", `
views:
  shoulder:
    base: [0, 0, -3]
    look_at: [0, 0, 0]
    smoothing: 0
    fov: 0.9
`},
		{"invalid_fov", `
views:
  shoulder:
    base: [0, 0, -3]
    look_at: [0, 0, 0]
    smoothing: 0.2
    fov: 7
`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := writeConfig(t, c.contents)
			if _, err := LoadFile(path); err == nil {
				t.Fatalf("LoadFile should fail for %s", c.name)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("LoadFile should fail on a missing file")
	}
}
