package codegen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/boolenum/enum"
	"github.com/signadot/boolenum/serde"
)

func TestParseManifest(t *testing.T) {
	d := []byte(`features: [serde]
output: flags_gen.go
enums:
  - name: DryRun
    visibility: public
    serde: true
    formats: [json, toml]
  - name: quiet
`)
	m, err := ParseManifest(d, "boolenum.yaml")
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}
	if m.Output != "flags_gen.go" || m.Path != "boolenum.yaml" {
		t.Errorf("got output %q path %q", m.Output, m.Path)
	}
	f, err := m.FeatureSet()
	if err != nil {
		t.Fatalf("FeatureSet: %v", err)
	}
	if !f.Serde {
		t.Errorf("serde feature not enabled")
	}
	specs, err := m.Specs()
	if err != nil {
		t.Fatalf("Specs: %v", err)
	}
	want := []*enum.Spec{
		{Name: "DryRun", Visibility: enum.Public, Serde: true,
			Formats: serde.FormatsOf(serde.JSONFormat, serde.TOMLFormat),
			Pos:     "boolenum.yaml: enums[0]"},
		{Name: "quiet", Pos: "boolenum.yaml: enums[1]"},
	}
	if diff := cmp.Diff(want, specs); diff != "" {
		t.Errorf("Specs mismatch (-want +got):\n%s", diff)
	}
}

func TestParseManifestErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field", "enums:\n  - name: X\n    exported: true\n"},
		{"bad visibility", "enums:\n  - name: X\n    visibility: internal\n"},
		{"not a list", "enums: X\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseManifest([]byte(tt.yaml), "m.yaml"); err == nil {
				t.Errorf("expected error for %q", tt.yaml)
			}
		})
	}
}

func TestManifestBadContent(t *testing.T) {
	m, err := ParseManifest([]byte("features: [gc]\nenums:\n  - name: X\n    formats: [xml]\n"), "m.yaml")
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}
	if _, err := m.FeatureSet(); !errors.Is(err, enum.ErrUnknownFeature) {
		t.Errorf("FeatureSet = %v, want ErrUnknownFeature", err)
	}
	if _, err := m.Specs(); !errors.Is(err, serde.ErrBadFormat) {
		t.Errorf("Specs = %v, want ErrBadFormat", err)
	}
}

func TestFindManifest(t *testing.T) {
	dir := t.TempDir()
	m, err := FindManifest(dir)
	if err != nil || m != nil {
		t.Fatalf("FindManifest on empty dir = %v, %v", m, err)
	}
	path := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(path, []byte("enums:\n  - name: X\n"), 0644); err != nil {
		t.Fatal(err)
	}
	m, err = FindManifest(dir)
	if err != nil {
		t.Fatalf("FindManifest: %v", err)
	}
	if m == nil || len(m.Enums) != 1 || m.Path != path {
		t.Errorf("FindManifest = %+v", m)
	}
}
