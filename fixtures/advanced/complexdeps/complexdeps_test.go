package complexdeps

import (
	"reflect"
	"testing"
)

const manifestTOML = `name = "root-project"
license = "MIT"

[deps]
module-a = "Apache-2.0"
module-a1a = "GPL-3.0"
module-b2 = "AGPL-3.0"
`

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(manifestTOML))
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}
	if m.Name != "root-project" || m.License != "MIT" {
		t.Errorf("unexpected header: %+v", m)
	}
	if len(m.Deps) != 3 {
		t.Errorf("expected 3 deps, got %d", len(m.Deps))
	}
}

func TestParseManifestInvalid(t *testing.T) {
	if _, err := ParseManifest([]byte("name = [broken")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEncodeManifestRoundTrip(t *testing.T) {
	m, err := ParseManifest([]byte(manifestTOML))
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}
	data, err := EncodeManifest(m)
	if err != nil {
		t.Fatalf("EncodeManifest: %v", err)
	}
	back, err := ParseManifest(data)
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if !reflect.DeepEqual(m, back) {
		t.Errorf("round trip mismatch: %+v vs %+v", m, back)
	}
}

func TestEffectiveLicenseCopyleftWins(t *testing.T) {
	m := &Manifest{
		Name:    "root",
		License: "MIT",
		Deps:    map[string]string{"leaf": "GPL-3.0"},
	}
	if got := m.EffectiveLicense(); got != "GPL-3.0" {
		t.Errorf("EffectiveLicense = %q, want GPL-3.0", got)
	}

	m.Deps = map[string]string{"leaf": "BSD-3-Clause"}
	if got := m.EffectiveLicense(); got != "MIT" {
		t.Errorf("EffectiveLicense = %q, want MIT", got)
	}
}

func TestConflictingDeps(t *testing.T) {
	m, err := ParseManifest([]byte(manifestTOML))
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}
	got := m.ConflictingDeps()
	want := []string{"module-a1a", "module-b2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ConflictingDeps = %v, want %v", got, want)
	}
}
