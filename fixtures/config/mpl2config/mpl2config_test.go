package mpl2config

import "testing"

func TestParseINI(t *testing.T) {
	m := NewManager()
	err := m.ParseINI(`# comment
; another comment
[section]
host = localhost
port=8080

timeout = 30
`)
	if err != nil {
		t.Fatalf("ParseINI: %v", err)
	}
	if m.Len() != 3 {
		t.Errorf("Len = %d, want 3", m.Len())
	}

	if v, ok := m.Get("host"); !ok || v != "localhost" {
		t.Errorf("Get(host) = %q, %v", v, ok)
	}
	if v, ok := m.Get("port"); !ok || v != "8080" {
		t.Errorf("Get(port) = %q, %v", v, ok)
	}
	if _, ok := m.Get("absent"); ok {
		t.Error("Get(absent) should report missing")
	}
}

func TestParseINIRejectsBareLine(t *testing.T) {
	m := NewManager()
	if err := m.ParseINI("not a pair"); err == nil {
		t.Fatal("expected error for line without =")
	}
}

func TestGetDefault(t *testing.T) {
	m := NewManager()
	if err := m.ParseINI("mode = strict"); err != nil {
		t.Fatalf("ParseINI: %v", err)
	}
	if got := m.GetDefault("mode", "lax"); got != "strict" {
		t.Errorf("GetDefault(mode) = %q", got)
	}
	if got := m.GetDefault("missing", "lax"); got != "lax" {
		t.Errorf("GetDefault(missing) = %q", got)
	}
}
