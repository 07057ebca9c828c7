package identity

import (
	"strings"
	"testing"
)

const usercacheJSON = `[
	{"name": "Alice", "uuid": "11111111-aaaa", "expiresOn": "2026-01-01 00:00:00 +0100"},
	{"name": "Bob", "uuid": "22222222-bbbb", "expiresOn": "2026-01-01 00:00:00 +0100"}
]`

func TestLoadAndResolve(t *testing.T) {
	m, err := Load(strings.NewReader(usercacheJSON))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	name, ok := m.Resolve("11111111-aaaa")
	if !ok || name != "Alice" {
		t.Errorf("Resolve known = (%q, %v), want (Alice, true)", name, ok)
	}
}

func TestResolveFallsBackToID(t *testing.T) {
	m, err := Load(strings.NewReader(usercacheJSON))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	name, ok := m.Resolve("abc123")
	if ok {
		t.Error("unknown id should report no mapping")
	}
	if name != "abc123" {
		t.Errorf("Resolve unknown = %q, want the id itself", name)
	}
}

func TestLoadMalformed(t *testing.T) {
	if _, err := Load(strings.NewReader(`{"not": "a list"}`)); err == nil {
		t.Error("expected error for malformed usercache")
	}
}
