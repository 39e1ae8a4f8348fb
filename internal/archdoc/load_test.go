package archdoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadJSON(t *testing.T) {
	p := writeFile(t, "arch.json", `{"agents": ["a1"]}`)
	doc, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	m, ok := doc.(map[string]any)
	if !ok {
		t.Fatalf("expected mapping, got %T", doc)
	}
	if _, ok := m["agents"]; !ok {
		t.Fatal("expected agents field")
	}
}

func TestLoadYAML(t *testing.T) {
	p := writeFile(t, "arch.yaml", "agents:\n  - a1\nstages:\n  - plan\n")
	doc, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if _, ok := doc.(map[string]any); !ok {
		t.Fatalf("expected mapping, got %T", doc)
	}
}

func TestLoadUnknownExtensionTriesJSONFirst(t *testing.T) {
	p := writeFile(t, "arch", `{"agents": []}`)
	if _, err := Load(p); err != nil {
		t.Fatalf("JSON fallback failed: %v", err)
	}
}

func TestLoadUnknownExtensionFallsBackToYAML(t *testing.T) {
	p := writeFile(t, "arch", "agents:\n  - a1\n")
	if _, err := Load(p); err != nil {
		t.Fatalf("YAML fallback failed: %v", err)
	}
}

func TestLoadUnparseable(t *testing.T) {
	p := writeFile(t, "arch.txt", "{")
	_, err := Load(p)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "cannot parse") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadBadJSONExtension(t *testing.T) {
	p := writeFile(t, "arch.json", "{oops")
	if _, err := Load(p); err == nil {
		t.Fatal("expected parse error for malformed JSON")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
