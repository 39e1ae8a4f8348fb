package archdoc

import (
	"strings"
	"testing"
)

func TestFlattenCollectsKeysAndValues(t *testing.T) {
	doc := map[string]any{
		"agents": []any{"planner", "coder"},
		"notes":  "uses a reviewer",
	}
	text := Flatten(doc)
	for _, want := range []string{"agents", "planner", "coder", "notes", "reviewer"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in flattened text; got: %q", want, text)
		}
	}
}

func TestFlattenScalars(t *testing.T) {
	text := Flatten(map[string]any{"count": 3, "enabled": true})
	if !strings.Contains(text, "3") || !strings.Contains(text, "true") {
		t.Fatalf("expected scalar forms in flattened text; got: %q", text)
	}
}

func TestFlattenDepthCap(t *testing.T) {
	var deep any = "needle"
	for i := 0; i < 12; i++ {
		deep = map[string]any{"k": deep}
	}
	if strings.Contains(Flatten(deep), "needle") {
		t.Fatal("expected content below depth cap to be dropped")
	}

	var shallow any = "needle"
	for i := 0; i < 5; i++ {
		shallow = map[string]any{"k": shallow}
	}
	if !strings.Contains(Flatten(shallow), "needle") {
		t.Fatal("expected content above depth cap to be kept")
	}
}
