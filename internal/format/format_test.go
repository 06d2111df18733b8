package format

import (
	"strings"
	"testing"
)

func TestMap(t *testing.T) {
	target := map[string]any{
		"host":     "localhost",
		"port":     8080,
		"password": "hunter2",
	}

	got := Map(target, "Settings", "password")
	plain := got.Plain()

	lines := strings.Split(plain, "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected a title plus 3 lines, got %d: %q", len(lines), plain)
	}
	if !strings.Contains(lines[0], "Settings") {
		t.Errorf("Expected the title line, got %q", lines[0])
	}

	// keys are sorted: host, password, port
	if !strings.Contains(lines[1], "host") || !strings.Contains(lines[1], "localhost") {
		t.Errorf("Unexpected first entry %q", lines[1])
	}
	if !strings.Contains(lines[2], "password") || !strings.Contains(lines[2], "...") {
		t.Errorf("Expected the omitted value placeholder, got %q", lines[2])
	}
	if strings.Contains(plain, "hunter2") {
		t.Error("Omitted values must never be rendered")
	}
	if !strings.Contains(lines[3], "(int)") {
		t.Errorf("Expected the value type tag, got %q", lines[3])
	}

	if got.IsPlain() {
		t.Error("Expected a decorated rendering")
	}
}

func TestMapDefaultTitle(t *testing.T) {
	got := Map(map[string]any{}, "")
	if !strings.Contains(got.Plain(), ">>>") {
		t.Errorf("Expected the placeholder title, got %q", got.Plain())
	}
}

func TestList(t *testing.T) {
	got := List([]any{"a", 2}, "Items")
	plain := got.Plain()

	lines := strings.Split(plain, "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected a title plus 2 lines, got %q", plain)
	}
	if !strings.Contains(lines[1], "(string)") || !strings.Contains(lines[1], ": a") {
		t.Errorf("Unexpected first entry %q", lines[1])
	}
	if !strings.Contains(lines[2], "(int)") || !strings.Contains(lines[2], ": 2") {
		t.Errorf("Unexpected second entry %q", lines[2])
	}
}
