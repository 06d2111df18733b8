package exporter

import (
	"encoding/json"
	"reflect"
	"testing"

	"richstr/internal/types"
)

func TestRecords(t *testing.T) {
	first := seg(t, "warn", types.Named("r"), types.Color{}, "bold")
	second := seg(t, " ok", types.Color{}, types.Color{})
	second.SetStart(4)

	got := Records([]types.Segment{first, second})
	expected := []SegmentRecord{
		{Text: "warn", Start: 0, Fg: "31", Styles: []string{"1"}},
		{Text: " ok", Start: 4},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestExportJSON(t *testing.T) {
	out, err := ExportJSON([]types.Segment{
		seg(t, "x", types.Named("g"), types.Color{}, "dim"),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var records []SegmentRecord
	if err := json.Unmarshal(out, &records); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(records) != 1 || records[0].Fg != "32" || records[0].Styles[0] != "2" {
		t.Errorf("Unexpected records %v", records)
	}

	// unset attributes are omitted entirely
	if records[0].Bg != "" {
		t.Errorf("Expected no background, got %q", records[0].Bg)
	}
}
