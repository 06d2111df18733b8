package exporter

import (
	"encoding/json"

	"richstr/internal/types"
)

// SegmentRecord is the JSON shape of one segment.
type SegmentRecord struct {
	Text   string   `json:"text"`
	Start  int      `json:"start"`
	Fg     string   `json:"fg,omitempty"`
	Bg     string   `json:"bg,omitempty"`
	Styles []string `json:"styles,omitempty"`
}

// Records converts segments to their JSON shape, style codes sorted.
func Records(segments []types.Segment) []SegmentRecord {
	records := make([]SegmentRecord, 0, len(segments))
	for _, seg := range segments {
		rec := SegmentRecord{
			Text:  seg.Text,
			Start: seg.Start(),
			Fg:    seg.Fg,
			Bg:    seg.Bg,
		}
		if len(seg.Styles) > 0 {
			rec.Styles = seg.Styles.Sorted()
		}
		records = append(records, rec)
	}
	return records
}

// ExportJSON renders segments as indented JSON.
func ExportJSON(segments []types.Segment) ([]byte, error) {
	return json.MarshalIndent(Records(segments), "", "  ")
}
