// Package report provides the machine-readable JSON rendering of a lookup.
//
// Each report carries both the raw cell text scraped from the page and the
// display values, so consumers never need to reimplement number formatting.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dmagro/hemi-popstats/internal/popstats"
)

// MillisDuration marshals a time.Duration as an integer millisecond count.
type MillisDuration time.Duration

func (d MillisDuration) MarshalJSON() ([]byte, error) {
	ms := time.Duration(d).Milliseconds()
	return json.Marshal(ms)
}

// Report is the JSON-serializable form of one lookup.
type Report struct {
	Timestamp time.Time      `json:"timestamp"`
	Input     string         `json:"input"`
	Pubkey    string         `json:"pubkey"`
	Resolved  bool           `json:"resolved"`
	URL       string         `json:"url"`
	LatencyMS MillisDuration `json:"latency_ms"`
	Raw       popstats.Stats `json:"raw"`
	Formatted popstats.Stats `json:"formatted"`
}

// New builds a report for res stamped with the given time.
func New(res *popstats.Result, at time.Time) Report {
	return Report{
		Timestamp: at.UTC(),
		Input:     res.Input,
		Pubkey:    res.Pubkey,
		Resolved:  res.Resolved,
		URL:       res.URL,
		LatencyMS: MillisDuration(res.Latency),
		Raw:       res.Stats,
		Formatted: res.Stats.Formatted(),
	}
}

// WriteJSON encodes r as indented JSON followed by a newline.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
