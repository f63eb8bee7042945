package harness

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Report is the rendered outcome of a conformance run on one bridge.
type Report struct {
	Bridge  string  `json:"bridge"`
	Entries []Entry `json:"entries"`
	Summary Summary `json:"summary"`
}

// NewReport summarizes entries recorded against the named bridge.
func NewReport(bridgeName string, entries []Entry) Report {
	return Report{Bridge: bridgeName, Entries: entries, Summary: Summarize(entries)}
}

// WriteText writes one ✓/✗ line per entry followed by the summary line.
// Colour is applied only when colored is set.
func WriteText(w io.Writer, r Report, colored bool) error {
	pass := color.New(color.FgGreen)
	fail := color.New(color.FgRed, color.Bold)
	if colored {
		pass.EnableColor()
		fail.EnableColor()
	} else {
		pass.DisableColor()
		fail.DisableColor()
	}

	for _, e := range r.Entries {
		var err error
		if e.Passed {
			_, err = fmt.Fprintf(w, "%s %s\n", pass.Sprint("✓"), e.Label)
		} else {
			_, err = fmt.Fprintf(w, "%s %s: %s\n", fail.Sprint("✗"), e.Label, e.Details)
		}
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	_, err := fmt.Fprintf(w, "%s: %d passed, %d failed, %d total\n",
		r.Bridge, r.Summary.Passed, r.Summary.Failed, r.Summary.Total)
	return err
}

// canonicalMap converts the report for MarshalCanonical.
func (r Report) canonicalMap() map[string]any {
	entries := make([]any, len(r.Entries))
	for i, e := range r.Entries {
		m := map[string]any{
			"label":  e.Label,
			"passed": e.Passed,
		}
		if e.Details != "" {
			m["details"] = e.Details
		}
		entries[i] = m
	}
	return map[string]any{
		"bridge":  r.Bridge,
		"entries": entries,
		"summary": map[string]any{
			"passed": r.Summary.Passed,
			"failed": r.Summary.Failed,
			"total":  r.Summary.Total,
		},
	}
}

// MarshalReport renders r as canonical JSON.
func MarshalReport(r Report) ([]byte, error) {
	return MarshalCanonical(r.canonicalMap())
}

// MarshalJSON makes canonical JSON the only JSON form of a report, so
// reports embedded in larger documents keep RFC 8785 key order.
func (r Report) MarshalJSON() ([]byte, error) {
	return MarshalReport(r)
}
