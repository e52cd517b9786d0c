package batch

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusRendered Status = "rendered"
	StatusSkipped  Status = "skipped"
	StatusFailed   Status = "failed"
)

// Outcome records what happened to one screen.
type Outcome struct {
	Locale string `json:"locale"`
	Device string `json:"device"`
	Screen string `json:"screen"`
	Status Status `json:"status"`
	Output string `json:"output,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// Report lists outcomes in task order.
type Report struct {
	Outcomes []Outcome `json:"outcomes"`
}

// Count returns how many outcomes have status s.
func (r *Report) Count(s Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}

// Summary renders the report as plain text, one line per screen followed by totals.
func (r *Report) Summary() string {
	lines := []string{}
	for _, o := range r.Outcomes {
		detail := o.Output
		if o.Status != StatusRendered {
			detail = o.Reason
		}
		lines = append(lines, strings.TrimSpace(fmt.Sprintf("%-8s %s/%s/%s %s", o.Status, o.Locale, o.Device, o.Screen, detail)))
	}
	lines = append(lines, fmt.Sprintf("%d rendered, %d skipped, %d failed",
		r.Count(StatusRendered), r.Count(StatusSkipped), r.Count(StatusFailed)))
	return strings.Join(lines, "\n")
}
