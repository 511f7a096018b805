package domain

import "time"

// TimelineStep is one row of the rendered progress timeline. Steps are fully
// derived from a TrackingRecord and recomputed on every request.
type TimelineStep struct {
	// Code is the status code this step represents.
	Code StatusCode `json:"code"`
	// Label is the human-readable label for the code.
	Label string `json:"label"`
	// Icon is the icon name a UI should render for the code.
	Icon string `json:"icon"`
	// Timestamp is copied from the latest update matching the code, if any.
	Timestamp string `json:"timestamp,omitempty"`
	// Message is copied from the latest update matching the code, if any.
	Message string `json:"message,omitempty"`
	// Location is copied from the latest update matching the code, if any.
	Location string `json:"location,omitempty"`
	// Completed is true iff at least one update with this code exists.
	Completed bool `json:"completed"`
}

// TrackingView is the composed response for one tracking lookup.
type TrackingView struct {
	// Record is the normalized tracking record.
	Record *TrackingRecord `json:"record"`
	// Timeline is the ordered step sequence built from the record.
	Timeline []TimelineStep `json:"timeline"`
	// CurrentIndex is the index of the step to highlight as current.
	CurrentIndex int `json:"current_index"`
}

// timestampLayouts are tried in order when comparing update recency.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseWhen attempts to interpret a raw timestamp string.
func parseWhen(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// supersedes reports whether next should replace prev as the representative
// update for a code. When both timestamps parse the later one wins (ties go
// to next); otherwise the last-seen update wins regardless of position.
func supersedes(prev, next TrackingUpdate) bool {
	pt, pok := parseWhen(prev.Timestamp)
	nt, nok := parseWhen(next.Timestamp)
	if pok && nok {
		return !nt.Before(pt)
	}
	return true
}

// BuildTimeline turns an update sequence into an ordered step list: one step
// per canonical code (in canonical order), then one per unique ad-hoc code in
// first-seen order. An ad-hoc step is always completed since it was observed.
// The function is total and deterministic; an empty input yields the full
// canonical list with nothing completed.
func BuildTimeline(updates []TrackingUpdate) []TimelineStep {
	latest := make(map[StatusCode]TrackingUpdate, len(updates))
	var extras []StatusCode

	for _, u := range updates {
		prev, seen := latest[u.Status]
		if !seen {
			if !u.Status.Canonical() {
				extras = append(extras, u.Status)
			}
			latest[u.Status] = u
			continue
		}
		if supersedes(prev, u) {
			latest[u.Status] = u
		}
	}

	steps := make([]TimelineStep, 0, len(CanonicalOrder)+len(extras))
	for _, code := range CanonicalOrder {
		u, ok := latest[code]
		steps = append(steps, newStep(code, u, ok))
	}
	for _, code := range extras {
		steps = append(steps, newStep(code, latest[code], true))
	}

	return steps
}

func newStep(code StatusCode, u TrackingUpdate, completed bool) TimelineStep {
	step := TimelineStep{
		Code:      code,
		Label:     code.Label(),
		Icon:      code.Icon(),
		Completed: completed,
	}
	if completed {
		step.Timestamp = u.Timestamp
		step.Message = u.Message
		step.Location = u.Location
	}
	return step
}

// CurrentIndex returns the index of the step to highlight: the step matching
// current if present, else the step immediately after the last completed one,
// clamped to the list. With nothing completed the first step is current.
func CurrentIndex(steps []TimelineStep, current StatusCode) int {
	for i, s := range steps {
		if s.Code == current {
			return i
		}
	}

	last := -1
	for i, s := range steps {
		if s.Completed {
			last = i
		}
	}
	if last+1 < len(steps) {
		return last + 1
	}
	return last
}
