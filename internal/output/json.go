package output

import (
	"encoding/json"
	"io"

	"nkill/internal/dispatch"
)

// JSONFailure represents one rejected delivery in JSON output.
type JSONFailure struct {
	PID   int32  `json:"pid"`
	Error string `json:"error"`
}

// JSONOutcome represents the result for one target name.
type JSONOutcome struct {
	Name     string        `json:"name"`
	Matched  bool          `json:"matched"`
	PIDs     []int32       `json:"pids"`
	Signaled int           `json:"signaled"`
	Failures []JSONFailure `json:"failures,omitempty"`
}

// JSONReport is the root JSON output structure.
type JSONReport struct {
	Signal   string        `json:"signal"`
	Outcomes []JSONOutcome `json:"outcomes"`
}

// RenderJSON writes the dispatch report as indented JSON.
func RenderJSON(w io.Writer, signal string, outcomes []dispatch.Outcome) error {
	report := JSONReport{
		Signal:   signal,
		Outcomes: make([]JSONOutcome, 0, len(outcomes)),
	}

	for _, out := range outcomes {
		jOut := JSONOutcome{
			Name:     out.Name,
			Matched:  out.Matched(),
			PIDs:     out.PIDs,
			Signaled: out.Delivered(),
		}
		if jOut.PIDs == nil {
			jOut.PIDs = []int32{}
		}
		for _, f := range out.Failures {
			jOut.Failures = append(jOut.Failures, JSONFailure{PID: f.PID, Error: f.Err.Error()})
		}
		report.Outcomes = append(report.Outcomes, jOut)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
