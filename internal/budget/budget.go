// Package budget implements the context-window usage rule: at or above
// the threshold the host is told to wrap up and restart the session.
package budget

import "fmt"

// Threshold is the context-window usage percentage at which the
// wrap-up alert fires. Usage at or above this value alerts.
const Threshold = 33

// Result is the outcome of a context-window check.
type Result struct {
	Usage     int      `json:"usage"`
	Threshold int      `json:"threshold"`
	Alert     bool     `json:"alert"`
	Message   string   `json:"message,omitempty"`
	Checklist []string `json:"checklist,omitempty"`
}

// Evaluate checks a usage percentage against the threshold.
// Below the threshold nothing fires; at or above it, the result carries
// the alert message and the wrap-up checklist.
func Evaluate(usage int) Result {
	result := Result{Usage: usage, Threshold: Threshold}
	if usage < Threshold {
		return result
	}

	result.Alert = true
	result.Message = fmt.Sprintf("Context window usage at %d%% (threshold %d%%). Wrap up this session.", usage, Threshold)
	result.Checklist = []string{
		"Finish the current subtask; do not start new work.",
		"Persist session state to the memory bank (run UMB).",
		"Recommend the user start a fresh session.",
	}
	return result
}
