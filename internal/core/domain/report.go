package domain

import "time"

// FileResult is the outcome of checking one file in a batch.
type FileResult struct {
	Path   string      `json:"path"`
	Result CheckResult `json:"result"`
}

// Report summarises a batch check.
type Report struct {
	ID           string        `json:"id"`
	StartedAt    time.Time     `json:"started_at"`
	Duration     time.Duration `json:"duration"`
	Results      []FileResult  `json:"results"`
	Skipped      int           `json:"skipped"`
	InvalidCount int           `json:"invalid"`
}

// Checked returns the number of files that went through a checker.
func (r *Report) Checked() int {
	return len(r.Results)
}

// Invalid returns the results that failed validation.
func (r *Report) Invalid() []FileResult {
	var out []FileResult
	for i := range r.Results {
		if !r.Results[i].Result.OK() {
			out = append(out, r.Results[i])
		}
	}
	return out
}

// OK returns true if every checked file is valid.
func (r *Report) OK() bool {
	return r.InvalidCount == 0
}
