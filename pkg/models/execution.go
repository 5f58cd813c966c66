package models

// TestResult is one structured test record attached to an execution.
// External-CI runs accumulate these from test-end ingest events.
type TestResult struct {
	TestID    string `json:"testId"`
	Status    string `json:"status"` // passed, failed, skipped, timedOut
	Duration  int64  `json:"duration"`
	Error     string `json:"error,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// ListParams holds pagination and filtering for execution listings.
type ListParams struct {
	Page     int
	PageSize int
	Status   string
}

// KPIs is the month-scoped analytics rollup for an organization.
type KPIs struct {
	TotalRuns     int     `json:"totalRuns"`
	PassedRuns    int     `json:"passedRuns"`
	FinishedRuns  int     `json:"finishedRuns"`
	SuccessRate   float64 `json:"successRate"`
	AvgDurationMs int64   `json:"avgDurationMs"`
	Period        string  `json:"period"` // YYYY-MM
}
