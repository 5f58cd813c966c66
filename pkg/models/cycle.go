package models

// Cycle item types.
const (
	CycleItemManual    = "MANUAL"
	CycleItemAutomated = "AUTOMATED"
)

// ManualStep is a single step of a manual test case.
type ManualStep struct {
	Action   string `json:"action"`
	Expected string `json:"expected,omitempty"`
}

// CycleItem is one entry of a test cycle. Automated items reference an
// execution by taskId; manual items carry their steps inline.
type CycleItem struct {
	ID          string       `json:"id"`
	TestCaseID  string       `json:"testCaseId,omitempty"`
	Type        string       `json:"type"` // MANUAL or AUTOMATED
	Title       string       `json:"title"`
	Status      string       `json:"status"`
	ExecutionID string       `json:"executionId,omitempty"` // taskId of the linked execution
	ManualSteps []ManualStep `json:"manualSteps,omitempty"`
}

// CycleSummary is the denormalized rollup stored on a test cycle.
type CycleSummary struct {
	Total          int     `json:"total"`
	Passed         int     `json:"passed"`
	Failed         int     `json:"failed"`
	AutomationRate float64 `json:"automationRate"`
}
