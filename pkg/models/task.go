// Package models contains cross-package data transfer types shared by the
// API, services, dispatch pipeline, and queue adapter.
package models

// TaskConfig is the execution configuration handed to a worker.
type TaskConfig struct {
	Environment   string            `json:"environment"`
	BaseURL       string            `json:"baseUrl,omitempty"`
	RetryAttempts int               `json:"retryAttempts"`
	EnvVars       map[string]string `json:"envVars,omitempty"`
}

// TaskMessage is the wire format published to the task queue. It carries
// enough context for a stateless worker to execute the run end-to-end.
type TaskMessage struct {
	TaskID         string     `json:"taskId"`
	Image          string     `json:"image"`
	Command        string     `json:"command,omitempty"`
	Folder         string     `json:"folder,omitempty"`
	OrganizationID string     `json:"organizationId"`
	Config         TaskConfig `json:"config"`
	Tests          []string   `json:"tests,omitempty"`
	Trigger        string     `json:"trigger,omitempty"`
	GroupName      string     `json:"groupName,omitempty"`
	BatchID        string     `json:"batchId,omitempty"`
	Framework      string     `json:"framework,omitempty"`
	CycleID        string     `json:"cycleId,omitempty"`
	CycleItemID    string     `json:"cycleItemId,omitempty"`
}

// Trigger values for an execution.
const (
	TriggerManual  = "manual"
	TriggerCron    = "cron"
	TriggerGitHub  = "github"
	TriggerGitLab  = "gitlab"
	TriggerJenkins = "jenkins"
	TriggerWebhook = "webhook"
)

// Execution sources.
const (
	SourceHosted = "agnox-hosted"
	// SourceExternalCI marks executions whose results arrive via the ingest
	// API. Execution.image carries the same sentinel so workers skip them.
	SourceExternalCI = "external-ci"
)
