package api

import "github.com/agnox-io/agnox/pkg/ingest"

// SignupRequest is the body for POST /api/auth/signup.
type SignupRequest struct {
	OrganizationName string `json:"organizationName"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	Password         string `json:"password"`
}

// LoginRequest is the body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ExecutionRequest is the body for POST /api/execution-request.
type ExecutionRequest struct {
	TaskID      string                 `json:"taskId"`
	ProjectID   string                 `json:"projectId,omitempty"`
	Image       string                 `json:"image"`
	Command     string                 `json:"command,omitempty"`
	Folder      string                 `json:"folder,omitempty"`
	Tests       []string               `json:"tests,omitempty"`
	Config      ExecutionRequestConfig `json:"config"`
	Trigger     string                 `json:"trigger,omitempty"`
	GroupName   string                 `json:"groupName,omitempty"`
	BatchID     string                 `json:"batchId,omitempty"`
	Framework   string                 `json:"framework,omitempty"`
	CycleID     string                 `json:"cycleId,omitempty"`
	CycleItemID string                 `json:"cycleItemId,omitempty"`
}

// ExecutionRequestConfig is the nested config block of an execution request.
type ExecutionRequestConfig struct {
	Environment   string            `json:"environment"`
	BaseURL       string            `json:"baseUrl,omitempty"`
	RetryAttempts int               `json:"retryAttempts,omitempty"`
	EnvVars       map[string]string `json:"envVars,omitempty"`
}

// CreateProjectRequest is the body for POST /api/projects.
type CreateProjectRequest struct {
	Name string `json:"name"`
}

// EnvVarRequest is the body for creating or updating a project env var.
type EnvVarRequest struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	IsSecret bool   `json:"isSecret"`
}

// CreateCycleRequest is the body for POST /api/test-cycles.
type CreateCycleRequest struct {
	ProjectID string             `json:"projectId"`
	Name      string             `json:"name"`
	Items     []CycleItemRequest `json:"items"`
}

// CycleItemRequest is one item of a cycle creation request.
type CycleItemRequest struct {
	TestCaseID  string            `json:"testCaseId,omitempty"`
	Type        string            `json:"type"`
	Title       string            `json:"title"`
	ExecutionID string            `json:"executionId,omitempty"`
	ManualSteps []ManualStepInput `json:"manualSteps,omitempty"`
}

// ManualStepInput is one scripted step of a manual cycle item.
type ManualStepInput struct {
	Action   string `json:"action"`
	Expected string `json:"expected,omitempty"`
}

// UpdateCycleItemRequest is the body for PUT /api/test-cycles/:id/items/:itemId.
type UpdateCycleItemRequest struct {
	Status string `json:"status"`
}

// CreateScheduleRequest is the body for POST /api/schedules.
type CreateScheduleRequest struct {
	Name           string `json:"name"`
	ProjectID      string `json:"projectId,omitempty"`
	CronExpression string `json:"cronExpression"`
	Environment    string `json:"environment"`
	Image          string `json:"image"`
	Folder         string `json:"folder,omitempty"`
	BaseURL        string `json:"baseUrl,omitempty"`
}

// InviteUserRequest is the body for POST /api/users.
type InviteUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// ChangeRoleRequest is the body for PATCH /api/users/:id/role.
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// CreateAPIKeyRequest is the body for POST /api/api-keys.
type CreateAPIKeyRequest struct {
	Name string `json:"name"`
}

// IngestSetupRequest is the body for POST /api/ingest/setup.
type IngestSetupRequest struct {
	ProjectID       string                 `json:"projectId"`
	RunName         string                 `json:"runName,omitempty"`
	Framework       string                 `json:"framework"`
	ReporterVersion string                 `json:"reporterVersion"`
	TotalTests      int                    `json:"totalTests"`
	Environment     string                 `json:"environment,omitempty"`
	CIContext       map[string]interface{} `json:"ciContext,omitempty"`
}

// IngestEventRequest is the body for POST /api/ingest/event.
type IngestEventRequest struct {
	SessionID string         `json:"sessionId"`
	Events    []ingest.Event `json:"events"`
}

// IngestTeardownRequest is the body for POST /api/ingest/teardown.
type IngestTeardownRequest struct {
	SessionID string                 `json:"sessionId"`
	Status    string                 `json:"status"`
	Summary   ingest.TeardownSummary `json:"summary"`
}

// WorkerUpdateRequest is the body for POST /executions/update.
type WorkerUpdateRequest struct {
	TaskID  string `json:"taskId"`
	OrgID   string `json:"orgId"`
	Status  string `json:"status"`
	EndTime *int64 `json:"endTime,omitempty"` // unix milliseconds
	Output  string `json:"output,omitempty"`
}

// WorkerLogRequest is the body for POST /executions/log.
type WorkerLogRequest struct {
	TaskID string `json:"taskId"`
	OrgID  string `json:"orgId"`
	Log    string `json:"log"`
}
