package api

import (
	"time"

	"github.com/agnox-io/agnox/ent"
	"github.com/agnox-io/agnox/pkg/cache"
	"github.com/agnox-io/agnox/pkg/database"
	"github.com/agnox-io/agnox/pkg/models"
)

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
	Org   OrgView  `json:"organization"`
}

// DispatchResponse is returned by POST /api/execution-request.
type DispatchResponse struct {
	Status string `json:"status"`
	TaskID string `json:"taskId"`
}

// ExecutionListResponse is returned by GET /api/executions.
type ExecutionListResponse struct {
	Executions []ExecutionView `json:"executions"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
}

// ExecutionView is the API shape of an execution.
type ExecutionView struct {
	ID          string                 `json:"id"`
	TaskID      string                 `json:"taskId"`
	Source      string                 `json:"source"`
	Status      string                 `json:"status"`
	Image       string                 `json:"image"`
	Command     string                 `json:"command,omitempty"`
	Folder      string                 `json:"folder,omitempty"`
	StartTime   time.Time              `json:"startTime"`
	EndTime     *time.Time             `json:"endTime,omitempty"`
	Config      models.TaskConfig      `json:"config"`
	Tests       []models.TestResult    `json:"tests,omitempty"`
	Output      string                 `json:"output,omitempty"`
	Trigger     string                 `json:"trigger"`
	GroupName   string                 `json:"groupName,omitempty"`
	BatchID     string                 `json:"batchId,omitempty"`
	CycleID     string                 `json:"cycleId,omitempty"`
	CycleItemID string                 `json:"cycleItemId,omitempty"`
	IngestMeta  map[string]interface{} `json:"ingestMeta,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
}

func toExecutionView(e *ent.Execution) ExecutionView {
	return ExecutionView{
		ID:          e.ID,
		TaskID:      e.TaskID,
		Source:      string(e.Source),
		Status:      string(e.Status),
		Image:       e.Image,
		Command:     e.Command,
		Folder:      e.Folder,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Config:      e.Config,
		Tests:       e.Tests,
		Output:      e.Output,
		Trigger:     string(e.Trigger),
		GroupName:   e.GroupName,
		BatchID:     e.BatchID,
		CycleID:     e.CycleID,
		CycleItemID: e.CycleItemID,
		IngestMeta:  e.IngestMeta,
		CreatedAt:   e.CreatedAt,
	}
}

// UserView is the API shape of a user. Password hashes never leave the store.
type UserView struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func toUserView(u *ent.User) UserView {
	return UserView{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        string(u.Role),
		Status:      string(u.Status),
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// OrgView is the API shape of an organization.
type OrgView struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Slug   string            `json:"slug"`
	Plan   string            `json:"plan"`
	Limits models.PlanLimits `json:"limits"`
}

func toOrgView(o *ent.Organization) OrgView {
	return OrgView{
		ID:     o.ID,
		Name:   o.Name,
		Slug:   o.Slug,
		Plan:   string(o.Plan),
		Limits: o.Limits,
	}
}

// ProjectView is the API shape of a project.
type ProjectView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}

func toProjectView(p *ent.Project) ProjectView {
	return ProjectView{
		ID:        p.ID,
		Name:      p.Name,
		Slug:      p.Slug,
		CreatedAt: p.CreatedAt,
	}
}

// CycleView is the API shape of a test cycle.
type CycleView struct {
	ID        string              `json:"id"`
	ProjectID string              `json:"projectId"`
	Name      string              `json:"name"`
	Status    string              `json:"status"`
	Items     []models.CycleItem  `json:"items"`
	Summary   models.CycleSummary `json:"summary"`
	CreatedAt time.Time           `json:"createdAt"`
}

func toCycleView(c *ent.TestCycle) CycleView {
	return CycleView{
		ID:        c.ID,
		ProjectID: c.ProjectID,
		Name:      c.Name,
		Status:    string(c.Status),
		Items:     c.Items,
		Summary:   c.Summary,
		CreatedAt: c.CreatedAt,
	}
}

// ScheduleView is the API shape of a schedule.
type ScheduleView struct {
	ID             string    `json:"id"`
	ProjectID      string    `json:"projectId,omitempty"`
	Name           string    `json:"name"`
	CronExpression string    `json:"cronExpression"`
	Environment    string    `json:"environment"`
	IsActive       bool      `json:"isActive"`
	Image          string    `json:"image"`
	Folder         string    `json:"folder,omitempty"`
	BaseURL        string    `json:"baseUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toScheduleView(s *ent.Schedule) ScheduleView {
	return ScheduleView{
		ID:             s.ID,
		ProjectID:      s.ProjectID,
		Name:           s.Name,
		CronExpression: s.CronExpression,
		Environment:    s.Environment,
		IsActive:       s.IsActive,
		Image:          s.Image,
		Folder:         s.Folder,
		BaseURL:        s.BaseURL,
		CreatedAt:      s.CreatedAt,
	}
}

// APIKeyView is the API shape of an API key. Only the display prefix is
// exposed; Plaintext is set exactly once, in the create response.
type APIKeyView struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Prefix     string     `json:"prefix"`
	Plaintext  string     `json:"key,omitempty"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func toAPIKeyView(k *ent.APIKey) APIKeyView {
	return APIKeyView{
		ID:         k.ID,
		Name:       k.Name,
		Prefix:     k.Prefix,
		LastUsedAt: k.LastUsedAt,
		CreatedAt:  k.CreatedAt,
	}
}

// ConfigDefaultsResponse is returned by GET /config/defaults.
type ConfigDefaultsResponse struct {
	DefaultImage string            `json:"defaultImage"`
	Environments []string          `json:"environments"`
	BaseURLs     map[string]string `json:"baseUrls"`
}

// QueueHealth is the queue section of the health endpoint.
type QueueHealth struct {
	Status        string `json:"status"`
	MessageCount  int    `json:"messageCount,omitempty"`
	ConsumerCount int    `json:"consumerCount,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database"`
	Cache    *cache.HealthStatus    `json:"cache"`
	Queue    *QueueHealth           `json:"queue"`
}
