// Package events is the realtime fan-out layer. Authenticated dashboard
// connections join their organization's room and receive execution updates
// and live log lines as they happen.
package events

import (
	"encoding/json"

	"github.com/agnox-io/agnox/pkg/models"
)

// Server-initiated event names.
const (
	EventExecutionUpdated = "execution-updated"
	EventExecutionLog     = "execution-log"
	EventAuthSuccess      = "auth-success"
	EventAuthError        = "auth-error"
)

// RoomForOrg names an organization's broadcast room.
func RoomForOrg(orgID string) string {
	return "org:" + orgID
}

// Envelope is the wire shape of every server-initiated message.
type Envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// Marshal serializes an envelope once so Broadcast can reuse the bytes for
// every connection in the room.
func Marshal(event string, data interface{}) ([]byte, error) {
	return json.Marshal(Envelope{Event: event, Data: data})
}

// ExecutionUpdatedPayload mirrors the execution fields dashboards render.
type ExecutionUpdatedPayload struct {
	TaskID  string              `json:"taskId"`
	OrgID   string              `json:"orgId"`
	Status  string              `json:"status"`
	Source  string              `json:"source,omitempty"`
	Trigger string              `json:"trigger,omitempty"`
	Tests   []models.TestResult `json:"tests,omitempty"`
	EndTime int64               `json:"endTime,omitempty"`
}

// ExecutionLogPayload carries one live log line.
type ExecutionLogPayload struct {
	TaskID string `json:"taskId"`
	OrgID  string `json:"orgId"`
	Log    string `json:"log"`
}

// AuthSuccessPayload confirms the handshake and the joined room's identity.
type AuthSuccessPayload struct {
	OrgID  string `json:"orgId"`
	UserID string `json:"userId"`
	Role   string `json:"role"`
}
