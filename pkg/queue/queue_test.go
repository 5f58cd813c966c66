package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agnox-io/agnox/pkg/models"
)

func TestClampPriority(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{name: "below range", input: 0, expected: 1},
		{name: "negative", input: -4, expected: 1},
		{name: "in range", input: 5, expected: 5},
		{name: "upper bound", input: 10, expected: 10},
		{name: "above range", input: 99, expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampPriority(tt.input))
		})
	}
}

func TestPriorityForTrigger(t *testing.T) {
	assert.Equal(t, PriorityManual, PriorityForTrigger(models.TriggerManual))
	assert.Equal(t, PriorityWebhook, PriorityForTrigger(models.TriggerWebhook))
	assert.Equal(t, PriorityWebhook, PriorityForTrigger(models.TriggerGitHub))
	assert.Equal(t, PriorityWebhook, PriorityForTrigger(models.TriggerGitLab))
	assert.Equal(t, PriorityWebhook, PriorityForTrigger(models.TriggerJenkins))
	assert.Equal(t, PriorityCron, PriorityForTrigger(models.TriggerCron))
	assert.Equal(t, PriorityManual, PriorityForTrigger("unknown"))
}

func TestTaskMessageWireFormat(t *testing.T) {
	task := models.TaskMessage{
		TaskID:         "t1",
		Image:          "agnox/runner:1",
		Command:        "npx playwright test",
		OrganizationID: "org-1",
		Config: models.TaskConfig{
			Environment:   "staging",
			BaseURL:       "https://staging.example.com",
			RetryAttempts: 2,
			EnvVars:       map[string]string{"API_URL": "https://api"},
		},
		Trigger: models.TriggerManual,
	}

	body, err := json.Marshal(task)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))

	// Workers key off these exact field names.
	assert.Equal(t, "t1", decoded["taskId"])
	assert.Equal(t, "org-1", decoded["organizationId"])
	config, ok := decoded["config"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "staging", config["environment"])
	assert.Equal(t, "https://staging.example.com", config["baseUrl"])
	assert.Equal(t, float64(2), config["retryAttempts"])

	// Empty optionals stay off the wire.
	assert.NotContains(t, decoded, "folder")
	assert.NotContains(t, decoded, "cycleId")
}
