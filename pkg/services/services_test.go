package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agnox-io/agnox/ent"
	"github.com/agnox-io/agnox/ent/execution"
	"github.com/agnox-io/agnox/pkg/models"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple name",
			input:    "Acme",
			expected: "acme",
		},
		{
			name:     "spaces collapse to hyphens",
			input:    "Acme  QA Team",
			expected: "acme-qa-team",
		},
		{
			name:     "punctuation stripped",
			input:    "Acme, Inc. (EU)",
			expected: "acme-inc-eu",
		},
		{
			name:     "leading and trailing noise trimmed",
			input:    "  --Acme--  ",
			expected: "acme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestMonthWindow(t *testing.T) {
	now := time.Date(2026, time.August, 24, 15, 4, 5, 0, time.UTC)
	start, end := MonthWindow(now)

	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), end)

	// December rolls into the next year.
	start, end = MonthWindow(time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestValidateEnvVarKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "simple upper", key: "API_URL", wantErr: false},
		{name: "leading underscore", key: "_INTERNAL", wantErr: false},
		{name: "mixed case", key: "baseUrl", wantErr: false},
		{name: "leading digit", key: "1KEY", wantErr: true},
		{name: "hyphen", key: "API-URL", wantErr: true},
		{name: "empty", key: "", wantErr: true},
		{name: "reserved prefix", key: "PLATFORM_TOKEN", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEnvVarKey(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
				var verr *ValidationError
				assert.ErrorAs(t, err, &verr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEnvironment(t *testing.T) {
	assert.NoError(t, ValidateEnvironment("dev"))
	assert.NoError(t, ValidateEnvironment("staging"))
	assert.NoError(t, ValidateEnvironment("prod"))
	assert.Error(t, ValidateEnvironment("production"))
	assert.Error(t, ValidateEnvironment(""))
}

func TestValidateCronExpression(t *testing.T) {
	assert.NoError(t, ValidateCronExpression("0 9 * * 1-5"))
	assert.NoError(t, ValidateCronExpression("*/15 * * * *"))
	assert.Error(t, ValidateCronExpression("every morning"))
	assert.Error(t, ValidateCronExpression("61 * * * *"))
}

func TestSummarizeItems(t *testing.T) {
	items := []models.CycleItem{
		{ID: "1", Type: models.CycleItemAutomated, Status: "PASSED"},
		{ID: "2", Type: models.CycleItemAutomated, Status: "FAILED"},
		{ID: "3", Type: models.CycleItemManual, Status: "PASSED"},
		{ID: "4", Type: models.CycleItemManual, Status: "PENDING"},
	}

	summary := SummarizeItems(items)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Passed)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 50.0, summary.AutomationRate)
}

func TestSummarizeItemsEmpty(t *testing.T) {
	summary := SummarizeItems(nil)
	assert.Equal(t, models.CycleSummary{}, summary)
}

func TestComputeKPIs(t *testing.T) {
	start := time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC)
	end2s := start.Add(2 * time.Second)
	end4s := start.Add(4 * time.Second)

	executions := []*ent.Execution{
		{Status: execution.StatusPASSED, StartTime: start, EndTime: &end2s},
		{Status: execution.StatusPASSED, StartTime: start, EndTime: &end4s},
		{Status: execution.StatusFAILED, StartTime: start, EndTime: &end2s},
		{Status: execution.StatusRUNNING, StartTime: start},
	}

	kpis := ComputeKPIs(executions)
	assert.Equal(t, 4, kpis.TotalRuns)
	assert.Equal(t, 3, kpis.FinishedRuns)
	assert.Equal(t, 2, kpis.PassedRuns)
	// 2/3 as a percentage, one decimal.
	assert.Equal(t, 66.7, kpis.SuccessRate)
	assert.Equal(t, int64((2000+4000+2000)/3), kpis.AvgDurationMs)
}

func TestComputeKPIsNoFinishedRuns(t *testing.T) {
	kpis := ComputeKPIs([]*ent.Execution{
		{Status: execution.StatusPENDING, StartTime: time.Now()},
	})
	assert.Equal(t, 1, kpis.TotalRuns)
	assert.Zero(t, kpis.SuccessRate)
	assert.Zero(t, kpis.AvgDurationMs)
}

func TestIsTerminalStatus(t *testing.T) {
	for _, status := range []string{"PASSED", "FAILED", "ERROR", "UNSTABLE"} {
		assert.True(t, IsTerminalStatus(status), status)
	}
	for _, status := range []string{"PENDING", "RUNNING", "ANALYZING", "bogus"} {
		assert.False(t, IsTerminalStatus(status), status)
	}
}
