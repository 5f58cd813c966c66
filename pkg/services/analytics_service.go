package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/agnox-io/agnox/ent"
	"github.com/agnox-io/agnox/ent/execution"
	"github.com/agnox-io/agnox/pkg/models"
)

// AnalyticsService computes month-scoped KPI rollups per organization.
type AnalyticsService struct {
	client *ent.Client
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(client *ent.Client) *AnalyticsService {
	return &AnalyticsService{client: client}
}

// KPIs aggregates the current calendar month's executions for the org.
func (s *AnalyticsService) KPIs(ctx context.Context, orgID string) (models.KPIs, error) {
	now := time.Now().UTC()
	start, end := MonthWindow(now)

	executions, err := s.client.Execution.Query().
		Where(
			execution.OrgIDEQ(orgID),
			execution.DeletedAtIsNil(),
			execution.StartTimeGTE(start),
			execution.StartTimeLT(end),
		).
		Select(
			execution.FieldStatus,
			execution.FieldStartTime,
			execution.FieldEndTime,
		).
		All(ctx)
	if err != nil {
		return models.KPIs{}, fmt.Errorf("load executions: %w", err)
	}

	kpis := ComputeKPIs(executions)
	kpis.Period = now.Format("2006-01")
	return kpis, nil
}

// ComputeKPIs rolls up a set of executions. successRate is
// passed/finished as a percentage rounded to one decimal; avgDurationMs
// averages only runs that carry an end time.
func ComputeKPIs(executions []*ent.Execution) models.KPIs {
	kpis := models.KPIs{TotalRuns: len(executions)}

	var durationTotal int64
	var durationCount int64
	for _, exec := range executions {
		if IsTerminalStatus(string(exec.Status)) {
			kpis.FinishedRuns++
		}
		if exec.Status == execution.StatusPASSED {
			kpis.PassedRuns++
		}
		if exec.EndTime != nil {
			durationTotal += exec.EndTime.Sub(exec.StartTime).Milliseconds()
			durationCount++
		}
	}

	if kpis.FinishedRuns > 0 {
		rate := float64(kpis.PassedRuns) / float64(kpis.FinishedRuns) * 100
		kpis.SuccessRate = math.Round(rate*10) / 10
	}
	if durationCount > 0 {
		kpis.AvgDurationMs = durationTotal / durationCount
	}
	return kpis
}
