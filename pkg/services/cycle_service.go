package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/agnox-io/agnox/ent"
	"github.com/agnox-io/agnox/ent/testcycle"
	"github.com/agnox-io/agnox/pkg/models"
)

// CycleService manages test cycles and their embedded items.
type CycleService struct {
	client *ent.Client
}

// NewCycleService creates a new CycleService.
func NewCycleService(client *ent.Client) *CycleService {
	return &CycleService{client: client}
}

// CycleItemInput is one item of a cycle creation request.
type CycleItemInput struct {
	TestCaseID  string
	Type        string
	Title       string
	ExecutionID string
	ManualSteps []models.ManualStep
}

// Create adds a cycle with its initial items, all PENDING.
func (s *CycleService) Create(ctx context.Context, orgID, projectID, name string, items []CycleItemInput) (*ent.TestCycle, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}

	cycleItems := make([]models.CycleItem, 0, len(items))
	for _, in := range items {
		itemType := strings.ToUpper(in.Type)
		if itemType != models.CycleItemManual && itemType != models.CycleItemAutomated {
			return nil, NewValidationError("items", "type must be MANUAL or AUTOMATED")
		}
		cycleItems = append(cycleItems, models.CycleItem{
			ID:          uuid.New().String(),
			TestCaseID:  in.TestCaseID,
			Type:        itemType,
			Title:       in.Title,
			Status:      "PENDING",
			ExecutionID: in.ExecutionID,
			ManualSteps: in.ManualSteps,
		})
	}

	cycle, err := s.client.TestCycle.Create().
		SetID(uuid.New().String()).
		SetOrgID(orgID).
		SetProjectID(projectID).
		SetName(name).
		SetStatus(testcycle.StatusPENDING).
		SetItems(cycleItems).
		SetSummary(SummarizeItems(cycleItems)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create cycle: %w", err)
	}
	return cycle, nil
}

// CreateForIngest creates the RUNNING single-item cycle backing an ingest
// session. The returned cycle carries the generated item id.
func (s *CycleService) CreateForIngest(ctx context.Context, orgID, projectID, name, taskID string) (*ent.TestCycle, string, error) {
	itemID := uuid.New().String()
	items := []models.CycleItem{{
		ID:          itemID,
		Type:        models.CycleItemAutomated,
		Title:       name,
		Status:      "RUNNING",
		ExecutionID: taskID,
	}}

	cycle, err := s.client.TestCycle.Create().
		SetID(uuid.New().String()).
		SetOrgID(orgID).
		SetProjectID(projectID).
		SetName(name).
		SetStatus(testcycle.StatusRUNNING).
		SetItems(items).
		SetSummary(SummarizeItems(items)).
		Save(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("create ingest cycle: %w", err)
	}
	return cycle, itemID, nil
}

// List returns the org's cycles, optionally filtered by project.
func (s *CycleService) List(ctx context.Context, orgID, projectID string) ([]*ent.TestCycle, error) {
	query := s.client.TestCycle.Query().
		Where(testcycle.OrgIDEQ(orgID))
	if projectID != "" {
		query = query.Where(testcycle.ProjectIDEQ(projectID))
	}
	cycles, err := query.
		Order(ent.Desc(testcycle.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cycles: %w", err)
	}
	return cycles, nil
}

// Get returns a cycle scoped by org.
func (s *CycleService) Get(ctx context.Context, orgID, cycleID string) (*ent.TestCycle, error) {
	cycle, err := s.client.TestCycle.Query().
		Where(testcycle.IDEQ(cycleID), testcycle.OrgIDEQ(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get cycle: %w", err)
	}
	return cycle, nil
}

// UpdateItemStatus records the outcome of one item (typically a manual run)
// and recomputes the cycle's summary. The cycle completes when no item is
// left pending or running.
func (s *CycleService) UpdateItemStatus(ctx context.Context, orgID, cycleID, itemID, status string) (*ent.TestCycle, error) {
	cycle, err := s.Get(ctx, orgID, cycleID)
	if err != nil {
		return nil, err
	}

	items := cycle.Items
	found := false
	for i := range items {
		if items[i].ID == itemID {
			items[i].Status = strings.ToUpper(status)
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}

	update := cycle.Update().
		SetItems(items).
		SetSummary(SummarizeItems(items))
	if allItemsSettled(items) {
		update.SetStatus(testcycle.StatusCOMPLETED)
	} else {
		update.SetStatus(testcycle.StatusRUNNING)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update cycle item: %w", err)
	}
	return updated, nil
}

// CompleteForIngest marks the item linked to taskID terminal, completes the
// cycle and overwrites the summary. Called from ingest teardown.
func (s *CycleService) CompleteForIngest(ctx context.Context, orgID, cycleID, taskID, status string) (*ent.TestCycle, error) {
	cycle, err := s.Get(ctx, orgID, cycleID)
	if err != nil {
		return nil, err
	}

	items := cycle.Items
	for i := range items {
		if items[i].ExecutionID == taskID {
			items[i].Status = strings.ToUpper(status)
		}
	}

	updated, err := cycle.Update().
		SetStatus(testcycle.StatusCOMPLETED).
		SetItems(items).
		SetSummary(SummarizeItems(items)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete cycle: %w", err)
	}
	return updated, nil
}

// SummarizeItems computes the denormalized rollup stored on a cycle.
// automationRate is the share of AUTOMATED items, rounded to one decimal.
func SummarizeItems(items []models.CycleItem) models.CycleSummary {
	summary := models.CycleSummary{Total: len(items)}
	automated := 0
	for _, item := range items {
		switch strings.ToUpper(item.Status) {
		case "PASSED":
			summary.Passed++
		case "FAILED", "ERROR", "UNSTABLE":
			summary.Failed++
		}
		if item.Type == models.CycleItemAutomated {
			automated++
		}
	}
	if summary.Total > 0 {
		summary.AutomationRate = math.Round(float64(automated)/float64(summary.Total)*1000) / 10
	}
	return summary
}

func allItemsSettled(items []models.CycleItem) bool {
	for _, item := range items {
		switch strings.ToUpper(item.Status) {
		case "PENDING", "RUNNING":
			return false
		}
	}
	return true
}
