// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agnox-io/agnox/ent/ingestarchive"
)

// IngestArchive is the model entity for the IngestArchive schema.
type IngestArchive struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OrgID holds the value of the "org_id" field.
	OrgID string `json:"org_id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// CycleID holds the value of the "cycle_id" field.
	CycleID string `json:"cycle_id,omitempty"`
	// CycleItemID holds the value of the "cycle_item_id" field.
	CycleItemID string `json:"cycle_item_id,omitempty"`
	// Framework holds the value of the "framework" field.
	Framework string `json:"framework,omitempty"`
	// ReporterVersion holds the value of the "reporter_version" field.
	ReporterVersion string `json:"reporter_version,omitempty"`
	// TotalTests holds the value of the "total_tests" field.
	TotalTests int `json:"total_tests,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime time.Time `json:"start_time,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IngestArchive) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ingestarchive.FieldTotalTests:
			values[i] = new(sql.NullInt64)
		case ingestarchive.FieldID, ingestarchive.FieldOrgID, ingestarchive.FieldProjectID, ingestarchive.FieldTaskID, ingestarchive.FieldCycleID, ingestarchive.FieldCycleItemID, ingestarchive.FieldFramework, ingestarchive.FieldReporterVersion, ingestarchive.FieldStatus:
			values[i] = new(sql.NullString)
		case ingestarchive.FieldStartTime, ingestarchive.FieldCreatedAt, ingestarchive.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IngestArchive fields.
func (_m *IngestArchive) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ingestarchive.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case ingestarchive.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case ingestarchive.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case ingestarchive.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case ingestarchive.FieldCycleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cycle_id", values[i])
			} else if value.Valid {
				_m.CycleID = value.String
			}
		case ingestarchive.FieldCycleItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cycle_item_id", values[i])
			} else if value.Valid {
				_m.CycleItemID = value.String
			}
		case ingestarchive.FieldFramework:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field framework", values[i])
			} else if value.Valid {
				_m.Framework = value.String
			}
		case ingestarchive.FieldReporterVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reporter_version", values[i])
			} else if value.Valid {
				_m.ReporterVersion = value.String
			}
		case ingestarchive.FieldTotalTests:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tests", values[i])
			} else if value.Valid {
				_m.TotalTests = int(value.Int64)
			}
		case ingestarchive.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case ingestarchive.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case ingestarchive.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case ingestarchive.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IngestArchive.
// This includes values selected through modifiers, order, etc.
func (_m *IngestArchive) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this IngestArchive.
// Note that you need to call IngestArchive.Unwrap() before calling this method if this IngestArchive
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IngestArchive) Update() *IngestArchiveUpdateOne {
	return NewIngestArchiveClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IngestArchive entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IngestArchive) Unwrap() *IngestArchive {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IngestArchive is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IngestArchive) String() string {
	var builder strings.Builder
	builder.WriteString("IngestArchive(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("org_id=")
	builder.WriteString(_m.OrgID)
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("cycle_id=")
	builder.WriteString(_m.CycleID)
	builder.WriteString(", ")
	builder.WriteString("cycle_item_id=")
	builder.WriteString(_m.CycleItemID)
	builder.WriteString(", ")
	builder.WriteString("framework=")
	builder.WriteString(_m.Framework)
	builder.WriteString(", ")
	builder.WriteString("reporter_version=")
	builder.WriteString(_m.ReporterVersion)
	builder.WriteString(", ")
	builder.WriteString("total_tests=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTests))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// IngestArchives is a parsable slice of IngestArchive.
type IngestArchives []*IngestArchive
