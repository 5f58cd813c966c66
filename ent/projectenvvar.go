// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agnox-io/agnox/ent/projectenvvar"
	"github.com/agnox-io/agnox/pkg/secrets"
)

// ProjectEnvVar is the model entity for the ProjectEnvVar schema.
type ProjectEnvVar struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OrgID holds the value of the "org_id" field.
	OrgID string `json:"org_id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Key holds the value of the "key" field.
	Key string `json:"key,omitempty"`
	// Plaintext value for non-secret vars
	Value string `json:"value,omitempty"`
	// AES-256-GCM {iv, ciphertext, tag} for secret vars
	Encrypted secrets.Payload `json:"-"`
	// IsSecret holds the value of the "is_secret" field.
	IsSecret bool `json:"is_secret,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProjectEnvVar) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case projectenvvar.FieldEncrypted:
			values[i] = new([]byte)
		case projectenvvar.FieldIsSecret:
			values[i] = new(sql.NullBool)
		case projectenvvar.FieldID, projectenvvar.FieldOrgID, projectenvvar.FieldProjectID, projectenvvar.FieldKey, projectenvvar.FieldValue:
			values[i] = new(sql.NullString)
		case projectenvvar.FieldCreatedAt, projectenvvar.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProjectEnvVar fields.
func (_m *ProjectEnvVar) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case projectenvvar.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case projectenvvar.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case projectenvvar.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case projectenvvar.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case projectenvvar.FieldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.String
			}
		case projectenvvar.FieldEncrypted:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field encrypted", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Encrypted); err != nil {
					return fmt.Errorf("unmarshal field encrypted: %w", err)
				}
			}
		case projectenvvar.FieldIsSecret:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_secret", values[i])
			} else if value.Valid {
				_m.IsSecret = value.Bool
			}
		case projectenvvar.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case projectenvvar.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the ProjectEnvVar.
// This includes values selected through modifiers, order, etc.
func (_m *ProjectEnvVar) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProjectEnvVar.
// Note that you need to call ProjectEnvVar.Unwrap() before calling this method if this ProjectEnvVar
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProjectEnvVar) Update() *ProjectEnvVarUpdateOne {
	return NewProjectEnvVarClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProjectEnvVar entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProjectEnvVar) Unwrap() *ProjectEnvVar {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProjectEnvVar is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProjectEnvVar) String() string {
	var builder strings.Builder
	builder.WriteString("ProjectEnvVar(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("org_id=")
	builder.WriteString(_m.OrgID)
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(_m.Value)
	builder.WriteString(", ")
	builder.WriteString("encrypted=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("is_secret=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsSecret))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProjectEnvVars is a parsable slice of ProjectEnvVar.
type ProjectEnvVars []*ProjectEnvVar
