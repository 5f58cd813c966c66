package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/agnox-io/agnox/pkg/models"
)

// TestCycle holds the schema definition for the TestCycle entity.
// A cycle owns its items; automated items name an execution by taskId.
type TestCycle struct {
	ent.Schema
}

// Annotations of the TestCycle.
func (TestCycle) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "test_cycles"},
	}
}

// Fields of the TestCycle.
func (TestCycle) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("org_id"),
		field.String("project_id"),
		field.String("name"),
		field.Enum("status").
			Values("PENDING", "RUNNING", "COMPLETED").
			Default("PENDING"),
		field.JSON("items", []models.CycleItem{}).
			Optional(),
		field.JSON("summary", models.CycleSummary{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the TestCycle.
func (TestCycle) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "project_id"),
	}
}
