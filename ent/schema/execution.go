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

// Execution holds the schema definition for the Execution entity.
// The external identity of a run is (task_id, org_id); the row id stays
// internal. Terminal statuses are immutable except for annotation fields.
type Execution struct {
	ent.Schema
}

// Annotations of the Execution.
func (Execution) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "executions"},
	}
}

// Fields of the Execution.
func (Execution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("task_id"),
		field.String("org_id"),
		field.Enum("source").
			Values("agnox-hosted", "external-ci").
			Default("agnox-hosted"),
		field.Enum("status").
			Values("PENDING", "RUNNING", "PASSED", "FAILED", "ERROR", "UNSTABLE", "ANALYZING").
			Default("PENDING"),
		field.String("image").
			Comment(`Container image, or the "external-ci" sentinel for ingested runs`),
		field.String("command").
			Optional(),
		field.String("folder").
			Optional(),
		field.Time("start_time"),
		field.Time("end_time").
			Optional().
			Nillable(),
		field.JSON("config", models.TaskConfig{}).
			Optional(),
		field.JSON("tests", []models.TestResult{}).
			Optional(),
		field.Text("output").
			Optional().
			Comment("Concatenated live-log buffer drained at completion"),
		field.Enum("trigger").
			Values("manual", "cron", "github", "gitlab", "jenkins", "webhook").
			Default("manual"),
		field.String("group_name").
			Optional(),
		field.String("batch_id").
			Optional(),
		field.String("cycle_id").
			Optional().
			Comment("Back-reference to the owning test cycle, by id"),
		field.String("cycle_item_id").
			Optional(),
		field.JSON("ingest_meta", map[string]interface{}{}).
			Optional().
			Comment("Framework, reporter version and CI context for external-ci runs"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete; hard-deleted later by the retention loop"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Execution.
func (Execution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "org_id").
			Unique(),
		index.Fields("org_id", "start_time"),
		index.Fields("org_id", "status"),
	}
}
