package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IngestArchive holds the schema definition for the IngestArchive entity.
// One row is written per ingest session at teardown; rows past expires_at
// are purged by the retention loop (7-day window).
type IngestArchive struct {
	ent.Schema
}

// Annotations of the IngestArchive.
func (IngestArchive) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ingest_archives"},
	}
}

// Fields of the IngestArchive.
func (IngestArchive) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("org_id"),
		field.String("project_id"),
		field.String("task_id"),
		field.String("cycle_id"),
		field.String("cycle_item_id"),
		field.String("framework"),
		field.String("reporter_version"),
		field.Int("total_tests"),
		field.String("status"),
		field.Time("start_time"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at"),
	}
}

// Indexes of the IngestArchive.
func (IngestArchive) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("expires_at"),
		index.Fields("org_id"),
	}
}
