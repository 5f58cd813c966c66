package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Schedule holds the schema definition for the Schedule entity.
// Active schedules are registered with the in-process cron scheduler at
// startup; API mutations add/remove jobs without a restart.
type Schedule struct {
	ent.Schema
}

// Annotations of the Schedule.
func (Schedule) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "schedules"},
	}
}

// Fields of the Schedule.
func (Schedule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("org_id"),
		field.String("project_id").
			Optional(),
		field.String("name"),
		field.String("cron_expression"),
		field.String("environment"),
		field.Bool("is_active").
			Default(true),
		field.String("image"),
		field.String("folder").
			Optional(),
		field.String("base_url").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Schedule.
func (Schedule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id"),
		index.Fields("is_active"),
	}
}
