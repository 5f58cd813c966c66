package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/agnox-io/agnox/pkg/models"
)

// Organization holds the schema definition for the Organization entity.
// Every other entity is owned by exactly one organization and all queries
// against them are scoped by org_id.
type Organization struct {
	ent.Schema
}

// Annotations of the Organization.
func (Organization) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "organizations"},
	}
}

// Fields of the Organization.
func (Organization) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("slug").
			Unique().
			Comment("URL-safe unique identifier derived from the name"),
		field.Enum("plan").
			Values("free", "team", "enterprise").
			Default("free"),
		field.JSON("limits", models.PlanLimits{}).
			Comment("Per-plan quotas consulted by the plan enforcer"),
		field.JSON("features", map[string]bool{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
