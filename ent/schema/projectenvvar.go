package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/agnox-io/agnox/pkg/secrets"
)

// ProjectEnvVar holds the schema definition for the ProjectEnvVar entity.
// Secret values are stored only as AES-256-GCM ciphertext; the plaintext
// column stays empty for them and API reads return a mask.
type ProjectEnvVar struct {
	ent.Schema
}

// Annotations of the ProjectEnvVar.
func (ProjectEnvVar) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "project_env_vars"},
	}
}

// Fields of the ProjectEnvVar.
func (ProjectEnvVar) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("org_id"),
		field.String("project_id"),
		field.String("key"),
		field.Text("value").
			Optional().
			Comment("Plaintext value for non-secret vars"),
		field.JSON("encrypted", secrets.Payload{}).
			Optional().
			Sensitive().
			Comment("AES-256-GCM {iv, ciphertext, tag} for secret vars"),
		field.Bool("is_secret").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ProjectEnvVar.
func (ProjectEnvVar) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "project_id", "key").
			Unique(),
	}
}
