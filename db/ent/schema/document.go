package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/claimdesk/claims-intake/constants"
	"github.com/claimdesk/claims-intake/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("claim_id", uuid.UUID{}),
		field.String("category").
			Validate(utils.EnumValidator(constants.CategoriesAsStrings()...)),
		field.String("filename").NotEmpty(),
		field.String("content_type").NotEmpty(),
		field.Int64("file_size").Default(0),
		field.String("storage_path").NotEmpty(),
		field.Text("extracted_text").Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("claim", Claim.Type).Ref("documents").
			Field("claim_id").Unique().Required(),
	}
}
