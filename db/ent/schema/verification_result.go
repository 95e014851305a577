package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/claimdesk/claims-intake/constants"
	"github.com/claimdesk/claims-intake/db/ent/schema/utils"
)

type VerificationResult struct{ ent.Schema }

func (VerificationResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "verification_results"},
	}
}

func (VerificationResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("claim_id", uuid.UUID{}),
		field.String("category").
			Validate(utils.EnumValidator(constants.CategoriesAsStrings()...)),
		field.Bool("is_valid").Default(false),
		field.Float("confidence").Default(0),
		field.Float("match_score").Default(0),
		field.JSON("findings", []string{}).Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (VerificationResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("claim", Claim.Type).Ref("verifications").
			Field("claim_id").Unique().Required(),
	}
}

func (VerificationResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("claim_id", "category").Unique(),
	}
}
