package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/claimdesk/claims-intake/constants"
	"github.com/claimdesk/claims-intake/db/ent/schema/utils"
)

type Claim struct{ ent.Schema }

func (Claim) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "claims"},
	}
}

func (Claim) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("full_name").NotEmpty(),
		field.String("email").NotEmpty(),
		field.String("phone").Optional(),
		field.String("policy_number").NotEmpty(),
		field.String("claim_type").
			Validate(utils.EnumValidator(constants.ClaimTypesAsStrings()...)),
		field.Time("incident_date"),
		field.String("incident_location").NotEmpty(),
		field.Text("description").NotEmpty(),
		field.Float("claim_amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("status").
			Default(string(constants.ClaimStatusSubmitted)).
			Validate(utils.EnumValidator(constants.ClaimStatusesAsStrings()...)),
		field.Int("fraud_risk_score").Default(0).Min(0).Max(100),
		field.String("risk_level").Optional(),
		field.String("recommendation").Optional(),
		field.JSON("key_findings", []string{}).Optional(),
		field.String("verification_status").
			Default(string(constants.VerificationPending)).
			Validate(utils.EnumValidator(constants.VerificationStatusesAsStrings()...)),
		field.Float("overall_confidence").Default(0),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Claim) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("documents", Document.Type),
		edge.To("verifications", VerificationResult.Type),
	}
}
