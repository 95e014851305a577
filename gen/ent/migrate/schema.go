// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ClaimsColumns holds the columns for the "claims" table.
	ClaimsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "full_name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "policy_number", Type: field.TypeString},
		{Name: "claim_type", Type: field.TypeString},
		{Name: "incident_date", Type: field.TypeTime},
		{Name: "incident_location", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "claim_amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "status", Type: field.TypeString, Default: "SUBMITTED"},
		{Name: "fraud_risk_score", Type: field.TypeInt, Default: 0},
		{Name: "risk_level", Type: field.TypeString, Nullable: true},
		{Name: "recommendation", Type: field.TypeString, Nullable: true},
		{Name: "key_findings", Type: field.TypeJSON, Nullable: true},
		{Name: "verification_status", Type: field.TypeString, Default: "PENDING"},
		{Name: "overall_confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ClaimsTable holds the schema information for the "claims" table.
	ClaimsTable = &schema.Table{
		Name:       "claims",
		Columns:    ClaimsColumns,
		PrimaryKey: []*schema.Column{ClaimsColumns[0]},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "category", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt64, Default: 0},
		{Name: "storage_path", Type: field.TypeString},
		{Name: "extracted_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "claim_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_claims_documents",
				Columns:    []*schema.Column{DocumentsColumns[8]},
				RefColumns: []*schema.Column{ClaimsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// VerificationResultsColumns holds the columns for the "verification_results" table.
	VerificationResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "category", Type: field.TypeString},
		{Name: "is_valid", Type: field.TypeBool, Default: false},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "match_score", Type: field.TypeFloat64, Default: 0},
		{Name: "findings", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "claim_id", Type: field.TypeUUID},
	}
	// VerificationResultsTable holds the schema information for the "verification_results" table.
	VerificationResultsTable = &schema.Table{
		Name:       "verification_results",
		Columns:    VerificationResultsColumns,
		PrimaryKey: []*schema.Column{VerificationResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "verification_results_claims_verifications",
				Columns:    []*schema.Column{VerificationResultsColumns[7]},
				RefColumns: []*schema.Column{ClaimsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "verificationresult_claim_id_category",
				Unique:  true,
				Columns: []*schema.Column{VerificationResultsColumns[7], VerificationResultsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ClaimsTable,
		DocumentsTable,
		VerificationResultsTable,
	}
)

func init() {
	ClaimsTable.Annotation = &entsql.Annotation{
		Table: "claims",
	}
	DocumentsTable.ForeignKeys[0].RefTable = ClaimsTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	VerificationResultsTable.ForeignKeys[0].RefTable = ClaimsTable
	VerificationResultsTable.Annotation = &entsql.Annotation{
		Table: "verification_results",
	}
}
