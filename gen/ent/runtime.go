// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/claimdesk/claims-intake/db/ent/schema"
	"github.com/claimdesk/claims-intake/gen/ent/claim"
	"github.com/claimdesk/claims-intake/gen/ent/document"
	"github.com/claimdesk/claims-intake/gen/ent/verificationresult"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	claimFields := schema.Claim{}.Fields()
	_ = claimFields
	// claimDescFullName is the schema descriptor for full_name field.
	claimDescFullName := claimFields[1].Descriptor()
	// claim.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	claim.FullNameValidator = claimDescFullName.Validators[0].(func(string) error)
	// claimDescEmail is the schema descriptor for email field.
	claimDescEmail := claimFields[2].Descriptor()
	// claim.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	claim.EmailValidator = claimDescEmail.Validators[0].(func(string) error)
	// claimDescPolicyNumber is the schema descriptor for policy_number field.
	claimDescPolicyNumber := claimFields[4].Descriptor()
	// claim.PolicyNumberValidator is a validator for the "policy_number" field. It is called by the builders before save.
	claim.PolicyNumberValidator = claimDescPolicyNumber.Validators[0].(func(string) error)
	// claimDescClaimType is the schema descriptor for claim_type field.
	claimDescClaimType := claimFields[5].Descriptor()
	// claim.ClaimTypeValidator is a validator for the "claim_type" field. It is called by the builders before save.
	claim.ClaimTypeValidator = claimDescClaimType.Validators[0].(func(string) error)
	// claimDescIncidentLocation is the schema descriptor for incident_location field.
	claimDescIncidentLocation := claimFields[7].Descriptor()
	// claim.IncidentLocationValidator is a validator for the "incident_location" field. It is called by the builders before save.
	claim.IncidentLocationValidator = claimDescIncidentLocation.Validators[0].(func(string) error)
	// claimDescDescription is the schema descriptor for description field.
	claimDescDescription := claimFields[8].Descriptor()
	// claim.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	claim.DescriptionValidator = claimDescDescription.Validators[0].(func(string) error)
	// claimDescStatus is the schema descriptor for status field.
	claimDescStatus := claimFields[10].Descriptor()
	// claim.DefaultStatus holds the default value on creation for the status field.
	claim.DefaultStatus = claimDescStatus.Default.(string)
	// claim.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	claim.StatusValidator = claimDescStatus.Validators[0].(func(string) error)
	// claimDescFraudRiskScore is the schema descriptor for fraud_risk_score field.
	claimDescFraudRiskScore := claimFields[11].Descriptor()
	// claim.DefaultFraudRiskScore holds the default value on creation for the fraud_risk_score field.
	claim.DefaultFraudRiskScore = claimDescFraudRiskScore.Default.(int)
	// claim.FraudRiskScoreValidator is a validator for the "fraud_risk_score" field. It is called by the builders before save.
	claim.FraudRiskScoreValidator = func() func(int) error {
		validators := claimDescFraudRiskScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(fraud_risk_score int) error {
			for _, fn := range fns {
				if err := fn(fraud_risk_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// claimDescVerificationStatus is the schema descriptor for verification_status field.
	claimDescVerificationStatus := claimFields[15].Descriptor()
	// claim.DefaultVerificationStatus holds the default value on creation for the verification_status field.
	claim.DefaultVerificationStatus = claimDescVerificationStatus.Default.(string)
	// claim.VerificationStatusValidator is a validator for the "verification_status" field. It is called by the builders before save.
	claim.VerificationStatusValidator = claimDescVerificationStatus.Validators[0].(func(string) error)
	// claimDescOverallConfidence is the schema descriptor for overall_confidence field.
	claimDescOverallConfidence := claimFields[16].Descriptor()
	// claim.DefaultOverallConfidence holds the default value on creation for the overall_confidence field.
	claim.DefaultOverallConfidence = claimDescOverallConfidence.Default.(float64)
	// claimDescCreatedAt is the schema descriptor for created_at field.
	claimDescCreatedAt := claimFields[17].Descriptor()
	// claim.DefaultCreatedAt holds the default value on creation for the created_at field.
	claim.DefaultCreatedAt = claimDescCreatedAt.Default.(func() time.Time)
	// claimDescUpdatedAt is the schema descriptor for updated_at field.
	claimDescUpdatedAt := claimFields[18].Descriptor()
	// claim.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	claim.DefaultUpdatedAt = claimDescUpdatedAt.Default.(func() time.Time)
	// claim.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	claim.UpdateDefaultUpdatedAt = claimDescUpdatedAt.UpdateDefault.(func() time.Time)
	// claimDescID is the schema descriptor for id field.
	claimDescID := claimFields[0].Descriptor()
	// claim.DefaultID holds the default value on creation for the id field.
	claim.DefaultID = claimDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescCategory is the schema descriptor for category field.
	documentDescCategory := documentFields[2].Descriptor()
	// document.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	document.CategoryValidator = documentDescCategory.Validators[0].(func(string) error)
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[3].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescContentType is the schema descriptor for content_type field.
	documentDescContentType := documentFields[4].Descriptor()
	// document.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	document.ContentTypeValidator = documentDescContentType.Validators[0].(func(string) error)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[5].Descriptor()
	// document.DefaultFileSize holds the default value on creation for the file_size field.
	document.DefaultFileSize = documentDescFileSize.Default.(int64)
	// documentDescStoragePath is the schema descriptor for storage_path field.
	documentDescStoragePath := documentFields[6].Descriptor()
	// document.StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	document.StoragePathValidator = documentDescStoragePath.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[8].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	verificationresultFields := schema.VerificationResult{}.Fields()
	_ = verificationresultFields
	// verificationresultDescCategory is the schema descriptor for category field.
	verificationresultDescCategory := verificationresultFields[2].Descriptor()
	// verificationresult.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	verificationresult.CategoryValidator = verificationresultDescCategory.Validators[0].(func(string) error)
	// verificationresultDescIsValid is the schema descriptor for is_valid field.
	verificationresultDescIsValid := verificationresultFields[3].Descriptor()
	// verificationresult.DefaultIsValid holds the default value on creation for the is_valid field.
	verificationresult.DefaultIsValid = verificationresultDescIsValid.Default.(bool)
	// verificationresultDescConfidence is the schema descriptor for confidence field.
	verificationresultDescConfidence := verificationresultFields[4].Descriptor()
	// verificationresult.DefaultConfidence holds the default value on creation for the confidence field.
	verificationresult.DefaultConfidence = verificationresultDescConfidence.Default.(float64)
	// verificationresultDescMatchScore is the schema descriptor for match_score field.
	verificationresultDescMatchScore := verificationresultFields[5].Descriptor()
	// verificationresult.DefaultMatchScore holds the default value on creation for the match_score field.
	verificationresult.DefaultMatchScore = verificationresultDescMatchScore.Default.(float64)
	// verificationresultDescCreatedAt is the schema descriptor for created_at field.
	verificationresultDescCreatedAt := verificationresultFields[7].Descriptor()
	// verificationresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	verificationresult.DefaultCreatedAt = verificationresultDescCreatedAt.Default.(func() time.Time)
	// verificationresultDescID is the schema descriptor for id field.
	verificationresultDescID := verificationresultFields[0].Descriptor()
	// verificationresult.DefaultID holds the default value on creation for the id field.
	verificationresult.DefaultID = verificationresultDescID.Default.(func() uuid.UUID)
}
