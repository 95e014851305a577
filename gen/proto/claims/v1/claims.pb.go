// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: claims/v1/claims.proto

package claimsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Claim struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FullName           string                 `protobuf:"bytes,2,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	Email              string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	Phone              string                 `protobuf:"bytes,4,opt,name=phone,proto3" json:"phone,omitempty"`
	PolicyNumber       string                 `protobuf:"bytes,5,opt,name=policy_number,json=policyNumber,proto3" json:"policy_number,omitempty"`
	ClaimType          string                 `protobuf:"bytes,6,opt,name=claim_type,json=claimType,proto3" json:"claim_type,omitempty"`
	IncidentDate       string                 `protobuf:"bytes,7,opt,name=incident_date,json=incidentDate,proto3" json:"incident_date,omitempty"` // YYYY-MM-DD
	IncidentLocation   string                 `protobuf:"bytes,8,opt,name=incident_location,json=incidentLocation,proto3" json:"incident_location,omitempty"`
	Description        string                 `protobuf:"bytes,9,opt,name=description,proto3" json:"description,omitempty"`
	ClaimAmount        string                 `protobuf:"bytes,10,opt,name=claim_amount,json=claimAmount,proto3" json:"claim_amount,omitempty"` // decimal string
	Status             string                 `protobuf:"bytes,11,opt,name=status,proto3" json:"status,omitempty"`
	FraudRiskScore     int32                  `protobuf:"varint,12,opt,name=fraud_risk_score,json=fraudRiskScore,proto3" json:"fraud_risk_score,omitempty"`
	RiskLevel          string                 `protobuf:"bytes,13,opt,name=risk_level,json=riskLevel,proto3" json:"risk_level,omitempty"`
	Recommendation     string                 `protobuf:"bytes,14,opt,name=recommendation,proto3" json:"recommendation,omitempty"`
	KeyFindings        []string               `protobuf:"bytes,15,rep,name=key_findings,json=keyFindings,proto3" json:"key_findings,omitempty"`
	VerificationStatus string                 `protobuf:"bytes,16,opt,name=verification_status,json=verificationStatus,proto3" json:"verification_status,omitempty"`
	OverallConfidence  float64                `protobuf:"fixed64,17,opt,name=overall_confidence,json=overallConfidence,proto3" json:"overall_confidence,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,18,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	UpdatedAt          string                 `protobuf:"bytes,19,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC3339
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Claim) Reset() {
	*x = Claim{}
	mi := &file_claims_v1_claims_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Claim) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Claim) ProtoMessage() {}

func (x *Claim) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Claim.ProtoReflect.Descriptor instead.
func (*Claim) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{0}
}

func (x *Claim) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Claim) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

func (x *Claim) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Claim) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *Claim) GetPolicyNumber() string {
	if x != nil {
		return x.PolicyNumber
	}
	return ""
}

func (x *Claim) GetClaimType() string {
	if x != nil {
		return x.ClaimType
	}
	return ""
}

func (x *Claim) GetIncidentDate() string {
	if x != nil {
		return x.IncidentDate
	}
	return ""
}

func (x *Claim) GetIncidentLocation() string {
	if x != nil {
		return x.IncidentLocation
	}
	return ""
}

func (x *Claim) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Claim) GetClaimAmount() string {
	if x != nil {
		return x.ClaimAmount
	}
	return ""
}

func (x *Claim) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Claim) GetFraudRiskScore() int32 {
	if x != nil {
		return x.FraudRiskScore
	}
	return 0
}

func (x *Claim) GetRiskLevel() string {
	if x != nil {
		return x.RiskLevel
	}
	return ""
}

func (x *Claim) GetRecommendation() string {
	if x != nil {
		return x.Recommendation
	}
	return ""
}

func (x *Claim) GetKeyFindings() []string {
	if x != nil {
		return x.KeyFindings
	}
	return nil
}

func (x *Claim) GetVerificationStatus() string {
	if x != nil {
		return x.VerificationStatus
	}
	return ""
}

func (x *Claim) GetOverallConfidence() float64 {
	if x != nil {
		return x.OverallConfidence
	}
	return 0
}

func (x *Claim) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Claim) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Document struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ClaimId       string                 `protobuf:"bytes,2,opt,name=claim_id,json=claimId,proto3" json:"claim_id,omitempty"`
	Category      string                 `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	Filename      string                 `protobuf:"bytes,4,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,5,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	FileSize      int64                  `protobuf:"varint,6,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	UploadedAt    string                 `protobuf:"bytes,7,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"` // RFC3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_claims_v1_claims_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{1}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetClaimId() string {
	if x != nil {
		return x.ClaimId
	}
	return ""
}

func (x *Document) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *Document) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *Document) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

type VerificationResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	IsValid       bool                   `protobuf:"varint,2,opt,name=is_valid,json=isValid,proto3" json:"is_valid,omitempty"`
	Confidence    float64                `protobuf:"fixed64,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	MatchScore    float64                `protobuf:"fixed64,4,opt,name=match_score,json=matchScore,proto3" json:"match_score,omitempty"`
	Findings      []string               `protobuf:"bytes,5,rep,name=findings,proto3" json:"findings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerificationResult) Reset() {
	*x = VerificationResult{}
	mi := &file_claims_v1_claims_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerificationResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerificationResult) ProtoMessage() {}

func (x *VerificationResult) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerificationResult.ProtoReflect.Descriptor instead.
func (*VerificationResult) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{2}
}

func (x *VerificationResult) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *VerificationResult) GetIsValid() bool {
	if x != nil {
		return x.IsValid
	}
	return false
}

func (x *VerificationResult) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *VerificationResult) GetMatchScore() float64 {
	if x != nil {
		return x.MatchScore
	}
	return 0
}

func (x *VerificationResult) GetFindings() []string {
	if x != nil {
		return x.Findings
	}
	return nil
}

type SubmitClaimRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	FullName         string                 `protobuf:"bytes,1,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	Email            string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	Phone            string                 `protobuf:"bytes,3,opt,name=phone,proto3" json:"phone,omitempty"`
	PolicyNumber     string                 `protobuf:"bytes,4,opt,name=policy_number,json=policyNumber,proto3" json:"policy_number,omitempty"`
	ClaimType        string                 `protobuf:"bytes,5,opt,name=claim_type,json=claimType,proto3" json:"claim_type,omitempty"`
	IncidentDate     string                 `protobuf:"bytes,6,opt,name=incident_date,json=incidentDate,proto3" json:"incident_date,omitempty"` // YYYY-MM-DD
	IncidentLocation string                 `protobuf:"bytes,7,opt,name=incident_location,json=incidentLocation,proto3" json:"incident_location,omitempty"`
	Description      string                 `protobuf:"bytes,8,opt,name=description,proto3" json:"description,omitempty"`
	ClaimAmount      string                 `protobuf:"bytes,9,opt,name=claim_amount,json=claimAmount,proto3" json:"claim_amount,omitempty"` // decimal string
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *SubmitClaimRequest) Reset() {
	*x = SubmitClaimRequest{}
	mi := &file_claims_v1_claims_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitClaimRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitClaimRequest) ProtoMessage() {}

func (x *SubmitClaimRequest) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitClaimRequest.ProtoReflect.Descriptor instead.
func (*SubmitClaimRequest) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{3}
}

func (x *SubmitClaimRequest) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

func (x *SubmitClaimRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *SubmitClaimRequest) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *SubmitClaimRequest) GetPolicyNumber() string {
	if x != nil {
		return x.PolicyNumber
	}
	return ""
}

func (x *SubmitClaimRequest) GetClaimType() string {
	if x != nil {
		return x.ClaimType
	}
	return ""
}

func (x *SubmitClaimRequest) GetIncidentDate() string {
	if x != nil {
		return x.IncidentDate
	}
	return ""
}

func (x *SubmitClaimRequest) GetIncidentLocation() string {
	if x != nil {
		return x.IncidentLocation
	}
	return ""
}

func (x *SubmitClaimRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *SubmitClaimRequest) GetClaimAmount() string {
	if x != nil {
		return x.ClaimAmount
	}
	return ""
}

type SubmitClaimResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Claim         *Claim                 `protobuf:"bytes,1,opt,name=claim,proto3" json:"claim,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitClaimResponse) Reset() {
	*x = SubmitClaimResponse{}
	mi := &file_claims_v1_claims_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitClaimResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitClaimResponse) ProtoMessage() {}

func (x *SubmitClaimResponse) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitClaimResponse.ProtoReflect.Descriptor instead.
func (*SubmitClaimResponse) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{4}
}

func (x *SubmitClaimResponse) GetClaim() *Claim {
	if x != nil {
		return x.Claim
	}
	return nil
}

type GetClaimRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClaimId       string                 `protobuf:"bytes,1,opt,name=claim_id,json=claimId,proto3" json:"claim_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetClaimRequest) Reset() {
	*x = GetClaimRequest{}
	mi := &file_claims_v1_claims_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetClaimRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetClaimRequest) ProtoMessage() {}

func (x *GetClaimRequest) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetClaimRequest.ProtoReflect.Descriptor instead.
func (*GetClaimRequest) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{5}
}

func (x *GetClaimRequest) GetClaimId() string {
	if x != nil {
		return x.ClaimId
	}
	return ""
}

type GetClaimResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Claim         *Claim                 `protobuf:"bytes,1,opt,name=claim,proto3" json:"claim,omitempty"`
	Documents     []*Document            `protobuf:"bytes,2,rep,name=documents,proto3" json:"documents,omitempty"`
	Verifications []*VerificationResult  `protobuf:"bytes,3,rep,name=verifications,proto3" json:"verifications,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetClaimResponse) Reset() {
	*x = GetClaimResponse{}
	mi := &file_claims_v1_claims_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetClaimResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetClaimResponse) ProtoMessage() {}

func (x *GetClaimResponse) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetClaimResponse.ProtoReflect.Descriptor instead.
func (*GetClaimResponse) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{6}
}

func (x *GetClaimResponse) GetClaim() *Claim {
	if x != nil {
		return x.Claim
	}
	return nil
}

func (x *GetClaimResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

func (x *GetClaimResponse) GetVerifications() []*VerificationResult {
	if x != nil {
		return x.Verifications
	}
	return nil
}

type ListClaimsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	ClaimType     string                 `protobuf:"bytes,2,opt,name=claim_type,json=claimType,proto3" json:"claim_type,omitempty"`
	FromDate      string                 `protobuf:"bytes,3,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,4,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD
	Email         string                 `protobuf:"bytes,5,opt,name=email,proto3" json:"email,omitempty"`                       // exact match on claimant email
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListClaimsRequest) Reset() {
	*x = ListClaimsRequest{}
	mi := &file_claims_v1_claims_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListClaimsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListClaimsRequest) ProtoMessage() {}

func (x *ListClaimsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListClaimsRequest.ProtoReflect.Descriptor instead.
func (*ListClaimsRequest) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{7}
}

func (x *ListClaimsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListClaimsRequest) GetClaimType() string {
	if x != nil {
		return x.ClaimType
	}
	return ""
}

func (x *ListClaimsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListClaimsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ListClaimsRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

type ListClaimsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Claims        []*Claim               `protobuf:"bytes,1,rep,name=claims,proto3" json:"claims,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListClaimsResponse) Reset() {
	*x = ListClaimsResponse{}
	mi := &file_claims_v1_claims_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListClaimsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListClaimsResponse) ProtoMessage() {}

func (x *ListClaimsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListClaimsResponse.ProtoReflect.Descriptor instead.
func (*ListClaimsResponse) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{8}
}

func (x *ListClaimsResponse) GetClaims() []*Claim {
	if x != nil {
		return x.Claims
	}
	return nil
}

type UpdateClaimStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClaimId       string                 `protobuf:"bytes,1,opt,name=claim_id,json=claimId,proto3" json:"claim_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateClaimStatusRequest) Reset() {
	*x = UpdateClaimStatusRequest{}
	mi := &file_claims_v1_claims_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateClaimStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateClaimStatusRequest) ProtoMessage() {}

func (x *UpdateClaimStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateClaimStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateClaimStatusRequest) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{9}
}

func (x *UpdateClaimStatusRequest) GetClaimId() string {
	if x != nil {
		return x.ClaimId
	}
	return ""
}

func (x *UpdateClaimStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type UpdateClaimStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Claim         *Claim                 `protobuf:"bytes,1,opt,name=claim,proto3" json:"claim,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateClaimStatusResponse) Reset() {
	*x = UpdateClaimStatusResponse{}
	mi := &file_claims_v1_claims_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateClaimStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateClaimStatusResponse) ProtoMessage() {}

func (x *UpdateClaimStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateClaimStatusResponse.ProtoReflect.Descriptor instead.
func (*UpdateClaimStatusResponse) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{10}
}

func (x *UpdateClaimStatusResponse) GetClaim() *Claim {
	if x != nil {
		return x.Claim
	}
	return nil
}

type ExportClaimsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	ClaimType     string                 `protobuf:"bytes,2,opt,name=claim_type,json=claimType,proto3" json:"claim_type,omitempty"`
	FromDate      string                 `protobuf:"bytes,3,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,4,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportClaimsRequest) Reset() {
	*x = ExportClaimsRequest{}
	mi := &file_claims_v1_claims_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportClaimsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportClaimsRequest) ProtoMessage() {}

func (x *ExportClaimsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportClaimsRequest.ProtoReflect.Descriptor instead.
func (*ExportClaimsRequest) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{11}
}

func (x *ExportClaimsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExportClaimsRequest) GetClaimType() string {
	if x != nil {
		return x.ClaimType
	}
	return ""
}

func (x *ExportClaimsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportClaimsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportClaimsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       []byte                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportClaimsResponse) Reset() {
	*x = ExportClaimsResponse{}
	mi := &file_claims_v1_claims_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportClaimsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportClaimsResponse) ProtoMessage() {}

func (x *ExportClaimsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportClaimsResponse.ProtoReflect.Descriptor instead.
func (*ExportClaimsResponse) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{12}
}

func (x *ExportClaimsResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *ExportClaimsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type UploadDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClaimId       string                 `protobuf:"bytes,1,opt,name=claim_id,json=claimId,proto3" json:"claim_id,omitempty"`
	Category      string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	Filename      string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,4,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Content       []byte                 `protobuf:"bytes,5,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_claims_v1_claims_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{13}
}

func (x *UploadDocumentRequest) GetClaimId() string {
	if x != nil {
		return x.ClaimId
	}
	return ""
}

func (x *UploadDocumentRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *UploadDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadDocumentRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *UploadDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type UploadDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_claims_v1_claims_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{14}
}

func (x *UploadDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type VerifyClaimRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClaimId       string                 `protobuf:"bytes,1,opt,name=claim_id,json=claimId,proto3" json:"claim_id,omitempty"`
	Async         bool                   `protobuf:"varint,2,opt,name=async,proto3" json:"async,omitempty"` // enqueue instead of waiting for the result
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyClaimRequest) Reset() {
	*x = VerifyClaimRequest{}
	mi := &file_claims_v1_claims_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyClaimRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyClaimRequest) ProtoMessage() {}

func (x *VerifyClaimRequest) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyClaimRequest.ProtoReflect.Descriptor instead.
func (*VerifyClaimRequest) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{15}
}

func (x *VerifyClaimRequest) GetClaimId() string {
	if x != nil {
		return x.ClaimId
	}
	return ""
}

func (x *VerifyClaimRequest) GetAsync() bool {
	if x != nil {
		return x.Async
	}
	return false
}

type VerifyClaimResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	VerificationStatus string                 `protobuf:"bytes,1,opt,name=verification_status,json=verificationStatus,proto3" json:"verification_status,omitempty"`
	OverallConfidence  float64                `protobuf:"fixed64,2,opt,name=overall_confidence,json=overallConfidence,proto3" json:"overall_confidence,omitempty"`
	Results            []*VerificationResult  `protobuf:"bytes,3,rep,name=results,proto3" json:"results,omitempty"`
	Queued             bool                   `protobuf:"varint,4,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *VerifyClaimResponse) Reset() {
	*x = VerifyClaimResponse{}
	mi := &file_claims_v1_claims_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyClaimResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyClaimResponse) ProtoMessage() {}

func (x *VerifyClaimResponse) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyClaimResponse.ProtoReflect.Descriptor instead.
func (*VerifyClaimResponse) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{16}
}

func (x *VerifyClaimResponse) GetVerificationStatus() string {
	if x != nil {
		return x.VerificationStatus
	}
	return ""
}

func (x *VerifyClaimResponse) GetOverallConfidence() float64 {
	if x != nil {
		return x.OverallConfidence
	}
	return 0
}

func (x *VerifyClaimResponse) GetResults() []*VerificationResult {
	if x != nil {
		return x.Results
	}
	return nil
}

func (x *VerifyClaimResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

type GetDocumentURLRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentURLRequest) Reset() {
	*x = GetDocumentURLRequest{}
	mi := &file_claims_v1_claims_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentURLRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentURLRequest) ProtoMessage() {}

func (x *GetDocumentURLRequest) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentURLRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentURLRequest) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{17}
}

func (x *GetDocumentURLRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentURLResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Url           string                 `protobuf:"bytes,1,opt,name=url,proto3" json:"url,omitempty"`
	ExpiresAt     string                 `protobuf:"bytes,2,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"` // RFC3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentURLResponse) Reset() {
	*x = GetDocumentURLResponse{}
	mi := &file_claims_v1_claims_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentURLResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentURLResponse) ProtoMessage() {}

func (x *GetDocumentURLResponse) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentURLResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentURLResponse) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{18}
}

func (x *GetDocumentURLResponse) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *GetDocumentURLResponse) GetExpiresAt() string {
	if x != nil {
		return x.ExpiresAt
	}
	return ""
}

var File_claims_v1_claims_proto protoreflect.FileDescriptor

const file_claims_v1_claims_proto_rawDesc = "" +
	"\n" +
	"\x16claims/v1/claims.proto\x12\tclaims.v1\"\x85\x05\n" +
	"\x05Claim\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tfull_name\x18\x02 \x01(\tR\bfullName\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\x12\x14\n" +
	"\x05phone\x18\x04 \x01(\tR\x05phone\x12#\n" +
	"\rpolicy_number\x18\x05 \x01(\tR\fpolicyNumber\x12\x1d\n" +
	"\n" +
	"claim_type\x18\x06 \x01(\tR\tclaimType\x12#\n" +
	"\rincident_date\x18\a \x01(\tR\fincidentDate\x12+\n" +
	"\x11incident_location\x18\b \x01(\tR\x10incidentLocation\x12 \n" +
	"\vdescription\x18\t \x01(\tR\vdescription\x12!\n" +
	"\fclaim_amount\x18\n" +
	" \x01(\tR\vclaimAmount\x12\x16\n" +
	"\x06status\x18\v \x01(\tR\x06status\x12(\n" +
	"\x10fraud_risk_score\x18\f \x01(\x05R\x0efraudRiskScore\x12\x1d\n" +
	"\n" +
	"risk_level\x18\r \x01(\tR\triskLevel\x12&\n" +
	"\x0erecommendation\x18\x0e \x01(\tR\x0erecommendation\x12!\n" +
	"\fkey_findings\x18\x0f \x03(\tR\vkeyFindings\x12/\n" +
	"\x13verification_status\x18\x10 \x01(\tR\x12verificationStatus\x12-\n" +
	"\x12overall_confidence\x18\x11 \x01(\x01R\x11overallConfidence\x12\x1d\n" +
	"\n" +
	"created_at\x18\x12 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x13 \x01(\tR\tupdatedAt\"\xce\x01\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bclaim_id\x18\x02 \x01(\tR\aclaimId\x12\x1a\n" +
	"\bcategory\x18\x03 \x01(\tR\bcategory\x12\x1a\n" +
	"\bfilename\x18\x04 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x05 \x01(\tR\vcontentType\x12\x1b\n" +
	"\tfile_size\x18\x06 \x01(\x03R\bfileSize\x12\x1f\n" +
	"\vuploaded_at\x18\a \x01(\tR\n" +
	"uploadedAt\"\xa8\x01\n" +
	"\x12VerificationResult\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12\x19\n" +
	"\bis_valid\x18\x02 \x01(\bR\aisValid\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x01R\n" +
	"confidence\x12\x1f\n" +
	"\vmatch_score\x18\x04 \x01(\x01R\n" +
	"matchScore\x12\x1a\n" +
	"\bfindings\x18\x05 \x03(\tR\bfindings\"\xb8\x02\n" +
	"\x12SubmitClaimRequest\x12\x1b\n" +
	"\tfull_name\x18\x01 \x01(\tR\bfullName\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\x12\x14\n" +
	"\x05phone\x18\x03 \x01(\tR\x05phone\x12#\n" +
	"\rpolicy_number\x18\x04 \x01(\tR\fpolicyNumber\x12\x1d\n" +
	"\n" +
	"claim_type\x18\x05 \x01(\tR\tclaimType\x12#\n" +
	"\rincident_date\x18\x06 \x01(\tR\fincidentDate\x12+\n" +
	"\x11incident_location\x18\a \x01(\tR\x10incidentLocation\x12 \n" +
	"\vdescription\x18\b \x01(\tR\vdescription\x12!\n" +
	"\fclaim_amount\x18\t \x01(\tR\vclaimAmount\"=\n" +
	"\x13SubmitClaimResponse\x12&\n" +
	"\x05claim\x18\x01 \x01(\v2\x10.claims.v1.ClaimR\x05claim\",\n" +
	"\x0fGetClaimRequest\x12\x19\n" +
	"\bclaim_id\x18\x01 \x01(\tR\aclaimId\"\xb2\x01\n" +
	"\x10GetClaimResponse\x12&\n" +
	"\x05claim\x18\x01 \x01(\v2\x10.claims.v1.ClaimR\x05claim\x121\n" +
	"\tdocuments\x18\x02 \x03(\v2\x13.claims.v1.DocumentR\tdocuments\x12C\n" +
	"\rverifications\x18\x03 \x03(\v2\x1d.claims.v1.VerificationResultR\rverifications\"\x96\x01\n" +
	"\x11ListClaimsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"claim_type\x18\x02 \x01(\tR\tclaimType\x12\x1b\n" +
	"\tfrom_date\x18\x03 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x04 \x01(\tR\x06toDate\x12\x14\n" +
	"\x05email\x18\x05 \x01(\tR\x05email\">\n" +
	"\x12ListClaimsResponse\x12(\n" +
	"\x06claims\x18\x01 \x03(\v2\x10.claims.v1.ClaimR\x06claims\"M\n" +
	"\x18UpdateClaimStatusRequest\x12\x19\n" +
	"\bclaim_id\x18\x01 \x01(\tR\aclaimId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"C\n" +
	"\x19UpdateClaimStatusResponse\x12&\n" +
	"\x05claim\x18\x01 \x01(\v2\x10.claims.v1.ClaimR\x05claim\"\x82\x01\n" +
	"\x13ExportClaimsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"claim_type\x18\x02 \x01(\tR\tclaimType\x12\x1b\n" +
	"\tfrom_date\x18\x03 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x04 \x01(\tR\x06toDate\"L\n" +
	"\x14ExportClaimsResponse\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\"\xa7\x01\n" +
	"\x15UploadDocumentRequest\x12\x19\n" +
	"\bclaim_id\x18\x01 \x01(\tR\aclaimId\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x04 \x01(\tR\vcontentType\x12\x18\n" +
	"\acontent\x18\x05 \x01(\fR\acontent\"I\n" +
	"\x16UploadDocumentResponse\x12/\n" +
	"\bdocument\x18\x01 \x01(\v2\x13.claims.v1.DocumentR\bdocument\"E\n" +
	"\x12VerifyClaimRequest\x12\x19\n" +
	"\bclaim_id\x18\x01 \x01(\tR\aclaimId\x12\x14\n" +
	"\x05async\x18\x02 \x01(\bR\x05async\"\xc6\x01\n" +
	"\x13VerifyClaimResponse\x12/\n" +
	"\x13verification_status\x18\x01 \x01(\tR\x12verificationStatus\x12-\n" +
	"\x12overall_confidence\x18\x02 \x01(\x01R\x11overallConfidence\x127\n" +
	"\aresults\x18\x03 \x03(\v2\x1d.claims.v1.VerificationResultR\aresults\x12\x16\n" +
	"\x06queued\x18\x04 \x01(\bR\x06queued\"8\n" +
	"\x15GetDocumentURLRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"I\n" +
	"\x16GetDocumentURLResponse\x12\x10\n" +
	"\x03url\x18\x01 \x01(\tR\x03url\x12\x1d\n" +
	"\n" +
	"expires_at\x18\x02 \x01(\tR\texpiresAt2\x9e\x03\n" +
	"\rClaimsService\x12L\n" +
	"\vSubmitClaim\x12\x1d.claims.v1.SubmitClaimRequest\x1a\x1e.claims.v1.SubmitClaimResponse\x12C\n" +
	"\bGetClaim\x12\x1a.claims.v1.GetClaimRequest\x1a\x1b.claims.v1.GetClaimResponse\x12I\n" +
	"\n" +
	"ListClaims\x12\x1c.claims.v1.ListClaimsRequest\x1a\x1d.claims.v1.ListClaimsResponse\x12^\n" +
	"\x11UpdateClaimStatus\x12#.claims.v1.UpdateClaimStatusRequest\x1a$.claims.v1.UpdateClaimStatusResponse\x12O\n" +
	"\fExportClaims\x12\x1e.claims.v1.ExportClaimsRequest\x1a\x1f.claims.v1.ExportClaimsResponse2\x8e\x02\n" +
	"\x10DocumentsService\x12U\n" +
	"\x0eUploadDocument\x12 .claims.v1.UploadDocumentRequest\x1a!.claims.v1.UploadDocumentResponse\x12L\n" +
	"\vVerifyClaim\x12\x1d.claims.v1.VerifyClaimRequest\x1a\x1e.claims.v1.VerifyClaimResponse\x12U\n" +
	"\x0eGetDocumentURL\x12 .claims.v1.GetDocumentURLRequest\x1a!.claims.v1.GetDocumentURLResponseBAZ?github.com/claimdesk/claims-intake/gen/proto/claims/v1;claimsv1b\x06proto3"

var (
	file_claims_v1_claims_proto_rawDescOnce sync.Once
	file_claims_v1_claims_proto_rawDescData []byte
)

func file_claims_v1_claims_proto_rawDescGZIP() []byte {
	file_claims_v1_claims_proto_rawDescOnce.Do(func() {
		file_claims_v1_claims_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_claims_v1_claims_proto_rawDesc), len(file_claims_v1_claims_proto_rawDesc)))
	})
	return file_claims_v1_claims_proto_rawDescData
}

var file_claims_v1_claims_proto_msgTypes = make([]protoimpl.MessageInfo, 19)
var file_claims_v1_claims_proto_goTypes = []any{
	(*Claim)(nil),                     // 0: claims.v1.Claim
	(*Document)(nil),                  // 1: claims.v1.Document
	(*VerificationResult)(nil),        // 2: claims.v1.VerificationResult
	(*SubmitClaimRequest)(nil),        // 3: claims.v1.SubmitClaimRequest
	(*SubmitClaimResponse)(nil),       // 4: claims.v1.SubmitClaimResponse
	(*GetClaimRequest)(nil),           // 5: claims.v1.GetClaimRequest
	(*GetClaimResponse)(nil),          // 6: claims.v1.GetClaimResponse
	(*ListClaimsRequest)(nil),         // 7: claims.v1.ListClaimsRequest
	(*ListClaimsResponse)(nil),        // 8: claims.v1.ListClaimsResponse
	(*UpdateClaimStatusRequest)(nil),  // 9: claims.v1.UpdateClaimStatusRequest
	(*UpdateClaimStatusResponse)(nil), // 10: claims.v1.UpdateClaimStatusResponse
	(*ExportClaimsRequest)(nil),       // 11: claims.v1.ExportClaimsRequest
	(*ExportClaimsResponse)(nil),      // 12: claims.v1.ExportClaimsResponse
	(*UploadDocumentRequest)(nil),     // 13: claims.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),    // 14: claims.v1.UploadDocumentResponse
	(*VerifyClaimRequest)(nil),        // 15: claims.v1.VerifyClaimRequest
	(*VerifyClaimResponse)(nil),       // 16: claims.v1.VerifyClaimResponse
	(*GetDocumentURLRequest)(nil),     // 17: claims.v1.GetDocumentURLRequest
	(*GetDocumentURLResponse)(nil),    // 18: claims.v1.GetDocumentURLResponse
}
var file_claims_v1_claims_proto_depIdxs = []int32{
	0,  // 0: claims.v1.SubmitClaimResponse.claim:type_name -> claims.v1.Claim
	0,  // 1: claims.v1.GetClaimResponse.claim:type_name -> claims.v1.Claim
	1,  // 2: claims.v1.GetClaimResponse.documents:type_name -> claims.v1.Document
	2,  // 3: claims.v1.GetClaimResponse.verifications:type_name -> claims.v1.VerificationResult
	0,  // 4: claims.v1.ListClaimsResponse.claims:type_name -> claims.v1.Claim
	0,  // 5: claims.v1.UpdateClaimStatusResponse.claim:type_name -> claims.v1.Claim
	1,  // 6: claims.v1.UploadDocumentResponse.document:type_name -> claims.v1.Document
	2,  // 7: claims.v1.VerifyClaimResponse.results:type_name -> claims.v1.VerificationResult
	3,  // 8: claims.v1.ClaimsService.SubmitClaim:input_type -> claims.v1.SubmitClaimRequest
	5,  // 9: claims.v1.ClaimsService.GetClaim:input_type -> claims.v1.GetClaimRequest
	7,  // 10: claims.v1.ClaimsService.ListClaims:input_type -> claims.v1.ListClaimsRequest
	9,  // 11: claims.v1.ClaimsService.UpdateClaimStatus:input_type -> claims.v1.UpdateClaimStatusRequest
	11, // 12: claims.v1.ClaimsService.ExportClaims:input_type -> claims.v1.ExportClaimsRequest
	13, // 13: claims.v1.DocumentsService.UploadDocument:input_type -> claims.v1.UploadDocumentRequest
	15, // 14: claims.v1.DocumentsService.VerifyClaim:input_type -> claims.v1.VerifyClaimRequest
	17, // 15: claims.v1.DocumentsService.GetDocumentURL:input_type -> claims.v1.GetDocumentURLRequest
	4,  // 16: claims.v1.ClaimsService.SubmitClaim:output_type -> claims.v1.SubmitClaimResponse
	6,  // 17: claims.v1.ClaimsService.GetClaim:output_type -> claims.v1.GetClaimResponse
	8,  // 18: claims.v1.ClaimsService.ListClaims:output_type -> claims.v1.ListClaimsResponse
	10, // 19: claims.v1.ClaimsService.UpdateClaimStatus:output_type -> claims.v1.UpdateClaimStatusResponse
	12, // 20: claims.v1.ClaimsService.ExportClaims:output_type -> claims.v1.ExportClaimsResponse
	14, // 21: claims.v1.DocumentsService.UploadDocument:output_type -> claims.v1.UploadDocumentResponse
	16, // 22: claims.v1.DocumentsService.VerifyClaim:output_type -> claims.v1.VerifyClaimResponse
	18, // 23: claims.v1.DocumentsService.GetDocumentURL:output_type -> claims.v1.GetDocumentURLResponse
	16, // [16:24] is the sub-list for method output_type
	8,  // [8:16] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_claims_v1_claims_proto_init() }
func file_claims_v1_claims_proto_init() {
	if File_claims_v1_claims_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_claims_v1_claims_proto_rawDesc), len(file_claims_v1_claims_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   19,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_claims_v1_claims_proto_goTypes,
		DependencyIndexes: file_claims_v1_claims_proto_depIdxs,
		MessageInfos:      file_claims_v1_claims_proto_msgTypes,
	}.Build()
	File_claims_v1_claims_proto = out.File
	file_claims_v1_claims_proto_goTypes = nil
	file_claims_v1_claims_proto_depIdxs = nil
}
