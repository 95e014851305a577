package common

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Pipeline stages used for error context.
const (
	StageGenerate = "generate"
	StageParse    = "parse"
	StageValidate = "validate"
	StageExtract  = "extract"
	StageStorage  = "storage"
	StagePersist  = "persist"
)

// excerptLimit caps how much upstream payload an error may carry.
const excerptLimit = 240

// MissingFieldError reports required inputs absent from a request.
// It fails fast: no remote call is made when it is returned.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// UpstreamError wraps a failed remote call (generation, OCR, storage).
type UpstreamError struct {
	Stage    string
	Category string // document category when applicable, else ""
	Cause    error
}

func (e *UpstreamError) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("upstream failure at %s [%s]: %v", e.Stage, e.Category, e.Cause)
	}
	return fmt.Sprintf("upstream failure at %s: %v", e.Stage, e.Cause)
}

func (e *UpstreamError) Unwrap() error { return e.Cause }

// ContractViolation means a generated response did not match the required
// shape after normalization. Excerpt is truncated; never the full payload.
type ContractViolation struct {
	Stage    string
	Category string
	Reason   string
	Excerpt  string
}

func (e *ContractViolation) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("contract violation at %s [%s]: %s", e.Stage, e.Category, e.Reason)
	}
	return fmt.Sprintf("contract violation at %s: %s", e.Stage, e.Reason)
}

// NewContractViolation truncates the offending payload before attaching it.
func NewContractViolation(stage, category, reason, payload string) *ContractViolation {
	return &ContractViolation{
		Stage:    stage,
		Category: category,
		Reason:   reason,
		Excerpt:  Truncate(payload, excerptLimit),
	}
}

// Truncate caps s at max bytes, marking the cut.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}

// gRPC error helpers

func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}
