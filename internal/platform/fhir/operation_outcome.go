package fhir

import (
	"errors"
	"fmt"
)

// OperationOutcome severity levels per FHIR R4.
const (
	IssueSeverityFatal = "fatal"
	IssueSeverityError = "error"
)

// OperationOutcome issue type codes per FHIR R4.
const (
	IssueTypeInvalid      = "invalid"
	IssueTypeStructure    = "structure"
	IssueTypeRequired     = "required"
	IssueTypeNotFound     = "not-found"
	IssueTypeProcessing   = "processing"
	IssueTypeThrottled    = "throttled"
	IssueTypeNotSupported = "not-supported"
	IssueTypeException    = "exception"
	IssueTypeTimeout      = "timeout"
)

// OperationOutcome represents a FHIR OperationOutcome for errors.
type OperationOutcome struct {
	ResourceType string                  `json:"resourceType"`
	Issue        []OperationOutcomeIssue `json:"issue"`
}

type OperationOutcomeIssue struct {
	Severity    string   `json:"severity"`
	Code        string   `json:"code"`
	Diagnostics string   `json:"diagnostics,omitempty"`
	Expression  []string `json:"expression,omitempty"`
}

func NewOperationOutcome(severity, code, diagnostics string) *OperationOutcome {
	return &OperationOutcome{
		ResourceType: "OperationOutcome",
		Issue: []OperationOutcomeIssue{
			{
				Severity:    severity,
				Code:        code,
				Diagnostics: diagnostics,
			},
		},
	}
}

func ErrorOutcome(diagnostics string) *OperationOutcome {
	return NewOperationOutcome(IssueSeverityError, IssueTypeProcessing, diagnostics)
}

// ValidationErrorOutcome converts a validation failure into an OperationOutcome.
// A missing field is reported as required; a resourceType mismatch is invalid
// and points its expression at resourceType.
func ValidationErrorOutcome(err error) *OperationOutcome {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return NewOperationOutcome(IssueSeverityError, IssueTypeInvalid, err.Error())
	}
	if ve.Expected == "" {
		return NewOperationOutcome(IssueSeverityError, IssueTypeRequired, err.Error())
	}
	oo := NewOperationOutcome(IssueSeverityError, IssueTypeInvalid, err.Error())
	oo.Issue[0].Expression = []string{"resourceType"}
	return oo
}

// InvalidBodyOutcome is returned when a create request has no usable body.
func InvalidBodyOutcome(resourceType string) *OperationOutcome {
	return NewOperationOutcome(IssueSeverityError, IssueTypeStructure, fmt.Sprintf("Invalid %s data", resourceType))
}

// NotSupportedOutcome creates an OperationOutcome for unsupported resource
// types or operations.
func NotSupportedOutcome(diagnostics string) *OperationOutcome {
	return NewOperationOutcome(IssueSeverityError, IssueTypeNotSupported, diagnostics)
}

// MethodNotAllowedOutcome creates a 405-style OperationOutcome.
func MethodNotAllowedOutcome(method string) *OperationOutcome {
	return NewOperationOutcome(
		IssueSeverityError,
		IssueTypeNotSupported,
		fmt.Sprintf("Method Not Allowed: %s", method),
	)
}

// InternalErrorOutcome creates an OperationOutcome for internal server errors.
func InternalErrorOutcome(diagnostics string) *OperationOutcome {
	return NewOperationOutcome(IssueSeverityFatal, IssueTypeException, diagnostics)
}

// ThrottleOutcome creates a 429-style OperationOutcome.
func ThrottleOutcome() *OperationOutcome {
	return NewOperationOutcome(
		IssueSeverityError,
		IssueTypeThrottled,
		"Rate limit exceeded. Please retry after a delay.",
	)
}

// TimeoutOutcome creates a 504-style OperationOutcome.
func TimeoutOutcome() *OperationOutcome {
	return NewOperationOutcome(
		IssueSeverityError,
		IssueTypeTimeout,
		"Request processing exceeded the allowed time limit",
	)
}
