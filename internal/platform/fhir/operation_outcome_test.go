package fhir

import (
	"fmt"
	"testing"
)

func TestNewOperationOutcome(t *testing.T) {
	oo := NewOperationOutcome("error", "processing", "something went wrong")

	if oo.ResourceType != "OperationOutcome" {
		t.Errorf("expected resourceType OperationOutcome, got %s", oo.ResourceType)
	}
	if len(oo.Issue) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(oo.Issue))
	}
	if oo.Issue[0].Severity != "error" {
		t.Errorf("expected severity error, got %s", oo.Issue[0].Severity)
	}
	if oo.Issue[0].Code != "processing" {
		t.Errorf("expected code processing, got %s", oo.Issue[0].Code)
	}
}

func TestValidationErrorOutcome(t *testing.T) {
	err := ValidateResource(Resource{"resourceType": "Condition", "id": "c1"}, "Patient")
	oo := ValidationErrorOutcome(err)

	if oo.Issue[0].Code != IssueTypeInvalid {
		t.Errorf("expected invalid, got %s", oo.Issue[0].Code)
	}
	if oo.Issue[0].Diagnostics != "expected resourceType to be Patient, but got Condition" {
		t.Errorf("unexpected diagnostics: %s", oo.Issue[0].Diagnostics)
	}
	if len(oo.Issue[0].Expression) != 1 || oo.Issue[0].Expression[0] != "resourceType" {
		t.Errorf("expected resourceType expression, got %v", oo.Issue[0].Expression)
	}

	wrapped := fmt.Errorf("create: %w", ValidateResource(Resource{"resourceType": "Patient"}, "Patient"))
	oo = ValidationErrorOutcome(wrapped)
	if oo.Issue[0].Code != IssueTypeRequired {
		t.Errorf("expected required for a missing id, got %s", oo.Issue[0].Code)
	}
	if len(oo.Issue[0].Expression) != 0 {
		t.Errorf("missing id should not carry an expression, got %v", oo.Issue[0].Expression)
	}

	oo = ValidationErrorOutcome(ValidateResource(Resource{"id": "x"}, "Patient"))
	if oo.Issue[0].Code != IssueTypeRequired {
		t.Errorf("expected required for a missing resourceType, got %s", oo.Issue[0].Code)
	}
}

func TestInvalidBodyOutcome(t *testing.T) {
	oo := InvalidBodyOutcome("Patient")
	if oo.Issue[0].Diagnostics != "Invalid Patient data" {
		t.Errorf("unexpected diagnostics: %s", oo.Issue[0].Diagnostics)
	}
}

func TestNewReference(t *testing.T) {
	ref := NewReference("Patient", "abc-123", "")
	if ref.Reference != "Patient/abc-123" {
		t.Errorf("expected Patient/abc-123, got %s", ref.Reference)
	}
	if ref.Display != "" {
		t.Errorf("expected empty display, got %s", ref.Display)
	}
	if NewReference("Practitioner", "1", "Dr. Who").Display != "Dr. Who" {
		t.Error("expected display to be kept")
	}
}

func TestNewCodeableConcept(t *testing.T) {
	cc := NewCodeableConcept("I10", "http://hl7.org/fhir/sid/icd-10", "Essential (primary) hypertension")
	if len(cc.Coding) != 1 {
		t.Fatalf("expected 1 coding, got %d", len(cc.Coding))
	}
	if cc.Coding[0].Code != "I10" || cc.Coding[0].System != "http://hl7.org/fhir/sid/icd-10" {
		t.Errorf("unexpected coding: %+v", cc.Coding[0])
	}
	if cc.Text != cc.Coding[0].Display {
		t.Errorf("text should mirror display, got %q", cc.Text)
	}
}
