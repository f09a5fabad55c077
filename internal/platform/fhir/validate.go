package fhir

import "fmt"

// ValidationError reports why a resource failed ValidateResource. Expected and
// Actual are only set for a resourceType mismatch.
type ValidationError struct {
	Message  string
	Expected string
	Actual   string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateResource checks that r declares a resourceType, that the
// resourceType equals expectedType, and that r carries an id. The checks run
// in that order and the first failure is returned.
func ValidateResource(r Resource, expectedType string) error {
	rt := r.Type()
	if rt == "" {
		return &ValidationError{Message: "resource must have a resourceType"}
	}
	if rt != expectedType {
		return &ValidationError{
			Message:  fmt.Sprintf("expected resourceType to be %s, but got %s", expectedType, rt),
			Expected: expectedType,
			Actual:   rt,
		}
	}
	if r.ID() == "" {
		return &ValidationError{Message: "resource must have an id"}
	}
	return nil
}
