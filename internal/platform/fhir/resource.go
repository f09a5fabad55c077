package fhir

import "fmt"

// Resource is a FHIR resource held as a field map. Only resourceType and id
// carry meaning to this package; every other field is passed through as-is.
type Resource map[string]interface{}

// Type returns the resourceType discriminator, or "" when it is absent or not
// a string.
func (r Resource) Type() string {
	s, _ := r["resourceType"].(string)
	return s
}

// ID returns the logical id, or "" when it is absent or not a string.
func (r Resource) ID() string {
	s, _ := r["id"].(string)
	return s
}

// Clone returns a shallow copy of the resource.
func (r Resource) Clone() Resource {
	out := make(Resource, len(r)+2)
	for k, v := range r {
		out[k] = v
	}
	return out
}

type Meta struct {
	VersionID   string   `json:"versionId,omitempty"`
	LastUpdated string   `json:"lastUpdated,omitempty"`
	Profile     []string `json:"profile,omitempty"`
}

type Coding struct {
	System  string `json:"system,omitempty"`
	Code    string `json:"code,omitempty"`
	Display string `json:"display,omitempty"`
}

type CodeableConcept struct {
	Coding []Coding `json:"coding,omitempty"`
	Text   string   `json:"text,omitempty"`
}

type Reference struct {
	Reference string `json:"reference,omitempty"`
	Display   string `json:"display,omitempty"`
}

type HumanName struct {
	Use    string   `json:"use,omitempty"`
	Family string   `json:"family,omitempty"`
	Given  []string `json:"given,omitempty"`
}

type Address struct {
	Use        string   `json:"use,omitempty"`
	Type       string   `json:"type,omitempty"`
	Line       []string `json:"line,omitempty"`
	City       string   `json:"city,omitempty"`
	State      string   `json:"state,omitempty"`
	PostalCode string   `json:"postalCode,omitempty"`
	Country    string   `json:"country,omitempty"`
}

type ContactPoint struct {
	System string `json:"system,omitempty"`
	Value  string `json:"value,omitempty"`
	Use    string `json:"use,omitempty"`
}

// Period uses date strings rather than time.Time so generated partial dates
// ("2021-04-09") serialize unchanged.
type Period struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type Quantity struct {
	Value  float64 `json:"value"`
	Unit   string  `json:"unit,omitempty"`
	System string  `json:"system,omitempty"`
	Code   string  `json:"code,omitempty"`
}

// NewReference creates a FHIR Reference of the form "Type/id". The display is
// only set when non-empty.
func NewReference(resourceType, id, display string) Reference {
	return Reference{
		Reference: FormatReference(resourceType, id),
		Display:   display,
	}
}

// NewCodeableConcept creates a single-coding CodeableConcept whose text
// mirrors the display.
func NewCodeableConcept(code, system, display string) CodeableConcept {
	return CodeableConcept{
		Coding: []Coding{{System: system, Code: code, Display: display}},
		Text:   display,
	}
}

// FormatReference creates a FHIR reference string.
func FormatReference(resourceType, id string) string {
	return fmt.Sprintf("%s/%s", resourceType, id)
}
