package resource

import (
	"fmt"

	"github.com/ehr/fhirmock/internal/domain/synthetic"
	"github.com/ehr/fhirmock/internal/platform/fhir"
)

// DefaultListCount is how many resources a search returns when a kind does
// not say otherwise.
const DefaultListCount = 10

// Kind describes one resource type served by the generic handler.
type Kind struct {
	Type         string
	Generate     func() fhir.Resource
	ListCount    int
	SearchParams []fhir.SearchParam
}

// Registry holds kinds in registration order.
type Registry struct {
	kinds []Kind
	index map[string]int
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds a kind. A non-positive ListCount falls back to
// DefaultListCount.
func (r *Registry) Register(k Kind) error {
	if k.Type == "" {
		return fmt.Errorf("resource kind requires a type")
	}
	if k.Generate == nil {
		return fmt.Errorf("resource kind %s requires a generator", k.Type)
	}
	if _, ok := r.index[k.Type]; ok {
		return fmt.Errorf("resource kind %s already registered", k.Type)
	}
	if k.ListCount <= 0 {
		k.ListCount = DefaultListCount
	}
	r.index[k.Type] = len(r.kinds)
	r.kinds = append(r.kinds, k)
	return nil
}

// MustRegister is like Register but panics on error. It is meant for
// registering a fixed set of kinds at startup.
func (r *Registry) MustRegister(k Kind) {
	if err := r.Register(k); err != nil {
		panic(err)
	}
}

// Lookup returns the kind registered for resourceType.
func (r *Registry) Lookup(resourceType string) (Kind, bool) {
	i, ok := r.index[resourceType]
	if !ok {
		return Kind{}, false
	}
	return r.kinds[i], true
}

// Kinds returns a copy of the registered kinds in registration order.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, len(r.kinds))
	copy(out, r.kinds)
	return out
}

// RegisterCapabilities advertises every kind on the capability builder.
func (r *Registry) RegisterCapabilities(b *fhir.CapabilityBuilder) {
	for _, k := range r.kinds {
		b.AddResource(k.Type, fhir.MockInteractions(), k.SearchParams)
	}
}

// Search parameters advertised in the CapabilityStatement. Searches accept
// them but always return freshly generated resources.
var (
	idParam = fhir.SearchParam{
		Name:          "_id",
		Type:          "token",
		Documentation: "Accepted; results are generated and not filtered",
	}
	patientParam = fhir.SearchParam{
		Name:          "patient",
		Type:          "reference",
		Documentation: "Accepted; results are generated and not filtered",
	}
)

// DefaultRegistry registers every resource kind the generator can produce.
// Every kind advertises _id; kinds that point at a Patient also advertise
// patient.
func DefaultRegistry(g *synthetic.Generator, listCount int) *Registry {
	patientScoped := []fhir.SearchParam{idParam, patientParam}
	r := NewRegistry()
	for _, k := range []Kind{
		{Type: "Patient", Generate: g.Patient, SearchParams: []fhir.SearchParam{idParam}},
		{Type: "Condition", Generate: g.Condition, SearchParams: patientScoped},
		{Type: "Observation", Generate: g.Observation, SearchParams: patientScoped},
		{Type: "DiagnosticReport", Generate: g.DiagnosticReport, SearchParams: patientScoped},
		{Type: "MedicationStatement", Generate: g.MedicationStatement, SearchParams: patientScoped},
		{Type: "AllergyIntolerance", Generate: g.AllergyIntolerance, SearchParams: patientScoped},
		{Type: "Immunization", Generate: g.Immunization, SearchParams: patientScoped},
		{Type: "Encounter", Generate: g.Encounter, SearchParams: patientScoped},
		{Type: "Coverage", Generate: g.Coverage, SearchParams: patientScoped},
		{Type: "Appointment", Generate: g.Appointment, SearchParams: patientScoped},
	} {
		k.ListCount = listCount
		r.MustRegister(k)
	}
	return r
}
