package fhir

import (
	"time"

	"github.com/google/uuid"
)

// Bundle type codes used by this server.
const (
	BundleTypeSearchset  = "searchset"
	BundleTypeCollection = "collection"
)

// lastUpdatedLayout matches the millisecond ISO-8601 form FHIR clients expect.
const lastUpdatedLayout = "2006-01-02T15:04:05.000Z07:00"

// Bundle represents a FHIR Bundle resource.
type Bundle struct {
	ResourceType string        `json:"resourceType"`
	ID           string        `json:"id"`
	Meta         Meta          `json:"meta"`
	Type         string        `json:"type"`
	Total        int           `json:"total"`
	Entry        []BundleEntry `json:"entry"`
}

type BundleEntry struct {
	FullURL  string   `json:"fullUrl"`
	Resource Resource `json:"resource"`
}

// Assembler builds Bundles. NewID and Now default to uuid.NewString and
// time.Now when nil.
type Assembler struct {
	NewID func() string
	Now   func() time.Time
}

var defaultAssembler Assembler

// NewBundle wraps resources into a Bundle of the given type using a random
// uuid and the current time.
func NewBundle(bundleType string, resources []Resource) *Bundle {
	return defaultAssembler.Assemble(bundleType, resources)
}

// NewSearchBundle is NewBundle with type searchset.
func NewSearchBundle(resources []Resource) *Bundle {
	return NewBundle(BundleTypeSearchset, resources)
}

// Assemble creates a Bundle whose total equals len(resources) and whose
// entries keep the input order. Each entry's fullUrl is urn:uuid:<id>.
func (a Assembler) Assemble(bundleType string, resources []Resource) *Bundle {
	newID := a.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	now := a.Now
	if now == nil {
		now = time.Now
	}

	entries := make([]BundleEntry, len(resources))
	for i, r := range resources {
		entries[i] = BundleEntry{
			FullURL:  "urn:uuid:" + r.ID(),
			Resource: r,
		}
	}

	return &Bundle{
		ResourceType: "Bundle",
		ID:           newID(),
		Meta: Meta{
			LastUpdated: now().UTC().Format(lastUpdatedLayout),
		},
		Type:  bundleType,
		Total: len(resources),
		Entry: entries,
	}
}
