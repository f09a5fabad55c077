package fhir

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// SearchParam describes a search parameter advertised for a resource type.
type SearchParam struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	Documentation string `json:"documentation,omitempty"`
}

type resourceEntry struct {
	resourceType string
	interactions []string
	searchParams []SearchParam
}

// CapabilityBuilder accumulates resource registrations and builds the
// CapabilityStatement served at /fhir/metadata.
type CapabilityBuilder struct {
	mu        sync.RWMutex
	resources map[string]*resourceEntry

	ServerName    string
	ServerVersion string
	BaseURL       string
}

// NewCapabilityBuilder creates a new builder. The baseURL is the FHIR base
// (e.g., "http://localhost:8000/fhir").
func NewCapabilityBuilder(baseURL, version string) *CapabilityBuilder {
	return &CapabilityBuilder{
		resources:     make(map[string]*resourceEntry),
		ServerName:    "FHIR Mock Server",
		ServerVersion: version,
		BaseURL:       baseURL,
	}
}

// AddResource registers a resource type. Registering the same type twice
// merges interactions and search parameters without duplicates.
func (b *CapabilityBuilder) AddResource(resourceType string, interactions []string, searchParams []SearchParam) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.resources[resourceType]
	if !ok {
		entry = &resourceEntry{resourceType: resourceType}
		b.resources[resourceType] = entry
	}

	seen := make(map[string]bool, len(entry.interactions))
	for _, i := range entry.interactions {
		seen[i] = true
	}
	for _, i := range interactions {
		if !seen[i] {
			entry.interactions = append(entry.interactions, i)
			seen[i] = true
		}
	}

	seenParams := make(map[string]bool, len(entry.searchParams))
	for _, p := range entry.searchParams {
		seenParams[p.Name] = true
	}
	for _, p := range searchParams {
		if !seenParams[p.Name] {
			entry.searchParams = append(entry.searchParams, p)
			seenParams[p.Name] = true
		}
	}
}

// MockInteractions are the interactions every generated resource supports.
func MockInteractions() []string {
	return []string{"read", "search-type", "create"}
}

// ResourceCount returns the number of registered resource types.
func (b *CapabilityBuilder) ResourceCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.resources)
}

// Build returns the CapabilityStatement as a generic map.
func (b *CapabilityBuilder) Build() map[string]interface{} {
	b.mu.RLock()
	defer b.mu.RUnlock()

	types := make([]string, 0, len(b.resources))
	for rt := range b.resources {
		types = append(types, rt)
	}
	sort.Strings(types)

	resources := make([]map[string]interface{}, 0, len(types))
	for _, rt := range types {
		entry := b.resources[rt]
		ia := make([]map[string]string, len(entry.interactions))
		for i, code := range entry.interactions {
			ia[i] = map[string]string{"code": code}
		}
		res := map[string]interface{}{
			"type":        rt,
			"interaction": ia,
			"versioning":  "no-version",
		}
		if len(entry.searchParams) > 0 {
			res["searchParam"] = entry.searchParams
		}
		resources = append(resources, res)
	}

	return map[string]interface{}{
		"resourceType": "CapabilityStatement",
		"status":       "active",
		"date":         time.Now().UTC().Format("2006-01-02"),
		"kind":         "instance",
		"fhirVersion":  "4.0.1",
		"format":       []string{"json"},
		"software": map[string]string{
			"name":    b.ServerName,
			"version": b.ServerVersion,
		},
		"implementation": map[string]string{
			"description": "Mock FHIR R4 server returning synthetic clinical data",
			"url":         b.BaseURL,
		},
		"rest": []map[string]interface{}{
			{
				"mode":     "server",
				"resource": resources,
				"security": map[string]interface{}{"cors": true},
			},
		},
	}
}

// CapabilityHandler serves the CapabilityStatement.
type CapabilityHandler struct {
	builder *CapabilityBuilder
}

func NewCapabilityHandler(builder *CapabilityBuilder) *CapabilityHandler {
	return &CapabilityHandler{builder: builder}
}

func (h *CapabilityHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/metadata", h.GetMetadata)
}

func (h *CapabilityHandler) GetMetadata(c echo.Context) error {
	return Respond(c, http.StatusOK, h.builder.Build())
}
