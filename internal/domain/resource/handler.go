package resource

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ehr/fhirmock/internal/platform/fhir"
)

// allowedMethods is sent in the Allow header of 405 responses.
var allowedMethods = strings.Join([]string{http.MethodGet, http.MethodPost}, ", ")

// Handler serves every registered kind through the same read, search and
// create endpoints. Nothing is stored: reads and searches generate fresh
// resources and creates echo the submitted body back with a new id.
type Handler struct {
	registry *Registry
	newID    func() string
}

func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry, newID: uuid.NewString}
}

func (h *Handler) RegisterRoutes(fhirGroup *echo.Group) {
	fhirGroup.GET("/:type", h.Search)
	fhirGroup.POST("/:type/_search", h.Search)
	fhirGroup.GET("/:type/:id", h.Read)
	fhirGroup.POST("/:type", h.Create)

	fhirGroup.Match([]string{http.MethodPut, http.MethodPatch, http.MethodDelete}, "/:type", h.MethodNotAllowed)
	fhirGroup.Match([]string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}, "/:type/:id", h.MethodNotAllowed)
}

// kind resolves the :type path parameter, writing a 404 when it is unknown.
func (h *Handler) kind(c echo.Context) (Kind, bool, error) {
	rt := c.Param("type")
	k, ok := h.registry.Lookup(rt)
	if !ok {
		return Kind{}, false, fhir.Respond(c, http.StatusNotFound,
			fhir.NotSupportedOutcome(fmt.Sprintf("Resource type %s is not supported", rt)))
	}
	return k, true, nil
}

// Read generates a single resource carrying the requested id.
func (h *Handler) Read(c echo.Context) error {
	k, ok, err := h.kind(c)
	if !ok {
		return err
	}
	r := k.Generate()
	r["id"] = c.Param("id")
	return fhir.Respond(c, http.StatusOK, r)
}

// Search returns a searchset Bundle of ListCount generated resources.
func (h *Handler) Search(c echo.Context) error {
	k, ok, err := h.kind(c)
	if !ok {
		return err
	}
	resources := make([]fhir.Resource, k.ListCount)
	for i := range resources {
		resources[i] = k.Generate()
	}
	return fhir.Respond(c, http.StatusOK, fhir.NewSearchBundle(resources))
}

// Create assigns a fresh id to the submitted resource, forces its
// resourceType to the path type, validates it and returns it with 201.
func (h *Handler) Create(c echo.Context) error {
	k, ok, err := h.kind(c)
	if !ok {
		return err
	}

	body, err := readResource(c.Request().Body)
	if err != nil {
		return fhir.Respond(c, http.StatusBadRequest, fhir.InvalidBodyOutcome(k.Type))
	}

	r := body.Clone()
	r["id"] = h.newID()
	r["resourceType"] = k.Type

	if err := fhir.ValidateResource(r, k.Type); err != nil {
		return fhir.Respond(c, http.StatusBadRequest, fhir.ValidationErrorOutcome(err))
	}

	env := fhir.BuildResponse(http.StatusCreated, r)
	env.Headers[echo.HeaderLocation] = "/fhir/" + fhir.FormatReference(k.Type, r.ID())
	return env.Write(c)
}

// MethodNotAllowed answers verbs the mock does not implement.
func (h *Handler) MethodNotAllowed(c echo.Context) error {
	if _, ok, err := h.kind(c); !ok {
		return err
	}
	env := fhir.BuildResponse(http.StatusMethodNotAllowed, fhir.MethodNotAllowedOutcome(c.Request().Method))
	env.Headers[echo.HeaderAllow] = allowedMethods
	return env.Write(c)
}

// readResource decodes a JSON object body. Empty bodies, null and non-object
// JSON are rejected.
func readResource(body io.Reader) (fhir.Resource, error) {
	if body == nil {
		return nil, fmt.Errorf("empty body")
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty body")
	}
	var r fhir.Resource
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	if r == nil {
		return nil, fmt.Errorf("body is null")
	}
	return r, nil
}
