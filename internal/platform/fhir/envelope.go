package fhir

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
)

// FHIRContentType is the media type set on every envelope.
const FHIRContentType = "application/fhir+json"

// Envelope is a serialized HTTP response: status, headers and a JSON body.
type Envelope struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

// envelopeHeaders returns the header set shared by every response. A fresh
// map is returned so callers can add to it without touching other envelopes.
func envelopeHeaders() map[string]string {
	return map[string]string{
		echo.HeaderContentType:                   FHIRContentType,
		echo.HeaderAccessControlAllowOrigin:      "*",
		echo.HeaderAccessControlAllowCredentials: "true",
	}
}

// BuildResponse serializes payload into an Envelope with the given status.
// A payload that cannot be encoded as JSON produces a 500 envelope carrying an
// OperationOutcome instead.
func BuildResponse(statusCode int, payload interface{}) *Envelope {
	body, err := json.Marshal(payload)
	if err != nil {
		statusCode = http.StatusInternalServerError
		body, _ = json.Marshal(InternalErrorOutcome("response could not be encoded: " + err.Error()))
	}
	return &Envelope{
		StatusCode: statusCode,
		Headers:    envelopeHeaders(),
		Body:       string(body),
	}
}

// Write sends the envelope through an echo response.
func (e *Envelope) Write(c echo.Context) error {
	h := c.Response().Header()
	for k, v := range e.Headers {
		h.Set(k, v)
	}
	return c.Blob(e.StatusCode, e.Headers[echo.HeaderContentType], []byte(e.Body))
}

// Respond builds an envelope for payload and writes it to c.
func Respond(c echo.Context, statusCode int, payload interface{}) error {
	return BuildResponse(statusCode, payload).Write(c)
}
