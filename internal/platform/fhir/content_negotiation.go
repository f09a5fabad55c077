package fhir

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ContentNegotiationMiddleware rejects requests that ask for anything other
// than JSON. The _format query parameter wins over the Accept header; a
// request with neither is served JSON.
func ContentNegotiationMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if format := c.QueryParam("_format"); format != "" {
				switch {
				case isJSONFormat(format):
					return next(c)
				case isXMLFormat(format):
					return Respond(c, http.StatusNotAcceptable, NotSupportedOutcome("XML format is not supported. Use application/fhir+json."))
				default:
					return Respond(c, http.StatusNotAcceptable, NotSupportedOutcome("Unsupported _format value: "+format))
				}
			}

			accept := c.Request().Header.Get(echo.HeaderAccept)
			if accept != "" && !negotiateAccept(accept) {
				return Respond(c, http.StatusNotAcceptable, NotSupportedOutcome("Accept header does not include a supported FHIR content type. Use application/fhir+json."))
			}
			return next(c)
		}
	}
}

// normalizeFormat lowercases and trims a format value and restores the "+"
// that query-string decoding turns into a space.
func normalizeFormat(raw string) string {
	f := strings.TrimSpace(strings.ToLower(raw))
	f = strings.ReplaceAll(f, "fhir json", "fhir+json")
	f = strings.ReplaceAll(f, "fhir xml", "fhir+xml")
	return f
}

func isJSONFormat(format string) bool {
	switch normalizeFormat(format) {
	case "json", "application/json", "application/fhir+json":
		return true
	}
	return false
}

func isXMLFormat(format string) bool {
	switch normalizeFormat(format) {
	case "xml", "application/xml", "application/fhir+xml":
		return true
	}
	return false
}

// negotiateAccept reports whether any media type in the Accept header is
// JSON-compatible. Quality parameters are ignored.
func negotiateAccept(accept string) bool {
	for _, part := range strings.Split(accept, ",") {
		mediaType := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		switch strings.ToLower(mediaType) {
		case "application/fhir+json", "application/json", "json", "*/*", "application/*":
			return true
		}
	}
	return false
}
