package fhir

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// PreflightMaxAge is how long browsers may cache a preflight answer, in seconds.
const PreflightMaxAge = 3600

var fhirAllowMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodHead,
	http.MethodOptions,
}

var fhirAllowHeaders = []string{
	"Content-Type",
	"Authorization",
	"Accept",
	"Cache-Control",
	"Prefer",
	"If-Match",
	"If-None-Match",
	"If-None-Exist",
	"X-Request-ID",
}

var fhirExposeHeaders = []string{
	"Location",
	"X-Request-ID",
	"X-RateLimit-Limit",
	"Retry-After",
}

// CORSPreflightMiddleware answers OPTIONS preflight requests with 204 and
// exposes the response headers FHIR clients read. The permissive origin and
// credentials headers themselves travel on every Envelope.
func CORSPreflightMiddleware() echo.MiddlewareFunc {
	allowMethods := strings.Join(fhirAllowMethods, ", ")
	allowHeaders := strings.Join(fhirAllowHeaders, ", ")
	exposeHeaders := strings.Join(fhirExposeHeaders, ", ")
	maxAge := strconv.Itoa(PreflightMaxAge)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get(echo.HeaderOrigin) == "" {
				return next(c)
			}

			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlExposeHeaders, exposeHeaders)

			if c.Request().Method != http.MethodOptions {
				return next(c)
			}

			for k, v := range envelopeHeaders() {
				if k != echo.HeaderContentType {
					h.Set(k, v)
				}
			}
			h.Set(echo.HeaderAccessControlAllowMethods, allowMethods)
			h.Set(echo.HeaderAccessControlAllowHeaders, allowHeaders)
			h.Set(echo.HeaderAccessControlMaxAge, maxAge)
			return c.NoContent(http.StatusNoContent)
		}
	}
}
