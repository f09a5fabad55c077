package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ehr/fhirmock/internal/platform/fhir"
)

// ErrorHandler replaces echo's default error handler so that router errors,
// recovered panics and handler errors all leave the server as
// OperationOutcome envelopes.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, outcome := outcomeFor(err, c)
		if status >= http.StatusInternalServerError {
			logger.Error().Err(err).
				Str("request_id", requestID(c)).
				Str("path", c.Request().URL.Path).
				Msg("request failed")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = fhir.Respond(c, status, outcome)
		}
		if err != nil {
			logger.Error().Err(err).Msg("write error response")
		}
	}
}

func outcomeFor(err error, c echo.Context) (int, *fhir.OperationOutcome) {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return http.StatusInternalServerError, fhir.InternalErrorOutcome("internal server error")
	}

	switch he.Code {
	case http.StatusNotFound:
		return he.Code, fhir.NewOperationOutcome(fhir.IssueSeverityError, fhir.IssueTypeNotFound,
			fmt.Sprintf("No route for %s %s", c.Request().Method, c.Request().URL.Path))
	case http.StatusMethodNotAllowed:
		return he.Code, fhir.MethodNotAllowedOutcome(c.Request().Method)
	case http.StatusTooManyRequests:
		return he.Code, fhir.ThrottleOutcome()
	case http.StatusGatewayTimeout, http.StatusServiceUnavailable:
		return he.Code, fhir.TimeoutOutcome()
	}

	if he.Code >= http.StatusInternalServerError {
		return he.Code, fhir.InternalErrorOutcome("internal server error")
	}
	return he.Code, fhir.ErrorOutcome(fmt.Sprintf("%v", he.Message))
}
