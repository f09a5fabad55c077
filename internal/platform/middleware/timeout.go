package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/ehr/fhirmock/internal/platform/fhir"
)

// RequestTimeout sets a context deadline on each request. The handler runs on
// the request goroutine; when it returns a deadline error before writing
// anything, the client gets 504 with a timeout OperationOutcome. A
// non-positive timeout disables the middleware.
func RequestTimeout(timeout time.Duration) echo.MiddlewareFunc {
	if timeout <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return echomw.ContextTimeoutWithConfig(echomw.ContextTimeoutConfig{
		Timeout:      timeout,
		ErrorHandler: timeoutErrorHandler,
	})
}

func timeoutErrorHandler(err error, c echo.Context) error {
	if !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if c.Response().Committed {
		return nil
	}
	return fhir.Respond(c, http.StatusGatewayTimeout, fhir.TimeoutOutcome())
}
