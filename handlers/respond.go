package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"DestinyRealEstate/apperr"
)

// statusOf maps the error taxonomy onto HTTP statuses: validation 400,
// not-found 404, invalid transition 409, failed precondition 412,
// anything untyped 500.
func statusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindInvalidTransition:
		return http.StatusConflict
	case apperr.KindPreconditionFailed:
		return http.StatusPreconditionFailed
	}
	return http.StatusInternalServerError
}

func respondError(c echo.Context, err error) error {
	return c.JSON(statusOf(err), map[string]string{"error": err.Error()})
}

// HTTPErrorHandler is echo's centralized error handler. Recovered
// panics, errors echo raises itself (405, oversized bodies) and typed
// errors returned without going through respondError all land here;
// the payload keeps the same "error" key the handlers use. Untyped
// errors answer with a generic message so panic text never reaches
// clients.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	msg := "Internal server error"

	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		status = he.Code
		if s, ok := he.Message.(string); ok {
			msg = s
		}
	case apperr.KindOf(err) != 0:
		status = statusOf(err)
		msg = err.Error()
	}

	if err := c.JSON(status, map[string]string{"error": msg}); err != nil {
		c.Logger().Error(err)
	}
}

// NotFoundHandler answers unmatched routes with the requested path.
func NotFoundHandler(c echo.Context) error {
	return c.JSON(http.StatusNotFound, map[string]string{
		"error": "Route not found",
		"path":  c.Request().URL.Path,
	})
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
