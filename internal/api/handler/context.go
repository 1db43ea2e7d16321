package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fortune-labs/task-tracker/internal/api/middleware"
)

// ctxUserID extracts the user id bound by the Auth middleware. A missing
// id means the middleware did not run for this route; fail closed.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.UserIDKey).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	return userID, nil
}
