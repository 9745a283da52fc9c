// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"savor/internal/delivery/http/middleware"
	"savor/internal/delivery/http/response"
	"savor/internal/domain/entity"
	"savor/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// callerID extracts the authenticated user's ID set by the auth middleware.
func callerID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

// caller builds the request principal from the authenticated token claims.
func caller(c echo.Context) (usecase.Principal, bool) {
	userID, ok := callerID(c)
	if !ok {
		return usecase.Principal{}, false
	}

	role, _ := c.Get(middleware.ContextKeyRole).(string)

	return usecase.Principal{UserID: userID, Role: entity.Role(role)}, true
}

// pathUUID parses a UUID path parameter. The returned error is an echo
// HTTPError rendered by the centralized error handler.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name+" in path")
	}

	return id, nil
}
