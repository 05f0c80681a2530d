// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"shelf/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
