package handler

import (
	"net/http"

	"foodorder/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// Root answers the bare liveness probe.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "API is running")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
