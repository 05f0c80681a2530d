package handler

import (
	domainerrors "shelf/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// parseIDParam parses the ":id" path parameter as a UUID.
// Malformed IDs are a client error, never a lookup miss.
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id must be a valid UUID")
	}

	return id, nil
}
