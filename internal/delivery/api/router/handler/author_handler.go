package handler

import (
	"log/slog"
	"net/http"

	"shelf/internal/delivery/api/response"
	"shelf/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthorHandler holds dependencies for author-related handlers.
type AuthorHandler struct {
	uc     usecase.AuthorUsecase
	logger *slog.Logger
}

// NewAuthorHandler is the constructor for AuthorHandler, injected by Fx.
func NewAuthorHandler(uc usecase.AuthorUsecase, logger *slog.Logger) *AuthorHandler {
	return &AuthorHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateAuthorRequest is the payload for creating an author.
type CreateAuthorRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Country string `json:"country" validate:"max=100"`
	Bio     string `json:"bio"`
}

// UpdateAuthorRequest is the payload for updating an author.
// Omitted fields are left unchanged.
type UpdateAuthorRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Country *string `json:"country" validate:"omitempty,max=100"`
	Bio     *string `json:"bio"`
}

// ListAuthors handles the request to list all authors.
func (h *AuthorHandler) ListAuthors(c echo.Context) error {
	authors, err := h.uc.ListAuthors(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, authors)
}

// GetAuthor handles the request to fetch a single author.
func (h *AuthorHandler) GetAuthor(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	author, err := h.uc.GetAuthor(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, author)
}

// CreateAuthor handles the request to register a new author.
func (h *AuthorHandler) CreateAuthor(c echo.Context) error {
	var req CreateAuthorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid author input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	author, err := h.uc.CreateAuthor(c.Request().Context(), &usecase.CreateAuthorInput{
		Name:    req.Name,
		Country: req.Country,
		Bio:     req.Bio,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, author)
}

// UpdateAuthor handles the request to update an existing author.
func (h *AuthorHandler) UpdateAuthor(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req UpdateAuthorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid author input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	author, err := h.uc.UpdateAuthor(c.Request().Context(), id, &usecase.UpdateAuthorInput{
		Name:    req.Name,
		Country: req.Country,
		Bio:     req.Bio,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, author)
}

// DeleteAuthor handles the request to delete an author.
func (h *AuthorHandler) DeleteAuthor(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteAuthor(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"deleted": id.String()})
}
