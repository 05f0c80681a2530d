package handler

import (
	"log/slog"
	"net/http"

	apimiddleware "shelf/internal/delivery/api/middleware"
	"shelf/internal/delivery/api/response"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookHandler holds dependencies for book-related handlers.
type BookHandler struct {
	uc     usecase.BookUsecase
	logger *slog.Logger
}

// NewBookHandler is the constructor for BookHandler, injected by Fx.
func NewBookHandler(uc usecase.BookUsecase, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateBookRequest is the payload for creating a book.
type CreateBookRequest struct {
	Title    string    `json:"title" validate:"required,min=1,max=255"`
	Rating   int       `json:"rating" validate:"min=0,max=5"`
	Price    int       `json:"price" validate:"min=0"`
	AuthorID uuid.UUID `json:"author_id" validate:"required"`
}

// UpdateBookRequest is the payload for updating a book.
// Omitted fields are left unchanged.
type UpdateBookRequest struct {
	Title    *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Rating   *int       `json:"rating" validate:"omitempty,min=0,max=5"`
	Price    *int       `json:"price" validate:"omitempty,min=0"`
	AuthorID *uuid.UUID `json:"author_id"`
}

// LikeBookRequest is the payload for liking a book. The liking user is the
// authenticated caller, never part of the payload.
type LikeBookRequest struct {
	BookID uuid.UUID `json:"book_id" validate:"required"`
}

// ListBooks handles the request to list all books with their authors.
func (h *BookHandler) ListBooks(c echo.Context) error {
	books, err := h.uc.ListBooks(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, books)
}

// GetBook handles the request to fetch a single book.
func (h *BookHandler) GetBook(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	book, err := h.uc.GetBook(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, book)
}

// CreateBook handles the request to register a new book.
func (h *BookHandler) CreateBook(c echo.Context) error {
	var req CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	book, err := h.uc.CreateBook(c.Request().Context(), &usecase.CreateBookInput{
		Title:    req.Title,
		Rating:   req.Rating,
		Price:    req.Price,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, book)
}

// UpdateBook handles the request to update an existing book.
func (h *BookHandler) UpdateBook(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req UpdateBookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	book, err := h.uc.UpdateBook(c.Request().Context(), id, &usecase.UpdateBookInput{
		Title:    req.Title,
		Rating:   req.Rating,
		Price:    req.Price,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, book)
}

// DeleteBook handles the request to delete a book.
func (h *BookHandler) DeleteBook(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteBook(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"deleted": id.String()})
}

// LikeBook handles the request to record the caller's like on a book.
func (h *BookHandler) LikeBook(c echo.Context) error {
	userID, err := apimiddleware.GetUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req LikeBookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid like input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	like, err := h.uc.LikeBook(c.Request().Context(), userID, req.BookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, like)
}

// ListBookLikes handles the request to list the likes recorded for a book.
func (h *BookHandler) ListBookLikes(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	likes, err := h.uc.ListBookLikes(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, likes)
}
