package router

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"shelf/config"
	apimiddleware "shelf/internal/delivery/api/middleware"
	"shelf/internal/delivery/api/router/handler"
	apivalidator "shelf/internal/delivery/api/validator"
	"shelf/internal/domain/entity"
	mockSvc "shelf/internal/mocks/service"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type stubAuthUsecase struct{}

func (stubAuthUsecase) Register(_ context.Context, _ *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return &usecase.RegisterOutput{User: &entity.User{}}, nil
}

func (stubAuthUsecase) Login(_ context.Context, _ *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return &usecase.LoginOutput{User: &entity.User{}}, nil
}

type stubUserUsecase struct{}

func (stubUserUsecase) ListUsers(_ context.Context) ([]*entity.User, error) { return nil, nil }

func (stubUserUsecase) GetUser(_ context.Context, _ uuid.UUID) (*entity.User, error) {
	return &entity.User{}, nil
}

func (stubUserUsecase) DeleteUser(_ context.Context, _ uuid.UUID) error { return nil }

type stubAuthorUsecase struct{}

func (stubAuthorUsecase) ListAuthors(_ context.Context) ([]*entity.Author, error) { return nil, nil }

func (stubAuthorUsecase) GetAuthor(_ context.Context, _ uuid.UUID) (*entity.Author, error) {
	return &entity.Author{}, nil
}

func (stubAuthorUsecase) CreateAuthor(_ context.Context, _ *usecase.CreateAuthorInput) (*entity.Author, error) {
	return &entity.Author{}, nil
}

func (stubAuthorUsecase) UpdateAuthor(_ context.Context, _ uuid.UUID, _ *usecase.UpdateAuthorInput) (*entity.Author, error) {
	return &entity.Author{}, nil
}

func (stubAuthorUsecase) DeleteAuthor(_ context.Context, _ uuid.UUID) error { return nil }

type stubBookUsecase struct{}

func (stubBookUsecase) ListBooks(_ context.Context) ([]*entity.Book, error) { return nil, nil }

func (stubBookUsecase) GetBook(_ context.Context, _ uuid.UUID) (*entity.Book, error) {
	return &entity.Book{}, nil
}

func (stubBookUsecase) CreateBook(_ context.Context, _ *usecase.CreateBookInput) (*entity.Book, error) {
	return &entity.Book{}, nil
}

func (stubBookUsecase) UpdateBook(_ context.Context, _ uuid.UUID, _ *usecase.UpdateBookInput) (*entity.Book, error) {
	return &entity.Book{}, nil
}

func (stubBookUsecase) DeleteBook(_ context.Context, _ uuid.UUID) error { return nil }

func (stubBookUsecase) LikeBook(_ context.Context, userID, bookID uuid.UUID) (*entity.Like, error) {
	return &entity.Like{UserID: userID, BookID: bookID}, nil
}

func (stubBookUsecase) ListBookLikes(_ context.Context, _ uuid.UUID) ([]*entity.Like, error) {
	return nil, nil
}

func newTestRouter(t *testing.T) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = apivalidator.New()

	r := NewRouter(RouterParams{
		AuthHandler:    handler.NewAuthHandler(stubAuthUsecase{}, logger),
		UserHandler:    handler.NewUserHandler(stubUserUsecase{}, logger),
		AuthorHandler:  handler.NewAuthorHandler(stubAuthorUsecase{}, logger),
		BookHandler:    handler.NewBookHandler(stubBookUsecase{}, logger),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(mockSvc.NewMockTokenService(t), logger),
		Config:         &config.Config{},
	})
	r.RegisterRoutes(e)

	return e
}

func TestRegisterRoutes_ReadsArePublic(t *testing.T) {
	e := newTestRouter(t)
	id := uuid.NewString()

	targets := []string{
		"/health",
		"/users",
		"/users/" + id,
		"/authors",
		"/authors/" + id,
		"/books",
		"/books/" + id,
		"/books/" + id + "/likes",
	}
	for _, target := range targets {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, target)
	}
}

func TestRegisterRoutes_MutationsRequireSession(t *testing.T) {
	e := newTestRouter(t)
	id := uuid.NewString()

	routes := []struct {
		method string
		target string
	}{
		{method: http.MethodDelete, target: "/auth/logout"},
		{method: http.MethodDelete, target: "/users/" + id},
		{method: http.MethodPost, target: "/authors"},
		{method: http.MethodPut, target: "/authors/" + id},
		{method: http.MethodDelete, target: "/authors/" + id},
		{method: http.MethodPost, target: "/books"},
		{method: http.MethodPut, target: "/books/" + id},
		{method: http.MethodDelete, target: "/books/" + id},
		{method: http.MethodPost, target: "/books/like"},
	}
	for _, route := range routes {
		req := httptest.NewRequest(route.method, route.target, nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, route.method+" "+route.target)
	}
}
