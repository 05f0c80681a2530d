package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apimiddleware "shelf/internal/delivery/api/middleware"
	"shelf/internal/delivery/api/validator"
	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase is a canned-response implementation of usecase.AuthUsecase.
type stubAuthUsecase struct {
	registerOutput *usecase.RegisterOutput
	registerErr    error
	loginOutput    *usecase.LoginOutput
	loginErr       error
}

func (s *stubAuthUsecase) Register(_ context.Context, _ *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return s.registerOutput, s.registerErr
}

func (s *stubAuthUsecase) Login(_ context.Context, _ *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginOutput, s.loginErr
}

func newHandlerContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", Role: entity.RoleStandard}
	uc := &stubAuthUsecase{
		loginOutput: &usecase.LoginOutput{
			Token:    "signed.jwt.token",
			TokenTTL: 12 * time.Hour,
			User:     user,
		},
	}
	h := NewAuthHandler(uc, discardLogger())

	c, rec := newHandlerContext(http.MethodPost, "/auth/login",
		`{"email":"test@example.com","password":"Password123!"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, apimiddleware.SessionCookieName, cookie.Name)
	assert.Equal(t, "signed.jwt.token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, int((12 * time.Hour).Seconds()), cookie.MaxAge)

	assert.Contains(t, rec.Body.String(), "signed.jwt.token")
}

func TestAuthHandler_Login_InvalidPayloadRejected(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{}, discardLogger())

	c, _ := newHandlerContext(http.MethodPost, "/auth/login", `{"email":"not-an-email"}`)

	err := h.Login(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthHandler_Login_FailureDoesNotSetCookie(t *testing.T) {
	uc := &stubAuthUsecase{
		loginErr: errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"),
	}
	h := NewAuthHandler(uc, discardLogger())

	c, rec := newHandlerContext(http.MethodPost, "/auth/login",
		`{"email":"test@example.com","password":"wrong"}`)

	err := h.Login(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_Register_PasswordRepeatRequired(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{}, discardLogger())

	c, _ := newHandlerContext(http.MethodPost, "/auth/register",
		`{"email":"test@example.com","password":"Password123!","passwordRepeat":"Other123!"}`)

	err := h.Register(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthHandler_Register_Created(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", Role: entity.RoleStandard}
	uc := &stubAuthUsecase{registerOutput: &usecase.RegisterOutput{User: user}}
	h := NewAuthHandler(uc, discardLogger())

	c, rec := newHandlerContext(http.MethodPost, "/auth/register",
		`{"name":"Test","email":"test@example.com","password":"Password123!","passwordRepeat":"Password123!"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), user.ID.String())
}

func TestAuthHandler_Logout_ClearsSessionCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{}, discardLogger())

	c, rec := newHandlerContext(http.MethodDelete, "/auth/logout", "")

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, apimiddleware.SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
