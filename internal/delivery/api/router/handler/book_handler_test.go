package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"shelf/internal/domain/entity"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBookUsecase records the arguments of the like operations and returns
// canned responses for everything else.
type stubBookUsecase struct {
	likeUserID uuid.UUID
	likeBookID uuid.UUID
	likes      []*entity.Like
}

func (s *stubBookUsecase) ListBooks(_ context.Context) ([]*entity.Book, error) { return nil, nil }

func (s *stubBookUsecase) GetBook(_ context.Context, _ uuid.UUID) (*entity.Book, error) {
	return &entity.Book{}, nil
}

func (s *stubBookUsecase) CreateBook(_ context.Context, _ *usecase.CreateBookInput) (*entity.Book, error) {
	return &entity.Book{}, nil
}

func (s *stubBookUsecase) UpdateBook(_ context.Context, _ uuid.UUID, _ *usecase.UpdateBookInput) (*entity.Book, error) {
	return &entity.Book{}, nil
}

func (s *stubBookUsecase) DeleteBook(_ context.Context, _ uuid.UUID) error { return nil }

func (s *stubBookUsecase) LikeBook(_ context.Context, userID, bookID uuid.UUID) (*entity.Like, error) {
	s.likeUserID = userID
	s.likeBookID = bookID

	return &entity.Like{UserID: userID, BookID: bookID}, nil
}

func (s *stubBookUsecase) ListBookLikes(_ context.Context, _ uuid.UUID) ([]*entity.Like, error) {
	return s.likes, nil
}

func TestBookHandler_LikeBook_UsesSessionUser(t *testing.T) {
	uc := &stubBookUsecase{}
	h := NewBookHandler(uc, discardLogger())

	userID := uuid.New()
	bookID := uuid.New()
	c, rec := newHandlerContext(http.MethodPost, "/books/like",
		fmt.Sprintf(`{"book_id":%q}`, bookID))
	c.Set("userID", userID)

	require.NoError(t, h.LikeBook(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, userID, uc.likeUserID)
	assert.Equal(t, bookID, uc.likeBookID)
}

func TestBookHandler_LikeBook_IgnoresUserIDInPayload(t *testing.T) {
	uc := &stubBookUsecase{}
	h := NewBookHandler(uc, discardLogger())

	sessionUserID := uuid.New()
	bookID := uuid.New()
	c, _ := newHandlerContext(http.MethodPost, "/books/like",
		fmt.Sprintf(`{"user_id":%q,"book_id":%q}`, uuid.New(), bookID))
	c.Set("userID", sessionUserID)

	require.NoError(t, h.LikeBook(c))
	// The like is attributed to the session, whatever the payload claims.
	assert.Equal(t, sessionUserID, uc.likeUserID)
}

func TestBookHandler_LikeBook_Unauthenticated(t *testing.T) {
	uc := &stubBookUsecase{}
	h := NewBookHandler(uc, discardLogger())

	c, _ := newHandlerContext(http.MethodPost, "/books/like",
		fmt.Sprintf(`{"book_id":%q}`, uuid.New()))

	err := h.LikeBook(c)

	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	assert.Equal(t, uuid.Nil, uc.likeUserID)
}

func TestBookHandler_ListBookLikes(t *testing.T) {
	bookID := uuid.New()
	uc := &stubBookUsecase{likes: []*entity.Like{
		{UserID: uuid.New(), BookID: bookID},
		{UserID: uuid.New(), BookID: bookID},
	}}
	h := NewBookHandler(uc, discardLogger())

	c, rec := newHandlerContext(http.MethodGet, "/books/"+bookID.String()+"/likes", "")
	c.SetParamNames("id")
	c.SetParamValues(bookID.String())

	require.NoError(t, h.ListBookLikes(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), uc.likes[0].UserID.String())
}
