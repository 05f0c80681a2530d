// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"

	"shelf/internal/domain/entity"
	"shelf/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a new MockUserRepository and registers assertion cleanup.
func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]*entity.User); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockCredentialRepository is a mock implementation of repository.CredentialRepository.
type MockCredentialRepository struct {
	mock.Mock
}

// NewMockCredentialRepository creates a new MockCredentialRepository and registers assertion cleanup.
func NewMockCredentialRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCredentialRepository {
	m := &MockCredentialRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCredentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	args := m.Called(ctx, credential)

	return args.Error(0)
}

func (m *MockCredentialRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error) {
	args := m.Called(ctx, userID)
	if credential, ok := args.Get(0).(*entity.Credential); ok {
		return credential, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockAuthorRepository is a mock implementation of repository.AuthorRepository.
type MockAuthorRepository struct {
	mock.Mock
}

// NewMockAuthorRepository creates a new MockAuthorRepository and registers assertion cleanup.
func NewMockAuthorRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthorRepository {
	m := &MockAuthorRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthorRepository) FindAll(ctx context.Context) ([]*entity.Author, error) {
	args := m.Called(ctx)
	if authors, ok := args.Get(0).([]*entity.Author); ok {
		return authors, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Author, error) {
	args := m.Called(ctx, id)
	if author, ok := args.Get(0).(*entity.Author); ok {
		return author, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthorRepository) Create(ctx context.Context, author *entity.Author) error {
	args := m.Called(ctx, author)

	return args.Error(0)
}

func (m *MockAuthorRepository) Update(ctx context.Context, author *entity.Author) error {
	args := m.Called(ctx, author)

	return args.Error(0)
}

func (m *MockAuthorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockBookRepository is a mock implementation of repository.BookRepository.
type MockBookRepository struct {
	mock.Mock
}

// NewMockBookRepository creates a new MockBookRepository and registers assertion cleanup.
func NewMockBookRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBookRepository {
	m := &MockBookRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBookRepository) FindAll(ctx context.Context) ([]*entity.Book, error) {
	args := m.Called(ctx)
	if books, ok := args.Get(0).([]*entity.Book); ok {
		return books, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	args := m.Called(ctx, id)
	if book, ok := args.Get(0).(*entity.Book); ok {
		return book, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBookRepository) Create(ctx context.Context, book *entity.Book) error {
	args := m.Called(ctx, book)

	return args.Error(0)
}

func (m *MockBookRepository) Update(ctx context.Context, book *entity.Book) error {
	args := m.Called(ctx, book)

	return args.Error(0)
}

func (m *MockBookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockLikeRepository is a mock implementation of repository.LikeRepository.
type MockLikeRepository struct {
	mock.Mock
}

// NewMockLikeRepository creates a new MockLikeRepository and registers assertion cleanup.
func NewMockLikeRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLikeRepository {
	m := &MockLikeRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLikeRepository) Create(ctx context.Context, like *entity.Like) error {
	args := m.Called(ctx, like)

	return args.Error(0)
}

func (m *MockLikeRepository) Find(ctx context.Context, userID, bookID uuid.UUID) (*entity.Like, error) {
	args := m.Called(ctx, userID, bookID)
	if like, ok := args.Get(0).(*entity.Like); ok {
		return like, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockLikeRepository) FindByBook(ctx context.Context, bookID uuid.UUID) ([]*entity.Like, error) {
	args := m.Called(ctx, bookID)
	if likes, ok := args.Get(0).([]*entity.Like); ok {
		return likes, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockTransactionManager is a mock implementation of repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a new MockTransactionManager and registers assertion cleanup.
func NewMockTransactionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Execute either runs the callback against a stubbed factory or short-circuits.
// Return a RepositoryFactory to have the callback executed and its error
// propagated; return an error (or nil) to skip the callback entirely.
func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if factory, ok := args.Get(0).(repository.RepositoryFactory); ok {
		return fn(factory)
	}

	return args.Error(0)
}

// MockRepositoryFactory is a mock implementation of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a new MockRepositoryFactory and registers assertion cleanup.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	args := m.Called()
	if repo, ok := args.Get(0).(repository.UserRepository); ok {
		return repo
	}

	return nil
}

func (m *MockRepositoryFactory) CredentialRepo() repository.CredentialRepository {
	args := m.Called()
	if repo, ok := args.Get(0).(repository.CredentialRepository); ok {
		return repo
	}

	return nil
}
