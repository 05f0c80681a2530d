package impl

import (
	"context"
	"testing"
	"time"

	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	mockRepo "shelf/internal/mocks/repository"
	mockSvc "shelf/internal/mocks/service"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service        usecase.AuthUsecase
	txManager      *mockRepo.MockTransactionManager
	userRepo       *mockRepo.MockUserRepository
	credentialRepo *mockRepo.MockCredentialRepository
	hasher         *mockSvc.MockPasswordHasher
	tokenService   *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	credentialRepo := mockRepo.NewMockCredentialRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:      txManager,
		UserRepo:       userRepo,
		CredentialRepo: credentialRepo,
		Hasher:         hasher,
		TokenService:   tokenService,
		Logger:         newDiscardLogger(),
	})

	return authServiceFixtures{
		service:        service,
		txManager:      txManager,
		userRepo:       userRepo,
		credentialRepo: credentialRepo,
		hasher:         hasher,
		tokenService:   tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fixtures := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:           "Test User",
		Email:          "test@example.com",
		Password:       "Password123!",
		PasswordRepeat: "Password123!",
	}

	fixtures.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txCredentialRepo := mockRepo.NewMockCredentialRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("UserRepo").Return(txUserRepo)
	factory.On("CredentialRepo").Return(txCredentialRepo)

	txUserRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	txUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = uuid.New()
		}).
		Return(nil)
	txCredentialRepo.On("Create", ctx, mock.MatchedBy(func(credential *entity.Credential) bool {
		return credential.PasswordHash == "hashed_password"
	})).Return(nil)

	fixtures.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(factory)

	output, err := fixtures.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleStandard, output.User.Role)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAuthService_Register_PasswordMismatch(t *testing.T) {
	fixtures := createTestAuthService(t)

	output, err := fixtures.service.Register(context.Background(), &usecase.RegisterInput{
		Name:           "Test User",
		Email:          "test@example.com",
		Password:       "Password123!",
		PasswordRepeat: "Different123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Register_EmailAlreadyRegistered(t *testing.T) {
	fixtures := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:           "Test User",
		Email:          "taken@example.com",
		Password:       "Password123!",
		PasswordRepeat: "Password123!",
	}

	fixtures.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	existingUser := &entity.User{ID: uuid.New(), Email: input.Email}
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("UserRepo").Return(txUserRepo)
	factory.On("CredentialRepo").Return(mockRepo.NewMockCredentialRepository(t)).Maybe()
	txUserRepo.On("FindByEmail", ctx, input.Email).Return(existingUser, nil)

	fixtures.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(factory)

	output, err := fixtures.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fixtures := createTestAuthService(t)

	input := &usecase.RegisterInput{
		Name:           "Test User",
		Email:          "test@example.com",
		Password:       "Password123!",
		PasswordRepeat: "Password123!",
	}

	fixtures.hasher.On("Hash", input.Password).Return("", errors.New("boom"))

	output, err := fixtures.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_Login_Success(t *testing.T) {
	fixtures := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:    uuid.New(),
		Email: "test@example.com",
		Role:  entity.RoleAdmin,
	}
	credential := &entity.Credential{
		UserID:       user.ID,
		PasswordHash: "hashed_password",
	}

	fixtures.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fixtures.credentialRepo.On("FindByUserID", ctx, user.ID).Return(credential, nil)
	fixtures.hasher.On("Check", "Password123!", credential.PasswordHash).Return(true)
	fixtures.tokenService.On("GenerateToken", user.ID, "admin").Return("signed.jwt.token", nil)
	fixtures.tokenService.On("GetTokenDuration").Return(12 * time.Hour)

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, 12*time.Hour, output.TokenTTL)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fixtures := createTestAuthService(t)

	ctx := context.Background()
	fixtures.userRepo.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fixtures := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", Role: entity.RoleStandard}
	credential := &entity.Credential{UserID: user.ID, PasswordHash: "hashed_password"}

	fixtures.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fixtures.credentialRepo.On("FindByUserID", ctx, user.ID).Return(credential, nil)
	fixtures.hasher.On("Check", "wrong", credential.PasswordHash).Return(false)

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	// Wrong password and unknown email collapse into the same error.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_MissingCredential(t *testing.T) {
	fixtures := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", Role: entity.RoleStandard}

	fixtures.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fixtures.credentialRepo.On("FindByUserID", ctx, user.ID).
		Return(nil, repository.ErrCredentialNotFound)

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
