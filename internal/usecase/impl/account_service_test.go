package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/mocks"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type accountServiceFixture struct {
	service      usecase.AccountUsecase
	accountRepo  *mocks.AccountRepository
	hasher       *mocks.PasswordHasher
	tokenService *mocks.TokenService
}

func newAccountServiceFixture() *accountServiceFixture {
	accountRepo := &mocks.AccountRepository{}
	hasher := &mocks.PasswordHasher{}
	tokenService := &mocks.TokenService{}
	txManager := &mocks.TransactionManager{
		Factory: &mocks.RepositoryFactory{AccountRepository: accountRepo},
	}

	service := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       discardLogger(),
	})

	return &accountServiceFixture{
		service:      service,
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	f := newAccountServiceFixture()
	ctx := context.Background()

	f.hasher.On("Hash", "s3cret-password").Return("$2a$10$digest", nil)
	f.accountRepo.On("FindByEmail", ctx, "alice@example.com").Return(nil, repository.ErrAccountNotFound)
	f.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	output, err := f.service.Register(ctx, &usecase.RegisterInput{
		Email:    "Alice@Example.com",
		Password: "s3cret-password",
		FullName: "Alice",
	})
	require.NoError(t, err)
	require.NotNil(t, output.Account)

	assert.Equal(t, "alice@example.com", output.Account.Email)
	assert.Equal(t, "$2a$10$digest", output.Account.PasswordHash)
	assert.Equal(t, "Alice", output.Account.FullName)
	assert.True(t, output.Account.Active)
	assert.False(t, output.Account.Admin)

	f.accountRepo.AssertExpectations(t)
	f.hasher.AssertExpectations(t)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	f := newAccountServiceFixture()
	ctx := context.Background()

	existing := &entity.Account{ID: uuid.New(), Email: "alice@example.com"}

	f.hasher.On("Hash", "s3cret-password").Return("$2a$10$digest", nil)
	f.accountRepo.On("FindByEmail", ctx, "alice@example.com").Return(existing, nil)

	_, err := f.service.Register(ctx, &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "s3cret-password",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrEmailAlreadyRegistered.ErrorCode(), appErr.ErrorCode())

	f.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	f := newAccountServiceFixture()
	ctx := context.Background()

	f.hasher.On("Hash", "s3cret-password").Return("", assert.AnError)

	_, err := f.service.Register(ctx, &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "s3cret-password",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrPasswordHashFailed.ErrorCode(), appErr.ErrorCode())

	f.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Login_Success(t *testing.T) {
	f := newAccountServiceFixture()
	ctx := context.Background()

	accountID := uuid.New()
	account := &entity.Account{
		ID:           accountID,
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$digest",
		Active:       true,
	}

	f.accountRepo.On("FindByEmail", ctx, "alice@example.com").Return(account, nil)
	f.hasher.On("Check", "s3cret-password", "$2a$10$digest").Return(true)
	f.tokenService.On("Issue", accountID).Return("signed.jwt.token", nil)

	output, err := f.service.Login(ctx, &usecase.LoginInput{
		Email:    "ALICE@example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)

	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, account, output.Account)
}

func TestAccountService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	ctx := context.Background()

	// Unknown email.
	f1 := newAccountServiceFixture()
	f1.accountRepo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrAccountNotFound)

	_, err1 := f1.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})
	require.Error(t, err1)

	// Known email, wrong password.
	f2 := newAccountServiceFixture()
	account := &entity.Account{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "$2a$10$digest", Active: true}
	f2.accountRepo.On("FindByEmail", ctx, "alice@example.com").Return(account, nil)
	f2.hasher.On("Check", "wrong", "$2a$10$digest").Return(false)

	_, err2 := f2.service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "wrong"})
	require.Error(t, err2)

	// Both failures surface as the same credential error.
	var appErr1, appErr2 domainerrors.AppError
	require.ErrorAs(t, err1, &appErr1)
	require.ErrorAs(t, err2, &appErr2)
	assert.Equal(t, appErr1.ErrorCode(), appErr2.ErrorCode())
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), appErr1.ErrorCode())

	f1.tokenService.AssertNotCalled(t, "Issue", mock.Anything)
	f2.tokenService.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAccountService_Login_DeactivatedAccount(t *testing.T) {
	f := newAccountServiceFixture()
	ctx := context.Background()

	account := &entity.Account{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "$2a$10$digest", Active: false}

	f.accountRepo.On("FindByEmail", ctx, "alice@example.com").Return(account, nil)
	f.hasher.On("Check", "s3cret-password", "$2a$10$digest").Return(true)

	_, err := f.service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "s3cret-password"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), appErr.ErrorCode())

	f.tokenService.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAccountService_GetAccount(t *testing.T) {
	f := newAccountServiceFixture()
	ctx := context.Background()

	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Email: "alice@example.com"}

	f.accountRepo.On("FindByID", ctx, accountID).Return(account, nil)

	got, err := f.service.GetAccount(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	f := newAccountServiceFixture()
	ctx := context.Background()

	missingID := uuid.New()
	f.accountRepo.On("FindByID", ctx, missingID).Return(nil, repository.ErrAccountNotFound)

	_, err := f.service.GetAccount(ctx, missingID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrAccountNotFound.ErrorCode(), appErr.ErrorCode())
}
