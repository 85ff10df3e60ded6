package impl

import (
	"context"
	"testing"

	"foodorder/internal/domain/entity"
	domainerrors "foodorder/internal/domain/errors"
	"foodorder/internal/domain/repository"
	mockRepo "foodorder/internal/mocks/repository"
	mockSvc "foodorder/internal/mocks/service"
	"foodorder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.SignupInput{Name: "Asha", Email: "asha@example.com", Password: "Str0ngPass!", Role: "customer"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "asha@example.com" && u.PasswordHash == "hashed" && u.Role == entity.RoleCustomer
		})).
		Run(func(_ context.Context, u *entity.User) { u.ID = uuid.New() }).
		Return(nil)

	user, err := fx.service.Signup(ctx, input)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "Asha", user.Name)
	assert.Equal(t, entity.RoleCustomer, user.Role)
}

func TestAuthService_Signup_InvalidRole(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Signup(context.Background(), &usecase.SignupInput{
		Name: "Asha", Email: "asha@example.com", Password: "Str0ngPass!", Role: "admin",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}

func TestAuthService_Signup_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Signup(context.Background(), &usecase.SignupInput{
		Name: "  ", Email: "asha@example.com", Password: "Str0ngPass!", Role: "owner",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAuthService_Signup_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)
	weak := domainerrors.ErrPasswordStrength.WithDetails("too short")

	fx.hasher.EXPECT().ValidatePasswordStrength("abc").Return(weak)

	_, err := fx.service.Signup(context.Background(), &usecase.SignupInput{
		Name: "Asha", Email: "asha@example.com", Password: "abc", Role: "customer",
	})
	assert.Equal(t, weak, err)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Signup(ctx, &usecase.SignupInput{
		Name: "Asha", Email: "asha@example.com", Password: "Str0ngPass!", Role: "customer",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Signup_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("cost too high"))

	_, err := fx.service.Signup(context.Background(), &usecase.SignupInput{
		Name: "Asha", Email: "asha@example.com", Password: "Str0ngPass!", Role: "customer",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "chef@example.com", PasswordHash: "hashed", Role: entity.RoleOwner}

	fx.userRepo.EXPECT().FindByEmail(ctx, "chef@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(user.ID, entity.RoleOwner).Return("signed-token", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: " chef@example.com ", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, user, out.User)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "secret"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "chef@example.com", PasswordHash: "hashed", Role: entity.RoleOwner}

	fx.userRepo.EXPECT().FindByEmail(ctx, "chef@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "chef@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_TokenFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "chef@example.com", PasswordHash: "hashed", Role: entity.RoleOwner}

	fx.userRepo.EXPECT().FindByEmail(ctx, "chef@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(user.ID, entity.RoleOwner).Return("", errors.New("no key"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "chef@example.com", Password: "secret"})
	assert.ErrorIs(t, err, domainerrors.ErrTokenGenerationFailed)
}
