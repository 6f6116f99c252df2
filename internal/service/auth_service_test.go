package service

import (
	"testing"
	"time"

	"github.com/humanity/backend/internal/common"
	"github.com/humanity/backend/internal/domain"
	"github.com/humanity/backend/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestAuthService(userRepo *MockUserRepository) AuthService {
	manager := jwt.NewManager("test-secret", 15*time.Minute, 168*time.Hour)
	return NewAuthService(userRepo, manager)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(userRepo)

	userRepo.On("ExistsByEmail", "taken@example.com").Return(true, nil)

	resp, err := svc.Register(&RegisterRequest{
		Email:     "taken@example.com",
		Password:  "password123",
		FirstName: "Jo",
		LastName:  "March",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, common.ErrUserAlreadyExists)
	userRepo.AssertNotCalled(t, "Create")
}

func TestRegister_CreatesUserWithHashedPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(userRepo)

	userRepo.On("ExistsByEmail", "new@example.com").Return(false, nil)

	var created *domain.User
	userRepo.On("Create", mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*domain.User)
	}).Return(nil)

	resp, err := svc.Register(&RegisterRequest{
		Email:     "new@example.com",
		Password:  "password123",
		FirstName: "Jo",
		LastName:  "March",
	})

	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", resp.Email)
	assert.Equal(t, domain.RoleUser, resp.Role)
	assert.False(t, resp.IsAuthor)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "password123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password123")))
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	user := &domain.User{
		ID:           "user-1",
		Email:        "user@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}
	userRepo.On("FindByEmail", "user@example.com").Return(user, nil)

	resp, err := svc.Login("user@example.com", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "user-1", resp.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	user := &domain.User{ID: "user-1", Email: "user@example.com", PasswordHash: string(hash)}
	userRepo.On("FindByEmail", "user@example.com").Return(user, nil)

	resp, err := svc.Login("user@example.com", "wrong")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(userRepo)

	userRepo.On("FindByEmail", "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	resp, err := svc.Login("nobody@example.com", "password123")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	userRepo := new(MockUserRepository)
	manager := jwt.NewManager("test-secret", 15*time.Minute, 168*time.Hour)
	svc := NewAuthService(userRepo, manager)

	refresh, err := manager.GenerateRefreshToken("user-1")
	assert.NoError(t, err)

	user := &domain.User{ID: "user-1", Email: "user@example.com", Role: domain.RoleUser}
	userRepo.On("FindByID", "user-1").Return(user, nil)

	pair, err := svc.RefreshToken(refresh)

	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestRefreshToken_Invalid(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(userRepo)

	pair, err := svc.RefreshToken("not-a-token")

	assert.Nil(t, pair)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestMe_NotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(userRepo)

	userRepo.On("FindByID", "ghost").Return(nil, gorm.ErrRecordNotFound)

	resp, err := svc.Me("ghost")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}
