package usecase

import (
	"errors"
	"testing"
	"time"

	"shelf-life/internal/entity"
	"shelf-life/internal/repo/persistent"
	"shelf-life/pkg/jwt"
	"shelf-life/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

func newTestJWTService() *jwt.Service {
	return jwt.NewService("test-secret", time.Hour)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestRegister_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockRepo, newTestJWTService(), logger.New())

	mockRepo.On("ExistsByUsername", "alice").Return(false, nil)
	mockRepo.On("ExistsByEmail", "alice@example.com").Return(false, nil)
	mockRepo.On("Create", mock.AnythingOfType("*entity.User")).Run(func(args mock.Arguments) {
		user := args.Get(0).(*entity.User)
		user.ID = "user-123"
	}).Return(nil)

	profile, err := uc.Register("  Alice ", "Alice@Example.COM", "password123", "")

	assert.NoError(t, err)
	assert.Equal(t, "user-123", profile.ID)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "alice@example.com", profile.Email)
	assert.Equal(t, "alice", profile.DisplayName)
	mockRepo.AssertExpectations(t)
}

func TestRegister_PasswordIsHashed(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockRepo, newTestJWTService(), logger.New())

	var created *entity.User
	mockRepo.On("ExistsByUsername", "alice").Return(false, nil)
	mockRepo.On("ExistsByEmail", "alice@example.com").Return(false, nil)
	mockRepo.On("Create", mock.AnythingOfType("*entity.User")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*entity.User)
	}).Return(nil)

	_, err := uc.Register("alice", "alice@example.com", "password123", "Alice")

	assert.NoError(t, err)
	assert.NotEqual(t, "password123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password123")))
}

func TestRegister_UsernameTaken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockRepo, newTestJWTService(), logger.New())

	// The lookup is case-insensitive because usernames are normalized
	// to lowercase before the check.
	mockRepo.On("ExistsByUsername", "alice").Return(true, nil)

	profile, err := uc.Register("ALICE", "alice@example.com", "password123", "")

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, ErrUsernameTaken)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegister_EmailRegistered(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockRepo, newTestJWTService(), logger.New())

	mockRepo.On("ExistsByUsername", "alice").Return(false, nil)
	mockRepo.On("ExistsByEmail", "alice@example.com").Return(true, nil)

	profile, err := uc.Register("alice", "Alice@Example.com", "password123", "")

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, ErrEmailRegistered)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegister_ShortPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockRepo, newTestJWTService(), logger.New())

	profile, err := uc.Register("alice", "alice@example.com", "short", "")

	assert.Nil(t, profile)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "password")
	mockRepo.AssertNotCalled(t, "ExistsByUsername", mock.Anything)
}

func TestLogin_ByUsername(t *testing.T) {
	mockRepo := new(MockUserRepository)
	jwtService := newTestJWTService()
	uc := NewAuthUseCase(mockRepo, jwtService, logger.New())

	user := &entity.User{
		ID:           "user-123",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hashPassword(t, "password123"),
	}
	mockRepo.On("GetByUsername", "alice").Return(user, nil)

	profile, token, err := uc.Login("alice", "password123")

	assert.NoError(t, err)
	assert.Equal(t, "user-123", profile.ID)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestLogin_ByEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockRepo, newTestJWTService(), logger.New())

	user := &entity.User{
		ID:           "user-123",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hashPassword(t, "password123"),
	}
	mockRepo.On("GetByEmail", "alice@example.com").Return(user, nil)

	profile, token, err := uc.Login("Alice@Example.com", "password123")

	assert.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.NotEmpty(t, token)
	mockRepo.AssertNotCalled(t, "GetByUsername", mock.Anything)
}

func TestLogin_UnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockRepo, newTestJWTService(), logger.New())

	user := &entity.User{
		ID:           "user-123",
		Username:     "alice",
		PasswordHash: hashPassword(t, "password123"),
	}
	mockRepo.On("GetByUsername", "alice").Return(user, nil)
	mockRepo.On("GetByUsername", "nobody").Return(nil, gorm.ErrRecordNotFound)

	_, _, wrongPassword := uc.Login("alice", "not-the-password")
	_, _, unknownUser := uc.Login("nobody", "password123")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestLogin_RepositoryError(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockRepo, newTestJWTService(), logger.New())

	dbErr := errors.New("connection refused")
	mockRepo.On("GetByUsername", "alice").Return(nil, dbErr)

	_, _, err := uc.Login("alice", "password123")

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
