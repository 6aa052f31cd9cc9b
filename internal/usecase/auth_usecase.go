package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shelf-life/internal/entity"
	"shelf-life/internal/repo/persistent"
	"shelf-life/pkg/jwt"
	"shelf-life/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUseCase interface {
	Register(username, email, password, displayName string) (*entity.Profile, error)
	Login(usernameOrEmail, password string) (*entity.Profile, string, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(userRepo persistent.UserRepository, jwtService *jwt.Service, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(username, email, password, displayName string) (*entity.Profile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" {
		return nil, NewValidationError("Username is required").WithField("username", "must not be blank")
	}
	if email == "" {
		return nil, NewValidationError("Email is required").WithField("email", "must not be blank")
	}
	if len(password) < 8 {
		return nil, NewValidationError("Password must be at least 8 characters").WithField("password", "must be at least 8 characters")
	}

	taken, err := uc.userRepo.ExistsByUsername(username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	registered, err := uc.userRepo.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, ErrEmailRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process registration: %w", err)
	}

	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = username
	}

	now := time.Now().UTC()
	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, err
	}

	return user.Profile(), nil
}

func (uc *authUseCase) Login(usernameOrEmail, password string) (*entity.Profile, string, error) {
	identifier := strings.TrimSpace(usernameOrEmail)
	if identifier == "" || password == "" {
		return nil, "", NewValidationError("Username/email and password are required")
	}

	// An identifier containing "@" is looked up as an email, anything
	// else as a username. Unknown identifier and wrong password yield
	// the same error.
	var user *entity.User
	var err error
	if strings.Contains(identifier, "@") {
		user, err = uc.userRepo.GetByEmail(strings.ToLower(identifier))
	} else {
		user, err = uc.userRepo.GetByUsername(strings.ToLower(identifier))
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user.Profile(), token, nil
}
