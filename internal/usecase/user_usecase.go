package usecase

import (
	"errors"

	"shelf-life/internal/entity"
	"shelf-life/internal/repo/persistent"

	"gorm.io/gorm"
)

type UserUseCase interface {
	GetProfile(userID string) (*entity.Profile, error)
	Delete(userID string) error
}

type userUseCase struct {
	userRepo persistent.UserRepository
}

func NewUserUseCase(userRepo persistent.UserRepository) UserUseCase {
	return &userUseCase{userRepo: userRepo}
}

func (uc *userUseCase) GetProfile(userID string) (*entity.Profile, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user.Profile(), nil
}

// Delete removes the account and everything it owns.
func (uc *userUseCase) Delete(userID string) error {
	if err := uc.userRepo.Delete(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
