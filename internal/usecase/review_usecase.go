package usecase

import (
	"errors"
	"time"

	"shelf-life/internal/entity"
	"shelf-life/internal/repo/persistent"

	"gorm.io/gorm"
)

type ReviewInput struct {
	WorkID    string
	Rating    int
	Title     string
	Body      string
	IsPrivate bool
}

type ReviewUseCase interface {
	GetForUser(userID string) ([]*entity.Review, error)
	GetByID(userID, reviewID string) (*entity.Review, error)
	// GetForWork reports found=false when the user has not reviewed the
	// work yet; that is a normal outcome, not an error.
	GetForWork(userID, workID string) (review *entity.Review, found bool, err error)
	Upsert(userID string, in ReviewInput) (*entity.Review, error)
	Delete(userID, reviewID string) error
}

type reviewUseCase struct {
	reviewRepo persistent.ReviewRepository
	workRepo   persistent.WorkRepository
	userRepo   persistent.UserRepository
}

func NewReviewUseCase(
	reviewRepo persistent.ReviewRepository,
	workRepo persistent.WorkRepository,
	userRepo persistent.UserRepository,
) ReviewUseCase {
	return &reviewUseCase{
		reviewRepo: reviewRepo,
		workRepo:   workRepo,
		userRepo:   userRepo,
	}
}

func (uc *reviewUseCase) GetForUser(userID string) ([]*entity.Review, error) {
	return uc.reviewRepo.ListByUser(userID)
}

func (uc *reviewUseCase) GetByID(userID, reviewID string) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetOwned(userID, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}

func (uc *reviewUseCase) GetForWork(userID, workID string) (*entity.Review, bool, error) {
	review, err := uc.reviewRepo.GetByUserAndWork(userID, workID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return review, true, nil
}

// Upsert creates the user's review for a work or updates the existing
// one in place. The rating is checked before anything is written.
func (uc *reviewUseCase) Upsert(userID string, in ReviewInput) (*entity.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, NewValidationError("Rating must be between 1 and 5").WithField("rating", "must be between 1 and 5")
	}
	if len(in.Title) > 255 {
		return nil, NewValidationError("Title too long").WithField("title", "must be at most 255 characters")
	}

	if _, err := uc.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if _, err := uc.workRepo.GetOwned(userID, in.WorkID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()

	existing, err := uc.reviewRepo.GetByUserAndWork(userID, in.WorkID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.Rating = in.Rating
		existing.Title = in.Title
		existing.Body = in.Body
		existing.IsPrivate = in.IsPrivate
		existing.UpdatedAt = now
		if err := uc.reviewRepo.Update(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	review := &entity.Review{
		UserID:    userID,
		WorkID:    in.WorkID,
		Rating:    in.Rating,
		Title:     in.Title,
		Body:      in.Body,
		IsPrivate: in.IsPrivate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (uc *reviewUseCase) Delete(userID, reviewID string) error {
	if err := uc.reviewRepo.Delete(userID, reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}
