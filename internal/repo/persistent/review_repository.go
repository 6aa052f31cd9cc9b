package persistent

import (
	"shelf-life/internal/entity"
	"shelf-life/internal/model"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *entity.Review) error
	GetOwned(userID, reviewID string) (*entity.Review, error)
	// GetByUserAndWork returns gorm.ErrRecordNotFound when the user has
	// not reviewed the work yet.
	GetByUserAndWork(userID, workID string) (*entity.Review, error)
	ListByUser(userID string) ([]*entity.Review, error)
	Update(review *entity.Review) error
	Delete(userID, reviewID string) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *entity.Review) error {
	reviewModel := ToReviewModel(review)
	if err := r.db.Create(reviewModel).Error; err != nil {
		return err
	}
	*review = *ToReviewEntity(reviewModel)
	return nil
}

func (r *reviewRepository) GetOwned(userID, reviewID string) (*entity.Review, error) {
	var reviewModel model.ReviewModel
	if err := r.db.Where("id = ? AND user_id = ?", reviewID, userID).First(&reviewModel).Error; err != nil {
		return nil, err
	}
	return ToReviewEntity(&reviewModel), nil
}

func (r *reviewRepository) GetByUserAndWork(userID, workID string) (*entity.Review, error) {
	var reviewModel model.ReviewModel
	if err := r.db.Where("user_id = ? AND work_id = ?", userID, workID).First(&reviewModel).Error; err != nil {
		return nil, err
	}
	return ToReviewEntity(&reviewModel), nil
}

func (r *reviewRepository) ListByUser(userID string) ([]*entity.Review, error) {
	var reviewModels []model.ReviewModel
	if err := r.db.Where("user_id = ?", userID).Find(&reviewModels).Error; err != nil {
		return nil, err
	}

	reviews := make([]*entity.Review, len(reviewModels))
	for i := range reviewModels {
		reviews[i] = ToReviewEntity(&reviewModels[i])
	}
	return reviews, nil
}

func (r *reviewRepository) Update(review *entity.Review) error {
	return r.db.Save(ToReviewModel(review)).Error
}

func (r *reviewRepository) Delete(userID, reviewID string) error {
	res := r.db.Where("id = ? AND user_id = ?", reviewID, userID).Delete(&model.ReviewModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
