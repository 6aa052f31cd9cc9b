package persistent

import (
	"shelf-life/internal/entity"
	"shelf-life/internal/model"

	"gorm.io/gorm"
)

type WorkRepository interface {
	Create(work *entity.Work) error
	// GetOwned returns the work only when it exists and belongs to
	// userID; a foreign work is indistinguishable from a missing one.
	GetOwned(userID, workID string) (*entity.Work, error)
	ListByUser(userID string) ([]*entity.Work, error)
	Update(work *entity.Work) error
	Delete(userID, workID string) error
}

type workRepository struct {
	db *gorm.DB
}

func NewWorkRepository(db *gorm.DB) WorkRepository {
	return &workRepository{db: db}
}

func (r *workRepository) Create(work *entity.Work) error {
	workModel := ToWorkModel(work)
	if err := r.db.Create(workModel).Error; err != nil {
		return err
	}
	*work = *ToWorkEntity(workModel)
	return nil
}

func (r *workRepository) GetOwned(userID, workID string) (*entity.Work, error) {
	var workModel model.WorkModel
	if err := r.db.Where("id = ? AND user_id = ?", workID, userID).First(&workModel).Error; err != nil {
		return nil, err
	}
	return ToWorkEntity(&workModel), nil
}

func (r *workRepository) ListByUser(userID string) ([]*entity.Work, error) {
	var workModels []model.WorkModel
	if err := r.db.Where("user_id = ?", userID).Find(&workModels).Error; err != nil {
		return nil, err
	}

	works := make([]*entity.Work, len(workModels))
	for i := range workModels {
		works[i] = ToWorkEntity(&workModels[i])
	}
	return works, nil
}

func (r *workRepository) Update(work *entity.Work) error {
	return r.db.Save(ToWorkModel(work)).Error
}

// Delete removes the work and its sessions and reviews in one
// transaction. The ownership condition is part of the delete itself.
func (r *workRepository) Delete(userID, workID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("work_id = ?", workID).Delete(&model.SessionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("work_id = ?", workID).Delete(&model.ReviewModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND user_id = ?", workID, userID).Delete(&model.WorkModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
