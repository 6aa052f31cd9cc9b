package persistent

import (
	"shelf-life/internal/entity"
	"shelf-life/internal/model"

	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(session *entity.Session) error
	GetOwned(userID, sessionID string) (*entity.Session, error)
	ListByUser(userID string) ([]*entity.Session, error)
	ListByUserAndWork(userID, workID string) ([]*entity.Session, error)
	Update(session *entity.Session) error
	Delete(userID, sessionID string) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *entity.Session) error {
	sessionModel := ToSessionModel(session)
	if err := r.db.Create(sessionModel).Error; err != nil {
		return err
	}
	*session = *ToSessionEntity(sessionModel)
	return nil
}

func (r *sessionRepository) GetOwned(userID, sessionID string) (*entity.Session, error) {
	var sessionModel model.SessionModel
	if err := r.db.Where("id = ? AND user_id = ?", sessionID, userID).First(&sessionModel).Error; err != nil {
		return nil, err
	}
	return ToSessionEntity(&sessionModel), nil
}

func (r *sessionRepository) ListByUser(userID string) ([]*entity.Session, error) {
	var sessionModels []model.SessionModel
	if err := r.db.Where("user_id = ?", userID).Find(&sessionModels).Error; err != nil {
		return nil, err
	}

	sessions := make([]*entity.Session, len(sessionModels))
	for i := range sessionModels {
		sessions[i] = ToSessionEntity(&sessionModels[i])
	}
	return sessions, nil
}

func (r *sessionRepository) ListByUserAndWork(userID, workID string) ([]*entity.Session, error) {
	var sessionModels []model.SessionModel
	if err := r.db.Where("user_id = ? AND work_id = ?", userID, workID).Find(&sessionModels).Error; err != nil {
		return nil, err
	}

	sessions := make([]*entity.Session, len(sessionModels))
	for i := range sessionModels {
		sessions[i] = ToSessionEntity(&sessionModels[i])
	}
	return sessions, nil
}

func (r *sessionRepository) Update(session *entity.Session) error {
	return r.db.Save(ToSessionModel(session)).Error
}

func (r *sessionRepository) Delete(userID, sessionID string) error {
	res := r.db.Where("id = ? AND user_id = ?", sessionID, userID).Delete(&model.SessionModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
