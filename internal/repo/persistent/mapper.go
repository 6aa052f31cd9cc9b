package persistent

import (
	"shelf-life/internal/entity"
	"shelf-life/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		DisplayName:  m.DisplayName,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:           e.ID,
		Username:     e.Username,
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		DisplayName:  e.DisplayName,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToWorkEntity(m *model.WorkModel) *entity.Work {
	if m == nil {
		return nil
	}

	return &entity.Work{
		ID:         m.ID,
		UserID:     m.UserID,
		Title:      m.Title,
		Type:       entity.WorkType(m.Type),
		Creator:    m.Creator,
		Genre:      m.Genre,
		Status:     entity.WorkStatus(m.Status),
		TotalUnits: m.TotalUnits,
		CoverURL:   m.CoverURL,
		StartedAt:  m.StartedAt,
		FinishedAt: m.FinishedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToWorkModel(e *entity.Work) *model.WorkModel {
	if e == nil {
		return nil
	}

	return &model.WorkModel{
		ID:         e.ID,
		UserID:     e.UserID,
		Title:      e.Title,
		Type:       string(e.Type),
		Creator:    e.Creator,
		Genre:      e.Genre,
		Status:     string(e.Status),
		TotalUnits: e.TotalUnits,
		CoverURL:   e.CoverURL,
		StartedAt:  e.StartedAt,
		FinishedAt: e.FinishedAt,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToSessionEntity(m *model.SessionModel) *entity.Session {
	if m == nil {
		return nil
	}

	return &entity.Session{
		ID:             m.ID,
		UserID:         m.UserID,
		WorkID:         m.WorkID,
		StartedAt:      m.StartedAt,
		EndedAt:        m.EndedAt,
		Minutes:        m.Minutes,
		UnitsCompleted: m.UnitsCompleted,
		Note:           m.Note,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToSessionModel(e *entity.Session) *model.SessionModel {
	if e == nil {
		return nil
	}

	return &model.SessionModel{
		ID:             e.ID,
		UserID:         e.UserID,
		WorkID:         e.WorkID,
		StartedAt:      e.StartedAt,
		EndedAt:        e.EndedAt,
		Minutes:        e.Minutes,
		UnitsCompleted: e.UnitsCompleted,
		Note:           e.Note,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToReviewEntity(m *model.ReviewModel) *entity.Review {
	if m == nil {
		return nil
	}

	return &entity.Review{
		ID:        m.ID,
		UserID:    m.UserID,
		WorkID:    m.WorkID,
		Rating:    m.Rating,
		Title:     m.Title,
		Body:      m.Body,
		IsPrivate: m.IsPrivate,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToReviewModel(e *entity.Review) *model.ReviewModel {
	if e == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:        e.ID,
		UserID:    e.UserID,
		WorkID:    e.WorkID,
		Rating:    e.Rating,
		Title:     e.Title,
		Body:      e.Body,
		IsPrivate: e.IsPrivate,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
