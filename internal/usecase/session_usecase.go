package usecase

import (
	"errors"
	"sort"
	"time"

	"shelf-life/internal/entity"
	"shelf-life/internal/repo/persistent"

	"gorm.io/gorm"
)

type SessionInput struct {
	WorkID         string
	StartedAt      *time.Time
	EndedAt        *time.Time
	Minutes        *int
	UnitsCompleted *int
	Note           string
}

type SessionUseCase interface {
	// List returns the user's sessions, newest startedAt first. A
	// non-empty workID narrows the list to one owned work.
	List(userID, workID string) ([]*entity.Session, error)
	Get(userID, sessionID string) (*entity.Session, error)
	Create(userID string, in SessionInput) (*entity.Session, error)
	CreateForWork(userID, workID string, in SessionInput) (*entity.Session, error)
	Update(userID, sessionID string, in SessionInput) (*entity.Session, error)
	Delete(userID, sessionID string) error
}

type sessionUseCase struct {
	sessionRepo persistent.SessionRepository
	workRepo    persistent.WorkRepository
	userRepo    persistent.UserRepository
}

func NewSessionUseCase(
	sessionRepo persistent.SessionRepository,
	workRepo persistent.WorkRepository,
	userRepo persistent.UserRepository,
) SessionUseCase {
	return &sessionUseCase{
		sessionRepo: sessionRepo,
		workRepo:    workRepo,
		userRepo:    userRepo,
	}
}

func (uc *sessionUseCase) List(userID, workID string) ([]*entity.Session, error) {
	var sessions []*entity.Session
	var err error

	if workID == "" {
		sessions, err = uc.sessionRepo.ListByUser(userID)
	} else {
		if _, err := uc.findOwnedWork(userID, workID); err != nil {
			return nil, err
		}
		sessions, err = uc.sessionRepo.ListByUserAndWork(userID, workID)
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartedAt.After(sessions[j].StartedAt)
	})
	return sessions, nil
}

func (uc *sessionUseCase) Get(userID, sessionID string) (*entity.Session, error) {
	session, err := uc.sessionRepo.GetOwned(userID, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

func (uc *sessionUseCase) Create(userID string, in SessionInput) (*entity.Session, error) {
	return uc.CreateForWork(userID, in.WorkID, in)
}

func (uc *sessionUseCase) CreateForWork(userID, workID string, in SessionInput) (*entity.Session, error) {
	if _, err := uc.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if _, err := uc.findOwnedWork(userID, workID); err != nil {
		return nil, err
	}

	if err := validateSessionInput(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	startedAt := now
	if in.StartedAt != nil {
		startedAt = *in.StartedAt
	}

	session := &entity.Session{
		UserID:         userID,
		WorkID:         workID,
		StartedAt:      startedAt,
		EndedAt:        in.EndedAt,
		Minutes:        in.Minutes,
		UnitsCompleted: in.UnitsCompleted,
		Note:           in.Note,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.sessionRepo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (uc *sessionUseCase) Update(userID, sessionID string, in SessionInput) (*entity.Session, error) {
	session, err := uc.sessionRepo.GetOwned(userID, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if err := validateSessionInput(in); err != nil {
		return nil, err
	}

	// A session may be moved to another work, as long as the target is
	// owned by the same user.
	if in.WorkID != "" && in.WorkID != session.WorkID {
		if _, err := uc.findOwnedWork(userID, in.WorkID); err != nil {
			return nil, err
		}
		session.WorkID = in.WorkID
	}

	if in.StartedAt != nil {
		session.StartedAt = *in.StartedAt
	}
	session.EndedAt = in.EndedAt
	session.Minutes = in.Minutes
	session.UnitsCompleted = in.UnitsCompleted
	session.Note = in.Note
	session.UpdatedAt = time.Now().UTC()

	if err := uc.sessionRepo.Update(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (uc *sessionUseCase) Delete(userID, sessionID string) error {
	if err := uc.sessionRepo.Delete(userID, sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	return nil
}

func (uc *sessionUseCase) findOwnedWork(userID, workID string) (*entity.Work, error) {
	work, err := uc.workRepo.GetOwned(userID, workID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}
	return work, nil
}

func validateSessionInput(in SessionInput) error {
	if in.Minutes != nil && (*in.Minutes < 1 || *in.Minutes > 1_000_000) {
		return NewValidationError("Minutes out of range").WithField("minutes", "must be between 1 and 1000000")
	}
	if in.UnitsCompleted != nil && (*in.UnitsCompleted < 0 || *in.UnitsCompleted > 1_000_000) {
		return NewValidationError("Units completed out of range").WithField("unitsCompleted", "must be between 0 and 1000000")
	}
	if len(in.Note) > 500 {
		return NewValidationError("Note too long").WithField("note", "must be at most 500 characters")
	}
	return nil
}
