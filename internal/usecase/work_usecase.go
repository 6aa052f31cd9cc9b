package usecase

import (
	"errors"
	"io"
	"sort"
	"strings"
	"time"

	"shelf-life/internal/entity"
	"shelf-life/internal/repo/persistent"
	"shelf-life/pkg/logger"

	"gorm.io/gorm"
)

// WorkInput is the mutable state of a work. Update replaces all of it.
type WorkInput struct {
	Title      string
	Type       entity.WorkType
	Creator    string
	Genre      string
	Status     entity.WorkStatus
	TotalUnits *int
	CoverURL   string
	StartedAt  *time.Time
	FinishedAt *time.Time
}

// CoverStorage stores uploaded cover images and returns a public URL.
type CoverStorage interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
}

type WorkUseCase interface {
	List(userID string) ([]*entity.WorkSummary, error)
	Get(userID, workID string) (*entity.Work, error)
	Create(userID string, in WorkInput) (*entity.Work, error)
	Update(userID, workID string, in WorkInput) (*entity.Work, error)
	Delete(userID, workID string) error
	UploadCover(userID, workID string, file io.Reader, fileKey, contentType string) (*entity.Work, error)
}

type workUseCase struct {
	workRepo persistent.WorkRepository
	userRepo persistent.UserRepository
	covers   CoverStorage
	logger   *logger.Logger
}

func NewWorkUseCase(
	workRepo persistent.WorkRepository,
	userRepo persistent.UserRepository,
	covers CoverStorage,
	logger *logger.Logger,
) WorkUseCase {
	return &workUseCase{
		workRepo: workRepo,
		userRepo: userRepo,
		covers:   covers,
		logger:   logger,
	}
}

// List returns the user's library ordered by status rank (to explore,
// in progress, finished, unknown) and then title, case-insensitively.
func (uc *workUseCase) List(userID string) ([]*entity.WorkSummary, error) {
	works, err := uc.workRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(works, func(i, j int) bool {
		ri, rj := entity.StatusRank(works[i].Status), entity.StatusRank(works[j].Status)
		if ri != rj {
			return ri < rj
		}
		return strings.ToLower(works[i].Title) < strings.ToLower(works[j].Title)
	})

	summaries := make([]*entity.WorkSummary, len(works))
	for i, w := range works {
		summaries[i] = w.Summary()
	}
	return summaries, nil
}

func (uc *workUseCase) Get(userID, workID string) (*entity.Work, error) {
	work, err := uc.workRepo.GetOwned(userID, workID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}
	return work, nil
}

func (uc *workUseCase) Create(userID string, in WorkInput) (*entity.Work, error) {
	if _, err := uc.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := validateWorkInput(&in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	work := &entity.Work{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyWorkInput(work, in)

	if err := uc.workRepo.Create(work); err != nil {
		uc.logger.Error("Failed to create work: %v", err)
		return nil, err
	}
	return work, nil
}

func (uc *workUseCase) Update(userID, workID string, in WorkInput) (*entity.Work, error) {
	work, err := uc.workRepo.GetOwned(userID, workID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}

	if err := validateWorkInput(&in); err != nil {
		return nil, err
	}

	applyWorkInput(work, in)
	work.UpdatedAt = time.Now().UTC()

	if err := uc.workRepo.Update(work); err != nil {
		return nil, err
	}
	return work, nil
}

func (uc *workUseCase) Delete(userID, workID string) error {
	if err := uc.workRepo.Delete(userID, workID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkNotFound
		}
		return err
	}
	return nil
}

func (uc *workUseCase) UploadCover(userID, workID string, file io.Reader, fileKey, contentType string) (*entity.Work, error) {
	work, err := uc.workRepo.GetOwned(userID, workID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}

	coverURL, err := uc.covers.UploadFile(fileKey, file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload cover: %v", err)
		return nil, err
	}

	work.CoverURL = coverURL
	work.UpdatedAt = time.Now().UTC()
	if err := uc.workRepo.Update(work); err != nil {
		return nil, err
	}
	return work, nil
}

// validateWorkInput checks fields and fills defaults in place.
func validateWorkInput(in *WorkInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return NewValidationError("Title is required").WithField("title", "must not be blank")
	}
	if in.Type == "" {
		in.Type = entity.WorkTypeBook
	} else if !entity.ValidWorkType(in.Type) {
		return NewValidationError("Invalid work type").WithField("type", "must be one of BOOK, MOVIE, GAME, OTHER")
	}
	if in.Status == "" {
		in.Status = entity.StatusToExplore
	} else if !entity.ValidWorkStatus(in.Status) {
		return NewValidationError("Invalid work status").WithField("status", "must be one of TO_EXPLORE, IN_PROGRESS, FINISHED")
	}
	if in.TotalUnits != nil && (*in.TotalUnits < 1 || *in.TotalUnits > 1_000_000) {
		return NewValidationError("Total units out of range").WithField("totalUnits", "must be between 1 and 1000000")
	}
	return nil
}

func applyWorkInput(work *entity.Work, in WorkInput) {
	work.Title = strings.TrimSpace(in.Title)
	work.Type = in.Type
	work.Creator = in.Creator
	work.Genre = in.Genre
	work.Status = in.Status
	work.TotalUnits = in.TotalUnits
	work.CoverURL = in.CoverURL
	work.StartedAt = in.StartedAt
	work.FinishedAt = in.FinishedAt
}
