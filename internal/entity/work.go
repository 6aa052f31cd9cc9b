package entity

import "time"

type WorkType string

const (
	WorkTypeBook  WorkType = "BOOK"
	WorkTypeMovie WorkType = "MOVIE"
	WorkTypeGame  WorkType = "GAME"
	WorkTypeOther WorkType = "OTHER"
)

type WorkStatus string

const (
	StatusToExplore  WorkStatus = "TO_EXPLORE"
	StatusInProgress WorkStatus = "IN_PROGRESS"
	StatusFinished   WorkStatus = "FINISHED"
)

// StatusRank orders statuses for library listings: things still to
// explore first, finished things last, unknown values after everything.
func StatusRank(s WorkStatus) int {
	switch s {
	case StatusToExplore:
		return 0
	case StatusInProgress:
		return 1
	case StatusFinished:
		return 2
	default:
		return 3
	}
}

func ValidWorkType(t WorkType) bool {
	switch t {
	case WorkTypeBook, WorkTypeMovie, WorkTypeGame, WorkTypeOther:
		return true
	}
	return false
}

func ValidWorkStatus(s WorkStatus) bool {
	switch s {
	case StatusToExplore, StatusInProgress, StatusFinished:
		return true
	}
	return false
}

type Work struct {
	ID         string     `json:"id"`
	UserID     string     `json:"-"`
	Title      string     `json:"title"`
	Type       WorkType   `json:"type"`
	Creator    string     `json:"creator,omitempty"`
	Genre      string     `json:"genre,omitempty"`
	Status     WorkStatus `json:"status"`
	TotalUnits *int       `json:"totalUnits,omitempty"`
	CoverURL   string     `json:"coverUrl,omitempty"`
	StartedAt  *time.Time `json:"startedAt,omitempty"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// WorkSummary is the list-view shape of a work.
type WorkSummary struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Creator string     `json:"creator,omitempty"`
	Type    WorkType   `json:"type"`
	Genre   string     `json:"genre,omitempty"`
	Status  WorkStatus `json:"status"`
}

func (w *Work) Summary() *WorkSummary {
	return &WorkSummary{
		ID:      w.ID,
		Title:   w.Title,
		Creator: w.Creator,
		Type:    w.Type,
		Genre:   w.Genre,
		Status:  w.Status,
	}
}
