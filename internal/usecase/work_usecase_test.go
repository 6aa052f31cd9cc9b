package usecase

import (
	"io"
	"strings"
	"testing"

	"shelf-life/internal/entity"
	"shelf-life/internal/repo/persistent"
	"shelf-life/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockWorkRepository is a mock implementation of WorkRepository
type MockWorkRepository struct {
	mock.Mock
}

func (m *MockWorkRepository) Create(work *entity.Work) error {
	args := m.Called(work)
	return args.Error(0)
}

func (m *MockWorkRepository) GetOwned(userID, workID string) (*entity.Work, error) {
	args := m.Called(userID, workID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Work), args.Error(1)
}

func (m *MockWorkRepository) ListByUser(userID string) ([]*entity.Work, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Work), args.Error(1)
}

func (m *MockWorkRepository) Update(work *entity.Work) error {
	args := m.Called(work)
	return args.Error(0)
}

func (m *MockWorkRepository) Delete(userID, workID string) error {
	args := m.Called(userID, workID)
	return args.Error(0)
}

var _ persistent.WorkRepository = (*MockWorkRepository)(nil)

// MockCoverStorage is a mock implementation of CoverStorage
type MockCoverStorage struct {
	mock.Mock
}

func (m *MockCoverStorage) UploadFile(key string, file io.Reader, contentType string) (string, error) {
	args := m.Called(key, file, contentType)
	return args.String(0), args.Error(1)
}

var _ CoverStorage = (*MockCoverStorage)(nil)

func newWorkUseCase(workRepo *MockWorkRepository, userRepo *MockUserRepository, covers *MockCoverStorage) WorkUseCase {
	return NewWorkUseCase(workRepo, userRepo, covers, logger.New())
}

func existingUser(id string) *entity.User {
	return &entity.User{ID: id, Username: "alice", Email: "alice@example.com"}
}

func TestCreateWork_Defaults(t *testing.T) {
	mockWorks := new(MockWorkRepository)
	mockUsers := new(MockUserRepository)
	uc := newWorkUseCase(mockWorks, mockUsers, new(MockCoverStorage))

	mockUsers.On("GetByID", "user-123").Return(existingUser("user-123"), nil)
	mockWorks.On("Create", mock.AnythingOfType("*entity.Work")).Return(nil)

	work, err := uc.Create("user-123", WorkInput{Title: "  Dune  "})

	assert.NoError(t, err)
	assert.Equal(t, "Dune", work.Title)
	assert.Equal(t, entity.WorkTypeBook, work.Type)
	assert.Equal(t, entity.StatusToExplore, work.Status)
	assert.Equal(t, "user-123", work.UserID)
	assert.False(t, work.CreatedAt.IsZero())
	mockWorks.AssertExpectations(t)
}

func TestCreateWork_InvalidType(t *testing.T) {
	mockWorks := new(MockWorkRepository)
	mockUsers := new(MockUserRepository)
	uc := newWorkUseCase(mockWorks, mockUsers, new(MockCoverStorage))

	mockUsers.On("GetByID", "user-123").Return(existingUser("user-123"), nil)

	work, err := uc.Create("user-123", WorkInput{Title: "Dune", Type: "PODCAST"})

	assert.Nil(t, work)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "type")
	mockWorks.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateWork_TotalUnitsOutOfRange(t *testing.T) {
	mockWorks := new(MockWorkRepository)
	mockUsers := new(MockUserRepository)
	uc := newWorkUseCase(mockWorks, mockUsers, new(MockCoverStorage))

	mockUsers.On("GetByID", "user-123").Return(existingUser("user-123"), nil)

	zero := 0
	work, err := uc.Create("user-123", WorkInput{Title: "Dune", TotalUnits: &zero})

	assert.Nil(t, work)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "totalUnits")
}

func TestCreateWork_UnknownUser(t *testing.T) {
	mockWorks := new(MockWorkRepository)
	mockUsers := new(MockUserRepository)
	uc := newWorkUseCase(mockWorks, mockUsers, new(MockCoverStorage))

	mockUsers.On("GetByID", "ghost").Return(nil, gorm.ErrRecordNotFound)

	work, err := uc.Create("ghost", WorkInput{Title: "Dune"})

	assert.Nil(t, work)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListWorks_Ordering(t *testing.T) {
	mockWorks := new(MockWorkRepository)
	mockUsers := new(MockUserRepository)
	uc := newWorkUseCase(mockWorks, mockUsers, new(MockCoverStorage))

	// Status rank wins over title; title is compared case-insensitively
	// within a rank.
	mockWorks.On("ListByUser", "user-123").Return([]*entity.Work{
		{ID: "w1", Title: "B", Status: entity.StatusFinished},
		{ID: "w2", Title: "C", Status: entity.StatusInProgress},
		{ID: "w3", Title: "A", Status: entity.StatusToExplore},
		{ID: "w4", Title: "a second one", Status: entity.StatusToExplore},
	}, nil)

	summaries, err := uc.List("user-123")

	assert.NoError(t, err)
	ids := make([]string, len(summaries))
	for i, s := range summaries {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{"w3", "w4", "w2", "w1"}, ids)
}

func TestGetWork_NotOwned(t *testing.T) {
	mockWorks := new(MockWorkRepository)
	mockUsers := new(MockUserRepository)
	uc := newWorkUseCase(mockWorks, mockUsers, new(MockCoverStorage))

	mockWorks.On("GetOwned", "user-456", "work-1").Return(nil, gorm.ErrRecordNotFound)

	work, err := uc.Get("user-456", "work-1")

	assert.Nil(t, work)
	assert.ErrorIs(t, err, ErrWorkNotFound)
}

func TestUpdateWork_ReplacesAllFields(t *testing.T) {
	mockWorks := new(MockWorkRepository)
	mockUsers := new(MockUserRepository)
	uc := newWorkUseCase(mockWorks, mockUsers, new(MockCoverStorage))

	pages := 300
	existing := &entity.Work{
		ID:         "work-1",
		UserID:     "user-123",
		Title:      "Old Title",
		Type:       entity.WorkTypeBook,
		Creator:    "Someone",
		Status:     entity.StatusToExplore,
		TotalUnits: &pages,
	}
	mockWorks.On("GetOwned", "user-123", "work-1").Return(existing, nil)
	mockWorks.On("Update", mock.AnythingOfType("*entity.Work")).Return(nil)

	work, err := uc.Update("user-123", "work-1", WorkInput{
		Title:  "New Title",
		Status: entity.StatusFinished,
	})

	assert.NoError(t, err)
	assert.Equal(t, "New Title", work.Title)
	assert.Equal(t, entity.StatusFinished, work.Status)
	// Omitted fields are cleared, not kept.
	assert.Empty(t, work.Creator)
	assert.Nil(t, work.TotalUnits)
	mockWorks.AssertExpectations(t)
}

func TestDeleteWork_NotFound(t *testing.T) {
	mockWorks := new(MockWorkRepository)
	mockUsers := new(MockUserRepository)
	uc := newWorkUseCase(mockWorks, mockUsers, new(MockCoverStorage))

	mockWorks.On("Delete", "user-123", "missing").Return(gorm.ErrRecordNotFound)

	err := uc.Delete("user-123", "missing")

	assert.ErrorIs(t, err, ErrWorkNotFound)
}

func TestUploadCover_Success(t *testing.T) {
	mockWorks := new(MockWorkRepository)
	mockUsers := new(MockUserRepository)
	mockCovers := new(MockCoverStorage)
	uc := newWorkUseCase(mockWorks, mockUsers, mockCovers)

	existing := &entity.Work{ID: "work-1", UserID: "user-123", Title: "Dune"}
	file := strings.NewReader("fake image bytes")

	mockWorks.On("GetOwned", "user-123", "work-1").Return(existing, nil)
	mockCovers.On("UploadFile", "covers/work-1/abc.jpg", file, "image/jpeg").
		Return("http://cdn.example.com/covers/work-1/abc.jpg", nil)
	mockWorks.On("Update", mock.AnythingOfType("*entity.Work")).Return(nil)

	work, err := uc.UploadCover("user-123", "work-1", file, "covers/work-1/abc.jpg", "image/jpeg")

	assert.NoError(t, err)
	assert.Equal(t, "http://cdn.example.com/covers/work-1/abc.jpg", work.CoverURL)
	mockCovers.AssertExpectations(t)
}

func TestUploadCover_WorkNotFound(t *testing.T) {
	mockWorks := new(MockWorkRepository)
	mockUsers := new(MockUserRepository)
	mockCovers := new(MockCoverStorage)
	uc := newWorkUseCase(mockWorks, mockUsers, mockCovers)

	mockWorks.On("GetOwned", "user-123", "missing").Return(nil, gorm.ErrRecordNotFound)

	work, err := uc.UploadCover("user-123", "missing", strings.NewReader(""), "covers/missing/abc.jpg", "image/jpeg")

	assert.Nil(t, work)
	assert.ErrorIs(t, err, ErrWorkNotFound)
	mockCovers.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything)
}
