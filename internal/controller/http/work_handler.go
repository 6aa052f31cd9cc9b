package http

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"shelf-life/internal/entity"
	"shelf-life/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WorkHandler struct {
	workUseCase usecase.WorkUseCase
}

func NewWorkHandler(workUseCase usecase.WorkUseCase) *WorkHandler {
	return &WorkHandler{
		workUseCase: workUseCase,
	}
}

type WorkRequest struct {
	Title      string     `json:"title" binding:"required,max=255"`
	Type       string     `json:"type"`
	Creator    string     `json:"creator" binding:"omitempty,max=255"`
	Genre      string     `json:"genre" binding:"omitempty,max=100"`
	Status     string     `json:"status"`
	TotalUnits *int       `json:"totalUnits"`
	CoverURL   string     `json:"coverUrl" binding:"omitempty,max=500"`
	StartedAt  *time.Time `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt"`
}

func (r *WorkRequest) toInput() usecase.WorkInput {
	return usecase.WorkInput{
		Title:      r.Title,
		Type:       entity.WorkType(r.Type),
		Creator:    r.Creator,
		Genre:      r.Genre,
		Status:     entity.WorkStatus(r.Status),
		TotalUnits: r.TotalUnits,
		CoverURL:   r.CoverURL,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
	}
}

// List godoc
// @Summary      List the current user's works
// @Description  Ordered by status (to explore, in progress, finished), then title
// @Tags         works
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.WorkSummary
// @Failure      401  {object}  ErrorBody
// @Router       /works [get]
func (h *WorkHandler) List(c *gin.Context) {
	userID := c.GetString("user_id")

	summaries, err := h.workUseCase.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// Get godoc
// @Summary      Get one work
// @Tags         works
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Work ID"
// @Success      200  {object}  entity.Work
// @Failure      401  {object}  ErrorBody
// @Failure      404  {object}  ErrorBody
// @Router       /works/{id} [get]
func (h *WorkHandler) Get(c *gin.Context) {
	userID := c.GetString("user_id")

	work, err := h.workUseCase.Get(userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, work)
}

// Create godoc
// @Summary      Add a work to the library
// @Tags         works
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body WorkRequest true "Work data"
// @Success      201  {object}  entity.Work
// @Failure      400  {object}  ErrorBody
// @Failure      401  {object}  ErrorBody
// @Failure      404  {object}  ErrorBody
// @Router       /works [post]
func (h *WorkHandler) Create(c *gin.Context) {
	userID := c.GetString("user_id")

	var req WorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	work, err := h.workUseCase.Create(userID, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, work)
}

// Update godoc
// @Summary      Update a work
// @Description  Full replace of the work's mutable fields
// @Tags         works
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Work ID"
// @Param        request body WorkRequest true "Work data"
// @Success      200  {object}  entity.Work
// @Failure      400  {object}  ErrorBody
// @Failure      401  {object}  ErrorBody
// @Failure      404  {object}  ErrorBody
// @Router       /works/{id} [put]
func (h *WorkHandler) Update(c *gin.Context) {
	userID := c.GetString("user_id")

	var req WorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	work, err := h.workUseCase.Update(userID, c.Param("id"), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, work)
}

// Delete godoc
// @Summary      Delete a work
// @Description  Also removes the work's sessions and reviews
// @Tags         works
// @Security     BearerAuth
// @Param        id path string true "Work ID"
// @Success      204
// @Failure      401  {object}  ErrorBody
// @Failure      404  {object}  ErrorBody
// @Router       /works/{id} [delete]
func (h *WorkHandler) Delete(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.workUseCase.Delete(userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadCover godoc
// @Summary      Upload a cover image for a work
// @Tags         works
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Work ID"
// @Param        cover formData file true "Cover image file"
// @Success      200  {object}  entity.Work
// @Failure      400  {object}  ErrorBody
// @Failure      401  {object}  ErrorBody
// @Failure      404  {object}  ErrorBody
// @Router       /works/{id}/cover [post]
func (h *WorkHandler) UploadCover(c *gin.Context) {
	userID := c.GetString("user_id")
	workID := c.Param("id")

	file, err := c.FormFile("cover")
	if err != nil {
		writeError(c, http.StatusBadRequest, "Cover file is required", nil)
		return
	}

	ext := filepath.Ext(file.Filename)
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		writeError(c, http.StatusBadRequest, "Invalid image format. Only jpg, jpeg, png, gif, webp are allowed", nil)
		return
	}

	src, err := file.Open()
	if err != nil {
		writeError(c, http.StatusInternalServerError, "Failed to process file", nil)
		return
	}
	defer src.Close()

	fileKey := fmt.Sprintf("covers/%s/%s%s", workID, uuid.New().String(), ext)
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	work, err := h.workUseCase.UploadCover(userID, workID, src, fileKey, contentType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, work)
}
