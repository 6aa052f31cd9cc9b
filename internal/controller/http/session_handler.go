package http

import (
	"net/http"
	"time"

	"shelf-life/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionUseCase usecase.SessionUseCase
}

func NewSessionHandler(sessionUseCase usecase.SessionUseCase) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: sessionUseCase,
	}
}

type SessionRequest struct {
	WorkID         string     `json:"workId"`
	StartedAt      *time.Time `json:"startedAt"`
	EndedAt        *time.Time `json:"endedAt"`
	Minutes        *int       `json:"minutes"`
	UnitsCompleted *int       `json:"unitsCompleted"`
	Note           string     `json:"note" binding:"omitempty,max=500"`
}

func (r *SessionRequest) toInput() usecase.SessionInput {
	return usecase.SessionInput{
		WorkID:         r.WorkID,
		StartedAt:      r.StartedAt,
		EndedAt:        r.EndedAt,
		Minutes:        r.Minutes,
		UnitsCompleted: r.UnitsCompleted,
		Note:           r.Note,
	}
}

// List godoc
// @Summary      List sessions
// @Description  All of the current user's sessions, newest first; ?workId narrows to one work
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        workId query string false "Filter by work"
// @Success      200  {array}   entity.Session
// @Failure      401  {object}  ErrorBody
// @Failure      404  {object}  ErrorBody
// @Router       /sessions [get]
func (h *SessionHandler) List(c *gin.Context) {
	userID := c.GetString("user_id")

	sessions, err := h.sessionUseCase.List(userID, c.Query("workId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// Get godoc
// @Summary      Get one session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Success      200  {object}  entity.Session
// @Failure      401  {object}  ErrorBody
// @Failure      404  {object}  ErrorBody
// @Router       /sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	userID := c.GetString("user_id")

	session, err := h.sessionUseCase.Get(userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// Create godoc
// @Summary      Log a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SessionRequest true "Session data"
// @Success      201  {object}  entity.Session
// @Failure      400  {object}  ErrorBody
// @Failure      401  {object}  ErrorBody
// @Failure      404  {object}  ErrorBody
// @Router       /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	if req.WorkID == "" {
		writeError(c, http.StatusBadRequest, "Validation failed", map[string]string{"workId": "must not be blank"})
		return
	}

	session, err := h.sessionUseCase.Create(userID, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// Update godoc
// @Summary      Update a session
// @Description  Replaces the session's fields; workId may move it to another owned work
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Param        request body SessionRequest true "Session data"
// @Success      200  {object}  entity.Session
// @Failure      400  {object}  ErrorBody
// @Failure      401  {object}  ErrorBody
// @Failure      404  {object}  ErrorBody
// @Router       /sessions/{id} [put]
func (h *SessionHandler) Update(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	session, err := h.sessionUseCase.Update(userID, c.Param("id"), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// Delete godoc
// @Summary      Delete a session
// @Tags         sessions
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Success      204
// @Failure      401  {object}  ErrorBody
// @Failure      404  {object}  ErrorBody
// @Router       /sessions/{id} [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.sessionUseCase.Delete(userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListForWork godoc
// @Summary      List a work's sessions
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Work ID"
// @Success      200  {array}   entity.Session
// @Failure      401  {object}  ErrorBody
// @Failure      404  {object}  ErrorBody
// @Router       /works/{id}/sessions [get]
func (h *SessionHandler) ListForWork(c *gin.Context) {
	userID := c.GetString("user_id")

	sessions, err := h.sessionUseCase.List(userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// CreateForWork godoc
// @Summary      Log a session against a work
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Work ID"
// @Param        request body SessionRequest true "Session data"
// @Success      201  {object}  entity.Session
// @Failure      400  {object}  ErrorBody
// @Failure      401  {object}  ErrorBody
// @Failure      404  {object}  ErrorBody
// @Router       /works/{id}/sessions [post]
func (h *SessionHandler) CreateForWork(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	// The path decides the work; a workId in the body cannot drift.
	session, err := h.sessionUseCase.CreateForWork(userID, c.Param("id"), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}
