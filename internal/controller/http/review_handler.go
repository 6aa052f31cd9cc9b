package http

import (
	"net/http"

	"shelf-life/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewUseCase usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type ReviewRequest struct {
	Rating    int    `json:"rating"`
	Title     string `json:"title" binding:"omitempty,max=255"`
	Body      string `json:"body"`
	IsPrivate bool   `json:"isPrivate"`
}

// List godoc
// @Summary      List the current user's reviews
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Review
// @Failure      401  {object}  ErrorBody
// @Router       /reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	userID := c.GetString("user_id")

	reviews, err := h.reviewUseCase.GetForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// Get godoc
// @Summary      Get one review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Review ID"
// @Success      200  {object}  entity.Review
// @Failure      401  {object}  ErrorBody
// @Failure      404  {object}  ErrorBody
// @Router       /reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	userID := c.GetString("user_id")

	review, err := h.reviewUseCase.GetByID(userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// Delete godoc
// @Summary      Delete a review
// @Tags         reviews
// @Security     BearerAuth
// @Param        id path string true "Review ID"
// @Success      204
// @Failure      401  {object}  ErrorBody
// @Failure      404  {object}  ErrorBody
// @Router       /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.reviewUseCase.Delete(userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetForWork godoc
// @Summary      Get the review for a work
// @Description  Responds 200 with null when the work has no review yet
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Work ID"
// @Success      200  {object}  entity.Review
// @Failure      401  {object}  ErrorBody
// @Router       /works/{id}/review [get]
func (h *ReviewHandler) GetForWork(c *gin.Context) {
	userID := c.GetString("user_id")

	review, found, err := h.reviewUseCase.GetForWork(userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, review)
}

// UpsertForWork godoc
// @Summary      Create or replace the review for a work
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Work ID"
// @Param        request body ReviewRequest true "Review data"
// @Success      200  {object}  entity.Review
// @Failure      400  {object}  ErrorBody
// @Failure      401  {object}  ErrorBody
// @Failure      404  {object}  ErrorBody
// @Router       /works/{id}/review [put]
func (h *ReviewHandler) UpsertForWork(c *gin.Context) {
	userID := c.GetString("user_id")

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	review, err := h.reviewUseCase.Upsert(userID, usecase.ReviewInput{
		WorkID:    c.Param("id"),
		Rating:    req.Rating,
		Title:     req.Title,
		Body:      req.Body,
		IsPrivate: req.IsPrivate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}
