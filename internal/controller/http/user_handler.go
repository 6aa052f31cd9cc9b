package http

import (
	"net/http"

	"shelf-life/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
}

func NewUserHandler(userUseCase usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

// Me godoc
// @Summary      Current user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.Profile
// @Failure      401  {object}  ErrorBody
// @Failure      404  {object}  ErrorBody
// @Router       /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := h.userUseCase.GetProfile(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DeleteMe godoc
// @Summary      Delete the current account
// @Description  Removes the account with all of its works, sessions and reviews
// @Tags         users
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  ErrorBody
// @Failure      404  {object}  ErrorBody
// @Router       /users/me [delete]
func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.userUseCase.Delete(userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
