package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"shelf-life/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorBody is the standard error response shape.
type ErrorBody struct {
	Timestamp string            `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Path      string            `json:"path"`
	Errors    map[string]string `json:"errors,omitempty"`
}

func writeError(c *gin.Context, status int, message string, fields map[string]string) {
	c.JSON(status, ErrorBody{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      c.Request.URL.Path,
		Errors:    fields,
	})
}

// respondError translates service errors into HTTP statuses in one
// place. Anything unrecognized becomes a 500 with a generic message.
func respondError(c *gin.Context, err error) {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		writeError(c, http.StatusBadRequest, verr.Message, verr.Fields)
		return
	}

	switch {
	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrWorkNotFound),
		errors.Is(err, usecase.ErrSessionNotFound),
		errors.Is(err, usecase.ErrReviewNotFound):
		writeError(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, usecase.ErrUsernameTaken),
		errors.Is(err, usecase.ErrEmailRegistered):
		writeError(c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		writeError(c, http.StatusUnauthorized, err.Error(), nil)
	default:
		writeError(c, http.StatusInternalServerError, "Unexpected error", nil)
	}
}

// respondBindingError renders request body binding failures as a 400
// with per-field messages where the validator provides them.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[jsonFieldName(fe.Field())] = validationMessage(fe)
		}
		writeError(c, http.StatusBadRequest, "Validation failed", fields)
		return
	}
	writeError(c, http.StatusBadRequest, "Malformed request body", nil)
}

func jsonFieldName(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be blank"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}
