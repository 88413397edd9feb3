package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelbooking/internal/domain"
)

const internalMessage = "Internal server error"

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"status": "success",
		"data":   data,
	})
}

// WithMessage is Success plus a human-readable confirmation.
func WithMessage(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, gin.H{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func Paginated(c *gin.Context, data interface{}, p Pagination) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"data":       data,
		"pagination": p,
	})
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"status":  "error",
		"message": message,
	})
}

func ValidationError(c *gin.Context, errs []domain.FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "Validation failed",
		"errors":  errs,
	})
}

// FromError maps the domain error taxonomy onto status codes. Anything it
// does not recognise is attached to the context and reported as a generic 500.
func FromError(c *gin.Context, err error, fallback string) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		ValidationError(c, ve.Errors)
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		Error(c, http.StatusNotFound, domain.PublicMessage(err, fallback))
	case errors.Is(err, domain.ErrUnavailable),
		errors.Is(err, domain.ErrInvalidStatusTransition),
		errors.Is(err, domain.ErrValidation):
		Error(c, http.StatusBadRequest, domain.PublicMessage(err, fallback))
	case errors.Is(err, domain.ErrConflict):
		Error(c, http.StatusConflict, domain.PublicMessage(err, fallback))
	case errors.Is(err, domain.ErrUnauthorized):
		Error(c, http.StatusUnauthorized, domain.PublicMessage(err, fallback))
	default:
		// Logged by the error middleware.
		_ = c.Error(err)
		Error(c, http.StatusInternalServerError, internalMessage)
	}
}
