package controllers

import (
	"errors"
	"net/http"

	"github.com/akber360/QA-Cinema/services"
	"github.com/gin-gonic/gin"
)

// renderError maps service errors onto HTTP responses. Anything not
// recognised is a genuinely unexpected failure and gets a generic 500.
func renderError(c *gin.Context, err error) {
	var validation *services.ValidationError
	var moderation *services.ModerationError

	switch {
	case errors.Is(err, services.ErrMovieNotFound),
		errors.Is(err, services.ErrScreeningNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrPostNotFound),
		errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUnauthorized),
		errors.Is(err, services.ErrNoAccount),
		errors.Is(err, services.ErrBadCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message, "field": validation.Field})
	case errors.As(err, &moderation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": moderation.Messages})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
