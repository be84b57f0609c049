package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HailNail/MindArc/internal/usecase"
)

// mapError translates usecase errors to the API's single error
// contract: {"error": string} with an honest status code.
func mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmptyItems),
		errors.Is(err, usecase.ErrInvalidItem),
		errors.Is(err, usecase.ErrMissingFields),
		errors.Is(err, usecase.ErrNameRequired),
		errors.Is(err, usecase.ErrInvalidRating),
		errors.Is(err, usecase.ErrEmailTaken),
		errors.Is(err, usecase.ErrCategoryExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrOrderNotFound),
		errors.Is(err, usecase.ErrProductNotFound),
		errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrCategoryInUse),
		errors.Is(err, usecase.ErrAdminUndeletable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
