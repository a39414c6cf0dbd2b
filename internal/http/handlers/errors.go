package handlers

import (
	"net/http"

	"backend/internal/domain"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal server error"

// RespondDomainError maps domain errors to the mutation envelope: a typed
// error keeps its own message, everything else collapses to a generic 500.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case domain.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": internalErrorMessage})
	}
}
