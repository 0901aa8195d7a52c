package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/flynow/internal/domain"
	"github.com/gin-gonic/gin"
)

const unauthorisedMessage = "You are not authorised to perform this action."

// respondError translates the domain error taxonomy into the HTTP contract.
// Every error body is {"message": "..."}.
func respondError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"message": verr.Message})
	case errors.Is(err, domain.ErrUnauthorised):
		c.JSON(http.StatusUnauthorized, gin.H{"message": unauthorisedMessage})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Record not found."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
	}
}
