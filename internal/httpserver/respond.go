package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"raynott-storefront/internal/domain"
)

// respondError maps domain sentinel errors to HTTP statuses. Upstream
// detail is never echoed to clients; handlers pass their own message.
func respondError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
	case errors.Is(err, domain.ErrUpstream):
		c.JSON(http.StatusBadGateway, gin.H{"message": message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": message})
	}
}
