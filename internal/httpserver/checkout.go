package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"raynott-storefront/internal/checkout"
	"raynott-storefront/internal/domain"
)

func checkoutHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var shipping domain.ShippingAddress
		if err := c.ShouldBindJSON(&shipping); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid shipping details"})
			return
		}

		sess := currentSession(c)
		res, err := sess.Checkout.Submit(c.Request.Context(), sess.Token(), sess.User(), shipping)
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrEmptyCart),
				errors.Is(err, checkout.ErrIncompleteShipping):
				c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
			case errors.Is(err, checkout.ErrAuthRequired):
				c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			case errors.Is(err, checkout.ErrSubmissionInFlight):
				c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
			default:
				logger.Warn("checkout failed", zap.String("session", sess.ID), zap.Error(err))
				c.JSON(http.StatusBadGateway, gin.H{"message": "failed to place order"})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":         "order placed successfully",
			"order":           res.Order,
			"redirectAfterMs": res.RedirectAfter.Milliseconds(),
		})
	}
}

func checkoutStatusHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		status, message := sess.Checkout.Status()
		c.JSON(http.StatusOK, gin.H{
			"status":   status,
			"message":  message,
			"terminal": status.IsTerminal(),
		})
	}
}
