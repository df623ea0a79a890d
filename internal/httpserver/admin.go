package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"raynott-storefront/internal/admin"
	"raynott-storefront/internal/domain"
)

func adminListProductsHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.Products(c.Request.Context())
		if err != nil {
			respondError(c, err, "failed to load products")
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func adminCreateProductHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product domain.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product"})
			return
		}
		created, err := svc.CreateProduct(c.Request.Context(), currentSession(c).Token(), product)
		if err != nil {
			respondError(c, err, "failed to create product")
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func adminUpdateProductHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product domain.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product"})
			return
		}
		updated, err := svc.UpdateProduct(c.Request.Context(), currentSession(c).Token(), c.Param("id"), product)
		if err != nil {
			respondError(c, err, "failed to update product")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func adminDeleteProductHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteProduct(c.Request.Context(), currentSession(c).Token(), c.Param("id")); err != nil {
			respondError(c, err, "failed to delete product")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}

func adminListOrdersHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.Orders(c.Request.Context(), currentSession(c).Token())
		if err != nil {
			respondError(c, err, "failed to load orders")
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

type orderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func adminOrderStatusHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req orderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "status required"})
			return
		}
		order, err := svc.SetOrderStatus(c.Request.Context(), currentSession(c).Token(), c.Param("id"), req.Status)
		if err != nil {
			respondError(c, err, "failed to update order")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func adminListUsersHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.Users(c.Request.Context(), currentSession(c).Token())
		if err != nil {
			respondError(c, err, "failed to load users")
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

func adminDeleteUserHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteUser(c.Request.Context(), currentSession(c).Token(), c.Param("id")); err != nil {
			respondError(c, err, "failed to delete user")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
	}
}

func adminStatsHandler(svc *admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Stats(c.Request.Context(), currentSession(c).Token())
		if err != nil {
			respondError(c, err, "failed to load stats")
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
