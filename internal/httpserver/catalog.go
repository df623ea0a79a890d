package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"raynott-storefront/internal/catalog"
)

func listProductsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context(), c.Query("category"), c.Query("search"))
		if err != nil {
			respondError(c, err, "failed to load products")
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func featuredProductsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.Featured(c.Request.Context())
		if err != nil {
			respondError(c, err, "failed to load featured products")
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func getProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, "failed to load product")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
