package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"raynott-storefront/internal/catalog"
	"raynott-storefront/internal/domain"
	"raynott-storefront/internal/pricing"
	"raynott-storefront/internal/session"
)

type cartLineView struct {
	Product   domain.Product `json:"product"`
	Qty       int            `json:"qty"`
	UnitPrice string         `json:"unitPrice"`
	LineTotal string         `json:"lineTotal"`
}

type cartView struct {
	Currency     domain.Currency `json:"currency"`
	Lines        []cartLineView  `json:"lines"`
	Totals       domain.Totals   `json:"totals"`
	DisplayTotal string          `json:"displayTotal"`
}

// toCartView renders the cart in the active display currency. Per-line
// and aggregate amounts come from the pricing rules; stored data is
// untouched by the currency choice.
func toCartView(sess *session.Session) cartView {
	currency := sess.Cart.Currency()
	lines := sess.Cart.Lines()
	totals := sess.Cart.Totals()

	views := make([]cartLineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, cartLineView{
			Product:   line.Product,
			Qty:       line.Quantity,
			UnitPrice: pricing.Format(pricing.UnitPrice(line.Product, currency), currency),
			LineTotal: pricing.Format(pricing.LineAmount(line, currency), currency),
		})
	}

	total := totals.ItemsPriceUSD
	if currency == domain.CurrencyINR {
		total = totals.ItemsPriceINR
	}
	return cartView{
		Currency:     currency,
		Lines:        views,
		Totals:       totals,
		DisplayTotal: pricing.Format(total, currency),
	}
}

func getCartHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, toCartView(currentSession(c)))
	}
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Qty       int    `json:"qty"`
}

func addCartItemHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "productId required"})
			return
		}
		if req.Qty == 0 {
			req.Qty = 1
		}
		product, err := svc.Get(c.Request.Context(), req.ProductID)
		if err != nil {
			respondError(c, err, "failed to load product")
			return
		}
		sess := currentSession(c)
		sess.Cart.Add(*product, req.Qty)
		c.JSON(http.StatusOK, toCartView(sess))
	}
}

type updateItemRequest struct {
	Qty int `json:"qty"`
}

func updateCartItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "qty required"})
			return
		}
		sess := currentSession(c)
		sess.Cart.SetQuantity(c.Param("productId"), req.Qty)
		c.JSON(http.StatusOK, toCartView(sess))
	}
}

func removeCartItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		sess.Cart.Remove(c.Param("productId"))
		c.JSON(http.StatusOK, toCartView(sess))
	}
}

func clearCartHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		sess.Cart.Clear()
		c.JSON(http.StatusOK, toCartView(sess))
	}
}

type setCurrencyRequest struct {
	Currency domain.Currency `json:"currency" binding:"required"`
}

func setCurrencyHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setCurrencyRequest
		if err := c.ShouldBindJSON(&req); err != nil || !req.Currency.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "currency must be USD or INR"})
			return
		}
		sess := currentSession(c)
		sess.Cart.SetCurrency(req.Currency)
		c.JSON(http.StatusOK, toCartView(sess))
	}
}
