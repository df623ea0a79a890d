package httpserver

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"raynott-storefront/internal/admin"
	"raynott-storefront/internal/catalog"
	"raynott-storefront/internal/domain"
	"raynott-storefront/internal/session"
	"raynott-storefront/internal/upstream"
)

type upstreamPinger interface {
	Ping(ctx context.Context) error
}

type authClient interface {
	Login(ctx context.Context, email, password string) (*upstream.Credentials, error)
	Register(ctx context.Context, username, email, password string) (*upstream.Credentials, error)
	Profile(ctx context.Context, token string) (*domain.User, error)
}

// Deps carries the wired services the handlers depend on.
type Deps struct {
	Sessions         *session.Manager
	Catalog          *catalog.Service
	Admin            *admin.Service
	Auth             authClient
	Pinger           upstreamPinger
	CORSAllowOrigins []string
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *zap.Logger, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	corsCfg := cors.DefaultConfig()
	if len(deps.CORSAllowOrigins) == 1 && deps.CORSAllowOrigins[0] == "*" {
		// Wildcard cannot carry credentials; the session cookie only
		// flows same-origin in this mode (see config.Config).
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = deps.CORSAllowOrigins
		corsCfg.AllowCredentials = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Pinger))

	api := router.Group("/api")
	api.Use(sessionMiddleware(deps.Sessions))

	api.GET("/products", listProductsHandler(deps.Catalog))
	api.GET("/products/featured", featuredProductsHandler(deps.Catalog))
	api.GET("/products/:id", getProductHandler(deps.Catalog))

	api.GET("/cart", getCartHandler())
	api.POST("/cart/items", addCartItemHandler(deps.Catalog))
	api.PATCH("/cart/items/:productId", updateCartItemHandler())
	api.DELETE("/cart/items/:productId", removeCartItemHandler())
	api.DELETE("/cart", clearCartHandler())
	api.PUT("/cart/currency", setCurrencyHandler())

	api.POST("/checkout", checkoutHandler(logger))
	api.GET("/checkout/status", checkoutStatusHandler())

	api.POST("/auth/login", loginHandler(deps.Auth))
	api.POST("/auth/register", registerHandler(deps.Auth))
	api.POST("/auth/logout", logoutHandler())
	api.GET("/auth/profile", profileHandler(deps.Auth))

	adm := api.Group("/admin")
	adm.Use(requireAdmin())
	adm.GET("/products", adminListProductsHandler(deps.Admin))
	adm.POST("/products", adminCreateProductHandler(deps.Admin))
	adm.PUT("/products/:id", adminUpdateProductHandler(deps.Admin))
	adm.DELETE("/products/:id", adminDeleteProductHandler(deps.Admin))
	adm.GET("/orders", adminListOrdersHandler(deps.Admin))
	adm.PUT("/orders/:id", adminOrderStatusHandler(deps.Admin))
	adm.GET("/users", adminListUsersHandler(deps.Admin))
	adm.DELETE("/users/:id", adminDeleteUserHandler(deps.Admin))
	adm.GET("/stats", adminStatsHandler(deps.Admin))

	return router, nil
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()))
	}
}
