package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farmtotable-be/internal/auth"
	"farmtotable-be/internal/metrics"
	"farmtotable-be/internal/middleware"
)

// Deps collects everything the router needs wired in.
type Deps struct {
	Products ProductAPI
	Users    UserAPI
	Carts    CartAPI
	Orders   OrderAPI
	Tokens   *auth.Manager
	Registry *metrics.Registry
	AppEnv   string
}

// NewRouter assembles the gin engine: middleware chain first, then the
// REST surface under /api.
func NewRouter(deps Deps) *gin.Engine {
	if deps.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(deps.Registry))
	r.Use(middleware.Auth(deps.Tokens))
	r.Use(middleware.RateLimit())

	requireAuth := middleware.RequireAuth(deps.Registry)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":          "ok",
			"uptime":          deps.Registry.Uptime().String(),
			"requests_served": deps.Registry.RequestsServed.Load(),
			"orders_placed":   deps.Registry.OrdersPlaced.Load(),
			"auth_failures":   deps.Registry.AuthFailures.Load(),
		})
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/products", deps.Products.ListProducts)
		apiGroup.POST("/products", deps.Products.AddProduct)
		apiGroup.PUT("/products/:productId", deps.Products.UpdateProduct)
		apiGroup.DELETE("/products/:productId", deps.Products.RemoveProduct)

		apiGroup.POST("/register", deps.Users.Register)
		apiGroup.POST("/login", deps.Users.Login)
		apiGroup.GET("/users", deps.Users.ListUsers)
		apiGroup.GET("/users/:userId", deps.Users.GetUserByID)
		apiGroup.PUT("/users/:userId", deps.Users.UpdateProfile)
		apiGroup.PUT("/users/:userId/password", requireAuth, deps.Users.ChangePassword)
		apiGroup.GET("/userdata", requireAuth, deps.Users.CurrentUser)

		apiGroup.GET("/cart", deps.Carts.ListCart)
		apiGroup.POST("/cart", deps.Carts.AddToCart)
		apiGroup.PUT("/cart/:productId", requireAuth, deps.Carts.UpdateQuantity)
		apiGroup.DELETE("/cart/:productId", requireAuth, deps.Carts.RemoveFromCart)

		apiGroup.POST("/orders", requireAuth, deps.Orders.PlaceOrder)
		apiGroup.GET("/orders", deps.Orders.ListOrders)
		apiGroup.PUT("/orders/:transactionId", deps.Orders.UpdateStatus)
		apiGroup.DELETE("/orders/:transactionId", deps.Orders.RemoveOrder)

		apiGroup.GET("/sales-report", deps.Orders.SalesReport)
	}

	return r
}
