package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/HailNail/MindArc/internal/auth"
	"github.com/HailNail/MindArc/internal/delivery/http/handler"
	"github.com/HailNail/MindArc/internal/delivery/http/middleware"
	"github.com/HailNail/MindArc/internal/domain/repositories"
	"github.com/HailNail/MindArc/internal/infrastructure/logger"
	"github.com/HailNail/MindArc/internal/usecase"
)

// Deps bundles everything the API surface needs.
type Deps struct {
	Logger  *logger.Logger
	Tokens  *auth.TokenManager
	Users   repositories.UserRepository
	Auth    *usecase.AuthUseCase
	User    *usecase.UserUseCase
	Catalog *usecase.CatalogUseCase
	Orders  *usecase.OrderUseCase
	Sales   *usecase.SalesUseCase
	Blobs   usecase.BlobStore

	StripePublishableKey string
	AllowedOrigins       []string
	CookieSecure         bool
}

func NewRouter(deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(deps.Logger))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     deps.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	requireAuth := middleware.RequireAuth(deps.Tokens, deps.Users)
	requireAdmin := middleware.RequireAdmin()

	authHandler := handler.NewAuthHandler(deps.Auth, deps.User, deps.Tokens, deps.CookieSecure)
	userHandler := handler.NewUserHandler(deps.User)
	categoryHandler := handler.NewCategoryHandler(deps.Catalog)
	productHandler := handler.NewProductHandler(deps.Catalog)
	orderHandler := handler.NewOrderHandler(deps.Orders)
	salesHandler := handler.NewSalesHandler(deps.Sales)
	uploadHandler := handler.NewUploadHandler(deps.Blobs)

	api := router.Group("/api")

	users := api.Group("/users")
	{
		users.POST("", authHandler.Register)
		users.POST("/auth", authHandler.Login)
		users.POST("/google", authHandler.LoginWithGoogle)
		users.POST("/logout", requireAuth, authHandler.Logout)
		users.GET("/profile", requireAuth, authHandler.GetProfile)
		users.PUT("/profile", requireAuth, authHandler.UpdateProfile)
		users.GET("", requireAuth, requireAdmin, userHandler.List)
		users.PUT("/:id", requireAuth, requireAdmin, userHandler.Update)
		users.DELETE("/:id", requireAuth, requireAdmin, userHandler.Delete)
	}

	category := api.Group("/category")
	{
		category.GET("/categories", categoryHandler.List)
		category.GET("/:id", categoryHandler.Get)
		category.POST("", requireAuth, requireAdmin, categoryHandler.Create)
		category.PUT("/:id", requireAuth, requireAdmin, categoryHandler.Update)
		category.DELETE("/:id", requireAuth, requireAdmin, categoryHandler.Delete)
	}

	products := api.Group("/products")
	{
		products.GET("", productHandler.Search)
		products.GET("/allproducts", requireAuth, requireAdmin, productHandler.ListAll)
		products.GET("/top", productHandler.Top)
		products.GET("/new", productHandler.New)
		products.POST("/filtered", productHandler.Filter)
		products.GET("/:id", productHandler.Get)
		products.POST("", requireAuth, requireAdmin, productHandler.Create)
		products.PUT("/:id", requireAuth, requireAdmin, productHandler.Update)
		products.DELETE("/:id", requireAuth, requireAdmin, productHandler.Delete)
		products.POST("/:id/reviews", requireAuth, productHandler.AddReview)
	}

	api.POST("/upload", requireAuth, requireAdmin, uploadHandler.Upload)

	orders := api.Group("/orders")
	{
		orders.POST("", requireAuth, orderHandler.Create)
		orders.GET("", requireAuth, requireAdmin, orderHandler.ListAll)
		orders.POST("/create-payment-intent", requireAuth, orderHandler.CreatePaymentIntent)
		orders.GET("/mine", requireAuth, orderHandler.ListMine)
		orders.GET("/total-orders", orderHandler.CountTotal)
		orders.GET("/:id", requireAuth, orderHandler.Get)
		orders.PUT("/:id/pay", requireAuth, orderHandler.Pay)
		orders.PUT("/:id/deliver", requireAuth, requireAdmin, orderHandler.Deliver)
	}

	stripe := api.Group("/stripe")
	{
		stripe.GET("/sales", salesHandler.TotalSales)
		stripe.GET("/sales-by-date", salesHandler.SalesByDate)
	}

	api.GET("/config/stripe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"publishableKey": deps.StripePublishableKey})
	})

	return router
}

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"status", status,
				"duration", time.Since(start))
		} else {
			log.Info("request completed",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"status", status,
				"duration", time.Since(start))
		}
	}
}
