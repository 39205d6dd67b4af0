package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yasminebk/beautyuniverse-backend/config"
	"github.com/yasminebk/beautyuniverse-backend/internal/app/controller"
	"github.com/yasminebk/beautyuniverse-backend/internal/cart"
	"github.com/yasminebk/beautyuniverse-backend/internal/middleware"
)

type Router struct {
	authController    *controller.AuthController
	catalogController *controller.CatalogController
	cartController    *controller.CartController
	orderController   *controller.OrderController
	uploadController  *controller.UploadController
	wsController      *controller.WSController
	authMiddleware    *middleware.AuthMiddleware
	cartManager       *cart.Manager
	config            *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	catalogController *controller.CatalogController,
	cartController *controller.CartController,
	orderController *controller.OrderController,
	uploadController *controller.UploadController,
	wsController *controller.WSController,
	authMiddleware *middleware.AuthMiddleware,
	cartManager *cart.Manager,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:    authController,
		catalogController: catalogController,
		cartController:    cartController,
		orderController:   orderController,
		uploadController:  uploadController,
		wsController:      wsController,
		authMiddleware:    authMiddleware,
		cartManager:       cartManager,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))
	router.Use(middleware.LocaleMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Beauty Universe API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
		}

		products := v1.Group("/products")
		{
			products.GET("", r.catalogController.ListProducts)
			products.GET("/best-sellers", r.catalogController.GetBestSellers)
			products.GET("/:id", r.catalogController.GetProduct)
		}

		// Guest cart and checkout ride on the cart session token
		cartSession := middleware.CartSessionMiddleware(r.cartManager, &r.config.Cart)

		cartGroup := v1.Group("/cart", cartSession)
		{
			cartGroup.GET("", r.cartController.GetCart)
			cartGroup.DELETE("", r.cartController.ClearCart)
			cartGroup.POST("/items", r.cartController.AddItem)
			cartGroup.PUT("/items/:id", r.cartController.UpdateQuantity)
			cartGroup.DELETE("/items/:id", r.cartController.RemoveItem)
			cartGroup.PUT("/panel", r.cartController.SetPanel)
		}

		v1.POST("/checkout", cartSession, r.orderController.Checkout)

		admin := v1.Group("/admin",
			r.authMiddleware.Authenticate(),
			r.authMiddleware.RequireRole("admin"),
		)
		{
			admin.GET("/products", r.catalogController.AdminListProducts)
			admin.POST("/products", r.catalogController.CreateProduct)
			admin.PUT("/products/:id", r.catalogController.UpdateProduct)
			admin.DELETE("/products/:id", r.catalogController.DeleteProduct)

			admin.GET("/orders", r.orderController.ListOrders)
			admin.GET("/orders/export", r.orderController.ExportOrders)
			admin.GET("/orders/feed", r.wsController.OrderFeed)
			admin.GET("/orders/:id", r.orderController.GetOrder)
			admin.PUT("/orders/:id/status", r.orderController.UpdateStatus)

			admin.POST("/uploads/product-image", r.uploadController.PresignProductImage)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept-Language, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Cart-Token")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Cart-Token, Content-Language")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
