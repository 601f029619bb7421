package main

import (
	"log"
	"time"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/redis"
	"storefront/internal/repository"
	"storefront/internal/services"
	"storefront/pkg/payments"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize payment gateway client
	gateway := payments.NewClient(cfg.GatewayBaseURL, cfg.GatewayKeyID, cfg.GatewayKeySecret)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	returnRepo := repository.NewOrderReturnRepository(db)
	trackingRepo := repository.NewTrackingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	shippingRepo := repository.NewShippingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	blogRepo := repository.NewBlogRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo, redisClient, time.Duration(cfg.ProductCacheTTL)*time.Second)
	categoryService := services.NewCategoryService(categoryRepo)
	cartService := services.NewCartService(redisClient, productRepo, time.Duration(cfg.GuestCartTTL)*time.Second)
	checkoutService := services.NewCheckoutService(orderRepo, productRepo, shippingRepo, paymentRepo, gateway)
	paymentService := services.NewPaymentService(orderRepo, paymentRepo, checkoutService, gateway, cfg.GatewayKeySecret)
	orderService := services.NewOrderService(orderRepo, paymentRepo, paymentService)
	trackingService := services.NewOrderTrackingService(orderRepo, trackingRepo)
	returnService := services.NewOrderReturnService(returnRepo, orderRepo, paymentService)
	reviewService := services.NewReviewService(reviewRepo, productRepo)
	wishlistService := services.NewWishlistService(wishlistRepo, productRepo)
	blogService := services.NewBlogService(blogRepo)
	shippingService := services.NewShippingService(shippingRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, userService, cartService)
	productHandler := handlers.NewProductHandler(productService, categoryService, reviewService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, paymentService, cartService, shippingService)
	orderHandler := handlers.NewOrderHandler(orderService, trackingService, returnService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	blogHandler := handlers.NewBlogHandler(blogService)
	adminHandler := handlers.NewAdminHandler(
		productService, categoryService, orderService, trackingService,
		returnService, reviewService, blogService, shippingService,
	)

	// Setup routes
	router := gin.Default()
	router.Use(middleware.CORS(cfg.FrontendOrigin))
	router.Use(middleware.RateLimit(redisClient, time.Duration(cfg.RateLimitWindow)*time.Second, int64(cfg.RateLimitMax)))

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// Catalog (public)
		api.GET("/products", productHandler.ListProducts)
		api.GET("/products/:id", productHandler.GetProduct)
		api.GET("/products/:id/reviews", productHandler.GetProductReviews)
		api.GET("/categories", productHandler.ListCategories)
		api.GET("/categories/:slug", productHandler.GetCategory)

		// Blog (public)
		api.GET("/blog", blogHandler.ListPosts)
		api.GET("/blog/:slug", blogHandler.GetPost)

		// Shipping methods (public)
		api.GET("/shipping-methods", checkoutHandler.ListShippingMethods)

		// Cart (guest or authenticated)
		cart := api.Group("/cart", middleware.OptionalAuth(authService))
		{
			cart.POST("/guest", cartHandler.CreateGuestCart)
			cart.GET("", cartHandler.GetCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:product_id", cartHandler.UpdateItem)
			cart.DELETE("/items/:product_id", cartHandler.RemoveItem)
			cart.DELETE("", cartHandler.ClearCart)
		}

		// Authenticated routes
		authed := api.Group("", middleware.RequireAuth(authService))
		{
			authed.GET("/users/me", authHandler.GetProfile)
			authed.PUT("/users/me", authHandler.UpdateProfile)
			authed.GET("/users/me/addresses", authHandler.ListAddresses)
			authed.POST("/users/me/addresses", authHandler.CreateAddress)
			authed.PUT("/users/me/addresses/:id", authHandler.UpdateAddress)
			authed.DELETE("/users/me/addresses/:id", authHandler.DeleteAddress)

			authed.POST("/checkout", checkoutHandler.InitializeCheckout)
			authed.POST("/checkout/verify-payment", checkoutHandler.VerifyPayment)

			authed.GET("/orders", orderHandler.ListMyOrders)
			authed.GET("/orders/:id", orderHandler.GetOrder)
			authed.POST("/orders/:id/cancel", orderHandler.CancelOrder)
			authed.GET("/orders/:id/timeline", orderHandler.GetTimeline)
			authed.GET("/orders/:id/tracking", orderHandler.TrackOrder)
			authed.POST("/returns", orderHandler.RequestReturn)
			authed.GET("/returns", orderHandler.ListMyReturns)

			authed.POST("/reviews", reviewHandler.CreateReview)

			authed.GET("/wishlist", wishlistHandler.GetWishlist)
			authed.POST("/wishlist", wishlistHandler.AddToWishlist)
			authed.DELETE("/wishlist/:product_id", wishlistHandler.RemoveFromWishlist)
		}

		// Admin routes
		admin := api.Group("/admin", middleware.RequireAuth(authService), middleware.RequireAdmin())
		{
			admin.POST("/products", adminHandler.CreateProduct)
			admin.PUT("/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)

			admin.POST("/categories", adminHandler.CreateCategory)
			admin.DELETE("/categories/:id", adminHandler.DeleteCategory)

			admin.GET("/orders", adminHandler.ListOrders)
			admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
			admin.PUT("/orders/:id/tracking", adminHandler.SetTracking)

			admin.GET("/returns", adminHandler.ListReturns)
			admin.PUT("/returns/:id", adminHandler.UpdateReturnStatus)

			admin.GET("/reviews/pending", adminHandler.ListPendingReviews)
			admin.PUT("/reviews/:id/approve", adminHandler.ApproveReview)
			admin.DELETE("/reviews/:id", adminHandler.DeleteReview)

			admin.POST("/blog", adminHandler.CreatePost)
			admin.PUT("/blog/:id", adminHandler.UpdatePost)
			admin.PUT("/blog/:id/publish", adminHandler.PublishPost)
			admin.DELETE("/blog/:id", adminHandler.DeletePost)

			admin.GET("/shipping-methods", adminHandler.ListShippingMethods)
			admin.POST("/shipping-methods", adminHandler.CreateShippingMethod)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
