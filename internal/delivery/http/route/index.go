package route

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"local-market/internal/config"
	httpHandler "local-market/internal/delivery/http/handler"
	"local-market/internal/delivery/http/middleware"
	entity "local-market/internal/domain"
	mongorepo "local-market/internal/repository/mongodb"
	repo "local-market/internal/repository/sqlite"
	service "local-market/internal/service"
)

func SetupRoute(app *gin.Engine, db *sql.DB, mongoClient *mongo.Client, cfg *config.Config) {
	// --- REPOSITORIES ---
	userRepo := repo.NewUserRepository(db)
	shopRepo := repo.NewShopRepository(db)
	productRepo := repo.NewProductRepository(db)
	orderRepo := repo.NewOrderRepository(db)
	notificationRepo := repo.NewNotificationRepository(db)
	categoryRepo := repo.NewCategoryRepository(db)
	reviewRepo := repo.NewReviewRepository(db)
	messageRepo := repo.NewMessageRepository(db)
	wishlistRepo := repo.NewWishlistRepository(db)

	// Status history trail is optional; only wired when mongo is configured.
	var historyRepo mongorepo.HistoryRepository
	if mongoClient != nil {
		historyRepo = mongorepo.NewHistoryRepository(mongoClient)
	}

	// --- SERVICES ---
	authService := service.NewAuthService(userRepo, cfg.AdminSecretKey)
	shopService := service.NewShopService(shopRepo, userRepo)
	productService := service.NewProductService(productRepo, shopRepo)
	orderService := service.NewOrderService(orderRepo, notificationRepo, historyRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	reviewService := service.NewReviewService(reviewRepo)
	messageService := service.NewMessageService(messageRepo)
	wishlistService := service.NewWishlistService(wishlistRepo)

	// --- HANDLERS ---
	authHandler := httpHandler.NewAuthHandler(authService)
	shopHandler := httpHandler.NewShopHandler(shopService)
	productHandler := httpHandler.NewProductHandler(productService)
	orderHandler := httpHandler.NewOrderHandler(orderService)
	sellerHandler := httpHandler.NewSellerHandler(shopService, productService, orderService, cfg.UploadsDir)
	notificationHandler := httpHandler.NewNotificationHandler(notificationService)
	categoryHandler := httpHandler.NewCategoryHandler(categoryService)
	adminHandler := httpHandler.NewAdminHandler(categoryService)
	reviewHandler := httpHandler.NewReviewHandler(reviewService)
	messageHandler := httpHandler.NewMessageHandler(messageService)
	wishlistHandler := httpHandler.NewWishlistHandler(wishlistService)

	app.Static("/uploads", cfg.UploadsDir)

	api := app.Group("/api")

	// --- Authentication & Profile ---
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	users := api.Group("/users", middleware.AuthRequired())
	users.GET("/profile", authHandler.Profile)
	users.PUT("/profile", authHandler.UpdateProfile)

	// --- Shops ---
	shops := api.Group("/shops")
	shops.GET("", shopHandler.ListShops)
	shops.GET("/:id", shopHandler.GetShop)
	shops.POST("", middleware.AuthRequired(), shopHandler.CreateShop)
	shops.PUT("/:id", middleware.AuthRequired(), shopHandler.UpdateShop)

	// --- Products (public catalog) ---
	products := api.Group("/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/:id", productHandler.GetProduct)
	products.POST("", middleware.AuthRequired(), productHandler.CreateProduct)

	// --- Categories ---
	categories := api.Group("/categories")
	categories.GET("", categoryHandler.ListCategories)

	// --- Orders (buyer) ---
	orders := api.Group("/orders", middleware.AuthRequired())
	orders.POST("", middleware.RoleAllowed(entity.UserTypeBuyer), orderHandler.CreateOrder)
	orders.GET("", orderHandler.ListOrders)
	orders.GET("/:id", orderHandler.GetOrder)
	orders.POST("/:id/cancel", orderHandler.CancelOrder)
	orders.POST("/:id/return", orderHandler.RequestReturn)

	// --- Seller dashboard ---
	seller := api.Group("/seller", middleware.AuthRequired(), middleware.RoleAllowed(entity.UserTypeSeller))
	seller.GET("/shop", sellerHandler.GetShop)
	seller.PUT("/shop", sellerHandler.UpdateShop)
	seller.GET("/products", sellerHandler.ListProducts)
	seller.POST("/products", sellerHandler.AddProduct)
	seller.PUT("/products/:id", sellerHandler.UpdateProduct)
	seller.DELETE("/products/:id", sellerHandler.DeleteProduct)
	seller.GET("/orders", sellerHandler.ListOrders)
	seller.PUT("/orders/:orderId/status", sellerHandler.UpdateOrderStatus)

	// --- Admin ---
	admin := api.Group("/admin", middleware.AuthRequired(), middleware.RoleAllowed(entity.UserTypeAdmin))
	admin.POST("/categories", adminHandler.CreateCategory)
	admin.GET("/categories", adminHandler.ListCategories)
	admin.PUT("/categories/:id", adminHandler.UpdateCategory)
	admin.DELETE("/categories/:id", adminHandler.DeleteCategory)

	// --- Reviews ---
	reviews := api.Group("/reviews")
	reviews.GET("/product/:productId", reviewHandler.ListProductReviews)
	reviews.GET("/user", middleware.AuthRequired(), reviewHandler.ListMyReviews)
	reviews.POST("", middleware.AuthRequired(), reviewHandler.AddReview)
	reviews.PUT("/:id", middleware.AuthRequired(), reviewHandler.EditReview)

	// --- Messages ---
	messages := api.Group("/messages", middleware.AuthRequired())
	messages.GET("/conversations", messageHandler.GetConversations)
	messages.GET("/:userId", messageHandler.GetThread)
	messages.POST("", messageHandler.SendMessage)

	// --- Wishlists ---
	wishlists := api.Group("/wishlists", middleware.AuthRequired())
	wishlists.GET("", wishlistHandler.ListWishlist)
	wishlists.POST("", wishlistHandler.AddToWishlist)
	wishlists.DELETE("/:productId", wishlistHandler.RemoveFromWishlist)

	// --- Notifications ---
	notifications := api.Group("/notifications", middleware.AuthRequired())
	notifications.GET("", notificationHandler.ListNotifications)
	notifications.GET("/unread-count", notificationHandler.UnreadCount)
	notifications.PUT("/mark-all-read", notificationHandler.MarkAllRead)
	notifications.PUT("/:id/read", notificationHandler.MarkRead)
}
