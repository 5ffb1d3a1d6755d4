package routes

import (
	"log"
	"time"

	"easygames/config"
	"easygames/controllers"
	"easygames/middleware"
	"easygames/repositories"
	"easygames/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const cartTTL = 7 * 24 * time.Hour

func SetupRoutes(router *gin.Engine) {
	var cartStore repositories.CartStore
	if config.RedisClient != nil {
		cartStore = repositories.NewRedisCartStore(config.RedisClient, cartTTL)
	} else {
		log.Println("Redis unavailable, carts held in process memory")
		cartStore = repositories.NewMemoryCartStore()
	}

	mailer, err := services.NewEmailService()
	if err != nil {
		log.Println("SMTP not configured, order confirmation emails disabled:", err)
		mailer = nil
	}

	catalogService := services.NewCatalogService(config.RedisClient)
	cartService := services.NewCartService(repositories.NewStockRepository(), cartStore)

	authCtrl := controllers.NewAuthController(services.NewAuthService())
	catalogCtrl := controllers.NewCatalogController(catalogService)
	cartCtrl := controllers.NewCartController(cartService, catalogService, mailer)
	subscriberCtrl := controllers.NewSubscriberController(services.NewSubscriberService())
	stockItemCtrl := controllers.NewStockItemController(services.NewStockService(catalogService))
	categoryCtrl := controllers.NewCategoryController(catalogService)
	userCtrl := controllers.NewUserController(services.NewUserService())
	dashboardCtrl := controllers.NewDashboardController(services.NewDashboardService())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	router.GET("/home", catalogCtrl.Home)
	router.GET("/categories", catalogCtrl.GetAllCategories)
	router.GET("/stock-items", catalogCtrl.GetAllStockItems)
	router.GET("/stock-items/:id", catalogCtrl.GetStockItemByID)

	router.POST("/subscribe", subscriberCtrl.Subscribe)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.PATCH("/auth/profile", authCtrl.UpdateProfile)
		auth.POST("/auth/change-password", authCtrl.ChangePassword)
	}

	cart := router.Group("/cart")
	cart.Use(middleware.SessionMiddleware(), middleware.AuthMiddleware())
	{
		cart.GET("", cartCtrl.GetCart)
		cart.POST("/items", cartCtrl.AddToCart)
		cart.PATCH("/items/:id", cartCtrl.UpdateCartLine)
		cart.DELETE("/items/:id", cartCtrl.RemoveFromCart)
		cart.GET("/checkout-availability", cartCtrl.CanCheckout)
		cart.POST("/checkout", cartCtrl.Checkout)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", dashboardCtrl.GetDashboard)

		admin.GET("/users", userCtrl.GetAllUsers)
		admin.GET("/users/:id", userCtrl.GetUserByID)
		admin.POST("/users", userCtrl.CreateUser)
		admin.PATCH("/users/:id", userCtrl.UpdateUser)
		admin.DELETE("/users/:id", userCtrl.DeleteUser)

		admin.POST("/stock-items", stockItemCtrl.CreateStockItem)
		admin.PATCH("/stock-items/:id", stockItemCtrl.UpdateStockItem)
		admin.DELETE("/stock-items/:id", stockItemCtrl.DeleteStockItem)

		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PATCH("/categories/:id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", categoryCtrl.DeleteCategory)

		admin.GET("/subscribers", subscriberCtrl.GetAllSubscribers)
		admin.POST("/subscribers", subscriberCtrl.CreateSubscriber)
		admin.DELETE("/subscribers/:id", subscriberCtrl.DeleteSubscriber)
	}

	router.Static("/uploads", "./uploads")
}
