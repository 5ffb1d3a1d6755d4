package main

import (
	"context"
	"log"
	"os"

	"easygames/config"
	"easygames/database"
	_ "easygames/docs"
	"easygames/middleware"
	"easygames/routes"

	"github.com/gin-gonic/gin"
)

// @title EasyGames API
// @version 1.0
// @description Storefront API for the EasyGames shop: catalog, cart, checkout and admin.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	config.ConnectRedis()
	defer config.CloseRedis()

	if err := database.Seed(context.Background()); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	if err := os.MkdirAll(config.AppConfig.UploadDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
