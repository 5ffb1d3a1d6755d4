package api

import (
	"context"
	"log"
	"net/http"
	"sync"

	"easygames/config"
	"easygames/database"
	"easygames/middleware"
	"easygames/routes"

	"github.com/gin-gonic/gin"
)

var (
	router *gin.Engine
	once   sync.Once
)

// initApp builds the router once per serverless instance.
func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		config.ConnectDB()
		config.ConnectRedis()

		if err := database.Seed(context.Background()); err != nil {
			log.Printf("Seed failed: %v", err)
		}

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
