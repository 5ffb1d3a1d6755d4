package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"easygames/config"
)

func CORSMiddleware() gin.HandlerFunc {
	// AppConfig is nil only before LoadConfig runs (some tests).
	allowedOrigins := []string{"http://localhost:5173"}
	if config.AppConfig != nil {
		allowedOrigins = config.AppConfig.AllowedOrigins
	}

	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	})
}
