package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with recovery and, outside
// production, permissive CORS for local frontends.
func NewRouter(handler *Handler, identityMiddleware gin.HandlerFunc, environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	if environment != "production" {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "profile_id"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	handler.Register(router, identityMiddleware)
	return router
}
