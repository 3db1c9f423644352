package middlewares

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func CORSMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Cart-Session"},
		// X-Cart-Session must be readable cross-origin or the client can
		// never learn its minted session id.
		ExposeHeaders: []string{"Content-Length", "X-Cart-Session"},
		MaxAge:        12 * time.Hour,
	}
	return cors.New(cfg)
}
