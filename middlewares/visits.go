package middlewares

import (
	"log"
	"strings"
	"time"

	"github.com/SerfiMolotov/MissDelice/entity"
	"github.com/SerfiMolotov/MissDelice/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const visitorCookie = "md_visitor"

// VisitsMiddleware tags each browser with a cookie and records page views for
// the analytics panel. Admin and asset traffic is not counted.
func VisitsMiddleware(visits *repository.VisitRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "GET" ||
			strings.HasPrefix(c.Request.URL.Path, "/uploads") ||
			strings.HasPrefix(c.Request.URL.Path, "/api/admin") {
			c.Next()
			return
		}

		visitorID, err := c.Cookie(visitorCookie)
		if err != nil || visitorID == "" {
			visitorID = uuid.NewString()
			c.SetCookie(visitorCookie, visitorID, 3600*24*365, "/", "", false, true)
		}

		visit := entity.Visit{
			VisitorID: visitorID,
			Path:      c.Request.URL.Path,
			Day:       time.Now().Format("20060102"),
		}
		if err := visits.Record(&visit); err != nil {
			log.Printf("[visits] record failed: %v", err)
		}

		c.Next()
	}
}
