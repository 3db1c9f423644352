package controllers

import (
	"net/http"

	"github.com/SerfiMolotov/MissDelice/pkg/resp"
	"github.com/SerfiMolotov/MissDelice/services"
	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Analytics: analytics}
}

// GET /api/admin/analytics
func (ctl *AnalyticsController) LastWeek(c *gin.Context) {
	out, err := ctl.Analytics.LastWeek()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"summary": out.Summary,
		"chart":   out.Chart,
	})
}
