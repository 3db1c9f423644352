package controllers

import (
	"net/http"

	"github.com/SerfiMolotov/MissDelice/pkg/resp"
	"github.com/SerfiMolotov/MissDelice/repository"
	"github.com/gin-gonic/gin"
)

// SettingController is thin enough to talk to the repository directly.
type SettingController struct {
	Settings *repository.SettingRepository
}

func NewSettingController(settings *repository.SettingRepository) *SettingController {
	return &SettingController{Settings: settings}
}

// GET /api/settings
func (ctl *SettingController) List(c *gin.Context) {
	rows, err := ctl.Settings.All()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	out := make(map[string]string, len(rows))
	for _, s := range rows {
		out[s.Key] = s.Value
	}
	c.JSON(http.StatusOK, out)
}

// PUT /api/admin/settings
func (ctl *SettingController) Update(c *gin.Context) {
	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Settings.SetMany(req); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, req)
}
