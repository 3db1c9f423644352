package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/SerfiMolotov/MissDelice/pkg/resp"
	"github.com/SerfiMolotov/MissDelice/services"
	"github.com/gin-gonic/gin"
)

type HoursController struct {
	Hours        *services.HoursService
	Availability *services.AvailabilityService
}

func NewHoursController(hours *services.HoursService, availability *services.AvailabilityService) *HoursController {
	return &HoursController{Hours: hours, Availability: availability}
}

// GET /api/hours
func (ctl *HoursController) List(c *gin.Context) {
	rows, err := ctl.Hours.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// PUT /api/admin/hours
func (ctl *HoursController) Update(c *gin.Context) {
	var req []services.HoursUpdateIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rows, err := ctl.Hours.Update(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidConfiguration) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /api/slots
//
// The slot list the storefront shows for a pickup today. Recomputed on every
// call, so a slot disappears the moment it falls inside the lead time.
func (ctl *HoursController) Slots(c *gin.Context) {
	slots, err := ctl.Availability.SlotsNow(time.Now())
	if err != nil {
		if errors.Is(err, services.ErrInvalidConfiguration) {
			resp.Unavailable(c, "horaires indisponibles")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
