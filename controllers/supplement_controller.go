package controllers

import (
	"net/http"
	"strconv"

	"github.com/SerfiMolotov/MissDelice/pkg/resp"
	"github.com/SerfiMolotov/MissDelice/services"
	"github.com/gin-gonic/gin"
)

type SupplementController struct {
	Supplements *services.SupplementService
}

func NewSupplementController(supplements *services.SupplementService) *SupplementController {
	return &SupplementController{Supplements: supplements}
}

// GET /api/categories/:id/supplements
func (ctl *SupplementController) List(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.Param("id"))

	sups, err := ctl.Supplements.ListByCategory(uint(categoryID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, sups)
}

// POST /api/admin/categories/:id/supplements
func (ctl *SupplementController) Create(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.Param("id"))

	var req services.SupplementIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sup, err := ctl.Supplements.Create(uint(categoryID), req)
	if err != nil {
		if services.IsNotFound(err) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, sup)
}

// PUT /api/admin/categories/:id/supplements/:supId
func (ctl *SupplementController) Update(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.Param("id"))
	supID, _ := strconv.Atoi(c.Param("supId"))

	var req services.SupplementIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sup, err := ctl.Supplements.Update(uint(categoryID), uint(supID), req)
	if err != nil {
		if services.IsNotFound(err) {
			resp.NotFound(c, "supplement not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, sup)
}

// DELETE /api/admin/categories/:id/supplements/:supId
func (ctl *SupplementController) Delete(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.Param("id"))
	supID, _ := strconv.Atoi(c.Param("supId"))

	if err := ctl.Supplements.Delete(uint(categoryID), uint(supID)); err != nil {
		if services.IsNotFound(err) {
			resp.NotFound(c, "supplement not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": supID})
}
