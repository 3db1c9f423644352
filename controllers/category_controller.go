package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/SerfiMolotov/MissDelice/configs"
	"github.com/SerfiMolotov/MissDelice/pkg/resp"
	"github.com/SerfiMolotov/MissDelice/services"
	"github.com/SerfiMolotov/MissDelice/utils"
	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	Categories *services.CategoryService
	Cfg        *configs.Config
}

func NewCategoryController(categories *services.CategoryService, cfg *configs.Config) *CategoryController {
	return &CategoryController{Categories: categories, Cfg: cfg}
}

// GET /api/categories
func (ctl *CategoryController) List(c *gin.Context) {
	cats, err := ctl.Categories.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	for i := range cats {
		cats[i].ImageURL = utils.ImageURL(ctl.Cfg.BaseURL, cats[i].ImageURL)
	}
	c.JSON(http.StatusOK, cats)
}

// GET /api/categories/:id
func (ctl *CategoryController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	cat, err := ctl.Categories.Get(uint(id))
	if err != nil {
		if services.IsNotFound(err) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	cat.ImageURL = utils.ImageURL(ctl.Cfg.BaseURL, cat.ImageURL)
	c.JSON(http.StatusOK, cat)
}

// POST /api/admin/categories  (multipart)
func (ctl *CategoryController) Create(c *gin.Context) {
	filename := ""
	if file, err := c.FormFile("image"); err == nil {
		saved, err := utils.SaveImage(c, file, ctl.Cfg.UploadDir)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		filename = saved
	}

	cat, err := ctl.Categories.Create(c.PostForm("title"), c.PostForm("description"), filename)
	if err != nil {
		if ve, ok := services.AsValidation(err); ok {
			resp.BadRequestFields(c, "champs manquants", ve.Fields)
			return
		}
		resp.ServerError(c, err)
		return
	}

	cat.ImageURL = utils.ImageURL(ctl.Cfg.BaseURL, cat.ImageURL)
	resp.Created(c, cat)
}

// PUT /api/admin/categories/:id  (multipart)
func (ctl *CategoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	filename := ""
	if file, err := c.FormFile("image"); err == nil {
		saved, err := utils.SaveImage(c, file, ctl.Cfg.UploadDir)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		filename = saved
	}

	cat, oldImage, err := ctl.Categories.Update(uint(id), c.PostForm("title"), c.PostForm("description"), filename)
	if err != nil {
		if services.IsNotFound(err) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	utils.RemoveImage(ctl.Cfg.UploadDir, oldImage)

	cat.ImageURL = utils.ImageURL(ctl.Cfg.BaseURL, cat.ImageURL)
	resp.OK(c, cat)
}

// DELETE /api/admin/categories/:id
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	cat, err := ctl.Categories.Delete(uint(id))
	if err != nil {
		if services.IsNotFound(err) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	utils.RemoveImage(ctl.Cfg.UploadDir, cat.ImageURL)
	log.Printf("[admin] %s deleted category %d (%s)", utils.CurrentUsername(c), cat.ID, cat.Title)

	resp.OK(c, gin.H{"deleted": cat.ID})
}

type reorderRequest struct {
	NewOrder []uint `json:"newOrder"`

	// Alternative form: a single drag, described by what moved and where.
	MovedID   *uint `json:"moved_id"`
	FromIndex *int  `json:"from"`
	ToIndex   *int  `json:"to"`
}

// PUT /api/admin/categories/reorder
func (ctl *CategoryController) Reorder(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid reorder payload")
		return
	}

	var err error
	switch {
	case len(req.NewOrder) > 0:
		err = ctl.Categories.Reorder(req.NewOrder)
	case req.MovedID != nil && req.FromIndex != nil && req.ToIndex != nil:
		err = ctl.Categories.Move(*req.MovedID, *req.FromIndex, *req.ToIndex)
	default:
		resp.BadRequest(c, "invalid reorder payload")
		return
	}
	if err != nil {
		if ve, ok := services.AsValidation(err); ok {
			resp.BadRequestFields(c, "invalid reorder payload", ve.Fields)
			return
		}
		resp.ServerError(c, err)
		return
	}
	log.Printf("[admin] %s (id %d) reordered categories", utils.CurrentUsername(c), utils.CurrentUserID(c))

	cats, err := ctl.Categories.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	for i := range cats {
		cats[i].ImageURL = utils.ImageURL(ctl.Cfg.BaseURL, cats[i].ImageURL)
	}
	resp.OK(c, cats)
}
