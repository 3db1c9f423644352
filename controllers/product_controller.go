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

type ProductController struct {
	Products *services.ProductService
	Cfg      *configs.Config
}

func NewProductController(products *services.ProductService, cfg *configs.Config) *ProductController {
	return &ProductController{Products: products, Cfg: cfg}
}

// GET /api/products
func (ctl *ProductController) List(c *gin.Context) {
	rows, err := ctl.Products.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	for i := range rows {
		rows[i].ImageURL = utils.ImageURL(ctl.Cfg.BaseURL, rows[i].ImageURL)
	}
	c.JSON(http.StatusOK, rows)
}

// GET /api/products/:id
func (ctl *ProductController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	p, err := ctl.Products.GetByID(uint(id))
	if err != nil {
		if services.IsNotFound(err) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	p.ImageURL = utils.ImageURL(ctl.Cfg.BaseURL, p.ImageURL)
	c.JSON(http.StatusOK, p)
}

func bindProductForm(c *gin.Context) services.ProductForm {
	return services.ProductForm{
		Name:         c.PostForm("name"),
		Description:  c.PostForm("description"),
		Price:        c.PostForm("price"),
		CategoryID:   c.PostForm("category_id"),
		IsOutOfStock: c.PostForm("is_out_of_stock"),
		IsNew:        c.PostForm("is_new"),
		IsFeatured:   c.PostForm("is_featured"),
	}
}

// POST /api/admin/products  (multipart)
func (ctl *ProductController) Create(c *gin.Context) {
	filename := ""
	if file, err := c.FormFile("image"); err == nil {
		saved, err := utils.SaveImage(c, file, ctl.Cfg.UploadDir)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		filename = saved
	}

	p, err := ctl.Products.Create(bindProductForm(c), filename)
	if err != nil {
		if ve, ok := services.AsValidation(err); ok {
			resp.BadRequestFields(c, "champs manquants", ve.Fields)
			return
		}
		resp.ServerError(c, err)
		return
	}

	p.ImageURL = utils.ImageURL(ctl.Cfg.BaseURL, p.ImageURL)
	resp.Created(c, p)
}

// PUT /api/admin/products/:id  (multipart)
func (ctl *ProductController) Update(c *gin.Context) {
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

	p, oldImage, err := ctl.Products.Update(uint(id), bindProductForm(c), filename)
	if err != nil {
		if services.IsNotFound(err) {
			resp.NotFound(c, "product not found")
			return
		}
		if ve, ok := services.AsValidation(err); ok {
			resp.BadRequestFields(c, "champs manquants", ve.Fields)
			return
		}
		resp.ServerError(c, err)
		return
	}
	utils.RemoveImage(ctl.Cfg.UploadDir, oldImage)

	p.ImageURL = utils.ImageURL(ctl.Cfg.BaseURL, p.ImageURL)
	resp.OK(c, p)
}

// DELETE /api/admin/products/:id
func (ctl *ProductController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	p, err := ctl.Products.Delete(uint(id))
	if err != nil {
		if services.IsNotFound(err) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	utils.RemoveImage(ctl.Cfg.UploadDir, p.ImageURL)
	log.Printf("[admin] %s deleted product %d (%s)", utils.CurrentUsername(c), p.ID, p.Name)

	resp.OK(c, gin.H{"deleted": p.ID})
}
