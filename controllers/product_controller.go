package controllers

import (
	"strconv"

	"qrmenu-backend/entity"
	"qrmenu-backend/pkg/resp"
	"qrmenu-backend/repository"
	"qrmenu-backend/utils"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Repo       *repository.ProductRepository
	Categories *repository.CategoryRepository
}

func NewProductController(repo *repository.ProductRepository, cats *repository.CategoryRepository) *ProductController {
	return &ProductController{Repo: repo, Categories: cats}
}

type productRequest struct {
	Name           string   `json:"name" binding:"required"`
	NameEN         string   `json:"nameEn"`
	Description    string   `json:"description"`
	DescriptionEN  string   `json:"descriptionEn"`
	Price          *float64 `json:"price" binding:"required,gte=0"`
	SortOrder      int      `json:"sortOrder"`
	ImageURL       string   `json:"imageUrl"`
	CategoryID     *uint    `json:"categoryId"` // nil = uncategorized
	IsActive       *bool    `json:"isActive"`
	IsFeatured     bool     `json:"isFeatured"`
	IsDailySpecial bool     `json:"isDailySpecial"`
}

// categoryBelongsToTenant rejects cross-tenant category references; a nil id
// (uncategorized) is always valid.
func (ctl *ProductController) categoryBelongsToTenant(catID *uint, restID uint) bool {
	if catID == nil {
		return true
	}
	_, err := ctl.Categories.FindByIDForRestaurant(*catID, restID)
	return err == nil
}

// GET /panel/products
func (ctl *ProductController) List(c *gin.Context) {
	products, err := ctl.Repo.FindByRestaurant(utils.CurrentRestaurantID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": products})
}

// POST /panel/products
func (ctl *ProductController) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	restID := utils.CurrentRestaurantID(c)
	if !ctl.categoryBelongsToTenant(req.CategoryID, restID) {
		resp.BadRequest(c, "category not found")
		return
	}

	p := entity.Product{
		Name:           req.Name,
		NameEN:         req.NameEN,
		Description:    req.Description,
		DescriptionEN:  req.DescriptionEN,
		Price:          *req.Price,
		SortOrder:      req.SortOrder,
		ImageURL:       req.ImageURL,
		CategoryID:     req.CategoryID,
		IsActive:       true,
		IsFeatured:     req.IsFeatured,
		IsDailySpecial: req.IsDailySpecial,
		RestaurantID:   restID,
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := ctl.Repo.Create(&p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, p)
}

// PATCH /panel/products/:id
func (ctl *ProductController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	restID := utils.CurrentRestaurantID(c)

	p, err := ctl.Repo.FindByIDForRestaurant(uint(id), restID)
	if err != nil {
		resp.NotFound(c, "product not found")
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !ctl.categoryBelongsToTenant(req.CategoryID, restID) {
		resp.BadRequest(c, "category not found")
		return
	}

	p.Name = req.Name
	p.NameEN = req.NameEN
	p.Description = req.Description
	p.DescriptionEN = req.DescriptionEN
	p.Price = *req.Price
	p.SortOrder = req.SortOrder
	p.ImageURL = req.ImageURL
	p.CategoryID = req.CategoryID
	p.IsFeatured = req.IsFeatured
	p.IsDailySpecial = req.IsDailySpecial
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := ctl.Repo.Update(p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

// PATCH /panel/products/:id/price is the inline price editor. Re-submitting
// the same value is a no-op success.
func (ctl *ProductController) UpdatePrice(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	restID := utils.CurrentRestaurantID(c)

	var req struct {
		Price *float64 `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if *req.Price < 0 {
		resp.BadRequest(c, "price must be a non-negative number")
		return
	}

	p, err := ctl.Repo.FindByIDForRestaurant(uint(id), restID)
	if err != nil {
		resp.NotFound(c, "product not found")
		return
	}

	if p.Price != *req.Price {
		if err := ctl.Repo.UpdatePrice(p.ID, restID, *req.Price); err != nil {
			resp.ServerError(c, err)
			return
		}
		p.Price = *req.Price
	}
	resp.OK(c, gin.H{"id": p.ID, "price": p.Price})
}

// DELETE /panel/products/:id
func (ctl *ProductController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Repo.Delete(uint(id), utils.CurrentRestaurantID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "product deleted"})
}
