package controllers

import (
	"strconv"

	"qrmenu-backend/entity"
	"qrmenu-backend/pkg/resp"
	"qrmenu-backend/repository"
	"qrmenu-backend/utils"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	Repo *repository.CategoryRepository
}

func NewCategoryController(repo *repository.CategoryRepository) *CategoryController {
	return &CategoryController{Repo: repo}
}

type categoryRequest struct {
	Name      string `json:"name" binding:"required"`
	NameEN    string `json:"nameEn"`
	SortOrder int    `json:"sortOrder"`
	IsActive  *bool  `json:"isActive"`
	ImageURL  string `json:"imageUrl"`
}

// GET /panel/categories
func (ctl *CategoryController) List(c *gin.Context) {
	cats, err := ctl.Repo.FindByRestaurant(utils.CurrentRestaurantID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

// POST /panel/categories
func (ctl *CategoryController) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat := entity.Category{
		Name:         req.Name,
		NameEN:       req.NameEN,
		SortOrder:    req.SortOrder,
		IsActive:     true,
		ImageURL:     req.ImageURL,
		RestaurantID: utils.CurrentRestaurantID(c),
	}
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}

	if err := ctl.Repo.Create(&cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

// PATCH /panel/categories/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	cat, err := ctl.Repo.FindByIDForRestaurant(uint(id), utils.CurrentRestaurantID(c))
	if err != nil {
		resp.NotFound(c, "category not found")
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat.Name = req.Name
	cat.NameEN = req.NameEN
	cat.SortOrder = req.SortOrder
	cat.ImageURL = req.ImageURL
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}

	if err := ctl.Repo.Update(cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /panel/categories/:id
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Repo.Delete(uint(id), utils.CurrentRestaurantID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "category deleted"})
}
