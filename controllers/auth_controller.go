package controllers

import (
	"net/http"
	"strings"

	"qrmenu-backend/configs"
	"qrmenu-backend/pkg/resp"
	"qrmenu-backend/repository"
	"qrmenu-backend/services"
	"qrmenu-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required,eqfield=Password"`
	FullName        string `json:"fullName"`
	RestaurantName  string `json:"restaurantName" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Cfg         *configs.Config
	Users       *repository.UserRepository
	Restaurants *services.RestaurantService
}

func NewAuthController(cfg *configs.Config, users *repository.UserRepository, rs *services.RestaurantService) *AuthController {
	return &AuthController{Cfg: cfg, Users: users, Restaurants: rs}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if _, err := a.Users.FindByEmail(strings.ToLower(req.Email)); err == nil {
		resp.BadRequest(c, "email already registered")
		return
	}

	user, rest, err := a.Restaurants.Register(services.RegisterInput{
		Email:          req.Email,
		Password:       req.Password,
		FullName:       req.FullName,
		RestaurantName: req.RestaurantName,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{
		"id":       user.ID,
		"email":    user.Email,
		"fullName": user.FullName,
		"restaurant": gin.H{
			"id":   rest.ID,
			"name": rest.Name,
			"slug": rest.Slug,
		},
	})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Users.FindByEmail(strings.ToLower(req.Email))
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID, a.Cfg.JWTSecret, a.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	isAdmin, _ := a.Users.IsAdmin(user.ID)

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"fullName": user.FullName,
			"isAdmin":  isAdmin,
		},
	})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Users.FindByID(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, gin.H{
		"id":       user.ID,
		"email":    user.Email,
		"fullName": user.FullName,
	})
}
