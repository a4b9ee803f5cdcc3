package controllers

import (
	"net/http"
	"strconv"

	"qrmenu-backend/pkg/resp"
	"qrmenu-backend/repository"
	"qrmenu-backend/services"

	"github.com/gin-gonic/gin"
)

// PublicController serves the diner-facing menu: HTML pages under /restorant
// and JSON under /api/menu. Every page view fires one best-effort scan event.
type PublicController struct {
	Restaurants *repository.RestaurantRepository
	Menu        *services.MenuService
	Scans       services.ScanRecorder
}

func NewPublicController(rr *repository.RestaurantRepository, menu *services.MenuService, scans services.ScanRecorder) *PublicController {
	return &PublicController{Restaurants: rr, Menu: menu, Scans: scans}
}

func (ctl *PublicController) loadMenu(c *gin.Context) (*services.MenuView, bool) {
	rest, err := ctl.Restaurants.FindActiveBySlug(c.Param("slug"))
	if err != nil {
		return nil, false
	}

	lang := services.ResolveLanguage(rest, c.Query("lang"))
	view, err := ctl.Menu.BuildMenu(rest, lang)
	if err != nil {
		return nil, false
	}

	// Telemetry only; never blocks or fails the page.
	ctl.Scans.Record(rest.ID, c.GetHeader("User-Agent"), c.GetHeader("Referer"))
	return view, true
}

// GET /restorant/:slug
func (ctl *PublicController) MenuPage(c *gin.Context) {
	view, ok := ctl.loadMenu(c)
	if !ok {
		c.HTML(http.StatusNotFound, "notfound.html", gin.H{})
		return
	}
	c.HTML(http.StatusOK, "menu.html", gin.H{
		"Restaurant":    view.Restaurant,
		"Language":      view.Language,
		"Categories":    view.Categories,
		"Featured":      view.Featured,
		"DailySpecials": view.DailySpecials,
		"Empty":         len(view.Categories) == 0,
	})
}

// GET /api/menu/:slug
func (ctl *PublicController) MenuJSON(c *gin.Context) {
	view, ok := ctl.loadMenu(c)
	if !ok {
		resp.NotFound(c, "restaurant not found")
		return
	}
	resp.OK(c, view)
}

func (ctl *PublicController) loadCategory(c *gin.Context) (*services.MenuView, *services.CategoryView, bool) {
	rest, err := ctl.Restaurants.FindActiveBySlug(c.Param("slug"))
	if err != nil {
		return nil, nil, false
	}

	catID, _ := strconv.Atoi(c.Param("categoryId"))
	lang := services.ResolveLanguage(rest, c.Query("lang"))
	cat, err := ctl.Menu.BuildCategoryPage(rest, uint(catID), lang)
	if err != nil {
		return nil, nil, false
	}

	ctl.Scans.Record(rest.ID, c.GetHeader("User-Agent"), c.GetHeader("Referer"))
	return &services.MenuView{Restaurant: rest, Language: lang}, cat, true
}

// GET /restorant/:slug/category/:categoryId
func (ctl *PublicController) CategoryPage(c *gin.Context) {
	view, cat, ok := ctl.loadCategory(c)
	if !ok {
		c.HTML(http.StatusNotFound, "notfound.html", gin.H{})
		return
	}
	c.HTML(http.StatusOK, "category.html", gin.H{
		"Restaurant": view.Restaurant,
		"Language":   view.Language,
		"Category":   cat,
		"Empty":      cat.ProductCount == 0,
	})
}

// GET /api/menu/:slug/category/:categoryId
func (ctl *PublicController) CategoryJSON(c *gin.Context) {
	view, cat, ok := ctl.loadCategory(c)
	if !ok {
		resp.NotFound(c, "category not found")
		return
	}
	resp.OK(c, gin.H{"restaurant": view.Restaurant, "language": view.Language, "category": cat})
}
