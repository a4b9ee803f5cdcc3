package controllers

import (
	"encoding/xml"
	"fmt"
	"net/http"

	"qrmenu-backend/configs"
	"qrmenu-backend/repository"

	"github.com/gin-gonic/gin"
)

type SEOController struct {
	Restaurants *repository.RestaurantRepository
	Cfg         *configs.Config
}

func NewSEOController(repo *repository.RestaurantRepository, cfg *configs.Config) *SEOController {
	return &SEOController{Restaurants: repo, Cfg: cfg}
}

// GET /robots.txt keeps the console and auth surfaces out of crawlers.
func (ctl *SEOController) Robots(c *gin.Context) {
	body := fmt.Sprintf(`User-agent: *
Disallow: /panel
Disallow: /admin
Disallow: /auth

Sitemap: %s/sitemap.xml
`, ctl.Cfg.PublicBaseURL)
	c.String(http.StatusOK, body)
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// GET /sitemap.xml lists one entry per active restaurant.
func (ctl *SEOController) Sitemap(c *gin.Context) {
	rests, err := ctl.Restaurants.FindAllActive()
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, r := range rests {
		set.URLs = append(set.URLs, sitemapURL{
			Loc: fmt.Sprintf("%s/restorant/%s", ctl.Cfg.PublicBaseURL, r.Slug),
		})
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.String(http.StatusOK, xml.Header)
	out, _ := xml.MarshalIndent(set, "", "  ")
	c.Writer.Write(out)
}
