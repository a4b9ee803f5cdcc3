// services/menu_service.go
package services

import (
	"qrmenu-backend/entity"
	"qrmenu-backend/repository"
)

const (
	FeaturedLimit     = 6
	DailySpecialLimit = 5
)

// View types returned to the public page: text fields already resolved for the
// selected language.

type ProductView struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	ImageURL       string  `json:"imageUrl"`
	CategoryID     *uint   `json:"categoryId"`
	IsFeatured     bool    `json:"isFeatured"`
	IsDailySpecial bool    `json:"isDailySpecial"`
}

type CategoryView struct {
	ID           uint          `json:"id"`
	Name         string        `json:"name"`
	ImageURL     string        `json:"imageUrl"`
	Products     []ProductView `json:"products"`
	ProductCount int           `json:"productCount"`
}

type MenuView struct {
	Restaurant    *entity.Restaurant `json:"restaurant"`
	Language      string             `json:"language"`
	Categories    []CategoryView     `json:"categories"`
	Featured      []ProductView      `json:"featured"`
	DailySpecials []ProductView      `json:"dailySpecials"`
	AllProducts   []ProductView      `json:"allProducts"` // for client-side search
}

type MenuService struct {
	Restaurants *repository.RestaurantRepository
	Categories  *repository.CategoryRepository
	Products    *repository.ProductRepository
}

func NewMenuService(rr *repository.RestaurantRepository, cr *repository.CategoryRepository, pr *repository.ProductRepository) *MenuService {
	return &MenuService{Restaurants: rr, Categories: cr, Products: pr}
}

// ResolveLanguage validates the requested language against the tenant's
// supported set; anything else falls back to the base language.
func ResolveLanguage(rest *entity.Restaurant, requested string) string {
	if requested != "" && requested != entity.BaseLanguage && rest.SupportsLanguage(requested) {
		return requested
	}
	return entity.BaseLanguage
}

// localize substitutes per field: an empty English variant falls back to the
// base value, never to a blank.
func localize(base, en, lang string) string {
	if lang == "en" && en != "" {
		return en
	}
	return base
}

func productView(p *entity.Product, lang string) ProductView {
	return ProductView{
		ID:             p.ID,
		Name:           localize(p.Name, p.NameEN, lang),
		Description:    localize(p.Description, p.DescriptionEN, lang),
		Price:          p.Price,
		ImageURL:       p.ImageURL,
		CategoryID:     p.CategoryID,
		IsFeatured:     p.IsFeatured,
		IsDailySpecial: p.IsDailySpecial,
	}
}

func productViews(products []entity.Product, lang string) []ProductView {
	out := make([]ProductView, 0, len(products))
	for i := range products {
		out = append(out, productView(&products[i], lang))
	}
	return out
}

// BuildMenu assembles everything the public page needs for one tenant.
func (s *MenuService) BuildMenu(rest *entity.Restaurant, lang string) (*MenuView, error) {
	cats, err := s.Categories.FindActiveByRestaurant(rest.ID)
	if err != nil {
		return nil, err
	}
	all, err := s.Products.FindActiveByRestaurant(rest.ID)
	if err != nil {
		return nil, err
	}
	featured, err := s.Products.FindFeatured(rest.ID, FeaturedLimit)
	if err != nil {
		return nil, err
	}
	specials, err := s.Products.FindDailySpecials(rest.ID, DailySpecialLimit)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[uint][]ProductView)
	for i := range all {
		p := &all[i]
		if p.CategoryID != nil {
			byCategory[*p.CategoryID] = append(byCategory[*p.CategoryID], productView(p, lang))
		}
	}

	catViews := make([]CategoryView, 0, len(cats))
	for i := range cats {
		c := &cats[i]
		products := byCategory[c.ID]
		catViews = append(catViews, CategoryView{
			ID:           c.ID,
			Name:         localize(c.Name, c.NameEN, lang),
			ImageURL:     c.ImageURL,
			Products:     products,
			ProductCount: len(products),
		})
	}

	return &MenuView{
		Restaurant:    rest,
		Language:      lang,
		Categories:    catViews,
		Featured:      productViews(featured, lang),
		DailySpecials: productViews(specials, lang),
		AllProducts:   productViews(all, lang),
	}, nil
}

// BuildCategoryPage renders a single category; zero products is a valid page,
// not an error. Deactivated categories are not reachable here, matching the
// menu page that hides them.
func (s *MenuService) BuildCategoryPage(rest *entity.Restaurant, catID uint, lang string) (*CategoryView, error) {
	cat, err := s.Categories.FindActiveByIDForRestaurant(catID, rest.ID)
	if err != nil {
		return nil, err
	}
	products, err := s.Products.FindActiveByCategory(cat.ID, rest.ID)
	if err != nil {
		return nil, err
	}
	views := productViews(products, lang)
	return &CategoryView{
		ID:           cat.ID,
		Name:         localize(cat.Name, cat.NameEN, lang),
		ImageURL:     cat.ImageURL,
		Products:     views,
		ProductCount: len(views),
	}, nil
}
