// services/restaurant_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"qrmenu-backend/entity"
	"qrmenu-backend/repository"
	"qrmenu-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrSlugTaken = errors.New("this menu address is already in use")

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

type RegisterInput struct {
	Email          string
	Password       string
	FullName       string
	RestaurantName string
}

// Register creates user, restaurant and free/active subscription in a single
// transaction so a failed step never leaves an orphan account behind.
func (s *RestaurantService) Register(in RegisterInput) (*entity.User, *entity.Restaurant, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := entity.User{
		Email:    strings.ToLower(in.Email),
		Password: string(hashed),
		FullName: in.FullName,
	}
	rest := entity.Restaurant{
		Name:               in.RestaurantName,
		IsActive:           true,
		LayoutStyle:        "grid",
		SupportedLanguages: entity.BaseLanguage,
	}

	err = s.Repo.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		slug, err := uniqueSlug(tx, in.RestaurantName, 0)
		if err != nil {
			return err
		}
		rest.Slug = slug
		rest.OwnerID = user.ID
		if err := tx.Create(&rest).Error; err != nil {
			return err
		}

		sub := entity.Subscription{
			RestaurantID: rest.ID,
			Plan:         entity.PlanFree,
			Status:       entity.SubStatusActive,
		}
		return tx.Create(&sub).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &user, &rest, nil
}

type UpdateProfileInput struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`

	LogoURL     *string `json:"logoUrl"`
	HeroURL     *string `json:"heroUrl"`
	LayoutStyle *string `json:"layoutStyle"`

	ColorPrimary    *string `json:"colorPrimary"`
	ColorSecondary  *string `json:"colorSecondary"`
	ColorAccent     *string `json:"colorAccent"`
	ColorBackground *string `json:"colorBackground"`
	ColorSurface    *string `json:"colorSurface"`
	ColorText       *string `json:"colorText"`
	ColorTextMuted  *string `json:"colorTextMuted"`
	ColorPriceTag   *string `json:"colorPriceTag"`

	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Instagram *string `json:"instagram"`
	Facebook  *string `json:"facebook"`

	SupportedLanguages []string `json:"supportedLanguages"`
}

// UpdateProfile applies the provided fields. Slug changes are pre-checked for
// uniqueness and reported as a user-facing conflict, not a driver error.
func (s *RestaurantService) UpdateProfile(restID uint, in UpdateProfileInput) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(restID)
	if err != nil {
		return nil, err
	}

	if in.Slug != nil {
		slug := utils.Slugify(*in.Slug)
		if slug == "" {
			return nil, errors.New("invalid menu address")
		}
		if slug != rest.Slug {
			taken, err := s.Repo.SlugTaken(slug, rest.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrSlugTaken
			}
			rest.Slug = slug
		}
	}

	setStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setStr(&rest.Name, in.Name)
	setStr(&rest.Description, in.Description)
	setStr(&rest.LogoURL, in.LogoURL)
	setStr(&rest.HeroURL, in.HeroURL)
	setStr(&rest.ColorPrimary, in.ColorPrimary)
	setStr(&rest.ColorSecondary, in.ColorSecondary)
	setStr(&rest.ColorAccent, in.ColorAccent)
	setStr(&rest.ColorBackground, in.ColorBackground)
	setStr(&rest.ColorSurface, in.ColorSurface)
	setStr(&rest.ColorText, in.ColorText)
	setStr(&rest.ColorTextMuted, in.ColorTextMuted)
	setStr(&rest.ColorPriceTag, in.ColorPriceTag)
	setStr(&rest.Phone, in.Phone)
	setStr(&rest.Address, in.Address)
	setStr(&rest.Instagram, in.Instagram)
	setStr(&rest.Facebook, in.Facebook)

	if in.LayoutStyle != nil {
		if *in.LayoutStyle != "grid" && *in.LayoutStyle != "list" {
			return nil, errors.New("layout must be grid or list")
		}
		rest.LayoutStyle = *in.LayoutStyle
	}

	if in.SupportedLanguages != nil {
		rest.SupportedLanguages = normalizeLanguages(in.SupportedLanguages)
	}

	if err := s.Repo.Update(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

// UpdateQRBackdropColor is the explicit save step behind the color picker.
func (s *RestaurantService) UpdateQRBackdropColor(restID uint, color string) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(restID)
	if err != nil {
		return nil, err
	}
	rest.QRBackdropColor = color
	if err := s.Repo.Update(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

// normalizeLanguages keeps the base language first no matter what the client
// sent, and drops codes the product does not support.
func normalizeLanguages(langs []string) string {
	out := []string{entity.BaseLanguage}
	for _, l := range langs {
		l = strings.ToLower(strings.TrimSpace(l))
		if l == "en" {
			out = append(out, "en")
			break
		}
	}
	return strings.Join(out, ",")
}

// uniqueSlug probes slug, slug-1, slug-2, ... until an unused one is found.
func uniqueSlug(tx *gorm.DB, name string, excludeID uint) (string, error) {
	base := utils.Slugify(name)
	if base == "" {
		base = "menu"
	}

	slug := base
	for i := 0; ; i++ {
		if i > 0 {
			slug = fmt.Sprintf("%s-%d", base, i)
		}
		var count int64
		q := tx.Model(&entity.Restaurant{}).Where("slug = ?", slug)
		if excludeID != 0 {
			q = q.Where("id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
	}
}
