package entity

import (
	"strings"

	"gorm.io/gorm"
)

const BaseLanguage = "tr"

type Restaurant struct {
	gorm.Model
	Name        string `json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Description string `json:"description"`

	OwnerID uint `json:"ownerId"`
	Owner   User `json:"-"`

	// Branding
	LogoURL         string `json:"logoUrl"`
	HeroURL         string `json:"heroUrl"`
	LayoutStyle     string `gorm:"default:grid" json:"layoutStyle"` // grid | list
	QRBackdropColor string `gorm:"default:#ffffff" json:"qrBackdropColor"`

	ColorPrimary    string `gorm:"default:#1f2937" json:"colorPrimary"`
	ColorSecondary  string `gorm:"default:#374151" json:"colorSecondary"`
	ColorAccent     string `gorm:"default:#f59e0b" json:"colorAccent"`
	ColorBackground string `gorm:"default:#ffffff" json:"colorBackground"`
	ColorSurface    string `gorm:"default:#f9fafb" json:"colorSurface"`
	ColorText       string `gorm:"default:#111827" json:"colorText"`
	ColorTextMuted  string `gorm:"default:#6b7280" json:"colorTextMuted"`
	ColorPriceTag   string `gorm:"default:#059669" json:"colorPriceTag"`

	// Contact / social
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`

	IsActive bool `json:"isActive"`

	// Ordered, comma-joined; always contains the base language.
	SupportedLanguages string `gorm:"default:tr" json:"supportedLanguages"`

	Categories   []Category    `json:"-"`
	Products     []Product     `json:"-"`
	Subscription *Subscription `json:"-"`
	ScanEvents   []ScanEvent   `json:"-"`
}

// Languages returns the supported language codes in order.
func (r *Restaurant) Languages() []string {
	parts := strings.Split(r.SupportedLanguages, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = []string{BaseLanguage}
	}
	return out
}

// SupportsLanguage reports whether lang may be used on the public menu.
func (r *Restaurant) SupportsLanguage(lang string) bool {
	for _, l := range r.Languages() {
		if l == lang {
			return true
		}
	}
	return false
}
