package utils

import "strings"

var turkishReplacer = strings.NewReplacer(
	"ş", "s", "Ş", "s",
	"ğ", "g", "Ğ", "g",
	"ı", "i", "İ", "i",
	"ö", "o", "Ö", "o",
	"ü", "u", "Ü", "u",
	"ç", "c", "Ç", "c",
)

// Slugify turns a display name into a lowercase, ASCII, hyphen-separated
// slug. Turkish characters are transliterated; anything else non-alphanumeric
// collapses into a single hyphen.
func Slugify(name string) string {
	s := turkishReplacer.Replace(name)
	s = strings.ToLower(s)

	var b strings.Builder
	prevHyphen := true // trim leading hyphens
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
