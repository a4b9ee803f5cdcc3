package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource string
	Port     string

	JWTSecret string
	JWTTTL    time.Duration

	// Impersonation cookies are short-lived on purpose.
	ImpersonationTTL time.Duration

	// Absolute origin used in QR payloads and the sitemap.
	PublicBaseURL string

	// Keyless translation providers; primary is tried first.
	TranslatePrimaryURL  string
	TranslateFallbackURL string
	TranslateBatchDelay  time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:             getEnv("DB_SOURCE", "qrmenu.db"),
		Port:                 getEnv("PORT", "8000"),
		JWTSecret:            getEnv("JWT_SECRET", "changeme"),
		JWTTTL:               24 * time.Hour,
		ImpersonationTTL:     30 * time.Minute,
		PublicBaseURL:        getEnv("PUBLIC_BASE_URL", "http://localhost:8000"),
		TranslatePrimaryURL:  getEnv("TRANSLATE_PRIMARY_URL", "https://api.mymemory.translated.net/get"),
		TranslateFallbackURL: getEnv("TRANSLATE_FALLBACK_URL", "https://lingva.ml/api/v1"),
		TranslateBatchDelay:  350 * time.Millisecond,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
