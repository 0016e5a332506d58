// Env loader
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv     string
	Port       string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSchema   string

	// Scripture source
	QuranAPIBaseURL string
	QuranAudioCDN   string
	AudioEdition    string
	QuranTimeoutSec int

	// Engine-trigger rate limiting
	RateLimit         int
	RateWindowSeconds int
}

// LoadConfig loads environment variables from the .env file
func LoadConfig() *Config {

	appEnv := os.Getenv("APP_ENV")

	switch appEnv {
	case "production":
		if err := godotenv.Load(".env.production"); err == nil {
			fmt.Println("Loaded .env.production")
		}
	default:
		if err := godotenv.Load(".env.development"); err == nil {
			fmt.Println("Loaded .env.development")
		}
	}

	cfg := &Config{
		AppEnv:     getEnv("APP_ENV", "development"),
		Port:       getEnv("PORT", "8080"),
		DBHost:     getEnv("QURANLIFE_DB_HOST", "localhost"),
		DBPort:     getEnv("QURANLIFE_DB_PORT", "5432"),
		DBName:     getEnv("QURANLIFE_DB_DATABASE", "quranlife"),
		DBUser:     getEnv("QURANLIFE_DB_USERNAME", "postgres"),
		DBPassword: getEnv("QURANLIFE_DB_PASSWORD", ""),
		DBSchema:   getEnv("QURANLIFE_DB_SCHEMA", "public"),

		QuranAPIBaseURL: getEnv("QURAN_API_BASE_URL", "https://api.alquran.cloud/v1"),
		QuranAudioCDN:   getEnv("QURAN_AUDIO_CDN", "https://cdn.islamic.network/quran/audio/128"),
		AudioEdition:    getEnv("AUDIO_EDITION", "ar.alafasy"),
		QuranTimeoutSec: getEnvInt("QURAN_TIMEOUT_SECONDS", 5),

		RateLimit:         getEnvInt("RATE_LIMIT", 20),
		RateWindowSeconds: getEnvInt("RATE_WINDOW_SECONDS", 60),
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func GetAppEnv() string {
	if value, exists := os.LookupEnv("APP_ENV"); exists {
		return value
	}
	return "development"
}
