package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Fallback delivery coordinates used when the client never resolved a
// location (Amman city center, same default the mobile app ships with).
const (
	FallbackLatitude  = 31.963158
	FallbackLongitude = 35.930359
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string

	// Checkout falls back to these when location permission is denied.
	DefaultLatitude  float64
	DefaultLongitude float64
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:           os.Getenv("DB_HOST"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBPort:           os.Getenv("DB_PORT"),
		AppPort:          os.Getenv("APP_PORT"),
		AppEnv:           os.Getenv("APP_ENV"),
		DefaultLatitude:  envFloat("DEFAULT_LATITUDE", FallbackLatitude),
		DefaultLongitude: envFloat("DEFAULT_LONGITUDE", FallbackLongitude),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default", key, raw)
		return fallback
	}
	return v
}
