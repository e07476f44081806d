package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Server
	Port string

	// Sessions
	JWTSecret string
	JWTExpiry time.Duration

	// Ticket prices by type, keyed by the labels in services.TicketTypes.
	TicketPrices map[string]float64

	// Forum moderation denylist, matched case-insensitively as substrings.
	SwearWords []string

	// Signup password policy
	PasswordMinLength int
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "qacinema"),

		Port: getEnv("PORT", "8080"),

		JWTSecret: getEnv("JWT_SECRET", "change-me"),
		JWTExpiry: parseDuration(getEnv("JWT_EXPIRY", "24h")),

		TicketPrices: map[string]float64{
			"Adult":      getEnvFloat("TICKET_PRICE_ADULT", 15.50),
			"Child":      getEnvFloat("TICKET_PRICE_CHILD", 9.50),
			"Concession": getEnvFloat("TICKET_PRICE_CONCESSION", 7.50),
		},

		SwearWords: getEnvList("SWEAR_WORDS", []string{
			"shit", "crap", "fuck", "bastard", "bollocks", "wanker",
		}),

		PasswordMinLength: getEnvInt("PASSWORD_MIN_LENGTH", 8),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseDuration(s string) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}
