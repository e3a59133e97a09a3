package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/yukikurage/project-manager-api/internal/constants"
)

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	GinMode        string
	Port           string
	TrackerPort    string
	AllowedOrigins []string
	LogLevel       string

	AuthRateLimit  int
	AuthRateWindow time.Duration

	TaskManagerBaseURL string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBDriver:       getEnv("DB_DRIVER", "sqlite"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "3306"),
		DBUser:         getEnv("DB_USER", "pmuser"),
		DBPassword:     getEnv("DB_PASSWORD", "pmpassword"),
		DBName:         getEnv("DB_NAME", "project_manager"),
		DBPath:         getEnv("DB_PATH", "app.db"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTIssuer:      getEnv("JWT_ISSUER", "pm.local"),
		JWTAudience:    getEnv("JWT_AUDIENCE", "pm.local"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		Port:           getEnv("PORT", "8080"),
		TrackerPort:    getEnv("TRACKER_PORT", "8081"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "")),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AuthRateLimit:  getEnvInt("AUTH_RATE_LIMIT", constants.DefaultAuthRateLimit),
		AuthRateWindow: time.Duration(getEnvInt("AUTH_RATE_WINDOW_SECONDS", int(constants.DefaultAuthRateWindow/time.Second))) * time.Second,

		TaskManagerBaseURL: getEnv("TASK_MANAGER_BASE_URL", constants.DefaultTaskManagerBaseURL),
	}
}

// IsProduction reports whether the server runs in gin release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
