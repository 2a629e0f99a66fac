package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	SQLitePath     string
	MigrateOnStart bool

	ServerPort string
	GinMode    string

	JWTSecret    string
	SessionTTL   time.Duration
	CookieSecure bool

	// EnforceTaskOwnership makes detail, edit and delete answer 404 for tasks
	// owned by someone else. Off by default to keep the historical behavior.
	EnforceTaskOwnership bool

	RedisAddr        string
	RedisPassword    string
	LoginMaxAttempts int
	LoginWindow      time.Duration

	LogLevel  string
	LogFormat string
	LogOutput string
	LogFile   string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		DBDriver:       getEnv("DB_DRIVER", DriverPostgres),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "tareas_user"),
		DBPassword:     getEnv("DB_PASSWORD", "tareas_pass"),
		DBName:         getEnv("DB_NAME", "tareas_db"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		SQLitePath:     getEnv("SQLITE_PATH", "tareas.db"),
		MigrateOnStart: getEnvBool("MIGRATE_ON_START", true),

		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "release"),

		JWTSecret:    getEnv("JWT_SECRET", "supersecretkey"),
		SessionTTL:   time.Duration(getEnvInt("SESSION_TTL_HOURS", 336)) * time.Hour,
		CookieSecure: getEnvBool("COOKIE_SECURE", false),

		EnforceTaskOwnership: getEnvBool("ENFORCE_TASK_OWNERSHIP", false),

		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		LoginMaxAttempts: getEnvInt("LOGIN_MAX_ATTEMPTS", 5),
		LoginWindow:      time.Duration(getEnvInt("LOGIN_WINDOW_MINUTES", 15)) * time.Minute,

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		LogOutput: getEnv("LOG_OUTPUT", "stdout"),
		LogFile:   getEnv("LOG_FILE", "logs/tareas.log"),
	}
}

// DSN is the libpq style connection string used by the gorm postgres driver.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// MigrationURL is the same database addressed for the golang-migrate pgx/v5 driver.
func (c *Config) MigrationURL() string {
	u := url.URL{
		Scheme:   "pgx5",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("⚠️  %s=%q is not a number, using %d", key, value, defaultVal)
		return defaultVal
	}
	return n
}

func getEnvBool(key string, defaultVal bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("⚠️  %s=%q is not a boolean, using %t", key, value, defaultVal)
		return defaultVal
	}
	return b
}
