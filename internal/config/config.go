package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var (
	JwtSecret    string
	DbHost       string
	DbPort       string
	DbUser       string
	DbPassword   string
	DbName       string
	ServerPort   string
	Issuer       string
	TokenTTL     time.Duration
	IsProduction bool
	LogLevel     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	ResendAPIKey string
	MailFrom     string
	PublicURL    string

	AuditRetentionDays int
	LoginRate          float64
	LoginBurst         int
)

// LoadConfig reads .env (if present) and the process environment into the
// package settings. It returns false when no .env file was found.
func LoadConfig() bool {
	foundEnv := godotenv.Load() == nil

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "forms")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("ISSUER", "form-console")
	TokenTTL = getDuration("TOKEN_TTL", 24*time.Hour)
	IsProduction, _ = strconv.ParseBool(getEnv("IS_PRODUCTION", "false"))
	LogLevel = getEnv("LOG_LEVEL", "info")

	RedisAddr = getEnv("REDIS_ADDR", "")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	RedisDB = getInt("REDIS_DB", 0)

	ResendAPIKey = getEnv("RESEND_API_KEY", "")
	MailFrom = getEnv("MAIL_FROM", "Form Console <no-reply@localhost>")
	PublicURL = getEnv("PUBLIC_URL", "http://localhost:"+ServerPort)

	AuditRetentionDays = getInt("AUDIT_RETENTION_DAYS", 30)
	LoginRate = getFloat("LOGIN_RATE", 1)
	LoginBurst = getInt("LOGIN_BURST", 5)

	return foundEnv
}

// LogSummary writes the non-secret settings to the logger.
func LogSummary(log *zap.Logger) {
	log.Info("configuration loaded",
		zap.String("db_host", DbHost),
		zap.String("db_name", DbName),
		zap.String("port", ServerPort),
		zap.Duration("token_ttl", TokenTTL),
		zap.Bool("redis", RedisAddr != ""),
		zap.Bool("resend", ResendAPIKey != ""),
		zap.Bool("production", IsProduction),
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
