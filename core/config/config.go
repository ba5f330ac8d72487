package config

import (
	"strings"

	"guestdesk/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port    int
	BaseURL string

	// Database
	Host     string
	DBPort   int
	User     string
	Password string
	DBName   string

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Auth
	JWTSecret          string
	AccessTokenExpiry  int // minutes
	RefreshTokenExpiry int // hours

	// S3
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string

	// Logging
	LogLevel  string
	LogPretty bool
}

var cfg *Config

// Load reads .env (if present) and the environment into the global Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Warn("config: no .env file found, using environment only")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("PORT", 7070)
	viper.SetDefault("BASE_URL", "http://localhost:7070")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_NAME", "guestdesk")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("ACCESS_TOKEN_EXPIRY_MINUTES", 60)
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_HOURS", 720)
	viper.SetDefault("S3_REGION", "us-east-1")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", false)

	cfg = &Config{
		Port:               viper.GetInt("PORT"),
		BaseURL:            viper.GetString("BASE_URL"),
		Host:               viper.GetString("DB_HOST"),
		DBPort:             viper.GetInt("DB_PORT"),
		User:               viper.GetString("DB_USER"),
		Password:           viper.GetString("DB_PASSWORD"),
		DBName:             viper.GetString("DB_NAME"),
		RedisAddr:          viper.GetString("REDIS_ADDR"),
		RedisPassword:      viper.GetString("REDIS_PASSWORD"),
		RedisDB:            viper.GetInt("REDIS_DB"),
		JWTSecret:          viper.GetString("JWT_SECRET"),
		AccessTokenExpiry:  viper.GetInt("ACCESS_TOKEN_EXPIRY_MINUTES"),
		RefreshTokenExpiry: viper.GetInt("REFRESH_TOKEN_EXPIRY_HOURS"),
		S3Region:           viper.GetString("S3_REGION"),
		S3Bucket:           viper.GetString("S3_BUCKET"),
		S3AccessKey:        viper.GetString("S3_ACCESS_KEY"),
		S3SecretKey:        viper.GetString("S3_SECRET_KEY"),
		S3Endpoint:         viper.GetString("S3_ENDPOINT"),
		LogLevel:           viper.GetString("LOG_LEVEL"),
		LogPretty:          viper.GetBool("LOG_PRETTY"),
	}
	return cfg
}

// Get returns the loaded config, loading it on first use.
func Get() *Config {
	if cfg == nil {
		return Load()
	}
	return cfg
}

// GetSafe returns the config without triggering a load; callers must
// tolerate nil before Load has run.
func GetSafe() *Config { return cfg }
