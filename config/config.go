package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Matching defaults.
	DefaultStartTime   string  `mapstructure:"DEFAULT_START_TIME"`
	DefaultDurationHrs float64 `mapstructure:"DEFAULT_DURATION_HRS"`
	DefaultTopN        int     `mapstructure:"DEFAULT_TOP_N"`
	MatchCacheTTLSecs  int     `mapstructure:"MATCH_CACHE_TTL_SECS"`

	// ConditionServices maps a senior's medical-condition label to the
	// caregiver service that addresses it. Kept as configuration so the
	// table can be extended without touching the scoring code.
	ConditionServices map[string]string `mapstructure:"CONDITION_SERVICES"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "shebacare")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("DEFAULT_START_TIME", "09:00:00")
	viper.SetDefault("DEFAULT_DURATION_HRS", 4.0)
	viper.SetDefault("DEFAULT_TOP_N", 5)
	viper.SetDefault("MATCH_CACHE_TTL_SECS", 60)
	viper.SetDefault("CONDITION_SERVICES", DefaultConditionServices())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if len(AppConfig.ConditionServices) == 0 {
		AppConfig.ConditionServices = DefaultConditionServices()
	}
}

// DefaultConditionServices returns the built-in condition-to-service table.
// Condition labels are stored in Bengali, matching the upstream senior records.
func DefaultConditionServices() map[string]string {
	return map[string]string{
		"ডায়াবেটিস":   "Diabetes Care",
		"উচ্চ রক্তচাপ": "Blood Pressure Monitoring",
		"ডিমেনশিয়া":   "Dementia Care",
		"পারকিনসন্স":   "Palliative Care",
		"স্ট্রোক":      "Post-Surgery Care",
		"আর্থ্রাইটিস":  "Mobility Assistance",
		"হৃদরোগ":       "Nursing",
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
