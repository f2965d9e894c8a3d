package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/cargolink/cargolink/internal/pkg/models"
)

// InitConfig loads configuration from the environment, with an optional
// env-format config file for local development. Environment variables
// always win over file values.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Printf("config file not loaded (%s), using environment: %v", configPath, err)
	}

	return buildConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "cargolink")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "dev")

	v.SetDefault("SERVER_HOST", "")
	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_DATABASE", "cargolink")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NSQ_ADDRESS", "localhost:4150")
	v.SetDefault("NSQ_LOOKUPD_ADDRESS", "")
	v.SetDefault("NSQ_CHANNEL", "notifications")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRATION", 60)
	v.SetDefault("JWT_ISSUER", "cargolink")

	v.SetDefault("PRICING_BASE_FARE", 500.0)
	v.SetDefault("PRICING_TAX_RATE", 0.10)
	v.SetDefault("PRICING_CURRENCY", "INR")

	v.SetDefault("MATCH_STRATEGY", "utilization")
	v.SetDefault("MATCH_MAX_CANDIDATES", 0)
	v.SetDefault("MATCH_RATING_CACHE_TTL", 300)
}

func buildConfig(v *viper.Viper) *models.Config {
	cfg := &models.Config{}

	cfg.App.Name = v.GetString("APP_NAME")
	cfg.App.Environment = v.GetString("APP_ENV")
	cfg.App.Debug = v.GetBool("APP_DEBUG")
	cfg.App.Version = v.GetString("APP_VERSION")

	cfg.Server.Host = v.GetString("SERVER_HOST")
	cfg.Server.Port = v.GetInt("SERVER_PORT")
	cfg.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	cfg.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	cfg.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	cfg.Database.Host = v.GetString("DB_HOST")
	cfg.Database.Port = v.GetInt("DB_PORT")
	cfg.Database.Username = v.GetString("DB_USERNAME")
	cfg.Database.Password = v.GetString("DB_PASSWORD")
	cfg.Database.Database = v.GetString("DB_DATABASE")
	cfg.Database.SSLMode = v.GetString("DB_SSL_MODE")
	cfg.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	cfg.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	cfg.Redis.Host = v.GetString("REDIS_HOST")
	cfg.Redis.Port = v.GetInt("REDIS_PORT")
	cfg.Redis.Password = v.GetString("REDIS_PASSWORD")
	cfg.Redis.DB = v.GetInt("REDIS_DB")
	cfg.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	cfg.NSQ.Address = v.GetString("NSQ_ADDRESS")
	cfg.NSQ.LookupdAddress = v.GetString("NSQ_LOOKUPD_ADDRESS")
	cfg.NSQ.Channel = v.GetString("NSQ_CHANNEL")

	cfg.JWT.Secret = v.GetString("JWT_SECRET")
	cfg.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	cfg.JWT.Issuer = v.GetString("JWT_ISSUER")

	cfg.Pricing.BaseFare = v.GetFloat64("PRICING_BASE_FARE")
	cfg.Pricing.TaxRate = v.GetFloat64("PRICING_TAX_RATE")
	cfg.Pricing.Currency = v.GetString("PRICING_CURRENCY")

	cfg.Match.Strategy = v.GetString("MATCH_STRATEGY")
	cfg.Match.MaxCandidates = v.GetInt("MATCH_MAX_CANDIDATES")
	cfg.Match.RatingCacheTTL = v.GetInt("MATCH_RATING_CACHE_TTL")

	return cfg
}
