package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Pricing  PricingConfig
	Match    MatchConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	Address        string
	LookupdAddress string
	Channel        string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// PricingConfig contains fare computation configuration
type PricingConfig struct {
	BaseFare float64 `json:"base_fare"`
	TaxRate  float64 `json:"tax_rate"`
	Currency string  `json:"currency"`
}

// MatchConfig contains truck matcher specific configuration
type MatchConfig struct {
	Strategy       string `json:"strategy"`         // "utilization" or "weighted"
	MaxCandidates  int    `json:"max_candidates"`   // cap on returned candidates, 0 = unlimited
	RatingCacheTTL int    `json:"rating_cache_ttl"` // seconds
}
