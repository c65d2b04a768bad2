package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	Auth      AuthConfig
	Dashboard DashboardConfig
	Logger    LoggerConfig
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

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address string
	Enabled bool
}

// AuthConfig contains authentication configuration.
// AdminSecret signs the HS256 capability tokens that guard the
// administrative surface; client-facing auth uses opaque bearer tokens.
type AuthConfig struct {
	AdminSecret   string
	AdminIssuer   string
	TokenCacheTTL int // minutes a token->client binding may live in Redis
	BCryptCost    int
}

// DashboardConfig contains dashboard aggregation configuration
type DashboardConfig struct {
	Query          string
	MaxAttempts    int // retry attempts per dashboard read
	BaseDelayMs    int // base backoff delay between attempts
	TimeoutSeconds int // overall deadline for one dashboard call
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
