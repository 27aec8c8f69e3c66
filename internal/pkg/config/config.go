package config

import (
	"fmt"
	"time"

	"parcel-registry/internal/domain/availability"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Store      StoreConfig
	Allocation AllocationConfig
	Cache      CacheConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Africa/Abidjan"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
	Issuer   string `envconfig:"JWT_ISSUER" default:"parcel-registry"`
}

// StoreConfig selects the unit-of-work backend: "postgres" or "memory".
// SeedFile only applies to the memory driver.
type StoreConfig struct {
	Driver   string `envconfig:"STORE_DRIVER" default:"postgres"`
	SeedFile string `envconfig:"STORE_SEED_FILE"`
}

type AllocationConfig struct {
	LockTimeout             time.Duration `envconfig:"ALLOCATION_LOCK_TIMEOUT" default:"3s"`
	DefaultReservationTTL   time.Duration `envconfig:"ALLOCATION_DEFAULT_RESERVATION_TTL" default:"30m"`
	MaxReservationTTL       time.Duration `envconfig:"ALLOCATION_MAX_RESERVATION_TTL" default:"8h"`
	SweepInterval           time.Duration `envconfig:"ALLOCATION_SWEEP_INTERVAL" default:"1m"`
	AlertAttempts           int           `envconfig:"ALLOCATION_ALERT_ATTEMPTS" default:"2"`
	DefaultHistoryLimit     int           `envconfig:"ALLOCATION_DEFAULT_HISTORY_LIMIT" default:"100"`
	MaxHistoryLimit         int           `envconfig:"ALLOCATION_MAX_HISTORY_LIMIT" default:"1000"`
	MaxTransactionRetries   int           `envconfig:"ALLOCATION_MAX_TX_RETRIES" default:"3"`
	TransactionRetryBackoff time.Duration `envconfig:"ALLOCATION_TX_RETRY_BACKOFF" default:"100ms"`
}

type CacheConfig struct {
	ActorRoleTTL time.Duration `envconfig:"CACHE_ACTOR_ROLE_TTL" default:"5m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *DBConfig) Validate() error {
	if c.MaxConns <= 0 {
		return fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.MaxConns)
	}
	return nil
}

func (c *AllocationConfig) Validate() error {
	if c.MaxReservationTTL <= 0 || c.MaxReservationTTL > availability.MaxReservationTTL {
		return fmt.Errorf("ALLOCATION_MAX_RESERVATION_TTL must be in (0, %s], got %s", availability.MaxReservationTTL, c.MaxReservationTTL)
	}
	if c.DefaultReservationTTL <= 0 || c.DefaultReservationTTL > c.MaxReservationTTL {
		return fmt.Errorf("ALLOCATION_DEFAULT_RESERVATION_TTL must be in (0, %s], got %s", c.MaxReservationTTL, c.DefaultReservationTTL)
	}
	if c.LockTimeout <= 0 {
		return fmt.Errorf("ALLOCATION_LOCK_TIMEOUT must be positive, got %s", c.LockTimeout)
	}
	if c.AlertAttempts < 2 {
		return fmt.Errorf("ALLOCATION_ALERT_ATTEMPTS must be at least 2, got %d", c.AlertAttempts)
	}
	if c.DefaultHistoryLimit < 1 || c.DefaultHistoryLimit > c.MaxHistoryLimit {
		return fmt.Errorf("ALLOCATION_DEFAULT_HISTORY_LIMIT must be in [1, %d], got %d", c.MaxHistoryLimit, c.DefaultHistoryLimit)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Store.Driver != "postgres" && cfg.Store.Driver != "memory" {
		return Config{}, fmt.Errorf("STORE_DRIVER must be postgres or memory, got %q", cfg.Store.Driver)
	}
	if cfg.Store.Driver == "postgres" {
		if err := cfg.DB.Validate(); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.Allocation.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
			Issuer:   "parcel-registry",
		},
		Store: StoreConfig{
			Driver: "memory",
		},
		Allocation: AllocationConfig{
			LockTimeout:             time.Second,
			DefaultReservationTTL:   30 * time.Minute,
			MaxReservationTTL:       8 * time.Hour,
			SweepInterval:           time.Minute,
			AlertAttempts:           2,
			DefaultHistoryLimit:     100,
			MaxHistoryLimit:         1000,
			MaxTransactionRetries:   3,
			TransactionRetryBackoff: time.Millisecond,
		},
		Cache: CacheConfig{
			ActorRoleTTL: time.Minute,
		},
	}
}
