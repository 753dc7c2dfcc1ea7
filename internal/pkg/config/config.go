package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, platform
//   credentials, DB connection), security settings
// - default: Values common across all environments (timeouts, fee policy),
//   standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Platform  PlatformConfig
	NoShowFee NoShowFeeConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// PlatformConfig holds credentials for the external scheduling/payments
// platform that owns bookings, catalog prices and saved cards.
type PlatformConfig struct {
	BaseURL     string        `envconfig:"PLATFORM_BASE_URL" required:"true"`
	AccessToken string        `envconfig:"PLATFORM_ACCESS_TOKEN" required:"true"`
	LocationID  string        `envconfig:"PLATFORM_LOCATION_ID" required:"true"`
	Timeout     time.Duration `envconfig:"PLATFORM_TIMEOUT" default:"15s"`
	// Outbound request budget against the platform API.
	RequestsPerSecond float64 `envconfig:"PLATFORM_REQUESTS_PER_SECOND" default:"10"`
	RequestBurst      int     `envconfig:"PLATFORM_REQUEST_BURST" default:"5"`
}

type NoShowFeeConfig struct {
	Enabled          bool   `envconfig:"NO_SHOW_FEE_ENABLED" default:"true"`
	GracePeriodHours int    `envconfig:"NO_SHOW_FEE_GRACE_HOURS" default:"24"`
	LookbackDays     int    `envconfig:"NO_SHOW_FEE_LOOKBACK_DAYS" default:"30"`
	FeePercent       int    `envconfig:"NO_SHOW_FEE_PERCENT" default:"30"`
	TriggerSecret    string `envconfig:"NO_SHOW_FEE_TRIGGER_SECRET"`
}

func (c NoShowFeeConfig) GracePeriod() time.Duration {
	return time.Duration(c.GracePeriodHours) * time.Hour
}

func (c NoShowFeeConfig) Lookback() time.Duration {
	return time.Duration(c.LookbackDays) * 24 * time.Hour
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Job-Secret"`
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

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Platform: PlatformConfig{
			BaseURL:           "http://localhost:18080",
			AccessToken:       "test-token",
			LocationID:        "LTEST",
			Timeout:           5 * time.Second,
			RequestsPerSecond: 100,
			RequestBurst:      100,
		},
		NoShowFee: NoShowFeeConfig{
			Enabled:          true,
			GracePeriodHours: 24,
			LookbackDays:     30,
			FeePercent:       30,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
