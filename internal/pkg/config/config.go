package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (policy constants, timeouts), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Gateway GatewayConfig
	Policy  PolicyConfig
	Sweep   SweepConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Seoul"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	// Channel the UI subscribes to for lesson seat-count updates.
	CapacityChannel string `envconfig:"REDIS_CAPACITY_CHANNEL" default:"lesson:capacity"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Seoul"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure bool   `envconfig:"COOKIE_SECURE" default:"false"`
}

// GatewayConfig describes the external payment gateway contract.
type GatewayConfig struct {
	// Empty list disables IP filtering on the notification endpoint.
	AllowedIPs []string `envconfig:"GATEWAY_ALLOWED_IPS" default:""`
	// Expected locker fee portion of a combined payment, in KRW.
	LockerFee int64 `envconfig:"GATEWAY_LOCKER_FEE" default:"30000"`
	// Amount-split tolerance band around the locker fee, in KRW.
	LockerFeeTolerance int64 `envconfig:"GATEWAY_LOCKER_FEE_TOLERANCE" default:"1000"`
}

// PolicyConfig carries enrollment and refund policy constants.
type PolicyConfig struct {
	HoldTTL         time.Duration `envconfig:"POLICY_HOLD_TTL" default:"5m"`
	DailyRate       int64         `envconfig:"POLICY_DAILY_RATE" default:"3500"`
	RetryAttempts   int           `envconfig:"POLICY_RETRY_ATTEMPTS" default:"3"`
	RetryBackoff    time.Duration `envconfig:"POLICY_RETRY_BACKOFF" default:"1s"`
	RetryMultiplier float64       `envconfig:"POLICY_RETRY_MULTIPLIER" default:"1.5"`
}

type SweepConfig struct {
	ExpiryInterval  time.Duration `envconfig:"SWEEP_EXPIRY_INTERVAL" default:"5m"`
	ReleaseInterval time.Duration `envconfig:"SWEEP_RELEASE_INTERVAL" default:"24h"`
	ResyncInterval  time.Duration `envconfig:"SWEEP_RESYNC_INTERVAL" default:"1h"`
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
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Seoul",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Seoul",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Gateway: GatewayConfig{
			LockerFee:          30000,
			LockerFeeTolerance: 1000,
		},
		Policy: PolicyConfig{
			HoldTTL:         5 * time.Minute,
			DailyRate:       3500,
			RetryAttempts:   3,
			RetryBackoff:    time.Second,
			RetryMultiplier: 1.5,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-tests-only",
			Duration: "24h",
		},
		Redis: RedisConfig{
			Addr:            "localhost:16380", // Test Redis port
			CapacityChannel: "lesson:capacity",
		},
	}
}
