package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between deployments (port, engine credentials)
// - default: Values common across all environments (timezone, timeout, window)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	Engine EngineConfig
	Voice  VoiceConfig
	Guard  GuardConfig
	CORS   CORSConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// EngineConfig identifies the external reservation engine (Checkfront API 3.0).
type EngineConfig struct {
	Domain         string        `envconfig:"CHECKFRONT_DOMAIN" required:"true"`
	APIKey         string        `envconfig:"CHECKFRONT_API_KEY" required:"true"`
	APISecret      string        `envconfig:"CHECKFRONT_API_SECRET" required:"true"`
	CancelStatusID string        `envconfig:"CHECKFRONT_CANCEL_STATUS_ID" default:"VOID"`
	Timeout        time.Duration `envconfig:"CHECKFRONT_TIMEOUT" default:"10s"`
}

type VoiceConfig struct {
	Timezone      string `envconfig:"TIMEZONE" default:"Europe/Dublin"`
	WindowDays    int    `envconfig:"AVAILABILITY_WINDOW_DAYS" default:"7"`
	DefaultRegion string `envconfig:"PHONE_DEFAULT_REGION" default:"IE"`
}

// GuardConfig protects the webhook endpoints. Either a shared internal token
// or an HS256 bearer token issued by the hosting platform is accepted.
type GuardConfig struct {
	InternalToken string `envconfig:"INTERNAL_TOKEN" default:""`
	JWTSecret     string `envconfig:"GUARD_JWT_SECRET" default:""`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,x-internal-token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

func (c *EngineConfig) BaseURL() string {
	return fmt.Sprintf("https://%s/api/3.0", c.Domain)
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
			Port: "8889",
		},
		Engine: EngineConfig{
			Domain:         "demo.checkfront.test",
			APIKey:         "test-key",
			APISecret:      "test-secret",
			CancelStatusID: "VOID",
			Timeout:        2 * time.Second,
		},
		Voice: VoiceConfig{
			Timezone:      "Europe/Dublin",
			WindowDays:    7,
			DefaultRegion: "IE",
		},
		Guard: GuardConfig{},
		CORS: CORSConfig{
			AllowOrigins:  []string{"*"},
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "x-internal-token"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		},
		Log: LogConfig{
			Level:      "error",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
