package config

import (
	"fmt"
	"net"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env     string `envconfig:"APP_ENV" default:"development"`
	Port    int    `envconfig:"APP_PORT" default:"8080"`
	// proxies allowed to set X-Forwarded-For; empty trusts none
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`
	Catalog CatalogConfig
	DB      DBConfig
	Redis   RedisConfig
	Limiter RateLimiterConfig
	CORS    CORSConfig
	Auth    AuthConfig
	Crypto  CryptoConfig
	LLM     LLMConfig
	Grading GradingConfig
}

// question and interview catalog sources
type CatalogConfig struct {
	StaticDir      string `envconfig:"STATIC_DIR" default:"static"`
	QuestionsFile  string `envconfig:"QUESTIONS_FILE" default:"InterviewQuestionList.json"`
	InterviewsFile string `envconfig:"INTERVIEWS_FILE" default:"mian-jing.json"`
	// when set, the catalog is fetched over HTTP instead of read from disk
	QuestionsURL  string        `envconfig:"QUESTIONS_URL"`
	InterviewsURL string        `envconfig:"INTERVIEWS_URL"`
	Encoded       bool          `envconfig:"QUESTIONS_ENCODED" default:"false"`
	FetchTimeout  time.Duration `envconfig:"CATALOG_FETCH_TIMEOUT" default:"10s"`
}

// database configuration; an empty DSN disables the Postgres catalog
type DBConfig struct {
	DSN      string `envconfig:"DATABASE_URL"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	Migrate  bool   `envconfig:"DB_MIGRATE" default:"true"`
}

// redis configuration; an empty address keeps grading tokens in memory
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// rate limiting configuration for the grading endpoint
type RateLimiterConfig struct {
	RPS     float64 `envconfig:"RATE_LIMIT_RPS" default:"2"`
	Burst   int     `envconfig:"RATE_LIMIT_BURST" default:"5"`
	Enabled bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigins []string `envconfig:"CORS_TRUSTED_ORIGINS" default:"http://localhost:3000,http://localhost:4173,http://localhost:5173"`
}

// login gate configuration
type AuthConfig struct {
	Password   string        `envconfig:"APP_PASSWORD" default:"interview2024"`
	JWTSecret  string        `envconfig:"JWT_SECRET" required:"true"`
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"12h"`
}

// encryption configuration
type CryptoConfig struct {
	// only needed when grading tokens are kept in redis
	Secret string `envconfig:"AES_SECRET_KEY"`
}

// completion provider configuration (OpenAI or any compatible endpoint)
type LLMConfig struct {
	BaseURL     string        `envconfig:"LLM_BASE_URL" default:"https://api.openai.com/v1"`
	APIKey      string        `envconfig:"LLM_API_KEY"`
	AgentModel  string        `envconfig:"LLM_AGENT_MODEL" default:"gpt-4o-mini"`
	Timeout     time.Duration `envconfig:"LLM_TIMEOUT" default:"60s"`
	ScrapeAgent string        `envconfig:"SCRAPE_USER_AGENT" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"`
}

// answer grading; an empty URL grades in process
type GradingConfig struct {
	URL     string        `envconfig:"GRADING_URL"`
	Timeout time.Duration `envconfig:"GRADING_TIMEOUT" default:"90s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if (c.Catalog.QuestionsURL == "") != (c.Catalog.InterviewsURL == "") {
		return fmt.Errorf("QUESTIONS_URL and INTERVIEWS_URL must be set together")
	}
	if c.DB.DSN != "" && c.DB.MaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be at least 1")
	}
	if c.Limiter.RPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be non-negative")
	}
	if c.Limiter.Burst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1")
	}
	if c.Auth.Password == "" {
		return fmt.Errorf("APP_PASSWORD must not be empty")
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Redis.Addr != "" {
		secretLen := len(c.Crypto.Secret)
		if secretLen != 16 && secretLen != 24 && secretLen != 32 {
			return fmt.Errorf("AES_SECRET_KEY must be 16, 24, or 32 bytes when REDIS_ADDR is set (got %d)", secretLen)
		}
	}
	for _, p := range c.TrustedProxies {
		p = strings.TrimSpace(p)
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return fmt.Errorf("invalid TRUSTED_PROXIES entry: %q", p)
			}
		}
	}
	if len(c.GetCORSOrigins()) == 0 {
		return fmt.Errorf("at least one trusted origin must be specified")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// GetCORSOrigins returns the list of trusted CORS origins
func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.CORS.TrustedOrigins))
	for _, origin := range c.CORS.TrustedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (c *Config) QuestionsPath() string {
	return filepath.Join(c.Catalog.StaticDir, c.Catalog.QuestionsFile)
}

func (c *Config) InterviewsPath() string {
	return filepath.Join(c.Catalog.StaticDir, c.Catalog.InterviewsFile)
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%d, Catalog.StaticDir=%s, Catalog.Encoded=%t, DB=%t, Redis=%t, "+
		"Limiter.RPS=%.2f, Limiter.Burst=%d, Limiter.Enabled=%t, CORS.Origins=%d, "+
		"Auth.SessionTTL=%s, LLM.BaseURL=%s, Grading.Remote=%t}",
		c.Env, c.Port, c.Catalog.StaticDir, c.Catalog.Encoded, c.DB.DSN != "", c.Redis.Addr != "",
		c.Limiter.RPS, c.Limiter.Burst, c.Limiter.Enabled, len(c.GetCORSOrigins()),
		c.Auth.SessionTTL, c.LLM.BaseURL, c.Grading.URL != "")
}
