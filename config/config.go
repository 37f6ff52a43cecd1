package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv    string   `env:"APP_ENV" envDefault:"local"`
	Port      string   `env:"PORT" envDefault:"8080"`
	GinMode   string   `env:"GIN_MODE" envDefault:"debug"`
	FEOrigins []string `env:"FE_ORIGINS" envSeparator:";" envDefault:"http://localhost:3000"`

	DBUser     string `env:"DB_USER"`
	DBPass     string `env:"DB_PASS"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost:3306"`
	DBName     string `env:"DB_NAME" envDefault:"next-blog"`
	DBTLS      bool   `env:"DB_TLS" envDefault:"false"`
	DBMaxConns int    `env:"DB_MAX_CONNS" envDefault:"50"`

	MigrateOnStart bool `env:"MIGRATE_ON_START" envDefault:"true"`

	JWTAccessSecret  string        `env:"JWT_ACCESS_SECRET"`
	JWTRefreshSecret string        `env:"JWT_REFRESH_SECRET"`
	JWTIssuer        string        `env:"JWT_ISSUER" envDefault:"next-blog-be"`
	JWTAudience      string        `env:"JWT_AUDIENCE" envDefault:"next-blog-fe"`
	AccessTokenTTL   time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"30m"`
	RefreshTokenTTL  time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"720h"`

	TokenSweepSchedule string `env:"TOKEN_SWEEP_SCHEDULE" envDefault:"@every 1h"`

	// ImageBucket enables blob names as post images. Empty disables firebase.
	ImageBucket string `env:"IMAGE_BUCKET"`

	AuthRateLimitRPS   float64 `env:"AUTH_RATE_LIMIT_RPS" envDefault:"5"`
	AuthRateLimitBurst int     `env:"AUTH_RATE_LIMIT_BURST" envDefault:"10"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	return cfg
}

func (c *Config) Validate() error {
	if c.JWTAccessSecret == "" || c.JWTRefreshSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must be set")
	}
	if c.JWTAccessSecret == c.JWTRefreshSecret {
		return fmt.Errorf("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must differ")
	}
	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		return fmt.Errorf("token ttls must be positive")
	}
	return nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?tls=%t&parseTime=true",
		c.DBUser, c.DBPass, c.DBHost, c.DBName, c.DBTLS)
}
