package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port            string   `mapstructure:"PORT"`
	Env             string   `mapstructure:"ENV"`
	DatabaseURL     string   `mapstructure:"DATABASE_URL"`
	DBMaxConns      int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns      int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins     []string `mapstructure:"CORS_ORIGINS"`
	AssistantPolicy string   `mapstructure:"ASSISTANT_POLICY"`
	SeedDemoData    bool     `mapstructure:"SEED_DEMO_DATA"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("ASSISTANT_POLICY", "dashboard")
	v.SetDefault("SEED_DEMO_DATA", false)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("ASSISTANT_POLICY")
	v.BindEnv("SEED_DEMO_DATA")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" && !cfg.IsDev() {
		return nil, fmt.Errorf("DATABASE_URL is required outside development")
	}

	if cfg.DatabaseURL == "" {
		log.Println("WARNING: DATABASE_URL not set, using the in-memory store.")
		log.Println("WARNING: All data is lost on restart. Set DATABASE_URL for persistence.")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// InMemory reports whether the server should run against the in-memory
// store instead of Postgres.
func (c *Config) InMemory() bool {
	return c.DatabaseURL == ""
}

// Validate checks that the configuration is safe to run.
func (c *Config) Validate() error {
	switch c.AssistantPolicy {
	case "dashboard", "messaging":
	default:
		return fmt.Errorf("ASSISTANT_POLICY must be \"dashboard\" or \"messaging\", got %q", c.AssistantPolicy)
	}
	if c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS (%d) must not exceed DB_MAX_CONNS (%d)", c.DBMinConns, c.DBMaxConns)
	}
	return nil
}
