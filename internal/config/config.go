package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
}

// Backend is the catalogue/cart REST service this BFF fronts.
type Backend struct {
	BaseURL string        `yaml:"BASE_URL" env:"BACKEND_BASE_URL" env-default:"http://localhost:3001/api"`
	Timeout time.Duration `yaml:"TIMEOUT" env:"BACKEND_TIMEOUT" env-default:"10s"`
}

const (
	DraftDriverMemory   = "memory"
	DraftDriverRedis    = "redis"
	DraftDriverPostgres = "postgres"

	DraftScopeProduct = "product"
	DraftScopeUser    = "user"
)

type Drafts struct {
	Driver string        `yaml:"DRIVER" env:"DRAFT_DRIVER" env-default:"memory"`
	Scope  string        `yaml:"SCOPE" env:"DRAFT_SCOPE" env-default:"product"`
	TTL    time.Duration `yaml:"TTL" env:"DRAFT_TTL" env-default:"720h"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"30m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type Security struct {
	JWTKey string `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
}

type Events struct {
	Debounce  time.Duration `yaml:"DEBOUNCE" env:"EVENTS_DEBOUNCE" env-default:"150ms"`
	Heartbeat time.Duration `yaml:"HEARTBEAT" env:"EVENTS_HEARTBEAT" env-default:"25s"`
	// Channel enables the cross-instance Redis bridge when non-empty.
	Channel string `yaml:"CHANNEL" env:"EVENTS_CHANNEL"`
}

type Otel struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"gradwear-storefront"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   `yaml:"http_server"`
	Backend      Backend      `yaml:"backend"`
	Drafts       Drafts       `yaml:"drafts"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	Security     Security     `yaml:"security"`
	Events       Events       `yaml:"events"`
	Otel         Otel         `yaml:"otel"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "path to the YAML config file")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}

	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return cfg

}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", configPath, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Drafts.Driver {
	case DraftDriverMemory, DraftDriverRedis, DraftDriverPostgres:
	default:
		return fmt.Errorf("unknown draft driver %q", c.Drafts.Driver)
	}

	switch c.Drafts.Scope {
	case DraftScopeProduct, DraftScopeUser:
	default:
		return fmt.Errorf("unknown draft scope %q", c.Drafts.Scope)
	}

	return nil
}

// NeedsRedis reports whether any component is configured to use Redis.
func (c *Config) NeedsRedis() bool {
	return c.Drafts.Driver == DraftDriverRedis || c.Events.Channel != ""
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s", r.Username, r.Password, r.Host, r.Port)
}
