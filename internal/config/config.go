package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

type Config struct {
	Env             string `yaml:"env"`
	BaseURL         string `yaml:"base_url"`
	ShortCodeLength int    `yaml:"short_code_length"`
	HTTPServer      `yaml:"http_server"`
	Postgres        `yaml:"postgres"`
	Redis           `yaml:"redis"`
	RateLimit       `yaml:"rate_limit"`
	Auth            `yaml:"auth"`
	GeoIP           `yaml:"geoip"`
	Analytics       `yaml:"analytics"`
	LinkCache       `yaml:"link_cache"`
}

type HTTPServer struct {
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
	MaxHeaderBytes int           `yaml:"max_header_bytes"`
	CertFile       string        `yaml:"cert_file"`
	KeyFile        string        `yaml:"key_file"`
}

var defaultHTTPServer = HTTPServer{
	Port:           8080,
	ReadTimeout:    5 * time.Second,
	WriteTimeout:   10 * time.Second,
	IdleTimeout:    time.Minute,
	MaxHeaderBytes: 1 << 20,
}

func (s *HTTPServer) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type Postgres struct {
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	DB              string        `yaml:"db"`
	SSLMode         string        `yaml:"sslmode"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	ConnectAttempts int           `yaml:"connect_attempts"`
	MigrationsPath  string        `yaml:"migrations_path"`
}

var defaultPostgres = Postgres{
	Host:            "localhost",
	Port:            5432,
	SSLMode:         "disable",
	ConnMaxIdleTime: 5 * time.Minute,
	ConnMaxLifetime: 30 * time.Minute,
	MaxIdleConns:    5,
	MaxOpenConns:    25,
	ConnectAttempts: 5,
	MigrationsPath:  "file://migrations",
}

func (p *Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.DB, p.SSLMode)
}

// Redis is optional. An empty Addr keeps rate limiting in process memory.
type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type RateLimit struct {
	Requests int           `yaml:"requests"`
	Window   time.Duration `yaml:"window"`
}

var defaultRateLimit = RateLimit{
	Requests: 100,
	Window:   time.Hour,
}

// Auth may be left empty in dev only, where authenticated routes then answer 401.
type Auth struct {
	JWTSecret string `yaml:"jwt_secret"`
}

// GeoIP points at a MaxMind City database. An empty path disables click geolocation.
type GeoIP struct {
	DBPath string `yaml:"db_path"`
}

type Analytics struct {
	TimeZone     string        `yaml:"time_zone"`
	QueryTimeout time.Duration `yaml:"query_timeout"`
}

var defaultAnalytics = Analytics{
	TimeZone:     "UTC",
	QueryTimeout: 10 * time.Second,
}

// Location resolves the time zone used to bucket clicks by date.
func (a *Analytics) Location() (*time.Location, error) {
	const op = "config.Analytics.Location"

	loc, err := time.LoadLocation(a.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to load time zone %q: %w", op, a.TimeZone, err)
	}

	return loc, nil
}

type LinkCache struct {
	Size int `yaml:"size"`
}

var defaultLinkCache = LinkCache{
	Size: 10000,
}

func Load(path string) (*Config, error) {
	const op = "config.Load"

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open config file: %w", op, err)
	}
	defer f.Close()

	var cfg Config
	setDefaults(&cfg)

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to decode config file: %w", op, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Env = EnvDev
	cfg.BaseURL = "http://localhost:8080/api/v1/shorten"
	cfg.ShortCodeLength = 7
	cfg.HTTPServer = defaultHTTPServer
	cfg.Postgres = defaultPostgres
	cfg.RateLimit = defaultRateLimit
	cfg.Analytics = defaultAnalytics
	cfg.LinkCache = defaultLinkCache
}

func (cfg *Config) validate() error {
	if cfg.ShortCodeLength < 1 {
		return fmt.Errorf("short_code_length must be positive, got %d", cfg.ShortCodeLength)
	}
	if cfg.RateLimit.Requests < 1 {
		return fmt.Errorf("rate_limit.requests must be positive, got %d", cfg.RateLimit.Requests)
	}
	if cfg.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.window must be positive, got %s", cfg.RateLimit.Window)
	}
	if cfg.Analytics.QueryTimeout <= 0 {
		return fmt.Errorf("analytics.query_timeout must be positive, got %s", cfg.Analytics.QueryTimeout)
	}
	if _, err := cfg.Analytics.Location(); err != nil {
		return err
	}
	if cfg.Auth.JWTSecret == "" && cfg.Env != EnvDev {
		return fmt.Errorf("auth.jwt_secret is required in %s", cfg.Env)
	}
	return nil
}
