package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Адреса сервисов по умолчанию.
const (
	DefaultUserServiceAddr = "localhost:8081"
	DefaultTodoServiceAddr = "localhost:8082"
)

// devSecret используется, только если AUTH_SECRET не задан. Оба сервиса
// должны получать один и тот же секрет, иначе todo-сервис не примет токены user-сервиса.
const devSecret = "dev-secret-key-change-me-0123456789"

type Config struct {
	// Настройки сервера
	DatabaseDSN string        `env:"DATABASE_URI"`
	AuthSecret  string        `env:"AUTH_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL"`
	BcryptCost  int           `env:"BCRYPT_COST"`

	// Общие настройки
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Настройки клиента
	UserServiceURL string `env:"USER_SERVICE_URL"`
	TodoServiceURL string `env:"TODO_SERVICE_URL"`
	TokenFile      string `env:"TOKEN_FILE"`
	Version        bool   `env:"-"` // show client version and exit (flag only)

	// ServerURL: BaseURL со схемой, вычисляется
	ServerURL string `env:"-"`
}

// NewConfig собирает конфиг: .env -> переменные окружения -> флаги.
// defaultBaseURL: адрес по умолчанию для конкретного бинарника.
func NewConfig(defaultBaseURL string) *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги перекрывают значения из env
	// флаги сервера
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN (postgres://... or sqlite path); empty keeps data in memory")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "JWT signing secret shared by both services (>= 32 bytes)")
	flag.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "token lifetime")
	flag.IntVar(&cfg.BcryptCost, "bcrypt-cost", cfg.BcryptCost, "bcrypt cost for password hashes")
	// общие флаги
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "listen address in host:port form")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "use https scheme for ServerURL")
	// флаги клиента
	flag.StringVar(&cfg.UserServiceURL, "user-url", cfg.UserServiceURL, "user service URL (client)")
	flag.StringVar(&cfg.TodoServiceURL, "todo-url", cfg.TodoServiceURL, "todo service URL (client)")
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "path to auth token file (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "show client version and exit")

	flag.Parse()

	cfg.applyDefaults(defaultBaseURL)
	return cfg
}

func (cfg *Config) applyDefaults(defaultBaseURL string) {
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = devSecret
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}

	// BaseURL: только "address:port" (без схемы и пути), иначе значение по умолчанию
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = defaultBaseURL
	}

	scheme := "http://"
	if cfg.EnableHTTPS {
		scheme = "https://"
	}
	cfg.ServerURL = scheme + cfg.BaseURL

	if cfg.UserServiceURL == "" {
		cfg.UserServiceURL = scheme + DefaultUserServiceAddr
	}
	if cfg.TodoServiceURL == "" {
		cfg.TodoServiceURL = scheme + DefaultTodoServiceAddr
	}
	if cfg.TokenFile == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.TokenFile = filepath.Join(dir, "TodoAuth", "auth_token")
		} else {
			home, _ := os.UserHomeDir()
			cfg.TokenFile = filepath.Join(home, ".todoauth_token")
		}
	}
}
