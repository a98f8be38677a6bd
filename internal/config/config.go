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
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER" env-required:"true"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD" env-required:"true"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME" env-required:"true"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"CONN_MAX_LIFETIME" env-default:"30m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"CONN_MAX_IDLE_TIME" env-default:"5m"`
}

type Redis struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost:6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER" env-default:""`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type Cart struct {
	SessionTTL time.Duration `yaml:"SESSION_TTL" env:"CART_SESSION_TTL" env-default:"72h"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"DEFAULT_TTL" env:"CACHE_DEFAULT_TTL" env-default:"10m"`
}

type Admin struct {
	Username string `yaml:"ADMIN_USERNAME" env:"ADMIN_USERNAME" env-required:"true"`
	// Bcrypt hash of the admin password; plaintext credentials are never configured.
	PasswordHash string        `yaml:"ADMIN_PASSWORD_HASH" env:"ADMIN_PASSWORD_HASH" env-required:"true"`
	JWTKey       string        `yaml:"ADMIN_JWT_KEY" env:"ADMIN_JWT_KEY" env-required:"true"`
	TokenTTL     time.Duration `yaml:"ADMIN_TOKEN_TTL" env:"ADMIN_TOKEN_TTL" env-default:"8h"`
	// Shared secret accepted as an ?admin_key= query parameter for scripted access.
	APIKey string `yaml:"ADMIN_API_KEY" env:"ADMIN_API_KEY" env-default:""`
}

type Stripe struct {
	APIKey        string `yaml:"STRIPE_API_KEY" env:"STRIPE_API_KEY" env-default:""`
	WebhookSecret string `yaml:"STRIPE_WEBHOOK_SECRET" env:"STRIPE_WEBHOOK_SECRET" env-default:""`
	Currency      string `yaml:"STRIPE_CURRENCY" env:"STRIPE_CURRENCY" env-default:"inr"`
}

type SendGrid struct {
	APIKey    string `yaml:"SENDGRID_API_KEY" env:"SENDGRID_API_KEY" env-default:""`
	FromEmail string `yaml:"SENDGRID_FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"aparna.delights@gmail.com"`
	FromName  string `yaml:"SENDGRID_FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"Aparna's Diwali Delights"`
}

type Renderer struct {
	ChromePath  string        `yaml:"CHROME_PATH" env:"CHROME_PATH" env-default:""`
	ScaleFactor float64       `yaml:"SCALE_FACTOR" env:"RENDER_SCALE_FACTOR" env-default:"3"`
	CardWidth   int           `yaml:"CARD_WIDTH" env:"RENDER_CARD_WIDTH" env-default:"800"`
	Timeout     time.Duration `yaml:"TIMEOUT" env:"RENDER_TIMEOUT" env-default:"30s"`
}

type Share struct {
	// Public base URL the shareable greeting links are built on.
	BaseURL string `yaml:"BASE_URL" env:"SHARE_BASE_URL" env-default:"http://localhost:8080"`
}

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer `yaml:"http_server"`
	Database   Database    `yaml:"database"`
	Redis      Redis       `yaml:"redis"`
	Cart       Cart        `yaml:"cart"`
	Cache      CacheConfig `yaml:"cache"`
	Admin      Admin       `yaml:"admin"`
	Stripe     Stripe      `yaml:"stripe"`
	SendGrid   SendGrid    `yaml:"sendgrid"`
	Renderer   Renderer    `yaml:"renderer"`
	Share      Share       `yaml:"share"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}

	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	err := cleanenv.ReadConfig(configPath, &cfg)

	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return &cfg
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *Redis) GetDSN() string {
	if r.Password != "" {
		return fmt.Sprintf("redis://%s:%s@%s/%d", r.Username, r.Password, r.Host, r.DB)
	}

	return fmt.Sprintf("redis://%s/%d", r.Host, r.DB)
}
