package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	jwtSecretEnv   = "JWT_SECRET_KEY"
	databaseURLEnv = "DATABASE_URL"
	redisURLEnv    = "REDIS_URL"
	rabbitMQURLEnv = "RABBITMQ_URL"
	imgbbKeyEnv    = "IMGBB_API_KEY"
	portEnv        = "PORT"
)

// Config holds every setting the API and its tools need.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Auth     AuthConfig     `yaml:"auth"`
	Mail     MailConfig     `yaml:"mail"`
	Upload   UploadConfig   `yaml:"upload"`
	LogLevel string         `yaml:"log_level"`
}

type ServerConfig struct {
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

type DatabaseConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
	TimeZone string `yaml:"timezone"`
}

// DSN prefers an explicit URL and otherwise assembles a libpq keyword string.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s application_name=newsportal",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode, d.TimeZone,
	)
}

// RedisConfig is optional; an empty URL disables the trending cache.
type RedisConfig struct {
	URL         string        `yaml:"url"`
	TrendingTTL time.Duration `yaml:"trending_ttl"`
}

// RabbitMQConfig is optional; an empty URL disables publication events.
type RabbitMQConfig struct {
	URL              string `yaml:"url"`
	Exchange         string `yaml:"exchange"`
	EventsRoutingKey string `yaml:"events_routing_key"`
	ImportQueue      string `yaml:"import_queue"`
	ImportRoutingKey string `yaml:"import_routing_key"`
}

type AuthConfig struct {
	JWTSecret          string        `yaml:"jwt_secret"`
	TokenTTL           time.Duration `yaml:"token_ttl"`
	VerificationMethod string        `yaml:"verification_method"`
	OTPTTL             time.Duration `yaml:"otp_ttl"`
	LinkTTL            time.Duration `yaml:"link_ttl"`
	ResetTTL           time.Duration `yaml:"reset_ttl"`
	FrontendURL        string        `yaml:"frontend_url"`
}

type MailConfig struct {
	SMTPHost string `yaml:"smtp_host"`
	SMTPPort string `yaml:"smtp_port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Sender   string `yaml:"sender"`
}

type UploadConfig struct {
	ImageBackend     string        `yaml:"image_backend"`
	ImageMaxBytes    int64         `yaml:"image_max_bytes"`
	DocumentMaxBytes int64         `yaml:"document_max_bytes"`
	ImgBBAPIKey      string        `yaml:"imgbb_api_key"`
	ImgBBEndpoint    string        `yaml:"imgbb_endpoint"`
	ImgBBTimeout     time.Duration `yaml:"imgbb_timeout"`
	LocalDir         string        `yaml:"local_dir"`
	PublicBaseURL    string        `yaml:"public_base_url"`
	MaxImageWidth    int           `yaml:"max_image_width"`
	JPEGQuality      int           `yaml:"jpeg_quality"`
}

// Load reads .env, then the YAML file at path (if it exists) with ${VAR}
// expansion, then applies env overrides and defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.setDefaults()

	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("auth.jwt_secret (or JWT_SECRET_KEY) is required")
	}
	if m := cfg.Auth.VerificationMethod; m != "otp" && m != "link" {
		return nil, fmt.Errorf("auth.verification_method must be otp or link, got %q", m)
	}

	return &cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(jwtSecretEnv); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv(databaseURLEnv); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv(redisURLEnv); v != "" {
		c.Redis.URL = v
	}
	if v := os.Getenv(rabbitMQURLEnv); v != "" {
		c.RabbitMQ.URL = v
	}
	if v := os.Getenv(imgbbKeyEnv); v != "" {
		c.Upload.ImgBBAPIKey = v
	}
	if v := os.Getenv(portEnv); v != "" {
		c.Server.Port = v
	}
}

func (c *Config) setDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "5000"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 30 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60 * time.Second
	}
	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.User == "" {
		c.Database.User = "postgres"
	}
	if c.Database.DBName == "" {
		c.Database.DBName = "newsportal"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.TimeZone == "" {
		c.Database.TimeZone = "Asia/Kolkata"
	}
	if c.Redis.TrendingTTL == 0 {
		c.Redis.TrendingTTL = 5 * time.Minute
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "newsportal"
	}
	if c.RabbitMQ.EventsRoutingKey == "" {
		c.RabbitMQ.EventsRoutingKey = "article.published"
	}
	if c.RabbitMQ.ImportQueue == "" {
		c.RabbitMQ.ImportQueue = "cms_articles"
	}
	if c.RabbitMQ.ImportRoutingKey == "" {
		c.RabbitMQ.ImportRoutingKey = "articles"
	}
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = 7 * 24 * time.Hour
	}
	if c.Auth.VerificationMethod == "" {
		c.Auth.VerificationMethod = "otp"
	}
	if c.Auth.OTPTTL == 0 {
		c.Auth.OTPTTL = 10 * time.Minute
	}
	if c.Auth.LinkTTL == 0 {
		c.Auth.LinkTTL = 24 * time.Hour
	}
	if c.Auth.ResetTTL == 0 {
		c.Auth.ResetTTL = time.Hour
	}
	if c.Auth.FrontendURL == "" {
		c.Auth.FrontendURL = "http://localhost:3000"
	}
	if c.Upload.ImageBackend == "" {
		c.Upload.ImageBackend = "local"
	}
	if c.Upload.ImageMaxBytes == 0 {
		c.Upload.ImageMaxBytes = 5 << 20
	}
	if c.Upload.DocumentMaxBytes == 0 {
		c.Upload.DocumentMaxBytes = 10 << 20
	}
	if c.Upload.ImgBBEndpoint == "" {
		c.Upload.ImgBBEndpoint = "https://api.imgbb.com/1/upload"
	}
	if c.Upload.ImgBBTimeout == 0 {
		c.Upload.ImgBBTimeout = 30 * time.Second
	}
	if c.Upload.LocalDir == "" {
		c.Upload.LocalDir = "uploads"
	}
	if c.Upload.PublicBaseURL == "" {
		c.Upload.PublicBaseURL = "http://localhost:" + c.Server.Port + "/uploads"
	}
	if c.Upload.MaxImageWidth == 0 {
		c.Upload.MaxImageWidth = 1200
	}
	if c.Upload.JPEGQuality == 0 {
		c.Upload.JPEGQuality = 80
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
