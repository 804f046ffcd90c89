package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

const DefaultCORSOrigin = "https://food-delivery-client-tau.vercel.app"

type Config struct {
	Port string

	MongoURI            string
	DBName              string
	MongoConnectTimeout time.Duration

	JWTSecret         string
	SessionTTL        time.Duration
	SessionCookieName string
	CookieSecure      bool
	CookieDomain      string

	CORSOrigin string

	AdminUsername string
	AdminPassword string

	LogLevel string
	LogJSON  bool
	GinMode  string
}

// LoadEnv reads a .env file into the process environment. A missing file is not an error.
func LoadEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Flags = []cli.Flag{
	&cli.StringFlag{Name: "port", Value: "8080", EnvVars: []string{"PORT"}, Usage: "HTTP listen port"},
	&cli.StringFlag{Name: "mongo-uri", EnvVars: []string{"MONGO_URI", "DATABASE"}, Usage: "MongoDB connection string"},
	&cli.StringFlag{Name: "db-name", EnvVars: []string{"DB_NAME"}, Usage: "MongoDB database name"},
	&cli.DurationFlag{Name: "mongo-connect-timeout", Value: 30 * time.Second, EnvVars: []string{"MONGO_CONNECT_TIMEOUT"}, Usage: "give up connecting to MongoDB after this long"},
	&cli.StringFlag{Name: "jwt-secret", EnvVars: []string{"JWT_SECRET"}, Usage: "HMAC secret used to sign session tokens"},
	&cli.DurationFlag{Name: "session-ttl", Value: 24 * time.Hour, EnvVars: []string{"SESSION_TTL"}, Usage: "session lifetime"},
	&cli.StringFlag{Name: "session-cookie-name", Value: "uid", EnvVars: []string{"SESSION_COOKIE_NAME"}, Usage: "cookie carrying the session token"},
	&cli.BoolFlag{Name: "cookie-secure", EnvVars: []string{"COOKIE_SECURE"}, Usage: "mark the session cookie Secure and SameSite=None"},
	&cli.StringFlag{Name: "cookie-domain", EnvVars: []string{"COOKIE_DOMAIN"}, Usage: "domain attribute of the session cookie"},
	&cli.StringFlag{Name: "cors-origin", Value: DefaultCORSOrigin, EnvVars: []string{"CORS_ORIGIN"}, Usage: "the single origin allowed to call the API with credentials"},
	&cli.StringFlag{Name: "admin-username", EnvVars: []string{"ADMIN_USERNAME"}, Usage: "admin account seeded at startup when absent"},
	&cli.StringFlag{Name: "admin-password", EnvVars: []string{"ADMIN_PASSWORD"}, Usage: "password of the seeded admin account"},
	&cli.StringFlag{Name: "log-level", Value: "info", EnvVars: []string{"LOG_LEVEL"}, Usage: "debug, info, warn or error"},
	&cli.BoolFlag{Name: "log-json", Value: true, EnvVars: []string{"LOG_JSON"}, Usage: "log in JSON format"},
	&cli.StringFlag{Name: "gin-mode", Value: "release", EnvVars: []string{"GIN_MODE"}, Usage: "gin mode: debug, release or test"},
}

func FromCLI(cCtx *cli.Context) (*Config, error) {
	cfg := &Config{
		Port:                cCtx.String("port"),
		MongoURI:            cCtx.String("mongo-uri"),
		DBName:              cCtx.String("db-name"),
		MongoConnectTimeout: cCtx.Duration("mongo-connect-timeout"),
		JWTSecret:           cCtx.String("jwt-secret"),
		SessionTTL:          cCtx.Duration("session-ttl"),
		SessionCookieName:   cCtx.String("session-cookie-name"),
		CookieSecure:        cCtx.Bool("cookie-secure"),
		CookieDomain:        cCtx.String("cookie-domain"),
		CORSOrigin:          cCtx.String("cors-origin"),
		AdminUsername:       cCtx.String("admin-username"),
		AdminPassword:       cCtx.String("admin-password"),
		LogLevel:            cCtx.String("log-level"),
		LogJSON:             cCtx.Bool("log-json"),
		GinMode:             cCtx.String("gin-mode"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var missing []string
	if c.MongoURI == "" {
		missing = append(missing, "MONGO_URI")
	}
	if c.DBName == "" {
		missing = append(missing, "DB_NAME")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.SessionCookieName == "" {
		return errors.New("SESSION_COOKIE_NAME must not be empty")
	}
	if (c.AdminUsername == "") != (c.AdminPassword == "") {
		return errors.New("ADMIN_USERNAME and ADMIN_PASSWORD must be set together")
	}
	return nil
}
