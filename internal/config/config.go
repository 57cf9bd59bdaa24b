package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config aggregates the runtime configuration. Values come from the process
// environment, optionally seeded from a .env file.
type Config struct {
	// Env is the deployment environment. "production" hides stack traces in
	// error responses and marks the session cookie Secure.
	Env  string `env:"APP_ENV" envDefault:"development"`
	Port uint16 `env:"PORT" envDefault:"8080"`

	Log     Logger  `envPrefix:"LOG_"`
	Mongo   Mongo   `envPrefix:"MONGO_"`
	Session Session `envPrefix:"SESSION_"`
	Google  Google  `envPrefix:"GOOGLE_"`
	YouTube YouTube `envPrefix:"YOUTUBE_"`
	AI      AI      `envPrefix:"AI_"`

	RedisURL          string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	UploadDir         string        `env:"UPLOAD_DIR" envDefault:"uploads"`
	BcryptCost        int           `env:"BCRYPT_COST" envDefault:"10"`
	HTTPClientTimeout time.Duration `env:"HTTP_CLIENT_TIMEOUT" envDefault:"10s"`
}

type Mongo struct {
	URI      string `env:"URI,required,notEmpty"`
	Database string `env:"DATABASE" envDefault:"influencehub"`
}

type Session struct {
	Secret string        `env:"SECRET,required,notEmpty"`
	TTL    time.Duration `env:"TTL" envDefault:"24h"`
}

type Google struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	CallbackURL  string `env:"CALLBACK_URL" envDefault:"http://localhost:8080/api/v1/auth/google/callback"`
}

type YouTube struct {
	APIKey    string  `env:"API_KEY"`
	BaseURL   string  `env:"BASE_URL" envDefault:"https://www.googleapis.com/youtube/v3"`
	RateLimit float64 `env:"RATE_LIMIT" envDefault:"5"`
}

type AI struct {
	MatcherURL string   `env:"MATCHER_API_URL"`
	MatcherKey string   `env:"MATCHER_API_KEY"`
	MockIDs    []string `env:"MATCHER_MOCK_IDS" envSeparator:"," envDefault:"683b4a1dc6d6b42f75edf460,683b4a1ec6d6b42f75edf47a,683b4a2ac6d6b42f75edf634,683b4a2bc6d6b42f75edf64e"`
	CallNumber string   `env:"CALL_NUMBER" envDefault:"+918318396827"`
}

// Load reads an optional .env file and parses the environment into a Config.
// A missing .env file is not an error; missing required variables are.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// IsProduction reports whether the service runs in production mode.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}
