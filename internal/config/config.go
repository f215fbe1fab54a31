package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the server reads from the environment.
// Values come from the real environment or a local .env file.
type Config struct {
	Port              string   `envconfig:"PORT" default:"8080"`
	DBDSN             string   `envconfig:"DB_DSN"`
	JWTSecret         string   `envconfig:"JWT_SECRET" default:"huerta_dev_secret_change_me"`
	GeminiAPIKey      string   `envconfig:"GEMINI_API_KEY"`
	AllowRegistration bool     `envconfig:"ALLOW_REGISTRATION" default:"true"`
	AllowedOrigins    []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	BaseURL           string   `envconfig:"BASE_URL" default:"http://localhost:8080"`
	UploadDir         string   `envconfig:"UPLOAD_DIR" default:"./uploads"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
