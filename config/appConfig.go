package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/peiplay/console-core/utils"
)

// AppConfig is resolved once at process start and passed explicitly to
// whatever composes the console components. Nothing below this layer reads
// the environment.
type AppConfig struct {
	AppName    string `validate:"required"`
	APIBaseURL string `validate:"required,url"`

	// PageSizeDefault is the console's default table page size.
	PageSizeDefault int `validate:"gte=1,lte=200"`
}

const (
	defaultAppName    = "peiplay-console"
	defaultAPIBaseURL = "http://127.0.0.1:7001"
	defaultPageSize   = 20
)

// LoadAppConfig reads .env (if present) and the process environment.
// Call it exactly once, at startup.
func LoadAppConfig() (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := &AppConfig{
		AppName:         envOrDefault("APP_NAME", defaultAppName),
		APIBaseURL:      envOrDefault("API_BASE_URL", defaultAPIBaseURL),
		PageSizeDefault: envIntOrDefault("PAGE_SIZE_DEFAULT", defaultPageSize),
	}

	if err := validator.New().Struct(cfg); err != nil {
		fieldErrors := utils.ProcessValidationErrors(err)
		return nil, fmt.Errorf("%w: %v", utils.ErrorInvalidConfig, fieldErrors)
	}
	return cfg, nil
}

func envOrDefault(key string, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func envIntOrDefault(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
