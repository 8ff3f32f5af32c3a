package config_test

import (
	"errors"
	"testing"

	"github.com/peiplay/console-core/config"
	"github.com/peiplay/console-core/utils"
)

func TestLoadAppConfigDefaults(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("API_BASE_URL", "")
	t.Setenv("PAGE_SIZE_DEFAULT", "")

	cfg, err := config.LoadAppConfig()
	if err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}
	if cfg.AppName == "" || cfg.APIBaseURL == "" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.PageSizeDefault != 20 {
		t.Fatalf("pageSizeDefault = %d, want 20", cfg.PageSizeDefault)
	}
}

func TestLoadAppConfigOverrides(t *testing.T) {
	t.Setenv("APP_NAME", "peiplay-console-staging")
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("PAGE_SIZE_DEFAULT", "50")

	cfg, err := config.LoadAppConfig()
	if err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}
	if cfg.AppName != "peiplay-console-staging" {
		t.Fatalf("appName = %q", cfg.AppName)
	}
	if cfg.APIBaseURL != "https://api.example.com" {
		t.Fatalf("apiBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.PageSizeDefault != 50 {
		t.Fatalf("pageSizeDefault = %d, want 50", cfg.PageSizeDefault)
	}
}

func TestLoadAppConfigRejectsBadURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "not-a-url")

	_, err := config.LoadAppConfig()
	if err == nil {
		t.Fatalf("bad API_BASE_URL accepted")
	}
	if !errors.Is(err, utils.ErrorInvalidConfig) {
		t.Fatalf("err = %v, want ErrorInvalidConfig", err)
	}
}

func TestLoadAppConfigIgnoresUnparsableInt(t *testing.T) {
	t.Setenv("PAGE_SIZE_DEFAULT", "lots")

	cfg, err := config.LoadAppConfig()
	if err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}
	if cfg.PageSizeDefault != 20 {
		t.Fatalf("pageSizeDefault = %d, want default 20", cfg.PageSizeDefault)
	}
}
