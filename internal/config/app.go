package config

import (
	"log"
	"os"
	"strconv"
	"sync"
)

type AppConfig struct {
	Name           string
	Env            string
	Port           string
	BaseURL        string
	MaxUploadBytes int64
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
		}
		maxUploadMB := int64(5)
		if raw := os.Getenv("APP_MAX_UPLOAD_MB"); raw != "" {
			if mb, err := strconv.ParseInt(raw, 10, 64); err == nil && mb > 0 {
				maxUploadMB = mb
			}
		}
		appConfig = &AppConfig{
			Name:           os.Getenv("APP_NAME"),
			Env:            env,
			Port:           os.Getenv("APP_PORT"),
			BaseURL:        os.Getenv("APP_URL"),
			MaxUploadBytes: maxUploadMB * 1024 * 1024,
		}
	})
	return appConfig
}
