package config

import (
	"log"
	"os"
	"strconv"
	"sync"
)

type AppConfig struct {
	Name          string
	Env           string
	Port          string
	BaseURL       string
	AllowOrigins  string
	MaxUploadSize int
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
		port := os.Getenv("APP_PORT")
		if port == "" {
			port = ":3000"
		}
		maxUpload := 10 * 1024 * 1024
		if v := os.Getenv("MAX_FILE_SIZE"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				maxUpload = n
			}
		}
		origins := os.Getenv("ALLOWED_ORIGINS")
		if origins == "" {
			origins = "*"
		}
		appConfig = &AppConfig{
			Name:          os.Getenv("APP_NAME"),
			Env:           env,
			Port:          port,
			BaseURL:       os.Getenv("APP_URL"),
			AllowOrigins:  origins,
			MaxUploadSize: maxUpload,
		}
	})
	return appConfig
}
