package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type AppConfig struct {
	Env             string        `yaml:"env" env:"ENV" env-default:"prod"`
	APIBaseURL      string        `yaml:"api_base_url" env:"API_BASE_URL"`
	LaunchURL       string        `yaml:"launch_url" env:"LAUNCH_URL"`
	RefreshInterval time.Duration `yaml:"refresh_interval" env:"REFRESH_INTERVAL" env-default:"30s"`
	HTTPTimeout     time.Duration `yaml:"http_timeout" env:"HTTP_TIMEOUT" env-default:"10s"`
}

// Load читает настройки из YAML-файла и переменных окружения.
func Load() (*AppConfig, error) {
	var cfg AppConfig

	path := fetchConfigPath()
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("ошибка загрузки конфига: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("ошибка чтения окружения: %w", err)
		}
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("api_base_url должен быть задан")
	}
	return &cfg, nil
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
// Default value is empty string.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
