package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const defaultMaxUploadBytes = 10 << 20 // uploads above 10 MB are rejected

type Config struct {
	ServerAddr     string `mapstructure:"server_addr"`
	CataloguePath  string `mapstructure:"catalogue_path"`
	LabelsPath     string `mapstructure:"labels_path"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("server_addr", ":8080")
	v.SetDefault("max_upload_bytes", defaultMaxUploadBytes)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.CataloguePath == "" {
		return nil, fmt.Errorf("catalogue_path is required")
	}
	return &cfg, nil
}
