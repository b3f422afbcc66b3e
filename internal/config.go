package internal

import (
	"fmt"

	"github.com/spf13/viper"
)

type ColstoreConfig struct {
	AppName string `mapstructure:"app_name"`

	Dump struct {
		Dialect     string `mapstructure:"dialect"`
		Compatible  bool   `mapstructure:"compatible"`
		Granularity int    `mapstructure:"granularity"`
	} `mapstructure:"dump"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

func LoadConfig(path string) (*ColstoreConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("dump.dialect", "escaped")
	v.SetDefault("dump.granularity", 8192)
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg ColstoreConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
