package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Input    string `mapstructure:"input"`
	Output   string `mapstructure:"output"`
	Listen   string `mapstructure:"listen"`
	LogLevel string `mapstructure:"log_level"`
	DB       string `mapstructure:"db"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output", "./output")
	v.SetDefault("listen", "127.0.0.1:8050")
	v.SetDefault("log_level", "info")
}

// loadConfig merges, highest first: flags, GENEPLATTER_* env (after .env),
// ./geneplatter.toml, defaults.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("GENEPLATTER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("geneplatter")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read geneplatter.toml")
		}
	}

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return nil, errors.Wrap(bindErr, "bind flags")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}
