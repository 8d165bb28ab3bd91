package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type Config struct {
	Input    string    `mapstructure:"input"`
	Workers  int       `mapstructure:"workers"`
	Extended bool      `mapstructure:"extended"`
	Version  bool      `mapstructure:"version"`
	Log      LogConfig `mapstructure:"log"`
}

// NewFlagSet returns the command line flags understood by Load.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("config", "c", "", "config file (yaml, json or toml)")
	fs.StringP("input", "i", "-", "rounds document, - for stdin")
	fs.IntP("workers", "w", 8, "number of rounds judged concurrently")
	fs.Bool("extended", false, "enable long straights, pair sequences and airplanes")
	fs.Bool("version", false, "print build information and exit")
	fs.String("log.level", "info", "log level")
	fs.Bool("log.pretty", false, "human friendly console logs")
	// read through viper.GetBool("log.traced") by the judge
	fs.Bool("log.traced", false, "log every judged round")
	return fs
}

// Load parses args into the global viper instance and decodes the result.
// Precedence: flags, DDZ_* environment, config file, flag defaults.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := viper.BindPFlags(fs); err != nil {
		return nil, err
	}

	viper.SetEnvPrefix("DDZ")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path := viper.GetString("config"); path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Workers <= 0 {
		return nil, fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, cfg.Workers)
	}
	return &cfg, nil
}
