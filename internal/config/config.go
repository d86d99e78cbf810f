package config

import (
	"errors"
	"fmt"
	"github.com/litetable/litetable-mrunit/internal/litetable"
	"github.com/spf13/viper"
	"os"
	"path/filepath"
	"strings"
)

const (
	configFileName = "litetable-mrunit.conf"
	envPrefix      = "MRUNIT"

	StrategyKey        = "key"
	StrategyPositional = "positional"

	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config is read from litetable-mrunit.conf in the LiteTable directory:
//
//	# verify settings
//	debug=false
//	log_format=console
//	strategy=key
//	exact_keys=false
//	record_dir=/home/me/.litetable
//
// Every key may be overridden by an MRUNIT_ environment variable or a bound command flag.
type Config struct {
	Debug     bool   `mapstructure:"debug"`
	LogFormat string `mapstructure:"log_format"`
	Strategy  string `mapstructure:"strategy"`
	ExactKeys bool   `mapstructure:"exact_keys"`
	RecordDir string `mapstructure:"record_dir"`
}

func (c *Config) validate() error {
	var errGrp []error
	switch c.LogFormat {
	case FormatConsole, FormatJSON:
	default:
		errGrp = append(errGrp, fmt.Errorf("invalid log format %q", c.LogFormat))
	}
	switch c.Strategy {
	case StrategyKey, StrategyPositional:
	default:
		errGrp = append(errGrp, fmt.Errorf("invalid strategy %q", c.Strategy))
	}
	if c.RecordDir == "" {
		errGrp = append(errGrp, errors.New("record directory cannot be empty"))
	}
	return errors.Join(errGrp...)
}

// NewConfig loads the configuration from the LiteTable directory, ~/.litetable unless
// LITETABLE_HOME points elsewhere.
func NewConfig(v *viper.Viper) (*Config, error) {
	liteTableDir, err := litetable.Dir()
	if err != nil {
		return nil, fmt.Errorf("failed to get LiteTable directory: %w", err)
	}
	return Load(v, liteTableDir)
}

// Load reads dir/litetable-mrunit.conf into v and decodes it. A missing file leaves the
// defaults in place.
func Load(v *viper.Viper, dir string) (*Config, error) {
	v.SetDefault("debug", false)
	v.SetDefault("log_format", FormatConsole)
	v.SetDefault("strategy", StrategyKey)
	v.SetDefault("exact_keys", false)
	v.SetDefault("record_dir", dir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := filepath.Join(dir, configFileName)
	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err = v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.Strategy = strings.ToLower(cfg.Strategy)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
