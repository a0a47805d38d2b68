package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/taskpad/taskpad/internal/theme"
)

// EnvPrefix makes every config key reachable as TASKPAD_<KEY>, with dots
// becoming underscores (data.file -> TASKPAD_DATA_FILE).
const EnvPrefix = "TASKPAD"

// Config is the resolved startup configuration, threaded explicitly into
// whatever needs it. Nothing reads it through package state.
type Config struct {
	Theme   string `mapstructure:"theme" validate:"required"`
	Data    Data   `mapstructure:"data" validate:"required"`
	Verbose bool   `mapstructure:"verbose"`
}

// Data says where and how tasks are stored. The file extension picks the
// encoding, so there is no separate format knob.
type Data struct {
	File string `mapstructure:"file" validate:"required"`
}

// validate is shared so struct metadata is only parsed once.
var validate = validator.New()

// Load resolves configuration in precedence order: explicit flags already
// bound to v, then environment, then the config file, then defaults.
// cfgFile overrides the search path; empty means look in Dir().
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	// a .env next to the binary is a convenience, not a requirement
	_ = godotenv.Load()

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("theme", theme.DefaultName)
	v.SetDefault("data.file", DefaultDataFile())
	v.SetDefault("verbose", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		// only a missing file on the default search path is fine
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
