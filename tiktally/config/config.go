package config

import (
	"fmt"
	"strings"

	internal "github.com/tiktally/tiktally/tiktally"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Tiktally TiktallyConfig `mapstructure:"tiktally"`
}

// TiktallyConfig stores tokenizer related configurations.
type TiktallyConfig struct {
	Model           string   `mapstructure:"model"`
	EncodingName    string   `mapstructure:"encodingName"`
	Recursive       bool     `mapstructure:"recursive"`
	Quiet           bool     `mapstructure:"quiet"`
	ExitOnListError bool     `mapstructure:"exitOnListError"`
	IgnorePatterns  []string `mapstructure:"ignorePatterns"`
	OfflineBPE      bool     `mapstructure:"offlineBPE"`
}

var AppConfig Config

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath(internal.DefaultConfigPath)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Set default values
	viper.SetDefault("tiktally.model", internal.DefaultModel)
	viper.SetDefault("tiktally.recursive", true)
	viper.SetDefault("tiktally.quiet", false)
	viper.SetDefault("tiktally.exitOnListError", true)
	viper.SetDefault("tiktally.offlineBPE", false)

	viper.AutomaticEnv()                                   // Read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // tiktally.encodingName becomes TIKTALLY_ENCODINGNAME

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found; defaults will be used.
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &AppConfig, nil
}
