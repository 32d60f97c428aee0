package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds all configuration for the application
type Config struct {
	// Global configuration
	Debug      bool   `yaml:"debug" mapstructure:"debug"`
	LogLevel   string `yaml:"log_level" mapstructure:"log_level"`
	LogFile    string `yaml:"log_file" mapstructure:"log_file"`
	ConfigFile string `yaml:"config" mapstructure:"config"`

	// Conversion configuration
	Convert ConvertConfig `yaml:"convert" mapstructure:"convert"`
}

// ConvertConfig holds configuration for the conversion run
type ConvertConfig struct {
	Format     string `yaml:"format" mapstructure:"format"`
	OutputFile string `yaml:"output_file" mapstructure:"output_file"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Debug:    false,
		LogLevel: "info",
		LogFile:  "",
		Convert: ConvertConfig{
			Format:     "tsv",
			OutputFile: "",
		},
	}
}

// LoadConfig loads configuration from file, environment variables, and CLI flags
func LoadConfig(configFile string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := DefaultConfig()

	// Set up viper for config file and environment variables
	// Use a local viper instance to avoid conflicts with flag bindings
	v := viper.New()
	v.SetConfigType("yaml")

	// Load config file if specified
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
			// Config file not found; ignore error
		}
	}

	// Set up environment variable support
	v.SetEnvPrefix("MBM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Unmarshal config from file and environment variables
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return config, nil
}

// NewLogger creates a zap logger based on the configuration. Standard output
// carries the converted dataset, so all log output goes to stderr (and the
// log file, if configured).
func (c *Config) NewLogger() (*zap.Logger, error) {
	var level zapcore.Level
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		if c.Debug {
			level = zapcore.DebugLevel
		} else {
			level = zapcore.InfoLevel
		}
	}

	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level.SetLevel(level)

	// Include caller info in log messages (relative path and line number)
	cfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	if c.LogFile != "" {
		cfg.OutputPaths = []string{c.LogFile, "stderr"}
		cfg.ErrorOutputPaths = []string{c.LogFile, "stderr"}
	} else {
		cfg.OutputPaths = []string{"stderr"}
		cfg.ErrorOutputPaths = []string{"stderr"}
	}

	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		return nil, fmt.Errorf("error creating logger: %w", err)
	}

	return logger, nil
}

// ValidateConvertConfig validates conversion configuration
func (c *Config) ValidateConvertConfig() error {
	switch c.Convert.Format {
	case "tsv", "json":
	default:
		return fmt.Errorf("unknown output format: %s (must be tsv or json)", c.Convert.Format)
	}
	return nil
}
