package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Rates    RatesConfig    `mapstructure:"rates"`
	Gate     GateConfig     `mapstructure:"gate"`
	Template TemplateConfig `mapstructure:"template"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path            string        `mapstructure:"path"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	MigrationsDir   string        `mapstructure:"migrations_dir"`
}

// RatesConfig is the canonical rate table, overridable per deployment
// so a corrected rate never requires a rebuild.
type RatesConfig struct {
	NightlyRate     float64 `mapstructure:"nightly_rate"`
	CityTaxRate     float64 `mapstructure:"city_tax_rate"`
	TrainOneWayFare float64 `mapstructure:"train_one_way_fare"`
	TrainReturnFare float64 `mapstructure:"train_return_fare"`
}

// GateConfig holds the 4-digit access gate settings
type GateConfig struct {
	Code            string        `mapstructure:"code"`
	MaxAttempts     int           `mapstructure:"max_attempts"`
	LockoutDuration time.Duration `mapstructure:"lockout_duration"`
}

// TemplateConfig holds spreadsheet template settings
type TemplateConfig struct {
	Path      string `mapstructure:"path"`
	OutputDir string `mapstructure:"output_dir"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Override with environment variables
	bindEnvVars()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)

	// Database defaults
	viper.SetDefault("database.path", "data/travel.db")
	viper.SetDefault("database.max_open_conns", 25)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", 5*time.Minute)
	viper.SetDefault("database.migrations_dir", "migrations")

	// Rate table defaults
	viper.SetDefault("rates.nightly_rate", 83.30)
	viper.SetDefault("rates.city_tax_rate", 4.00)
	viper.SetDefault("rates.train_one_way_fare", 36.00)
	viper.SetDefault("rates.train_return_fare", 72.00)

	// Gate defaults
	viper.SetDefault("gate.max_attempts", 5)
	viper.SetDefault("gate.lockout_duration", 30*time.Second)

	// Template defaults
	viper.SetDefault("template.path", "templates/TemplateViagens_template.xlsx")
	viper.SetDefault("template.output_dir", "generated")

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.output_path", "stdout")
	viper.SetDefault("logger.format", "json")
}

// bindEnvVars binds environment variables to configuration
func bindEnvVars() {
	// The access code never lives in the config file
	viper.BindEnv("gate.code", "GATE_ACCESS_CODE")
	viper.BindEnv("database.path", "DATABASE_PATH")
	viper.BindEnv("template.path", "TEMPLATE_PATH")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Gate.Code == "" {
		return fmt.Errorf("gate.code is required")
	}
	if len(c.Gate.Code) != 4 {
		return fmt.Errorf("gate.code must be 4 digits")
	}
	if c.Gate.MaxAttempts <= 0 {
		return fmt.Errorf("gate.max_attempts must be positive")
	}

	if c.Template.Path == "" {
		return fmt.Errorf("template.path is required")
	}

	if c.Rates.NightlyRate < 0 || c.Rates.CityTaxRate < 0 ||
		c.Rates.TrainOneWayFare < 0 || c.Rates.TrainReturnFare < 0 {
		return fmt.Errorf("rates must be non-negative")
	}

	return nil
}
