package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/orgchart/internal/org"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// ORGCHART_ORG_BUDGET_MARGIN.
const EnvPrefix = "ORGCHART"

// Config represents the complete orgchart configuration
type Config struct {
	Org     OrgConfig     `mapstructure:"org"`
	Logging LoggingConfig `mapstructure:"logging"`
	Display DisplayConfig `mapstructure:"display"`
}

// OrgConfig controls compensation and headcount policy. Money values are
// strings so they convert to decimals without rounding.
type OrgConfig struct {
	// TechnicalBaseSalary is the base salary of engineers and technical leads (default: "75000")
	TechnicalBaseSalary string `mapstructure:"technical_base_salary"`
	// BusinessBaseSalary is the base salary of accountants and business leads (default: "50000")
	BusinessBaseSalary string `mapstructure:"business_base_salary"`
	// TechnicalLeadHeadCount is the report limit of a technical lead (default: 4)
	TechnicalLeadHeadCount int `mapstructure:"technical_lead_head_count"`
	// BusinessLeadHeadCount is the report limit of a business lead (default: 10)
	BusinessLeadHeadCount int `mapstructure:"business_lead_head_count"`
	// BudgetMargin multiplies salaries when budgets are computed (default: "1.1")
	BudgetMargin string `mapstructure:"budget_margin"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled turns on structured logging to stderr (default: false)
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
}

// DisplayConfig controls CLI output
type DisplayConfig struct {
	// Color enables styled output (default: true)
	Color bool `mapstructure:"color"`
	// Width is the maximum width of rendered tables (default: 100, min: 40)
	Width int `mapstructure:"width"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Org: OrgConfig{
			TechnicalBaseSalary:    decimal.NewFromInt(org.DefaultTechnicalBaseSalary).String(),
			BusinessBaseSalary:     decimal.NewFromInt(org.DefaultBusinessBaseSalary).String(),
			TechnicalLeadHeadCount: org.DefaultTechnicalLeadHeadCount,
			BusinessLeadHeadCount:  org.DefaultBusinessLeadHeadCount,
			BudgetMargin:           org.DefaultBudgetMargin.String(),
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
		},
		Display: DisplayConfig{
			Color: true,
			Width: 100,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Org defaults
	viper.SetDefault("org.technical_base_salary", defaults.Org.TechnicalBaseSalary)
	viper.SetDefault("org.business_base_salary", defaults.Org.BusinessBaseSalary)
	viper.SetDefault("org.technical_lead_head_count", defaults.Org.TechnicalLeadHeadCount)
	viper.SetDefault("org.business_lead_head_count", defaults.Org.BusinessLeadHeadCount)
	viper.SetDefault("org.budget_margin", defaults.Org.BudgetMargin)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)

	// Display defaults
	viper.SetDefault("display.color", defaults.Display.Color)
	viper.SetDefault("display.width", defaults.Display.Width)
}

// Init prepares viper to read configuration: defaults, environment
// overrides, and a config file. An explicit cfgFile must exist; otherwise
// the user config directory and the working directory are searched and a
// missing file is not an error.
func Init(fs afero.Fs, cfgFile string) error {
	viper.SetFs(fs)
	SetDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(ConfigDir())
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return err
	}
	return nil
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate the configuration
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Policy converts the org settings into an org.Policy.
func (c *OrgConfig) Policy() (org.Policy, error) {
	technical, err := decimal.NewFromString(c.TechnicalBaseSalary)
	if err != nil {
		return org.Policy{}, ValidationError{Field: "org.technical_base_salary", Value: c.TechnicalBaseSalary, Message: "must be a number"}
	}
	business, err := decimal.NewFromString(c.BusinessBaseSalary)
	if err != nil {
		return org.Policy{}, ValidationError{Field: "org.business_base_salary", Value: c.BusinessBaseSalary, Message: "must be a number"}
	}
	margin, err := decimal.NewFromString(c.BudgetMargin)
	if err != nil {
		return org.Policy{}, ValidationError{Field: "org.budget_margin", Value: c.BudgetMargin, Message: "must be a number"}
	}

	p := org.Policy{
		TechnicalBaseSalary:    technical,
		BusinessBaseSalary:     business,
		TechnicalLeadHeadCount: c.TechnicalLeadHeadCount,
		BusinessLeadHeadCount:  c.BusinessLeadHeadCount,
		BudgetMargin:           margin,
	}
	if err := p.Validate(); err != nil {
		return org.Policy{}, err
	}
	return p, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "orgchart")
	}
	// Fall back to ~/.config/orgchart
	home, err := os.UserHomeDir()
	if err != nil {
		return ".orgchart"
	}
	return filepath.Join(home, ".config", "orgchart")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
