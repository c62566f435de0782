package config

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/orgchart/internal/org"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if cfg.Org.TechnicalBaseSalary != "75000" {
		t.Errorf("Org.TechnicalBaseSalary = %q, want %q", cfg.Org.TechnicalBaseSalary, "75000")
	}
	if cfg.Org.BusinessBaseSalary != "50000" {
		t.Errorf("Org.BusinessBaseSalary = %q, want %q", cfg.Org.BusinessBaseSalary, "50000")
	}
	if cfg.Org.TechnicalLeadHeadCount != 4 {
		t.Errorf("Org.TechnicalLeadHeadCount = %d, want 4", cfg.Org.TechnicalLeadHeadCount)
	}
	if cfg.Org.BusinessLeadHeadCount != 10 {
		t.Errorf("Org.BusinessLeadHeadCount = %d, want 10", cfg.Org.BusinessLeadHeadCount)
	}
	if cfg.Org.BudgetMargin != "1.1" {
		t.Errorf("Org.BudgetMargin = %q, want %q", cfg.Org.BudgetMargin, "1.1")
	}
	if cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be false by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if !cfg.Display.Color {
		t.Error("Display.Color should be true by default")
	}

	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Default config should be valid, got %v", errs)
	}
}

func TestOrgConfig_Policy(t *testing.T) {
	p, err := Default().Org.Policy()
	if err != nil {
		t.Fatalf("Policy() error = %v", err)
	}
	if p.TechnicalLeadHeadCount != org.DefaultPolicy().TechnicalLeadHeadCount {
		t.Errorf("TechnicalLeadHeadCount = %d, want %d", p.TechnicalLeadHeadCount, org.DefaultPolicy().TechnicalLeadHeadCount)
	}
	amounts := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"TechnicalBaseSalary", p.TechnicalBaseSalary, "75000"},
		{"BusinessBaseSalary", p.BusinessBaseSalary, "50000"},
		{"BudgetMargin", p.BudgetMargin, "1.1"},
	}
	for _, a := range amounts {
		if !a.got.Equal(decimal.RequireFromString(a.want)) {
			t.Errorf("%s = %s, want %s", a.name, a.got, a.want)
		}
	}

	bad := Default().Org
	bad.BudgetMargin = "lots"
	_, err = bad.Policy()
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Policy() error = %v, want ValidationError", err)
	}
	if verr.Field != "org.budget_margin" {
		t.Errorf("Field = %q, want %q", verr.Field, "org.budget_margin")
	}

	zero := Default().Org
	zero.BusinessLeadHeadCount = 0
	if _, err := zero.Policy(); err == nil {
		t.Error("Policy() with zero headcount should fail")
	}
}

func TestInitAndLoad_Defaults(t *testing.T) {
	resetViper(t)
	t.Setenv("XDG_CONFIG_HOME", "/config")

	if err := Init(afero.NewMemMapFs(), ""); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() = %+v, want %+v", cfg, Default())
	}
}

func TestInitAndLoad_SearchedFile(t *testing.T) {
	resetViper(t)
	t.Setenv("XDG_CONFIG_HOME", "/config")

	fs := afero.NewMemMapFs()
	content := `
org:
  technical_lead_head_count: 2
  budget_margin: "1.25"
logging:
  enabled: true
  level: debug
`
	if err := afero.WriteFile(fs, filepath.Join("/config", "orgchart", "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if err := Init(fs, ""); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Org.TechnicalLeadHeadCount != 2 {
		t.Errorf("Org.TechnicalLeadHeadCount = %d, want 2", cfg.Org.TechnicalLeadHeadCount)
	}
	if cfg.Org.BudgetMargin != "1.25" {
		t.Errorf("Org.BudgetMargin = %q, want %q", cfg.Org.BudgetMargin, "1.25")
	}
	if cfg.Org.BusinessLeadHeadCount != 10 {
		t.Errorf("Org.BusinessLeadHeadCount = %d, want 10 (unset keys keep their defaults)", cfg.Org.BusinessLeadHeadCount)
	}
	if !cfg.Logging.Enabled {
		t.Error("Logging.Enabled = false, want true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestInit_ExplicitFileMissing(t *testing.T) {
	resetViper(t)

	if err := Init(afero.NewMemMapFs(), "/nowhere/config.yaml"); err == nil {
		t.Error("Init() with a missing explicit file should fail")
	}
}

func TestInit_EnvOverride(t *testing.T) {
	resetViper(t)
	t.Setenv("XDG_CONFIG_HOME", "/config")
	t.Setenv("ORGCHART_ORG_TECHNICAL_LEAD_HEAD_COUNT", "6")
	t.Setenv("ORGCHART_LOGGING_LEVEL", "warn")

	if err := Init(afero.NewMemMapFs(), ""); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Org.TechnicalLeadHeadCount != 6 {
		t.Errorf("Org.TechnicalLeadHeadCount = %d, want 6", cfg.Org.TechnicalLeadHeadCount)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "warn")
	}
}

func TestLoad_Invalid(t *testing.T) {
	resetViper(t)
	SetDefaults()
	viper.Set("org.business_lead_head_count", 0)
	viper.Set("logging.level", "loud")

	_, err := Load()
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Load() error = %v, want ValidationErrors", err)
	}
	if len(verrs) != 2 {
		t.Errorf("len(ValidationErrors) = %d, want 2: %v", len(verrs), verrs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{"salary not a number", func(c *Config) { c.Org.TechnicalBaseSalary = "abc" }, "org.technical_base_salary"},
		{"salary negative", func(c *Config) { c.Org.BusinessBaseSalary = "-1" }, "org.business_base_salary"},
		{"margin zero", func(c *Config) { c.Org.BudgetMargin = "0" }, "org.budget_margin"},
		{"technical headcount", func(c *Config) { c.Org.TechnicalLeadHeadCount = 0 }, "org.technical_lead_head_count"},
		{"business headcount", func(c *Config) { c.Org.BusinessLeadHeadCount = -3 }, "org.business_lead_head_count"},
		{"log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"display width", func(c *Config) { c.Display.Width = 10 }, "display.width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			errs := cfg.Validate()
			if len(errs) != 1 {
				t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.wantField)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	single := ValidationErrors{{Field: "logging.level", Value: "x", Message: "bad"}}
	if got, want := single.Error(), "logging.level: bad (got: x)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	multi := ValidationErrors{
		{Field: "a", Value: 1, Message: "bad"},
		{Field: "b", Value: 2, Message: "worse"},
	}
	got := multi.Error()
	if !strings.HasPrefix(got, "2 validation errors:") {
		t.Errorf("Error() = %q, want prefix %q", got, "2 validation errors:")
	}

	if (ValidationErrors{}).Error() != "" {
		t.Error("empty ValidationErrors should have an empty message")
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got, want := ConfigDir(), filepath.Join("/xdg", "orgchart"); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
	if got, want := ConfigFile(), filepath.Join("/xdg", "orgchart", "config.yaml"); got != want {
		t.Errorf("ConfigFile() = %q, want %q", got, want)
	}
}
