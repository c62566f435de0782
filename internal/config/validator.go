package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "org.budget_margin")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// minDisplayWidth is the narrowest table the renderer lays out.
const minDisplayWidth = 40

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateOrg()...)
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateDisplay()...)

	return errors
}

func (c *Config) validateOrg() []ValidationError {
	var errors []ValidationError

	money := []struct {
		field string
		value string
	}{
		{"org.technical_base_salary", c.Org.TechnicalBaseSalary},
		{"org.business_base_salary", c.Org.BusinessBaseSalary},
		{"org.budget_margin", c.Org.BudgetMargin},
	}
	for _, m := range money {
		d, err := decimal.NewFromString(m.value)
		if err != nil {
			errors = append(errors, ValidationError{
				Field:   m.field,
				Value:   m.value,
				Message: "must be a number",
			})
			continue
		}
		if !d.IsPositive() {
			errors = append(errors, ValidationError{
				Field:   m.field,
				Value:   m.value,
				Message: "must be positive",
			})
		}
	}

	if c.Org.TechnicalLeadHeadCount < 1 {
		errors = append(errors, ValidationError{
			Field:   "org.technical_lead_head_count",
			Value:   c.Org.TechnicalLeadHeadCount,
			Message: "must be at least 1",
		})
	}
	if c.Org.BusinessLeadHeadCount < 1 {
		errors = append(errors, ValidationError{
			Field:   "org.business_lead_head_count",
			Value:   c.Org.BusinessLeadHeadCount,
			Message: "must be at least 1",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateDisplay() []ValidationError {
	var errors []ValidationError

	if c.Display.Width < minDisplayWidth {
		errors = append(errors, ValidationError{
			Field:   "display.width",
			Value:   c.Display.Width,
			Message: fmt.Sprintf("must be at least %d", minDisplayWidth),
		})
	}

	return errors
}
