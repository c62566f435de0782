package org

import (
	"github.com/shopspring/decimal"

	"github.com/Iron-Ham/orgchart/internal/errors"
)

// Default policy values.
const (
	DefaultTechnicalBaseSalary    = 75000
	DefaultBusinessBaseSalary     = 50000
	DefaultTechnicalLeadHeadCount = 4
	DefaultBusinessLeadHeadCount  = 10
)

// DefaultBudgetMargin is the multiplier applied to salaries when budgets
// are computed.
var DefaultBudgetMargin = decimal.RequireFromString("1.1")

// Policy holds the compensation and headcount rules of an org.
type Policy struct {
	// TechnicalBaseSalary is the base salary of every technical-track employee.
	TechnicalBaseSalary decimal.Decimal

	// BusinessBaseSalary is the base salary of every business-track employee.
	BusinessBaseSalary decimal.Decimal

	// TechnicalLeadHeadCount is the report limit of a technical lead.
	TechnicalLeadHeadCount int

	// BusinessLeadHeadCount is the report limit of a business lead.
	BusinessLeadHeadCount int

	// BudgetMargin multiplies salaries when an accountant's or business
	// lead's budget is computed.
	BudgetMargin decimal.Decimal
}

// DefaultPolicy returns the standard policy.
func DefaultPolicy() Policy {
	return Policy{
		TechnicalBaseSalary:    decimal.NewFromInt(DefaultTechnicalBaseSalary),
		BusinessBaseSalary:     decimal.NewFromInt(DefaultBusinessBaseSalary),
		TechnicalLeadHeadCount: DefaultTechnicalLeadHeadCount,
		BusinessLeadHeadCount:  DefaultBusinessLeadHeadCount,
		BudgetMargin:           DefaultBudgetMargin,
	}
}

// Validate checks that every value is usable.
func (p Policy) Validate() error {
	var errs []error
	if !p.TechnicalBaseSalary.IsPositive() {
		errs = append(errs, invalidPolicy("technical_base_salary", p.TechnicalBaseSalary.String(), "must be positive"))
	}
	if !p.BusinessBaseSalary.IsPositive() {
		errs = append(errs, invalidPolicy("business_base_salary", p.BusinessBaseSalary.String(), "must be positive"))
	}
	if p.TechnicalLeadHeadCount < 1 {
		errs = append(errs, invalidPolicy("technical_lead_head_count", p.TechnicalLeadHeadCount, "must be at least 1"))
	}
	if p.BusinessLeadHeadCount < 1 {
		errs = append(errs, invalidPolicy("business_lead_head_count", p.BusinessLeadHeadCount, "must be at least 1"))
	}
	if !p.BudgetMargin.IsPositive() {
		errs = append(errs, invalidPolicy("budget_margin", p.BudgetMargin.String(), "must be positive"))
	}
	return errors.Join(errs...)
}

func invalidPolicy(field string, value any, msg string) error {
	return errors.NewValidationError(msg).
		WithField(field).
		WithValue(value).
		WithCause(errors.ErrInvalidPolicy)
}

// baseSalary returns the salary for a track.
func (p Policy) baseSalary(t Track) decimal.Decimal {
	if t == TrackBusiness {
		return p.BusinessBaseSalary
	}
	return p.TechnicalBaseSalary
}

// headCount returns the report limit for a role. Non-lead roles have none.
func (p Policy) headCount(r Role) int {
	switch r {
	case RoleTechnicalLead:
		return p.TechnicalLeadHeadCount
	case RoleBusinessLead:
		return p.BusinessLeadHeadCount
	}
	return 0
}

// withMargin applies the budget margin to an amount.
func (p Policy) withMargin(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(p.BudgetMargin)
}
