package org

import (
	"github.com/shopspring/decimal"

	"github.com/Iron-Ham/orgchart/internal/errors"
	"github.com/Iron-Ham/orgchart/internal/event"
)

// BusinessLead manages accountants and approves bonuses for the technical
// teams they support.
type BusinessLead struct {
	*Employee
}

func (bl *BusinessLead) valid() bool {
	return bl != nil && bl.Employee != nil
}

// HeadCount returns the maximum number of reports.
func (bl *BusinessLead) HeadCount() int {
	return bl.headCount
}

// HasHeadCount reports whether the lead can take another report.
func (bl *BusinessLead) HasHeadCount() bool {
	return bl.hasHeadCount()
}

// BonusBudget returns the lead's remaining budget.
func (bl *BusinessLead) BonusBudget() decimal.Decimal {
	return bl.bonusBudget
}

// AddReport appends a to the lead's reports, makes the lead its manager,
// and binds it to support lead's team. The lead's budget grows by the
// accountant's base salary with the org's margin applied. Returns false,
// changing nothing, when the lead is at its headcount limit or a or lead
// belongs to another Org.
func (bl *BusinessLead) AddReport(a *Accountant, lead *TechnicalLead) bool {
	if !bl.valid() || !a.valid() || !lead.valid() {
		return false
	}
	if !bl.sameOrg(a.Employee) || !bl.sameOrg(lead.Employee) {
		return false
	}
	if !bl.hasHeadCount() {
		bl.org.logger.WithEmployee(uint64(bl.id)).Debug("report rejected: headcount reached",
			"report_id", uint64(a.id),
			"head_count", bl.headCount,
		)
		return false
	}

	bl.reports = append(bl.reports, a.id)
	a.manager = bl.id
	a.SupportTeam(lead)
	bl.bonusBudget = bl.bonusBudget.Add(bl.org.policy.withMargin(a.baseSalary))

	bl.org.publish(event.NewReportAddedEvent(bl.org.clock.Now(),
		uint64(bl.id), uint64(a.id), a.role.String(), len(bl.reports), bl.headCount))
	return true
}

// Reports returns the lead's reports in the order they were added.
func (bl *BusinessLead) Reports() []*Accountant {
	resolved := bl.resolvedReports()
	out := make([]*Accountant, 0, len(resolved))
	for _, e := range resolved {
		out = append(out, &Accountant{e})
	}
	return out
}

// RequestBonus pays a bonus for e out of the lead's own budget. The
// grant itself is approved by e's manager, which must be a lead.
//
// The manager's capability is checked before anything changes: a missing
// manager yields ErrNoManager and a manager that cannot approve yields
// ErrCannotApproveBonus, both as a *errors.CapabilityError. A negative
// amount yields ErrInvalidAmount.
//
// The budget is debited only when amount fits within it and the
// manager's approval succeeds. Otherwise the result is false and the
// budget is unchanged. An e from another Org is never paid.
func (bl *BusinessLead) RequestBonus(e *Employee, amount decimal.Decimal) (bool, error) {
	if !bl.valid() || !bl.sameOrg(e) {
		return false, nil
	}
	if amount.IsNegative() {
		return false, errors.NewValidationError("bonus amount must not be negative").
			WithField("amount").
			WithValue(amount.String()).
			WithCause(errors.ErrInvalidAmount)
	}

	log := bl.org.logger.WithEmployee(uint64(bl.id))

	manager := e.Manager()
	if manager == nil {
		log.Warn("bonus request rejected: employee has no manager", "recipient_id", uint64(e.id))
		return false, errors.NewCapabilityError("request bonus", errors.ErrNoManager).
			WithEmployee(uint64(e.id)).
			WithRole(e.role.String())
	}
	approver, ok := manager.bonusApprover()
	if !ok {
		log.Warn("bonus request rejected: manager cannot approve bonuses",
			"recipient_id", uint64(e.id),
			"manager_id", uint64(manager.id),
		)
		return false, errors.NewCapabilityError("request bonus", errors.ErrCannotApproveBonus).
			WithEmployee(uint64(manager.id)).
			WithRole(manager.role.String())
	}

	if amount.GreaterThan(bl.bonusBudget) {
		log.Debug("bonus request denied: budget exceeded",
			"recipient_id", uint64(e.id),
			"amount", amount.String(),
			"budget", bl.bonusBudget.String(),
		)
		bl.org.publish(event.NewBonusDeniedEvent(bl.org.clock.Now(),
			uint64(e.id), uint64(bl.id), amount, "budget exceeded"))
		return false, nil
	}

	if !approver.ApproveBonus(e, amount) {
		log.Debug("bonus request denied: approval failed",
			"recipient_id", uint64(e.id),
			"approver_id", uint64(manager.id),
		)
		return false, nil
	}

	bl.bonusBudget = bl.bonusBudget.Sub(amount)
	return true, nil
}

// ApproveBonus looks through the lead's accountants, in report order, for
// one supporting e's manager's team and asks it to grant amount. Returns
// true on the first successful grant.
func (bl *BusinessLead) ApproveBonus(e *Employee, amount decimal.Decimal) bool {
	if !bl.valid() || !bl.sameOrg(e) || amount.IsNegative() {
		return false
	}

	if e.manager != 0 {
		for _, a := range bl.Reports() {
			if a.teamSupported != e.manager {
				continue
			}
			if a.grant(e, bl.id, amount) {
				return true
			}
		}
	}

	bl.org.logger.WithEmployee(uint64(bl.id)).Debug("bonus approval denied: no accountant could grant",
		"recipient_id", uint64(e.id),
		"amount", amount.String(),
	)
	bl.org.publish(event.NewBonusDeniedEvent(bl.org.clock.Now(),
		uint64(e.id), uint64(bl.id), amount, "no supporting accountant could grant"))
	return false
}

// TeamStatus describes the lead followed by each report, one per line.
func (bl *BusinessLead) TeamStatus() string {
	return teamStatus(bl.Employee)
}
