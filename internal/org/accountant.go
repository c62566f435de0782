package org

import (
	"github.com/shopspring/decimal"

	"github.com/Iron-Ham/orgchart/internal/event"
)

// Accountant is a business-track individual contributor. Its bonus budget
// is funded by the salaries of the technical team it supports.
type Accountant struct {
	*Employee
}

func (a *Accountant) valid() bool {
	return a != nil && a.Employee != nil
}

// BonusBudget returns the accountant's remaining budget.
func (a *Accountant) BonusBudget() decimal.Decimal {
	return a.bonusBudget
}

// TeamSupported returns the technical lead whose team the accountant
// supports, or nil.
func (a *Accountant) TeamSupported() *TechnicalLead {
	tl, _ := a.org.lookup(a.teamSupported).AsTechnicalLead()
	return tl
}

// SupportTeam binds the accountant to lead's team and replaces its budget
// with the sum of the base salaries of lead's current reports, with the
// org's margin applied. Nothing from a previous team carries over. A lead
// from another Org is ignored.
func (a *Accountant) SupportTeam(lead *TechnicalLead) {
	if !a.valid() || !lead.valid() || !a.sameOrg(lead.Employee) {
		return
	}

	total := decimal.Zero
	for _, se := range lead.resolvedReports() {
		total = total.Add(se.baseSalary)
	}

	a.teamSupported = lead.id
	a.bonusBudget = a.org.policy.withMargin(total)

	a.org.logger.WithEmployee(uint64(a.id)).Debug("supporting team",
		"lead_id", uint64(lead.id),
		"budget", a.bonusBudget.String(),
	)
	a.org.publish(event.NewTeamSupportedEvent(a.org.clock.Now(),
		uint64(a.id), uint64(lead.id), a.bonusBudget))
}

// ApproveBonus grants amount from the accountant's own budget. Returns
// false, leaving the budget unchanged, when the amount exceeds it.
func (a *Accountant) ApproveBonus(amount decimal.Decimal) bool {
	return a.grant(nil, 0, amount)
}

// grant debits amount and records it in the ledger. recipient and
// approver are zero for grants made directly on the accountant.
func (a *Accountant) grant(recipient *Employee, approver ID, amount decimal.Decimal) bool {
	if !a.valid() || amount.IsNegative() || amount.GreaterThan(a.bonusBudget) {
		return false
	}

	a.bonusBudget = a.bonusBudget.Sub(amount)

	var recipientID ID
	if recipient != nil {
		recipientID = recipient.id
	}
	g := a.org.record(recipientID, a.id, approver, amount)

	a.org.logger.WithEmployee(uint64(a.id)).Info("bonus granted",
		"grant_id", g.ID.String(),
		"recipient_id", uint64(recipientID),
		"amount", amount.String(),
		"remaining", a.bonusBudget.String(),
	)
	a.org.publish(event.NewBonusGrantedEvent(g.GrantedAt, g.ID.String(),
		uint64(recipientID), uint64(a.id), uint64(approver), amount))
	return true
}
