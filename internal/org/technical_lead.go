package org

import (
	"github.com/shopspring/decimal"

	"github.com/Iron-Ham/orgchart/internal/event"
)

// TechnicalLead manages software engineers and requests bonuses for them
// through its business manager.
type TechnicalLead struct {
	*Employee
}

func (tl *TechnicalLead) valid() bool {
	return tl != nil && tl.Employee != nil
}

// HeadCount returns the maximum number of reports.
func (tl *TechnicalLead) HeadCount() int {
	return tl.headCount
}

// HasHeadCount reports whether the lead can take another report.
func (tl *TechnicalLead) HasHeadCount() bool {
	return tl.hasHeadCount()
}

// CheckIns returns the lead's own check-in count.
func (tl *TechnicalLead) CheckIns() int {
	return tl.checkIns
}

// AddReport appends se to the lead's reports and makes the lead its
// manager. Any previous manager is replaced without notice. The same
// engineer may be added more than once. Returns false, changing nothing,
// when the lead is at its headcount limit or se belongs to another Org.
func (tl *TechnicalLead) AddReport(se *SoftwareEngineer) bool {
	if !tl.valid() || !se.valid() || !tl.sameOrg(se.Employee) {
		return false
	}
	if !tl.hasHeadCount() {
		tl.org.logger.WithEmployee(uint64(tl.id)).Debug("report rejected: headcount reached",
			"report_id", uint64(se.id),
			"head_count", tl.headCount,
		)
		return false
	}

	tl.reports = append(tl.reports, se.id)
	se.manager = tl.id

	tl.org.publish(event.NewReportAddedEvent(tl.org.clock.Now(),
		uint64(tl.id), uint64(se.id), se.role.String(), len(tl.reports), tl.headCount))
	return true
}

// Reports returns the lead's reports in the order they were added.
func (tl *TechnicalLead) Reports() []*SoftwareEngineer {
	resolved := tl.resolvedReports()
	out := make([]*SoftwareEngineer, 0, len(resolved))
	for _, e := range resolved {
		out = append(out, &SoftwareEngineer{e})
	}
	return out
}

// ApproveCheckIn reports whether se may check in: it must be managed by
// this lead and have code access. It does not record a check-in.
func (tl *TechnicalLead) ApproveCheckIn(se *SoftwareEngineer) bool {
	if !tl.valid() || !se.valid() || !tl.sameOrg(se.Employee) {
		return false
	}
	return se.manager == tl.id && se.codeAccess
}

// CheckIn records a check-in for se if ApproveCheckIn allows it.
func (tl *TechnicalLead) CheckIn(se *SoftwareEngineer) bool {
	if !tl.ApproveCheckIn(se) {
		return false
	}
	se.checkIns++
	return true
}

// RequestBonus asks the lead's business manager to approve a bonus for e.
// Returns false without side effects when the lead has no business
// manager or e belongs to another Org.
func (tl *TechnicalLead) RequestBonus(e *Employee, amount decimal.Decimal) bool {
	if !tl.valid() || !tl.sameOrg(e) || amount.IsNegative() {
		return false
	}

	bl, ok := tl.Manager().AsBusinessLead()
	if !ok {
		tl.org.logger.WithEmployee(uint64(tl.id)).Debug("bonus request dropped: no business manager",
			"employee_id", uint64(e.id),
			"amount", amount.String(),
		)
		tl.org.publish(event.NewBonusDeniedEvent(tl.org.clock.Now(),
			uint64(e.id), uint64(tl.id), amount, "no business manager"))
		return false
	}
	return bl.ApproveBonus(e, amount)
}

// ApproveBonus lets a technical lead act as the approver for its own
// reports. Approval is delegated to the lead's business manager, exactly
// as in RequestBonus.
func (tl *TechnicalLead) ApproveBonus(e *Employee, amount decimal.Decimal) bool {
	return tl.RequestBonus(e, amount)
}

// TeamStatus describes the lead followed by each report, one per line.
func (tl *TechnicalLead) TeamStatus() string {
	return teamStatus(tl.Employee)
}
