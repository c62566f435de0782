package org

import (
	"github.com/shopspring/decimal"
)

// Employee is a single member of an Org. Identity, name, role, and base
// salary are fixed at creation. The remaining fields are track or role
// payloads and stay at their zero values for roles that do not use them.
type Employee struct {
	org *Org

	id         ID
	name       string
	role       Role
	baseSalary decimal.Decimal
	manager    ID

	// Technical track.
	checkIns   int
	codeAccess bool

	// Business track.
	bonusBudget   decimal.Decimal
	teamSupported ID

	// Leads.
	headCount int
	reports   []ID
}

// ID returns the employee's identity.
func (e *Employee) ID() ID {
	return e.id
}

// Name returns the employee's name.
func (e *Employee) Name() string {
	return e.name
}

// Role returns the employee's role.
func (e *Employee) Role() Role {
	return e.role
}

// Track returns the employee's track.
func (e *Employee) Track() Track {
	return e.role.Track()
}

// BaseSalary returns the employee's base salary.
func (e *Employee) BaseSalary() decimal.Decimal {
	return e.baseSalary
}

// Manager returns the employee's current manager, or nil.
func (e *Employee) Manager() *Employee {
	return e.org.lookup(e.manager)
}

// SetManager replaces the employee's manager. A nil manager clears it. No
// role check is made; leads validate their reports in AddReport. A manager
// from another Org is ignored.
func (e *Employee) SetManager(m *Employee) {
	if m == nil {
		e.manager = 0
		return
	}
	if !e.sameOrg(m) {
		return
	}
	e.manager = m.id
}

// Equal reports whether e and other have the same identity. Employees of
// different Orgs are never equal, even when their IDs match.
func (e *Employee) Equal(other *Employee) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.org == other.org && e.id == other.id
}

// sameOrg reports whether e and other were created by the same Org. IDs
// only resolve within the Org that issued them.
func (e *Employee) sameOrg(other *Employee) bool {
	return e != nil && other != nil && e.org == other.org
}

// String returns "<id> <name>".
func (e *Employee) String() string {
	return e.id.String() + " " + e.name
}

// Status describes the employee's current state. It is rebuilt on every
// call.
func (e *Employee) Status() string {
	return renderStatus(e)
}

// AsSoftwareEngineer returns a software engineer handle if e holds that role.
func (e *Employee) AsSoftwareEngineer() (*SoftwareEngineer, bool) {
	if e == nil || e.role != RoleSoftwareEngineer {
		return nil, false
	}
	return &SoftwareEngineer{e}, true
}

// AsAccountant returns an accountant handle if e holds that role.
func (e *Employee) AsAccountant() (*Accountant, bool) {
	if e == nil || e.role != RoleAccountant {
		return nil, false
	}
	return &Accountant{e}, true
}

// AsTechnicalLead returns a technical lead handle if e holds that role.
func (e *Employee) AsTechnicalLead() (*TechnicalLead, bool) {
	if e == nil || e.role != RoleTechnicalLead {
		return nil, false
	}
	return &TechnicalLead{e}, true
}

// AsBusinessLead returns a business lead handle if e holds that role.
func (e *Employee) AsBusinessLead() (*BusinessLead, bool) {
	if e == nil || e.role != RoleBusinessLead {
		return nil, false
	}
	return &BusinessLead{e}, true
}

// BonusApprover is implemented by roles that can approve a bonus for one
// of their reports.
type BonusApprover interface {
	ApproveBonus(e *Employee, amount decimal.Decimal) bool
}

// bonusApprover returns e's approval capability, if its role has one.
func (e *Employee) bonusApprover() (BonusApprover, bool) {
	if tl, ok := e.AsTechnicalLead(); ok {
		return tl, true
	}
	if bl, ok := e.AsBusinessLead(); ok {
		return bl, true
	}
	return nil, false
}

// resolvedReports resolves a lead's report IDs in order.
func (e *Employee) resolvedReports() []*Employee {
	out := make([]*Employee, 0, len(e.reports))
	for _, id := range e.reports {
		if r := e.org.lookup(id); r != nil {
			out = append(out, r)
		}
	}
	return out
}

// hasHeadCount reports whether a lead can take another report.
func (e *Employee) hasHeadCount() bool {
	return len(e.reports) < e.headCount
}
