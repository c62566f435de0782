// Package org models a small organizational hierarchy and its bonus
// approval workflow.
//
// Employees belong to one of two tracks. The technical track has software
// engineers and the technical leads who manage them; the business track has
// accountants and the business leads who manage them. Leads hold an ordered
// list of reports bounded by a headcount limit. Accountants support one
// technical lead's team and carry a bonus budget derived from that team's
// salaries.
//
// # Architecture
//
// An [Org] is the registry that owns every [Employee] it creates. Employees
// refer to their manager and supported team by [ID]; the Org resolves those
// IDs on access, so a lead and its reports never hold pointers to each
// other. Identities come from an [IDGenerator], which can be shared between
// orgs to keep IDs unique across all of them.
//
// Role-specific behavior lives on typed handles that embed *Employee:
//
//   - [SoftwareEngineer]: code access flag and check-in counter
//   - [TechnicalLead]: engineer reports, check-in approval, bonus requests
//   - [Accountant]: supported team and per-accountant bonus grants
//   - [BusinessLead]: accountant reports, bonus budget, bonus approval
//
// # Bonus Flow
//
// A technical lead asks its business manager to approve a bonus for one of
// its engineers. The business lead finds the accountant supporting the
// engineer's manager and asks it to grant the amount from its own budget.
// A business lead may also request a bonus from its own budget; it then
// routes the approval to the employee's manager, which must be a lead.
// Every successful grant is recorded in the org's [Grant] ledger.
//
// # Thread Safety
//
// An Org and its employees are not safe for concurrent use. Only the
// IDGenerator may be shared between goroutines.
package org
