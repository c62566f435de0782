package org

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Grant records a bonus paid out of an accountant's budget.
type Grant struct {
	ID           uuid.UUID
	EmployeeID   ID // recipient; zero for direct accountant grants
	AccountantID ID
	ApproverID   ID // business lead that routed the grant; zero if none
	Amount       decimal.Decimal
	GrantedAt    time.Time
}

func (o *Org) record(employee, accountant, approver ID, amount decimal.Decimal) Grant {
	g := Grant{
		ID:           uuid.New(),
		EmployeeID:   employee,
		AccountantID: accountant,
		ApproverID:   approver,
		Amount:       amount,
		GrantedAt:    o.clock.Now(),
	}
	o.grants = append(o.grants, g)
	return g
}

// Grants returns every grant in the order it was made.
func (o *Org) Grants() []Grant {
	out := make([]Grant, len(o.grants))
	copy(out, o.grants)
	return out
}

// TotalGranted returns the sum of all grant amounts.
func (o *Org) TotalGranted() decimal.Decimal {
	total := decimal.Zero
	for _, g := range o.grants {
		total = total.Add(g.Amount)
	}
	return total
}
