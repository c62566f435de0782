package roster

import (
	"fmt"

	"github.com/Iron-Ham/orgchart/internal/errors"
	"github.com/Iron-Ham/orgchart/internal/org"
)

// Assembly is an org built from a roster, with employees addressable by
// their roster names.
type Assembly struct {
	Org    *org.Org
	byName map[string]*org.Employee

	// Leads in roster order.
	TechnicalLeads []*org.TechnicalLead
	BusinessLeads  []*org.BusinessLead
}

// Build validates r and creates its employees in a new Org configured by
// opts. Technical leads and their engineers are created first, then
// business leads and their accountants, then manager links between leads.
func Build(r *Roster, opts ...org.Option) (*Assembly, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	a := &Assembly{
		Org:    org.New(opts...),
		byName: make(map[string]*org.Employee),
	}

	techByName := make(map[string]*org.TechnicalLead)
	for _, entry := range r.TechnicalLeads {
		tl := a.Org.NewTechnicalLead(entry.Name)
		a.add(tl.Employee)
		a.TechnicalLeads = append(a.TechnicalLeads, tl)
		techByName[entry.Name] = tl

		for _, engineer := range entry.Engineers {
			se := a.Org.NewSoftwareEngineer(engineer.Name)
			se.SetCodeAccess(engineer.CodeAccess)
			a.add(se.Employee)
			if !tl.AddReport(se) {
				return nil, headCountExceeded(entry.Name, tl.HeadCount())
			}
		}
	}

	businessByName := make(map[string]*org.BusinessLead)
	for _, entry := range r.BusinessLeads {
		bl := a.Org.NewBusinessLead(entry.Name)
		a.add(bl.Employee)
		a.BusinessLeads = append(a.BusinessLeads, bl)
		businessByName[entry.Name] = bl

		for _, acct := range entry.Accountants {
			acc := a.Org.NewAccountant(acct.Name)
			a.add(acc.Employee)
			if !bl.AddReport(acc, techByName[acct.Supports]) {
				return nil, headCountExceeded(entry.Name, bl.HeadCount())
			}
		}
	}

	for _, entry := range r.TechnicalLeads {
		if entry.Manager != "" {
			techByName[entry.Name].SetManager(businessByName[entry.Manager].Employee)
		}
	}

	return a, nil
}

func headCountExceeded(lead string, limit int) error {
	return errors.NewValidationError(fmt.Sprintf("more than %d reports", limit)).
		WithField("reports").
		WithValue(lead).
		WithCause(errors.ErrInvalidRoster)
}

func (a *Assembly) add(e *org.Employee) {
	a.byName[e.Name()] = e
}

// Employee returns the employee with the given roster name.
func (a *Assembly) Employee(name string) (*org.Employee, error) {
	e, ok := a.byName[name]
	if !ok {
		return nil, errors.NewNotFoundError("employee", name).WithCause(errors.ErrEmployeeNotFound)
	}
	return e, nil
}

// SoftwareEngineer returns the software engineer with the given name.
func (a *Assembly) SoftwareEngineer(name string) (*org.SoftwareEngineer, error) {
	e, err := a.Employee(name)
	if err != nil {
		return nil, err
	}
	return a.Org.SoftwareEngineer(e.ID())
}

// TechnicalLead returns the technical lead with the given name.
func (a *Assembly) TechnicalLead(name string) (*org.TechnicalLead, error) {
	e, err := a.Employee(name)
	if err != nil {
		return nil, err
	}
	return a.Org.TechnicalLead(e.ID())
}

// BusinessLead returns the business lead with the given name.
func (a *Assembly) BusinessLead(name string) (*org.BusinessLead, error) {
	e, err := a.Employee(name)
	if err != nil {
		return nil, err
	}
	return a.Org.BusinessLead(e.ID())
}
