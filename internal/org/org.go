package org

import (
	"github.com/Iron-Ham/orgchart/internal/errors"
	"github.com/Iron-Ham/orgchart/internal/event"
	"github.com/Iron-Ham/orgchart/internal/logging"
)

// Org is the registry that creates and owns employees. Manager and
// supported-team links are stored as IDs and resolved through the Org.
type Org struct {
	ids    *IDGenerator
	policy Policy
	logger *logging.Logger
	bus    *event.Bus
	clock  Clock

	employees map[ID]*Employee
	order     []ID
	grants    []Grant
}

// Option configures an Org.
type Option func(*Org)

// WithIDGenerator makes the Org draw IDs from g. Orgs sharing a generator
// never issue the same ID.
func WithIDGenerator(g *IDGenerator) Option {
	return func(o *Org) {
		if g != nil {
			o.ids = g
		}
	}
}

// WithPolicy sets the compensation and headcount policy. The policy is
// used as given; callers should Validate it first.
func WithPolicy(p Policy) Option {
	return func(o *Org) {
		o.policy = p
	}
}

// WithLogger sets the logger for org operations.
func WithLogger(l *logging.Logger) Option {
	return func(o *Org) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBus sets the bus org events are published to.
func WithBus(b *event.Bus) Option {
	return func(o *Org) {
		o.bus = b
	}
}

// WithClock sets the clock used for grant records and events.
func WithClock(c Clock) Option {
	return func(o *Org) {
		if c != nil {
			o.clock = c
		}
	}
}

// New creates an empty Org. Without options it uses its own IDGenerator,
// the default policy, no logging, and no event bus.
func New(opts ...Option) *Org {
	o := &Org{
		ids:       NewIDGenerator(),
		policy:    DefaultPolicy(),
		logger:    logging.NopLogger(),
		clock:     realClock{},
		employees: make(map[ID]*Employee),
	}
	for _, opt := range opts {
		opt(o)
	}
	o.logger = o.logger.WithComponent("org")
	return o
}

// Policy returns the Org's policy.
func (o *Org) Policy() Policy {
	return o.policy
}

// NewSoftwareEngineer creates a software engineer with no manager and code
// access disabled.
func (o *Org) NewSoftwareEngineer(name string) *SoftwareEngineer {
	return &SoftwareEngineer{o.hire(name, RoleSoftwareEngineer)}
}

// NewAccountant creates an accountant that supports no team and has an
// empty budget.
func (o *Org) NewAccountant(name string) *Accountant {
	return &Accountant{o.hire(name, RoleAccountant)}
}

// NewTechnicalLead creates a technical lead with no reports.
func (o *Org) NewTechnicalLead(name string) *TechnicalLead {
	return &TechnicalLead{o.hire(name, RoleTechnicalLead)}
}

// NewBusinessLead creates a business lead with no reports and an empty
// budget.
func (o *Org) NewBusinessLead(name string) *BusinessLead {
	return &BusinessLead{o.hire(name, RoleBusinessLead)}
}

func (o *Org) hire(name string, role Role) *Employee {
	e := &Employee{
		org:        o,
		id:         o.ids.Next(),
		name:       name,
		role:       role,
		baseSalary: o.policy.baseSalary(role.Track()),
		headCount:  o.policy.headCount(role),
	}
	o.employees[e.id] = e
	o.order = append(o.order, e.id)

	o.logger.WithEmployee(uint64(e.id)).Debug("employee created",
		"name", name,
		"role", role.String(),
	)
	return e
}

// lookup resolves an ID to an employee of this Org, or nil.
func (o *Org) lookup(id ID) *Employee {
	if id == 0 {
		return nil
	}
	return o.employees[id]
}

// Employee returns the employee with the given ID.
func (o *Org) Employee(id ID) (*Employee, error) {
	e := o.lookup(id)
	if e == nil {
		return nil, errors.NewNotFoundError("employee", id.String()).WithCause(errors.ErrEmployeeNotFound)
	}
	return e, nil
}

// Employees returns every employee in creation order.
func (o *Org) Employees() []*Employee {
	out := make([]*Employee, 0, len(o.order))
	for _, id := range o.order {
		out = append(out, o.employees[id])
	}
	return out
}

// SoftwareEngineer returns the software engineer with the given ID.
func (o *Org) SoftwareEngineer(id ID) (*SoftwareEngineer, error) {
	e, err := o.employeeWithRole(id, RoleSoftwareEngineer)
	if err != nil {
		return nil, err
	}
	return &SoftwareEngineer{e}, nil
}

// Accountant returns the accountant with the given ID.
func (o *Org) Accountant(id ID) (*Accountant, error) {
	e, err := o.employeeWithRole(id, RoleAccountant)
	if err != nil {
		return nil, err
	}
	return &Accountant{e}, nil
}

// TechnicalLead returns the technical lead with the given ID.
func (o *Org) TechnicalLead(id ID) (*TechnicalLead, error) {
	e, err := o.employeeWithRole(id, RoleTechnicalLead)
	if err != nil {
		return nil, err
	}
	return &TechnicalLead{e}, nil
}

// BusinessLead returns the business lead with the given ID.
func (o *Org) BusinessLead(id ID) (*BusinessLead, error) {
	e, err := o.employeeWithRole(id, RoleBusinessLead)
	if err != nil {
		return nil, err
	}
	return &BusinessLead{e}, nil
}

func (o *Org) employeeWithRole(id ID, want Role) (*Employee, error) {
	e, err := o.Employee(id)
	if err != nil {
		return nil, err
	}
	if e.role != want {
		return nil, errors.NewCapabilityError("expected "+want.String(), errors.ErrWrongRole).
			WithEmployee(uint64(id)).
			WithRole(e.role.String())
	}
	return e, nil
}

// publish sends an event to the bus, if one is configured.
func (o *Org) publish(e event.Event) {
	if o.bus != nil {
		o.bus.Publish(e)
	}
}
