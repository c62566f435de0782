package org

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Iron-Ham/orgchart/internal/errors"
	"github.com/Iron-Ham/orgchart/internal/logging"
)

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}

var testNow = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestOrg(opts ...Option) *Org {
	return New(append([]Option{WithClock(stubClock{now: testNow})}, opts...)...)
}

// checkAmount fails the test when got is not numerically equal to want.
func checkAmount(t *testing.T, what string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", what, got, want)
	}
}

func TestNew_Defaults(t *testing.T) {
	o := New()

	if !reflect.DeepEqual(o.Policy(), DefaultPolicy()) {
		t.Errorf("Policy() = %+v, want %+v", o.Policy(), DefaultPolicy())
	}
	if n := len(o.Employees()); n != 0 {
		t.Errorf("len(Employees()) = %d, want 0", n)
	}
	if n := len(o.Grants()); n != 0 {
		t.Errorf("len(Grants()) = %d, want 0", n)
	}
}

func TestIDs_DistinctAndIncreasing(t *testing.T) {
	o := newTestOrg()

	created := []*Employee{
		o.NewSoftwareEngineer("a").Employee,
		o.NewAccountant("b").Employee,
		o.NewTechnicalLead("c").Employee,
		o.NewBusinessLead("d").Employee,
		o.NewSoftwareEngineer("e").Employee,
	}

	for i, e := range created {
		if e.ID() != ID(i+1) {
			t.Errorf("created[%d].ID() = %d, want %d", i, e.ID(), i+1)
		}
		if i > 0 && e.ID() <= created[i-1].ID() {
			t.Errorf("created[%d].ID() = %d, not greater than %d", i, e.ID(), created[i-1].ID())
		}
	}
}

func TestIDs_SharedGenerator(t *testing.T) {
	gen := NewIDGenerator()
	first := newTestOrg(WithIDGenerator(gen))
	second := newTestOrg(WithIDGenerator(gen))

	a := first.NewSoftwareEngineer("a")
	b := second.NewSoftwareEngineer("b")
	c := first.NewAccountant("c")

	tests := []struct {
		name string
		got  ID
		want ID
	}{
		{"first org, first hire", a.ID(), 1},
		{"second org", b.ID(), 2},
		{"first org, second hire", c.ID(), 3},
		{"generator last", gen.Last(), 3},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: ID = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestIDs_SeparateOrgsAreIsolated(t *testing.T) {
	first := newTestOrg()
	second := newTestOrg()

	first.NewSoftwareEngineer("a")
	first.NewSoftwareEngineer("b")

	if got := second.NewSoftwareEngineer("c").ID(); got != 1 {
		t.Errorf("ID() = %d, want 1", got)
	}
}

func TestEmployee_EqualByIdentity(t *testing.T) {
	o := newTestOrg()
	a := o.NewSoftwareEngineer("Sam")
	b := o.NewSoftwareEngineer("Sam")

	if !a.Equal(a.Employee) {
		t.Error("employee should equal itself")
	}
	if a.Equal(b.Employee) {
		t.Error("same name and salary must not make employees equal")
	}
	if !a.BaseSalary().Equal(b.BaseSalary()) {
		t.Errorf("BaseSalary() = %s and %s, want equal", a.BaseSalary(), b.BaseSalary())
	}

	// A fresh handle to the same record is the same employee.
	again, err := o.SoftwareEngineer(a.ID())
	if err != nil {
		t.Fatalf("SoftwareEngineer() error = %v", err)
	}
	if !again.Equal(a.Employee) {
		t.Error("a fresh handle should equal the original")
	}

	var none *Employee
	if a.Equal(none) {
		t.Error("Equal(nil) = true, want false")
	}
	if !none.Equal(nil) {
		t.Error("nil.Equal(nil) = false, want true")
	}
}

func TestEmployee_EqualAcrossOrgs(t *testing.T) {
	first := newTestOrg()
	second := newTestOrg()

	a := first.NewSoftwareEngineer("a")
	b := second.NewSoftwareEngineer("b")

	if a.ID() != b.ID() {
		t.Fatalf("IDs = %d and %d, want the same ID from separate orgs", a.ID(), b.ID())
	}
	if a.Equal(b.Employee) {
		t.Error("employees of different orgs must not be equal")
	}
}

func TestEmployee_BaseSalaryByTrack(t *testing.T) {
	o := newTestOrg()

	tests := []struct {
		name string
		e    *Employee
		want string
	}{
		{"software engineer", o.NewSoftwareEngineer("se").Employee, "75000"},
		{"technical lead", o.NewTechnicalLead("tl").Employee, "75000"},
		{"accountant", o.NewAccountant("acc").Employee, "50000"},
		{"business lead", o.NewBusinessLead("bl").Employee, "50000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkAmount(t, "BaseSalary()", tt.e.BaseSalary(), tt.want)
		})
	}
}

func TestEmployee_SetManager(t *testing.T) {
	o := newTestOrg()
	se := o.NewSoftwareEngineer("se")
	acc := o.NewAccountant("acc")

	if se.Manager() != nil {
		t.Fatal("new employee should have no manager")
	}

	// No role validation at this layer.
	se.SetManager(acc.Employee)
	if !se.Manager().Equal(acc.Employee) {
		t.Errorf("Manager() = %v, want %v", se.Manager(), acc)
	}

	se.SetManager(nil)
	if se.Manager() != nil {
		t.Errorf("Manager() = %v, want nil", se.Manager())
	}
}

func TestEmployee_SetManagerAcrossOrgs(t *testing.T) {
	home := newTestOrg()
	away := newTestOrg()

	se := home.NewSoftwareEngineer("se")
	lead := home.NewTechnicalLead("lead")
	se.SetManager(lead.Employee)

	se.SetManager(away.NewTechnicalLead("stranger").Employee)

	if !se.Manager().Equal(lead.Employee) {
		t.Errorf("Manager() = %v, want %v", se.Manager(), lead)
	}
}

func TestEmployee_String(t *testing.T) {
	o := newTestOrg()
	if got := o.NewSoftwareEngineer("Ada").String(); got != "1 Ada" {
		t.Errorf("String() = %q, want %q", got, "1 Ada")
	}
}

func TestRole_Track(t *testing.T) {
	tests := []struct {
		role   Role
		track  Track
		isLead bool
	}{
		{RoleSoftwareEngineer, TrackTechnical, false},
		{RoleTechnicalLead, TrackTechnical, true},
		{RoleAccountant, TrackBusiness, false},
		{RoleBusinessLead, TrackBusiness, true},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			if !tt.role.IsValid() {
				t.Error("IsValid() = false, want true")
			}
			if got := tt.role.Track(); got != tt.track {
				t.Errorf("Track() = %q, want %q", got, tt.track)
			}
			if got := tt.role.IsLead(); got != tt.isLead {
				t.Errorf("IsLead() = %v, want %v", got, tt.isLead)
			}
		})
	}

	if Role("intern").IsValid() {
		t.Error("Role(intern).IsValid() = true, want false")
	}
	if Track("sales").IsValid() {
		t.Error("Track(sales).IsValid() = true, want false")
	}
}

func TestOrg_Lookups(t *testing.T) {
	o := newTestOrg()
	se := o.NewSoftwareEngineer("se")
	tl := o.NewTechnicalLead("tl")

	got, err := o.TechnicalLead(tl.ID())
	if err != nil {
		t.Fatalf("TechnicalLead() error = %v", err)
	}
	if got.ID() != tl.ID() {
		t.Errorf("TechnicalLead().ID() = %d, want %d", got.ID(), tl.ID())
	}

	_, err = o.Employee(99)
	if !errors.Is(err, errors.ErrEmployeeNotFound) {
		t.Errorf("Employee(99) error = %v, want ErrEmployeeNotFound", err)
	}
	var nf *errors.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Employee(99) error = %T, want *NotFoundError", err)
	}
	if nf.ResourceID != "99" {
		t.Errorf("ResourceID = %q, want %q", nf.ResourceID, "99")
	}

	_, err = o.TechnicalLead(se.ID())
	var capErr *errors.CapabilityError
	if !errors.As(err, &capErr) {
		t.Fatalf("TechnicalLead(engineer) error = %T, want *CapabilityError", err)
	}
	if capErr.Role != "software_engineer" {
		t.Errorf("Role = %q, want %q", capErr.Role, "software_engineer")
	}

	lookups := []struct {
		name   string
		lookup func() error
	}{
		{"TechnicalLead(engineer)", func() error { _, err := o.TechnicalLead(se.ID()); return err }},
		{"BusinessLead(engineer)", func() error { _, err := o.BusinessLead(se.ID()); return err }},
		{"Accountant(lead)", func() error { _, err := o.Accountant(tl.ID()); return err }},
		{"SoftwareEngineer(lead)", func() error { _, err := o.SoftwareEngineer(tl.ID()); return err }},
	}
	for _, tt := range lookups {
		if err := tt.lookup(); !errors.Is(err, errors.ErrWrongRole) {
			t.Errorf("%s error = %v, want ErrWrongRole", tt.name, err)
		}
	}
}

func TestOrg_EmployeesInCreationOrder(t *testing.T) {
	o := newTestOrg()
	names := []string{"first", "second", "third"}
	o.NewTechnicalLead(names[0])
	o.NewAccountant(names[1])
	o.NewSoftwareEngineer(names[2])

	var got []string
	for _, e := range o.Employees() {
		got = append(got, e.Name())
	}
	if !reflect.DeepEqual(got, names) {
		t.Errorf("Employees() names = %v, want %v", got, names)
	}
}

func TestEmployee_AsRole(t *testing.T) {
	o := newTestOrg()
	se := o.NewSoftwareEngineer("se")

	if _, ok := se.AsSoftwareEngineer(); !ok {
		t.Error("AsSoftwareEngineer() ok = false, want true")
	}
	if _, ok := se.AsTechnicalLead(); ok {
		t.Error("AsTechnicalLead() ok = true, want false")
	}
	if _, ok := se.AsBusinessLead(); ok {
		t.Error("AsBusinessLead() ok = true, want false")
	}
	if _, ok := se.AsAccountant(); ok {
		t.Error("AsAccountant() ok = true, want false")
	}

	var none *Employee
	if _, ok := none.AsBusinessLead(); ok {
		t.Error("nil.AsBusinessLead() ok = true, want false")
	}
}

func TestPolicy_Validate(t *testing.T) {
	if err := DefaultPolicy().Validate(); err != nil {
		t.Fatalf("DefaultPolicy().Validate() error = %v", err)
	}

	p := DefaultPolicy()
	p.TechnicalLeadHeadCount = 0
	p.BudgetMargin = DefaultBudgetMargin.Neg()

	err := p.Validate()
	if !errors.Is(err, errors.ErrInvalidPolicy) {
		t.Fatalf("Validate() error = %v, want ErrInvalidPolicy", err)
	}
	for _, field := range []string{"technical_lead_head_count", "budget_margin"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("Validate() error = %q, want it to mention %s", err, field)
		}
	}
}

func TestOrg_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	o := newTestOrg(WithLogger(logging.NewLogger(&buf, logging.LevelDebug)))

	o.NewSoftwareEngineer("logged")

	out := buf.String()
	if !strings.Contains(out, `"component":"org"`) {
		t.Errorf("log output missing component: %s", out)
	}
	if !strings.Contains(out, "employee created") {
		t.Errorf("log output missing message: %s", out)
	}
}
