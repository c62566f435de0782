package roster

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/orgchart/internal/errors"
)

// CurrentVersion is the roster file format version.
const CurrentVersion = "1"

// Roster describes an org chart.
type Roster struct {
	// Version is the file format version (currently "1"; empty means "1")
	Version string `yaml:"version,omitempty"`
	// TechnicalLeads are created first, with their engineers
	TechnicalLeads []TechnicalLead `yaml:"technical_leads"`
	// BusinessLeads are created after all technical leads
	BusinessLeads []BusinessLead `yaml:"business_leads,omitempty"`
}

// TechnicalLead describes a technical lead and its team.
type TechnicalLead struct {
	Name string `yaml:"name"`
	// Manager is the name of the business lead this lead reports to (optional)
	Manager   string     `yaml:"manager,omitempty"`
	Engineers []Engineer `yaml:"engineers,omitempty"`
}

// Engineer describes a software engineer.
type Engineer struct {
	Name       string `yaml:"name"`
	CodeAccess bool   `yaml:"code_access,omitempty"`
}

// BusinessLead describes a business lead and its accountants.
type BusinessLead struct {
	Name        string       `yaml:"name"`
	Accountants []Accountant `yaml:"accountants,omitempty"`
}

// Accountant describes an accountant and the team it supports.
type Accountant struct {
	Name string `yaml:"name"`
	// Supports is the name of a technical lead in the same roster
	Supports string `yaml:"supports"`
}

// Load reads and validates a roster file.
func Load(fs afero.Fs, path string) (*Roster, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrap(err, "reading roster file")
	}

	r, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "roster %s", filepath.Base(path))
	}
	return r, nil
}

// Parse decodes and validates roster YAML.
func Parse(data []byte) (*Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, errors.Wrap(errors.Join(errors.ErrInvalidRoster, err), "parsing roster")
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Save writes r as YAML, creating parent directories as needed.
func Save(fs afero.Fs, path string, r *Roster) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return errors.Wrap(err, "encoding roster")
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating roster directory")
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return errors.Wrap(err, "writing roster file")
	}
	return nil
}

// Validate checks that the roster is well-formed: names are present and
// unique, and every reference names an employee of the right kind.
func (r *Roster) Validate() error {
	if r.Version != "" && r.Version != CurrentVersion {
		return invalid("version", r.Version, fmt.Sprintf("unsupported roster version (supported: %s)", CurrentVersion))
	}

	var errs []error
	seen := make(map[string]bool)
	claim := func(field, name string) {
		switch {
		case name == "":
			errs = append(errs, invalid(field, name, "name is required"))
		case seen[name]:
			errs = append(errs, invalid(field, name, "duplicate name"))
		default:
			seen[name] = true
		}
	}

	techLeads := make(map[string]bool)
	for i, tl := range r.TechnicalLeads {
		claim(fmt.Sprintf("technical_leads[%d].name", i), tl.Name)
		techLeads[tl.Name] = true
		for j, se := range tl.Engineers {
			claim(fmt.Sprintf("technical_leads[%d].engineers[%d].name", i, j), se.Name)
		}
	}

	businessLeads := make(map[string]bool)
	for i, bl := range r.BusinessLeads {
		claim(fmt.Sprintf("business_leads[%d].name", i), bl.Name)
		businessLeads[bl.Name] = true
		for j, a := range bl.Accountants {
			claim(fmt.Sprintf("business_leads[%d].accountants[%d].name", i, j), a.Name)
			if !techLeads[a.Supports] {
				errs = append(errs, invalid(
					fmt.Sprintf("business_leads[%d].accountants[%d].supports", i, j),
					a.Supports, "must name a technical lead"))
			}
		}
	}

	for i, tl := range r.TechnicalLeads {
		if tl.Manager != "" && !businessLeads[tl.Manager] {
			errs = append(errs, invalid(fmt.Sprintf("technical_leads[%d].manager", i), tl.Manager, "must name a business lead"))
		}
	}

	return errors.Join(errs...)
}

func invalid(field, value, msg string) error {
	return errors.NewValidationError(msg).
		WithField(field).
		WithValue(value).
		WithCause(errors.ErrInvalidRoster)
}
