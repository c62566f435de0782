package org

import "strconv"

// ID identifies an employee. IDs are assigned at creation and never reused.
// The zero ID means "no employee".
type ID uint64

// String returns the decimal form of the ID.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Track is the career track an employee belongs to.
type Track string

const (
	TrackTechnical Track = "technical"
	TrackBusiness  Track = "business"
)

// String returns the string representation of the track.
func (t Track) String() string {
	return string(t)
}

// IsValid returns true if the track is a recognized value.
func (t Track) IsValid() bool {
	switch t {
	case TrackTechnical, TrackBusiness:
		return true
	}
	return false
}

// Role is the position an employee holds.
type Role string

const (
	RoleSoftwareEngineer Role = "software_engineer"
	RoleAccountant       Role = "accountant"
	RoleTechnicalLead    Role = "technical_lead"
	RoleBusinessLead     Role = "business_lead"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// IsValid returns true if the role is a recognized value.
func (r Role) IsValid() bool {
	switch r {
	case RoleSoftwareEngineer, RoleAccountant, RoleTechnicalLead, RoleBusinessLead:
		return true
	}
	return false
}

// Track returns the track the role belongs to.
func (r Role) Track() Track {
	switch r {
	case RoleSoftwareEngineer, RoleTechnicalLead:
		return TrackTechnical
	case RoleAccountant, RoleBusinessLead:
		return TrackBusiness
	}
	return ""
}

// IsLead returns true if the role manages reports.
func (r Role) IsLead() bool {
	return r == RoleTechnicalLead || r == RoleBusinessLead
}
