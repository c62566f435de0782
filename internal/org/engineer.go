package org

// SoftwareEngineer is a technical-track individual contributor.
type SoftwareEngineer struct {
	*Employee
}

func (se *SoftwareEngineer) valid() bool {
	return se != nil && se.Employee != nil
}

// CodeAccess reports whether the engineer may push code.
func (se *SoftwareEngineer) CodeAccess() bool {
	return se.codeAccess
}

// SetCodeAccess grants or revokes code access.
func (se *SoftwareEngineer) SetCodeAccess(access bool) {
	se.codeAccess = access
}

// CheckIns returns the number of approved check-ins.
func (se *SoftwareEngineer) CheckIns() int {
	return se.checkIns
}
