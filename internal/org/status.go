package org

import (
	"fmt"
	"strings"
)

// statusFormatter appends one layer of an employee's status description.
type statusFormatter func(e *Employee, b *strings.Builder)

func baseStatus(e *Employee, b *strings.Builder) {
	b.WriteString(e.String())
}

func technicalStatus(e *Employee, b *strings.Builder) {
	fmt.Fprintf(b, " has %d successful check ins", e.checkIns)
}

func businessStatus(e *Employee, b *strings.Builder) {
	fmt.Fprintf(b, " with a budget of %s", e.bonusBudget.StringFixed(2))
}

func engineerStatus(e *Employee, b *strings.Builder) {
	fmt.Fprintf(b, " and has code access: %t", e.codeAccess)
}

func accountantStatus(e *Employee, b *strings.Builder) {
	if lead := e.org.lookup(e.teamSupported); lead != nil {
		fmt.Fprintf(b, " is supporting %s", lead.name)
		return
	}
	b.WriteString(" is not supporting a team")
}

// statusChains lists, per role, the formatters run from the most general
// layer to the most specific.
var statusChains = map[Role][]statusFormatter{
	RoleSoftwareEngineer: {baseStatus, technicalStatus, engineerStatus},
	RoleTechnicalLead:    {baseStatus, technicalStatus},
	RoleAccountant:       {baseStatus, businessStatus, accountantStatus},
	RoleBusinessLead:     {baseStatus, businessStatus},
}

func renderStatus(e *Employee) string {
	var b strings.Builder
	for _, format := range statusChains[e.role] {
		format(e, &b)
	}
	return b.String()
}

// teamStatus renders a lead's status followed by each report's status,
// one per line. A lead with no reports renders as a single line ending in
// " and no direct reports yet", without the " and is managing:" header.
func teamStatus(lead *Employee) string {
	reports := lead.resolvedReports()
	if len(reports) == 0 {
		return lead.Status() + " and no direct reports yet"
	}

	lines := make([]string, 0, len(reports)+1)
	lines = append(lines, lead.Status()+" and is managing:")
	for _, r := range reports {
		lines = append(lines, r.Status())
	}
	return strings.Join(lines, "\n")
}
