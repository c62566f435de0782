package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/shopspring/decimal"

	"github.com/Iron-Ham/orgchart/internal/org"
)

// Printer renders org output with a fixed set of styles and a maximum
// width.
type Printer struct {
	styles *Styles
	width  int
}

// NewPrinter creates a Printer. A width of zero disables wrapping.
func NewPrinter(styles *Styles, width int) *Printer {
	return &Printer{styles: styles, width: width}
}

// Title renders a section heading.
func (p *Printer) Title(text string) string {
	return p.styles.Title.Render(text)
}

// TeamStatus renders a lead's team status in a bordered box. The first
// line, the lead's own status, is emphasized; report lines are colored by
// track.
func (p *Printer) TeamStatus(lead *org.Employee, status string) string {
	lines := strings.Split(status, "\n")
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if i == 0 {
			out = append(out, p.styles.Lead.Render(line))
			continue
		}
		out = append(out, p.trackStyle(lead.Track()).Render("  "+line))
	}

	box := p.styles.Box
	if p.width > 0 {
		box = box.MaxWidth(p.width)
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, out...))
}

func (p *Printer) trackStyle(t org.Track) lipgloss.Style {
	if t == org.TrackBusiness {
		return p.styles.Business
	}
	return p.styles.Technical
}

// Outcome renders the result of an operation as a single line.
func (p *Printer) Outcome(ok bool, format string, args ...any) string {
	msg := fmt.Sprintf(format, args...)
	if ok {
		return p.styles.Success.Render("✓ " + msg)
	}
	return p.styles.Failure.Render("✗ " + msg)
}

// Ledger renders grants as a table, followed by the total.
func (p *Printer) Ledger(o *org.Org) string {
	grants := o.Grants()
	if len(grants) == 0 {
		return p.styles.Muted.Render("No bonuses granted")
	}

	rows := [][]string{{"GRANT", "EMPLOYEE", "ACCOUNTANT", "APPROVER", "AMOUNT"}}
	for _, g := range grants {
		rows = append(rows, []string{
			g.ID.String()[:8],
			name(o, g.EmployeeID),
			name(o, g.AccountantID),
			name(o, g.ApproverID),
			g.Amount.StringFixed(2),
		})
	}

	widths := columnWidths(rows)
	lines := make([]string, 0, len(rows)+1)
	for i, row := range rows {
		line := formatRow(row, widths)
		if i == 0 {
			line = p.styles.Header.Render(line)
		}
		lines = append(lines, line)
	}
	lines = append(lines, p.styles.Muted.Render("Total granted: "+o.TotalGranted().StringFixed(2)))
	return strings.Join(lines, "\n")
}

// Budget renders a labeled money value.
func (p *Printer) Budget(label string, amount decimal.Decimal) string {
	return p.styles.Muted.Render(label+": ") + amount.StringFixed(2)
}

func name(o *org.Org, id org.ID) string {
	if id == 0 {
		return "-"
	}
	e, err := o.Employee(id)
	if err != nil {
		return id.String()
	}
	return truncate(e.Name(), maxNameWidth)
}

// maxNameWidth is the widest a name column in a table may grow.
const maxNameWidth = 24

// truncate shortens s to maxWidth columns, ending in "...". Escape codes
// and wide characters are measured by their visible width.
func truncate(s string, maxWidth int) string {
	if maxWidth <= 3 {
		return "..."
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "...")
}

func columnWidths(rows [][]string) []int {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func formatRow(row []string, widths []int) string {
	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
	}
	return strings.TrimRight(strings.Join(cells, "  "), " ")
}
