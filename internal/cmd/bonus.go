package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/orgchart/internal/errors"
)

var bonusCmd = &cobra.Command{
	Use:   "bonus",
	Short: "Request a bonus for an employee",
	Long: `Request a bonus for an employee through a lead.

A technical lead forwards the request to its business manager, which asks
the accountant supporting the employee's team to grant it. A business lead
pays from its own budget and routes the grant through the employee's
manager.

Examples:
  orgchart bonus --lead "Satya Nadella" --employee Kasey --amount 1000
  orgchart bonus -r org.yaml --lead "Amy Hood" --employee Kasey --amount 250.50`,
	Args: cobra.NoArgs,
	RunE: runBonus,
}

var (
	bonusRoster   string
	bonusLead     string
	bonusEmployee string
	bonusAmount   string
)

func init() {
	bonusCmd.Flags().StringVarP(&bonusRoster, "roster", "r", "", "Roster file (default: the sample company)")
	bonusCmd.Flags().StringVar(&bonusLead, "lead", "", "Lead making the request (required)")
	bonusCmd.Flags().StringVar(&bonusEmployee, "employee", "", "Employee receiving the bonus (required)")
	bonusCmd.Flags().StringVar(&bonusAmount, "amount", "", "Bonus amount (required)")
	_ = bonusCmd.MarkFlagRequired("lead")
	_ = bonusCmd.MarkFlagRequired("employee")
	_ = bonusCmd.MarkFlagRequired("amount")
	rootCmd.AddCommand(bonusCmd)
}

func runBonus(cmd *cobra.Command, args []string) error {
	amount, err := decimal.NewFromString(bonusAmount)
	if err != nil {
		return errors.NewValidationError("invalid amount").
			WithField("amount").
			WithValue(bonusAmount).
			WithCause(errors.ErrInvalidAmount)
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	a, err := s.load(bonusRoster)
	if err != nil {
		return err
	}

	lead, err := a.Employee(bonusLead)
	if err != nil {
		return err
	}
	employee, err := a.Employee(bonusEmployee)
	if err != nil {
		return err
	}

	var granted bool
	if tl, ok := lead.AsTechnicalLead(); ok {
		granted = tl.RequestBonus(employee, amount)
	} else if bl, ok := lead.AsBusinessLead(); ok {
		if granted, err = bl.RequestBonus(employee, amount); err != nil {
			return err
		}
	} else {
		return errors.NewCapabilityError(bonusLead+" cannot request bonuses", errors.ErrWrongRole).
			WithEmployee(uint64(lead.ID())).
			WithRole(lead.Role().String())
	}

	out := cmd.OutOrStdout()
	if granted {
		fmt.Fprintln(out, s.printer.Outcome(true, "Bonus of %s for %s granted", amount.StringFixed(2), employee.Name()))
	} else {
		fmt.Fprintln(out, s.printer.Outcome(false, "Bonus of %s for %s denied", amount.StringFixed(2), employee.Name()))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, s.printer.Ledger(a.Org))
	return nil
}
