package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Record a code check-in for an engineer",
	Long: `Record a code check-in for an engineer.

The check-in is approved only when the engineer reports to the given
technical lead and has code access.`,
	Args: cobra.NoArgs,
	RunE: runCheckin,
}

var (
	checkinRoster   string
	checkinLead     string
	checkinEngineer string
)

func init() {
	checkinCmd.Flags().StringVarP(&checkinRoster, "roster", "r", "", "Roster file (default: the sample company)")
	checkinCmd.Flags().StringVar(&checkinLead, "lead", "", "Technical lead approving the check-in (required)")
	checkinCmd.Flags().StringVar(&checkinEngineer, "engineer", "", "Engineer checking in (required)")
	_ = checkinCmd.MarkFlagRequired("lead")
	_ = checkinCmd.MarkFlagRequired("engineer")
	rootCmd.AddCommand(checkinCmd)
}

func runCheckin(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	a, err := s.load(checkinRoster)
	if err != nil {
		return err
	}

	tl, err := a.TechnicalLead(checkinLead)
	if err != nil {
		return err
	}
	se, err := a.SoftwareEngineer(checkinEngineer)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if tl.CheckIn(se) {
		fmt.Fprintln(out, s.printer.Outcome(true, "Check-in approved by %s", tl.Name()))
	} else {
		fmt.Fprintln(out, s.printer.Outcome(false, "Check-in not approved by %s", tl.Name()))
	}
	fmt.Fprintln(out, se.Status())
	return nil
}
